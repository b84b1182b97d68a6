package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kartavyango/sahaaya/internal/domain/apperror"
	"github.com/kartavyango/sahaaya/internal/domain/contract"
	"github.com/kartavyango/sahaaya/internal/domain/entity"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

// EventUsecase handles the event lifecycle: creation with attachments,
// updates, deletion with attachment release, and sharing of the
// registration list.
type EventUsecase struct {
	eventRepo contract.IEventRepository
	notifUC   usecasecontract.INotificationUseCase
	storage   contract.IFileStorage
	uuidGen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
}

// NewEventUsecase creates a new EventUsecase instance.
func NewEventUsecase(
	eventRepo contract.IEventRepository,
	notifUC usecasecontract.INotificationUseCase,
	storage contract.IFileStorage,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *EventUsecase {
	return &EventUsecase{
		eventRepo: eventRepo,
		notifUC:   notifUC,
		storage:   storage,
		uuidGen:   uuidGen,
		logger:    logger,
	}
}

// check if EventUsecase implements IEventUseCase
var _ usecasecontract.IEventUseCase = (*EventUsecase)(nil)

// CreateEvent stores the event's attachments, persists the event, then
// fans out a "new event" notification to every other user. Partial
// fan-out failures are not surfaced: the event is considered created
// regardless of notification outcomes.
func (uc *EventUsecase) CreateEvent(ctx context.Context, creator *entity.User, in usecasecontract.CreateEventInput) (*entity.Event, error) {
	ve := apperror.NewValidation()
	if strings.TrimSpace(in.Title) == "" {
		ve.Add("title", "title is required")
	}
	if strings.TrimSpace(in.District) == "" {
		ve.Add("district", "district is required")
	}
	if in.Date.IsZero() {
		ve.Add("date", "date is required")
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	images := make([]entity.ImageRef, 0, len(in.Images))
	reports := make([]entity.ReportFile, 0, len(in.Reports))

	for _, f := range in.Images {
		stored, err := uc.storage.Save(ctx, f.FileName, f.Reader)
		if err != nil {
			uc.logger.Errorf("failed to store event image %s: %v", f.FileName, err)
			return nil, fmt.Errorf("failed to store event image")
		}
		images = append(images, entity.ImageRef{URL: stored.URL, StorageID: stored.StorageID})
	}
	for _, f := range in.Reports {
		stored, err := uc.storage.Save(ctx, f.FileName, f.Reader)
		if err != nil {
			uc.logger.Errorf("failed to store event report %s: %v", f.FileName, err)
			return nil, fmt.Errorf("failed to store event report")
		}
		reports = append(reports, entity.ReportFile{
			FileName:  f.FileName,
			Size:      stored.Size,
			MimeType:  f.MimeType,
			URL:       stored.URL,
			StorageID: stored.StorageID,
		})
	}

	event := &entity.Event{
		ID:          uc.uuidGen.NewUUID(),
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		District:    in.District,
		Date:        in.Date,
		EventTime:   in.EventTime,
		Images:      images,
		Reports:     reports,
		CreatedBy:   creator.ID,
		SharedWith:  []string{},
		CreatedAt:   time.Now(),
	}

	if err := uc.eventRepo.CreateEvent(ctx, event); err != nil {
		uc.logger.Errorf("failed to create event: %v", err)
		uc.releaseAttachments(ctx, event)
		return nil, fmt.Errorf("failed to create event")
	}

	uc.notifUC.FanOutNewEvent(ctx, event)

	return event, nil
}

// GetEvents returns one page of events, newest first, plus the total count.
func (uc *EventUsecase) GetEvents(ctx context.Context, page, limit int64) ([]*entity.Event, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return uc.eventRepo.GetEvents(ctx, page, limit)
}

// GetEventByID retrieves a single event.
func (uc *EventUsecase) GetEventByID(ctx context.Context, id string) (*entity.Event, error) {
	return uc.eventRepo.GetEventByID(ctx, id)
}

// UpdateEvent applies field updates to an event. Only the creator or an
// admin may mutate.
func (uc *EventUsecase) UpdateEvent(ctx context.Context, id string, requester *entity.User, updates map[string]interface{}) (*entity.Event, error) {
	event, err := uc.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !event.CanModify(requester) {
		return nil, apperror.Forbiddenf("event %s may only be modified by its creator or an admin", id)
	}

	if err := uc.eventRepo.UpdateEvent(ctx, id, updates); err != nil {
		uc.logger.Errorf("failed to update event %s: %v", id, err)
		return nil, fmt.Errorf("failed to update event")
	}
	return uc.eventRepo.GetEventByID(ctx, id)
}

// DeleteEvent removes an event and releases its attachments from external
// storage. Storage delete failures are logged, never retried, and do not
// block the deletion.
func (uc *EventUsecase) DeleteEvent(ctx context.Context, id string, requester *entity.User) error {
	event, err := uc.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return err
	}
	if !event.CanModify(requester) {
		return apperror.Forbiddenf("event %s may only be deleted by its creator or an admin", id)
	}

	if err := uc.eventRepo.DeleteEvent(ctx, id); err != nil {
		uc.logger.Errorf("failed to delete event %s: %v", id, err)
		return fmt.Errorf("failed to delete event")
	}

	uc.releaseAttachments(ctx, event)
	return nil
}

// ShareEvent grants users shared visibility into the event's registration
// list. Creator only.
func (uc *EventUsecase) ShareEvent(ctx context.Context, id string, requester *entity.User, userIDs []string) (*entity.Event, error) {
	event, err := uc.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if requester == nil || requester.ID != event.CreatedBy {
		return nil, apperror.Forbiddenf("only the event creator may share event %s", id)
	}

	var added []string
	for _, uid := range userIDs {
		if uid != "" && !event.IsSharedWith(uid) {
			added = append(added, uid)
		}
	}
	if len(added) == 0 {
		return event, nil
	}

	if err := uc.eventRepo.AddSharedUsers(ctx, id, added); err != nil {
		uc.logger.Errorf("failed to share event %s: %v", id, err)
		return nil, fmt.Errorf("failed to share event")
	}
	event.SharedWith = append(event.SharedWith, added...)

	link := "/events/" + event.ID + "/registrations"
	message := fmt.Sprintf("%s shared the registration list of %s with you", requester.Name, event.Title)
	for _, uid := range added {
		if _, err := uc.notifUC.CreateNotification(ctx, uid, "Event shared with you", message, entity.NotificationTypeInfo, &link); err != nil {
			uc.logger.Warnf("share notification to user %s dropped: %v", uid, err)
		}
	}

	return event, nil
}

// RemoveReportFile detaches one report attachment and releases it from
// storage. Creator or admin only.
func (uc *EventUsecase) RemoveReportFile(ctx context.Context, id string, requester *entity.User, storageID string) error {
	event, err := uc.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return err
	}
	if !event.CanModify(requester) {
		return apperror.Forbiddenf("event %s may only be modified by its creator or an admin", id)
	}

	found := false
	for _, r := range event.Reports {
		if r.StorageID == storageID {
			found = true
			break
		}
	}
	if !found {
		return apperror.NotFoundf("report file %s of event %s", storageID, id)
	}

	if err := uc.eventRepo.RemoveReportFile(ctx, id, storageID); err != nil {
		uc.logger.Errorf("failed to detach report %s from event %s: %v", storageID, id, err)
		return fmt.Errorf("failed to remove report file")
	}
	if err := uc.storage.Delete(ctx, storageID); err != nil {
		uc.logger.Warnf("failed to release stored report %s: %v", storageID, err)
	}
	return nil
}

func (uc *EventUsecase) releaseAttachments(ctx context.Context, event *entity.Event) {
	for _, img := range event.Images {
		if err := uc.storage.Delete(ctx, img.StorageID); err != nil {
			uc.logger.Warnf("failed to release stored image %s of event %s: %v", img.StorageID, event.ID, err)
		}
	}
	for _, r := range event.Reports {
		if err := uc.storage.Delete(ctx, r.StorageID); err != nil {
			uc.logger.Warnf("failed to release stored report %s of event %s: %v", r.StorageID, event.ID, err)
		}
	}
}
