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

// RegistrationUsecase handles the public event registration flow:
// validated anonymous registrations, owner-gated listing, shared access,
// and status transitions with their notifications.
type RegistrationUsecase struct {
	regRepo     contract.IRegistrationRepository
	eventRepo   contract.IEventRepository
	notifUC     usecasecontract.INotificationUseCase
	mailService contract.IEmailService
	validator   usecasecontract.IValidator
	uuidGen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
}

// NewRegistrationUsecase creates a new RegistrationUsecase instance.
func NewRegistrationUsecase(
	regRepo contract.IRegistrationRepository,
	eventRepo contract.IEventRepository,
	notifUC usecasecontract.INotificationUseCase,
	mailService contract.IEmailService,
	validator usecasecontract.IValidator,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *RegistrationUsecase {
	return &RegistrationUsecase{
		regRepo:     regRepo,
		eventRepo:   eventRepo,
		notifUC:     notifUC,
		mailService: mailService,
		validator:   validator,
		uuidGen:     uuidGen,
		logger:      logger,
	}
}

// check if RegistrationUsecase implements IRegistrationUseCase
var _ usecasecontract.IRegistrationUseCase = (*RegistrationUsecase)(nil)

// Register validates the registrant's fields, persists the registration
// with status pending, then issues exactly one notification to the
// event's creator. The notification write is best effort: its failure
// does not roll back the registration.
func (uc *RegistrationUsecase) Register(ctx context.Context, eventID string, in usecasecontract.RegistrationInput) (*entity.EventRegistration, error) {
	event, err := uc.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := uc.validateInput(in); err != nil {
		return nil, err
	}

	reg := &entity.EventRegistration{
		ID:         uc.uuidGen.NewUUID(),
		EventID:    event.ID,
		Name:       strings.TrimSpace(in.Name),
		Email:      in.Email,
		Phone:      in.Phone,
		Age:        in.Age,
		Gender:     entity.Gender(in.Gender),
		Address:    in.Address,
		District:   in.District,
		Taluka:     in.Taluka,
		Village:    in.Village,
		Status:     entity.RegistrationStatusPending,
		SharedWith: []string{},
		CreatedAt:  time.Now(),
	}

	if err := uc.regRepo.CreateRegistration(ctx, reg); err != nil {
		uc.logger.Errorf("failed to create registration for event %s: %v", eventID, err)
		return nil, fmt.Errorf("failed to create registration")
	}

	// No transaction spans the registration and the notification; a
	// failure here leaves the registration saved and the creator
	// unnotified.
	link := "/events/" + event.ID + "/registrations"
	message := fmt.Sprintf("%s registered for %s", reg.Name, event.Title)
	if _, err := uc.notifUC.CreateNotification(ctx, event.CreatedBy, "New registration", message, entity.NotificationTypeInfo, &link); err != nil {
		uc.logger.Warnf("creator notification for registration %s dropped: %v", reg.ID, err)
	}

	return reg, nil
}

// ListForEvent returns all registrations for an event, newest first.
// Visible only to the event's creator or to users the creator has shared
// the list with.
func (uc *RegistrationUsecase) ListForEvent(ctx context.Context, eventID string, requester *entity.User) ([]*entity.EventRegistration, error) {
	event, err := uc.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if requester == nil || (requester.ID != event.CreatedBy && !event.IsSharedWith(requester.ID)) {
		return nil, apperror.Forbiddenf("registrations of event %s are not visible to this user", eventID)
	}

	return uc.regRepo.GetRegistrationsByEventID(ctx, eventID)
}

// Share merges userIDs into the registration's shared-access set. Only
// the event's creator may share; the creator is resolved transitively via
// the registration's event. Users newly granted access get a
// notification; re-sharing an already-shared user is a silent no-op.
func (uc *RegistrationUsecase) Share(ctx context.Context, registrationID string, requester *entity.User, userIDs []string) (*entity.EventRegistration, error) {
	reg, err := uc.regRepo.GetRegistrationByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	event, err := uc.eventRepo.GetEventByID(ctx, reg.EventID)
	if err != nil {
		return nil, err
	}
	if requester == nil || requester.ID != event.CreatedBy {
		return nil, apperror.Forbiddenf("only the event creator may share registration %s", registrationID)
	}

	existing := make(map[string]struct{}, len(reg.SharedWith))
	for _, id := range reg.SharedWith {
		existing[id] = struct{}{}
	}
	var added []string
	for _, id := range userIDs {
		if id == "" {
			continue
		}
		if _, ok := existing[id]; !ok {
			existing[id] = struct{}{}
			added = append(added, id)
		}
	}

	if len(added) > 0 {
		if err := uc.regRepo.AddSharedUsers(ctx, registrationID, added); err != nil {
			uc.logger.Errorf("failed to share registration %s: %v", registrationID, err)
			return nil, fmt.Errorf("failed to share registration")
		}
		reg.SharedWith = append(reg.SharedWith, added...)

		link := "/events/" + event.ID + "/registrations"
		message := fmt.Sprintf("%s shared a registration for %s with you", requester.Name, event.Title)
		for _, id := range added {
			if _, err := uc.notifUC.CreateNotification(ctx, id, "Registration shared with you", message, entity.NotificationTypeInfo, &link); err != nil {
				uc.logger.Warnf("share notification to user %s dropped: %v", id, err)
			}
		}
	}

	return reg, nil
}

// UpdateStatus moves a registration into a new status. Only the event's
// creator may update. The creator gets an in-app notification describing
// the transition; the registrant, who has no account, is informed over
// email. Both are best effort.
func (uc *RegistrationUsecase) UpdateStatus(ctx context.Context, registrationID string, requester *entity.User, status string) (*entity.EventRegistration, error) {
	newStatus := entity.RegistrationStatus(status)
	if !newStatus.Valid() {
		ve := apperror.NewValidation()
		ve.Add("status", fmt.Sprintf("must be one of %s, %s, %s",
			entity.RegistrationStatusPending, entity.RegistrationStatusApproved, entity.RegistrationStatusRejected))
		return nil, ve
	}

	reg, err := uc.regRepo.GetRegistrationByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	event, err := uc.eventRepo.GetEventByID(ctx, reg.EventID)
	if err != nil {
		return nil, err
	}
	if requester == nil || requester.ID != event.CreatedBy {
		return nil, apperror.Forbiddenf("only the event creator may update registration %s", registrationID)
	}

	oldStatus := reg.Status
	if err := uc.regRepo.UpdateStatus(ctx, registrationID, newStatus); err != nil {
		uc.logger.Errorf("failed to update status of registration %s: %v", registrationID, err)
		return nil, fmt.Errorf("failed to update registration status")
	}
	reg.Status = newStatus

	link := "/events/" + event.ID + "/registrations"
	message := fmt.Sprintf("Registration of %s for %s moved from %s to %s", reg.Name, event.Title, oldStatus, newStatus)
	if _, err := uc.notifUC.CreateNotification(ctx, event.CreatedBy, "Registration status updated", message, entity.NotificationTypeInfo, &link); err != nil {
		uc.logger.Warnf("status notification for registration %s dropped: %v", registrationID, err)
	}

	subject := fmt.Sprintf("Your registration for %s", event.Title)
	body := fmt.Sprintf("Hi %s,\n\nThe status of your registration for %s is now: %s.\n\nThanks,\nSahaaya", reg.Name, event.Title, newStatus)
	if err := uc.mailService.SendEmail(ctx, reg.Email, subject, body); err != nil {
		uc.logger.Warnf("status email to registrant %s dropped: %v", reg.Email, err)
	}

	return reg, nil
}

// validateInput checks every registrant field and reports all violations
// together.
func (uc *RegistrationUsecase) validateInput(in usecasecontract.RegistrationInput) error {
	ve := apperror.NewValidation()

	if strings.TrimSpace(in.Name) == "" {
		ve.Add("name", "name is required")
	}
	if err := uc.validator.ValidateEmail(in.Email); err != nil {
		ve.Add("email", "a valid email address is required")
	}
	if err := uc.validator.ValidatePhone(in.Phone); err != nil {
		ve.Add("phone", "a valid phone number is required")
	}
	if in.Age < 1 {
		ve.Add("age", "age must be a positive integer")
	}
	if !entity.Gender(in.Gender).Valid() {
		ve.Add("gender", fmt.Sprintf("must be one of %s, %s, %s", entity.GenderMale, entity.GenderFemale, entity.GenderOther))
	}
	if strings.TrimSpace(in.Address) == "" {
		ve.Add("address", "address is required")
	}
	if strings.TrimSpace(in.District) == "" {
		ve.Add("district", "district is required")
	}
	if strings.TrimSpace(in.Taluka) == "" {
		ve.Add("taluka", "taluka is required")
	}
	if strings.TrimSpace(in.Village) == "" {
		ve.Add("village", "village is required")
	}

	return ve.ErrOrNil()
}
