package usecase_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartavyango/sahaaya/internal/domain/apperror"
	"github.com/kartavyango/sahaaya/internal/domain/entity"
	"github.com/kartavyango/sahaaya/internal/usecase"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

// recordingNotifUC records notification calls instead of persisting them.
type recordingNotifUC struct {
	mu           sync.Mutex
	Created      []entity.Notification
	FannedEvents []*entity.Event
}

var _ usecasecontract.INotificationUseCase = (*recordingNotifUC)(nil)

func (r *recordingNotifUC) CreateNotification(ctx context.Context, userID, title, message string, typ entity.NotificationType, link *string) (*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := entity.Notification{UserID: userID, Title: title, Message: message, Type: typ, Link: link}
	r.Created = append(r.Created, n)
	return &n, nil
}

func (r *recordingNotifUC) GetUserNotifications(ctx context.Context, userID string, page, limit int64) ([]*entity.Notification, int64, error) {
	return nil, 0, nil
}

func (r *recordingNotifUC) MarkAsRead(ctx context.Context, id, userID string) error  { return nil }
func (r *recordingNotifUC) MarkAllAsRead(ctx context.Context, userID string) error   { return nil }
func (r *recordingNotifUC) GetUnreadCount(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

func (r *recordingNotifUC) FanOutNewEvent(ctx context.Context, event *entity.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.FannedEvents = append(r.FannedEvents, event)
}

type eventFixture struct {
	uc      *usecase.EventUsecase
	repo    *fakeEventRepo
	notif   *recordingNotifUC
	storage *fakeStorage
}

func newEventFixture(events ...*entity.Event) *eventFixture {
	repo := newFakeEventRepo(events...)
	notif := &recordingNotifUC{}
	storage := newFakeStorage()
	uc := usecase.NewEventUsecase(repo, notif, storage, &seqUUIDGen{}, fakeLogger{})
	return &eventFixture{uc: uc, repo: repo, notif: notif, storage: storage}
}

func TestCreateEvent_CollectsFieldViolations(t *testing.T) {
	f := newEventFixture()
	creator := &entity.User{ID: "creator", Role: entity.UserRoleBlockOfficer}

	_, err := f.uc.CreateEvent(context.Background(), creator, usecasecontract.CreateEventInput{})
	ve, ok := apperror.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "title")
	assert.Contains(t, ve.Fields, "district")
	assert.Contains(t, ve.Fields, "date")
}

func TestCreateEvent_StoresAttachmentsAndFansOut(t *testing.T) {
	f := newEventFixture()
	creator := &entity.User{ID: "creator", Role: entity.UserRoleBlockOfficer}

	in := usecasecontract.CreateEventInput{
		Title:    "Health Camp",
		District: "Pune",
		Date:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Images: []usecasecontract.FileUpload{
			{FileName: "banner.png", MimeType: "image/png", Reader: strings.NewReader("img")},
		},
		Reports: []usecasecontract.FileUpload{
			{FileName: "plan.pdf", MimeType: "application/pdf", Reader: strings.NewReader("doc")},
		},
	}

	event, err := f.uc.CreateEvent(context.Background(), creator, in)
	require.NoError(t, err)

	assert.Equal(t, "creator", event.CreatedBy)
	require.Len(t, event.Images, 1)
	assert.NotEmpty(t, event.Images[0].StorageID)
	require.Len(t, event.Reports, 1)
	assert.Equal(t, "plan.pdf", event.Reports[0].FileName)
	assert.Len(t, f.storage.Stored, 2)

	require.Len(t, f.notif.FannedEvents, 1)
	assert.Equal(t, event.ID, f.notif.FannedEvents[0].ID)
}

func TestUpdateEvent_OnlyCreatorOrAdmin(t *testing.T) {
	event := testEvent("event-1", "creator")
	f := newEventFixture(event)

	stranger := &entity.User{ID: "stranger", Role: entity.UserRolePublic}
	_, err := f.uc.UpdateEvent(context.Background(), "event-1", stranger, map[string]interface{}{"title": "New"})
	assert.True(t, apperror.IsForbidden(err))

	admin := &entity.User{ID: "someone-else", Role: entity.UserRoleAdmin}
	updated, err := f.uc.UpdateEvent(context.Background(), "event-1", admin, map[string]interface{}{"title": "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
}

func TestDeleteEvent_ReleasesAttachments(t *testing.T) {
	event := testEvent("event-1", "creator")
	event.Images = []entity.ImageRef{{URL: "u", StorageID: "file-a"}}
	event.Reports = []entity.ReportFile{{FileName: "r.pdf", StorageID: "file-b"}}
	f := newEventFixture(event)
	creator := &entity.User{ID: "creator", Role: entity.UserRoleBlockOfficer}

	require.NoError(t, f.uc.DeleteEvent(context.Background(), "event-1", creator))

	_, err := f.uc.GetEventByID(context.Background(), "event-1")
	assert.True(t, apperror.IsNotFound(err))
	assert.ElementsMatch(t, []string{"file-a", "file-b"}, f.storage.Deleted)
}

func TestShareEvent_NotifiesOnlyNewlyAdded(t *testing.T) {
	event := testEvent("event-1", "creator")
	event.SharedWith = []string{"user-a"}
	f := newEventFixture(event)
	creator := &entity.User{ID: "creator", Name: "Creator"}

	shared, err := f.uc.ShareEvent(context.Background(), "event-1", creator, []string{"user-a", "user-b"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"user-a", "user-b"}, shared.SharedWith)
	assert.Len(t, shared.SharedWith, 2)

	// The persisted event carries the same duplicate-free union.
	stored, err := f.uc.GetEventByID(context.Background(), "event-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"user-a", "user-b"}, stored.SharedWith)
	assert.Len(t, stored.SharedWith, 2)

	require.Len(t, f.notif.Created, 1)
	assert.Equal(t, "user-b", f.notif.Created[0].UserID)
}

func TestShareEvent_CreatorOnly(t *testing.T) {
	f := newEventFixture(testEvent("event-1", "creator"))
	admin := &entity.User{ID: "admin-1", Role: entity.UserRoleAdmin}

	_, err := f.uc.ShareEvent(context.Background(), "event-1", admin, []string{"user-a"})
	assert.True(t, apperror.IsForbidden(err))
}

func TestRemoveReportFile_DetachesAndReleases(t *testing.T) {
	event := testEvent("event-1", "creator")
	event.Reports = []entity.ReportFile{
		{FileName: "a.pdf", StorageID: "file-a"},
		{FileName: "b.pdf", StorageID: "file-b"},
	}
	f := newEventFixture(event)
	creator := &entity.User{ID: "creator"}

	require.NoError(t, f.uc.RemoveReportFile(context.Background(), "event-1", creator, "file-a"))

	stored, err := f.uc.GetEventByID(context.Background(), "event-1")
	require.NoError(t, err)
	require.Len(t, stored.Reports, 1)
	assert.Equal(t, "file-b", stored.Reports[0].StorageID)
	assert.Contains(t, f.storage.Deleted, "file-a")

	err = f.uc.RemoveReportFile(context.Background(), "event-1", creator, "file-zzz")
	assert.True(t, apperror.IsNotFound(err))
}
