package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartavyango/sahaaya/internal/domain/apperror"
	"github.com/kartavyango/sahaaya/internal/domain/entity"
	"github.com/kartavyango/sahaaya/internal/usecase"
)

type registrationFixture struct {
	uc        *usecase.RegistrationUsecase
	regRepo   *fakeRegistrationRepo
	eventRepo *fakeEventRepo
	notifRepo *fakeNotificationRepo
	mail      *fakeMailService
}

func newRegistrationFixture(events ...*entity.Event) *registrationFixture {
	notifRepo := newFakeNotificationRepo()
	userRepo := newFakeUserRepo()
	notifUC := usecase.NewNotificationUsecase(notifRepo, userRepo, &seqUUIDGen{}, fakeLogger{})
	regRepo := newFakeRegistrationRepo()
	eventRepo := newFakeEventRepo(events...)
	mail := &fakeMailService{}
	uc := usecase.NewRegistrationUsecase(regRepo, eventRepo, notifUC, mail, fakeValidator{}, &seqUUIDGen{}, fakeLogger{})
	return &registrationFixture{uc: uc, regRepo: regRepo, eventRepo: eventRepo, notifRepo: notifRepo, mail: mail}
}

func TestRegister_UnknownEventIsNotFound(t *testing.T) {
	f := newRegistrationFixture()

	_, err := f.uc.Register(context.Background(), "missing-event", validRegistrationInput())
	assert.True(t, apperror.IsNotFound(err))
}

func TestRegister_CollectsAllFieldViolations(t *testing.T) {
	f := newRegistrationFixture(testEvent("event-1", "creator"))

	in := validRegistrationInput()
	in.Age = 0
	in.Gender = "unknown"
	in.Village = " "

	_, err := f.uc.Register(context.Background(), "event-1", in)
	require.Error(t, err)

	ve, ok := apperror.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "age")
	assert.Contains(t, ve.Fields, "gender")
	assert.Contains(t, ve.Fields, "village")
	// No registration must be persisted on validation failure.
	regs, _ := f.regRepo.GetRegistrationsByEventID(context.Background(), "event-1")
	assert.Empty(t, regs)
}

func TestRegister_PersistsPendingAndNotifiesCreatorOnce(t *testing.T) {
	f := newRegistrationFixture(testEvent("event-1", "creator"))

	reg, err := f.uc.Register(context.Background(), "event-1", validRegistrationInput())
	require.NoError(t, err)

	assert.Equal(t, entity.RegistrationStatusPending, reg.Status)
	assert.NotEmpty(t, reg.ID)

	created := f.notifRepo.all()
	require.Len(t, created, 1)
	n := created[0]
	assert.Equal(t, "creator", n.UserID)
	assert.Contains(t, n.Message, "Asha Patil")
	assert.Contains(t, n.Message, "Health Camp")
	require.NotNil(t, n.Link)
	assert.Equal(t, "/events/event-1/registrations", *n.Link)
}

func TestRegister_NotificationFailureDoesNotRollBack(t *testing.T) {
	f := newRegistrationFixture(testEvent("event-1", "creator"))
	f.notifRepo.failForUsers["creator"] = true

	reg, err := f.uc.Register(context.Background(), "event-1", validRegistrationInput())
	require.NoError(t, err)

	stored, err := f.regRepo.GetRegistrationByID(context.Background(), reg.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RegistrationStatusPending, stored.Status)
	assert.Empty(t, f.notifRepo.all())
}

func TestListForEvent_VisibilityRules(t *testing.T) {
	event := testEvent("event-1", "creator")
	event.SharedWith = []string{"shared-user"}
	f := newRegistrationFixture(event)

	for i := 0; i < 3; i++ {
		in := validRegistrationInput()
		in.Name = fmt.Sprintf("Registrant %d", i)
		_, err := f.uc.Register(context.Background(), "event-1", in)
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	creator := &entity.User{ID: "creator", Role: entity.UserRoleBlockOfficer}
	shared := &entity.User{ID: "shared-user", Role: entity.UserRolePublic}
	stranger := &entity.User{ID: "stranger", Role: entity.UserRolePublic}

	regs, err := f.uc.ListForEvent(context.Background(), "event-1", creator)
	require.NoError(t, err)
	require.Len(t, regs, 3)
	// Newest first.
	assert.Equal(t, "Registrant 2", regs[0].Name)
	assert.Equal(t, "Registrant 0", regs[2].Name)

	_, err = f.uc.ListForEvent(context.Background(), "event-1", shared)
	assert.NoError(t, err)

	_, err = f.uc.ListForEvent(context.Background(), "event-1", stranger)
	assert.True(t, apperror.IsForbidden(err))

	_, err = f.uc.ListForEvent(context.Background(), "event-1", nil)
	assert.True(t, apperror.IsForbidden(err))
}

func TestShare_UnionIsIdempotentAndNotifiesOnlyAdded(t *testing.T) {
	f := newRegistrationFixture(testEvent("event-1", "creator"))
	creator := &entity.User{ID: "creator", Name: "Creator", Role: entity.UserRoleBlockOfficer}

	reg, err := f.uc.Register(context.Background(), "event-1", validRegistrationInput())
	require.NoError(t, err)
	baseline := len(f.notifRepo.all())

	shared, err := f.uc.Share(context.Background(), reg.ID, creator, []string{"user-a", "user-b"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"user-a", "user-b"}, shared.SharedWith)
	assert.Len(t, f.notifRepo.all(), baseline+2)

	// Re-sharing an existing user adds nothing and stays silent for them.
	shared, err = f.uc.Share(context.Background(), reg.ID, creator, []string{"user-a", "user-c"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"user-a", "user-b", "user-c"}, shared.SharedWith)
	assert.Len(t, shared.SharedWith, 3)
	assert.Len(t, f.notifRepo.all(), baseline+3)

	// The persisted entity holds the same duplicate-free union.
	stored, err := f.regRepo.GetRegistrationByID(context.Background(), reg.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"user-a", "user-b", "user-c"}, stored.SharedWith)
	assert.Len(t, stored.SharedWith, 3)
}

func TestShare_OnlyEventCreatorMayShare(t *testing.T) {
	f := newRegistrationFixture(testEvent("event-1", "creator"))

	reg, err := f.uc.Register(context.Background(), "event-1", validRegistrationInput())
	require.NoError(t, err)

	outsider := &entity.User{ID: "outsider", Role: entity.UserRoleAdmin}
	_, err = f.uc.Share(context.Background(), reg.ID, outsider, []string{"user-a"})
	assert.True(t, apperror.IsForbidden(err))
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	f := newRegistrationFixture(testEvent("event-1", "creator"))
	creator := &entity.User{ID: "creator"}

	reg, err := f.uc.Register(context.Background(), "event-1", validRegistrationInput())
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(context.Background(), reg.ID, creator, "archived")
	ve, ok := apperror.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "status")

	stored, _ := f.regRepo.GetRegistrationByID(context.Background(), reg.ID)
	assert.Equal(t, entity.RegistrationStatusPending, stored.Status)
}

func TestUpdateStatus_NotifiesCreatorAndEmailsRegistrant(t *testing.T) {
	f := newRegistrationFixture(testEvent("event-1", "creator"))
	creator := &entity.User{ID: "creator"}

	reg, err := f.uc.Register(context.Background(), "event-1", validRegistrationInput())
	require.NoError(t, err)
	baseline := len(f.notifRepo.all())

	updated, err := f.uc.UpdateStatus(context.Background(), reg.ID, creator, "approved")
	require.NoError(t, err)
	assert.Equal(t, entity.RegistrationStatusApproved, updated.Status)

	created := f.notifRepo.all()
	require.Len(t, created, baseline+1)
	last := created[len(created)-1]
	assert.Equal(t, "creator", last.UserID)
	assert.Contains(t, last.Message, "pending")
	assert.Contains(t, last.Message, "approved")

	require.Len(t, f.mail.Sent, 1)
	assert.Equal(t, "asha@example.com", f.mail.Sent[0].To)
	assert.Contains(t, f.mail.Sent[0].Body, "approved")
}

func TestUpdateStatus_EmailFailureIsBestEffort(t *testing.T) {
	f := newRegistrationFixture(testEvent("event-1", "creator"))
	creator := &entity.User{ID: "creator"}
	f.mail.ShouldFail = true

	reg, err := f.uc.Register(context.Background(), "event-1", validRegistrationInput())
	require.NoError(t, err)

	updated, err := f.uc.UpdateStatus(context.Background(), reg.ID, creator, "rejected")
	require.NoError(t, err)
	assert.Equal(t, entity.RegistrationStatusRejected, updated.Status)
}
