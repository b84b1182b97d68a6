package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartavyango/sahaaya/internal/domain/apperror"
	"github.com/kartavyango/sahaaya/internal/domain/entity"
	"github.com/kartavyango/sahaaya/internal/usecase"
)

func newNotificationFixture(users ...*entity.User) (*usecase.NotificationUsecase, *fakeNotificationRepo, *fakeUserRepo) {
	notifRepo := newFakeNotificationRepo()
	userRepo := newFakeUserRepo(users...)
	uc := usecase.NewNotificationUsecase(notifRepo, userRepo, &seqUUIDGen{}, fakeLogger{})
	return uc, notifRepo, userRepo
}

func TestCreateNotification_DefaultsUnknownType(t *testing.T) {
	uc, repo, _ := newNotificationFixture()

	n, err := uc.CreateNotification(context.Background(), "user-1", "Hello", "World", entity.NotificationType("bogus"), nil)
	require.NoError(t, err)

	assert.Equal(t, entity.NotificationTypeInfo, n.Type)
	assert.False(t, n.Read)
	assert.Len(t, repo.all(), 1)
}

func TestGetUserNotifications_TotalPagesIsCeil(t *testing.T) {
	uc, _, _ := newNotificationFixture()

	for i := 0; i < 7; i++ {
		_, err := uc.CreateNotification(context.Background(), "user-1", "t", "m", entity.NotificationTypeInfo, nil)
		require.NoError(t, err)
	}

	items, totalPages, err := uc.GetUserNotifications(context.Background(), "user-1", 1, 3)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, int64(3), totalPages) // ceil(7/3)

	// Out-of-range page is empty, not an error.
	items, totalPages, err = uc.GetUserNotifications(context.Background(), "user-1", 5, 3)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(3), totalPages)
}

func TestGetUserNotifications_NormalizesPagination(t *testing.T) {
	uc, _, _ := newNotificationFixture()

	_, err := uc.CreateNotification(context.Background(), "user-1", "t", "m", entity.NotificationTypeInfo, nil)
	require.NoError(t, err)

	items, totalPages, err := uc.GetUserNotifications(context.Background(), "user-1", 0, -5)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(1), totalPages)
}

func TestMarkAsRead_ForeignUserReadsAsNotFound(t *testing.T) {
	uc, _, _ := newNotificationFixture()

	n, err := uc.CreateNotification(context.Background(), "user-1", "t", "m", entity.NotificationTypeInfo, nil)
	require.NoError(t, err)

	err = uc.MarkAsRead(context.Background(), n.ID, "user-2")
	assert.True(t, apperror.IsNotFound(err))

	require.NoError(t, uc.MarkAsRead(context.Background(), n.ID, "user-1"))
}

func TestMarkAllAsRead_Idempotent(t *testing.T) {
	uc, _, _ := newNotificationFixture()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := uc.CreateNotification(ctx, "user-1", "t", "m", entity.NotificationTypeInfo, nil)
		require.NoError(t, err)
	}

	require.NoError(t, uc.MarkAllAsRead(ctx, "user-1"))
	count, err := uc.GetUnreadCount(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// Second pass changes nothing and still succeeds.
	require.NoError(t, uc.MarkAllAsRead(ctx, "user-1"))
	count, err = uc.GetUnreadCount(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGetUnreadCount_ServedFromCacheWhenAttached(t *testing.T) {
	uc, _, _ := newNotificationFixture()
	cache := newFakeNotificationCache()
	uc.SetCache(cache)
	ctx := context.Background()

	_, err := uc.CreateNotification(ctx, "user-1", "t", "m", entity.NotificationTypeInfo, nil)
	require.NoError(t, err)

	// First read misses and fills the cache.
	count, err := uc.GetUnreadCount(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 1, cache.Sets)

	// Second read is a cache hit.
	count, err = uc.GetUnreadCount(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 1, cache.Sets)

	// A new notification invalidates the cached count.
	_, err = uc.CreateNotification(ctx, "user-1", "t", "m", entity.NotificationTypeInfo, nil)
	require.NoError(t, err)
	count, err = uc.GetUnreadCount(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFanOutNewEvent_NotifiesEveryoneButCreator(t *testing.T) {
	users := []*entity.User{
		{ID: "creator", Role: entity.UserRoleBlockOfficer},
		{ID: "user-a", Role: entity.UserRolePublic},
		{ID: "user-b", Role: entity.UserRolePublic},
		{ID: "user-c", Role: entity.UserRoleAdmin},
	}
	uc, repo, _ := newNotificationFixture(users...)

	event := testEvent("event-1", "creator")
	uc.FanOutNewEvent(context.Background(), event)

	created := repo.all()
	assert.Len(t, created, 3)
	for _, n := range created {
		assert.NotEqual(t, "creator", n.UserID)
		assert.True(t, strings.Contains(n.Title, event.Title))
		require.NotNil(t, n.Link)
		assert.Equal(t, "/events/event-1", *n.Link)
	}
}

func TestFanOutNewEvent_RecipientFailureDoesNotAbortOthers(t *testing.T) {
	users := []*entity.User{
		{ID: "creator"},
		{ID: "user-a"},
		{ID: "user-b"},
		{ID: "user-c"},
	}
	uc, repo, _ := newNotificationFixture(users...)
	repo.failForUsers["user-b"] = true

	uc.FanOutNewEvent(context.Background(), testEvent("event-1", "creator"))

	created := repo.all()
	assert.Len(t, created, 2)
	for _, n := range created {
		assert.NotEqual(t, "user-b", n.UserID)
	}
}
