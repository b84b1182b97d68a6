package mocks

import (
	"context"
	"errors"

	"github.com/kartavyango/sahaaya/internal/domain/apperror"
	"github.com/kartavyango/sahaaya/internal/domain/entity"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

// MockNotificationUsecase is a mock implementation of the INotificationUseCase interface
type MockNotificationUsecase struct {
	// Control mock behavior
	ShouldFailCreate      bool
	ShouldFailList        bool
	ShouldFailMarkRead    bool
	MarkReadNotFound      bool
	ShouldFailMarkAllRead bool
	ShouldFailUnreadCount bool

	// Return values
	MockNotification entity.Notification
	MockTotalPages   int64
	MockUnreadCount  int64

	// Recorded calls
	FanOutEvents []*entity.Event
}

var _ usecasecontract.INotificationUseCase = (*MockNotificationUsecase)(nil)

func NewMockNotificationUsecase() *MockNotificationUsecase {
	return &MockNotificationUsecase{
		MockNotification: entity.Notification{
			ID:      "mock-notification-id",
			UserID:  "mock-user-id",
			Title:   "New event: Health Camp",
			Message: "A new event has been organised in Pune district.",
			Type:    entity.NotificationTypeInfo,
		},
		MockTotalPages:  1,
		MockUnreadCount: 3,
	}
}

func (m *MockNotificationUsecase) CreateNotification(ctx context.Context, userID, title, message string, typ entity.NotificationType, link *string) (*entity.Notification, error) {
	if m.ShouldFailCreate {
		return nil, errors.New("notification creation failed")
	}
	return &m.MockNotification, nil
}

func (m *MockNotificationUsecase) GetUserNotifications(ctx context.Context, userID string, page, limit int64) ([]*entity.Notification, int64, error) {
	if m.ShouldFailList {
		return nil, 0, errors.New("listing failed")
	}
	return []*entity.Notification{&m.MockNotification}, m.MockTotalPages, nil
}

func (m *MockNotificationUsecase) MarkAsRead(ctx context.Context, id, userID string) error {
	if m.MarkReadNotFound {
		return apperror.NotFoundf("notification %s of user %s", id, userID)
	}
	if m.ShouldFailMarkRead {
		return errors.New("mark as read failed")
	}
	return nil
}

func (m *MockNotificationUsecase) MarkAllAsRead(ctx context.Context, userID string) error {
	if m.ShouldFailMarkAllRead {
		return errors.New("mark all as read failed")
	}
	return nil
}

func (m *MockNotificationUsecase) GetUnreadCount(ctx context.Context, userID string) (int64, error) {
	if m.ShouldFailUnreadCount {
		return 0, errors.New("unread count failed")
	}
	return m.MockUnreadCount, nil
}

func (m *MockNotificationUsecase) FanOutNewEvent(ctx context.Context, event *entity.Event) {
	m.FanOutEvents = append(m.FanOutEvents, event)
}
