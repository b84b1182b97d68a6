package usecasecontract

import (
	"context"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
)

// INotificationUseCase defines the interface for the notification feed.
type INotificationUseCase interface {
	// CreateNotification inserts a notification and returns the created
	// record. Persistence failures propagate to the caller; fan-out
	// callers discard them.
	CreateNotification(ctx context.Context, userID, title, message string, typ entity.NotificationType, link *string) (*entity.Notification, error)
	// GetUserNotifications returns one page, newest first, plus the total
	// page count computed as ceil(total/limit).
	GetUserNotifications(ctx context.Context, userID string, page, limit int64) ([]*entity.Notification, int64, error)
	MarkAsRead(ctx context.Context, id, userID string) error
	MarkAllAsRead(ctx context.Context, userID string) error
	GetUnreadCount(ctx context.Context, userID string) (int64, error)
	// FanOutNewEvent notifies every existing user except the event's
	// creator. Best effort: waits for all writes, discards individual
	// failures, never returns an error to the event-creation path.
	FanOutNewEvent(ctx context.Context, event *entity.Event)
}
