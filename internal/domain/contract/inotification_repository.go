package contract

import (
	"context"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
)

type INotificationRepository interface {
	CreateNotification(ctx context.Context, n *entity.Notification) error
	// GetByUserID retrieves one page of a user's notifications, newest
	// first, together with the total count of the user's notifications.
	GetByUserID(ctx context.Context, userID string, page, limit int64) ([]*entity.Notification, int64, error)
	// MarkAsRead flips the read flag of a notification owned by userID.
	// Returns apperror.ErrNotFound when no matching document exists;
	// ownership mismatch and nonexistence are indistinguishable.
	MarkAsRead(ctx context.Context, id, userID string) error
	// MarkAllAsRead flips the read flag of every unread notification of
	// the user. Idempotent.
	MarkAllAsRead(ctx context.Context, userID string) error
	// CountUnread counts the user's unread notifications.
	CountUnread(ctx context.Context, userID string) (int64, error)
}
