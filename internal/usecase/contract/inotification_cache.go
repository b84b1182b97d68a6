package usecasecontract

import "context"

// INotificationCache caches per-user unread counts. Optional; the
// notification usecase works without it.
type INotificationCache interface {
	GetUnreadCount(ctx context.Context, userID string) (int64, bool, error)
	SetUnreadCount(ctx context.Context, userID string, count int64) error
	InvalidateUnreadCount(ctx context.Context, userID string) error
}
