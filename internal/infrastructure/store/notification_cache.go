package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

// NotificationCacheStore caches per-user unread notification counts in
// Redis. A miss or a decode failure is reported as absent, never as an
// error the caller must handle.
type NotificationCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewNotificationCacheStore(rdb *redis.Client) *NotificationCacheStore {
	return &NotificationCacheStore{
		rdb: rdb,
		ttl: 5 * time.Minute,
	}
}

var _ usecasecontract.INotificationCache = (*NotificationCacheStore)(nil)

func unreadCountKey(userID string) string { return fmt.Sprintf("notifications:unread:%s", userID) }

func (c *NotificationCacheStore) GetUnreadCount(ctx context.Context, userID string) (int64, bool, error) {
	val, err := c.rdb.Get(ctx, unreadCountKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, err
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return count, true, nil
}

func (c *NotificationCacheStore) SetUnreadCount(ctx context.Context, userID string, count int64) error {
	return c.rdb.Set(ctx, unreadCountKey(userID), strconv.FormatInt(count, 10), c.ttl).Err()
}

func (c *NotificationCacheStore) InvalidateUnreadCount(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, unreadCountKey(userID)).Err()
}
