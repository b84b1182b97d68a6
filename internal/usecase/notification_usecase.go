package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kartavyango/sahaaya/internal/domain/contract"
	"github.com/kartavyango/sahaaya/internal/domain/entity"
	"github.com/kartavyango/sahaaya/internal/metrics"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

const defaultFanoutConcurrency = 8

// NotificationUsecase implements the in-app notification feed: creation,
// pagination, read-state transitions, and the event-creation fan-out.
type NotificationUsecase struct {
	notifRepo contract.INotificationRepository
	userRepo  contract.IUserRepository
	uuidGen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger

	cache       usecasecontract.INotificationCache
	publisher   usecasecontract.IRealtimePublisher
	fanoutLimit int
}

// NewNotificationUsecase creates a new NotificationUsecase instance.
func NewNotificationUsecase(
	notifRepo contract.INotificationRepository,
	userRepo contract.IUserRepository,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *NotificationUsecase {
	return &NotificationUsecase{
		notifRepo:   notifRepo,
		userRepo:    userRepo,
		uuidGen:     uuidGen,
		logger:      logger,
		fanoutLimit: defaultFanoutConcurrency,
	}
}

// check if NotificationUsecase implements INotificationUseCase
var _ usecasecontract.INotificationUseCase = (*NotificationUsecase)(nil)

// SetCache attaches an optional unread-count cache.
func (uc *NotificationUsecase) SetCache(cache usecasecontract.INotificationCache) {
	uc.cache = cache
}

// SetPublisher attaches an optional realtime publisher.
func (uc *NotificationUsecase) SetPublisher(p usecasecontract.IRealtimePublisher) {
	uc.publisher = p
}

// SetFanoutConcurrency overrides the fan-out concurrency bound.
func (uc *NotificationUsecase) SetFanoutConcurrency(n int) {
	if n > 0 {
		uc.fanoutLimit = n
	}
}

// CreateNotification inserts a notification document and returns the
// created record. A persistence failure propagates to the caller;
// fan-out call sites discard it deliberately.
func (uc *NotificationUsecase) CreateNotification(ctx context.Context, userID, title, message string, typ entity.NotificationType, link *string) (*entity.Notification, error) {
	if !typ.Valid() {
		typ = entity.DefaultNotificationType()
	}

	n := &entity.Notification{
		ID:        uc.uuidGen.NewUUID(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		Read:      false,
		Link:      link,
		CreatedAt: time.Now(),
	}

	if err := uc.notifRepo.CreateNotification(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	metrics.NotificationsCreated.WithLabelValues(string(typ)).Inc()

	uc.invalidateUnread(ctx, userID)
	if uc.publisher != nil {
		uc.publisher.Publish(userID, n)
	}

	return n, nil
}

// GetUserNotifications returns one page of the user's notifications,
// newest first, plus the total page count (ceil of total over limit).
// page and limit are 1-based positive integers; no upper bound is
// enforced on limit.
func (uc *NotificationUsecase) GetUserNotifications(ctx context.Context, userID string, page, limit int64) ([]*entity.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	items, total, err := uc.notifRepo.GetByUserID(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	totalPages := (total + limit - 1) / limit
	return items, totalPages, nil
}

// MarkAsRead flips the read flag of a notification owned by userID.
// Ownership mismatch and nonexistence are indistinguishable to the caller.
func (uc *NotificationUsecase) MarkAsRead(ctx context.Context, id, userID string) error {
	if err := uc.notifRepo.MarkAsRead(ctx, id, userID); err != nil {
		return err
	}
	uc.invalidateUnread(ctx, userID)
	return nil
}

// MarkAllAsRead bulk-sets read=true for the user's unread notifications.
// Idempotent.
func (uc *NotificationUsecase) MarkAllAsRead(ctx context.Context, userID string) error {
	if err := uc.notifRepo.MarkAllAsRead(ctx, userID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	uc.invalidateUnread(ctx, userID)
	return nil
}

// GetUnreadCount returns the user's unread notification count, served
// from the cache when one is attached.
func (uc *NotificationUsecase) GetUnreadCount(ctx context.Context, userID string) (int64, error) {
	if uc.cache != nil {
		if count, ok, err := uc.cache.GetUnreadCount(ctx, userID); err == nil && ok {
			return count, nil
		}
	}

	count, err := uc.notifRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.SetUnreadCount(ctx, userID, count); err != nil {
			uc.logger.Warnf("failed to cache unread count for user %s: %v", userID, err)
		}
	}
	return count, nil
}

// FanOutNewEvent notifies every existing user except the event's creator
// about a newly created event. Writes run concurrently under a bounded
// limit; the call waits for all of them and discards individual failures.
// The event-creation caller never sees an error from here.
func (uc *NotificationUsecase) FanOutNewEvent(ctx context.Context, event *entity.Event) {
	userIDs, err := uc.userRepo.GetAllUserIDs(ctx)
	if err != nil {
		uc.logger.Errorf("event fan-out aborted, failed to list users: %v", err)
		return
	}

	link := "/events/" + event.ID
	title := "New event: " + event.Title
	message := fmt.Sprintf("A new event has been organised in %s district.", event.District)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.fanoutLimit)
	for _, id := range userIDs {
		if id == event.CreatedBy {
			continue
		}
		recipient := id
		metrics.FanoutRecipients.Inc()
		g.Go(func() error {
			if _, err := uc.CreateNotification(gctx, recipient, title, message, entity.NotificationTypeInfo, &link); err != nil {
				metrics.FanoutFailures.Inc()
				uc.logger.Warnf("fan-out notification to user %s dropped: %v", recipient, err)
			}
			// Failures are per-recipient and never abort the group.
			return nil
		})
	}
	_ = g.Wait()
}

func (uc *NotificationUsecase) invalidateUnread(ctx context.Context, userID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateUnreadCount(ctx, userID); err != nil {
		uc.logger.Warnf("failed to invalidate unread count cache for user %s: %v", userID, err)
	}
}
