package contract

import (
	"context"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
)

type IEventRepository interface {
	CreateEvent(ctx context.Context, event *entity.Event) error
	GetEventByID(ctx context.Context, id string) (*entity.Event, error)
	// GetEvents retrieves a page of events, newest first, together with
	// the total event count.
	GetEvents(ctx context.Context, page, limit int64) ([]*entity.Event, int64, error)
	// UpdateEvent applies the given field updates to an event.
	UpdateEvent(ctx context.Context, id string, updates map[string]interface{}) error
	DeleteEvent(ctx context.Context, id string) error
	// AddSharedUsers merges the given user ids into the event's
	// shared-visibility list without duplicates.
	AddSharedUsers(ctx context.Context, id string, userIDs []string) error
	// RemoveReportFile detaches a report file reference by storage id.
	RemoveReportFile(ctx context.Context, id, storageID string) error
}
