package usecasecontract

import (
	"context"
	"io"
	"time"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
)

// FileUpload carries one incoming multipart file into a usecase.
type FileUpload struct {
	FileName string
	Size     int64
	MimeType string
	Reader   io.Reader
}

// CreateEventInput carries the fields and attachments of a new event.
type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	District    string
	Date        time.Time
	EventTime   *string
	Images      []FileUpload
	Reports     []FileUpload
}

// IEventUseCase defines the interface for the event lifecycle.
type IEventUseCase interface {
	// CreateEvent stores the event and its attachments, then fans out a
	// "new event" notification to every other user (best effort).
	CreateEvent(ctx context.Context, creator *entity.User, in CreateEventInput) (*entity.Event, error)
	GetEvents(ctx context.Context, page, limit int64) ([]*entity.Event, int64, error)
	GetEventByID(ctx context.Context, id string) (*entity.Event, error)
	// UpdateEvent applies field updates. Creator or admin only.
	UpdateEvent(ctx context.Context, id string, requester *entity.User, updates map[string]interface{}) (*entity.Event, error)
	// DeleteEvent removes the event and releases its attachments from
	// storage. Creator or admin only.
	DeleteEvent(ctx context.Context, id string, requester *entity.User) error
	// ShareEvent grants the given users shared visibility into the
	// event's registration list. Creator only.
	ShareEvent(ctx context.Context, id string, requester *entity.User, userIDs []string) (*entity.Event, error)
	// RemoveReportFile detaches one report attachment and releases it
	// from storage. Creator or admin only.
	RemoveReportFile(ctx context.Context, id string, requester *entity.User, storageID string) error
}
