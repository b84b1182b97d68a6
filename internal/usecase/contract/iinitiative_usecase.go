package usecasecontract

import (
	"context"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
)

// CreateInitiativeInput carries the fields and media of a new initiative.
type CreateInitiativeInput struct {
	Category    entity.InitiativeCategory
	Subcategory string
	Title       string
	Description string
	Content     string
	ListItems   []string
	Images      []FileUpload
	Videos      []FileUpload
	Documents   []FileUpload
	Audio       []FileUpload
}

// IInitiativeUseCase defines the interface for the initiative catalog.
type IInitiativeUseCase interface {
	CreateInitiative(ctx context.Context, creator *entity.User, in CreateInitiativeInput) (*entity.Initiative, error)
	GetInitiativeByID(ctx context.Context, id string) (*entity.Initiative, error)
	GetInitiatives(ctx context.Context, category *entity.InitiativeCategory, page, limit int64) ([]*entity.Initiative, int64, error)
	// UpdateInitiative applies field updates and refreshes the updated_at
	// timestamp. Owner or admin only.
	UpdateInitiative(ctx context.Context, id string, requester *entity.User, updates map[string]interface{}) (*entity.Initiative, error)
	// DeleteInitiative removes the initiative and releases its media from
	// storage. Owner or admin only.
	DeleteInitiative(ctx context.Context, id string, requester *entity.User) error
}
