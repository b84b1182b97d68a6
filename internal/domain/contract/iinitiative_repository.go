package contract

import (
	"context"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
)

// InitiativeFilterOptions holds database-agnostic parameters for
// filtering and paginating the initiative catalog.
type InitiativeFilterOptions struct {
	Category *entity.InitiativeCategory
	Page     int64
	Limit    int64
}

type IInitiativeRepository interface {
	CreateInitiative(ctx context.Context, ini *entity.Initiative) error
	GetInitiativeByID(ctx context.Context, id string) (*entity.Initiative, error)
	// GetInitiatives retrieves a page of initiatives, newest first,
	// together with the total matching count.
	GetInitiatives(ctx context.Context, opts *InitiativeFilterOptions) ([]*entity.Initiative, int64, error)
	// UpdateInitiative applies the given field updates and refreshes the
	// updated_at timestamp.
	UpdateInitiative(ctx context.Context, id string, updates map[string]interface{}) error
	DeleteInitiative(ctx context.Context, id string) error
}
