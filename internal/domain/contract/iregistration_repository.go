package contract

import (
	"context"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
)

type IRegistrationRepository interface {
	CreateRegistration(ctx context.Context, reg *entity.EventRegistration) error
	GetRegistrationByID(ctx context.Context, id string) (*entity.EventRegistration, error)
	// GetRegistrationsByEventID retrieves all registrations for an event,
	// newest first.
	GetRegistrationsByEventID(ctx context.Context, eventID string) ([]*entity.EventRegistration, error)
	// AddSharedUsers merges the given user ids into the registration's
	// shared-access list without duplicates.
	AddSharedUsers(ctx context.Context, id string, userIDs []string) error
	// UpdateStatus persists the new status of a registration.
	UpdateStatus(ctx context.Context, id string, status entity.RegistrationStatus) error
}
