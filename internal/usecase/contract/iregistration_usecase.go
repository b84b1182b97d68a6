package usecasecontract

import (
	"context"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
)

// RegistrationInput carries the registrant's contact and demographic
// fields submitted with a public registration.
type RegistrationInput struct {
	Name     string
	Email    string
	Phone    string
	Age      int
	Gender   string
	Address  string
	District string
	Taluka   string
	Village  string
}

// IRegistrationUseCase defines the interface for the event registration flow.
type IRegistrationUseCase interface {
	// Register validates all fields, persists the registration with
	// status pending, then best-effort notifies the event's creator.
	Register(ctx context.Context, eventID string, in RegistrationInput) (*entity.EventRegistration, error)
	// ListForEvent returns all registrations for the event, newest first.
	// Forbidden unless the requester is the event's creator or appears in
	// the event's shared-visibility list.
	ListForEvent(ctx context.Context, eventID string, requester *entity.User) ([]*entity.EventRegistration, error)
	// Share merges userIDs into the registration's shared-access set
	// (creator only) and notifies the newly added users.
	Share(ctx context.Context, registrationID string, requester *entity.User, userIDs []string) (*entity.EventRegistration, error)
	// UpdateStatus moves the registration to a new status (creator only),
	// notifies the creator in-app and the registrant by email.
	UpdateStatus(ctx context.Context, registrationID string, requester *entity.User, status string) (*entity.EventRegistration, error)
}
