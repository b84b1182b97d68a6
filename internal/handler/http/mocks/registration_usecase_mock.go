package mocks

import (
	"context"
	"errors"

	"github.com/kartavyango/sahaaya/internal/domain/apperror"
	"github.com/kartavyango/sahaaya/internal/domain/entity"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

// MockRegistrationUsecase is a mock implementation of the IRegistrationUseCase interface
type MockRegistrationUsecase struct {
	// Control mock behavior
	ShouldFailRegister     bool
	ShouldFailValidation   bool
	ShouldFailNotFound     bool
	ShouldFailForbidden    bool
	ShouldFailListForEvent bool
	ShouldFailShare        bool
	ShouldFailUpdateStatus bool

	// Return values
	MockRegistration entity.EventRegistration
}

var _ usecasecontract.IRegistrationUseCase = (*MockRegistrationUsecase)(nil)

func NewMockRegistrationUsecase() *MockRegistrationUsecase {
	return &MockRegistrationUsecase{
		MockRegistration: entity.EventRegistration{
			ID:         "mock-registration-id",
			EventID:    "mock-event-id",
			Name:       "Asha Patil",
			Email:      "asha@example.com",
			Phone:      "+911234567890",
			Age:        29,
			Gender:     entity.GenderFemale,
			Address:    "12 Main Road",
			District:   "Pune",
			Taluka:     "Haveli",
			Village:    "Wagholi",
			Status:     entity.RegistrationStatusPending,
			SharedWith: []string{},
		},
	}
}

func (m *MockRegistrationUsecase) failure() error {
	switch {
	case m.ShouldFailValidation:
		ve := apperror.NewValidation()
		ve.Add("age", "age must be a positive integer")
		return ve
	case m.ShouldFailNotFound:
		return apperror.NotFoundf("event mock-event-id")
	case m.ShouldFailForbidden:
		return apperror.Forbiddenf("not visible to this user")
	}
	return nil
}

func (m *MockRegistrationUsecase) Register(ctx context.Context, eventID string, in usecasecontract.RegistrationInput) (*entity.EventRegistration, error) {
	if err := m.failure(); err != nil {
		return nil, err
	}
	if m.ShouldFailRegister {
		return nil, errors.New("registration failed")
	}
	return &m.MockRegistration, nil
}

func (m *MockRegistrationUsecase) ListForEvent(ctx context.Context, eventID string, requester *entity.User) ([]*entity.EventRegistration, error) {
	if err := m.failure(); err != nil {
		return nil, err
	}
	if m.ShouldFailListForEvent {
		return nil, errors.New("listing failed")
	}
	return []*entity.EventRegistration{&m.MockRegistration}, nil
}

func (m *MockRegistrationUsecase) Share(ctx context.Context, registrationID string, requester *entity.User, userIDs []string) (*entity.EventRegistration, error) {
	if err := m.failure(); err != nil {
		return nil, err
	}
	if m.ShouldFailShare {
		return nil, errors.New("share failed")
	}
	reg := m.MockRegistration
	reg.SharedWith = append(reg.SharedWith, userIDs...)
	return &reg, nil
}

func (m *MockRegistrationUsecase) UpdateStatus(ctx context.Context, registrationID string, requester *entity.User, status string) (*entity.EventRegistration, error) {
	if err := m.failure(); err != nil {
		return nil, err
	}
	if m.ShouldFailUpdateStatus {
		return nil, errors.New("status update failed")
	}
	reg := m.MockRegistration
	reg.Status = entity.RegistrationStatus(status)
	return &reg, nil
}
