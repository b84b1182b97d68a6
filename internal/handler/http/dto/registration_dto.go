package dto

import (
	"time"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
)

// RegisterForEventRequest is the payload of a public event registration.
type RegisterForEventRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Address  string `json:"address"`
	District string `json:"district"`
	Taluka   string `json:"taluka"`
	Village  string `json:"village"`
}

// UpdateRegistrationStatusRequest is the payload for a status transition.
type UpdateRegistrationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// RegistrationResponse is the DTO for an event registration.
type RegistrationResponse struct {
	ID         string   `json:"id"`
	EventID    string   `json:"event_id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Age        int      `json:"age"`
	Gender     string   `json:"gender"`
	Address    string   `json:"address"`
	District   string   `json:"district"`
	Taluka     string   `json:"taluka"`
	Village    string   `json:"village"`
	Status     string   `json:"status"`
	SharedWith []string `json:"shared_with"`
	CreatedAt  string   `json:"created_at"`
}

// ToRegistrationResponse converts an entity.EventRegistration to its DTO.
func ToRegistrationResponse(reg entity.EventRegistration) RegistrationResponse {
	return RegistrationResponse{
		ID:         reg.ID,
		EventID:    reg.EventID,
		Name:       reg.Name,
		Email:      reg.Email,
		Phone:      reg.Phone,
		Age:        reg.Age,
		Gender:     string(reg.Gender),
		Address:    reg.Address,
		District:   reg.District,
		Taluka:     reg.Taluka,
		Village:    reg.Village,
		Status:     string(reg.Status),
		SharedWith: reg.SharedWith,
		CreatedAt:  reg.CreatedAt.Format(time.RFC3339),
	}
}

// ToRegistrationResponses converts a slice of registrations.
func ToRegistrationResponses(regs []*entity.EventRegistration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		out = append(out, ToRegistrationResponse(*r))
	}
	return out
}
