package dto

import (
	"time"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
)

// UpdateEventRequest is the payload for event field updates.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	District    *string `json:"district"`
	Date        *string `json:"date"`
	EventTime   *string `json:"event_time"`
}

// ShareRequest carries the user ids to grant shared access to.
type ShareRequest struct {
	UserIDs []string `json:"user_ids" binding:"required"`
}

// EventResponse is the DTO for an event.
type EventResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Location    string              `json:"location"`
	District    string              `json:"district"`
	Date        string              `json:"date"`
	EventTime   *string             `json:"event_time,omitempty"`
	Images      []entity.ImageRef   `json:"images"`
	Reports     []entity.ReportFile `json:"reports"`
	CreatedBy   string              `json:"created_by"`
	SharedWith  []string            `json:"shared_with"`
	CreatedAt   string              `json:"created_at"`
}

// PaginatedEventsResponse is one page of events.
type PaginatedEventsResponse struct {
	Events     []EventResponse `json:"events"`
	Total      int64           `json:"total"`
	Page       int64           `json:"page"`
	Limit      int64           `json:"limit"`
	TotalPages int64           `json:"total_pages"`
}

// ToEventResponse converts an entity.Event to an EventResponse DTO.
func ToEventResponse(event entity.Event) EventResponse {
	return EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		District:    event.District,
		Date:        event.Date.Format(time.RFC3339),
		EventTime:   event.EventTime,
		Images:      event.Images,
		Reports:     event.Reports,
		CreatedBy:   event.CreatedBy,
		SharedWith:  event.SharedWith,
		CreatedAt:   event.CreatedAt.Format(time.RFC3339),
	}
}

// ToEventResponses converts a slice of events.
func ToEventResponses(events []*entity.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ToEventResponse(*e))
	}
	return out
}
