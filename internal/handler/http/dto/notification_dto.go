package dto

import (
	"time"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
)

// NotificationResponse is the DTO for one feed entry.
type NotificationResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	Type      string  `json:"type"`
	Read      bool    `json:"read"`
	Link      *string `json:"link,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// PaginatedNotificationsResponse is one page of the notification feed.
type PaginatedNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Page          int64                  `json:"page"`
	Limit         int64                  `json:"limit"`
	TotalPages    int64                  `json:"total_pages"`
}

// UnreadCountResponse carries the unread notification count.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// ToNotificationResponse converts an entity.Notification to its DTO.
func ToNotificationResponse(n entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Read:      n.Read,
		Link:      n.Link,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

// ToNotificationResponses converts a slice of notifications.
func ToNotificationResponses(items []*entity.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, ToNotificationResponse(*n))
	}
	return out
}
