package entity

import (
	"time"
)

// NotificationType classifies a notification for the client UI.
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
)

func DefaultNotificationType() NotificationType {
	return NotificationTypeInfo
}

// Valid reports whether t is one of the known notification types.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeInfo, NotificationTypeSuccess, NotificationTypeWarning, NotificationTypeError:
		return true
	}
	return false
}

// Notification is an in-app feed item for a single recipient. Created only
// through the notification usecase; mutated only by read-state transitions.
type Notification struct {
	ID        string           `bson:"_id,omitempty" json:"id"`
	UserID    string           `bson:"user_id" json:"user_id"`
	Title     string           `bson:"title" json:"title"`
	Message   string           `bson:"message" json:"message"`
	Type      NotificationType `bson:"type" json:"type"`
	Read      bool             `bson:"read" json:"read"`
	Link      *string          `bson:"link,omitempty" json:"link,omitempty"`
	CreatedAt time.Time        `bson:"created_at" json:"created_at"`
}
