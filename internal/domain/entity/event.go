package entity

import (
	"time"
)

// ImageRef points at an uploaded event image in external storage.
type ImageRef struct {
	URL       string `bson:"url" json:"url"`
	StorageID string `bson:"storage_id" json:"storage_id"`
}

// ReportFile points at an uploaded report document attached to an event.
type ReportFile struct {
	FileName  string `bson:"file_name" json:"file_name"`
	Size      int64  `bson:"size" json:"size"`
	MimeType  string `bson:"mime_type" json:"mime_type"`
	URL       string `bson:"url" json:"url"`
	StorageID string `bson:"storage_id" json:"storage_id"`
}

// Event is an NGO event with attached media. Attachments are owned by the
// event and must be released from storage when removed or when the event
// is deleted.
type Event struct {
	ID          string       `bson:"_id,omitempty" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description" json:"description"`
	Location    string       `bson:"location" json:"location"`
	District    string       `bson:"district" json:"district"`
	Date        time.Time    `bson:"date" json:"date"`
	EventTime   *string      `bson:"event_time,omitempty" json:"event_time,omitempty"`
	Images      []ImageRef   `bson:"images" json:"images"`
	Reports     []ReportFile `bson:"reports" json:"reports"`
	CreatedBy   string       `bson:"created_by" json:"created_by"`
	SharedWith  []string     `bson:"shared_with" json:"shared_with"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
}

// IsSharedWith reports whether the given user has been granted shared
// visibility into the event's registration list.
func (e *Event) IsSharedWith(userID string) bool {
	for _, id := range e.SharedWith {
		if id == userID {
			return true
		}
	}
	return false
}

// CanModify reports whether the given user may mutate or delete the event.
func (e *Event) CanModify(u *User) bool {
	return u != nil && (u.ID == e.CreatedBy || u.Role == UserRoleAdmin)
}
