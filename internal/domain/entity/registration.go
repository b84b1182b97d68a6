package entity

import (
	"time"
)

// Gender is the closed set of accepted registrant genders.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether g is one of the accepted genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// RegistrationStatus is the closed set of registration states. `pending`
// is the only system-assigned initial value; the update path accepts only
// the states below.
type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// Valid reports whether s is one of the accepted statuses.
func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusApproved, RegistrationStatusRejected:
		return true
	}
	return false
}

// EventRegistration is an anonymous public registration against an event.
// Registrants are not authenticated users; contact happens over email.
// Visible only to the event's creator or to users in SharedWith.
type EventRegistration struct {
	ID         string             `bson:"_id,omitempty" json:"id"`
	EventID    string             `bson:"event_id" json:"event_id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone" json:"phone"`
	Age        int                `bson:"age" json:"age"`
	Gender     Gender             `bson:"gender" json:"gender"`
	Address    string             `bson:"address" json:"address"`
	District   string             `bson:"district" json:"district"`
	Taluka     string             `bson:"taluka" json:"taluka"`
	Village    string             `bson:"village" json:"village"`
	Status     RegistrationStatus `bson:"status" json:"status"`
	SharedWith []string           `bson:"shared_with" json:"shared_with"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// IsSharedWith reports whether the given user has shared read access.
func (r *EventRegistration) IsSharedWith(userID string) bool {
	for _, id := range r.SharedWith {
		if id == userID {
			return true
		}
	}
	return false
}
