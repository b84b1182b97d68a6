package entity

import (
	"time"
)

// InitiativeCategory is the closed set of initiative categories.
type InitiativeCategory string

const (
	InitiativeCategoryRehabilitation InitiativeCategory = "rehabilitation"
	InitiativeCategoryOutreach       InitiativeCategory = "outreach"
	InitiativeCategoryEducation      InitiativeCategory = "education"
	InitiativeCategoryPolicy         InitiativeCategory = "policy"
)

// Valid reports whether c is one of the known categories.
func (c InitiativeCategory) Valid() bool {
	switch c {
	case InitiativeCategoryRehabilitation, InitiativeCategoryOutreach,
		InitiativeCategoryEducation, InitiativeCategoryPolicy:
		return true
	}
	return false
}

// MediaFile describes one uploaded media asset of an initiative.
type MediaFile struct {
	FileName string `bson:"file_name" json:"file_name"`
	Path     string `bson:"path" json:"path"`
	MimeType string `bson:"mime_type" json:"mime_type"`
	Size     int64  `bson:"size" json:"size"`
}

// InitiativeMedia holds the initiative's media assets grouped by kind.
type InitiativeMedia struct {
	Images    []MediaFile `bson:"images" json:"images"`
	Videos    []MediaFile `bson:"videos" json:"videos"`
	Documents []MediaFile `bson:"documents" json:"documents"`
	Audio     []MediaFile `bson:"audio" json:"audio"`
}

// All returns every media file of the initiative regardless of kind.
func (m InitiativeMedia) All() []MediaFile {
	out := make([]MediaFile, 0, len(m.Images)+len(m.Videos)+len(m.Documents)+len(m.Audio))
	out = append(out, m.Images...)
	out = append(out, m.Videos...)
	out = append(out, m.Documents...)
	out = append(out, m.Audio...)
	return out
}

// Initiative is a media-rich content page in the initiative catalog.
// UpdatedAt is refreshed on every save.
type Initiative struct {
	ID          string             `bson:"_id,omitempty" json:"id"`
	Category    InitiativeCategory `bson:"category" json:"category"`
	Subcategory string             `bson:"subcategory" json:"subcategory"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Content     string             `bson:"content" json:"content"`
	Media       InitiativeMedia    `bson:"media" json:"media"`
	ListItems   []string           `bson:"list_items" json:"list_items"`
	CreatedBy   string             `bson:"created_by" json:"created_by"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// CanModify reports whether the given user may mutate or delete the initiative.
func (i *Initiative) CanModify(u *User) bool {
	return u != nil && (u.ID == i.CreatedBy || u.Role == UserRoleAdmin)
}
