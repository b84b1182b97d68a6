package entity

import (
	"fmt"
	"time"
)

// User represents a registered user in the system
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         UserRole  `bson:"role" json:"role"`
	District     *string   `bson:"district,omitempty" json:"district,omitempty"`
	OfficialRole *string   `bson:"official_role,omitempty" json:"official_role,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin          UserRole = "admin"
	UserRoleBlockOfficer   UserRole = "block_officer"
	UserRoleOfficialMember UserRole = "official_member"
	UserRolePublic         UserRole = "public"
)

func DefaultRole() UserRole {
	return UserRolePublic
}

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleBlockOfficer, UserRoleOfficialMember, UserRolePublic:
		return true
	}
	return false
}

// ValidateRoleFields enforces the role-specific required fields:
// block officers must carry a district, official members an official role.
func (u *User) ValidateRoleFields() error {
	if !u.Role.Valid() {
		return fmt.Errorf("unknown role %q", u.Role)
	}
	if u.Role == UserRoleBlockOfficer && (u.District == nil || *u.District == "") {
		return fmt.Errorf("district is required for role %s", UserRoleBlockOfficer)
	}
	if u.Role == UserRoleOfficialMember && (u.OfficialRole == nil || *u.OfficialRole == "") {
		return fmt.Errorf("official_role is required for role %s", UserRoleOfficialMember)
	}
	return nil
}
