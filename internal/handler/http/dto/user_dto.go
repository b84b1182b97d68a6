package dto

import (
	"time"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
)

// RegisterRequest is the payload for self-service signup.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// CreateUserRequest is the payload for admin user provisioning.
type CreateUserRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=8"`
	Role         string  `json:"role" binding:"required"`
	District     *string `json:"district"`
	OfficialRole *string `json:"official_role"`
}

// ChangeRoleRequest is the payload for moving a user to a new role.
type ChangeRoleRequest struct {
	Role         string  `json:"role" binding:"required"`
	District     *string `json:"district"`
	OfficialRole *string `json:"official_role"`
}

// LoginRequest is the payload for credential login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is the payload for profile updates.
type UpdateUserRequest struct {
	Name         *string `json:"name"`
	District     *string `json:"district"`
	OfficialRole *string `json:"official_role"`
}

// ForgotPasswordRequest is the payload for initiating a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest is the payload for completing a password reset.
type ResetPasswordRequest struct {
	Verifier string `json:"verifier"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

// RefreshTokenRequest carries a refresh token for rotation or logout.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UserResponse is the DTO for a user.
type UserResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	District     *string `json:"district,omitempty"`
	OfficialRole *string `json:"official_role,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// ToUserResponse converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         string(user.Role),
		District:     user.District,
		OfficialRole: user.OfficialRole,
		CreatedAt:    user.CreatedAt.Format(time.RFC3339),
	}
}
