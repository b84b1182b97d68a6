package usecasecontract

import (
	"context"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
)

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	// Register signs up a self-service user with the public role.
	Register(ctx context.Context, name, email, password string) (*entity.User, error)
	// CreateUser provisions a user with an explicit role (admin surface).
	CreateUser(ctx context.Context, name, email, password string, role entity.UserRole, district, officialRole *string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, verifier, resetToken, newPassword string) error
	Logout(ctx context.Context, refreshToken string) error
	// ChangeUserRole moves a user to a new role, enforcing the
	// role-specific required fields.
	ChangeUserRole(ctx context.Context, userID string, role entity.UserRole, district, officialRole *string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error)
	// DeleteUser removes a user. Self-deletion is rejected.
	DeleteUser(ctx context.Context, requester *entity.User, userID string) error
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	GetAllUsers(ctx context.Context) ([]*entity.User, error)
	LoginWithOAuth(ctx context.Context, name, email string) (string, string, error)
}
