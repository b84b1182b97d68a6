package contract

import (
	"context"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetAllUsers retrieves every user, newest first.
	GetAllUsers(ctx context.Context) ([]*entity.User, error)
	// GetAllUserIDs retrieves the ids of every user. Used by the
	// event-creation notification fan-out.
	GetAllUserIDs(ctx context.Context) ([]string, error)
	// UpdateUser updates an existing user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// UpdateUserPassword updates user's password by ID with the provided hashed password.
	UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error
	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id string) error
}
