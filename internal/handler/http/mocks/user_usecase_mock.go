package mocks

import (
	"context"
	"errors"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister       bool
	ShouldFailCreateUser     bool
	ShouldFailLogin          bool
	ShouldFailGetByID        bool
	ShouldFailGetAllUsers    bool
	ShouldFailUpdateUser     bool
	ShouldFailChangeRole     bool
	ShouldFailDeleteUser     bool
	ShouldFailForgotPassword bool
	ShouldFailResetPassword  bool
	ShouldFailRefreshToken   bool
	ShouldFailLogout         bool
	ShouldFailAuthenticate   bool
	ShouldFailLoginWithOAuth bool

	// Return values
	MockUser         entity.User
	MockAccessToken  string
	MockRefreshToken string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:    "mock-user-id",
			Name:  "Test User",
			Email: "test@example.com",
			Role:  entity.UserRolePublic,
		},
		MockAccessToken:  "mock_access_token",
		MockRefreshToken: "mock_refresh_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	if m.ShouldFailRegister {
		return nil, errors.New("user registration failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) CreateUser(ctx context.Context, name, email, password string, role entity.UserRole, district, officialRole *string) (*entity.User, error) {
	if m.ShouldFailCreateUser {
		return nil, errors.New("user creation failed")
	}
	user := m.MockUser
	user.Role = role
	user.District = district
	user.OfficialRole = officialRole
	return &user, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	if m.ShouldFailLogin {
		return nil, "", "", errors.New("login failed")
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, errors.New("authentication failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	if m.ShouldFailRefreshToken {
		return "", "", errors.New("refresh token failed")
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) ForgotPassword(ctx context.Context, email string) error {
	if m.ShouldFailForgotPassword {
		return errors.New("forgot password failed")
	}
	return nil
}

func (m *MockUserUsecase) ResetPassword(ctx context.Context, verifier, token, password string) error {
	if m.ShouldFailResetPassword {
		return errors.New("reset password failed")
	}
	return nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, refreshToken string) error {
	if m.ShouldFailLogout {
		return errors.New("logout failed")
	}
	return nil
}

func (m *MockUserUsecase) ChangeUserRole(ctx context.Context, userID string, role entity.UserRole, district, officialRole *string) (*entity.User, error) {
	if m.ShouldFailChangeRole {
		return nil, errors.New("role change failed")
	}
	user := m.MockUser
	user.Role = role
	return &user, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	if m.ShouldFailUpdateUser {
		return nil, errors.New("update user failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, requester *entity.User, userID string) error {
	if m.ShouldFailDeleteUser {
		return errors.New("delete user failed")
	}
	return nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, errors.New("user not found")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	if m.ShouldFailGetAllUsers {
		return nil, errors.New("list users failed")
	}
	return []*entity.User{&m.MockUser}, nil
}

func (m *MockUserUsecase) LoginWithOAuth(ctx context.Context, name, email string) (string, string, error) {
	if m.ShouldFailLoginWithOAuth {
		return "", "", errors.New("login with OAuth failed")
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}
