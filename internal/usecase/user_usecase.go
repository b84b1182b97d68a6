package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kartavyango/sahaaya/internal/domain/apperror"
	"github.com/kartavyango/sahaaya/internal/domain/contract"
	"github.com/kartavyango/sahaaya/internal/domain/entity"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

const errInternalServer = "internal server error"

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo        contract.IUserRepository
	tokenRepo       contract.ITokenRepository
	hasher          contract.IHasher
	jwtService      JWTService
	mailService     contract.IEmailService
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
	validator       usecasecontract.IValidator
	uuidGenerator   contract.IUUIDGenerator
	randomGenerator contract.IRandomGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	tokenRepo contract.ITokenRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	mailService contract.IEmailService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	randomgen contract.IRandomGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		hasher:          hasher,
		jwtService:      jwtService,
		mailService:     mailService,
		logger:          logger,
		config:          cfg,
		validator:       validator,
		uuidGenerator:   uuidGenerator,
		randomGenerator: randomgen,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles self-service signup. New users always get the public
// role; privileged roles are assigned through the admin surface.
func (uc *UserUsecase) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	return uc.CreateUser(ctx, name, email, password, entity.DefaultRole(), nil, nil)
}

// CreateUser provisions a user with an explicit role, enforcing the
// role-specific required fields.
func (uc *UserUsecase) CreateUser(ctx context.Context, name, email, password string, role entity.UserRole, district, officialRole *string) (*entity.User, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		ve := apperror.NewValidation()
		ve.Add("email", "a valid email address is required")
		return nil, ve
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		ve := apperror.NewValidation()
		ve.Add("password", err.Error())
		return nil, ve
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !apperror.IsNotFound(err) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, errors.New(errInternalServer)
	}
	if existing != nil {
		ve := apperror.NewValidation()
		ve.Add("email", fmt.Sprintf("user with email %s already exists", email))
		return nil, ve
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password")
	}

	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		District:     district,
		OfficialRole: officialRole,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := user.ValidateRoleFields(); err != nil {
		ve := apperror.NewValidation()
		ve.Add("role", err.Error())
		return nil, ve
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, fmt.Errorf("failed to register user")
	}

	return user, nil
}

// Login handles user login and token generation.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, "", "", errors.New("invalid credentials")
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", "", errors.New(errInternalServer)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", errors.New("invalid credentials")
	}

	accessToken, refreshToken, err := uc.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	return user, accessToken, refreshToken, nil
}

// Authenticate resolves an access token to its user.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", apperror.ErrUnauthorized)
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.ErrUnauthorized
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, errors.New(errInternalServer)
	}
	return user, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (uc *UserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", "", fmt.Errorf("invalid refresh token: %w", err)
	}

	storedToken, err := uc.tokenRepo.GetTokenByUserID(ctx, claims.UserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return "", "", errors.New("refresh token not found or invalidated, please log in again")
		}
		uc.logger.Errorf("failed to retrieve stored refresh token: %v", err)
		return "", "", errors.New(errInternalServer)
	}

	if storedToken.Revoke {
		return "", "", errors.New("refresh token has been revoked, please log in again")
	}
	if !uc.hasher.CheckHash(refreshToken, storedToken.TokenHash) {
		uc.logger.Warnf("refresh token mismatch for user %s", claims.UserID)
		_ = uc.tokenRepo.RevokeToken(ctx, storedToken.ID)
		return "", "", errors.New("invalid refresh token")
	}
	if storedToken.ExpiresAt.Before(time.Now()) {
		_ = uc.tokenRepo.RevokeToken(ctx, storedToken.ID)
		return "", "", errors.New("refresh token expired, please log in again")
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		uc.logger.Errorf("failed to retrieve user during token refresh: %v", err)
		return "", "", errors.New(errInternalServer)
	}

	newAccessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate new access token during refresh: %v", err)
		return "", "", errors.New("failed to generate new access token")
	}
	newRefreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate new refresh token during refresh: %v", err)
		return "", "", errors.New("failed to generate new refresh token")
	}

	err = uc.tokenRepo.UpdateToken(ctx, storedToken.ID, uc.hasher.HashString(newRefreshToken), time.Now().Add(uc.config.GetRefreshTokenExpiry()))
	if err != nil {
		uc.logger.Errorf("failed to update refresh token in db: %v", err)
		return "", "", errors.New("failed to update token")
	}

	return newAccessToken, newRefreshToken, nil
}

// ForgotPassword initiates the password reset flow over email.
func (uc *UserUsecase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("email not found: %w", err)
	}

	resetToken, err := uc.randomGenerator.GenerateRandomToken(32)
	if err != nil {
		return fmt.Errorf("failed to create password reset token: %w", err)
	}
	hashedResetToken, err := bcrypt.GenerateFromPassword([]byte(resetToken), 7)
	if err != nil {
		return fmt.Errorf("failed to hash reset token: %w", err)
	}
	verifier, err := uc.randomGenerator.GenerateRandomToken(16)
	if err != nil {
		return fmt.Errorf("failed to generate verifier: %w", err)
	}

	tokenEntity := &entity.Token{
		ID:        uc.uuidGenerator.NewUUID(),
		UserID:    user.ID,
		TokenType: entity.TokenTypePasswordReset,
		TokenHash: string(hashedResetToken),
		Verifier:  verifier,
		ExpiresAt: time.Now().Add(uc.config.GetPasswordResetTokenExpiry()),
		CreatedAt: time.Now(),
		Revoke:    false,
	}
	if err := uc.tokenRepo.CreateToken(ctx, tokenEntity); err != nil {
		uc.logger.Errorf("failed to store password reset token for user %s: %v", user.ID, err)
		return errors.New("failed to initiate password reset")
	}

	emailSubject := "Password Reset Request"
	resetLink := fmt.Sprintf("%s/reset-password?verifier=%s&token=%s", uc.config.GetAppBaseURL(), verifier, resetToken)
	emailBody := fmt.Sprintf("Hi %s,\n\nYou have requested to reset your password. Please click the following link to reset your password: %s\n\nIf you did not request this, please ignore this email.\n\nThanks,\nSahaaya", user.Name, resetLink)

	if err := uc.mailService.SendEmail(ctx, user.Email, emailSubject, emailBody); err != nil {
		uc.logger.Errorf("failed to send password reset email to %s: %v", user.Email, err)
		return errors.New("failed to send password reset email")
	}
	return nil
}

// ResetPassword completes the password reset flow using a reset token.
func (uc *UserUsecase) ResetPassword(ctx context.Context, verifier, resetToken, newPassword string) error {
	token, err := uc.tokenRepo.GetTokenByVerifier(ctx, verifier)
	if err != nil {
		return fmt.Errorf("invalid verifier, token does not exist: %w", err)
	}

	if time.Now().After(token.ExpiresAt) {
		return fmt.Errorf("invalid token, it is expired")
	}
	if token.Revoke {
		return fmt.Errorf("invalid token, it is revoked")
	}
	if err = bcrypt.CompareHashAndPassword([]byte(token.TokenHash), []byte(resetToken)); err != nil {
		return fmt.Errorf("token does not match: %w", err)
	}

	hashedPassword, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %v", err)
	}
	if err = uc.userRepo.UpdateUserPassword(ctx, token.UserID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password for user %s: %v", token.UserID, err)
	}
	if err = uc.tokenRepo.RevokeToken(ctx, token.ID); err != nil {
		return fmt.Errorf("failed to revoke reset token")
	}
	return nil
}

// Logout invalidates the stored refresh token of the session.
func (uc *UserUsecase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		uc.logger.Warnf("failed to parse refresh token on logout, assuming it's already invalid: %v", err)
		return nil
	}

	storedToken, err := uc.tokenRepo.GetTokenByUserID(ctx, claims.UserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			uc.logger.Warnf("refresh token for user %s not found during logout, assuming it's already deleted", claims.UserID)
			return nil
		}
		uc.logger.Errorf("failed to retrieve stored refresh token for user %s: %v", claims.UserID, err)
		return errors.New(errInternalServer)
	}

	if err := uc.tokenRepo.RevokeToken(ctx, storedToken.ID); err != nil {
		uc.logger.Errorf("failed to revoke refresh token for user %s: %v", claims.UserID, err)
		return errors.New("failed to revoke token")
	}
	return nil
}

// ChangeUserRole moves a user to a new role, enforcing the role-specific
// required fields (district for block officers, official role for
// official members).
func (uc *UserUsecase) ChangeUserRole(ctx context.Context, userID string, role entity.UserRole, district, officialRole *string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorf("failed to retrieve user for role change: %v", err)
		return nil, errors.New(errInternalServer)
	}

	user.Role = role
	if district != nil {
		user.District = district
	}
	if officialRole != nil {
		user.OfficialRole = officialRole
	}
	if err := user.ValidateRoleFields(); err != nil {
		ve := apperror.NewValidation()
		ve.Add("role", err.Error())
		return nil, ve
	}

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to change role of user %s: %v", userID, err)
		return nil, errors.New("failed to change user role")
	}
	return updated, nil
}

// UpdateProfile allows a registered user to update their profile details.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorf("failed to retrieve user for profile update: %v", err)
		return nil, errors.New(errInternalServer)
	}

	for k, v := range updates {
		switch k {
		case "name":
			if name, ok := v.(string); ok {
				user.Name = name
			}
		case "district":
			if district, ok := v.(string); ok {
				user.District = &district
			}
		case "official_role":
			if officialRole, ok := v.(string); ok {
				user.OfficialRole = &officialRole
			}
		}
	}
	user.UpdatedAt = time.Now()

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to update profile for user %s: %v", userID, err)
		return nil, errors.New("failed to update profile")
	}
	return updated, nil
}

// DeleteUser removes a user. Self-deletion is never allowed.
func (uc *UserUsecase) DeleteUser(ctx context.Context, requester *entity.User, userID string) error {
	if requester != nil && requester.ID == userID {
		return apperror.Forbiddenf("users cannot delete their own account")
	}

	if _, err := uc.userRepo.GetUserByID(ctx, userID); err != nil {
		if apperror.IsNotFound(err) {
			return err
		}
		uc.logger.Errorf("failed to retrieve user for deletion: %v", err)
		return errors.New(errInternalServer)
	}

	if err := uc.userRepo.DeleteUser(ctx, userID); err != nil {
		uc.logger.Errorf("failed to delete user %s: %v", userID, err)
		return errors.New("failed to delete user")
	}
	return nil
}

// GetUserByID retrieves a single user.
func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorf("failed to retrieve user by ID: %v", err)
		return nil, errors.New(errInternalServer)
	}
	return user, nil
}

// GetAllUsers retrieves every user, newest first.
func (uc *UserUsecase) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.userRepo.GetAllUsers(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list users: %v", err)
		return nil, errors.New(errInternalServer)
	}
	return users, nil
}

// LoginWithOAuth signs in (or provisions) a user authenticated by an
// external identity provider.
func (uc *UserUsecase) LoginWithOAuth(ctx context.Context, name, email string) (string, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !apperror.IsNotFound(err) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return "", "", errors.New(errInternalServer)
	}

	if user == nil {
		newUser := &entity.User{
			ID:           uc.uuidGenerator.NewUUID(),
			Name:         name,
			Email:        email,
			PasswordHash: "", // no password for OAuth users
			Role:         entity.DefaultRole(),
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := uc.userRepo.CreateUser(ctx, newUser); err != nil {
			uc.logger.Errorf("failed to create user from OAuth: %v", err)
			return "", "", fmt.Errorf("failed to register user")
		}
		user = newUser
	}

	accessToken, refreshToken, err := uc.issueTokens(ctx, user)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// issueTokens generates an access/refresh pair and stores the refresh
// token's hash.
func (uc *UserUsecase) issueTokens(ctx context.Context, user *entity.User) (string, string, error) {
	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return "", "", errors.New("failed to generate token")
	}
	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate refresh token: %v", err)
		return "", "", errors.New("failed to generate token")
	}

	refreshTokenExpiry := uc.config.GetRefreshTokenExpiry()
	if refreshTokenExpiry <= 0 {
		uc.logger.Errorf("invalid refresh token expiry configuration: %v", refreshTokenExpiry)
		return "", "", errors.New("invalid refresh token expiry configuration")
	}

	tokenEntity := &entity.Token{
		ID:        uc.uuidGenerator.NewUUID(),
		UserID:    user.ID,
		TokenType: entity.TokenTypeRefresh,
		TokenHash: uc.hasher.HashString(refreshToken),
		ExpiresAt: time.Now().Add(refreshTokenExpiry),
		CreatedAt: time.Now(),
		Revoke:    false,
	}
	if err := uc.tokenRepo.CreateToken(ctx, tokenEntity); err != nil {
		uc.logger.Errorf("failed to store refresh token for user %s: %v", user.ID, err)
		return "", "", errors.New("failed to store token")
	}
	return accessToken, refreshToken, nil
}
