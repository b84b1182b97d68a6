package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kartavyango/sahaaya/internal/domain/entity"
	"github.com/kartavyango/sahaaya/internal/handler/http/dto"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Register(*gin.Context)
	CreateUser(*gin.Context)
	Login(*gin.Context)
	GetUser(*gin.Context)
	GetCurrentUser(*gin.Context)
	GetAllUsers(*gin.Context)
	UpdateUser(*gin.Context)
	ChangeUserRole(*gin.Context)
	DeleteUser(*gin.Context)
	ForgotPassword(*gin.Context)
	ResetPassword(*gin.Context)
	RefreshToken(*gin.Context)
	Logout(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// currentUser pulls the authenticated user loaded by the auth middleware.
func currentUser(c *gin.Context) (*entity.User, bool) {
	val, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := val.(*entity.User)
	return user, ok
}

// Register handles self-service signup
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		HandleDomainError(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

// CreateUser handles admin user provisioning with an explicit role
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.CreateUser(c.Request.Context(), req.Name, req.Email, req.Password, entity.UserRole(req.Role), req.District, req.OfficialRole)
	if err != nil {
		HandleDomainError(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, refreshToken, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	response := dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}

	SuccessHandler(c, http.StatusOK, response)
}

// GetUser handles retrieving user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// GetCurrentUser handles retrieving the current authenticated user
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID.(string))
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// GetAllUsers handles listing every user (admin surface)
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userUsecase.GetAllUsers(c.Request.Context())
	if err != nil {
		HandleDomainError(c, err)
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(*u))
	}
	SuccessHandler(c, http.StatusOK, gin.H{"users": out})
}

// UpdateUser handles updating the current user's profile
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := updateUserRequestToMap(req)
	updatedUser, err := h.userUsecase.UpdateProfile(c.Request.Context(), userID.(string), updates)
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*updatedUser))
}

// ChangeUserRole handles moving a user to a new role (admin surface)
func (h *UserHandler) ChangeUserRole(c *gin.Context) {
	var req dto.ChangeRoleRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.ChangeUserRole(c.Request.Context(), c.Param("id"), entity.UserRole(req.Role), req.District, req.OfficialRole)
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// DeleteUser handles removing a user (admin surface, no self-deletion)
func (h *UserHandler) DeleteUser(c *gin.Context) {
	requester, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.userUsecase.DeleteUser(c.Request.Context(), requester, c.Param("id")); err != nil {
		HandleDomainError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "User deleted successfully")
}

// ForgotPassword handles password reset request
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	// Don't reveal whether the email exists.
	_ = h.userUsecase.ForgotPassword(c.Request.Context(), req.Email)
	MessageHandler(c, http.StatusOK, "If an account with that email exists, a password reset link has been sent")
}

// ResetPassword handles password reset with token
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if req.Token == "" || req.Password == "" || req.Verifier == "" {
		ErrorHandler(c, http.StatusBadRequest, "Invalid or missing token/password/verifier")
		return
	}
	if len(req.Password) < 8 {
		ErrorHandler(c, http.StatusBadRequest, "Password must be at least 8 characters long")
		return
	}

	err := h.userUsecase.ResetPassword(c.Request.Context(), req.Verifier, req.Token, req.Password)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid or expired reset token")
		return
	}

	MessageHandler(c, http.StatusOK, "Password reset successfully")
}

// RefreshToken handles token refresh
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.RefreshToken == "" {
		ErrorHandler(c, http.StatusBadRequest, "Refresh token required")
		return
	}

	newAccessToken, newRefreshToken, err := h.userUsecase.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	SuccessHandler(c, http.StatusOK, gin.H{
		"access_token":  newAccessToken,
		"refresh_token": newRefreshToken,
	})
}

// Logout handles user logout
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid or missing refresh token")
		return
	}

	err := h.userUsecase.Logout(c.Request.Context(), req.RefreshToken)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	MessageHandler(c, http.StatusOK, "Logged out successfully")
}

func updateUserRequestToMap(req dto.UpdateUserRequest) map[string]interface{} {
	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.District != nil {
		updates["district"] = *req.District
	}
	if req.OfficialRole != nil {
		updates["official_role"] = *req.OfficialRole
	}

	return updates
}
