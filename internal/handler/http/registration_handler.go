package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kartavyango/sahaaya/internal/handler/http/dto"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

type RegistrationHandler struct {
	registrationUsecase usecasecontract.IRegistrationUseCase
}

func NewRegistrationHandler(registrationUsecase usecasecontract.IRegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUsecase: registrationUsecase,
	}
}

// RegisterHandler handles a public (unauthenticated) event registration
func (h *RegistrationHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterForEventRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	reg, err := h.registrationUsecase.Register(c.Request.Context(), c.Param("eventID"), usecasecontract.RegistrationInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Age:      req.Age,
		Gender:   req.Gender,
		Address:  req.Address,
		District: req.District,
		Taluka:   req.Taluka,
		Village:  req.Village,
	})
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToRegistrationResponse(*reg))
}

// ListForEventHandler handles listing an event's registrations
func (h *RegistrationHandler) ListForEventHandler(c *gin.Context) {
	requester, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	regs, err := h.registrationUsecase.ListForEvent(c.Request.Context(), c.Param("eventID"), requester)
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"registrations": dto.ToRegistrationResponses(regs)})
}

// ShareHandler handles sharing a registration with other users
func (h *RegistrationHandler) ShareHandler(c *gin.Context) {
	requester, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.ShareRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	reg, err := h.registrationUsecase.Share(c.Request.Context(), c.Param("registrationID"), requester, req.UserIDs)
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToRegistrationResponse(*reg))
}

// UpdateStatusHandler handles a registration status transition
func (h *RegistrationHandler) UpdateStatusHandler(c *gin.Context) {
	requester, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateRegistrationStatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	reg, err := h.registrationUsecase.UpdateStatus(c.Request.Context(), c.Param("registrationID"), requester, req.Status)
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToRegistrationResponse(*reg))
}
