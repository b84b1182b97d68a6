package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kartavyango/sahaaya/internal/domain/apperror"
	"github.com/kartavyango/sahaaya/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// HandleDomainError maps usecase errors onto HTTP status codes. Validation
// errors carry their per-field messages; everything unrecognized collapses
// to a generic 500 so internals never leak.
func HandleDomainError(c *gin.Context, err error) {
	if ve, ok := apperror.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Error:  "validation failed",
			Fields: ve.Fields,
		})
		return
	}
	switch {
	case errors.Is(err, apperror.ErrUnauthorized):
		ErrorHandler(c, http.StatusUnauthorized, "unauthorized")
	case apperror.IsForbidden(err):
		ErrorHandler(c, http.StatusForbidden, "forbidden")
	case apperror.IsNotFound(err):
		ErrorHandler(c, http.StatusNotFound, "not found")
	default:
		ErrorHandler(c, http.StatusInternalServerError, "internal server error")
	}
}
