// Package apperror defines the error taxonomy shared by usecases and the
// HTTP layer. Handlers map these kinds onto status codes; anything that is
// none of them is reported to callers as a generic server error.
package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound signals that a referenced entity does not exist. It is
	// also returned on ownership mismatches where revealing existence
	// would leak information.
	ErrNotFound = errors.New("not found")

	// ErrForbidden signals an authenticated but not permitted caller.
	ErrForbidden = errors.New("forbidden")

	// ErrUnauthorized signals a missing, invalid, or expired credential.
	ErrUnauthorized = errors.New("unauthorized")
)

// NotFoundf wraps ErrNotFound with context.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// Forbiddenf wraps ErrForbidden with context.
func Forbiddenf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrForbidden)...)
}

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsForbidden reports whether err is (or wraps) ErrForbidden.
func IsForbidden(err error) bool { return errors.Is(err, ErrForbidden) }

// ValidationError collects every violated field of a request so callers
// see all violations at once.
type ValidationError struct {
	Fields map[string]string
}

// NewValidation returns an empty ValidationError ready to collect fields.
func NewValidation() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a violation for the named field. The first message per
// field wins.
func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

// HasErrors reports whether any field violation was recorded.
func (e *ValidationError) HasErrors() bool { return len(e.Fields) > 0 }

// ErrOrNil returns the error itself when violations exist, nil otherwise.
func (e *ValidationError) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidation extracts a ValidationError from err, if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
