// Package apperr defines the error kinds shared by the stores, the services
// and the HTTP layer. Callers match kinds with errors.Is / errors.As rather
// than inspecting messages.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateKey is returned when a reservation number is already stored.
	ErrDuplicateKey = errors.New("reservation number already exists")

	// ErrStorageUnavailable wraps any I/O failure of a backing file.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidCredentials is returned by Login for any username/password mismatch.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotAuthenticated is returned when no session token was presented.
	ErrNotAuthenticated = errors.New("not logged in")

	// ErrSessionExpired is returned for a token that is not a live session.
	ErrSessionExpired = errors.New("session expired, please login again")

	// ErrUnknownRoomType is returned for a room type without a rate.
	ErrUnknownRoomType = errors.New("unknown room type")
)

// ValidationError describes a single rejected input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v *ValidationError) Error() string {
	return v.Message
}

// NewValidation builds a ValidationError for field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidationErrors collects every rejected field of one request.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// As lets errors.As(err, **ValidationError) pick the first field error.
func (v ValidationErrors) As(target any) bool {
	t, ok := target.(**ValidationError)
	if !ok || len(v) == 0 {
		return false
	}
	*t = v[0]
	return true
}

// Storage wraps an I/O failure so that it matches ErrStorageUnavailable.
func Storage(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}
