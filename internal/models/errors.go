package models

import "errors"

// Domain error kinds. Services return these (possibly wrapped) so handlers can
// map them to status codes and messages with errors.Is instead of matching on
// error strings.
var (
	// ErrDuplicateEmail is returned when a user or employee email is already taken
	ErrDuplicateEmail = errors.New("email already exist")
	// ErrEmailNotFound is returned on login when no user has the given email
	ErrEmailNotFound = errors.New("email or password is wrong")
	// ErrInvalidPassword is returned on login when the password does not match
	ErrInvalidPassword = errors.New("invalid password")
)

// ValidationError reports a malformed or missing request field
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
