package service

import "errors"

// Domain errors translated to status codes at the handler boundary.
var (
	// ErrConflict signals a username or email uniqueness violation.
	ErrConflict = errors.New("user already exists")
	// ErrInvalidCredentials is deliberately generic: unknown email and wrong
	// password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSessionInvalid covers absent, malformed, unknown, and expired tokens.
	ErrSessionInvalid = errors.New("invalid session")
	// ErrUserNotFound signals a session whose user row no longer exists.
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError reports the first violated field of a request payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
