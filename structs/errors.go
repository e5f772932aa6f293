package structs

import "errors"

// Sentinel domain errors. Handlers map these to HTTP failure responses.
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
	ErrRecipeNotFound         = errors.New("recipe not found")
	ErrResetTokenInvalid      = errors.New("reset token invalid")
	ErrResetTokenExpired      = errors.New("reset token expired")
	ErrWrongPassword          = errors.New("wrong current password")
)

// ValidationError carries a client-facing message for a rejected input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
