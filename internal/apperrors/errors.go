package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the domain error taxonomy. Services return these
// (usually wrapped with fmt.Errorf("%w: ...")) and handlers map them to
// HTTP status codes.
var (
	// ErrNotFound indicates that a requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = errors.New("validation error")

	// ErrConflict indicates a uniqueness violation, e.g. a second open
	// session on a cash register or a duplicate register code.
	ErrConflict = errors.New("resource conflict")

	// ErrInvalidState indicates an operation that is not legal for the
	// entity's current status, e.g. closing an already-closed session.
	ErrInvalidState = errors.New("invalid state for operation")

	// ErrForbidden indicates the caller lacks the role or ownership
	// required for the operation.
	ErrForbidden = errors.New("operation forbidden")

	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRefreshTokenExpired indicates the stored refresh token has expired.
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// AppError wraps an underlying error with an HTTP-ish code and a message
// suitable for logging. Repositories use it for unexpected database errors.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that unwraps to ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
