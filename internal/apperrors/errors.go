package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation would violate an invariant held by existing data.
var ErrConflict = errors.New("conflict with existing data")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks the role required for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unclassified internal failure, typically a store write
// that failed for reasons other than the above.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower-level error with an HTTP-ish status code and a message.
// Repositories return these for persistence failures so handlers can surface them
// without losing the cause.
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
	if e.Err != nil {
		return e.Err
	}
	switch e.Code {
	case 404:
		return ErrNotFound
	case 409:
		return ErrConflict
	case 400:
		return ErrValidation
	default:
		return ErrInternal
	}
}

// NewAppError creates a new AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that unwraps to ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// ValidationError collects every violated rule of a single request so callers can
// report all of them at once instead of just the first.
type ValidationError struct {
	Violations []string
}

// NewValidationError creates an empty collector. Returning one with no
// violations added is a bug; check HasViolations before returning it.
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// Is makes errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Add appends a violation described by the format string.
func (e *ValidationError) Add(format string, args ...any) {
	e.Violations = append(e.Violations, fmt.Sprintf(format, args...))
}

// HasViolations reports whether any rule failed.
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}
