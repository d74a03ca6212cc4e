package domain

import (
	"errors"
	"fmt"
)

// Domain-specific errors for better error handling and user feedback
var (
	// ErrLinkNotFound is returned when a link id doesn't resolve within the owner's scope
	ErrLinkNotFound = errors.New("link not found")

	// ErrCategoryNotFound is returned when a category id doesn't resolve
	ErrCategoryNotFound = errors.New("category not found")

	// ErrProfileNotFound is returned when a profile slug or owner id doesn't resolve
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidInput is returned when input fails a pre-store validation check
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned on failed login attempts
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering with an existing email
	ErrEmailTaken = errors.New("email already registered")

	// ErrSlugTaken is returned when a profile slug is already in use
	ErrSlugTaken = errors.New("profile slug already exists")

	// ErrPartialAnalytics is returned when one of the analytics sub-reads fails.
	// The composite result is withheld rather than returned incomplete.
	ErrPartialAnalytics = errors.New("analytics aggregation incomplete")

	// ErrRateLimitExceeded is returned when rate limit is hit
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)

// AppError wraps errors with additional context for better debugging
type AppError struct {
	Err        error  // Original error
	Message    string // User-friendly message
	StatusCode int    // HTTP status code
	Internal   bool   // Whether to log as internal error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error for errors.Is and errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error with context
func NewAppError(err error, message string, statusCode int, internal bool) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		StatusCode: statusCode,
		Internal:   internal,
	}
}

// NewNotFoundError creates a 404 error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Err:        fmt.Errorf("%s not found", resource),
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: 404,
		Internal:   false,
	}
}

// NewValidationError creates a 400 validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Err:        ErrInvalidInput,
		Message:    message,
		StatusCode: 400,
		Internal:   false,
	}
}

// NewInternalError creates a 500 internal server error
func NewInternalError(err error) *AppError {
	return &AppError{
		Err:        err,
		Message:    "Internal server error occurred",
		StatusCode: 500,
		Internal:   true, // Log this error
	}
}
