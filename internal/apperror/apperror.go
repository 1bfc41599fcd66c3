package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("Validation Error")
	ErrConflict      = errors.New("conflict")
	ErrQuotaExceeded = errors.New("quota exceeded")
)

type AppError struct {
	Err     error  // actual error
	Message string // Human-readable error message
	Field   string // Optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

// NotFoundMessage is NotFound with a caller-supplied message, for cases
// where the "resource + id" phrasing doesn't fit (e.g. "logs not found").
func NotFoundMessage(message string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: message,
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func Conflict(resource, value string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("%s already exists: %s", resource, value),
	}
}

// QuotaExceeded returns an AppError indicating a configured record-count
// ceiling was hit. The ceilings keep a shared free-tier store from filling
// up. HTTP handlers map this to 403 Forbidden.
func QuotaExceeded(resource string, max int) *AppError {
	return &AppError{
		Err:     ErrQuotaExceeded,
		Message: fmt.Sprintf("%s quota exceeded (max %d)", resource, max),
	}
}
