// Package apperror defines the domain error taxonomy shared by all layers.
//
// Handlers and the TUI check the sentinel values with errors.Is to decide how
// to present a failure; the wrapped AppError carries the human-readable text.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a missing record. Callers surface it as a 404 or
	// an empty result, never a crash.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks rejected client input.
	ErrValidation = errors.New("validation error")
)

type AppError struct {
	Err     error  // sentinel cause
	Message string // human-readable message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string, id int64) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %d", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}
