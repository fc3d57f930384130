package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFound(t *testing.T) {
	err := NotFound("snippet", 42)

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFound() should match ErrNotFound via errors.Is")
	}
	if errors.Is(err, ErrValidation) {
		t.Error("NotFound() should not match ErrValidation")
	}
	want := "snippet not found with id 42"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationFailed(t *testing.T) {
	err := ValidationFailed("title", "title is required")

	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationFailed() should match ErrValidation via errors.Is")
	}
	if err.Field != "title" {
		t.Errorf("Field = %q, want %q", err.Field, "title")
	}
}

func TestWrappedChain(t *testing.T) {
	// Errors stay identifiable through fmt.Errorf %w wrapping, which is how
	// the service layer annotates them.
	inner := NotFound("snippet", 7)
	wrapped := fmt.Errorf("getting snippet: %w", inner)

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("wrapped error should still match ErrNotFound")
	}

	var appErr *AppError
	if !errors.As(wrapped, &appErr) {
		t.Fatal("errors.As should extract *AppError from the chain")
	}
	if appErr.Message != inner.Message {
		t.Errorf("Message = %q, want %q", appErr.Message, inner.Message)
	}
}
