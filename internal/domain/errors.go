package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")

	// ErrInvalidState is returned when an operation is not possible in the
	// current state of a record, e.g. translating a chapter without raw text.
	ErrInvalidState = errors.New("invalid state")

	// ErrOracleFailure wraps any failure of the translation backend call.
	ErrOracleFailure = errors.New("translation backend failure")

	// ErrInvalidResponse is returned when the translation backend answered
	// with something other than the expected JSON object.
	ErrInvalidResponse = errors.New("invalid translation response")

	// ErrFetchFailed is returned when a chapter page could not be downloaded.
	ErrFetchFailed = errors.New("page fetch failed")

	// ErrPageTooLarge is returned when a page body exceeds the import limit.
	ErrPageTooLarge = errors.New("page exceeds size limit")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
