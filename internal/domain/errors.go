// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is usually wrapped by a ValidationError naming the field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyName is returned when a required name is blank.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyBatch is returned when a bulk operation receives no items.
	ErrEmptyBatch = errors.New("batch cannot be empty")
)

// ValidationError describes why a single field was rejected.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap exposes the underlying sentinel. Wrapped errors other than
// ErrValidation still match ErrValidation through Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports every ValidationError as an ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError for field.
// A nil err defaults to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}
