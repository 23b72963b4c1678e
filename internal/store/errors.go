package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when the store rejects an entity, for example
	// because it references a gym or trainer that does not exist.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrPersonNotFound indicates that the requested person does not exist.
	ErrPersonNotFound = fmt.Errorf("%w: person", ErrNotFound)

	// ErrTrainerNotFound indicates that the requested trainer does not exist.
	ErrTrainerNotFound = fmt.Errorf("%w: trainer", ErrNotFound)

	// ErrGymNotFound indicates that the requested gym does not exist.
	ErrGymNotFound = fmt.Errorf("%w: gym", ErrNotFound)

	// ErrMembershipNotFound indicates that the requested membership does not exist.
	ErrMembershipNotFound = fmt.Errorf("%w: membership", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// Entity specific errors all wrap ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "person", "gym")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
