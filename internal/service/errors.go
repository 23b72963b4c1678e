package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for log export lookups. Callers check them with errors.Is;
// the API layer maps each to its own status code.
var (
	// ErrResultNotReady indicates the export task has not reached a terminal state yet.
	ErrResultNotReady = errors.New("export is not ready yet")

	// ErrTaskFailed indicates the export task ended in FAILED.
	ErrTaskFailed = errors.New("export task failed")

	// ErrResultUnavailable indicates the task completed but its file is gone.
	ErrResultUnavailable = errors.New("export file is no longer available")
)

// ServiceError wraps an error from a service operation with the operation
// name and a short description.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// BatchValidationError reports which entries of a batch failed validation.
type BatchValidationError struct {
	// Indexes are zero-based positions of the rejected entries.
	Indexes []int
	Err     error
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("invalid entries at indexes %v: %v", e.Indexes, e.Err)
}

func (e *BatchValidationError) Unwrap() error {
	return e.Err
}
