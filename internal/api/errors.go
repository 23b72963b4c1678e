package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/gym-api/internal/api/shared"
	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/service"
	"github.com/phrazzld/gym-api/internal/store"
	"github.com/phrazzld/gym-api/internal/task"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors
	var batchErr *service.BatchValidationError

	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.As(err, &validationErrs),
		errors.As(err, &batchErr),
		errors.Is(err, domain.ErrEmptyBatch),
		errors.Is(err, shared.ErrEmptyBody),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, task.ErrTaskNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, service.ErrResultNotReady):
		return http.StatusConflict

	case errors.Is(err, service.ErrResultUnavailable):
		return http.StatusGone

	// Default: internal server error, including service.ErrTaskFailed
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors
	var domainErr *domain.ValidationError
	var batchErr *service.BatchValidationError

	switch {
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)
	case errors.As(err, &batchErr):
		return fmt.Sprintf("Invalid entries at indexes %v", batchErr.Indexes)
	case errors.Is(err, domain.ErrEmptyBatch):
		return "Batch cannot be empty"
	case errors.As(err, &domainErr):
		return fmt.Sprintf("Invalid %s: %s", domainErr.Field, domainErr.Message)
	case errors.Is(err, domain.ErrValidation), errors.Is(err, shared.ErrEmptyBody):
		return "Invalid request"

	// Not found errors
	case errors.Is(err, store.ErrPersonNotFound):
		return "Person not found"
	case errors.Is(err, store.ErrTrainerNotFound):
		return "Trainer not found"
	case errors.Is(err, store.ErrGymNotFound):
		return "Gym not found"
	case errors.Is(err, store.ErrMembershipNotFound):
		return "Membership not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, task.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	// Log export states
	case errors.Is(err, service.ErrResultNotReady):
		return "Export is not ready yet, retry later"
	case errors.Is(err, service.ErrTaskFailed):
		return "Export failed"
	case errors.Is(err, service.ErrResultUnavailable):
		return "Export file is no longer available"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator errors into a short message that
// names the first failing field without echoing its value.
func SanitizeValidationError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation error"
	}
	fe := errs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min", "gte":
		return "too small"
	case "max", "lte":
		return "too long"
	case "gt":
		return "must be positive"
	case "oneof":
		return "invalid value"
	case "datetime":
		return "invalid date format"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the status and safe message for err. A non-empty
// defaultMsg replaces the generic message of server errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	msg := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" && !errors.Is(err, service.ErrTaskFailed) {
		msg = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err)
}
