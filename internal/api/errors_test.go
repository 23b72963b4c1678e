package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/gym-api/internal/api/shared"
	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/service"
	"github.com/phrazzld/gym-api/internal/store"
	"github.com/phrazzld/gym-api/internal/task"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewValidationError("name", "cannot be empty", nil), http.StatusBadRequest},
		{"batch validation", &service.BatchValidationError{Indexes: []int{1}, Err: domain.ErrValidation}, http.StatusBadRequest},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"person not found", store.ErrPersonNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", store.ErrGymNotFound), http.StatusNotFound},
		{"task not found", task.ErrTaskNotFound, http.StatusNotFound},
		{"duplicate", store.ErrDuplicate, http.StatusConflict},
		{"not ready", service.ErrResultNotReady, http.StatusConflict},
		{"task failed", service.ErrTaskFailed, http.StatusInternalServerError},
		{"result unavailable", service.ErrResultUnavailable, http.StatusGone},
		{"service error wrapping not found", service.NewServiceError("get person", "lookup failed", store.ErrPersonNotFound), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"field validation", domain.NewValidationError("name", "cannot be empty", nil), "Invalid name: cannot be empty"},
		{"batch", &service.BatchValidationError{Indexes: []int{0, 2}, Err: domain.ErrValidation}, "Invalid entries at indexes [0 2]"},
		{"empty batch", domain.NewValidationError("persons", "cannot be empty", domain.ErrEmptyBatch), "Batch cannot be empty"},
		{"person not found", store.ErrPersonNotFound, "Person not found"},
		{"trainer not found", store.ErrTrainerNotFound, "Trainer not found"},
		{"gym not found", store.ErrGymNotFound, "Gym not found"},
		{"membership not found", store.ErrMembershipNotFound, "Membership not found"},
		{"task not found", task.ErrTaskNotFound, "Task not found"},
		{"not ready", service.ErrResultNotReady, "Export is not ready yet, retry later"},
		{"failed", service.ErrTaskFailed, "Export failed"},
		{"unavailable", service.ErrResultUnavailable, "Export file is no longer available"},
		{"internal details hidden", errors.New("pq: connection refused to 10.0.0.5"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError_UsesJSONFieldName(t *testing.T) {
	err := shared.ValidateRequest(&PersonRequest{Name: "Ann", PhoneNumber: "123456789012345678901234567890123"})

	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Invalid phone_number: too long", SanitizeValidationError(verrs))
	assert.Equal(t, "Validation error", SanitizeValidationError(nil))
}

func TestHandleAPIError(t *testing.T) {
	t.Run("default message replaces generic server error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleAPIError(rr, newRequest(t, "GET", "/", nil, nil), errors.New("db exploded"), "Failed to get person")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Failed to get person", decodeError(t, rr).Error)
	})

	t.Run("task failure keeps its own message", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleAPIError(rr, newRequest(t, "GET", "/", nil, nil), service.ErrTaskFailed, "ignored")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Export failed", decodeError(t, rr).Error)
	})

	t.Run("client errors ignore the default message", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleAPIError(rr, newRequest(t, "GET", "/", nil, nil), store.ErrPersonNotFound, "ignored")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Person not found", decodeError(t, rr).Error)
	})
}
