package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/mocks"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/service"
	"github.com/phrazzld/gym-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainerHandler(t *testing.T) {
	log, _ := logger.NewTestLogger()
	svc := &mocks.MockTrainerService{
		CreateFn: func(ctx context.Context, input service.TrainerInput) (*domain.Trainer, error) {
			return &domain.Trainer{ID: 1, Name: input.Name, TrainingType: input.TrainingType, Gender: input.Gender}, nil
		},
		GetFn: func(ctx context.Context, id int64) (*domain.Trainer, error) {
			return nil, store.ErrTrainerNotFound
		},
		ListFn: func(ctx context.Context) ([]*domain.Trainer, error) {
			return []*domain.Trainer{{ID: 1, Name: "Max"}, {ID: 2, Name: "Eva"}}, nil
		},
		UpdateFn: func(ctx context.Context, id int64, input service.TrainerInput) (*domain.Trainer, error) {
			return &domain.Trainer{ID: id, Name: input.Name}, nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			return store.ErrTrainerNotFound
		},
	}
	h := NewTrainerHandler(svc, log)

	t.Run("create", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.CreateTrainer(rr, newRequest(t, http.MethodPost, "/api/trainers",
			TrainerRequest{Name: "Max", TrainingType: "strength", Gender: "male"}, nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var got domain.Trainer
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "strength", got.TrainingType)
	})

	t.Run("create without name", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.CreateTrainer(rr, newRequest(t, http.MethodPost, "/api/trainers", TrainerRequest{Gender: "male"}, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("get missing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.GetTrainer(rr, newRequest(t, http.MethodGet, "/api/trainers/3", nil, map[string]string{"id": "3"}))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Trainer not found", decodeError(t, rr).Error)
	})

	t.Run("list", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ListTrainers(rr, newRequest(t, http.MethodGet, "/api/trainers", nil, nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		var got []domain.Trainer
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("update", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.UpdateTrainer(rr, newRequest(t, http.MethodPut, "/api/trainers/2", TrainerRequest{Name: "Eve"}, map[string]string{"id": "2"}))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("delete missing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.DeleteTrainer(rr, newRequest(t, http.MethodDelete, "/api/trainers/3", nil, map[string]string{"id": "3"}))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGymHandler(t *testing.T) {
	log, _ := logger.NewTestLogger()
	deleted := int64(0)
	svc := &mocks.MockGymService{
		CreateFn: func(ctx context.Context, input service.GymInput) (*domain.Gym, error) {
			return &domain.Gym{ID: 4, Type: input.Type, Address: input.Address, Number: input.Number}, nil
		},
		GetFn: func(ctx context.Context, id int64) (*domain.Gym, error) {
			return &domain.Gym{ID: id, Type: "fitness"}, nil
		},
		UpdateFn: func(ctx context.Context, id int64, input service.GymInput) (*domain.Gym, error) {
			return nil, store.ErrGymNotFound
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	h := NewGymHandler(svc, log)

	t.Run("create", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.CreateGym(rr, newRequest(t, http.MethodPost, "/api/gyms", GymRequest{Type: "crossfit", Address: "Main st. 1", Number: 3}, nil))
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"crossfit"`)
	})

	t.Run("negative number rejected", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.CreateGym(rr, newRequest(t, http.MethodPost, "/api/gyms", GymRequest{Type: "crossfit", Number: -1}, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("get", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.GetGym(rr, newRequest(t, http.MethodGet, "/api/gyms/4", nil, map[string]string{"id": "4"}))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("list empty", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ListGyms(rr, newRequest(t, http.MethodGet, "/api/gyms", nil, nil))
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("update missing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.UpdateGym(rr, newRequest(t, http.MethodPut, "/api/gyms/8", GymRequest{Type: "pool"}, map[string]string{"id": "8"}))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Gym not found", decodeError(t, rr).Error)
	})

	t.Run("delete", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.DeleteGym(rr, newRequest(t, http.MethodDelete, "/api/gyms/4", nil, map[string]string{"id": "4"}))
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, int64(4), deleted)
	})
}

func TestMembershipHandler(t *testing.T) {
	log, _ := logger.NewTestLogger()
	var gotInput service.MembershipInput
	svc := &mocks.MockMembershipService{
		CreateFn: func(ctx context.Context, personID int64, input service.MembershipInput) (*domain.Membership, error) {
			if personID == 404 {
				return nil, store.ErrPersonNotFound
			}
			gotInput = input
			return &domain.Membership{ID: 10, PersonID: personID, Type: "premium", StartDate: input.StartDate, EndDate: input.EndDate}, nil
		},
		GetFn: func(ctx context.Context, id int64) (*domain.Membership, error) {
			return nil, store.ErrMembershipNotFound
		},
		ListByPersonFn: func(ctx context.Context, personID int64) ([]*domain.Membership, error) {
			return []*domain.Membership{{ID: 10, PersonID: personID}}, nil
		},
	}
	h := NewMembershipHandler(svc, log)

	t.Run("create parses dates", func(t *testing.T) {
		rr := httptest.NewRecorder()
		body := MembershipRequest{Type: "premium", StartDate: "2025-01-01", EndDate: "2025-12-31"}
		h.CreateMembership(rr, newRequest(t, http.MethodPost, "/api/memberships/person/3", body, map[string]string{"personId": "3"}))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), gotInput.StartDate)
		require.NotNil(t, gotInput.EndDate)
		assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), *gotInput.EndDate)
	})

	t.Run("create with bad date", func(t *testing.T) {
		rr := httptest.NewRecorder()
		body := MembershipRequest{StartDate: "01/01/2025"}
		h.CreateMembership(rr, newRequest(t, http.MethodPost, "/api/memberships/person/3", body, map[string]string{"personId": "3"}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid start_date: invalid date format", decodeError(t, rr).Error)
	})

	t.Run("create for missing person", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.CreateMembership(rr, newRequest(t, http.MethodPost, "/api/memberships/person/404", MembershipRequest{}, map[string]string{"personId": "404"}))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Person not found", decodeError(t, rr).Error)
	})

	t.Run("list by person", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ListPersonMemberships(rr, newRequest(t, http.MethodGet, "/api/memberships/person/3", nil, map[string]string{"personId": "3"}))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"person_id":3`)
	})

	t.Run("get missing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.GetMembership(rr, newRequest(t, http.MethodGet, "/api/memberships/10", nil, map[string]string{"id": "10"}))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.DeleteMembership(rr, newRequest(t, http.MethodDelete, "/api/memberships/10", nil, map[string]string{"id": "10"}))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
