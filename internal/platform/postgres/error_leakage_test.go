package postgres_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/gym-api/internal/platform/postgres"
	"github.com/phrazzld/gym-api/internal/store"
	"github.com/stretchr/testify/assert"
)

// TestMapError_HidesDriverErrors checks that constraint violations surface
// as store errors and that the driver's error type is no longer reachable
// through the chain.
func TestMapError_HidesDriverErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want error
	}{
		{"unique violation", "23505", store.ErrDuplicate},
		{"foreign key violation", "23503", store.ErrInvalidEntity},
		{"not null violation", "23502", store.ErrInvalidEntity},
		{"check constraint violation", "23514", store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pgErr := &pgconn.PgError{Code: tt.code, ConstraintName: "persons_gym_id_fkey", Message: "secret detail"}
			result := postgres.MapError(pgErr, nil)

			assert.ErrorIs(t, result, tt.want)

			var leaked *pgconn.PgError
			assert.False(t, errors.As(result, &leaked), "driver error must not be reachable")
		})
	}
}

func TestMapError_PassesThroughUnknownErrors(t *testing.T) {
	t.Parallel()

	generic := errors.New("connection reset")
	assert.Same(t, generic, postgres.MapError(generic, nil))
	assert.Nil(t, postgres.MapError(nil, nil))

	// Unmapped codes are returned as-is.
	var pgErr *pgconn.PgError
	assert.True(t, errors.As(postgres.MapError(&pgconn.PgError{Code: "42P01"}, store.ErrGymNotFound), &pgErr))
}
