package store

import (
	"context"

	"github.com/phrazzld/gym-api/internal/domain"
)

// GymStore defines the interface for gym data persistence.
type GymStore interface {
	Create(ctx context.Context, gym *domain.Gym) error

	// GetByID returns ErrGymNotFound if the gym does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Gym, error)

	List(ctx context.Context) ([]*domain.Gym, error)

	// Update returns ErrGymNotFound if the gym does not exist.
	Update(ctx context.Context, gym *domain.Gym) error

	Exists(ctx context.Context, id int64) (bool, error)

	// Delete removes the gym and clears it from every assigned person.
	Delete(ctx context.Context, id int64) error
}
