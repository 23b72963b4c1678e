package store

import (
	"context"

	"github.com/phrazzld/gym-api/internal/domain"
)

// TrainerStore defines the interface for trainer data persistence.
type TrainerStore interface {
	Create(ctx context.Context, trainer *domain.Trainer) error

	// GetByID returns ErrTrainerNotFound if the trainer does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Trainer, error)

	List(ctx context.Context) ([]*domain.Trainer, error)

	// Update returns ErrTrainerNotFound if the trainer does not exist.
	Update(ctx context.Context, trainer *domain.Trainer) error

	Exists(ctx context.Context, id int64) (bool, error)

	// Delete removes the trainer and clears it from every assigned person.
	Delete(ctx context.Context, id int64) error
}
