package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/gym-api/internal/domain"
)

// PersonStore defines the interface for person data persistence.
type PersonStore interface {
	// Create inserts person and sets its ID.
	// Returns ErrInvalidEntity if a referenced trainer or gym does not exist.
	Create(ctx context.Context, person *domain.Person) error

	// GetByID retrieves a person by ID.
	// Returns ErrPersonNotFound if the person does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Person, error)

	// List returns all persons ordered by ID.
	List(ctx context.Context) ([]*domain.Person, error)

	// FindByGymType returns persons whose gym has the given type.
	FindByGymType(ctx context.Context, gymType string) ([]*domain.Person, error)

	// Update saves all mutable fields of an existing person.
	// Returns ErrPersonNotFound if the person does not exist.
	Update(ctx context.Context, person *domain.Person) error

	// Exists reports whether a person with id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Delete removes a person and, by cascade, its memberships.
	// Returns ErrPersonNotFound if the person does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a PersonStore that runs its queries in tx.
	WithTx(tx *sql.Tx) PersonStore
}
