package store

import (
	"context"

	"github.com/phrazzld/gym-api/internal/domain"
)

// MembershipStore defines the interface for membership data persistence.
type MembershipStore interface {
	// Create returns ErrInvalidEntity if the person does not exist.
	Create(ctx context.Context, membership *domain.Membership) error

	// GetByID returns ErrMembershipNotFound if the membership does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Membership, error)

	// ListByPerson returns the person's memberships, newest first.
	ListByPerson(ctx context.Context, personID int64) ([]*domain.Membership, error)

	// Delete returns ErrMembershipNotFound if the membership does not exist.
	Delete(ctx context.Context, id int64) error
}
