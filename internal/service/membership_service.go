package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/store"
)

// MembershipInput carries the client-supplied fields of a membership.
type MembershipInput struct {
	Type      string
	StartDate time.Time
	EndDate   *time.Time
}

// MembershipService manages the memberships of persons.
type MembershipService interface {
	// Create adds a membership to an existing person.
	Create(ctx context.Context, personID int64, input MembershipInput) (*domain.Membership, error)
	Get(ctx context.Context, id int64) (*domain.Membership, error)
	ListByPerson(ctx context.Context, personID int64) ([]*domain.Membership, error)
	Delete(ctx context.Context, id int64) error
}

type membershipServiceImpl struct {
	memberships store.MembershipStore
	persons     PersonService
	logger      *slog.Logger
}

// NewMembershipService creates a MembershipService. Persons are resolved
// through persons so lookups benefit from the person cache.
func NewMembershipService(memberships store.MembershipStore, persons PersonService, logger *slog.Logger) (MembershipService, error) {
	if memberships == nil {
		return nil, domain.NewValidationError("memberships", "cannot be nil", domain.ErrValidation)
	}
	if persons == nil {
		return nil, domain.NewValidationError("persons", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &membershipServiceImpl{
		memberships: memberships,
		persons:     persons,
		logger:      logger.With(slog.String("component", "membership_service")),
	}, nil
}

func (s *membershipServiceImpl) Create(ctx context.Context, personID int64, input MembershipInput) (*domain.Membership, error) {
	person, err := s.persons.Get(ctx, personID)
	if err != nil {
		return nil, err
	}

	m, err := domain.NewMembership(person.ID, input.Type, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	if err := s.memberships.Create(ctx, m); err != nil {
		return nil, NewServiceError("create_membership", "failed to save membership", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("membership created",
		slog.Int64("membership_id", m.ID),
		slog.Int64("person_id", personID))
	return m, nil
}

func (s *membershipServiceImpl) Get(ctx context.Context, id int64) (*domain.Membership, error) {
	m, err := s.memberships.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("get_membership", "failed to load membership", err)
	}
	return m, nil
}

func (s *membershipServiceImpl) ListByPerson(ctx context.Context, personID int64) ([]*domain.Membership, error) {
	list, err := s.memberships.ListByPerson(ctx, personID)
	if err != nil {
		return nil, NewServiceError("list_memberships", "failed to list memberships", err)
	}
	return list, nil
}

func (s *membershipServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.memberships.Delete(ctx, id); err != nil {
		return NewServiceError("delete_membership", "failed to delete membership", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("membership deleted", slog.Int64("membership_id", id))
	return nil
}
