package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// PersonStore is a mock of store.PersonStore for use with testify/mock.
// WithTx returns the same mock, so expectations set on it also cover
// transactional calls.
type PersonStore struct {
	mock.Mock
}

var _ store.PersonStore = (*PersonStore)(nil)

func (m *PersonStore) Create(ctx context.Context, person *domain.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *PersonStore) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*domain.Person); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PersonStore) List(ctx context.Context) ([]*domain.Person, error) {
	args := m.Called(ctx)
	people, _ := args.Get(0).([]*domain.Person)
	return people, args.Error(1)
}

func (m *PersonStore) FindByGymType(ctx context.Context, gymType string) ([]*domain.Person, error) {
	args := m.Called(ctx, gymType)
	people, _ := args.Get(0).([]*domain.Person)
	return people, args.Error(1)
}

func (m *PersonStore) Update(ctx context.Context, person *domain.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *PersonStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *PersonStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PersonStore) WithTx(tx *sql.Tx) store.PersonStore {
	return m
}

// TrainerStore is a mock of store.TrainerStore for use with testify/mock.
type TrainerStore struct {
	mock.Mock
}

var _ store.TrainerStore = (*TrainerStore)(nil)

func (m *TrainerStore) Create(ctx context.Context, trainer *domain.Trainer) error {
	args := m.Called(ctx, trainer)
	return args.Error(0)
}

func (m *TrainerStore) GetByID(ctx context.Context, id int64) (*domain.Trainer, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*domain.Trainer); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TrainerStore) List(ctx context.Context) ([]*domain.Trainer, error) {
	args := m.Called(ctx)
	trainers, _ := args.Get(0).([]*domain.Trainer)
	return trainers, args.Error(1)
}

func (m *TrainerStore) Update(ctx context.Context, trainer *domain.Trainer) error {
	args := m.Called(ctx, trainer)
	return args.Error(0)
}

func (m *TrainerStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *TrainerStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// GymStore is a mock of store.GymStore for use with testify/mock.
type GymStore struct {
	mock.Mock
}

var _ store.GymStore = (*GymStore)(nil)

func (m *GymStore) Create(ctx context.Context, gym *domain.Gym) error {
	args := m.Called(ctx, gym)
	return args.Error(0)
}

func (m *GymStore) GetByID(ctx context.Context, id int64) (*domain.Gym, error) {
	args := m.Called(ctx, id)
	if g, ok := args.Get(0).(*domain.Gym); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GymStore) List(ctx context.Context) ([]*domain.Gym, error) {
	args := m.Called(ctx)
	gyms, _ := args.Get(0).([]*domain.Gym)
	return gyms, args.Error(1)
}

func (m *GymStore) Update(ctx context.Context, gym *domain.Gym) error {
	args := m.Called(ctx, gym)
	return args.Error(0)
}

func (m *GymStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *GymStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MembershipStore is a mock of store.MembershipStore for use with testify/mock.
type MembershipStore struct {
	mock.Mock
}

var _ store.MembershipStore = (*MembershipStore)(nil)

func (m *MembershipStore) Create(ctx context.Context, membership *domain.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MembershipStore) GetByID(ctx context.Context, id int64) (*domain.Membership, error) {
	args := m.Called(ctx, id)
	if ms, ok := args.Get(0).(*domain.Membership); ok {
		return ms, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MembershipStore) ListByPerson(ctx context.Context, personID int64) ([]*domain.Membership, error) {
	args := m.Called(ctx, personID)
	list, _ := args.Get(0).([]*domain.Membership)
	return list, args.Error(1)
}

func (m *MembershipStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
