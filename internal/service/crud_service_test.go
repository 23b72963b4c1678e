package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/gym-api/internal/cache"
	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/events"
	"github.com/phrazzld/gym-api/internal/mocks"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/service"
	"github.com/phrazzld/gym-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGymService_DeleteInvalidatesCachedPersons(t *testing.T) {
	log, _ := logger.NewTestLogger()
	personCache, err := cache.New("person", 10, domain.Person.Clone, log)
	require.NoError(t, err)

	gymA, gymB := int64(1), int64(2)
	personCache.Put(10, domain.Person{ID: 10, Name: "Ann", GymID: &gymA})
	personCache.Put(11, domain.Person{ID: 11, Name: "Bo", GymID: &gymB})
	personCache.Put(12, domain.Person{ID: 12, Name: "Cy"})

	emitter := events.NewInMemoryEventEmitter(log)
	emitter.RegisterHandler(service.NewPersonCacheInvalidator(personCache, log))

	gyms := new(mocks.GymStore)
	gyms.On("Exists", mock.Anything, gymA).Return(true, nil)
	gyms.On("Delete", mock.Anything, gymA).Return(nil)

	svc, err := service.NewGymService(gyms, emitter, log)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), gymA))

	assert.False(t, personCache.Contains(10))
	assert.True(t, personCache.Contains(11))
	assert.True(t, personCache.Contains(12))
	gyms.AssertExpectations(t)
}

func TestTrainerService_DeleteInvalidatesCachedPersons(t *testing.T) {
	log, _ := logger.NewTestLogger()
	personCache, err := cache.New("person", 10, domain.Person.Clone, log)
	require.NoError(t, err)

	trainer := int64(5)
	personCache.Put(1, domain.Person{ID: 1, Name: "Ann", TrainerID: &trainer})
	personCache.Put(2, domain.Person{ID: 2, Name: "Bo"})

	emitter := events.NewInMemoryEventEmitter(log)
	emitter.RegisterHandler(service.NewPersonCacheInvalidator(personCache, log))

	trainers := new(mocks.TrainerStore)
	trainers.On("Exists", mock.Anything, trainer).Return(true, nil)
	trainers.On("Delete", mock.Anything, trainer).Return(nil)

	svc, err := service.NewTrainerService(trainers, emitter, log)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), trainer))

	assert.Equal(t, 1, personCache.Len())
	assert.True(t, personCache.Contains(2))
}

func TestTrainerService_CRUD(t *testing.T) {
	log, _ := logger.NewTestLogger()

	t.Run("create", func(t *testing.T) {
		trainers := new(mocks.TrainerStore)
		trainers.On("Create", mock.Anything, mock.MatchedBy(func(tr *domain.Trainer) bool {
			return tr.Name == "Sam" && tr.TrainingType == "boxing"
		})).Return(nil)

		svc, err := service.NewTrainerService(trainers, nil, log)
		require.NoError(t, err)

		tr, err := svc.Create(context.Background(), service.TrainerInput{Name: "Sam", TrainingType: "boxing"})
		require.NoError(t, err)
		assert.Equal(t, "Sam", tr.Name)
		trainers.AssertExpectations(t)
	})

	t.Run("create rejects blank name", func(t *testing.T) {
		svc, err := service.NewTrainerService(new(mocks.TrainerStore), nil, log)
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), service.TrainerInput{})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("update copies fields", func(t *testing.T) {
		trainers := new(mocks.TrainerStore)
		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		trainers.On("GetByID", mock.Anything, int64(3)).
			Return(&domain.Trainer{ID: 3, Name: "Sam", CreatedAt: created}, nil)
		trainers.On("Update", mock.Anything, mock.MatchedBy(func(tr *domain.Trainer) bool {
			return tr.ID == 3 && tr.Name == "Kim" && tr.Gender == "female" && tr.CreatedAt.Equal(created)
		})).Return(nil)

		svc, err := service.NewTrainerService(trainers, nil, log)
		require.NoError(t, err)

		_, err = svc.Update(context.Background(), 3, service.TrainerInput{Name: "Kim", Gender: "female"})
		require.NoError(t, err)
		trainers.AssertExpectations(t)
	})

	t.Run("delete missing", func(t *testing.T) {
		trainers := new(mocks.TrainerStore)
		trainers.On("Exists", mock.Anything, int64(3)).Return(false, nil)

		svc, err := service.NewTrainerService(trainers, nil, log)
		require.NoError(t, err)

		err = svc.Delete(context.Background(), 3)
		assert.ErrorIs(t, err, store.ErrTrainerNotFound)
		trainers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestGymService_CRUD(t *testing.T) {
	log, _ := logger.NewTestLogger()

	t.Run("get not found", func(t *testing.T) {
		gyms := new(mocks.GymStore)
		gyms.On("GetByID", mock.Anything, int64(1)).Return(nil, store.ErrGymNotFound)

		svc, err := service.NewGymService(gyms, nil, log)
		require.NoError(t, err)

		_, err = svc.Get(context.Background(), 1)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update rejects negative number", func(t *testing.T) {
		gyms := new(mocks.GymStore)
		gyms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Gym{ID: 1, Type: "fitness"}, nil)

		svc, err := service.NewGymService(gyms, nil, log)
		require.NoError(t, err)

		_, err = svc.Update(context.Background(), 1, service.GymInput{Type: "fitness", Number: -1})
		assert.ErrorIs(t, err, domain.ErrValidation)
		gyms.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("list", func(t *testing.T) {
		gyms := new(mocks.GymStore)
		gyms.On("List", mock.Anything).Return([]*domain.Gym{{ID: 1, Type: "fitness"}}, nil)

		svc, err := service.NewGymService(gyms, nil, log)
		require.NoError(t, err)

		list, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("delete survives handler failure", func(t *testing.T) {
		gyms := new(mocks.GymStore)
		gyms.On("Exists", mock.Anything, int64(1)).Return(true, nil)
		gyms.On("Delete", mock.Anything, int64(1)).Return(nil)

		emitter := events.NewInMemoryEventEmitter(log)
		emitter.RegisterHandler(events.HandlerFunc(func(ctx context.Context, e *events.EntityEvent) error {
			return errors.New("handler down")
		}))

		svc, err := service.NewGymService(gyms, emitter, log)
		require.NoError(t, err)
		assert.NoError(t, svc.Delete(context.Background(), 1))
	})
}

func TestMembershipService(t *testing.T) {
	log, _ := logger.NewTestLogger()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("create resolves the person", func(t *testing.T) {
		memberships := new(mocks.MembershipStore)
		memberships.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.Membership) bool {
			return m.PersonID == 4 && m.Type == domain.DefaultMembershipType && m.StartDate.Equal(start)
		})).Return(nil)

		persons := &mocks.MockPersonService{
			GetFn: func(ctx context.Context, id int64) (*domain.Person, error) {
				return &domain.Person{ID: id, Name: "Ann"}, nil
			},
		}

		svc, err := service.NewMembershipService(memberships, persons, log)
		require.NoError(t, err)

		m, err := svc.Create(context.Background(), 4, service.MembershipInput{StartDate: start})
		require.NoError(t, err)
		assert.Equal(t, int64(4), m.PersonID)
		memberships.AssertExpectations(t)
	})

	t.Run("create for missing person", func(t *testing.T) {
		memberships := new(mocks.MembershipStore)
		persons := &mocks.MockPersonService{
			GetFn: func(ctx context.Context, id int64) (*domain.Person, error) {
				return nil, service.NewServiceError("get_person", "failed to load person", store.ErrPersonNotFound)
			},
		}

		svc, err := service.NewMembershipService(memberships, persons, log)
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), 4, service.MembershipInput{StartDate: start})
		assert.ErrorIs(t, err, store.ErrPersonNotFound)
		memberships.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("create rejects end before start", func(t *testing.T) {
		persons := &mocks.MockPersonService{
			GetFn: func(ctx context.Context, id int64) (*domain.Person, error) {
				return &domain.Person{ID: id, Name: "Ann"}, nil
			},
		}
		svc, err := service.NewMembershipService(new(mocks.MembershipStore), persons, log)
		require.NoError(t, err)

		end := start.AddDate(0, 0, -1)
		_, err = svc.Create(context.Background(), 4, service.MembershipInput{StartDate: start, EndDate: &end})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("delete missing", func(t *testing.T) {
		memberships := new(mocks.MembershipStore)
		memberships.On("Delete", mock.Anything, int64(8)).Return(store.ErrMembershipNotFound)

		svc, err := service.NewMembershipService(memberships, &mocks.MockPersonService{}, log)
		require.NoError(t, err)

		assert.ErrorIs(t, svc.Delete(context.Background(), 8), store.ErrNotFound)
	})
}
