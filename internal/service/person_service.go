package service

import (
	"context"
	"database/sql"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/gym-api/internal/cache"
	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/store"
	"golang.org/x/sync/singleflight"
)

// PersonInput carries the client-supplied fields of a person.
type PersonInput struct {
	Name        string
	PhoneNumber string
	TrainerID   *int64
	GymID       *int64
}

// PersonService manages persons and the person cache.
type PersonService interface {
	// Create validates and saves a new person, then caches it.
	Create(ctx context.Context, input PersonInput) (*domain.Person, error)

	// CreateBatch saves all inputs in one transaction. Nothing is saved if
	// any entry is invalid.
	CreateBatch(ctx context.Context, inputs []PersonInput) ([]*domain.Person, error)

	// Get returns a person, consulting the cache before the store.
	Get(ctx context.Context, id int64) (*domain.Person, error)

	// List returns all persons from the store.
	List(ctx context.Context) ([]*domain.Person, error)

	// ListByGymType returns persons whose gym has gymType.
	ListByGymType(ctx context.Context, gymType string) ([]*domain.Person, error)

	// Update replaces the fields of an existing person and refreshes the cache.
	Update(ctx context.Context, id int64, input PersonInput) (*domain.Person, error)

	// Delete removes a person from the cache and the store.
	Delete(ctx context.Context, id int64) error

	// AssignTrainer links an existing person to an existing trainer.
	AssignTrainer(ctx context.Context, personID, trainerID int64) (*domain.Person, error)

	// AssignGym links an existing person to an existing gym.
	AssignGym(ctx context.Context, personID, gymID int64) (*domain.Person, error)

	// CachedPeople returns the cached persons, least recently used first.
	CachedPeople() []domain.Person

	// CacheStats reports the cache counters.
	CacheStats() cache.Stats

	// ClearCache drops every cached person.
	ClearCache()
}

type personServiceImpl struct {
	persons  store.PersonStore
	trainers store.TrainerStore
	gyms     store.GymStore
	db       store.TxBeginner
	cache    *cache.EntityCache[domain.Person]
	loads    singleflight.Group
	logger   *slog.Logger
}

// NewPersonService creates a PersonService.
// It returns an error if any of the required dependencies are nil.
func NewPersonService(
	persons store.PersonStore,
	trainers store.TrainerStore,
	gyms store.GymStore,
	db store.TxBeginner,
	personCache *cache.EntityCache[domain.Person],
	logger *slog.Logger,
) (PersonService, error) {
	if persons == nil {
		return nil, domain.NewValidationError("persons", "cannot be nil", domain.ErrValidation)
	}
	if trainers == nil {
		return nil, domain.NewValidationError("trainers", "cannot be nil", domain.ErrValidation)
	}
	if gyms == nil {
		return nil, domain.NewValidationError("gyms", "cannot be nil", domain.ErrValidation)
	}
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if personCache == nil {
		return nil, domain.NewValidationError("personCache", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &personServiceImpl{
		persons:  persons,
		trainers: trainers,
		gyms:     gyms,
		db:       db,
		cache:    personCache,
		logger:   logger.With(slog.String("component", "person_service")),
	}, nil
}

func newPersonFromInput(input PersonInput) (*domain.Person, error) {
	p, err := domain.NewPerson(input.Name, input.PhoneNumber)
	if err != nil {
		return nil, err
	}
	p.TrainerID = input.TrainerID
	p.GymID = input.GymID
	return p, nil
}

func (s *personServiceImpl) Create(ctx context.Context, input PersonInput) (*domain.Person, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	p, err := newPersonFromInput(input)
	if err != nil {
		log.Debug("rejected invalid person", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.persons.Create(ctx, p); err != nil {
		return nil, NewServiceError("create_person", "failed to save person", err)
	}

	s.cache.Put(p.ID, *p)
	log.Info("person created", slog.Int64("person_id", p.ID))
	return p, nil
}

func (s *personServiceImpl) CreateBatch(ctx context.Context, inputs []PersonInput) ([]*domain.Person, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(inputs) == 0 {
		return nil, domain.NewValidationError("persons", "cannot be empty", domain.ErrEmptyBatch)
	}

	people := make([]*domain.Person, 0, len(inputs))
	var invalid []int
	var firstErr error
	for i, input := range inputs {
		p, err := newPersonFromInput(input)
		if err != nil {
			invalid = append(invalid, i)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		people = append(people, p)
	}
	if len(invalid) > 0 {
		log.Debug("rejected person batch", slog.Any("invalid_indexes", invalid))
		return nil, &BatchValidationError{Indexes: invalid, Err: firstErr}
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.persons.WithTx(tx)
		for i, p := range people {
			if err := txStore.Create(ctx, p); err != nil {
				return NewServiceError("create_person_batch", "failed to save entry "+strconv.Itoa(i), err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error("person batch rolled back", slog.String("error", err.Error()))
		return nil, err
	}

	for _, p := range people {
		s.cache.Put(p.ID, *p)
	}
	log.Info("person batch created", slog.Int("count", len(people)))
	return people, nil
}

func (s *personServiceImpl) Get(ctx context.Context, id int64) (*domain.Person, error) {
	if cached, ok := s.cache.Get(id); ok {
		return &cached, nil
	}

	// Concurrent misses for the same id share one store read. The read is
	// detached from the first caller's cancellation; each caller stops
	// waiting when its own context ends.
	loadCtx := context.WithoutCancel(ctx)
	ch := s.loads.DoChan(strconv.FormatInt(id, 10), func() (any, error) {
		gen := s.cache.Generation()
		p, err := s.persons.GetByID(loadCtx, id)
		if err != nil {
			return nil, err
		}
		s.cache.Fill(p.ID, *p, gen)
		return p.Clone(), nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, NewServiceError("get_person", "failed to load person", ctx.Err())
	}
	if res.Err != nil {
		if !store.IsNotFoundError(res.Err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to load person",
				slog.Int64("person_id", id),
				slog.String("error", res.Err.Error()))
		}
		return nil, NewServiceError("get_person", "failed to load person", res.Err)
	}

	p := res.Val.(domain.Person).Clone()
	return &p, nil
}

func (s *personServiceImpl) List(ctx context.Context) ([]*domain.Person, error) {
	people, err := s.persons.List(ctx)
	if err != nil {
		return nil, NewServiceError("list_persons", "failed to list persons", err)
	}
	return people, nil
}

func (s *personServiceImpl) ListByGymType(ctx context.Context, gymType string) ([]*domain.Person, error) {
	gymType = strings.TrimSpace(gymType)
	if gymType == "" {
		return nil, domain.NewValidationError("gymType", "cannot be empty", domain.ErrValidation)
	}

	people, err := s.persons.FindByGymType(ctx, gymType)
	if err != nil {
		return nil, NewServiceError("list_persons_by_gym_type", "failed to list persons", err)
	}
	return people, nil
}

func (s *personServiceImpl) Update(ctx context.Context, id int64, input PersonInput) (*domain.Person, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	p, err := s.persons.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("update_person", "failed to load person", err)
	}

	updated, err := newPersonFromInput(input)
	if err != nil {
		return nil, err
	}

	p.Name = updated.Name
	p.PhoneNumber = updated.PhoneNumber
	p.TrainerID = updated.TrainerID
	p.GymID = updated.GymID
	p.UpdatedAt = time.Now().UTC()

	if err := s.persons.Update(ctx, p); err != nil {
		return nil, NewServiceError("update_person", "failed to save person", err)
	}

	s.cache.Put(p.ID, *p)
	log.Info("person updated", slog.Int64("person_id", p.ID))
	return p, nil
}

func (s *personServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.cache.Remove(id)

	exists, err := s.persons.Exists(ctx, id)
	if err != nil {
		return NewServiceError("delete_person", "failed to check person", err)
	}
	if !exists {
		return NewServiceError("delete_person", "person does not exist", store.ErrPersonNotFound)
	}

	if err := s.persons.Delete(ctx, id); err != nil {
		return NewServiceError("delete_person", "failed to delete person", err)
	}
	s.cache.Remove(id)

	log.Info("person deleted", slog.Int64("person_id", id))
	return nil
}

func (s *personServiceImpl) AssignTrainer(ctx context.Context, personID, trainerID int64) (*domain.Person, error) {
	p, err := s.persons.GetByID(ctx, personID)
	if err != nil {
		return nil, NewServiceError("assign_trainer", "failed to load person", err)
	}

	exists, err := s.trainers.Exists(ctx, trainerID)
	if err != nil {
		return nil, NewServiceError("assign_trainer", "failed to check trainer", err)
	}
	if !exists {
		return nil, NewServiceError("assign_trainer", "trainer does not exist", store.ErrTrainerNotFound)
	}

	p.AssignTrainer(trainerID)
	return s.saveAssignment(ctx, "assign_trainer", p)
}

func (s *personServiceImpl) AssignGym(ctx context.Context, personID, gymID int64) (*domain.Person, error) {
	p, err := s.persons.GetByID(ctx, personID)
	if err != nil {
		return nil, NewServiceError("assign_gym", "failed to load person", err)
	}

	exists, err := s.gyms.Exists(ctx, gymID)
	if err != nil {
		return nil, NewServiceError("assign_gym", "failed to check gym", err)
	}
	if !exists {
		return nil, NewServiceError("assign_gym", "gym does not exist", store.ErrGymNotFound)
	}

	p.AssignGym(gymID)
	return s.saveAssignment(ctx, "assign_gym", p)
}

func (s *personServiceImpl) saveAssignment(ctx context.Context, op string, p *domain.Person) (*domain.Person, error) {
	if err := s.persons.Update(ctx, p); err != nil {
		return nil, NewServiceError(op, "failed to save person", err)
	}
	s.cache.Put(p.ID, *p)

	logger.FromContextOrDefault(ctx, s.logger).Info("person assignment saved",
		slog.String("operation", op),
		slog.Int64("person_id", p.ID))
	return p, nil
}

func (s *personServiceImpl) CachedPeople() []domain.Person {
	entries := s.cache.Snapshot()
	people := make([]domain.Person, 0, len(entries))
	for _, e := range entries {
		people = append(people, e.Value)
	}
	return people
}

func (s *personServiceImpl) CacheStats() cache.Stats {
	return s.cache.Stats()
}

func (s *personServiceImpl) ClearCache() {
	s.cache.Clear()
}
