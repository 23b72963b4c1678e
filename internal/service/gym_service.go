package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/events"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/store"
)

// GymInput carries the client-supplied fields of a gym.
type GymInput struct {
	Type    string
	Address string
	Number  int
}

// GymService provides gym CRUD operations.
type GymService interface {
	Create(ctx context.Context, input GymInput) (*domain.Gym, error)
	Get(ctx context.Context, id int64) (*domain.Gym, error)
	List(ctx context.Context) ([]*domain.Gym, error)
	Update(ctx context.Context, id int64, input GymInput) (*domain.Gym, error)

	// Delete removes a gym and emits a gym deleted event.
	Delete(ctx context.Context, id int64) error
}

type gymServiceImpl struct {
	gyms    store.GymStore
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewGymService creates a GymService. A nil emitter discards events.
func NewGymService(gyms store.GymStore, emitter events.EventEmitter, logger *slog.Logger) (GymService, error) {
	if gyms == nil {
		return nil, domain.NewValidationError("gyms", "cannot be nil", domain.ErrValidation)
	}
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &gymServiceImpl{
		gyms:    gyms,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "gym_service")),
	}, nil
}

func (s *gymServiceImpl) Create(ctx context.Context, input GymInput) (*domain.Gym, error) {
	g, err := domain.NewGym(input.Type, input.Address, input.Number)
	if err != nil {
		return nil, err
	}
	if err := s.gyms.Create(ctx, g); err != nil {
		return nil, NewServiceError("create_gym", "failed to save gym", err)
	}
	return g, nil
}

func (s *gymServiceImpl) Get(ctx context.Context, id int64) (*domain.Gym, error) {
	g, err := s.gyms.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("get_gym", "failed to load gym", err)
	}
	return g, nil
}

func (s *gymServiceImpl) List(ctx context.Context) ([]*domain.Gym, error) {
	gyms, err := s.gyms.List(ctx)
	if err != nil {
		return nil, NewServiceError("list_gyms", "failed to list gyms", err)
	}
	return gyms, nil
}

func (s *gymServiceImpl) Update(ctx context.Context, id int64, input GymInput) (*domain.Gym, error) {
	g, err := s.gyms.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("update_gym", "failed to load gym", err)
	}

	g.Type = strings.TrimSpace(input.Type)
	g.Address = strings.TrimSpace(input.Address)
	g.Number = input.Number
	g.UpdatedAt = time.Now().UTC()
	if err := g.Validate(); err != nil {
		return nil, err
	}

	if err := s.gyms.Update(ctx, g); err != nil {
		return nil, NewServiceError("update_gym", "failed to save gym", err)
	}
	return g, nil
}

func (s *gymServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	exists, err := s.gyms.Exists(ctx, id)
	if err != nil {
		return NewServiceError("delete_gym", "failed to check gym", err)
	}
	if !exists {
		return NewServiceError("delete_gym", "gym does not exist", store.ErrGymNotFound)
	}

	if err := s.gyms.Delete(ctx, id); err != nil {
		return NewServiceError("delete_gym", "failed to delete gym", err)
	}

	if err := s.emitter.EmitEvent(ctx, events.NewEntityEvent(events.EntityGym, events.ActionDeleted, id)); err != nil {
		log.Warn("gym deleted event not fully handled", slog.String("error", err.Error()))
	}

	log.Info("gym deleted", slog.Int64("gym_id", id))
	return nil
}
