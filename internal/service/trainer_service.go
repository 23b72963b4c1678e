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

// TrainerInput carries the client-supplied fields of a trainer.
type TrainerInput struct {
	Name         string
	TrainingType string
	Gender       string
}

// TrainerService provides trainer CRUD operations.
type TrainerService interface {
	Create(ctx context.Context, input TrainerInput) (*domain.Trainer, error)
	Get(ctx context.Context, id int64) (*domain.Trainer, error)
	List(ctx context.Context) ([]*domain.Trainer, error)
	Update(ctx context.Context, id int64, input TrainerInput) (*domain.Trainer, error)

	// Delete removes a trainer and emits a trainer deleted event.
	Delete(ctx context.Context, id int64) error
}

type trainerServiceImpl struct {
	trainers store.TrainerStore
	emitter  events.EventEmitter
	logger   *slog.Logger
}

// NewTrainerService creates a TrainerService. A nil emitter discards events.
func NewTrainerService(trainers store.TrainerStore, emitter events.EventEmitter, logger *slog.Logger) (TrainerService, error) {
	if trainers == nil {
		return nil, domain.NewValidationError("trainers", "cannot be nil", domain.ErrValidation)
	}
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &trainerServiceImpl{
		trainers: trainers,
		emitter:  emitter,
		logger:   logger.With(slog.String("component", "trainer_service")),
	}, nil
}

func (s *trainerServiceImpl) Create(ctx context.Context, input TrainerInput) (*domain.Trainer, error) {
	t, err := domain.NewTrainer(input.Name, input.TrainingType, input.Gender)
	if err != nil {
		return nil, err
	}
	if err := s.trainers.Create(ctx, t); err != nil {
		return nil, NewServiceError("create_trainer", "failed to save trainer", err)
	}
	return t, nil
}

func (s *trainerServiceImpl) Get(ctx context.Context, id int64) (*domain.Trainer, error) {
	t, err := s.trainers.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("get_trainer", "failed to load trainer", err)
	}
	return t, nil
}

func (s *trainerServiceImpl) List(ctx context.Context) ([]*domain.Trainer, error) {
	trainers, err := s.trainers.List(ctx)
	if err != nil {
		return nil, NewServiceError("list_trainers", "failed to list trainers", err)
	}
	return trainers, nil
}

func (s *trainerServiceImpl) Update(ctx context.Context, id int64, input TrainerInput) (*domain.Trainer, error) {
	t, err := s.trainers.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("update_trainer", "failed to load trainer", err)
	}

	t.Name = strings.TrimSpace(input.Name)
	t.TrainingType = strings.TrimSpace(input.TrainingType)
	t.Gender = strings.TrimSpace(input.Gender)
	t.UpdatedAt = time.Now().UTC()
	if err := t.Validate(); err != nil {
		return nil, err
	}

	if err := s.trainers.Update(ctx, t); err != nil {
		return nil, NewServiceError("update_trainer", "failed to save trainer", err)
	}
	return t, nil
}

func (s *trainerServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	exists, err := s.trainers.Exists(ctx, id)
	if err != nil {
		return NewServiceError("delete_trainer", "failed to check trainer", err)
	}
	if !exists {
		return NewServiceError("delete_trainer", "trainer does not exist", store.ErrTrainerNotFound)
	}

	if err := s.trainers.Delete(ctx, id); err != nil {
		return NewServiceError("delete_trainer", "failed to delete trainer", err)
	}

	// The delete is committed; a failing handler must not turn it into an error.
	if err := s.emitter.EmitEvent(ctx, events.NewEntityEvent(events.EntityTrainer, events.ActionDeleted, id)); err != nil {
		log.Warn("trainer deleted event not fully handled", slog.String("error", err.Error()))
	}

	log.Info("trainer deleted", slog.Int64("trainer_id", id))
	return nil
}
