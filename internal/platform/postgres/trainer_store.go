package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/store"
)

// PostgresTrainerStore implements store.TrainerStore.
type PostgresTrainerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTrainerStore creates a trainer store over db.
func NewPostgresTrainerStore(db store.DBTX, logger *slog.Logger) *PostgresTrainerStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTrainerStore{
		db:     db,
		logger: logger.With(slog.String("component", "trainer_store")),
	}
}

var _ store.TrainerStore = (*PostgresTrainerStore)(nil)

// Create implements store.TrainerStore.Create
func (s *PostgresTrainerStore) Create(ctx context.Context, trainer *domain.Trainer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := trainer.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO trainers (name, training_type, gender, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		trainer.Name, trainer.TrainingType, trainer.Gender, trainer.CreatedAt, trainer.UpdatedAt,
	).Scan(&trainer.ID)
	if err != nil {
		log.Error("failed to create trainer", slog.String("error", err.Error()))
		return MapError(err, nil)
	}

	log.Info("trainer created", slog.Int64("trainer_id", trainer.ID))
	return nil
}

// GetByID implements store.TrainerStore.GetByID
func (s *PostgresTrainerStore) GetByID(ctx context.Context, id int64) (*domain.Trainer, error) {
	query := `SELECT id, name, training_type, gender, created_at, updated_at FROM trainers WHERE id = $1`

	var t domain.Trainer
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&t.ID, &t.Name, &t.TrainingType, &t.Gender, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, MapError(err, store.ErrTrainerNotFound)
	}
	return &t, nil
}

// List implements store.TrainerStore.List
func (s *PostgresTrainerStore) List(ctx context.Context) ([]*domain.Trainer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, training_type, gender, created_at, updated_at FROM trainers ORDER BY id`)
	if err != nil {
		log.Error("failed to list trainers", slog.String("error", err.Error()))
		return nil, MapError(err, nil)
	}
	defer func() { _ = rows.Close() }()

	trainers := []*domain.Trainer{}
	for rows.Next() {
		var t domain.Trainer
		if err := rows.Scan(&t.ID, &t.Name, &t.TrainingType, &t.Gender, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		trainers = append(trainers, &t)
	}
	return trainers, rows.Err()
}

// Update implements store.TrainerStore.Update
func (s *PostgresTrainerStore) Update(ctx context.Context, trainer *domain.Trainer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := trainer.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE trainers
		SET name = $1, training_type = $2, gender = $3, updated_at = $4
		WHERE id = $5
	`, trainer.Name, trainer.TrainingType, trainer.Gender, trainer.UpdatedAt, trainer.ID)
	if err != nil {
		log.Error("failed to update trainer", slog.String("error", err.Error()), slog.Int64("trainer_id", trainer.ID))
		return MapError(err, nil)
	}
	return CheckRowsAffected(result, store.ErrTrainerNotFound)
}

// Exists implements store.TrainerStore.Exists
func (s *PostgresTrainerStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM trainers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, MapError(err, nil)
	}
	return exists, nil
}

// Delete implements store.TrainerStore.Delete. Assigned persons keep their
// record with trainer_id cleared (ON DELETE SET NULL).
func (s *PostgresTrainerStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM trainers WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete trainer", slog.String("error", err.Error()), slog.Int64("trainer_id", id))
		return MapError(err, nil)
	}
	if err := CheckRowsAffected(result, store.ErrTrainerNotFound); err != nil {
		return err
	}

	log.Info("trainer deleted", slog.Int64("trainer_id", id))
	return nil
}
