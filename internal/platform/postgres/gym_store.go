package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/store"
)

// PostgresGymStore implements store.GymStore.
type PostgresGymStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresGymStore creates a gym store over db.
func NewPostgresGymStore(db store.DBTX, logger *slog.Logger) *PostgresGymStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresGymStore{
		db:     db,
		logger: logger.With(slog.String("component", "gym_store")),
	}
}

var _ store.GymStore = (*PostgresGymStore)(nil)

// Create implements store.GymStore.Create
func (s *PostgresGymStore) Create(ctx context.Context, gym *domain.Gym) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := gym.Validate(); err != nil {
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO gyms (type, address, number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, gym.Type, gym.Address, gym.Number, gym.CreatedAt, gym.UpdatedAt).Scan(&gym.ID)
	if err != nil {
		log.Error("failed to create gym", slog.String("error", err.Error()))
		return MapError(err, nil)
	}

	log.Info("gym created", slog.Int64("gym_id", gym.ID), slog.String("type", gym.Type))
	return nil
}

// GetByID implements store.GymStore.GetByID
func (s *PostgresGymStore) GetByID(ctx context.Context, id int64) (*domain.Gym, error) {
	var g domain.Gym
	err := s.db.QueryRowContext(ctx,
		`SELECT id, type, address, number, created_at, updated_at FROM gyms WHERE id = $1`, id,
	).Scan(&g.ID, &g.Type, &g.Address, &g.Number, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, MapError(err, store.ErrGymNotFound)
	}
	return &g, nil
}

// List implements store.GymStore.List
func (s *PostgresGymStore) List(ctx context.Context) ([]*domain.Gym, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, type, address, number, created_at, updated_at FROM gyms ORDER BY id`)
	if err != nil {
		log.Error("failed to list gyms", slog.String("error", err.Error()))
		return nil, MapError(err, nil)
	}
	defer func() { _ = rows.Close() }()

	gyms := []*domain.Gym{}
	for rows.Next() {
		var g domain.Gym
		if err := rows.Scan(&g.ID, &g.Type, &g.Address, &g.Number, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		gyms = append(gyms, &g)
	}
	return gyms, rows.Err()
}

// Update implements store.GymStore.Update
func (s *PostgresGymStore) Update(ctx context.Context, gym *domain.Gym) error {
	if err := gym.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE gyms
		SET type = $1, address = $2, number = $3, updated_at = $4
		WHERE id = $5
	`, gym.Type, gym.Address, gym.Number, gym.UpdatedAt, gym.ID)
	if err != nil {
		return MapError(err, nil)
	}
	return CheckRowsAffected(result, store.ErrGymNotFound)
}

// Exists implements store.GymStore.Exists
func (s *PostgresGymStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM gyms WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, MapError(err, nil)
	}
	return exists, nil
}

// Delete implements store.GymStore.Delete. Assigned persons keep their
// record with gym_id cleared (ON DELETE SET NULL).
func (s *PostgresGymStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM gyms WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete gym", slog.String("error", err.Error()), slog.Int64("gym_id", id))
		return MapError(err, nil)
	}
	if err := CheckRowsAffected(result, store.ErrGymNotFound); err != nil {
		return err
	}

	log.Info("gym deleted", slog.Int64("gym_id", id))
	return nil
}
