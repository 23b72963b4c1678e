package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/store"
)

const personColumns = `id, name, phone_number, trainer_id, gym_id, created_at, updated_at`

// PostgresPersonStore implements the store.PersonStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPersonStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPersonStore creates a new PostgreSQL implementation of the PersonStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPersonStore(db store.DBTX, logger *slog.Logger) *PostgresPersonStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPersonStore{
		db:     db,
		logger: logger.With(slog.String("component", "person_store")),
	}
}

// Ensure PostgresPersonStore implements store.PersonStore interface
var _ store.PersonStore = (*PostgresPersonStore)(nil)

// Create implements store.PersonStore.Create
func (s *PostgresPersonStore) Create(ctx context.Context, person *domain.Person) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := person.Validate(); err != nil {
		log.Warn("person validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO persons (name, phone_number, trainer_id, gym_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		person.Name,
		person.PhoneNumber,
		nullInt64(person.TrainerID),
		nullInt64(person.GymID),
		person.CreatedAt,
		person.UpdatedAt,
	).Scan(&person.ID)
	if err != nil {
		log.Error("failed to create person", slog.String("error", err.Error()))
		return MapError(err, nil)
	}

	log.Info("person created", slog.Int64("person_id", person.ID))
	return nil
}

// GetByID implements store.PersonStore.GetByID
func (s *PostgresPersonStore) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + personColumns + ` FROM persons WHERE id = $1`
	person, err := scanPerson(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		mapped := MapError(err, store.ErrPersonNotFound)
		if store.IsNotFoundError(mapped) {
			log.Debug("person not found", slog.Int64("person_id", id))
		} else {
			log.Error("failed to get person", slog.String("error", err.Error()), slog.Int64("person_id", id))
		}
		return nil, mapped
	}

	return person, nil
}

// List implements store.PersonStore.List
func (s *PostgresPersonStore) List(ctx context.Context) ([]*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons ORDER BY id`
	return s.queryPersons(ctx, query)
}

// FindByGymType implements store.PersonStore.FindByGymType
func (s *PostgresPersonStore) FindByGymType(ctx context.Context, gymType string) ([]*domain.Person, error) {
	query := `
		SELECT p.id, p.name, p.phone_number, p.trainer_id, p.gym_id, p.created_at, p.updated_at
		FROM persons p
		JOIN gyms g ON g.id = p.gym_id
		WHERE g.type = $1
		ORDER BY p.id
	`
	return s.queryPersons(ctx, query, gymType)
}

// Update implements store.PersonStore.Update
func (s *PostgresPersonStore) Update(ctx context.Context, person *domain.Person) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := person.Validate(); err != nil {
		log.Warn("person validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("person_id", person.ID))
		return err
	}

	query := `
		UPDATE persons
		SET name = $1, phone_number = $2, trainer_id = $3, gym_id = $4, updated_at = $5
		WHERE id = $6
	`
	result, err := s.db.ExecContext(ctx, query,
		person.Name,
		person.PhoneNumber,
		nullInt64(person.TrainerID),
		nullInt64(person.GymID),
		person.UpdatedAt,
		person.ID,
	)
	if err != nil {
		log.Error("failed to update person", slog.String("error", err.Error()), slog.Int64("person_id", person.ID))
		return MapError(err, nil)
	}
	if err := CheckRowsAffected(result, store.ErrPersonNotFound); err != nil {
		return err
	}

	log.Info("person updated", slog.Int64("person_id", person.ID))
	return nil
}

// Exists implements store.PersonStore.Exists
func (s *PostgresPersonStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM persons WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, MapError(err, nil)
	}
	return exists, nil
}

// Delete implements store.PersonStore.Delete
func (s *PostgresPersonStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete person", slog.String("error", err.Error()), slog.Int64("person_id", id))
		return MapError(err, nil)
	}
	if err := CheckRowsAffected(result, store.ErrPersonNotFound); err != nil {
		return err
	}

	log.Info("person deleted", slog.Int64("person_id", id))
	return nil
}

// WithTx implements store.PersonStore.WithTx
func (s *PostgresPersonStore) WithTx(tx *sql.Tx) store.PersonStore {
	return &PostgresPersonStore{db: tx, logger: s.logger}
}

func (s *PostgresPersonStore) queryPersons(ctx context.Context, query string, args ...any) ([]*domain.Person, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query persons", slog.String("error", err.Error()))
		return nil, MapError(err, nil)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	persons := []*domain.Person{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			log.Error("failed to scan person row", slog.String("error", err.Error()))
			return nil, err
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning person rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("persons queried", slog.Int("count", len(persons)))
	return persons, nil
}

func scanPerson(row rowScanner) (*domain.Person, error) {
	var (
		p         domain.Person
		trainerID sql.NullInt64
		gymID     sql.NullInt64
	)
	if err := row.Scan(&p.ID, &p.Name, &p.PhoneNumber, &trainerID, &gymID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.TrainerID = int64Ptr(trainerID)
	p.GymID = int64Ptr(gymID)
	return &p, nil
}
