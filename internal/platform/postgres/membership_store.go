package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/store"
)

const membershipColumns = `id, person_id, type, start_date, end_date, created_at`

// PostgresMembershipStore implements store.MembershipStore.
type PostgresMembershipStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMembershipStore creates a membership store over db.
func NewPostgresMembershipStore(db store.DBTX, logger *slog.Logger) *PostgresMembershipStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresMembershipStore{
		db:     db,
		logger: logger.With(slog.String("component", "membership_store")),
	}
}

var _ store.MembershipStore = (*PostgresMembershipStore)(nil)

// Create implements store.MembershipStore.Create
func (s *PostgresMembershipStore) Create(ctx context.Context, m *domain.Membership) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := m.Validate(); err != nil {
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO memberships (person_id, type, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, m.PersonID, m.Type, m.StartDate, nullTime(m.EndDate), m.CreatedAt).Scan(&m.ID)
	if err != nil {
		log.Error("failed to create membership",
			slog.String("error", err.Error()),
			slog.Int64("person_id", m.PersonID))
		return MapError(err, nil)
	}

	log.Info("membership created",
		slog.Int64("membership_id", m.ID),
		slog.Int64("person_id", m.PersonID))
	return nil
}

// GetByID implements store.MembershipStore.GetByID
func (s *PostgresMembershipStore) GetByID(ctx context.Context, id int64) (*domain.Membership, error) {
	m, err := scanMembership(s.db.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE id = $1`, id))
	if err != nil {
		return nil, MapError(err, store.ErrMembershipNotFound)
	}
	return m, nil
}

// ListByPerson implements store.MembershipStore.ListByPerson
func (s *PostgresMembershipStore) ListByPerson(ctx context.Context, personID int64) ([]*domain.Membership, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE person_id = $1 ORDER BY start_date DESC, id DESC`,
		personID)
	if err != nil {
		return nil, MapError(err, nil)
	}
	defer func() { _ = rows.Close() }()

	memberships := []*domain.Membership{}
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}

// Delete implements store.MembershipStore.Delete
func (s *PostgresMembershipStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM memberships WHERE id = $1`, id)
	if err != nil {
		return MapError(err, nil)
	}
	return CheckRowsAffected(result, store.ErrMembershipNotFound)
}

func scanMembership(row rowScanner) (*domain.Membership, error) {
	var (
		m   domain.Membership
		end sql.NullTime
	)
	if err := row.Scan(&m.ID, &m.PersonID, &m.Type, &m.StartDate, &end, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.EndDate = timePtr(end)
	return &m, nil
}
