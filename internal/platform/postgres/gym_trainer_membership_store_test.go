package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (sqlmock.Sqlmock, store.DBTX) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return mock, db
}

func TestPostgresGymStore(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	gymColumns := []string{"id", "type", "address", "number", "created_at", "updated_at"}

	t.Run("create", func(t *testing.T) {
		mock, db := newMock(t)
		s := NewPostgresGymStore(db, nil)
		g := &domain.Gym{Type: "fitness", Address: "1 Main St", Number: 4, CreatedAt: now, UpdatedAt: now}

		mock.ExpectQuery("INSERT INTO gyms").
			WithArgs("fitness", "1 Main St", 4, now, now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

		require.NoError(t, s.Create(context.Background(), g))
		assert.Equal(t, int64(11), g.ID)
	})

	t.Run("get missing", func(t *testing.T) {
		mock, db := newMock(t)
		s := NewPostgresGymStore(db, nil)
		mock.ExpectQuery("FROM gyms WHERE id").WithArgs(int64(5)).WillReturnRows(sqlmock.NewRows(gymColumns))

		_, err := s.GetByID(context.Background(), 5)
		assert.ErrorIs(t, err, store.ErrGymNotFound)
	})

	t.Run("list", func(t *testing.T) {
		mock, db := newMock(t)
		s := NewPostgresGymStore(db, nil)
		mock.ExpectQuery("FROM gyms ORDER BY id").WillReturnRows(sqlmock.NewRows(gymColumns).
			AddRow(int64(1), "fitness", "A", 1, now, now).
			AddRow(int64(2), "crossfit", "B", 2, now, now))

		gyms, err := s.List(context.Background())
		require.NoError(t, err)
		require.Len(t, gyms, 2)
		assert.Equal(t, "crossfit", gyms[1].Type)
	})

	t.Run("delete missing", func(t *testing.T) {
		mock, db := newMock(t)
		s := NewPostgresGymStore(db, nil)
		mock.ExpectExec("DELETE FROM gyms").WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.Delete(context.Background(), 3), store.ErrGymNotFound)
	})
}

func TestPostgresTrainerStore(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)

	t.Run("get", func(t *testing.T) {
		mock, db := newMock(t)
		s := NewPostgresTrainerStore(db, nil)
		mock.ExpectQuery("FROM trainers WHERE id").WithArgs(int64(2)).WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "training_type", "gender", "created_at", "updated_at"}).
				AddRow(int64(2), "Sam", "boxing", "male", now, now))

		tr, err := s.GetByID(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, "Sam", tr.Name)
		assert.Equal(t, "boxing", tr.TrainingType)
	})

	t.Run("update missing", func(t *testing.T) {
		mock, db := newMock(t)
		s := NewPostgresTrainerStore(db, nil)
		mock.ExpectExec("UPDATE trainers").WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.Update(context.Background(), &domain.Trainer{ID: 8, Name: "Kim"})
		assert.ErrorIs(t, err, store.ErrTrainerNotFound)
	})

	t.Run("exists", func(t *testing.T) {
		mock, db := newMock(t)
		s := NewPostgresTrainerStore(db, nil)
		mock.ExpectQuery("SELECT EXISTS").WithArgs(int64(8)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		ok, err := s.Exists(context.Background(), 8)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPostgresMembershipStore(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "person_id", "type", "start_date", "end_date", "created_at"}

	t.Run("create without end date", func(t *testing.T) {
		mock, db := newMock(t)
		s := NewPostgresMembershipStore(db, nil)
		m := &domain.Membership{PersonID: 3, Type: "standard", StartDate: start, CreatedAt: start}

		mock.ExpectQuery("INSERT INTO memberships").
			WithArgs(int64(3), "standard", start, nil, start).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(21)))

		require.NoError(t, s.Create(context.Background(), m))
		assert.Equal(t, int64(21), m.ID)
	})

	t.Run("list by person", func(t *testing.T) {
		mock, db := newMock(t)
		s := NewPostgresMembershipStore(db, nil)
		end := start.AddDate(1, 0, 0)
		mock.ExpectQuery("FROM memberships WHERE person_id").WithArgs(int64(3)).WillReturnRows(
			sqlmock.NewRows(columns).
				AddRow(int64(2), int64(3), "premium", start, end, start).
				AddRow(int64(1), int64(3), "standard", start, nil, start))

		list, err := s.ListByPerson(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.NotNil(t, list[0].EndDate)
		assert.Equal(t, end, *list[0].EndDate)
		assert.Nil(t, list[1].EndDate)
	})

	t.Run("get missing", func(t *testing.T) {
		mock, db := newMock(t)
		s := NewPostgresMembershipStore(db, nil)
		mock.ExpectQuery("FROM memberships WHERE id").WithArgs(int64(4)).WillReturnRows(sqlmock.NewRows(columns))

		_, err := s.GetByID(context.Background(), 4)
		assert.ErrorIs(t, err, store.ErrMembershipNotFound)
	})
}
