package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// Environment variables consulted for the test database URL, in order.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvTestDBURL   = "GYM_TEST_DB_URL"
)

// GetTestDatabaseURL returns the first non-empty of DATABASE_URL and
// GYM_TEST_DB_URL.
func GetTestDatabaseURL() string {
	for _, name := range []string{EnvDatabaseURL, EnvTestDBURL} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// GetTestDBWithT opens the test database, applies the migrations and
// registers cleanup. The test is skipped when no database is configured.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("skipping integration test: " + EnvDatabaseURL + " is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "failed to ping test database")

	SetupTestDatabaseSchema(t, db)
	return db
}

// SetupTestDatabaseSchema applies the embedded migrations to db.
func SetupTestDatabaseSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	log, _ := logger.NewTestLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 4*TestTimeout)
	defer cancel()

	require.NoError(t, postgres.Migrate(ctx, db, log), "failed to run migrations")
}

// WithTx runs fn inside a transaction that is always rolled back, so each
// test sees a clean database.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		// sql.ErrTxDone is expected if fn already ended the transaction.
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
