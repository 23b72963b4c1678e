package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"github.com/pressly/goose/v3"
)

// Migration settings shared by the server and the integration test helpers.
const (
	MigrationsDir   = "migrations"
	MigrationsTable = "schema_migrations"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// MigrationsFS exposes the embedded SQL migrations.
func MigrationsFS() fs.FS {
	return migrationFS
}

// Migrate applies every pending migration to db.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("component", "migrations"))

	goose.SetBaseFS(migrationFS)
	goose.SetLogger(gooseLogger{logger: log})
	goose.SetTableName(MigrationsTable)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, MigrationsDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	log.Info("database schema up to date", slog.Int64("version", version))
	return nil
}

// gooseLogger forwards goose output to slog. Fatalf deliberately does not
// exit so the caller decides how to handle the failure.
type gooseLogger struct {
	logger *slog.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// MigrationCommands lists the commands accepted by RunMigrationCommand.
var MigrationCommands = []string{"up", "down", "status", "version", "reset"}

// RunMigrationCommand runs a single goose command against the embedded
// migrations, e.g. "status" or "down".
func RunMigrationCommand(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if !slices.Contains(MigrationCommands, command) {
		return fmt.Errorf("unknown migration command %q (valid: %s)", command, strings.Join(MigrationCommands, ", "))
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("component", "migrations"), slog.String("command", command))

	goose.SetBaseFS(migrationFS)
	goose.SetLogger(gooseLogger{logger: log})
	goose.SetTableName(MigrationsTable)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, MigrationsDir); err != nil {
		return fmt.Errorf("migration command %s failed: %w", command, err)
	}
	log.Info("migration command completed")
	return nil
}
