// Package main implements the entry point for the gym API server, which
// manages gym clients, trainers, gyms and memberships and exports filtered
// application logs in the background.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phrazzld/gym-api/internal/config"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command and exit ("+strings.Join(postgres.MigrationCommands, ", ")+")")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("gym-api: %v", err)
	}
}

// run loads configuration, sets up logging and the database, then either
// executes a migration command or serves HTTP until SIGINT/SIGTERM.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, logCloser, err := logger.Setup(cfg.Server, cfg.Logs)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	defer func() {
		if cerr := logCloser.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", cerr)
		}
	}()

	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Int("person_cache_capacity", cfg.Cache.PersonCapacity),
		slog.Int("worker_count", cfg.Task.WorkerCount))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(ctx, cfg, l)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer closeDatabase(db, l)
		return postgres.RunMigrationCommand(ctx, db, migrateCmd, l)
	}

	if err := postgres.Migrate(ctx, db, l); err != nil {
		closeDatabase(db, l)
		return err
	}

	app, err := newApplication(cfg, l, db)
	if err != nil {
		closeDatabase(db, l)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
