package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/gym-api/internal/api"
	"github.com/phrazzld/gym-api/internal/cache"
	"github.com/phrazzld/gym-api/internal/config"
	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/events"
	"github.com/phrazzld/gym-api/internal/logfilter"
	"github.com/phrazzld/gym-api/internal/platform/postgres"
	"github.com/phrazzld/gym-api/internal/service"
	"github.com/phrazzld/gym-api/internal/task"
	"github.com/spf13/afero"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Background processing
	taskQueue  *task.TaskQueue
	workerPool *task.WorkerPool

	handlers handlers
}

// handlers groups the HTTP handlers mounted by the router.
type handlers struct {
	persons     *api.PersonHandler
	trainers    *api.TrainerHandler
	gyms        *api.GymHandler
	memberships *api.MembershipHandler
	logs        *api.LogHandler
	visits      *api.VisitHandler
}

// newApplication creates a new application instance with all dependencies
// initialized. The worker pool is created but not started.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Stores
	personStore := postgres.NewPostgresPersonStore(db, logger)
	trainerStore := postgres.NewPostgresTrainerStore(db, logger)
	gymStore := postgres.NewPostgresGymStore(db, logger)
	membershipStore := postgres.NewPostgresMembershipStore(db, logger)

	// Person cache, invalidated when referenced gyms or trainers are deleted
	personCache, err := cache.New("person", cfg.Cache.PersonCapacity, domain.Person.Clone, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create person cache: %w", err)
	}

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(service.NewPersonCacheInvalidator(personCache, logger))

	// Services
	personService, err := service.NewPersonService(personStore, trainerStore, gymStore, db, personCache, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create person service: %w", err)
	}
	trainerService, err := service.NewTrainerService(trainerStore, emitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create trainer service: %w", err)
	}
	gymService, err := service.NewGymService(gymStore, emitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create gym service: %w", err)
	}
	membershipService, err := service.NewMembershipService(membershipStore, personService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create membership service: %w", err)
	}

	// Log export: task queue, worker pool and registry
	fs := afero.NewOsFs()
	app.taskQueue = task.NewTaskQueue(cfg.Task.QueueSize, logger)
	app.workerPool = task.NewWorkerPool(app.taskQueue, task.WorkerPoolConfig{
		WorkerCount: cfg.Task.WorkerCount,
	}, logger)
	registry := task.NewRegistry(app.taskQueue, logger)

	filter := logfilter.New(fs, logfilter.Config{
		Directory:       cfg.Logs.Directory,
		FilePrefix:      cfg.Logs.FilePrefix,
		FileSuffix:      cfg.Logs.FileSuffix,
		OutputDirectory: cfg.Logs.OutputDirectory,
		Delay:           cfg.Task.ProcessingDelay,
	}, logger)

	logService, err := service.NewLogService(registry, filter, fs, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create log service: %w", err)
	}

	app.handlers = handlers{
		persons:     api.NewPersonHandler(personService, logger),
		trainers:    api.NewTrainerHandler(trainerService, logger),
		gyms:        api.NewGymHandler(gymService, logger),
		memberships: api.NewMembershipHandler(membershipService, logger),
		logs:        api.NewLogHandler(logService, fs, logger),
		visits:      api.NewVisitHandler(service.NewVisitCounter()),
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the worker pool and serves HTTP until ctx is cancelled, then
// shuts everything down.
func (app *application) Run(ctx context.Context) error {
	app.workerPool.Start()

	router := newRouter(app.handlers, app.config.Server.CORSAllowedOrigins, app.logger)

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.workerPool != nil {
		app.workerPool.Stop()
	}
	if app.taskQueue != nil {
		app.taskQueue.Close()
	}
	if app.db != nil {
		closeDatabase(app.db, app.logger)
	}

	app.logger.Info("application shutdown completed")
}
