package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/task"
	"github.com/spf13/afero"
)

// LogExporter writes the log lines matching a date filter to a new file and
// returns its path. *logfilter.Filter implements it.
type LogExporter interface {
	Run(ctx context.Context, dateFilter string) (string, error)
}

// LogService runs log exports in the background.
type LogService interface {
	// StartExport submits an export of the lines containing dateFilter and
	// returns the task ID without waiting for the export.
	StartExport(ctx context.Context, dateFilter string) (string, error)

	// Status returns the current state of an export task.
	// Returns task.ErrTaskNotFound for an unknown ID.
	Status(ctx context.Context, taskID string) (task.Info, error)

	// ResultFile returns the path of a finished export. It fails with
	// task.ErrTaskNotFound, ErrResultNotReady, ErrTaskFailed or
	// ErrResultUnavailable when there is no file to hand out.
	ResultFile(ctx context.Context, taskID string) (string, error)
}

type logServiceImpl struct {
	registry *task.Registry
	exporter LogExporter
	fs       afero.Fs
	logger   *slog.Logger
}

// NewLogService creates a LogService. fs must be the filesystem the exporter
// writes to.
func NewLogService(registry *task.Registry, exporter LogExporter, fs afero.Fs, logger *slog.Logger) (LogService, error) {
	if registry == nil {
		return nil, domain.NewValidationError("registry", "cannot be nil", domain.ErrValidation)
	}
	if exporter == nil {
		return nil, domain.NewValidationError("exporter", "cannot be nil", domain.ErrValidation)
	}
	if fs == nil {
		return nil, domain.NewValidationError("fs", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &logServiceImpl{
		registry: registry,
		exporter: exporter,
		fs:       fs,
		logger:   logger.With(slog.String("component", "log_service")),
	}, nil
}

func (s *logServiceImpl) StartExport(ctx context.Context, dateFilter string) (string, error) {
	if dateFilter == "" {
		return "", domain.NewValidationError("date", "cannot be empty", domain.ErrValidation)
	}

	id := s.registry.Submit(ctx, task.TypeLogFilter, func(jobCtx context.Context) (string, error) {
		return s.exporter.Run(jobCtx, dateFilter)
	})

	logger.FromContextOrDefault(ctx, s.logger).Info("log export submitted",
		slog.String("task_id", id),
		slog.String("date_filter", dateFilter))
	return id, nil
}

func (s *logServiceImpl) Status(ctx context.Context, taskID string) (task.Info, error) {
	return s.registry.Info(taskID)
}

func (s *logServiceImpl) ResultFile(ctx context.Context, taskID string) (string, error) {
	status, ok := s.registry.Status(taskID)
	if !ok {
		return "", fmt.Errorf("%w: %s", task.ErrTaskNotFound, taskID)
	}

	switch status {
	case task.StatusFailed:
		return "", ErrTaskFailed
	case task.StatusCompleted:
	default:
		return "", ErrResultNotReady
	}

	path, ok := s.registry.ResultPath(taskID)
	if !ok {
		return "", ErrResultNotReady
	}

	if _, err := s.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logger.FromContextOrDefault(ctx, s.logger).Warn("export file missing",
				slog.String("task_id", taskID),
				slog.String("path", path))
			return "", ErrResultUnavailable
		}
		return "", NewServiceError("export_result", "failed to stat export file", err)
	}
	return path, nil
}
