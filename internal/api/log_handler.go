package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/gym-api/internal/api/shared"
	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/service"
	"github.com/spf13/afero"
)

// LogHandler exposes the asynchronous log export protocol: submit an export,
// poll its status, then download the result.
type LogHandler struct {
	logService service.LogService
	fs         afero.Fs
	logger     *slog.Logger
}

// NewLogHandler creates a new LogHandler. fs must be the filesystem the
// exports are written to.
func NewLogHandler(logService service.LogService, fs afero.Fs, logger *slog.Logger) *LogHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for LogHandler")
	}
	if fs == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("filesystem cannot be nil for LogHandler")
	}

	return &LogHandler{
		logService: logService,
		fs:         fs,
		logger:     logger.With(slog.String("component", "log_handler")),
	}
}

// GenerateLogs handles POST /api/logs/generate?date=. It responds 202 with
// the id of the submitted export.
func (h *LogHandler) GenerateLogs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	date := r.URL.Query().Get("date")
	if date == "" {
		HandleAPIError(w, r, domain.NewValidationError("date", "is required", nil), "")
		return
	}

	taskID, err := h.logService.StartExport(r.Context(), date)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to start log export")
		return
	}

	log.Info("log export submitted", slog.String("task_id", taskID))
	shared.RespondWithJSON(w, r, http.StatusAccepted, TaskSubmittedResponse{TaskID: taskID})
}

// GetStatus handles GET /api/logs/status/{taskId}.
func (h *LogHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	taskID, ok := h.taskIDParam(w, r)
	if !ok {
		return
	}

	info, err := h.logService.Status(r.Context(), taskID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, taskInfoToResponse(info))
}

// DownloadLogs handles GET /api/logs/download/{taskId}. The export is sent
// as an attachment only once the task has completed.
func (h *LogHandler) DownloadLogs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	taskID, ok := h.taskIDParam(w, r)
	if !ok {
		return
	}

	path, err := h.logService.ResultFile(r.Context(), taskID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	f, err := h.fs.Open(path)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %w", service.ErrResultUnavailable, err), "")
		return
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Warn("failed to close export file", slog.String("error", cerr.Error()))
		}
	}()

	info, err := f.Stat()
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %w", service.ErrResultUnavailable, err), "")
		return
	}

	name := filepath.Base(path)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

	log.Debug("serving log export", slog.String("task_id", taskID), slog.Int64("size", info.Size()))
	http.ServeContent(w, r, name, info.ModTime(), f)
}

func (h *LogHandler) taskIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	taskID := strings.TrimSpace(chi.URLParam(r, "taskId"))
	if taskID == "" {
		HandleAPIError(w, r, domain.NewValidationError("taskId", "is required", nil), "")
		return "", false
	}
	return taskID, true
}
