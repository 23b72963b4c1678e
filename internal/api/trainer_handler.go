package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/gym-api/internal/api/shared"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/service"
)

// TrainerHandler handles trainer CRUD requests.
type TrainerHandler struct {
	trainerService service.TrainerService
	logger         *slog.Logger
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(trainerService service.TrainerService, logger *slog.Logger) *TrainerHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TrainerHandler")
	}

	return &TrainerHandler{
		trainerService: trainerService,
		logger:         logger.With(slog.String("component", "trainer_handler")),
	}
}

// CreateTrainer handles POST /api/trainers.
func (h *TrainerHandler) CreateTrainer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req TrainerRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	trainer, err := h.trainerService.Create(r.Context(), req.toInput())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create trainer")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, trainer)
}

// GetTrainer handles GET /api/trainers/{id}.
func (h *TrainerHandler) GetTrainer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	trainer, err := h.trainerService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get trainer")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, trainer)
}

// ListTrainers handles GET /api/trainers.
func (h *TrainerHandler) ListTrainers(w http.ResponseWriter, r *http.Request) {
	trainers, err := h.trainerService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list trainers")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, nonNil(trainers))
}

// UpdateTrainer handles PUT /api/trainers/{id}.
func (h *TrainerHandler) UpdateTrainer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	var req TrainerRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	trainer, err := h.trainerService.Update(r.Context(), id, req.toInput())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update trainer")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, trainer)
}

// DeleteTrainer handles DELETE /api/trainers/{id}.
func (h *TrainerHandler) DeleteTrainer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.trainerService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete trainer")
		return
	}

	log.Debug("trainer deleted", slog.Int64("trainer_id", id))
	w.WriteHeader(http.StatusNoContent)
}
