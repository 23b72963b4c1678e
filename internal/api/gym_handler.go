package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/gym-api/internal/api/shared"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/service"
)

// GymHandler handles gym CRUD requests.
type GymHandler struct {
	gymService service.GymService
	logger     *slog.Logger
}

// NewGymHandler creates a new GymHandler.
func NewGymHandler(gymService service.GymService, logger *slog.Logger) *GymHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for GymHandler")
	}

	return &GymHandler{
		gymService: gymService,
		logger:     logger.With(slog.String("component", "gym_handler")),
	}
}

// CreateGym handles POST /api/gyms.
func (h *GymHandler) CreateGym(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req GymRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	gym, err := h.gymService.Create(r.Context(), req.toInput())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create gym")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, gym)
}

// GetGym handles GET /api/gyms/{id}.
func (h *GymHandler) GetGym(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	gym, err := h.gymService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get gym")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, gym)
}

// ListGyms handles GET /api/gyms.
func (h *GymHandler) ListGyms(w http.ResponseWriter, r *http.Request) {
	gyms, err := h.gymService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list gyms")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, nonNil(gyms))
}

// UpdateGym handles PUT /api/gyms/{id}.
func (h *GymHandler) UpdateGym(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	var req GymRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	gym, err := h.gymService.Update(r.Context(), id, req.toInput())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update gym")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, gym)
}

// DeleteGym handles DELETE /api/gyms/{id}.
func (h *GymHandler) DeleteGym(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.gymService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete gym")
		return
	}

	log.Debug("gym deleted", slog.Int64("gym_id", id))
	w.WriteHeader(http.StatusNoContent)
}
