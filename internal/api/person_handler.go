package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/gym-api/internal/api/shared"
	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/service"
)

// MaxBatchSize bounds the number of persons accepted by one batch request.
const MaxBatchSize = 500

// PersonHandler handles person-related HTTP requests, including the person
// cache inspection endpoints.
type PersonHandler struct {
	personService service.PersonService
	logger        *slog.Logger
}

// NewPersonHandler creates a new PersonHandler.
func NewPersonHandler(personService service.PersonService, logger *slog.Logger) *PersonHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PersonHandler")
	}

	return &PersonHandler{
		personService: personService,
		logger:        logger.With(slog.String("component", "person_handler")),
	}
}

// CreatePerson handles POST /api/persons.
func (h *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req PersonRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	person, err := h.personService.Create(r.Context(), req.toInput())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create person")
		return
	}

	log.Debug("person created", slog.Int64("person_id", person.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, person)
}

// CreatePersons handles POST /api/persons/batch.
func (h *PersonHandler) CreatePersons(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// Entries are validated together by the service so every bad index is
	// reported at once.
	var reqs []PersonRequest
	if err := shared.DecodeJSON(r, &reqs); err != nil {
		log.Warn("invalid batch request format", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if len(reqs) > MaxBatchSize {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Batch is too large")
		return
	}

	inputs := make([]service.PersonInput, len(reqs))
	for i, req := range reqs {
		inputs[i] = req.toInput()
	}

	persons, err := h.personService.CreateBatch(r.Context(), inputs)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create persons")
		return
	}

	log.Debug("person batch created", slog.Int("count", len(persons)))
	shared.RespondWithJSON(w, r, http.StatusCreated, persons)
}

// GetPerson handles GET /api/persons/{id}.
func (h *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	person, err := h.personService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get person")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, person)
}

// ListPersons handles GET /api/persons.
func (h *PersonHandler) ListPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.personService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list persons")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, nonNil(persons))
}

// ListPersonsByGymType handles GET /api/persons/by-gym-type?gymType=.
func (h *PersonHandler) ListPersonsByGymType(w http.ResponseWriter, r *http.Request) {
	gymType := strings.TrimSpace(r.URL.Query().Get("gymType"))
	if gymType == "" {
		HandleAPIError(w, r, domain.NewValidationError("gymType", "is required", nil), "")
		return
	}

	persons, err := h.personService.ListByGymType(r.Context(), gymType)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list persons")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, nonNil(persons))
}

// UpdatePerson handles PUT /api/persons/{id}.
func (h *PersonHandler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	var req PersonRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	person, err := h.personService.Update(r.Context(), id, req.toInput())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update person")
		return
	}

	log.Debug("person updated", slog.Int64("person_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, person)
}

// DeletePerson handles DELETE /api/persons/{id}.
func (h *PersonHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.personService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete person")
		return
	}

	log.Debug("person deleted", slog.Int64("person_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// AssignTrainer handles PUT /api/persons/{id}/trainer/{trainerId}.
func (h *PersonHandler) AssignTrainer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	personID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}
	trainerID, ok := handlePathID(w, r, "trainerId", log)
	if !ok {
		return
	}

	person, err := h.personService.AssignTrainer(r.Context(), personID, trainerID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to assign trainer")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, person)
}

// AssignGym handles PUT /api/persons/{id}/gym/{gymId}.
func (h *PersonHandler) AssignGym(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	personID, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}
	gymID, ok := handlePathID(w, r, "gymId", log)
	if !ok {
		return
	}

	person, err := h.personService.AssignGym(r.Context(), personID, gymID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to assign gym")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, person)
}

// GetCachedPersons handles GET /api/persons/cache. Entries are ordered from
// least to most recently used.
func (h *PersonHandler) GetCachedPersons(w http.ResponseWriter, r *http.Request) {
	cached := h.personService.CachedPeople()
	if cached == nil {
		cached = []domain.Person{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cached)
}

// GetCacheStats handles GET /api/persons/cache/stats.
func (h *PersonHandler) GetCacheStats(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.personService.CacheStats())
}

// ClearCache handles DELETE /api/persons/cache/clear.
func (h *PersonHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	h.personService.ClearCache()
	log.Info("person cache cleared")
	w.WriteHeader(http.StatusNoContent)
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
