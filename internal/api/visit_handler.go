package api

import (
	"net/http"

	"github.com/phrazzld/gym-api/internal/api/shared"
	"github.com/phrazzld/gym-api/internal/service"
)

// VisitHandler tracks and reports site visits.
type VisitHandler struct {
	counter *service.VisitCounter
}

// NewVisitHandler creates a new VisitHandler.
func NewVisitHandler(counter *service.VisitCounter) *VisitHandler {
	if counter == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("counter cannot be nil for VisitHandler")
	}
	return &VisitHandler{counter: counter}
}

// Track handles POST /api/visit/track.
func (h *VisitHandler) Track(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, VisitCountResponse{Count: h.counter.Track()})
}

// Count handles GET /api/visit/count.
func (h *VisitHandler) Count(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, VisitCountResponse{Count: h.counter.Count()})
}
