package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/gym-api/internal/api/shared"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/phrazzld/gym-api/internal/service"
)

// MembershipHandler handles membership requests.
type MembershipHandler struct {
	membershipService service.MembershipService
	logger            *slog.Logger
}

// NewMembershipHandler creates a new MembershipHandler.
func NewMembershipHandler(membershipService service.MembershipService, logger *slog.Logger) *MembershipHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for MembershipHandler")
	}

	return &MembershipHandler{
		membershipService: membershipService,
		logger:            logger.With(slog.String("component", "membership_handler")),
	}
}

// CreateMembership handles POST /api/memberships/person/{personId}.
func (h *MembershipHandler) CreateMembership(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	personID, ok := handlePathID(w, r, "personId", log)
	if !ok {
		return
	}

	var req MembershipRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	membership, err := h.membershipService.Create(r.Context(), personID, req.toInput())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create membership")
		return
	}

	log.Debug("membership created",
		slog.Int64("membership_id", membership.ID),
		slog.Int64("person_id", personID))
	shared.RespondWithJSON(w, r, http.StatusCreated, membership)
}

// ListPersonMemberships handles GET /api/memberships/person/{personId}.
func (h *MembershipHandler) ListPersonMemberships(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	personID, ok := handlePathID(w, r, "personId", log)
	if !ok {
		return
	}

	memberships, err := h.membershipService.ListByPerson(r.Context(), personID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list memberships")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, nonNil(memberships))
}

// GetMembership handles GET /api/memberships/{id}.
func (h *MembershipHandler) GetMembership(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	membership, err := h.membershipService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get membership")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, membership)
}

// DeleteMembership handles DELETE /api/memberships/{id}.
func (h *MembershipHandler) DeleteMembership(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.membershipService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete membership")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
