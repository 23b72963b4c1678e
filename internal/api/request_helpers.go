package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/gym-api/internal/api/shared"
	"github.com/phrazzld/gym-api/internal/domain"
)

// getPathID extracts a positive int64 id from the URL path parameter
// paramName.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}
	return id, nil
}

// handlePathID extracts the id named paramName and writes a 400 response
// when it is missing or malformed.
func handlePathID(w http.ResponseWriter, r *http.Request, paramName string, log *slog.Logger) (int64, bool) {
	id, err := getPathID(r, paramName)
	if err != nil {
		log.Warn("invalid path parameter",
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}

// decodeAndValidate reads the JSON body into req and validates it, writing a
// 400 response on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any, log *slog.Logger) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		if errors.Is(err, shared.ErrEmptyBody) {
			HandleAPIError(w, r, err, "")
			return false
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("request validation failed")
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}
