package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithJSON(w, r, http.StatusCreated, map[string]int{"count": 3})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":3}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(SetTraceID(r.Context(), "trace-1"))

	RespondWithError(w, r, http.StatusNotFound, "Person not found")

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Person not found", resp.Error)
	assert.Equal(t, "trace-1", resp.TraceID)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	log, buf := logger.NewTestLogger()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
		{name: "client error", status: http.StatusBadRequest, wantLevel: "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/persons", nil)
			r = r.WithContext(logger.WithLogger(r.Context(), log))

			err := errors.New("insert failed for postgres://gym:secret@db/gym")
			RespondWithErrorAndLog(w, r, tt.status, "Something went wrong", err)

			assert.Equal(t, tt.status, w.Code)
			assert.NotContains(t, w.Body.String(), "secret")
			assert.NotContains(t, w.Body.String(), "insert failed")

			entries := buf.Entries()
			require.NotEmpty(t, entries)
			last := entries[len(entries)-1]
			assert.Equal(t, "API error response", last["msg"])
			assert.Equal(t, tt.wantLevel, last["level"])
			assert.NotContains(t, last["error"], "secret")
		})
	}
}
