// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/burdigala/melee/internal/domain/bracket"
	"github.com/burdigala/melee/internal/domain/forecast"
)

// ForecastDependencies defines the interface for forecast operations.
type ForecastDependencies interface {
	Forecast(ctx context.Context, runs int) (forecast.Distribution, error)
	DefaultRuns() int
}

// ForecastHandler handles Monte Carlo forecast requests.
type ForecastHandler struct {
	deps    ForecastDependencies
	maxRuns int
}

// NewForecastHandler creates a new forecast handler.
func NewForecastHandler(deps ForecastDependencies, maxRuns int) *ForecastHandler {
	return &ForecastHandler{deps: deps, maxRuns: maxRuns}
}

// HandleGetForecast handles GET /forecast?runs=N requests. The runs
// parameter is optional; when present it must be positive and within the
// configured cap.
func (h *ForecastHandler) HandleGetForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	runs := h.deps.DefaultRuns()
	if runsStr := r.URL.Query().Get("runs"); runsStr != "" {
		n, err := strconv.Atoi(runsStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if n > h.maxRuns {
			writeError(w, http.StatusBadRequest, "runs_exceeded", ErrBadRequest)
			return
		}
		runs = n
	}

	dist, err := h.deps.Forecast(r.Context(), runs)
	if err != nil {
		if errors.Is(err, bracket.ErrEmptyField) {
			writeError(w, http.StatusUnprocessableEntity, "empty_field", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, dist)
}
