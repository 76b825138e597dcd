// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/burdigala/melee/internal/adapters/repository"
	"github.com/burdigala/melee/internal/domain/duel"
	"github.com/burdigala/melee/internal/domain/forecast"
	"github.com/burdigala/melee/internal/domain/rating"
	"github.com/burdigala/melee/internal/domain/types"
)

// Dependencies required by HTTP handlers. An interface bundle keeps the
// handler layer loosely coupled to the service implementation.
type Dependencies interface {
	Roster(ctx context.Context) []types.Entry
	Rating(ctx context.Context, name string) (types.Entry, error)
	Duel(ctx context.Context, nameA, nameB string) (duel.Outcome, error)
	Forecast(ctx context.Context, runs int) (forecast.Distribution, error)
	DefaultRuns() int
	Favorites(ctx context.Context, limit int) []types.Entry
	RosterStats(ctx context.Context) types.RosterStats
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	rosterHandler    *RosterHandler
	ratingHandler    *RatingHandler
	duelHandler      *DuelHandler
	forecastHandler  *ForecastHandler
	favoritesHandler *FavoritesHandler
}

// NewServer creates a new API server with all handlers. maxRuns and
// maxFavorites cap the corresponding query parameters.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxRuns, maxFavorites int) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(deps, statsProvider),
		rosterHandler:    NewRosterHandler(deps),
		ratingHandler:    NewRatingHandler(deps),
		duelHandler:      NewDuelHandler(deps),
		forecastHandler:  NewForecastHandler(deps, maxRuns),
		favoritesHandler: NewFavoritesHandler(deps, maxFavorites),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/roster", MetricsMiddleware(s.rosterHandler.HandleGetRoster, "roster"))
	mux.HandleFunc("/rating/", MetricsMiddleware(s.ratingHandler.HandleGetRating, "rating"))
	mux.HandleFunc("/duel", MetricsMiddleware(s.duelHandler.HandleGetDuel, "duel"))
	mux.HandleFunc("/forecast", MetricsMiddleware(s.forecastHandler.HandleGetForecast, "forecast"))
	mux.HandleFunc("/favorites", MetricsMiddleware(s.favoritesHandler.HandleGetFavorites, "favorites"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates known domain errors to their HTTP shape.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, rating.ErrMissingRecord):
		writeError(w, http.StatusUnprocessableEntity, "incomplete_record", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
