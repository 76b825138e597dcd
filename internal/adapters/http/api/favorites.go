// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/burdigala/melee/internal/domain/types"
)

// FavoritesDependencies defines the interface for favorites operations.
type FavoritesDependencies interface {
	Favorites(ctx context.Context, limit int) []types.Entry
}

// FavoritesHandler handles tournament-favorites requests.
type FavoritesHandler struct {
	deps     FavoritesDependencies
	maxLimit int
}

// NewFavoritesHandler creates a new favorites handler.
func NewFavoritesHandler(deps FavoritesDependencies, maxLimit int) *FavoritesHandler {
	return &FavoritesHandler{deps: deps, maxLimit: maxLimit}
}

// HandleGetFavorites handles GET /favorites?limit=N requests: the top
// entrants by external rank, best rank first.
func (h *FavoritesHandler) HandleGetFavorites(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	limitStr := r.URL.Query().Get("limit")
	n, err := strconv.Atoi(limitStr)
	if err != nil || n < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if n > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded", ErrBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Favorites(r.Context(), n))
}
