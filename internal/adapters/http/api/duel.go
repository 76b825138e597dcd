// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/burdigala/melee/internal/domain/duel"
)

// DuelDependencies defines the interface for matchup operations.
type DuelDependencies interface {
	Duel(ctx context.Context, nameA, nameB string) (duel.Outcome, error)
}

// DuelHandler handles pairwise matchup requests.
type DuelHandler struct {
	deps DuelDependencies
}

// NewDuelHandler creates a new duel handler.
func NewDuelHandler(deps DuelDependencies) *DuelHandler {
	return &DuelHandler{deps: deps}
}

// HandleGetDuel handles GET /duel?a=NAME&b=NAME requests.
func (h *DuelHandler) HandleGetDuel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	a := strings.TrimSpace(r.URL.Query().Get("a"))
	b := strings.TrimSpace(r.URL.Query().Get("b"))
	if a == "" || b == "" || a == b {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	out, err := h.deps.Duel(r.Context(), a, b)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
