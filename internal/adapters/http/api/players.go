// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/Bloch-AI/fifa-dashboard/internal/domain/model"
)

// PlayersHandler handles filtered-view requests.
type PlayersHandler struct {
	deps Dependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps Dependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// playersResponse carries the filtered view plus the scalar count shown in
// the sidebar.
type playersResponse struct {
	Count   int            `json:"count"`
	Players []model.Player `json:"players"`
}

// HandleGetPlayers handles GET /api/players requests. The filtered view feeds
// the scatter plot and the raw-data table.
func (h *PlayersHandler) HandleGetPlayers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	opts, err := h.deps.FilterOptions(r.Context())
	if err != nil {
		writePipelineError(w, err)
		return
	}
	criteria, err := parseCriteria(r, opts)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	view, err := h.deps.FilterPlayers(r.Context(), criteria)
	if err != nil {
		writePipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, playersResponse{Count: len(view), Players: view})
}
