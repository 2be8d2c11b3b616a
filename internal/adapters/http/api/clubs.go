// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/Bloch-AI/fifa-dashboard/internal/domain/aggregate"
)

// ClubsHandler handles club aggregate requests.
type ClubsHandler struct {
	deps Dependencies
}

// NewClubsHandler creates a new clubs handler.
func NewClubsHandler(deps Dependencies) *ClubsHandler {
	return &ClubsHandler{deps: deps}
}

type clubsResponse struct {
	Clubs []aggregate.ClubRating `json:"clubs"`
}

// HandleGetTopClubs handles GET /api/clubs/top?limit=N requests. The
// aggregate feeds the bar chart; the service caps the limit.
func (h *ClubsHandler) HandleGetTopClubs(w http.ResponseWriter, r *http.Request) {
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
	limit, err := parsePositiveInt(r, "limit")
	if err != nil {
		writePipelineError(w, err)
		return
	}

	clubs, err := h.deps.TopClubs(r.Context(), criteria, limit)
	if err != nil {
		writePipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clubsResponse{Clubs: clubs})
}
