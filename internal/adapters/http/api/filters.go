// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// FiltersHandler serves the control-bootstrap payload.
type FiltersHandler struct {
	deps Dependencies
}

// NewFiltersHandler creates a new filters handler.
func NewFiltersHandler(deps Dependencies) *FiltersHandler {
	return &FiltersHandler{deps: deps}
}

// HandleGetFilters handles GET /api/filters requests. The sidebar controls
// initialize from this payload: dataset bounds, nationality options, and
// slider defaults.
func (h *FiltersHandler) HandleGetFilters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	opts, err := h.deps.FilterOptions(r.Context())
	if err != nil {
		writePipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opts)
}
