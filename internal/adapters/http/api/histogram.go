// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/Bloch-AI/fifa-dashboard/internal/domain/histogram"
)

// HistogramHandler handles rating-distribution requests.
type HistogramHandler struct {
	deps Dependencies
}

// NewHistogramHandler creates a new histogram handler.
func NewHistogramHandler(deps Dependencies) *HistogramHandler {
	return &HistogramHandler{deps: deps}
}

type histogramResponse struct {
	Bins []histogram.Bin `json:"bins"`
}

// HandleGetHistogram handles GET /api/histogram?bins=N requests. The service
// clamps the bin count to the slider range.
func (h *HistogramHandler) HandleGetHistogram(w http.ResponseWriter, r *http.Request) {
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
	bins, err := parsePositiveInt(r, "bins")
	if err != nil {
		writePipelineError(w, err)
		return
	}

	out, err := h.deps.RatingHistogram(r.Context(), criteria, bins)
	if err != nil {
		writePipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, histogramResponse{Bins: out})
}
