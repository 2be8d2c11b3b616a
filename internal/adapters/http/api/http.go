// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Bloch-AI/fifa-dashboard/internal/domain/aggregate"
	"github.com/Bloch-AI/fifa-dashboard/internal/domain/filter"
	"github.com/Bloch-AI/fifa-dashboard/internal/domain/histogram"
	"github.com/Bloch-AI/fifa-dashboard/internal/domain/model"
	"github.com/Bloch-AI/fifa-dashboard/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// FilterPlayers returns the filtered view in original dataset order.
	FilterPlayers(ctx context.Context, c filter.Criteria) ([]model.Player, error)

	// TopClubs returns the club aggregate for the filtered view.
	TopClubs(ctx context.Context, c filter.Criteria, limit int) ([]aggregate.ClubRating, error)

	// RatingHistogram returns rating buckets for the filtered view.
	RatingHistogram(ctx context.Context, c filter.Criteria, bins int) ([]histogram.Bin, error)

	// FilterOptions returns the control-bootstrap payload.
	FilterOptions(ctx context.Context) (types.FilterOptions, error)
}

// FilterOptions mirrors the read shape returned by the control bootstrap.
type FilterOptions = types.FilterOptions

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	playersHandler   *PlayersHandler
	clubsHandler     *ClubsHandler
	histogramHandler *HistogramHandler
	filtersHandler   *FiltersHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		playersHandler:   NewPlayersHandler(deps),
		clubsHandler:     NewClubsHandler(deps),
		histogramHandler: NewHistogramHandler(deps),
		filtersHandler:   NewFiltersHandler(deps),
		dashboardHandler: newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/players", MetricsMiddleware(s.playersHandler.HandleGetPlayers, "players"))
	mux.HandleFunc("/api/clubs/top", MetricsMiddleware(s.clubsHandler.HandleGetTopClubs, "clubs"))
	mux.HandleFunc("/api/histogram", MetricsMiddleware(s.histogramHandler.HandleGetHistogram, "histogram"))
	mux.HandleFunc("/api/filters", MetricsMiddleware(s.filtersHandler.HandleGetFilters, "filters"))
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

// writePipelineError translates pipeline failures: invalid criteria become a
// 400, everything else is a 500. A value-parse failure aborts only the
// requesting visualisation; other panels keep their own fetches.
func writePipelineError(w http.ResponseWriter, err error) {
	if errors.Is(err, filter.ErrInvalidRange) || errors.Is(err, ErrBadRequest) {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", err)
}
