// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	repository "github.com/Bloch-AI/fifa-dashboard/internal/adapters/repository"
	"github.com/Bloch-AI/fifa-dashboard/internal/domain/aggregate"
	"github.com/Bloch-AI/fifa-dashboard/internal/domain/filter"
	"github.com/Bloch-AI/fifa-dashboard/internal/domain/histogram"
	"github.com/Bloch-AI/fifa-dashboard/internal/domain/model"
	"github.com/Bloch-AI/fifa-dashboard/internal/domain/types"
	"github.com/Bloch-AI/fifa-dashboard/pkg/logger"
	"github.com/Bloch-AI/fifa-dashboard/pkg/metrics"
)

// Service wires the dataset store and the filter/aggregate pipeline behind
// the HTTP API. The pipeline itself is stateless; the only state here is the
// one-time dataset load.
type Service struct {
	mu sync.RWMutex

	// Core components
	store repository.Store

	// Configuration
	dataPath      string
	skipMalformed bool
	topClubsLimit int
	histogramBins types.SliderRange
	bubbleScale   types.SliderRange

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithDataPath sets the CSV file loaded at startup.
func WithDataPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dataPath = path
		}
	}
}

// WithStore injects a pre-built dataset store. When set, WithDataPath and
// WithSkipMalformedRows are ignored.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithSkipMalformedRows switches the dataset load from hard-fail to
// skip-with-warning.
func WithSkipMalformedRows(skip bool) Option {
	return func(s *Service) {
		s.skipMalformed = skip
	}
}

// WithTopClubsLimit caps the club aggregate size.
func WithTopClubsLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.topClubsLimit = limit
		}
	}
}

// WithHistogramBins sets the bin slider bounds handed to the dashboard.
func WithHistogramBins(r types.SliderRange) Option {
	return func(s *Service) {
		if r.Min > 0 && r.Max >= r.Min {
			s.histogramBins = r
		}
	}
}

// WithBubbleScale sets the bubble-scale slider bounds handed to the dashboard.
func WithBubbleScale(r types.SliderRange) Option {
	return func(s *Service) {
		if r.Min > 0 && r.Max >= r.Min {
			s.bubbleScale = r
		}
	}
}

// New constructs a new Service with default configuration. The slider
// defaults mirror the reference dashboard.
func New(opts ...Option) *Service {
	s := &Service{
		dataPath:      "FIFA DATA.csv",
		topClubsLimit: 10,
		histogramBins: types.SliderRange{Min: 10, Default: 20, Max: 50},
		bubbleScale:   types.SliderRange{Min: 10, Default: 30, Max: 100},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start performs the one-time dataset load. FileAccess and Schema failures
// are unrecoverable for the process; the caller should terminate startup with
// the returned diagnostic.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting dashboard service...")

	if s.store == nil {
		s.store = repository.NewCSVStore(s.dataPath,
			repository.WithSkipMalformedRows(s.skipMalformed),
			repository.WithLogger(s.logger),
		)
	}
	if loader, ok := s.store.(interface{ Load(context.Context) error }); ok {
		if err := loader.Load(ctx); err != nil {
			return err
		}
	}

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.String("dataPath", s.dataPath),
		logger.Int("datasetRows", s.store.Count(ctx)),
		logger.Int("topClubsLimit", s.topClubsLimit),
	)

	return nil
}

// Stop shuts down the service. The dataset is in-memory only, so this just
// flips state and logs.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// FilterPlayers runs the filter pass over the cached dataset and returns the
// filtered view in original order.
func (s *Service) FilterPlayers(ctx context.Context, c filter.Criteria) ([]model.Player, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	view := filter.Apply(s.store.Players(ctx), c)
	metrics.RecordFilterRun(float64(time.Since(start).Microseconds())/1e3, len(view))

	s.logger.Debug(ctx, "filter pass",
		logger.Int("datasetRows", s.store.Count(ctx)),
		logger.Int("filteredRows", len(view)),
	)
	return view, nil
}

// TopClubs runs the filter pass and aggregates mean overall rating per club,
// descending, truncated to limit. A non-positive limit falls back to the
// configured default; larger limits are capped by it.
func (s *Service) TopClubs(ctx context.Context, c filter.Criteria, limit int) ([]aggregate.ClubRating, error) {
	view, err := s.FilterPlayers(ctx, c)
	if err != nil {
		return nil, err
	}

	if limit < 1 || limit > s.topClubsLimit {
		limit = s.topClubsLimit
	}

	start := time.Now()
	clubs := aggregate.TopClubs(view, limit)
	metrics.RecordAggregateDuration(float64(time.Since(start).Microseconds()) / 1e3)
	return clubs, nil
}

// RatingHistogram runs the filter pass and buckets overall ratings. The bin
// count is clamped to the configured slider range.
func (s *Service) RatingHistogram(ctx context.Context, c filter.Criteria, bins int) ([]histogram.Bin, error) {
	view, err := s.FilterPlayers(ctx, c)
	if err != nil {
		return nil, err
	}

	if bins == 0 {
		bins = s.histogramBins.Default
	}
	if bins < s.histogramBins.Min {
		bins = s.histogramBins.Min
	}
	if bins > s.histogramBins.Max {
		bins = s.histogramBins.Max
	}

	start := time.Now()
	out := histogram.Ratings(view, bins)
	metrics.RecordHistogramDuration(float64(time.Since(start).Microseconds()) / 1e3)
	return out, nil
}

// FilterOptions returns the control-bootstrap payload for the dashboard:
// dataset-derived bounds and nationality options plus slider defaults.
func (s *Service) FilterOptions(ctx context.Context) (types.FilterOptions, error) {
	if err := s.ready(); err != nil {
		return types.FilterOptions{}, err
	}

	ageMin, ageMax := s.store.AgeBounds(ctx)
	ratingMin, ratingMax := s.store.RatingBounds(ctx)
	return types.FilterOptions{
		AgeMin:        ageMin,
		AgeMax:        ageMax,
		RatingMin:     ratingMin,
		RatingMax:     ratingMax,
		Nationalities: s.store.NationalityOptions(ctx),
		HistogramBins: s.histogramBins,
		BubbleScale:   s.bubbleScale,
		TopClubsLimit: s.topClubsLimit,
	}, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":       s.started,
		"dataPath":      s.dataPath,
		"topClubsLimit": s.topClubsLimit,
	}

	if s.started {
		stats["datasetRows"] = s.store.Count(ctx)
		stats["nationalities"] = len(s.store.NationalityOptions(ctx))
		metrics.UpdateDatasetRows(s.store.Count(ctx))
	}

	return stats
}

func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return nil
}
