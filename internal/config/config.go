// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, optional file, and env vars.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataPath points at the player CSV file loaded once at startup.
	DataPath string `koanf:"data_path"`

	// TopClubsLimit caps the club aggregate size (the bar chart shows this many).
	TopClubsLimit int `koanf:"top_clubs_limit"`

	// Histogram bin controls exposed to the dashboard slider.
	DefaultHistogramBins int `koanf:"default_histogram_bins"`
	MinHistogramBins     int `koanf:"min_histogram_bins"`
	MaxHistogramBins     int `koanf:"max_histogram_bins"`

	// Bubble scale controls exposed to the dashboard slider. The scale is
	// applied client-side; the server only hands the bounds to the page.
	DefaultBubbleScale int `koanf:"default_bubble_scale"`
	MinBubbleScale     int `koanf:"min_bubble_scale"`
	MaxBubbleScale     int `koanf:"max_bubble_scale"`

	// SkipMalformedRows switches the load from hard-fail to skip-with-warning
	// when a row cannot be parsed.
	SkipMalformedRows bool `koanf:"skip_malformed_rows"`
}

// New creates a Config populated with defaults. The numeric slider defaults
// mirror the reference dashboard: bins 20 in [10,50], bubble scale 30 in [10,100].
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":9080",
		DataPath:             "FIFA DATA.csv",
		TopClubsLimit:        10,
		DefaultHistogramBins: 20,
		MinHistogramBins:     10,
		MaxHistogramBins:     50,
		DefaultBubbleScale:   30,
		MinBubbleScale:       10,
		MaxBubbleScale:       100,
		SkipMalformedRows:    false,
	}
}
