package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if FIFA_CONFIG is set
//  3. env (prefix FIFA_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("FIFA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: FIFA_ADDR, FIFA_DATA_PATH, ...
	// Map env keys like FIFA_DATA_PATH -> data_path (flat keys), preserving
	// underscores to match koanf tags on the struct.
	envProvider := env.Provider("FIFA_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "fifa_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.DataPath) == "":
		return fmt.Errorf("%w: data_path must not be empty", ErrInvalidConfig)
	case c.TopClubsLimit < 1:
		return fmt.Errorf("%w: top_clubs_limit must be at least 1", ErrInvalidConfig)
	case c.MinHistogramBins < 1 || c.MaxHistogramBins < c.MinHistogramBins:
		return fmt.Errorf("%w: histogram bin range is inverted", ErrInvalidConfig)
	case c.DefaultHistogramBins < c.MinHistogramBins || c.DefaultHistogramBins > c.MaxHistogramBins:
		return fmt.Errorf("%w: default_histogram_bins outside [min,max]", ErrInvalidConfig)
	case c.MinBubbleScale < 1 || c.MaxBubbleScale < c.MinBubbleScale:
		return fmt.Errorf("%w: bubble scale range is inverted", ErrInvalidConfig)
	case c.DefaultBubbleScale < c.MinBubbleScale || c.DefaultBubbleScale > c.MaxBubbleScale:
		return fmt.Errorf("%w: default_bubble_scale outside [min,max]", ErrInvalidConfig)
	}
	return nil
}
