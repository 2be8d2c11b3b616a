// Package repository defines the dataset store interface and errors.
package repository

import "github.com/Bloch-AI/fifa-dashboard/pkg/logger"

// Option applies a configuration option to the CSVStore.
type Option func(*CSVStore)

// WithSkipMalformedRows switches the load from hard-fail to skip-with-warning
// for rows that cannot be decoded.
func WithSkipMalformedRows(skip bool) Option {
	return func(s *CSVStore) {
		s.skipMalformed = skip
	}
}

// WithLogger sets the logger used for load warnings.
func WithLogger(log logger.Logger) Option {
	return func(s *CSVStore) {
		if log != nil {
			s.log = log
		}
	}
}
