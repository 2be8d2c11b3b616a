// Package repository defines the dataset store interface and errors.
package repository

import (
	"context"

	"github.com/Bloch-AI/fifa-dashboard/internal/domain/model"
)

// Store provides read access to the cached dataset.
//
// The dataset is loaded once per process lifetime and is immutable afterwards:
// implementations hand out the same slice to every caller and callers must not
// mutate it.
type Store interface {
	// Players returns every record in original file order.
	Players(ctx context.Context) []model.Player

	// Count returns the number of records in the dataset.
	Count(ctx context.Context) int

	// NationalityOptions returns the distinct nationality values, sorted.
	NationalityOptions(ctx context.Context) []string

	// AgeBounds returns the minimum and maximum age present in the dataset.
	AgeBounds(ctx context.Context) (int, int)

	// RatingBounds returns the minimum and maximum overall rating present.
	RatingBounds(ctx context.Context) (int, int)
}
