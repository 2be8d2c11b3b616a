// Package types contains common types used across the application
package types

// SliderRange describes the bounds and default of a dashboard slider control.
type SliderRange struct {
	Min     int `json:"min"`
	Default int `json:"default"`
	Max     int `json:"max"`
}

// FilterOptions is the control-bootstrap payload: the dataset-derived bounds
// and option lists the sidebar controls initialize from.
type FilterOptions struct {
	AgeMin        int         `json:"age_min"`
	AgeMax        int         `json:"age_max"`
	RatingMin     int         `json:"rating_min"`
	RatingMax     int         `json:"rating_max"`
	Nationalities []string    `json:"nationalities"`
	HistogramBins SliderRange `json:"histogram_bins"`
	BubbleScale   SliderRange `json:"bubble_scale"`
	TopClubsLimit int         `json:"top_clubs_limit"`
}
