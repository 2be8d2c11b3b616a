// Package model contains domain models passed between layers.
package model

// Player represents one row of the source table.
// The named fields are the ones the pipeline reads; every other column is
// carried in Attributes untouched.
type Player struct {
	Name          string            `json:"name"`
	Age           int               `json:"age"`
	OverallRating int               `json:"overall_rating"`
	Nationality   string            `json:"nationality"`
	Club          string            `json:"club"`
	Value         float64           `json:"value"` // market value, numeric in the source data
	Attributes    map[string]string `json:"attributes,omitempty"`
}
