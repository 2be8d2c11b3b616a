// Package filter implements the conjunctive row predicate of the pipeline.
//
// A Criteria value is rebuilt from control state on every interaction and never
// persisted. Apply is a pure function: it keeps the dataset's relative order,
// treats both numeric bounds as inclusive, and combines the three predicates
// with logical AND. An empty result is valid.
package filter

import (
	"fmt"

	"github.com/Bloch-AI/fifa-dashboard/internal/domain/model"
)

// Criteria holds the current control values.
//
// Nationalities distinguishes nil from empty: nil permits every nationality
// (nothing deselected), while an empty non-nil slice permits none.
type Criteria struct {
	AgeMin    int
	AgeMax    int
	RatingMin int
	RatingMax int

	Nationalities []string
}

// Validate rejects inverted ranges. The control layer is expected to call this
// before running the pipeline; Apply performs no bound repair.
func (c Criteria) Validate() error {
	if c.AgeMin > c.AgeMax {
		return fmt.Errorf("%w: age %d..%d", ErrInvalidRange, c.AgeMin, c.AgeMax)
	}
	if c.RatingMin > c.RatingMax {
		return fmt.Errorf("%w: rating %d..%d", ErrInvalidRange, c.RatingMin, c.RatingMax)
	}
	return nil
}

// permittedSet materializes the nationality membership test.
// A nil return means every nationality is permitted.
func (c Criteria) permittedSet() map[string]struct{} {
	if c.Nationalities == nil {
		return nil
	}
	set := make(map[string]struct{}, len(c.Nationalities))
	for _, n := range c.Nationalities {
		set[n] = struct{}{}
	}
	return set
}

// Matches reports whether a single record passes all three predicates.
func (c Criteria) Matches(p model.Player) bool {
	return matches(p, c, c.permittedSet())
}

func matches(p model.Player, c Criteria, permitted map[string]struct{}) bool {
	if p.Age < c.AgeMin || p.Age > c.AgeMax {
		return false
	}
	if p.OverallRating < c.RatingMin || p.OverallRating > c.RatingMax {
		return false
	}
	if permitted != nil {
		if _, ok := permitted[p.Nationality]; !ok {
			return false
		}
	}
	return true
}

// Apply returns the subsequence of players satisfying the criteria,
// preserving the original relative order.
func Apply(players []model.Player, c Criteria) []model.Player {
	permitted := c.permittedSet()
	out := make([]model.Player, 0, len(players))
	for _, p := range players {
		if matches(p, c, permitted) {
			out = append(out, p)
		}
	}
	return out
}
