package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Bloch-AI/fifa-dashboard/internal/domain/filter"
	"github.com/Bloch-AI/fifa-dashboard/internal/domain/types"
)

// parseCriteria builds filter criteria from query parameters. Absent bounds
// default to the dataset bounds and absent nationality params mean "all";
// an explicitly empty nationality value selects the empty set.
//
// Query parameters: age_min, age_max, rating_min, rating_max, nationality
// (repeatable).
func parseCriteria(r *http.Request, opts types.FilterOptions) (filter.Criteria, error) {
	q := r.URL.Query()
	c := filter.Criteria{
		AgeMin:    opts.AgeMin,
		AgeMax:    opts.AgeMax,
		RatingMin: opts.RatingMin,
		RatingMax: opts.RatingMax,
	}

	for _, bound := range []struct {
		key string
		dst *int
	}{
		{"age_min", &c.AgeMin},
		{"age_max", &c.AgeMax},
		{"rating_min", &c.RatingMin},
		{"rating_max", &c.RatingMax},
	} {
		raw := q.Get(bound.key)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("%w: %s must be an integer", ErrBadRequest, bound.key)
		}
		*bound.dst = v
	}

	if vals, ok := q["nationality"]; ok {
		selected := make([]string, 0, len(vals))
		for _, v := range vals {
			if v != "" {
				selected = append(selected, v)
			}
		}
		c.Nationalities = selected
	}

	return c, nil
}

// parsePositiveInt reads an optional positive integer query parameter,
// returning 0 when absent.
func parsePositiveInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrBadRequest, key)
	}
	return v, nil
}
