// Package aggregate computes the club-level summary behind the bar chart.
package aggregate

import (
	"sort"

	"github.com/Bloch-AI/fifa-dashboard/internal/domain/model"
)

// ClubRating is one aggregate row: a club and the arithmetic mean of overall
// rating over that club's records in the filtered view.
type ClubRating struct {
	Club       string  `json:"club"`
	MeanRating float64 `json:"mean_rating"`
	Players    int     `json:"players"`
}

// TopClubs groups players by exact club string, computes the mean overall
// rating per club, and returns the top n clubs ordered by mean descending.
// Ties order by club name ascending so output is reproducible. Truncation is a
// no-op when fewer than n clubs exist; an empty input yields an empty result.
func TopClubs(players []model.Player, n int) []ClubRating {
	if n < 1 || len(players) == 0 {
		return []ClubRating{}
	}

	type acc struct {
		sum   float64
		count int
	}
	groups := make(map[string]*acc)
	for _, p := range players {
		g, ok := groups[p.Club]
		if !ok {
			g = &acc{}
			groups[p.Club] = g
		}
		g.sum += float64(p.OverallRating)
		g.count++
	}

	out := make([]ClubRating, 0, len(groups))
	for club, g := range groups {
		out = append(out, ClubRating{
			Club:       club,
			MeanRating: g.sum / float64(g.count),
			Players:    g.count,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanRating != out[j].MeanRating {
			return out[i].MeanRating > out[j].MeanRating
		}
		return out[i].Club < out[j].Club
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}
