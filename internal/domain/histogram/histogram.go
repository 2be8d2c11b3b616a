// Package histogram buckets overall ratings for the distribution chart.
package histogram

import (
	"github.com/Bloch-AI/fifa-dashboard/internal/domain/model"
)

// Bin is one histogram bucket over [From, To). The last bin includes its
// upper edge so the maximum rating is counted.
type Bin struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}

// Ratings buckets the overall ratings of players into bins equal-width bins
// spanning the observed [min, max] range. An empty view yields an empty
// result. When every rating is identical the single populated bin spans one
// unit so the chart still has a drawable width.
func Ratings(players []model.Player, bins int) []Bin {
	if bins < 1 || len(players) == 0 {
		return []Bin{}
	}

	minRating, maxRating := players[0].OverallRating, players[0].OverallRating
	for _, p := range players[1:] {
		if p.OverallRating < minRating {
			minRating = p.OverallRating
		}
		if p.OverallRating > maxRating {
			maxRating = p.OverallRating
		}
	}

	if minRating == maxRating {
		return []Bin{{From: float64(minRating), To: float64(minRating) + 1, Count: len(players)}}
	}

	width := float64(maxRating-minRating) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].From = float64(minRating) + width*float64(i)
		out[i].To = float64(minRating) + width*float64(i+1)
	}
	out[bins-1].To = float64(maxRating)

	for _, p := range players {
		idx := int(float64(p.OverallRating-minRating) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}
