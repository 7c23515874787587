// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package coalition

import (
	"math"
	"sort"

	"github.com/danielhkuo/stemkompas/models"
)

// RankedParty is the minimal input shape the fallback estimator needs:
// a party name and its 0-100 match score, used as a vote-share proxy.
type RankedParty struct {
	Name  string
	Score int
}

// FallbackChances is the non-exponential estimator, used when seat and
// incompatibility tables are unavailable. Each party's score share is
// scaled to a seat projection; the party is then paired with up to
// three of its strongest potential partners. If the combined scaled
// seats clear the majority threshold, that combination is reported as
// the party's likely coalition. A deployment uses either this or the
// exact estimator, never both.
func FallbackChances(results []RankedParty, totalSeats, majorityThreshold int) []models.CoalitionChance {
	var totalScore int
	for _, r := range results {
		totalScore += r.Score
	}

	scaled := make(map[string]int, len(results))
	for _, r := range results {
		if totalScore > 0 {
			scaled[r.Name] = int(math.Round(float64(totalSeats) * float64(r.Score) / float64(totalScore)))
		}
	}

	// Strongest parties first; ties break on name for determinism.
	ordered := make([]RankedParty, len(results))
	copy(ordered, results)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Score != ordered[j].Score {
			return ordered[i].Score > ordered[j].Score
		}
		return ordered[i].Name < ordered[j].Name
	})

	chances := make([]models.CoalitionChance, 0, len(results))
	for _, r := range results {
		seats := scaled[r.Name]
		var partners []string

		for _, other := range ordered {
			if other.Name == r.Name || len(partners) == 3 {
				continue
			}
			partners = append(partners, other.Name)
			seats += scaled[other.Name]
			if seats >= majorityThreshold {
				break
			}
		}

		if seats < majorityThreshold {
			pct := clampPct(int(math.Round(100 * float64(scaled[r.Name]) / float64(totalSeats))))
			chances = append(chances, models.CoalitionChance{
				PartyName:            r.Name,
				ChancePercentage:     pct,
				MostLikelyCoalitions: []models.CoalitionOption{},
				Explanation:          explanation(r.Name, pct),
			})
			continue
		}

		pct := clampPct(int(math.Round(100 * float64(seats) / float64(totalSeats))))
		chances = append(chances, models.CoalitionChance{
			PartyName:        r.Name,
			ChancePercentage: pct,
			MostLikelyCoalitions: []models.CoalitionOption{
				{Partners: partners, Seats: seats, Probability: 100},
			},
			Explanation: explanation(r.Name, pct),
		})
	}

	return chances
}

func clampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
