// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math"
	"sort"

	"github.com/danielhkuo/stemkompas/models"
)

// ScoreSingleSet is the program-only scoring flow, used for datasets
// without voting-record stances. It shares the compatibility function
// with the dual scorer but applies the coverage penalty in its
// quadratic multiplicative form: score = raw * (1 - lambda*(1-c)^2),
// which punishes low coverage gently near full coverage and harshly
// near zero.
func ScoreSingleSet(parties []models.PartyData, answers []models.UserAnswer, p Params) []models.SingleSetResult {
	results := []models.SingleSetResult{}
	if len(parties) == 0 || len(answers) == 0 {
		return results
	}

	for _, party := range parties {
		results = append(results, scoreSingleParty(party, answers, p))
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Percentage != b.Percentage {
			return a.Percentage > b.Percentage
		}
		// Tie-break: more clear agreement, less clear conflict.
		na := a.Breakdown.Matches - a.Breakdown.Conflicts
		nb := b.Breakdown.Matches - b.Breakdown.Conflicts
		if na != nb {
			return na > nb
		}
		return a.Party.ID < b.Party.ID
	})

	return results
}

func scoreSingleParty(party models.PartyData, answers []models.UserAnswer, p Params) models.SingleSetResult {
	t := accumulate(answers, party.Program, p)

	var rawScore, coverage float64
	if t.denominator > 0 {
		rawScore = t.numerator / t.denominator
		coverage = t.coverageW / t.denominator
	}

	miss := 1 - coverage
	finalScore := rawScore * (1 - p.Lambda*miss*miss)
	finalScore = math.Max(0, math.Min(1, finalScore))

	breakdown := models.ScoreBreakdown{
		Score:        int(math.Round(finalScore * 100)),
		RawScore:     int(math.Round(rawScore * 100)),
		Coverage:     coverage,
		Penalty:      int(math.Round((rawScore - finalScore) * 100)),
		Matches:      t.matches,
		Conflicts:    t.conflicts,
		NeutralAlign: t.neutralAlign,
		PartialAlign: t.partialAlign,
		Answered:     t.answered,
	}

	return models.SingleSetResult{
		Party:      party,
		Breakdown:  breakdown,
		Percentage: breakdown.Score,
	}
}
