// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math"

	"github.com/danielhkuo/stemkompas/models"
)

// tally holds the weighted accumulators shared by the dual and legacy
// scorers.
type tally struct {
	numerator    float64
	denominator  float64
	coverageW    float64
	matches      int
	conflicts    int
	neutralAlign int
	partialAlign int
	answered     int
}

// accumulate walks the answered statements that exist in the stance
// lookup. Answers without a matching stance are skipped entirely: they
// count toward nothing, since absence of a stance means "no data",
// not a recorded neutral.
func accumulate(answers []models.UserAnswer, stances []models.StancePoint, p Params) tally {
	posByID := make(map[string]models.Pos, len(stances))
	for _, s := range stances {
		posByID[s.StatementID] = s.Position
	}

	var t tally
	for _, ans := range answers {
		partyPos, ok := posByID[ans.StatementID]
		if !ok {
			continue
		}

		weight := ans.Weight
		if weight == 0 {
			weight = 1
		}
		g := Compatibility(ans.Position, partyPos, ans.Importance, p)

		t.numerator += weight * g
		t.denominator += weight
		t.answered++

		if partyPos != models.PosNeutral {
			t.coverageW += weight
		}

		switch {
		case ans.Position == models.PosNeutral && partyPos == models.PosNeutral:
			t.neutralAlign++
		case ans.Position == models.PosNeutral || partyPos == models.PosNeutral:
			t.partialAlign++
		case ans.Position == partyPos:
			t.matches++
		default:
			t.conflicts++
		}
	}
	return t
}

// ScorePositionSet aggregates compatibility over all answered
// statements against one stance-set, applying the linear coverage
// penalty lambda*(1-coverage). Zero answered statements yield an
// all-zero breakdown.
func ScorePositionSet(answers []models.UserAnswer, stances []models.StancePoint, p Params) models.ScoreBreakdown {
	t := accumulate(answers, stances, p)
	if t.denominator == 0 {
		return models.ScoreBreakdown{}
	}

	rawScore := t.numerator / t.denominator
	coverage := t.coverageW / t.denominator
	penalty := p.Lambda * (1 - coverage)
	finalScore := math.Max(0, math.Min(1, rawScore-penalty))

	return models.ScoreBreakdown{
		Score:        int(math.Round(finalScore * 100)),
		RawScore:     int(math.Round(rawScore * 100)),
		Coverage:     coverage,
		Penalty:      int(math.Round(penalty * 100)),
		Matches:      t.matches,
		Conflicts:    t.conflicts,
		NeutralAlign: t.neutralAlign,
		PartialAlign: t.partialAlign,
		Answered:     t.answered,
	}
}
