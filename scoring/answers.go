// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math"

	"github.com/danielhkuo/stemkompas/models"
)

// defaultImportancePct is assumed when a statement's theme has no
// configured weight.
const defaultImportancePct = 50

// ParsePosition maps a frontend answer string to a position.
func ParsePosition(answer string) (models.Pos, bool) {
	switch answer {
	case "agree":
		return models.PosAgree, true
	case "neutral":
		return models.PosNeutral, true
	case "disagree":
		return models.PosDisagree, true
	default:
		return 0, false
	}
}

// BuildAnswers converts raw quiz input into weighted scoring answers.
//
// categories maps statement IDs to their theme category; themePct maps
// categories to importance percentages (0-100). Statement weights come
// from the strategy applied to the statement's theme importance, unless
// the raw answer carries an explicit weight (which must be 1, 2, or 3).
//
// Malformed entries are dropped and counted rather than coerced:
// unknown answer strings, explicit weights outside 1-3, statements that
// do not exist, and duplicate statement IDs (the later entry wins, the
// shadowed one counts as dropped). The returned answers preserve input
// order.
func BuildAnswers(
	raw []models.RawAnswer,
	categories map[string]string,
	themePct map[string]float64,
	strategy WeightStrategy,
) (answers []models.UserAnswer, dropped int) {
	seen := make(map[string]int, len(raw)) // statementID -> index in answers
	var weights []float64

	for _, r := range raw {
		pos, ok := ParsePosition(r.Answer)
		if !ok {
			dropped++
			continue
		}
		category, ok := categories[r.StatementID]
		if !ok {
			dropped++
			continue
		}
		if r.Weight != 0 && (r.Weight < 1 || r.Weight > 3) {
			dropped++
			continue
		}

		pct, ok := themePct[category]
		if !ok {
			pct = defaultImportancePct
		}
		pct = math.Max(0, math.Min(100, pct))

		weight := strategy.Weight(pct)
		if r.Weight != 0 {
			weight = float64(r.Weight)
		}

		ans := models.UserAnswer{
			StatementID: r.StatementID,
			Position:    pos,
			Weight:      weight,
			Importance:  pct / 100,
		}

		if idx, dup := seen[r.StatementID]; dup {
			answers[idx] = ans
			weights[idx] = weight
			dropped++
			continue
		}
		seen[r.StatementID] = len(answers)
		answers = append(answers, ans)
		weights = append(weights, weight)
	}

	if strategy.Normalized() && len(answers) > 0 {
		normalized := NormalizeWeights(weights)
		for i := range answers {
			answers[i].Weight = normalized[i]
		}
	}

	return answers, dropped
}
