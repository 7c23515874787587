// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"fmt"
	"math"
)

// WeightStrategy maps a theme importance percentage (0-100) to a
// multiplicative statement weight. Strategies must be deterministic.
type WeightStrategy interface {
	Name() string
	Weight(importancePct float64) float64
	// Normalized reports whether weights from this strategy should be
	// rescaled to mean 1 over the answered set.
	Normalized() bool
}

// LinearWeights is the v1 mapping: an integer multiplier 1-3.
type LinearWeights struct{}

func (LinearWeights) Name() string { return "linear" }

func (LinearWeights) Weight(pct float64) float64 {
	w := math.Round(pct / 33.33)
	if w < 1 {
		w = 1
	}
	if w > 3 {
		w = 3
	}
	return w
}

func (LinearWeights) Normalized() bool { return false }

// SigmoidWeights is the v2 mapping: a smooth curve centered at 70%
// importance, producing weights roughly in [0.7, 1.3]. Weights only
// meaningfully depart from 1.0 once importance exceeds ~70%.
type SigmoidWeights struct{}

func (SigmoidWeights) Name() string { return "sigmoid" }

func (SigmoidWeights) Weight(pct float64) float64 {
	x := math.Max(0, math.Min(100, pct)) / 100
	const (
		base = 1.0
		amp  = 0.6
		k    = 8.0
		x0   = 0.7
	)
	return base + amp*(1/(1+math.Exp(-k*(x-x0)))-0.5)
}

func (SigmoidWeights) Normalized() bool { return true }

// NormalizeWeights rescales weights so their mean equals 1, keeping the
// aggregate score scale stable regardless of how many high-importance
// statements were answered. The input slice is not modified.
func NormalizeWeights(ws []float64) []float64 {
	if len(ws) == 0 {
		return nil
	}
	var sum float64
	for _, w := range ws {
		sum += w
	}
	if sum == 0 {
		sum = 1
	}
	scale := float64(len(ws)) / sum
	out := make([]float64, len(ws))
	for i, w := range ws {
		out[i] = w * scale
	}
	return out
}

// StrategyByName resolves a configured strategy name.
func StrategyByName(name string) (WeightStrategy, error) {
	switch name {
	case "linear", "":
		return LinearWeights{}, nil
	case "sigmoid":
		return SigmoidWeights{}, nil
	default:
		return nil, fmt.Errorf("unknown weight strategy %q", name)
	}
}
