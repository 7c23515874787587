// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tables

import (
	"fmt"

	"github.com/danielhkuo/stemkompas/coalition"
	"github.com/danielhkuo/stemkompas/scoring"
)

// Estimator constants
const (
	EstimatorExact    = "exact"
	EstimatorFallback = "fallback"
)

// Tables is the externally supplied configuration for the scoring
// engine and the coalition estimator: tunable constants and polling
// data live here, never in code, so polling updates and constant
// retuning require no rebuild.
type Tables struct {
	Scoring   ScoringConfig   `toml:"scoring"`
	Coalition CoalitionConfig `toml:"coalition"`
}

// ScoringConfig carries the compatibility constants and the topic
// weighting strategy selection.
type ScoringConfig struct {
	A                 float64 `toml:"a"`
	B                 float64 `toml:"b"`
	Lambda            float64 `toml:"lambda"`
	SoftConflict      bool    `toml:"soft_conflict"`
	SoftConflictFloor float64 `toml:"soft_conflict_floor"`
	WeightStrategy    string  `toml:"weight_strategy"`
}

// CoalitionConfig carries the estimator selection plus the seat
// projection, incompatibility, and ideology tables.
type CoalitionConfig struct {
	Estimator         string              `toml:"estimator"`
	TotalSeats        int                 `toml:"total_seats"`
	MajorityThreshold int                 `toml:"majority_threshold"`
	Seats             map[string]int      `toml:"seats"`
	Incompatible      map[string][]string `toml:"incompatible"`
	Ideology          map[string]float64  `toml:"ideology"`
}

// Default returns the canonical configuration: the a=0.30/b=0.60/
// lambda=0.12 constant set, linear weighting, the exact estimator, and
// current Dutch polling data (Peilingwijzer, September 2025).
func Default() *Tables {
	return &Tables{
		Scoring: ScoringConfig{
			A:                 0.30,
			B:                 0.60,
			Lambda:            0.12,
			SoftConflict:      false,
			SoftConflictFloor: 0.12,
			WeightStrategy:    "linear",
		},
		Coalition: CoalitionConfig{
			Estimator:         EstimatorExact,
			TotalSeats:        150,
			MajorityThreshold: 76,
			Seats: map[string]int{
				"PVV":                   30,
				"GroenLinks-PvdA":       25,
				"CDA":                   24,
				"VVD":                   16,
				"D66":                   11,
				"JA21":                  9,
				"SP":                    6,
				"Partij voor de Dieren": 5,
				"BBB":                   5,
				"ChristenUnie":          4,
				"DENK":                  4,
				"SGP":                   3,
				"Volt":                  3,
				"FvD":                   3,
				"BVNL":                  1,
				"NSC":                   1,
			},
			Incompatible: map[string][]string{
				"PVV":                   {"GroenLinks-PvdA", "D66", "Volt", "DENK", "Partij voor de Dieren", "SP"},
				"VVD":                   {"PVV", "SP", "Partij voor de Dieren"},
				"GroenLinks-PvdA":       {"PVV", "FvD", "JA21", "BVNL"},
				"D66":                   {"PVV", "FvD", "SGP", "JA21", "BVNL"},
				"NSC":                   {"PVV", "FvD"},
				"SP":                    {"VVD", "PVV", "FvD", "JA21", "BVNL"},
				"ChristenUnie":          {"PVV", "FvD", "DENK"},
				"SGP":                   {"GroenLinks-PvdA", "D66", "SP", "Volt", "DENK", "Partij voor de Dieren"},
				"BBB":                   {"GroenLinks-PvdA", "Partij voor de Dieren"},
				"Volt":                  {"PVV", "FvD", "SGP", "JA21", "BVNL"},
				"Partij voor de Dieren": {"PVV", "FvD", "BBB", "JA21", "BVNL"},
				"FvD":                   {"GroenLinks-PvdA", "D66", "NSC", "SP", "Volt", "DENK", "Partij voor de Dieren"},
				"JA21":                  {"GroenLinks-PvdA", "D66", "SP", "Volt", "DENK", "Partij voor de Dieren"},
				"BVNL":                  {"GroenLinks-PvdA", "D66", "SP", "Volt", "DENK", "Partij voor de Dieren"},
				"DENK":                  {"PVV", "FvD", "SGP", "JA21", "BVNL"},
			},
			Ideology: map[string]float64{
				"SP":                    1,
				"GroenLinks-PvdA":       2.5,
				"Partij voor de Dieren": 3,
				"DENK":                  3.5,
				"Volt":                  4,
				"D66":                   4.5,
				"CDA":                   5.5,
				"ChristenUnie":          6,
				"NSC":                   6.5,
				"VVD":                   7,
				"SGP":                   7.5,
				"BBB":                   8,
				"JA21":                  8.5,
				"BVNL":                  9,
				"FvD":                   9.5,
				"PVV":                   9.5,
			},
		},
	}
}

// Validate checks the configured constants against the engine's design
// invariants.
func (t *Tables) Validate() error {
	s := t.Scoring
	if !(s.A < s.B && s.B < 1) {
		return fmt.Errorf("scoring constants must satisfy a < b < 1, got a=%v b=%v", s.A, s.B)
	}
	if s.Lambda < 0 || s.Lambda > 1 {
		return fmt.Errorf("lambda must be in [0,1], got %v", s.Lambda)
	}
	if s.SoftConflictFloor < 0 || s.SoftConflictFloor >= s.A {
		return fmt.Errorf("soft conflict floor must be in [0,a), got %v", s.SoftConflictFloor)
	}
	if _, err := scoring.StrategyByName(s.WeightStrategy); err != nil {
		return err
	}

	c := t.Coalition
	if c.Estimator != EstimatorExact && c.Estimator != EstimatorFallback {
		return fmt.Errorf("unknown coalition estimator %q", c.Estimator)
	}
	if c.TotalSeats <= 0 {
		return fmt.Errorf("total_seats must be positive, got %d", c.TotalSeats)
	}
	if c.MajorityThreshold <= 0 || c.MajorityThreshold > c.TotalSeats {
		return fmt.Errorf("majority_threshold must be in (0, total_seats], got %d", c.MajorityThreshold)
	}
	return nil
}

// ScoringParams converts the configured constants to engine parameters.
func (t *Tables) ScoringParams() scoring.Params {
	return scoring.Params{
		A:            t.Scoring.A,
		B:            t.Scoring.B,
		Lambda:       t.Scoring.Lambda,
		SoftConflict: t.Scoring.SoftConflict,
		SoftFloor:    t.Scoring.SoftConflictFloor,
	}
}

// CoalitionTables converts the configured data to estimator tables.
func (t *Tables) CoalitionTables() coalition.Tables {
	return coalition.Tables{
		MajorityThreshold: t.Coalition.MajorityThreshold,
		Seats:             t.Coalition.Seats,
		Incompatible:      t.Coalition.Incompatible,
		Ideology:          t.Coalition.Ideology,
	}
}

// WeightStrategy resolves the configured strategy. Validate must have
// accepted the config first.
func (t *Tables) WeightStrategy() scoring.WeightStrategy {
	s, err := scoring.StrategyByName(t.Scoring.WeightStrategy)
	if err != nil {
		return scoring.LinearWeights{}
	}
	return s
}
