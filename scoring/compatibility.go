// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import "github.com/danielhkuo/stemkompas/models"

// Params are the tunable constants of the compatibility engine.
// The invariant A < B < 1 must hold so that a neutral alignment never
// outranks a real match and a partial alignment never outranks a full
// neutral alignment.
type Params struct {
	// A is the score for an exactly-one-neutral pair.
	A float64
	// B is the score for a both-neutral pair.
	B float64
	// Lambda scales the coverage penalty.
	Lambda float64
	// SoftConflict softens direct conflicts on low-importance themes.
	SoftConflict bool
	// SoftFloor is the conflict score when softening applies.
	SoftFloor float64
}

// DefaultParams returns the canonical constant set: a=0.30, b=0.60,
// lambda=0.12, soft conflict disabled.
func DefaultParams() Params {
	return Params{
		A:         0.30,
		B:         0.60,
		Lambda:    0.12,
		SoftFloor: 0.12,
	}
}

// Compatibility computes the per-statement match quality g in [0,1]
// between one user position and one party position. Rules, in order:
// both neutral -> B; exactly one neutral -> A; equal non-neutral -> 1;
// opposite non-neutral -> SoftFloor when soft conflict is enabled and
// the theme importance is below 0.7, otherwise 0.
func Compatibility(userPos, partyPos models.Pos, importance float64, p Params) float64 {
	if userPos == models.PosNeutral && partyPos == models.PosNeutral {
		return p.B
	}
	if userPos == models.PosNeutral || partyPos == models.PosNeutral {
		return p.A
	}
	if userPos == partyPos {
		return 1
	}
	if p.SoftConflict && importance < 0.7 {
		return p.SoftFloor
	}
	return 0
}
