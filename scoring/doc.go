// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring implements the dual compatibility-scoring engine: pure,
deterministic functions that convert a user's weighted quiz answers and
a party's declared positions into normalized, penalized match scores.

# Compatibility

The per-statement compatibility g(u,p) lives in Compatibility:

	g := scoring.Compatibility(userPos, partyPos, importance, params)

Both-neutral pairs score params.B (default 0.60), exactly-one-neutral
pairs score params.A (default 0.30), equal non-neutral pairs score 1,
and conflicts score 0 (or the soft floor on low-importance themes when
soft conflict is enabled).

# Topic Weighting

WeightStrategy maps theme importance percentages to statement weights.
LinearWeights (default) produces integer multipliers 1-3; SigmoidWeights
produces a smooth curve in ~[0.7, 1.3] whose weights are mean-normalized
over the answered set. BuildAnswers applies the configured strategy and
drops (and counts) malformed input instead of coercing it.

# Scorers

ScorePositionSet aggregates one stance-set into a ScoreBreakdown with a
linear coverage penalty lambda*(1-coverage). ScoreAll runs it twice per
party (program and votes), blends 70/30, and ranks with deterministic
tie-breaks. ScoreSingleSet is the program-only flow with the quadratic
multiplicative penalty, for datasets without voting records.

Everything in this package is side-effect free: identical inputs yield
bit-identical outputs across calls.
*/
package scoring
