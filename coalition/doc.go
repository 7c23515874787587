// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package coalition estimates each party's chance of ending up in a
governing majority coalition.

# Exact Estimator

Chances enumerates every subset of the ranked parties (2^n - 1 subsets,
guarded by MaxParties), keeps those that reach the majority seat
threshold with at least two mutually compatible members, and scores
each by stability: 1 minus the mean pairwise ideological distance on a
0-10 left-right scale. A party's chance percentage is its share of the
total stability mass; its top-3 coalitions are reported with partners,
seats, and per-coalition probability.

	chances, err := coalition.Chances(partyNames, tables)

Seat projections, the incompatibility matrix, and ideological positions
are injected via Tables, never embedded, so polling updates need no
code change and tests can supply synthetic data.

# Fallback Estimator

FallbackChances is the linear variant for deployments without seat or
incompatibility tables: it scales each party's match score into a seat
projection and pairs the party with up to three of its strongest
partners. A deployment is configured with exactly one estimator.
*/
package coalition
