// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the
Stemkompas API.

# Positions

All answers and party stances use the Pos type: -1 (disagree),
0 (neutral), +1 (agree). Absence of a stance is represented by the
stance simply not existing in a party's stance-set, which is distinct
from a recorded neutral.

# Stance-Sets

Each party carries two independent stance-sets with the same shape:

  - Program: positions taken in the written election program
  - Votes: positions reconstructed from parliamentary voting records

A statement may appear in one set and not the other.

# Score Shapes

ScoreBreakdown is the per-stance-set result (0-100 integer scores,
0-1 coverage, categorical counts). DualPartyResult blends program and
votes breakdowns into one combined score. CoalitionChance is derived
from a ranked result list plus the seat and incompatibility tables.
*/
package models
