// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math"
	"sort"

	"github.com/danielhkuo/stemkompas/models"
)

// Combined score blend: program stances carry 70%, voting records 30%.
const (
	programShare = 0.7
	votesShare   = 0.3
)

// Limited voting data thresholds: fewer than 10 recorded votes, or
// vote coverage below 30%, flags the votes score as unreliable.
const (
	minVoteStances  = 10
	minVoteCoverage = 0.3
)

// ScoreParty scores one party against both of its stance-sets and
// blends the results.
func ScoreParty(party models.PartyData, answers []models.UserAnswer, p Params) models.DualPartyResult {
	program := ScorePositionSet(answers, party.Program, p)
	votes := ScorePositionSet(answers, party.Votes, p)

	combined := int(math.Round(programShare*float64(program.Score) + votesShare*float64(votes.Score)))

	return models.DualPartyResult{
		Party:                party,
		Program:              program,
		Votes:                votes,
		Combined:             combined,
		HasLimitedVotingData: len(party.Votes) < minVoteStances || votes.Coverage < minVoteCoverage,
	}
}

// ScoreAll scores every party and ranks the results by combined score
// descending. Ties break on program score descending (program data is
// authoritative when combined scores tie, since voting records are
// sparser), then on party ID ascending for stable output.
func ScoreAll(parties []models.PartyData, answers []models.UserAnswer, p Params) []models.DualPartyResult {
	results := []models.DualPartyResult{}
	if len(parties) == 0 || len(answers) == 0 {
		return results
	}

	for _, party := range parties {
		results = append(results, ScoreParty(party, answers, p))
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Combined != b.Combined {
			return a.Combined > b.Combined
		}
		if a.Program.Score != b.Program.Score {
			return a.Program.Score > b.Program.Score
		}
		return a.Party.ID < b.Party.ID
	})

	return results
}
