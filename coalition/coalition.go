// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package coalition

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/danielhkuo/stemkompas/models"
)

// MaxParties bounds the exact 2^n enumeration. Realistic multi-party
// legislatures stay well under this.
const MaxParties = 20

// ErrTooManyParties is returned when the exact estimator would need to
// enumerate more subsets than MaxParties allows. Callers should switch
// to the fallback estimator instead of truncating.
var ErrTooManyParties = errors.New("too many parties for exact coalition enumeration")

// unknownIdeology is assumed for parties missing from the ideology
// table (center of the 0-10 left-right scale).
const unknownIdeology = 5.0

// Tables holds the externally supplied coalition data: projected seats,
// the pairwise incompatibility matrix, and ideological positions on a
// 0-10 left-right scale. Incompatibility is treated as symmetric: if A
// lists B, the pair is blocked regardless of B's list.
type Tables struct {
	MajorityThreshold int
	Seats             map[string]int
	Incompatible      map[string][]string
	Ideology          map[string]float64
}

// Coalition is one feasible majority coalition with its stability
// score (inverse of mean pairwise ideological distance).
type Coalition struct {
	Parties   []string
	Seats     int
	Stability float64
}

func (t Tables) compatible(a, b string) bool {
	for _, x := range t.Incompatible[a] {
		if x == b {
			return false
		}
	}
	for _, x := range t.Incompatible[b] {
		if x == a {
			return false
		}
	}
	return true
}

func (t Tables) distance(a, b string) float64 {
	pa, ok := t.Ideology[a]
	if !ok {
		pa = unknownIdeology
	}
	pb, ok := t.Ideology[b]
	if !ok {
		pb = unknownIdeology
	}
	return math.Abs(pa-pb) / 10
}

// Enumerate generates every feasible coalition among the given parties:
// at least two members, projected seats at or above the majority
// threshold, and every pair mutually compatible. Results are sorted by
// stability descending with deterministic tie-breaks.
func Enumerate(parties []string, t Tables) ([]Coalition, error) {
	n := len(parties)
	if n > MaxParties {
		return nil, fmt.Errorf("%w: %d parties (max %d)", ErrTooManyParties, n, MaxParties)
	}

	var coalitions []Coalition
	for mask := 1; mask < 1<<n; mask++ {
		var members []string
		seats := 0
		for j := 0; j < n; j++ {
			if mask&(1<<j) != 0 {
				members = append(members, parties[j])
				seats += t.Seats[parties[j]]
			}
		}

		if seats < t.MajorityThreshold || len(members) < 2 {
			continue
		}

		compatible := true
		for x := 0; x < len(members) && compatible; x++ {
			for y := x + 1; y < len(members) && compatible; y++ {
				if !t.compatible(members[x], members[y]) {
					compatible = false
				}
			}
		}
		if !compatible {
			continue
		}

		var totalDistance float64
		pairs := 0
		for x := 0; x < len(members); x++ {
			for y := x + 1; y < len(members); y++ {
				totalDistance += t.distance(members[x], members[y])
				pairs++
			}
		}
		avgDistance := 0.0
		if pairs > 0 {
			avgDistance = totalDistance / float64(pairs)
		}

		coalitions = append(coalitions, Coalition{
			Parties:   members,
			Seats:     seats,
			Stability: math.Max(0, 1-avgDistance),
		})
	}

	sort.Slice(coalitions, func(i, j int) bool {
		a, b := coalitions[i], coalitions[j]
		if a.Stability != b.Stability {
			return a.Stability > b.Stability
		}
		if a.Seats != b.Seats {
			return a.Seats > b.Seats
		}
		return strings.Join(a.Parties, "+") < strings.Join(b.Parties, "+")
	})

	return coalitions, nil
}

// Chances computes per-party coalition probabilities from the feasible
// coalition space. A party's chance is its share of total coalition
// stability; parties in no feasible coalition get zero. Each party also
// reports its top-3 coalitions by stability.
func Chances(partyNames []string, t Tables) ([]models.CoalitionChance, error) {
	coalitions, err := Enumerate(partyNames, t)
	if err != nil {
		return nil, err
	}

	var totalWeight float64
	for _, c := range coalitions {
		totalWeight += c.Stability
	}

	chances := make([]models.CoalitionChance, 0, len(partyNames))
	for _, name := range partyNames {
		var partyCoalitions []Coalition
		var partyWeight float64
		for _, c := range coalitions {
			for _, member := range c.Parties {
				if member == name {
					partyCoalitions = append(partyCoalitions, c)
					partyWeight += c.Stability
					break
				}
			}
		}

		if len(partyCoalitions) == 0 {
			chances = append(chances, models.CoalitionChance{
				PartyName:            name,
				ChancePercentage:     0,
				MostLikelyCoalitions: []models.CoalitionOption{},
				Explanation:          fmt.Sprintf("%s heeft grote moeite om coalitiepartners te vinden door ideologische incompatibiliteit met andere partijen.", name),
			})
			continue
		}

		pct := 0
		if totalWeight > 0 {
			pct = int(math.Round(100 * partyWeight / totalWeight))
		}
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}

		top := partyCoalitions
		if len(top) > 3 {
			top = top[:3]
		}
		options := make([]models.CoalitionOption, 0, len(top))
		for _, c := range top {
			partners := make([]string, 0, len(c.Parties)-1)
			for _, member := range c.Parties {
				if member != name {
					partners = append(partners, member)
				}
			}
			options = append(options, models.CoalitionOption{
				Partners:    partners,
				Seats:       c.Seats,
				Probability: int(math.Round(100 * c.Stability / partyWeight)),
			})
		}

		chances = append(chances, models.CoalitionChance{
			PartyName:            name,
			ChancePercentage:     pct,
			MostLikelyCoalitions: options,
			Explanation:          explanation(name, pct),
		})
	}

	return chances, nil
}

// explanation buckets a chance percentage into human-readable text.
// The boundaries (>70, >40, >15) are part of the contract; the wording
// is presentation.
func explanation(name string, pct int) string {
	switch {
	case pct > 70:
		return fmt.Sprintf("%s heeft uitstekende coalitiekansen door brede compatibiliteit met andere partijen.", name)
	case pct > 40:
		return fmt.Sprintf("%s heeft goede coalitiekansen, vooral in centrum-gerichte samenwerking.", name)
	case pct > 15:
		return fmt.Sprintf("%s heeft beperkte maar reële coalitiekansen, afhankelijk van politieke ontwikkelingen.", name)
	default:
		return fmt.Sprintf("%s heeft lage coalitiekansen door ideologische positionering of incompatibiliteit.", name)
	}
}
