// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package methods

import (
	"github.com/danielhkuo/kingmaker/models"
)

// IRV is instant-runoff voting.
//
// Each round counts the top remaining choice of every live ballot. A candidate
// holding a majority of the live ballots (half plus one, rounded down) wins.
// Otherwise every candidate tied at the lowest positive count is eliminated at
// once and the ballots are recounted; exhausted ballots drop out of the
// majority. When the lowest and highest counts coincide nobody can be
// eliminated without emptying the race, and the remaining candidates tie.
//
// Counting the majority over live ballots names the same winner as a majority
// fixed at the size of the whole profile. A candidate holding more than half of
// the live ballots outnumbers all other live ballots combined, so no transfer
// can overtake them and further rounds would only eliminate their rivals.
type IRV struct{}

func (IRV) String() string { return "IRV" }

func (IRV) Outcome(candidates []models.Candidate, profile models.Profile[models.Ordinal]) (models.SingleWinner, error) {
	idx, err := prepare(candidates, profile)
	if err != nil {
		return models.SingleWinner{}, err
	}

	ballots := strike(rankings(profile))
	for len(ballots) > 0 {
		tally := make([]int, len(candidates))
		for _, ballot := range ballots {
			tally[idx[ballot[0]]]++
		}

		majority := len(ballots)/2 + 1
		var losers, standing []models.Candidate
		low := 0
		for i, c := range candidates {
			n := tally[i]
			if n == 0 {
				continue
			}
			if n >= majority {
				return models.Win(c), nil
			}
			standing = append(standing, c)
			switch {
			case low == 0 || n < low:
				low = n
				losers = []models.Candidate{c}
			case n == low:
				losers = append(losers, c)
			}
		}

		if len(losers) == len(standing) {
			return models.Tie(losers...), nil
		}

		ids := make([]models.ID, len(losers))
		for i, c := range losers {
			ids[i] = c.ID()
		}
		ballots = strike(ballots, ids...)
	}
	return models.NoWinner(), nil
}
