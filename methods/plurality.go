// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package methods

import (
	"fmt"

	"github.com/danielhkuo/kingmaker/models"
)

// Plurality counts first choices
type Plurality struct{}

func (Plurality) String() string { return "Plurality" }

func (Plurality) Outcome(candidates []models.Candidate, profile models.Profile[models.Ordinal]) (models.SingleWinner, error) {
	idx, err := prepare(candidates, profile)
	if err != nil {
		return models.SingleWinner{}, err
	}

	tally := make([]int, len(candidates))
	counted := make([]bool, len(candidates))
	for _, ballot := range profile {
		if len(ballot) == 0 {
			continue
		}
		i := idx[ballot[0]]
		tally[i]++
		counted[i] = true
	}
	return leaders(candidates, tally, counted), nil
}

// Approval counts every approval
type Approval struct{}

func (Approval) String() string { return "Approval" }

func (Approval) Outcome(candidates []models.Candidate, profile models.Profile[models.Nominal]) (models.SingleWinner, error) {
	idx, err := prepare(candidates, profile)
	if err != nil {
		return models.SingleWinner{}, err
	}

	tally := make([]int, len(candidates))
	counted := make([]bool, len(candidates))
	for _, ballot := range profile {
		for _, id := range ballot {
			tally[idx[id]]++
			counted[idx[id]] = true
		}
	}
	return leaders(candidates, tally, counted), nil
}

// Borda awards positional points. On a ranking of length L the candidate at
// position i earns L-1-i+Base, so with Base 0 the last ranked candidate earns
// nothing and with Base 1 it earns a point. Unranked candidates earn nothing.
type Borda struct {
	Base int
}

func (m Borda) String() string {
	if m.Base == 0 {
		return "Borda"
	}
	return fmt.Sprintf("Borda(base %d)", m.Base)
}

// Validate rejects bases other than 0 and 1
func (m Borda) Validate([]models.Candidate) error {
	if m.Base != 0 && m.Base != 1 {
		return fmt.Errorf("borda base %d: must be 0 or 1", m.Base)
	}
	return nil
}

func (m Borda) Outcome(candidates []models.Candidate, profile models.Profile[models.Ordinal]) (models.SingleWinner, error) {
	if err := m.Validate(candidates); err != nil {
		return models.SingleWinner{}, err
	}
	idx, err := prepare(candidates, profile)
	if err != nil {
		return models.SingleWinner{}, err
	}

	points := make([]int, len(candidates))
	counted := make([]bool, len(candidates))
	for _, ballot := range profile {
		for pos, id := range ballot {
			points[idx[id]] += len(ballot) - 1 - pos + m.Base
			counted[idx[id]] = true
		}
	}
	return leaders(candidates, points, counted), nil
}

// RandomDictator elects the top choice of the first non-empty ballot. Profiles
// are drawn from a seeded source, so the first ballot is already a random voter.
type RandomDictator struct{}

func (RandomDictator) String() string { return "RandomDictator" }

func (RandomDictator) Outcome(candidates []models.Candidate, profile models.Profile[models.Ordinal]) (models.SingleWinner, error) {
	idx, err := prepare(candidates, profile)
	if err != nil {
		return models.SingleWinner{}, err
	}

	for _, ballot := range profile {
		if len(ballot) > 0 {
			return models.Win(candidates[idx[ballot[0]]]), nil
		}
	}
	return models.NoWinner(), nil
}
