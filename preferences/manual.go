// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package preferences

import (
	"fmt"
	"math/rand/v2"

	"github.com/danielhkuo/kingmaker/models"
)

// Manual resamples real ballots: each draw picks one of the supplied ballots
// uniformly, with replacement.
type Manual[B models.Ballot] struct {
	ballots models.Profile[B]
}

// NewManual wraps a fixed profile. Fails with ErrEmptyProfile if it is empty.
func NewManual[B models.Ballot](profile models.Profile[B]) (Manual[B], error) {
	if len(profile) == 0 {
		return Manual[B]{}, ErrEmptyProfile
	}
	ballots := make(models.Profile[B], len(profile))
	for i, b := range profile {
		ballots[i] = models.Clone(b)
	}
	return Manual[B]{ballots: ballots}, nil
}

func (m Manual[B]) String() string { return fmt.Sprintf("Manual(%d ballots)", len(m.ballots)) }

// Draw returns a copy of a randomly chosen ballot
func (m Manual[B]) Draw(_ []models.Candidate, rng *rand.Rand) B {
	return models.Clone(m.ballots[rng.IntN(len(m.ballots))])
}

// Validate checks every supplied ballot against the candidate set
func (m Manual[B]) Validate(candidates []models.Candidate) error {
	if err := m.ballots.Check(models.NewIndex(candidates)); err != nil {
		return fmt.Errorf("manual preference: %w", err)
	}
	return nil
}
