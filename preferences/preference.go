// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package preferences

import (
	"errors"
	"math/rand/v2"

	"github.com/danielhkuo/kingmaker/models"
)

var (
	ErrEmptyReference    = errors.New("reference ranking is empty")
	ErrInvalidReference  = errors.New("reference ranking is not a permutation of the candidates")
	ErrInvalidDispersion = errors.New("dispersion must be finite and non-negative")
	ErrEmptyProfile      = errors.New("manual preference needs at least one ballot")
	ErrInvalidWeights    = errors.New("plackett-luce weights must be positive, finite and unique per candidate")
)

// Preference is a distribution over ballots. Draw realizes one ballot.
// Implementations hold only parameters and are safe for concurrent use.
type Preference[B models.Ballot] interface {
	Draw(candidates []models.Candidate, rng *rand.Rand) B
	String() string
}

// Validator is implemented by preferences that must agree with the
// election's candidate set.
type Validator interface {
	Validate(candidates []models.Candidate) error
}

// Sample draws n ballots from p
func Sample[B models.Ballot](p Preference[B], candidates []models.Candidate, n int, rng *rand.Rand) models.Profile[B] {
	profile := make(models.Profile[B], 0, n)
	for i := 0; i < n; i++ {
		profile = append(profile, p.Draw(candidates, rng))
	}
	return profile
}
