// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package preferences

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/danielhkuo/kingmaker/models"
)

// ImpartialMaxScore is the highest score an impartial cardinal ballot gives
const ImpartialMaxScore = 5

// Impartial draws every ballot uniformly at random:
//
//   - Ordinal: a uniformly random ranking (each of the n! orders equally likely)
//   - Nominal: each candidate approved independently with probability 1/2
//   - Cardinal: each candidate scored independently and uniformly in 0..ImpartialMaxScore
type Impartial[B models.Ballot] struct{}

func (Impartial[B]) String() string { return "Impartial" }

func (Impartial[B]) Draw(candidates []models.Candidate, rng *rand.Rand) B {
	var zero B
	var ballot any
	switch any(zero).(type) {
	case models.Ordinal:
		type keyed struct {
			id  models.ID
			key float64
		}
		points := make([]keyed, len(candidates))
		for i, c := range candidates {
			points[i] = keyed{c.ID(), rng.Float64()}
		}
		slices.SortStableFunc(points, func(a, b keyed) int { return cmp.Compare(b.key, a.key) })
		ranking := make(models.Ordinal, len(points))
		for i, p := range points {
			ranking[i] = p.id
		}
		ballot = ranking
	case models.Nominal:
		approved := make([]models.ID, 0, len(candidates))
		for _, c := range candidates {
			if rng.IntN(2) == 1 {
				approved = append(approved, c.ID())
			}
		}
		ballot = models.NewNominal(approved...)
	case models.Cardinal:
		scores := make(models.Cardinal, len(candidates))
		for _, c := range candidates {
			scores[c.ID()] = uint(rng.IntN(ImpartialMaxScore + 1))
		}
		ballot = scores
	}
	return ballot.(B)
}
