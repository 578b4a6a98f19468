// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package preferences

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/danielhkuo/kingmaker/models"
	"github.com/danielhkuo/kingmaker/sampling"
)

// Weight is one candidate's Plackett-Luce strength
type Weight struct {
	ID     models.ID `json:"id" yaml:"id"`
	Weight float64   `json:"weight" yaml:"weight"`
}

// PlackettLuce builds a ranking one place at a time: each remaining candidate
// is chosen next with probability proportional to its weight.
//
// Equal weights give a uniformly random ranking. Only weighted candidates
// appear on the ballot.
type PlackettLuce struct {
	weights []Weight
}

// NewPlackettLuce validates the weights: non-empty, positive, finite, one per
// candidate, with a finite total
func NewPlackettLuce(weights []Weight) (PlackettLuce, error) {
	if len(weights) == 0 {
		return PlackettLuce{}, ErrInvalidWeights
	}
	seen := make(map[models.ID]struct{}, len(weights))
	for _, w := range weights {
		if math.IsNaN(w.Weight) || math.IsInf(w.Weight, 0) || w.Weight <= 0 {
			return PlackettLuce{}, fmt.Errorf("candidate %d weight %v: %w", w.ID, w.Weight, ErrInvalidWeights)
		}
		if _, dup := seen[w.ID]; dup {
			return PlackettLuce{}, fmt.Errorf("candidate %d weighted twice: %w", w.ID, ErrInvalidWeights)
		}
		seen[w.ID] = struct{}{}
	}
	if _, err := sampling.NewWeighted(strengths(weights)); err != nil {
		return PlackettLuce{}, fmt.Errorf("plackett-luce weights: %w: %w", ErrInvalidWeights, err)
	}
	return PlackettLuce{weights: slices.Clone(weights)}, nil
}

func (p PlackettLuce) String() string {
	parts := make([]string, len(p.weights))
	for i, w := range p.weights {
		parts[i] = fmt.Sprintf("%d:%g", w.ID, w.Weight)
	}
	return "PlackettLuce(" + strings.Join(parts, ", ") + ")"
}

func (p PlackettLuce) Draw(_ []models.Candidate, rng *rand.Rand) models.Ordinal {
	remaining := slices.Clone(p.weights)
	ballot := make(models.Ordinal, 0, len(remaining))
	for len(remaining) > 0 {
		// Any subset of weights accepted by NewPlackettLuce has a positive finite sum
		choice, _ := sampling.NewWeighted(strengths(remaining))
		i := choice.Sample(rng)
		ballot = append(ballot, remaining[i].ID)
		remaining = slices.Delete(remaining, i, i+1)
	}
	return ballot
}

// Validate checks that every weighted candidate is standing
func (p PlackettLuce) Validate(candidates []models.Candidate) error {
	idx := models.NewIndex(candidates)
	for _, w := range p.weights {
		if _, err := idx.Lookup(w.ID); err != nil {
			return fmt.Errorf("plackett-luce weights: %w", err)
		}
	}
	return nil
}

func strengths(weights []Weight) []float64 {
	out := make([]float64, len(weights))
	for i, w := range weights {
		out[i] = w.Weight
	}
	return out
}
