// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sampling

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

var (
	ErrEmptyWeights  = errors.New("weights are empty or sum to zero")
	ErrInvalidWeight = errors.New("weight must be a finite non-negative number")
)

// seedStream decorrelates the two PCG words derived from one seed
const seedStream = 0x9e3779b97f4a7c15

// NewRand returns the deterministic random source used for one run.
// The same seed always yields the same stream.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^seedStream))
}

// Weighted draws indexes with probability proportional to their weight.
// It is immutable after construction and safe for concurrent use.
type Weighted struct {
	cumulative []float64
	total      float64
}

// NewWeighted builds a weighted choice over len(weights) indexes.
// Weights need not sum to one.
func NewWeighted(weights []float64) (*Weighted, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyWeights
	}
	cumulative := make([]float64, len(weights))
	var total float64
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("weight %d (%v): %w", i, w, ErrInvalidWeight)
		}
		total += w
		cumulative[i] = total
	}
	if total <= 0 || math.IsInf(total, 0) {
		return nil, ErrEmptyWeights
	}
	return &Weighted{cumulative: cumulative, total: total}, nil
}

// Len is the number of choices
func (w *Weighted) Len() int { return len(w.cumulative) }

// Sample draws one index. Zero-weight indexes are never returned.
func (w *Weighted) Sample(rng *rand.Rand) int {
	target := rng.Float64() * w.total
	// first index whose cumulative weight exceeds target
	i := sort.Search(len(w.cumulative), func(i int) bool { return w.cumulative[i] > target })
	if i == len(w.cumulative) {
		// rounding at the top end; fall back to the last positive weight
		i = len(w.cumulative) - 1
		for i > 0 && w.cumulative[i] == w.cumulative[i-1] {
			i--
		}
	}
	return i
}
