// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package preferences

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/danielhkuo/kingmaker/models"
	"github.com/danielhkuo/kingmaker/sampling"
)

// Mallows draws rankings clustered around a reference ranking.
//
// A ranking at Kendall-tau distance d from the reference is drawn with
// probability proportional to exp(-dispersion*d). Sampling happens in two
// steps: first a distance d is drawn with weight I(n,d)*exp(-dispersion*d),
// where I(n,d) counts the permutations of n items with d inversions, then a
// permutation with exactly d inversions is built from a random inversion
// vector.
//
// A dispersion of 0 gives the uniform distribution over all rankings; larger
// values concentrate draws on the reference.
type Mallows struct {
	reference  []models.ID
	dispersion float64
	distances  *sampling.Weighted
}

// NewMallows builds the model. The distance distribution is computed once
// here and shared by every draw.
func NewMallows(reference []models.ID, dispersion float64) (Mallows, error) {
	if len(reference) == 0 {
		return Mallows{}, ErrEmptyReference
	}
	if math.IsNaN(dispersion) || math.IsInf(dispersion, 0) || dispersion < 0 {
		return Mallows{}, fmt.Errorf("mallows dispersion %v: %w", dispersion, ErrInvalidDispersion)
	}
	seen := make(map[models.ID]struct{}, len(reference))
	for _, id := range reference {
		if _, dup := seen[id]; dup {
			return Mallows{}, fmt.Errorf("candidate %d repeated: %w", id, ErrInvalidReference)
		}
		seen[id] = struct{}{}
	}

	n := len(reference)
	counts := inversionCounts(n)
	weights := make([]float64, len(counts))
	for d, count := range counts {
		weights[d] = count * math.Exp(-dispersion*float64(d))
	}
	distances, err := sampling.NewWeighted(weights)
	if err != nil {
		return Mallows{}, fmt.Errorf("mallows distance weights for %d candidates: %w", n, err)
	}

	return Mallows{
		reference:  slices.Clone(reference),
		dispersion: dispersion,
		distances:  distances,
	}, nil
}

func (m Mallows) String() string {
	return fmt.Sprintf("Mallows(reference=%v, dispersion=%g)", m.reference, m.dispersion)
}

// Reference returns a copy of the reference ranking
func (m Mallows) Reference() []models.ID { return slices.Clone(m.reference) }

func (m Mallows) Draw(_ []models.Candidate, rng *rand.Rand) models.Ordinal {
	distance := m.distances.Sample(rng)
	permutation := permutationWithInversions(len(m.reference), distance, rng)

	ranking := make(models.Ordinal, len(permutation))
	for i, p := range permutation {
		ranking[i] = m.reference[p]
	}
	return ranking
}

// Validate requires the reference to rank every candidate exactly once
func (m Mallows) Validate(candidates []models.Candidate) error {
	if len(candidates) != len(m.reference) {
		return fmt.Errorf("mallows ranks %d of %d candidates: %w", len(m.reference), len(candidates), ErrInvalidReference)
	}
	idx := models.NewIndex(candidates)
	for _, id := range m.reference {
		if _, err := idx.Lookup(id); err != nil {
			return fmt.Errorf("mallows reference: %w", err)
		}
	}
	return nil
}

// inversionCounts returns I(n,d) for d = 0..n(n-1)/2, where I(n,d) is the
// number of permutations of n items with exactly d inversions:
//
//	I(0,d) = 0, I(m,0) = 1, I(m,d) = sum_{i=0}^{min(d,m-1)} I(m-1,d-i)
//
// Rows are built bottom-up with prefix sums, so every (m,d) pair is computed
// once. Counts are float64; they are only used as relative weights.
func inversionCounts(n int) []float64 {
	maxInv := n * (n - 1) / 2
	row := make([]float64, maxInv+1) // I(0,·)
	prefix := make([]float64, maxInv+1)
	for m := 1; m <= n; m++ {
		var running float64
		for d := range row {
			running += row[d]
			prefix[d] = running
		}
		next := make([]float64, maxInv+1)
		next[0] = 1
		for d := 1; d <= maxInv; d++ {
			sum := prefix[d]
			if d-m >= 0 {
				sum -= prefix[d-m]
			}
			next[d] = sum
		}
		row = next
	}
	return row
}

// permutationWithInversions builds a permutation of 0..n-1 with exactly k
// inversions.
func permutationWithInversions(n, k int, rng *rand.Rand) []int {
	return fromInversionVector(inversionVector(n, k, rng))
}

// inversionVector draws v with sum(v) == k, where v[i] is how many later
// items position i jumps over. Each entry is kept in the range that still
// leaves a solution for the remaining positions.
func inversionVector(n, k int, rng *rand.Rand) []int {
	v := make([]int, n)
	left := k
	for i := 0; i < n-1 && left > 0; i++ {
		slots := n - i - 1
		lo := max(0, left-slots*(slots-1)/2)
		hi := min(slots, left)
		v[i] = lo + rng.IntN(hi-lo+1)
		left -= v[i]
	}
	return v
}

// fromInversionVector takes, for each entry, the item at that index of the
// ordered pool of unused items.
func fromInversionVector(v []int) []int {
	pool := make([]int, len(v))
	for i := range pool {
		pool[i] = i
	}
	perm := make([]int, 0, len(v))
	for _, sigma := range v {
		perm = append(perm, pool[sigma])
		pool = slices.Delete(pool, sigma, sigma+1)
	}
	return perm
}

// KendallTau counts the candidate pairs that a and b order differently.
// Both rankings must contain the same candidates.
func KendallTau(a, b models.Ordinal) int {
	pos := make(map[models.ID]int, len(b))
	for i, id := range b {
		pos[id] = i
	}
	distance := 0
	for i := 0; i < len(a); i++ {
		for j := i + 1; j < len(a); j++ {
			if pos[a[i]] > pos[a[j]] {
				distance++
			}
		}
	}
	return distance
}
