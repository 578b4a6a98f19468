// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sampling

import (
	"errors"
	"math"
	"testing"
)

func TestNewRand_Deterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 100; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("Streams diverged at draw %d", i)
		}
	}

	if NewRand(1).Uint64() == NewRand(2).Uint64() {
		t.Error("Different seeds should give different streams")
	}
}

func TestNewWeighted_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		weights []float64
		want    error
	}{
		{"Empty", nil, ErrEmptyWeights},
		{"AllZero", []float64{0, 0, 0}, ErrEmptyWeights},
		{"Negative", []float64{1, -1}, ErrInvalidWeight},
		{"NaN", []float64{math.NaN()}, ErrInvalidWeight},
		{"Inf", []float64{math.Inf(1), 1}, ErrInvalidWeight},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWeighted(tc.weights)
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestWeighted_SkipsZeroWeights(t *testing.T) {
	w, err := NewWeighted([]float64{0, 3, 0, 1, 0})
	if err != nil {
		t.Fatal(err)
	}

	rng := NewRand(7)
	counts := make([]int, w.Len())
	for i := 0; i < 10000; i++ {
		counts[w.Sample(rng)]++
	}

	if counts[0] != 0 || counts[2] != 0 || counts[4] != 0 {
		t.Errorf("Zero-weight indexes were drawn: %v", counts)
	}
	// expect roughly 3:1
	ratio := float64(counts[1]) / float64(counts[3])
	if ratio < 2.6 || ratio > 3.4 {
		t.Errorf("Expected ratio near 3, got %.2f (%v)", ratio, counts)
	}
}

func TestWeighted_SingleChoice(t *testing.T) {
	w, err := NewWeighted([]float64{0.25})
	if err != nil {
		t.Fatal(err)
	}
	rng := NewRand(0)
	for i := 0; i < 100; i++ {
		if w.Sample(rng) != 0 {
			t.Fatal("Single choice must always be drawn")
		}
	}
}
