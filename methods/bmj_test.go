// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package methods

import (
	"errors"
	"math"
	"testing"

	"github.com/danielhkuo/kingmaker/models"
)

const epsilon = 1e-9

func TestBMJ_Rank(t *testing.T) {
	// A is mostly positive, B mostly negative, C sits in the middle
	profile := models.Profile[models.Cardinal]{
		{a: 9, b: 1, c: 6},
		{a: 8, b: 2, c: 4},
		{a: 7, b: 8, c: 5},
		{a: 2, b: 1, c: 7},
		{a: 6, b: 3, c: 3},
	}

	rankings, err := BMJ{MaxScore: 10}.Rank(candidates(3), profile)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(rankings) != 3 {
		t.Fatalf("Expected 3 rankings, got %d", len(rankings))
	}

	order := []models.ID{rankings[0].Candidate.ID(), rankings[1].Candidate.ID(), rankings[2].Candidate.ID()}
	if order[0] != a || order[1] != c || order[2] != b {
		t.Errorf("Expected order A, C, B, got %v", order)
	}
	for i, r := range rankings {
		if r.Rank != i+1 {
			t.Errorf("Ranking %d has rank %d", i, r.Rank)
		}
	}

	top := rankings[0]
	if top.Veto {
		t.Error("Expected A not to be vetoed")
	}
	if math.Abs(top.Median-0.4) > epsilon {
		t.Errorf("Expected A median 0.4, got %f", top.Median)
	}
	if math.Abs(top.NegShare-0.2) > epsilon {
		t.Errorf("Expected A negative share 0.2, got %f", top.NegShare)
	}
	if !rankings[1].Veto || !rankings[2].Veto {
		t.Error("Expected B and C to be softly vetoed")
	}

	o, err := BMJ{MaxScore: 10}.Outcome(candidates(3), profile)
	assertOutcome(t, o, err, "Win(A)")
}

func TestBMJ_SoftVeto(t *testing.T) {
	// Half of B's voters hate it, so A wins despite B's higher ceiling
	profile := models.Profile[models.Cardinal]{
		{a: 3, b: 5},
		{a: 3, b: 5},
		{a: 3, b: 0},
		{a: 3, b: 0},
	}

	o, err := BMJ{}.Outcome(candidates(2), profile)
	assertOutcome(t, o, err, "Win(A)")
}

func TestBMJ_Outcome(t *testing.T) {
	tests := []struct {
		name    string
		profile models.Profile[models.Cardinal]
		want    string
	}{
		{"no ballots", nil, "None"},
		{"identical scores tie", models.Profile[models.Cardinal]{{a: 4, b: 4}, {a: 2, b: 2}}, "Tie(A, B)"},
		{"scores above the scale are clamped", models.Profile[models.Cardinal]{{a: 50, b: 5}, {a: 5, b: 5}}, "Tie(A, B)"},
		{"unscored candidate ranks below", models.Profile[models.Cardinal]{{a: 4}}, "Win(A)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := BMJ{}.Outcome(candidates(2), tt.profile)
			assertOutcome(t, o, err, tt.want)
		})
	}
}

func TestBMJ_UnknownCandidate(t *testing.T) {
	_, err := BMJ{}.Outcome(candidates(2), models.Profile[models.Cardinal]{{d: 3}})
	if !errors.Is(err, models.ErrUnknownCandidate) {
		t.Errorf("Expected ErrUnknownCandidate, got %v", err)
	}
}

func TestPercentileCalculation(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		p        float64
		expected float64
	}{
		{"empty", []float64{}, 0.5, 0.0},
		{"single value", []float64{5.0}, 0.5, 5.0},
		{"median of odd count", []float64{1.0, 2.0, 3.0}, 0.5, 2.0},
		{"median of even count", []float64{1.0, 2.0, 3.0, 4.0}, 0.5, 2.5},
		{"10th percentile", []float64{1.0, 2.0, 3.0, 4.0, 5.0}, 0.1, 1.4},
		{"90th percentile", []float64{1.0, 2.0, 3.0, 4.0, 5.0}, 0.9, 4.6},
		{"min (p=0)", []float64{1.0, 2.0, 3.0}, 0.0, 1.0},
		{"max (p=1)", []float64{1.0, 2.0, 3.0}, 1.0, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := percentile(tt.data, tt.p)
			if math.Abs(result-tt.expected) > epsilon {
				t.Errorf("percentile(%v, %f) = %f, want %f", tt.data, tt.p, result, tt.expected)
			}
		})
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected float64
	}{
		{"empty", []float64{}, 0.0},
		{"single value", []float64{5.0}, 5.0},
		{"positive values", []float64{1.0, 2.0, 3.0}, 2.0},
		{"negative values", []float64{-1.0, -2.0, -3.0}, -2.0},
		{"mixed values", []float64{-1.0, 0.0, 1.0}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := mean(tt.data); result != tt.expected {
				t.Errorf("mean(%v) = %f, want %f", tt.data, result, tt.expected)
			}
		})
	}
}

func TestNegativeShare(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected float64
	}{
		{"empty", []float64{}, 0.0},
		{"all positive", []float64{0.1, 0.5, 1.0}, 0.0},
		{"all negative", []float64{-0.1, -0.5, -1.0}, 1.0},
		{"half negative", []float64{-1.0, -0.5, 0.5, 1.0}, 0.5},
		{"one third negative", []float64{-1.0, 0.5, 1.0}, 1.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := negativeShare(tt.data); result != tt.expected {
				t.Errorf("negativeShare(%v) = %f, want %f", tt.data, result, tt.expected)
			}
		})
	}
}
