// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package methods

import (
	"fmt"
	"sort"

	"github.com/danielhkuo/kingmaker/models"
)

// DefaultMaxScore is the top of the score scale BMJ assumes when none is set
const DefaultMaxScore = 5

// BMJ is Balanced Majority Judgment over score ballots.
//
// Scores are normalized to [0,1] against MaxScore and signed to [-1,1]. Each
// candidate is then ranked lexicographically: not vetoed, higher median,
// higher p10, higher p90, higher mean. A candidate is softly vetoed when at
// least a third of its scores are negative and its median is not positive.
type BMJ struct {
	MaxScore uint
}

// Ranking holds the BMJ aggregates for a single candidate
type Ranking struct {
	Candidate models.Candidate `json:"candidate"`
	Median    float64          `json:"median"`
	P10       float64          `json:"p10"`
	P90       float64          `json:"p90"`
	Mean      float64          `json:"mean"`
	NegShare  float64          `json:"neg_share"`
	Veto      bool             `json:"veto"`
	Rank      int              `json:"rank"`
}

func (m BMJ) String() string {
	if m.MaxScore == 0 || m.MaxScore == DefaultMaxScore {
		return "BMJ"
	}
	return fmt.Sprintf("BMJ(max %d)", m.MaxScore)
}

func (m BMJ) scale() float64 {
	if m.MaxScore == 0 {
		return DefaultMaxScore
	}
	return float64(m.MaxScore)
}

// Rank computes the aggregates for every candidate, best first
func (m BMJ) Rank(candidates []models.Candidate, profile models.Profile[models.Cardinal]) ([]Ranking, error) {
	idx, err := prepare(candidates, profile)
	if err != nil {
		return nil, err
	}

	// Group signed scores by candidate: s = 2*value01 - 1
	scores := make([][]float64, len(candidates))
	top := m.scale()
	for _, ballot := range profile {
		for id, score := range ballot {
			value01 := min(float64(score), top) / top
			scores[idx[id]] = append(scores[idx[id]], 2.0*value01-1.0)
		}
	}

	// Candidates nobody scored keep zeroed aggregates
	rankings := make([]Ranking, len(candidates))
	for i, c := range candidates {
		signed := scores[i]
		sort.Float64s(signed)

		r := Ranking{
			Candidate: c,
			Median:    percentile(signed, 0.5),
			P10:       percentile(signed, 0.1),
			P90:       percentile(signed, 0.9),
			Mean:      mean(signed),
			NegShare:  negativeShare(signed),
		}
		r.Veto = r.NegShare >= 0.33 && r.Median <= 0
		rankings[i] = r
	}

	sort.Slice(rankings, func(i, j int) bool {
		a, b := rankings[i], rankings[j]
		if c := compareStats(a, b); c != 0 {
			return c < 0
		}
		// Stable tie-breaking by candidate ID (ascending)
		return a.Candidate.ID() < b.Candidate.ID()
	})

	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings, nil
}

// Outcome is a Win for the top ranked candidate, or a Tie among every
// candidate whose aggregates equal the leader's
func (m BMJ) Outcome(candidates []models.Candidate, profile models.Profile[models.Cardinal]) (models.SingleWinner, error) {
	rankings, err := m.Rank(candidates, profile)
	if err != nil {
		return models.SingleWinner{}, err
	}
	if len(profile) == 0 || len(rankings) == 0 {
		return models.NoWinner(), nil
	}

	var tied []models.Candidate
	for _, r := range rankings {
		if compareStats(r, rankings[0]) != 0 {
			break
		}
		tied = append(tied, r.Candidate)
	}
	return models.Tie(tied...), nil
}

// compareStats orders a before b when a ranks higher
func compareStats(a, b Ranking) int {
	// 1. Non-vetoed candidates come first
	if a.Veto != b.Veto {
		if !a.Veto {
			return -1
		}
		return 1
	}

	// 2. Higher median, 3. higher p10 (least misery), 4. higher p90 (upside), 5. higher mean
	for _, pair := range [][2]float64{
		{a.Median, b.Median},
		{a.P10, b.P10},
		{a.P90, b.P90},
		{a.Mean, b.Mean},
	} {
		switch {
		case pair[0] > pair[1]:
			return -1
		case pair[0] < pair[1]:
			return 1
		}
	}
	return 0
}

// percentile calculates the p-th percentile of sorted data
// p should be in range [0, 1]
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0.0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	// Linear interpolation between closest ranks
	rank := p * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// mean calculates the arithmetic mean
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// negativeShare calculates the fraction of negative scores
func negativeShare(signed []float64) float64 {
	if len(signed) == 0 {
		return 0.0
	}

	negCount := 0
	for _, s := range signed {
		if s < 0 {
			negCount++
		}
	}
	return float64(negCount) / float64(len(signed))
}
