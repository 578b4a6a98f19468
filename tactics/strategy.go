// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tactics

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/danielhkuo/kingmaker/models"
	"github.com/danielhkuo/kingmaker/sampling"
)

// WeightedTactic is one component of a strategy
type WeightedTactic[B models.Ballot] struct {
	Tactic Tactic[B]
	Weight float64
}

// Strategy is a weighted mixture of tactics. Each ballot gets one tactic,
// drawn in proportion to weight. Build it with NewStrategy.
type Strategy[B models.Ballot] struct {
	tactics []WeightedTactic[B]
	choice  *sampling.Weighted
}

// StrategyBuilder collects tactics for a strategy
type StrategyBuilder[B models.Ballot] struct {
	tactics []WeightedTactic[B]
}

func NewStrategy[B models.Ballot]() *StrategyBuilder[B] {
	return &StrategyBuilder[B]{}
}

// Add appends a tactic with the given (non-negative) weight
func (sb *StrategyBuilder[B]) Add(t Tactic[B], weight float64) *StrategyBuilder[B] {
	sb.tactics = append(sb.tactics, WeightedTactic[B]{Tactic: t, Weight: weight})
	return sb
}

// Build validates the weights. An empty builder yields the honest strategy.
func (sb *StrategyBuilder[B]) Build() (Strategy[B], error) {
	tactics := sb.tactics
	if len(tactics) == 0 {
		tactics = []WeightedTactic[B]{{Tactic: Identity[B]{}, Weight: 1}}
	}
	weights := make([]float64, len(tactics))
	for i, t := range tactics {
		weights[i] = t.Weight
	}
	choice, err := sampling.NewWeighted(weights)
	if err != nil {
		return Strategy[B]{}, fmt.Errorf("strategy: %w", err)
	}
	return Strategy[B]{tactics: append([]WeightedTactic[B](nil), tactics...), choice: choice}, nil
}

// Honest is the strategy that always applies Identity
func Honest[B models.Ballot]() Strategy[B] {
	s, _ := NewStrategy[B]().Build()
	return s
}

// Apply rewrites the ballot with one tactic drawn by weight. A strategy with a
// single tactic applies it without consuming randomness.
func (s Strategy[B]) Apply(ballot B, rng *rand.Rand) B {
	if len(s.tactics) == 0 {
		return ballot
	}
	if len(s.tactics) == 1 {
		return s.tactics[0].Tactic.Apply(ballot)
	}
	return s.tactics[s.choice.Sample(rng)].Tactic.Apply(ballot)
}

// Tactics lists the strategy's components
func (s Strategy[B]) Tactics() []WeightedTactic[B] {
	return append([]WeightedTactic[B](nil), s.tactics...)
}

func (s Strategy[B]) String() string {
	if len(s.tactics) == 0 {
		return "Strategy(Identity: 1)"
	}
	parts := make([]string, len(s.tactics))
	for i, t := range s.tactics {
		parts[i] = fmt.Sprintf("%s: %g", t.Tactic, t.Weight)
	}
	return "Strategy(" + strings.Join(parts, ", ") + ")"
}
