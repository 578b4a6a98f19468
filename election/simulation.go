// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"

	"github.com/danielhkuo/kingmaker/models"
)

// Simulation is an Election with its ballot and outcome types erased, for
// callers that pick the method at runtime
type Simulation interface {
	RunOnce(seed uint64) (models.Outcome, error)
	RunMany(ctx context.Context, n int, seed uint64) ([]models.Outcome, error)
	Configuration() Configuration
	Voters() int
}

// Simulation returns the type-erased view of e
func (e *Election[B, O]) Simulation() Simulation { return erased[B, O]{e} }

type erased[B models.Ballot, O models.Outcome] struct {
	e *Election[B, O]
}

func (s erased[B, O]) RunOnce(seed uint64) (models.Outcome, error) {
	o, err := s.e.RunOnce(seed)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s erased[B, O]) RunMany(ctx context.Context, n int, seed uint64) ([]models.Outcome, error) {
	typed, err := s.e.RunMany(ctx, n, seed)
	if err != nil {
		return nil, err
	}
	outcomes := make([]models.Outcome, len(typed))
	for i, o := range typed {
		outcomes[i] = o
	}
	return outcomes, nil
}

func (s erased[B, O]) Configuration() Configuration { return s.e.Configuration() }
func (s erased[B, O]) Voters() int                  { return s.e.Voters() }
