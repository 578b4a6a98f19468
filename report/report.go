// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/kingmaker/auth"
	"github.com/danielhkuo/kingmaker/election"
	"github.com/danielhkuo/kingmaker/models"
)

// Outcome is one row of the outcome distribution
type Outcome struct {
	Kind    string   `json:"kind"`
	Winners []string `json:"winners"`
	Label   string   `json:"label"`
	Times   int      `json:"times"`
	Share   float64  `json:"share"`
}

// Report is the result of one batch of runs
type Report struct {
	ID            string                 `json:"id"`
	Slug          string                 `json:"slug"`
	Name          string                 `json:"name,omitempty"`
	Method        string                 `json:"method"`
	Runs          int                    `json:"runs"`
	Seed          uint64                 `json:"seed"`
	Voters        int                    `json:"voters"`
	Configuration election.Configuration `json:"configuration"`
	Outcomes      []Outcome              `json:"outcomes"`
	Fingerprint   string                 `json:"fingerprint"`
	ComputedAt    time.Time              `json:"computed_at"`
}

// Meta is what a report needs to know beyond the outcomes themselves
type Meta struct {
	Name string
	Seed uint64
	// Key signs the fingerprint and derives the share slug
	Key string
}

// New tabulates outcomes into a report, most frequent outcome first
func New(sim election.Simulation, outcomes []models.Outcome, meta Meta) (*Report, error) {
	cfg := sim.Configuration()
	runs := len(outcomes)

	rows := make([]Outcome, 0)
	for _, c := range election.Tabulate(outcomes) {
		rows = append(rows, Outcome{
			Kind:    c.Outcome.Kind(),
			Winners: c.Outcome.Winners(),
			Label:   c.Outcome.String(),
			Times:   c.Times,
			Share:   float64(c.Times) / float64(runs),
		})
	}
	// Ties in frequency keep first-seen order
	slices.SortStableFunc(rows, func(a, b Outcome) int { return cmp.Compare(b.Times, a.Times) })

	payload, err := signedPayload(cfg, runs, meta.Seed)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	return &Report{
		ID:            id,
		Slug:          auth.ShareSlug(id, meta.Key),
		Name:          meta.Name,
		Method:        cfg.Method,
		Runs:          runs,
		Seed:          meta.Seed,
		Voters:        sim.Voters(),
		Configuration: cfg,
		Outcomes:      rows,
		Fingerprint:   auth.Fingerprint(payload, meta.Key),
		ComputedAt:    time.Now().UTC(),
	}, nil
}

// Verify checks the report's fingerprint against key
func (r *Report) Verify(key string) error {
	payload, err := signedPayload(r.Configuration, r.Runs, r.Seed)
	if err != nil {
		return err
	}
	return auth.VerifyFingerprint(payload, r.Fingerprint, key)
}

// Winner is the most frequent outcome, or nil for an empty report
func (r *Report) Winner() *Outcome {
	if len(r.Outcomes) == 0 {
		return nil
	}
	return &r.Outcomes[0]
}

func signedPayload(cfg election.Configuration, runs int, seed uint64) ([]byte, error) {
	payload, err := json.Marshal(struct {
		Configuration election.Configuration `json:"configuration"`
		Runs          int                    `json:"runs"`
		Seed          uint64                 `json:"seed"`
	}{cfg, runs, seed})
	if err != nil {
		return nil, fmt.Errorf("failed to encode report configuration: %w", err)
	}
	return payload, nil
}
