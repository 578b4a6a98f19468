// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"slices"
)

// ID identifies a candidate within one election
type ID uint16

// Candidate is an immutable record of someone standing for election.
// Identity and ordering are by ID.
type Candidate struct {
	id        ID
	name      string
	party     string
	positions []float64
}

// NewCandidate builds a candidate. An empty party means no party.
// Returns ErrInvalidPosition if any position is NaN or infinite.
func NewCandidate(id ID, name, party string, positions []float64) (Candidate, error) {
	for i, p := range positions {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return Candidate{}, fmt.Errorf("candidate %d position %d: %w", id, i, ErrInvalidPosition)
		}
	}
	return Candidate{
		id:        id,
		name:      name,
		party:     party,
		positions: slices.Clone(positions),
	}, nil
}

// MustCandidate is NewCandidate for literals known to be valid (fixtures, examples)
func MustCandidate(id ID, name, party string, positions []float64) Candidate {
	c, err := NewCandidate(id, name, party, positions)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Candidate) ID() ID       { return c.id }
func (c Candidate) Name() string { return c.name }

// Party returns the candidate's party and whether one was set
func (c Candidate) Party() (string, bool) { return c.party, c.party != "" }

// Positions returns a copy of the candidate's positions (nil if none)
func (c Candidate) Positions() []float64 { return slices.Clone(c.positions) }

func (c Candidate) String() string { return c.name }

// CompareCandidates orders candidates by ID
func CompareCandidates(a, b Candidate) int { return cmp.Compare(a.id, b.id) }

type candidateJSON struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Party     *string   `json:"party"`
	Positions []float64 `json:"positions,omitempty"`
}

func (c Candidate) MarshalJSON() ([]byte, error) {
	out := candidateJSON{ID: c.id, Name: c.name, Positions: c.positions}
	if c.party != "" {
		party := c.party
		out.Party = &party
	}
	return json.Marshal(out)
}

func (c *Candidate) UnmarshalJSON(data []byte) error {
	var in candidateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	party := ""
	if in.Party != nil {
		party = *in.Party
	}
	decoded, err := NewCandidate(in.ID, in.Name, party, in.Positions)
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}

// ValidateCandidates rejects duplicate IDs
func ValidateCandidates(candidates []Candidate) error {
	seen := make(map[ID]struct{}, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c.id]; dup {
			return fmt.Errorf("candidate %d: %w", c.id, ErrDuplicateCandidate)
		}
		seen[c.id] = struct{}{}
	}
	return nil
}

// Index maps candidate IDs to their position in the candidate list
type Index map[ID]int

// NewIndex builds an Index for the given candidates
func NewIndex(candidates []Candidate) Index {
	idx := make(Index, len(candidates))
	for i, c := range candidates {
		idx[c.id] = i
	}
	return idx
}

// Lookup returns the position of id, or ErrUnknownCandidate
func (idx Index) Lookup(id ID) (int, error) {
	i, ok := idx[id]
	if !ok {
		return 0, fmt.Errorf("candidate %d: %w", id, ErrUnknownCandidate)
	}
	return i, nil
}

// Find returns the candidate with the given ID
func Find(candidates []Candidate, id ID) (Candidate, error) {
	for _, c := range candidates {
		if c.id == id {
			return c, nil
		}
	}
	return Candidate{}, fmt.Errorf("candidate %d: %w", id, ErrUnknownCandidate)
}

// IDsOf lists candidate IDs in candidate order
func IDsOf(candidates []Candidate) []ID {
	ids := make([]ID, len(candidates))
	for i, c := range candidates {
		ids[i] = c.id
	}
	return ids
}
