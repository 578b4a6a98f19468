// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// Outcome is the result of tabulating one election
type Outcome interface {
	// Kind is one of the Kind constants
	Kind() string
	// Winners returns the names of the winning (or tied) candidates
	Winners() []string
	// Key is stable across runs and equal exactly when two outcomes are equal
	Key() string
	// IsNone reports whether nobody won
	IsNone() bool
	String() string
}

// Outcome kinds
const (
	KindWin     = "win"
	KindTie     = "tie"
	KindElected = "elected"
	KindNone    = "none"
)

// SingleWinner is the outcome of a single-winner method: a win, a tie, or none
type SingleWinner struct {
	kind       string
	candidates []Candidate
}

// Win builds a single-winner outcome
func Win(c Candidate) SingleWinner {
	return SingleWinner{kind: KindWin, candidates: []Candidate{c}}
}

// Tie builds a tie between the given candidates. A tie of one collapses to a Win,
// and a tie of none to NoWinner.
func Tie(cs ...Candidate) SingleWinner {
	set := normalize(cs)
	switch len(set) {
	case 0:
		return NoWinner()
	case 1:
		return Win(set[0])
	}
	return SingleWinner{kind: KindTie, candidates: set}
}

// NoWinner is the single-winner outcome where nobody won
func NoWinner() SingleWinner {
	return SingleWinner{kind: KindNone}
}

// WinByID looks the winner up by ID
func WinByID(candidates []Candidate, id ID) (SingleWinner, error) {
	c, err := Find(candidates, id)
	if err != nil {
		return SingleWinner{}, err
	}
	return Win(c), nil
}

// TieByIDs looks every tied candidate up by ID
func TieByIDs(candidates []Candidate, ids []ID) (SingleWinner, error) {
	cs, err := findAll(candidates, ids)
	if err != nil {
		return SingleWinner{}, err
	}
	return Tie(cs...), nil
}

// Kind is one of KindWin, KindTie or KindNone
func (o SingleWinner) Kind() string {
	if o.kind == "" {
		return KindNone
	}
	return o.kind
}

// Candidates returns the winning or tied candidates, sorted by ID
func (o SingleWinner) Candidates() []Candidate { return slices.Clone(o.candidates) }

func (o SingleWinner) Winners() []string { return names(o.candidates) }
func (o SingleWinner) IsNone() bool      { return len(o.candidates) == 0 }
func (o SingleWinner) Key() string       { return key(o.Kind(), o.candidates) }

func (o SingleWinner) String() string {
	switch o.Kind() {
	case KindWin:
		return "Win(" + o.candidates[0].Name() + ")"
	case KindTie:
		return "Tie(" + strings.Join(o.Winners(), ", ") + ")"
	}
	return "None"
}

func (o SingleWinner) MarshalJSON() ([]byte, error) {
	return marshalOutcome(o.Kind(), o.Winners())
}

// MultiWinner is the outcome of a multi-winner method: an elected set, or none
type MultiWinner struct {
	candidates []Candidate
}

// Elected builds a multi-winner outcome
func Elected(cs ...Candidate) MultiWinner {
	return MultiWinner{candidates: normalize(cs)}
}

// NoneElected is the multi-winner outcome where no seat was filled
func NoneElected() MultiWinner { return MultiWinner{} }

// ElectedByIDs looks every elected candidate up by ID
func ElectedByIDs(candidates []Candidate, ids []ID) (MultiWinner, error) {
	cs, err := findAll(candidates, ids)
	if err != nil {
		return MultiWinner{}, err
	}
	return Elected(cs...), nil
}

// Kind is KindElected or KindNone
func (o MultiWinner) Kind() string {
	if len(o.candidates) == 0 {
		return KindNone
	}
	return KindElected
}

// Candidates returns the elected candidates, sorted by ID
func (o MultiWinner) Candidates() []Candidate { return slices.Clone(o.candidates) }

func (o MultiWinner) Winners() []string { return names(o.candidates) }
func (o MultiWinner) IsNone() bool      { return len(o.candidates) == 0 }
func (o MultiWinner) Key() string       { return key(o.Kind(), o.candidates) }

func (o MultiWinner) String() string {
	if o.IsNone() {
		return "MultiWinner(None)"
	}
	return "MultiWinner(" + strings.Join(o.Winners(), ", ") + ")"
}

func (o MultiWinner) MarshalJSON() ([]byte, error) {
	return marshalOutcome(o.Kind(), o.Winners())
}

func normalize(cs []Candidate) []Candidate {
	set := slices.Clone(cs)
	slices.SortFunc(set, CompareCandidates)
	return slices.CompactFunc(set, func(a, b Candidate) bool { return a.id == b.id })
}

func findAll(candidates []Candidate, ids []ID) ([]Candidate, error) {
	cs := make([]Candidate, 0, len(ids))
	for _, id := range ids {
		c, err := Find(candidates, id)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

func names(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name()
	}
	return out
}

func key(kind string, cs []Candidate) string {
	var sb strings.Builder
	sb.WriteString(kind)
	for _, c := range cs {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(int(c.id)))
	}
	return sb.String()
}

func marshalOutcome(kind string, winners []string) ([]byte, error) {
	return json.Marshal(struct {
		Kind    string   `json:"kind"`
		Winners []string `json:"winners"`
	}{kind, winners})
}
