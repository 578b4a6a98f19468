// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Nominal is an approval ballot: the set of approved candidates.
// Kept sorted and free of duplicates; build it with NewNominal.
type Nominal []ID

// Ordinal is a ranked ballot, most preferred first
type Ordinal []ID

// Cardinal is a score ballot mapping candidates to non-negative scores
type Cardinal map[ID]uint

// Ballot is the set of ballot shapes an election can be run with
type Ballot interface {
	Nominal | Ordinal | Cardinal
}

// Ballot kinds, as named in configuration and reports
const (
	KindNominal  = "nominal"
	KindOrdinal  = "ordinal"
	KindCardinal = "cardinal"
)

// BallotKind names the ballot shape B
func BallotKind[B Ballot]() string {
	var zero B
	switch any(zero).(type) {
	case Nominal:
		return KindNominal
	case Ordinal:
		return KindOrdinal
	}
	return KindCardinal
}

// NewNominal builds an approval set from ids, sorting and dropping duplicates
func NewNominal(ids ...ID) Nominal {
	set := slices.Clone(ids)
	slices.Sort(set)
	return Nominal(slices.Compact(set))
}

// Contains reports whether id is approved
func (n Nominal) Contains(id ID) bool {
	_, found := slices.BinarySearch(n, id)
	return found
}

// Without returns a copy of the ranking with the given ids removed
func (o Ordinal) Without(ids ...ID) Ordinal {
	out := make(Ordinal, 0, len(o))
	for _, id := range o {
		if !slices.Contains(ids, id) {
			out = append(out, id)
		}
	}
	return out
}

// IDs lists every candidate referenced by a ballot. Cardinal ids are sorted.
func IDs[B Ballot](b B) []ID {
	switch v := any(b).(type) {
	case Nominal:
		return slices.Clone(v)
	case Ordinal:
		return slices.Clone(v)
	case Cardinal:
		return slices.Sorted(maps.Keys(v))
	}
	return nil
}

// Clone deep-copies a ballot
func Clone[B Ballot](b B) B {
	var out any
	switch v := any(b).(type) {
	case Nominal:
		out = slices.Clone(v)
	case Ordinal:
		out = slices.Clone(v)
	case Cardinal:
		out = maps.Clone(v)
	}
	return out.(B)
}

// CheckBallot verifies that every id on the ballot belongs to the election
// and that rankings do not repeat a candidate.
func CheckBallot[B Ballot](b B, idx Index) error {
	ids := IDs(b)
	for _, id := range ids {
		if _, err := idx.Lookup(id); err != nil {
			return err
		}
	}
	if o, ok := any(b).(Ordinal); ok {
		seen := make(map[ID]struct{}, len(o))
		for _, id := range o {
			if _, dup := seen[id]; dup {
				return fmt.Errorf("candidate %d: %w", id, ErrDuplicateRanking)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}

// BallotKey renders a ballot as a canonical string, usable as a map key
func BallotKey[B Ballot](b B) string {
	var sb strings.Builder
	switch v := any(b).(type) {
	case Nominal:
		sb.WriteString("N")
		for _, id := range v {
			sb.WriteString(":" + strconv.Itoa(int(id)))
		}
	case Ordinal:
		sb.WriteString("O")
		for _, id := range v {
			sb.WriteString(":" + strconv.Itoa(int(id)))
		}
	case Cardinal:
		sb.WriteString("C")
		for _, id := range slices.Sorted(maps.Keys(v)) {
			fmt.Fprintf(&sb, ":%d=%d", id, v[id])
		}
	}
	return sb.String()
}

// Profile is the ordered collection of ballots cast in one election run
type Profile[B Ballot] []B

// BallotCount is one distinct ballot and how many times it was cast
type BallotCount[B Ballot] struct {
	Ballot B
	Count  int
}

// Tally groups identical ballots, in order of first appearance
func (p Profile[B]) Tally() []BallotCount[B] {
	var counts []BallotCount[B]
	position := make(map[string]int)
	for _, b := range p {
		key := BallotKey(b)
		if i, ok := position[key]; ok {
			counts[i].Count++
			continue
		}
		position[key] = len(counts)
		counts = append(counts, BallotCount[B]{Ballot: b, Count: 1})
	}
	return counts
}

// Check runs CheckBallot over every ballot in the profile
func (p Profile[B]) Check(idx Index) error {
	for i, b := range p {
		if err := CheckBallot(b, idx); err != nil {
			return fmt.Errorf("ballot %d: %w", i, err)
		}
	}
	return nil
}
