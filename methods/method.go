// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package methods

import (
	"errors"

	"github.com/danielhkuo/kingmaker/models"
)

var (
	ErrNoSeats      = errors.New("at least one seat is required")
	ErrTooManySeats = errors.New("more seats than candidates")
)

// Method aggregates a profile of B ballots into an outcome
type Method[B models.Ballot, O models.Outcome] interface {
	Outcome(candidates []models.Candidate, profile models.Profile[B]) (O, error)
	String() string
}

// Validator is implemented by methods whose parameters depend on the candidate list
type Validator interface {
	Validate(candidates []models.Candidate) error
}

// prepare indexes the candidates and rejects ballots naming anyone else
func prepare[B models.Ballot](candidates []models.Candidate, profile models.Profile[B]) (models.Index, error) {
	idx := models.NewIndex(candidates)
	if err := profile.Check(idx); err != nil {
		return nil, err
	}
	return idx, nil
}

// leaders returns the counted candidates sharing the best score.
// Nobody counted means nobody won.
func leaders[N int | uint64 | float64](candidates []models.Candidate, scores []N, counted []bool) models.SingleWinner {
	var top []models.Candidate
	var best N
	for i, c := range candidates {
		if !counted[i] {
			continue
		}
		switch {
		case len(top) == 0 || scores[i] > best:
			best = scores[i]
			top = []models.Candidate{c}
		case scores[i] == best:
			top = append(top, c)
		}
	}
	return models.Tie(top...)
}

// rankings deep-copies ordinal ballots so eliminations stay local to one count
func rankings(profile models.Profile[models.Ordinal]) []models.Ordinal {
	out := make([]models.Ordinal, len(profile))
	for i, b := range profile {
		out[i] = models.Clone(b)
	}
	return out
}

// strike removes ids from every ballot and drops the ones left empty
func strike(ballots []models.Ordinal, ids ...models.ID) []models.Ordinal {
	kept := ballots[:0]
	for _, b := range ballots {
		b = b.Without(ids...)
		if len(b) > 0 {
			kept = append(kept, b)
		}
	}
	return kept
}
