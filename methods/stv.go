// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package methods

import (
	"fmt"
	"slices"

	"github.com/danielhkuo/kingmaker/models"
)

// STV is the single transferable vote with a Droop quota and whole-ballot
// transfers: an elected candidate is struck from every ballot, surplus and all.
//
// Each round the candidate with the most first choices at or above quota is
// elected. If nobody reaches quota the candidate with the fewest first choices
// is eliminated. Ties go to the lowest ID. Once the candidates still standing
// would exactly fill the remaining seats, they are all elected.
type STV struct {
	Seats int
	// ElectSimultaneously elects every candidate at or above quota in one
	// round instead of only the highest.
	ElectSimultaneously bool
}

// NewSTV returns an STV count for the given number of seats
func NewSTV(seats int) STV { return STV{Seats: seats} }

func (m STV) String() string { return fmt.Sprintf("STV(%d)", m.Seats) }

// Validate guards termination: a count always fills exactly Seats seats
func (m STV) Validate(candidates []models.Candidate) error {
	if m.Seats < 1 {
		return fmt.Errorf("stv seats %d: %w", m.Seats, ErrNoSeats)
	}
	if m.Seats > len(candidates) {
		return fmt.Errorf("stv seats %d for %d candidates: %w", m.Seats, len(candidates), ErrTooManySeats)
	}
	return nil
}

// Quota is the Droop quota for the given number of ballots
func (m STV) Quota(ballots int) int { return ballots/(m.Seats+1) + 1 }

func (m STV) Outcome(candidates []models.Candidate, profile models.Profile[models.Ordinal]) (models.MultiWinner, error) {
	if err := m.Validate(candidates); err != nil {
		return models.MultiWinner{}, err
	}
	if _, err := prepare(candidates, profile); err != nil {
		return models.MultiWinner{}, err
	}
	if len(profile) == 0 {
		return models.NoneElected(), nil
	}

	quota := m.Quota(len(profile))
	standing := slices.SortedFunc(slices.Values(candidates), models.CompareCandidates)
	ballots := strike(rankings(profile))
	var elected []models.Candidate

	for len(elected) < m.Seats {
		open := m.Seats - len(elected)
		if len(standing) <= open {
			elected = append(elected, standing...)
			break
		}

		tally := make(map[models.ID]int, len(standing))
		for _, ballot := range ballots {
			tally[ballot[0]]++
		}

		// standing is sorted by ID, so the stable sort keeps lowest ID first among equals
		byVotes := slices.Clone(standing)
		slices.SortStableFunc(byVotes, func(a, b models.Candidate) int {
			return tally[b.ID()] - tally[a.ID()]
		})

		var round []models.Candidate
		for _, c := range byVotes {
			if tally[c.ID()] < quota || len(round) == open {
				break
			}
			round = append(round, c)
			if !m.ElectSimultaneously {
				break
			}
		}

		if len(round) > 0 {
			elected = append(elected, round...)
		} else {
			round = []models.Candidate{lowest(standing, tally)}
		}

		ids := make([]models.ID, len(round))
		for i, c := range round {
			ids[i] = c.ID()
		}
		standing = slices.DeleteFunc(standing, func(c models.Candidate) bool {
			return slices.Contains(ids, c.ID())
		})
		ballots = strike(ballots, ids...)
	}

	return models.Elected(elected...), nil
}

// lowest returns the standing candidate with the fewest votes, lowest ID on ties
func lowest(standing []models.Candidate, tally map[models.ID]int) models.Candidate {
	out := standing[0]
	for _, c := range standing[1:] {
		if tally[c.ID()] < tally[out.ID()] {
			out = c
		}
	}
	return out
}
