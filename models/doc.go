// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the data shared by every part of a simulation:
candidates, ballots, profiles, and outcomes.

# Candidates

Candidates are immutable and identified by a small integer ID:

	alice, err := models.NewCandidate(0, "Alice", "DEM", nil)

Positions must be finite; NaN or infinite values fail with ErrInvalidPosition.

# Ballots

Three ballot shapes are supported, selected per election by the method:

  - Nominal: a sorted set of approved candidates (approval voting)
  - Ordinal: a ranking, most preferred first (plurality, Borda, IRV, STV)
  - Cardinal: a score per candidate (STAR, BMJ)

The Ballot constraint lets preferences, tactics and methods be written
once per shape with generics. A Profile is the ordered list of ballots
submitted in one run.

# Outcomes

Single-winner methods return a SingleWinner (Win, Tie or None) and
multi-winner methods a MultiWinner (Elected or None). Both implement
Outcome; Key gives a stable identity so repeated outcomes across many
runs can be counted.
*/
package models
