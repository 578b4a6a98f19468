// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tactics models strategic voting as a rewrite of the honest ballot.

# Tactics

  - Identity: vote honestly (any ballot shape)
  - Compromise: rank electable candidates first
  - Burial: rank threatening candidates last
  - Pushover: rank weak candidates right after the preferred ones

Ranking tactics ignore target ids that are not on the ballot and never drop
or duplicate a candidate.

# Strategies

A Strategy mixes tactics by weight; each ballot gets exactly one:

	strategy, err := tactics.NewStrategy[models.Ordinal]().
		Add(tactics.NewBurial(1), 0.8).
		Add(tactics.Identity[models.Ordinal]{}, 0.2).
		Build()

An empty strategy is honest. Weights must be non-negative and not all zero.
*/
package tactics
