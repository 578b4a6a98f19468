// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package preferences provides the models that turn a voting bloc's latent
preference into concrete ballots.

# Models

  - Impartial: uniformly random ballots of any shape
  - Mallows: rankings clustered around a reference ranking (Kendall-tau)
  - PlackettLuce: rankings built by repeated weighted draws
  - Manual: resampling of a fixed set of real ballots

Every model implements Preference for the ballot shapes it supports:

	mallows, err := preferences.NewMallows([]models.ID{0, 2, 1}, 1.4)
	ballot := mallows.Draw(candidates, rng)

Models hold parameters only. Draw consumes randomness from the supplied
source and nothing else, so a seeded source reproduces the same ballots.

# Validation

Constructors reject bad parameters (empty reference, negative dispersion,
non-positive weights, empty manual profile). Models that refer to specific
candidates also implement Validator, which the election calls before the
first run.
*/
package preferences
