// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scenario describes elections declaratively, in YAML or JSON, and builds
them into runnable simulations.

A scenario names its candidates, its voting blocs and a method:

	name: three-way
	candidates:
	  - {id: 0, name: A, party: DEM}
	  - {id: 1, name: B, party: REP}
	  - {id: 2, name: C}
	method:
	  kind: plurality
	blocs:
	  - members: 40
	    preference: {kind: mallows, reference: [0, 1, 2], dispersion: 1.4}
	    tactics:
	      - {kind: burial, targets: [1], weight: 0.2}
	      - {kind: identity, weight: 0.8}

The method decides the ballot kind: approval takes nominal ballots, star and
bmj take cardinal ballots, and every other method takes ordinal ballots.
Mallows and Plackett-Luce preferences and every tactic except identity only
make sense for ordinal ballots; Build rejects any other combination.

A tactic without a weight counts as weight 1. A weight of 0 keeps the tactic
in the scenario but never applies it. Blocs hold at most MaxBlocMembers
voters each.
*/
package scenario
