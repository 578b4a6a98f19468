// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election composes candidates, voting blocs and a method into a
reproducible simulation.

An Election is immutable once built. All randomness comes from the seed passed
to RunOnce or RunMany, so the same election and seed always produce the same
ballots and the same outcome:

	e, err := election.New(candidates, blocs, methods.Plurality{})
	outcomes, err := e.RunMany(ctx, 1000, 42)
	counts := election.Tabulate(outcomes)

RunMany draws every sub-seed from one sequential stream before fanning the runs
out, so its result does not depend on the number of workers.
*/
package election
