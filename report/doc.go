// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report turns a batch of simulated outcomes into a shareable result.

	outcomes, err := sim.RunMany(ctx, 1000, 42)
	r, err := report.New(sim, outcomes, report.Meta{Name: "demo", Seed: 42, Key: key})
	report.WriteText(os.Stdout, r)

A Report carries the election configuration, the outcome distribution (most
frequent first) and an HMAC fingerprint over configuration, run count and seed.
Reports are plain JSON documents; the db package stores them as snapshots.
*/
package report
