// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Kingmaker API.

# Handler Types

SimulationHandler runs scenarios and serves stored reports. It is created
with the database and config it depends on:

	simHandler := handlers.NewSimulationHandler(db, cfg)

# Running Simulations

	POST /simulations              → CreateSimulation (returns the full report)
	GET  /simulations              → ListSimulations (newest first, ?limit=n)
	GET  /simulations/{id}         → GetSimulation
	GET  /simulations/{id}/text    → GetSimulationText
	GET  /simulations/{id}/verify  → VerifySimulation

The request body names a scenario (the same document the CLI reads, as
JSON), a run count and a seed. Omitting the scenario runs the built-in
example. The same scenario, runs and seed always produce the same outcome
table and fingerprint, whatever the worker count.

{id} accepts either the report ID or its share slug.
*/
package handlers
