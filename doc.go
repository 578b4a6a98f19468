// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for Kingmaker, a Monte Carlo election
simulator.

A scenario names candidates, a voting method and voting blocs. Each bloc
draws ballots from a preference model and may vote tactically. Kingmaker runs
the election many times from one seed and reports how often each outcome
occurred.

# Running a Scenario

With no scenario file the built-in three candidate example is used:

	go run . -n 10000 -s 42

Or from a file, as JSON:

	go run . -c scenario.yaml -n 5000 -o json

# Serving the API

	DATABASE_URL=kingmaker.db REPORT_KEY=... go run . -serve

# Configuration

Every flag falls back to an environment variable, and a .env file in the
working directory is loaded first:

  - SCENARIO (-c): Scenario file (YAML or JSON)
  - RUNS (-n): Number of simulated elections (default: 1000)
  - SEED (-s): Random seed (default: 0)
  - WORKERS (-w): Parallel workers (default: GOMAXPROCS)
  - OUTPUT (-o): text or json
  - DATABASE_URL (-d): Where to store reports; required to serve
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - PORT (-p): Server port (default: 3318)
  - REPORT_KEY (--report-key): Secret for report fingerprints and share slugs; required to serve

# Architecture

  - models: Candidates, ballots and outcomes
  - sampling: Seeded random sources and weighted choice
  - preferences: Preference models that generate sincere ballots
  - tactics: Tactical voting transforms and mixed strategies
  - methods: Voting methods (plurality through STV and BMJ)
  - election: Voting blocs, single runs and parallel batches
  - scenario: Declarative YAML/JSON scenarios
  - report: Outcome tables, fingerprints and rendering
  - auth: Report fingerprints and share slugs
  - db: Report persistence (SQLite or PostgreSQL)
  - handlers, router, middleware: HTTP API
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
