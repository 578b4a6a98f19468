// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-c            Scenario file (YAML or JSON); the built-in example if empty
	-n            Number of simulated elections (default: 1000)
	-s            Random seed (default: 0)
	-w            Parallel workers (default: GOMAXPROCS)
	-o            Output format, text or json (default: text)
	-d            Database URL; reports are saved when set
	-t            Database type, sqlite or postgres (default: sqlite)
	-serve        Serve the HTTP API
	-p            Server port (default: 3318)
	-report-key   Key for report fingerprints and share slugs

# Environment Variables

Flags fall back to environment variables:

	SCENARIO      → -c
	RUNS          → -n
	SEED          → -s
	WORKERS       → -w
	OUTPUT        → -o
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	PORT          → -p
	REPORT_KEY    → -report-key

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - runs is not positive
  - the output format is neither text nor json
  - -serve is given without a database URL or a report key
*/
package cliparse
