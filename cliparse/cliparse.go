// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

const (
	DefaultRuns = 1000
	DefaultPort = 3318
)

type Config struct {
	Scenario     string
	Runs         int
	Seed         uint64
	Workers      int
	Output       string
	DatabaseURL  string
	DatabaseType string
	Serve        bool
	Port         int
	ReportKey    string
}

// ParseFlags reads flags, falling back to environment variables for any flag
// not given on the command line
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("kingmaker", flag.ContinueOnError)

	// Simulation
	fs.StringVar(&cfg.Scenario, "c", "", "Scenario file (YAML or JSON); built-in example if empty")
	fs.IntVar(&cfg.Runs, "n", DefaultRuns, "Number of simulated elections")
	fs.Uint64Var(&cfg.Seed, "s", 0, "Random seed")
	fs.IntVar(&cfg.Workers, "w", 0, "Parallel workers (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.Output, "o", OutputText, "Output format (text or json)")

	// Storage and server (can be CLI args or env)
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.BoolVar(&cfg.Serve, "serve", false, "Serve the HTTP API instead of running once")
	fs.IntVar(&cfg.Port, "p", 0, "Server port")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.ReportKey, "report-key", "", "Report fingerprint key (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Fall back to environment variables
	if !set["c"] {
		cfg.Scenario = os.Getenv("SCENARIO")
	}
	if !set["n"] {
		if v := os.Getenv("RUNS"); v != "" {
			runs, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, errors.New("invalid RUNS env variable")
			}
			cfg.Runs = runs
		}
	}
	if !set["s"] {
		if v := os.Getenv("SEED"); v != "" {
			seed, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid SEED env variable")
			}
			cfg.Seed = seed
		}
	}
	if !set["w"] {
		if v := os.Getenv("WORKERS"); v != "" {
			workers, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, errors.New("invalid WORKERS env variable")
			}
			cfg.Workers = workers
		}
	}
	if !set["o"] {
		if v := os.Getenv("OUTPUT"); v != "" {
			cfg.Output = v
		}
	}
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.ReportKey == "" {
		cfg.ReportKey = os.Getenv("REPORT_KEY")
	}

	// Validation
	if cfg.Runs < 1 {
		return Config{}, fmt.Errorf("runs must be positive, got %d", cfg.Runs)
	}
	if cfg.Output != OutputText && cfg.Output != OutputJSON {
		return Config{}, fmt.Errorf("unknown output format %q (use text or json)", cfg.Output)
	}
	if cfg.Serve && cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required to serve (use -d or DATABASE_URL env)")
	}
	if cfg.Serve && cfg.ReportKey == "" {
		return Config{}, errors.New("REPORT_KEY required to serve")
	}

	return cfg, nil
}
