// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"testing"
)

// clearEnv blanks every variable ParseFlags reads, restoring them after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SCENARIO", "RUNS", "SEED", "WORKERS", "OUTPUT", "PORT", "DATABASE_URL", "DATABASE_TYPE", "REPORT_KEY"} {
		t.Setenv(k, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Runs != DefaultRuns || cfg.Seed != 0 || cfg.Workers != 0 {
		t.Errorf("unexpected simulation defaults: %+v", cfg)
	}
	if cfg.Output != OutputText {
		t.Errorf("expected text output, got %q", cfg.Output)
	}
	if cfg.Port != DefaultPort || cfg.DatabaseType != "sqlite" {
		t.Errorf("unexpected server defaults: %+v", cfg)
	}
	if cfg.Serve {
		t.Error("serve should default to false")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("SCENARIO", "elections/irv.yaml")
	t.Setenv("RUNS", "250")
	t.Setenv("SEED", "18446744073709551615")
	t.Setenv("WORKERS", "3")
	t.Setenv("OUTPUT", "json")
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("REPORT_KEY", "test-key")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	want := Config{
		Scenario:     "elections/irv.yaml",
		Runs:         250,
		Seed:         18446744073709551615,
		Workers:      3,
		Output:       OutputJSON,
		DatabaseURL:  "postgres://test",
		DatabaseType: "postgres",
		Port:         9000,
		ReportKey:    "test-key",
	}
	if cfg != want {
		t.Errorf("expected %+v, got %+v", want, cfg)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("RUNS", "250")
	t.Setenv("SEED", "5")

	cfg, err := ParseFlags([]string{"-p", "8080", "-n", "10", "-s", "0", "-d", "file:test.db", "-report-key", "k", "-serve"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.Runs != 10 {
		t.Errorf("CLI should override env: expected 10 runs, got %d", cfg.Runs)
	}
	if cfg.Seed != 0 {
		t.Errorf("an explicit zero seed should override env, got %d", cfg.Seed)
	}
	if !cfg.Serve {
		t.Error("expected serve mode")
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad output", []string{"-o", "yaml"}, nil},
		{"zero runs", []string{"-n", "0"}, nil},
		{"bad RUNS env", nil, map[string]string{"RUNS": "many"}},
		{"bad SEED env", nil, map[string]string{"SEED": "-1"}},
		{"bad PORT env", nil, map[string]string{"PORT": "http"}},
		{"serve without database", []string{"-serve", "-report-key", "k"}, nil},
		{"serve without key", []string{"-serve", "-d", "file:test.db"}, nil},
		{"unknown flag", []string{"-x"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}
