// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/kingmaker/cliparse"
	"github.com/danielhkuo/kingmaker/db"
	"github.com/danielhkuo/kingmaker/report"
	"github.com/danielhkuo/kingmaker/scenario"
)

// TestDBURL is an in-memory SQLite database, private to each connection pool
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Runs:         cliparse.DefaultRuns,
		Output:       cliparse.OutputJSON,
		Port:         cliparse.DefaultPort,
		DatabaseURL:  TestDBURL,
		DatabaseType: db.SQLite,
		ReportKey:    "test-report-key",
	}
}

// CreateTestReport runs the built-in example and returns its report
func CreateTestReport(t *testing.T, cfg cliparse.Config, runs int, seed uint64) *report.Report {
	t.Helper()

	sim, err := scenario.Build(scenario.Example())
	if err != nil {
		t.Fatalf("Failed to build example: %v", err)
	}
	outcomes, err := sim.RunMany(context.Background(), runs, seed)
	if err != nil {
		t.Fatalf("Failed to run example: %v", err)
	}
	r, err := report.New(sim, outcomes, report.Meta{Name: "example", Seed: seed, Key: cfg.ReportKey})
	if err != nil {
		t.Fatalf("Failed to build report: %v", err)
	}

	return r
}

// SaveTestReport runs the built-in example and stores its report
func SaveTestReport(t *testing.T, conn *sql.DB, cfg cliparse.Config, runs int, seed uint64) *report.Report {
	t.Helper()

	r := CreateTestReport(t, cfg, runs, seed)
	if err := db.SaveSnapshot(context.Background(), conn, r); err != nil {
		t.Fatalf("Failed to save test report: %v", err)
	}

	return r
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
