// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// Open connects to a database of the given type and verifies the connection
func Open(databaseType, url string) (*sql.DB, error) {
	switch databaseType {
	case SQLite, Postgres:
	default:
		return nil, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", databaseType)
	}

	conn, err := sql.Open(databaseType, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if databaseType == SQLite {
		// SQLite allows one writer; a single connection also keeps :memory: databases alive
		conn.SetMaxOpenConns(1)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// One statement per entry; not every driver accepts several per Exec.
// computed_at is fixed-width UTC text so both drivers read it back the same way.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS report_snapshot (
    id TEXT PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL DEFAULT '',
    method TEXT NOT NULL,
    runs INTEGER NOT NULL CHECK (runs >= 0),
    seed TEXT NOT NULL,
    fingerprint TEXT NOT NULL,
    computed_at TEXT NOT NULL,
    payload TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_report_snapshot_fingerprint ON report_snapshot(fingerprint)`,
	`CREATE INDEX IF NOT EXISTS idx_report_snapshot_computed_at ON report_snapshot(computed_at)`,
}
