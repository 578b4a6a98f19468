// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/danielhkuo/kingmaker/report"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// timeLayout is fixed width so that text order is chronological order
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Snapshot is the listing view of a stored report
type Snapshot struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name,omitempty"`
	Method      string    `json:"method"`
	Runs        int       `json:"runs"`
	Seed        uint64    `json:"seed"`
	Fingerprint string    `json:"fingerprint"`
	ComputedAt  time.Time `json:"computed_at"`
}

// SaveSnapshot stores a finished report. Reports are immutable once saved.
func SaveSnapshot(ctx context.Context, db *sql.DB, r *report.Report) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO report_snapshot (id, slug, name, method, runs, seed, fingerprint, computed_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, r.ID, r.Slug, r.Name, r.Method, r.Runs, strconv.FormatUint(r.Seed, 10), r.Fingerprint,
		r.ComputedAt.UTC().Format(timeLayout), string(payload))
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	return nil
}

// GetSnapshot loads a stored report by ID or share slug
func GetSnapshot(ctx context.Context, db *sql.DB, key string) (*report.Report, error) {
	var payload string
	err := db.QueryRowContext(ctx, `
		SELECT payload FROM report_snapshot WHERE id = $1 OR slug = $2
	`, key, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}

	var r report.Report
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot payload: %w", err)
	}
	return &r, nil
}

// ListSnapshots returns up to limit snapshots, newest first
func ListSnapshots(ctx context.Context, db *sql.DB, limit int) ([]Snapshot, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, slug, name, method, runs, seed, fingerprint, computed_at
		FROM report_snapshot
		ORDER BY computed_at DESC, id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]Snapshot, 0)
	for rows.Next() {
		var s Snapshot
		var seed, computedAt string
		if err := rows.Scan(&s.ID, &s.Slug, &s.Name, &s.Method, &s.Runs, &seed, &s.Fingerprint, &computedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		if s.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("snapshot %s seed: %w", s.ID, err)
		}
		if s.ComputedAt, err = time.Parse(timeLayout, computedAt); err != nil {
			return nil, fmt.Errorf("snapshot %s computed_at: %w", s.ID, err)
		}
		snapshots = append(snapshots, s)
	}

	return snapshots, rows.Err()
}
