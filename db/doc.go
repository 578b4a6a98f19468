// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores finished simulation reports.

# Connections

Open accepts "sqlite" (modernc.org/sqlite, the default) or "postgres"
(lib/pq):

	conn, err := db.Open("sqlite", "file:kingmaker.db")
	if err != nil {
		log.Fatal(err)
	}
	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

CreateSchema is safe to call multiple times - uses IF NOT EXISTS for all tables
and indexes.

# Snapshots

A snapshot is one immutable report:

	err := db.SaveSnapshot(ctx, conn, r)
	r, err := db.GetSnapshot(ctx, conn, idOrSlug)
	list, err := db.ListSnapshots(ctx, conn, 50)

The full report is kept as a JSON payload; the columns beside it exist for
listing and lookup. Only results are stored. Elections themselves are never
persisted and a simulation always starts from its configuration and seed.
*/
package db
