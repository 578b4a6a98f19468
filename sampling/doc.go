// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package sampling holds the random primitives shared by preference models
// and strategies: a seeded source for reproducible runs and a weighted
// choice over indexes.
package sampling
