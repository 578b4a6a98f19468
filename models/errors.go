// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

var (
	ErrInvalidPosition    = errors.New("candidate position is not finite")
	ErrDuplicateCandidate = errors.New("duplicate candidate id")
	ErrUnknownCandidate   = errors.New("unknown candidate id")
	ErrDuplicateRanking   = errors.New("candidate ranked more than once")
)
