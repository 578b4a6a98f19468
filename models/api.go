// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "encoding/json"

// ErrorResponse is the JSON body of every failed API request
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SimulationRequest is the body of POST /simulations.
// An empty Scenario runs the built-in example; Runs of 0 uses the server default.
type SimulationRequest struct {
	Name     string          `json:"name,omitempty"`
	Scenario json.RawMessage `json:"scenario,omitempty"`
	Runs     int             `json:"runs,omitempty"`
	Seed     uint64          `json:"seed"`
	Workers  int             `json:"workers,omitempty"`
}
