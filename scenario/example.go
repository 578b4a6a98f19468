// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scenario

import "github.com/danielhkuo/kingmaker/models"

// Example is the built-in three candidate plurality race: three sincere
// Mallows blocs of 40, 45 and 15 voters, each centred on a different ranking.
func Example() *Scenario {
	sincere := []Tactic{{Kind: Identity, Weight: TacticWeight(0.8)}}
	return &Scenario{
		Name: "three-way plurality",
		Candidates: []Candidate{
			{ID: 0, Name: "A", Party: "DEM"},
			{ID: 1, Name: "B", Party: "REP"},
			{ID: 2, Name: "C"},
		},
		Method: Method{Kind: Plurality},
		Blocs: []Bloc{
			{
				Members:    40,
				Preference: Preference{Kind: Mallows, Reference: []models.ID{0, 1, 2}, Dispersion: 1.4},
				Tactics:    sincere,
			},
			{
				Members:    45,
				Preference: Preference{Kind: Mallows, Reference: []models.ID{1, 2, 0}, Dispersion: 1.0},
				Tactics:    sincere,
			},
			{
				Members:    15,
				Preference: Preference{Kind: Mallows, Reference: []models.ID{2, 0, 1}, Dispersion: 1.2},
				Tactics:    sincere,
			},
		},
	}
}
