// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scenario

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/danielhkuo/kingmaker/election"
	"github.com/danielhkuo/kingmaker/methods"
	"github.com/danielhkuo/kingmaker/models"
	"github.com/danielhkuo/kingmaker/preferences"
	"github.com/danielhkuo/kingmaker/sampling"
)

func TestLoad_YAML(t *testing.T) {
	s, err := Load("testdata/strategic_irv.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Name != "strategic irv" || len(s.Candidates) != 3 || len(s.Blocs) != 3 {
		t.Fatalf("Unexpected scenario: %+v", s)
	}
	if s.Voters() != 100 {
		t.Errorf("Expected 100 voters, got %d", s.Voters())
	}
	if got := s.Blocs[1].Preference.Weights[0]; got.ID != 1 || got.Weight != 5 {
		t.Errorf("Unexpected first weight: %+v", got)
	}

	sim, err := Build(s)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	cfg := sim.Configuration()
	if cfg.Method != "IRV" || cfg.Ballot != models.KindOrdinal {
		t.Errorf("Unexpected configuration: %+v", cfg)
	}

	outcomes, err := sim.RunMany(context.Background(), 50, 1)
	if err != nil {
		t.Fatalf("RunMany failed: %v", err)
	}
	if len(outcomes) != 50 {
		t.Errorf("Expected 50 outcomes, got %d", len(outcomes))
	}
}

func TestLoad_JSON(t *testing.T) {
	s, err := Load("testdata/scores.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	sim, err := Build(s)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if sim.Configuration().Ballot != models.KindCardinal {
		t.Errorf("Expected cardinal ballots, got %s", sim.Configuration().Ballot)
	}

	// Every manual ballot scores A above B
	o, err := sim.RunOnce(3)
	if err != nil {
		t.Fatal(err)
	}
	if o.String() != "Win(A)" {
		t.Errorf("Expected Win(A), got %s", o)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("testdata/missing.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", "  \n"},
		{"malformed", "candidates: [\n"},
		{"no candidates", "method: {kind: plurality}\nblocs: [{members: 1, preference: {kind: impartial}}]\n"},
		{"no blocs", "candidates: [{id: 0, name: A}]\nmethod: {kind: plurality}\n"},
		{"unknown method", "candidates: [{id: 0, name: A}]\nmethod: {kind: condorcet}\nblocs: [{members: 1, preference: {kind: impartial}}]\n"},
		{"stv without seats", "candidates: [{id: 0, name: A}]\nmethod: {kind: stv}\nblocs: [{members: 1, preference: {kind: impartial}}]\n"},
		{"mallows without reference", "candidates: [{id: 0, name: A}]\nmethod: {kind: irv}\nblocs: [{members: 1, preference: {kind: mallows}}]\n"},
		{"negative members", "candidates: [{id: 0, name: A}]\nmethod: {kind: irv}\nblocs: [{members: -1, preference: {kind: impartial}}]\n"},
		{"unnamed candidate", "candidates: [{id: 0}]\nmethod: {kind: irv}\nblocs: [{members: 1, preference: {kind: impartial}}]\n"},
		{"bad borda base", "candidates: [{id: 0, name: A}]\nmethod: {kind: borda, base: 2}\nblocs: [{members: 1, preference: {kind: impartial}}]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(`{"candidates":[{"id":0,"name":"A"},{"id":1,"name":"B"}],"method":{"kind":"approval"},"blocs":[{"members":5,"preference":{"kind":"impartial"}}]}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	kind, err := s.BallotKind()
	if err != nil || kind != models.KindNominal {
		t.Errorf("Expected nominal ballots, got %q, %v", kind, err)
	}
}

func TestBuild_EveryMethod(t *testing.T) {
	tests := []struct {
		method Method
		want   string
	}{
		{Method{Kind: Plurality}, "Plurality"},
		{Method{Kind: Approval}, "Approval"},
		{Method{Kind: Borda, Base: 1}, "Borda(base 1)"},
		{Method{Kind: RandomDictator}, "RandomDictator"},
		{Method{Kind: Star}, "STAR"},
		{Method{Kind: IRV}, "IRV"},
		{Method{Kind: STV, Seats: 2}, "STV(2)"},
		{Method{Kind: BMJ}, "BMJ"},
	}

	for _, tt := range tests {
		t.Run(tt.method.Kind, func(t *testing.T) {
			s := Example()
			s.Method = tt.method
			for i := range s.Blocs {
				s.Blocs[i].Preference = Preference{Kind: Impartial}
			}

			sim, err := Build(s, election.WithWorkers(2))
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if got := sim.Configuration().Method; got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
			if _, err := sim.RunOnce(1); err != nil {
				t.Errorf("RunOnce failed: %v", err)
			}
		})
	}
}

func TestBuild_KindMismatch(t *testing.T) {
	mallowsStar := Example()
	mallowsStar.Method = Method{Kind: Star}
	if _, err := Build(mallowsStar); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("Mallows with STAR: expected ErrKindMismatch, got %v", err)
	}

	buryApproval := Example()
	buryApproval.Method = Method{Kind: Approval}
	buryApproval.Blocs = []Bloc{{
		Members:    3,
		Preference: Preference{Kind: Impartial},
		Tactics:    []Tactic{{Kind: Burial, Targets: []models.ID{0}}},
	}}
	if _, err := Build(buryApproval); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("Burial with approval: expected ErrKindMismatch, got %v", err)
	}

	scoresForIRV := Example()
	scoresForIRV.Method = Method{Kind: IRV}
	scoresForIRV.Blocs = []Bloc{{
		Members:    3,
		Preference: Preference{Kind: Manual, Scores: []map[models.ID]uint{{0: 1}}},
	}}
	if _, err := Build(scoresForIRV); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("Scores with IRV: expected ErrKindMismatch, got %v", err)
	}
}

func TestBuild_ConfigurationErrors(t *testing.T) {
	tooManySeats := Example()
	tooManySeats.Method = Method{Kind: STV, Seats: 4}
	if _, err := Build(tooManySeats); !errors.Is(err, methods.ErrTooManySeats) {
		t.Errorf("Expected ErrTooManySeats, got %v", err)
	}

	emptyManual := Example()
	emptyManual.Blocs[0].Preference = Preference{Kind: Manual}
	if _, err := Build(emptyManual); !errors.Is(err, preferences.ErrEmptyProfile) {
		t.Errorf("Expected ErrEmptyProfile, got %v", err)
	}

	duplicate := Example()
	duplicate.Candidates[2].ID = 0
	if _, err := Build(duplicate); !errors.Is(err, models.ErrDuplicateCandidate) {
		t.Errorf("Expected ErrDuplicateCandidate, got %v", err)
	}

	unknownBallot := Example()
	unknownBallot.Blocs[0].Preference = Preference{Kind: Manual, Ballots: [][]models.ID{{0, 7}}}
	if _, err := Build(unknownBallot); !errors.Is(err, models.ErrUnknownCandidate) {
		t.Errorf("Expected ErrUnknownCandidate, got %v", err)
	}
}

func TestBuild_VoterCaps(t *testing.T) {
	oversized := Example()
	oversized.Blocs[0].Members = MaxBlocMembers + 1
	if err := oversized.Validate(); err == nil {
		t.Error("Expected a bloc over MaxBlocMembers to fail validation")
	}

	_, err := Parse([]byte(`{"name":"huge","candidates":[{"id":0,"name":"A"}],"method":{"kind":"plurality"},` +
		`"blocs":[{"members":9223372036854775807,"preference":{"kind":"impartial"}},{"members":1,"preference":{"kind":"impartial"}}]}`))
	if err == nil {
		t.Error("Expected blocs summing past int to be rejected")
	}

	atCap := Example()
	atCap.Blocs = atCap.Blocs[:1]
	atCap.Blocs[0].Members = MaxBlocMembers
	if err := atCap.Validate(); err != nil {
		t.Errorf("Expected a bloc at the cap to validate, got %v", err)
	}
}

// twoWay has one voter preferring A over B whose tactics may compromise on B
func twoWay(tactics ...Tactic) *Scenario {
	return &Scenario{
		Name:       "two way",
		Candidates: []Candidate{{ID: 0, Name: "A"}, {ID: 1, Name: "B"}},
		Method:     Method{Kind: Plurality},
		Blocs: []Bloc{{
			Members:    1,
			Preference: Preference{Kind: Manual, Ballots: [][]models.ID{{0, 1}}},
			Tactics:    tactics,
		}},
	}
}

func TestBuild_TacticWeights(t *testing.T) {
	winners := func(t *testing.T, s *Scenario) map[string]int {
		t.Helper()
		sim, err := Build(s)
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		seen := make(map[string]int)
		for seed := uint64(0); seed < 400; seed++ {
			o, err := sim.RunOnce(seed)
			if err != nil {
				t.Fatalf("RunOnce(%d) failed: %v", seed, err)
			}
			seen[strings.Join(o.Winners(), ",")]++
		}
		return seen
	}

	t.Run("zero weight is never applied", func(t *testing.T) {
		seen := winners(t, twoWay(
			Tactic{Kind: Identity, Weight: TacticWeight(1)},
			Tactic{Kind: Compromise, Targets: []models.ID{1}, Weight: TacticWeight(0)},
		))
		if seen["A"] != 400 {
			t.Errorf("Expected A to win every run, got %v", seen)
		}
	})

	t.Run("omitted weights default to one", func(t *testing.T) {
		seen := winners(t, twoWay(
			Tactic{Kind: Identity},
			Tactic{Kind: Compromise, Targets: []models.ID{1}},
		))
		if seen["A"] == 0 || seen["B"] == 0 {
			t.Errorf("Expected both tactics to be applied, got %v", seen)
		}
	})

	t.Run("all weights zero", func(t *testing.T) {
		_, err := Build(twoWay(Tactic{Kind: Identity, Weight: TacticWeight(0)}))
		if !errors.Is(err, sampling.ErrEmptyWeights) {
			t.Errorf("Expected ErrEmptyWeights, got %v", err)
		}
	})
}

func TestParse_TacticWeight(t *testing.T) {
	s, err := Parse([]byte(`
name: weights
candidates: [{id: 0, name: A}, {id: 1, name: B}]
method: {kind: plurality}
blocs:
  - members: 3
    preference: {kind: impartial}
    tactics:
      - {kind: identity}
      - {kind: compromise, targets: [1], weight: 0}
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ts := s.Blocs[0].Tactics
	if ts[0].Weight != nil {
		t.Errorf("Expected omitted weight to stay nil, got %v", *ts[0].Weight)
	}
	if ts[1].Weight == nil || *ts[1].Weight != 0 {
		t.Errorf("Expected an explicit zero weight, got %v", ts[1].Weight)
	}
}

func TestExample(t *testing.T) {
	sim, err := Build(Example())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if sim.Voters() != 100 {
		t.Errorf("Expected 100 voters, got %d", sim.Voters())
	}

	outcomes, err := sim.RunMany(context.Background(), 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, c := range election.Tabulate(outcomes) {
		total += c.Times
	}
	if total != 100 {
		t.Errorf("Expected 100 tabulated runs, got %d", total)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := Example().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v\n%s", err, data)
	}
	if s.Blocs[1].Preference.Dispersion != 1.0 || s.Candidates[0].Party != "DEM" {
		t.Errorf("Unexpected round trip: %+v", s)
	}
}
