// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/kingmaker/models"
	"github.com/danielhkuo/kingmaker/preferences"
)

var (
	ErrEmptyScenario = errors.New("scenario is empty")
	ErrKindMismatch  = errors.New("ballot kind mismatch")
	ErrUnknownKind   = errors.New("unknown kind")
)

// Method kinds
const (
	Plurality      = "plurality"
	Approval       = "approval"
	Borda          = "borda"
	RandomDictator = "random_dictator"
	Star           = "star"
	IRV            = "irv"
	STV            = "stv"
	BMJ            = "bmj"
)

// Preference kinds
const (
	Impartial    = "impartial"
	Mallows      = "mallows"
	PlackettLuce = "plackett_luce"
	Manual       = "manual"
)

// Tactic kinds
const (
	Identity   = "identity"
	Compromise = "compromise"
	Burial     = "burial"
	Pushover   = "pushover"
)

// MaxBlocMembers is the largest bloc a scenario may declare
const MaxBlocMembers = 10_000_000

var validate = validator.New()

// Scenario is a declarative election
type Scenario struct {
	Name       string      `yaml:"name" json:"name"`
	Candidates []Candidate `yaml:"candidates" json:"candidates" validate:"required,min=1,dive"`
	Method     Method      `yaml:"method" json:"method"`
	Blocs      []Bloc      `yaml:"blocs" json:"blocs" validate:"required,min=1,dive"`
}

type Candidate struct {
	ID        models.ID `yaml:"id" json:"id"`
	Name      string    `yaml:"name" json:"name" validate:"required"`
	Party     string    `yaml:"party,omitempty" json:"party,omitempty"`
	Positions []float64 `yaml:"positions,omitempty" json:"positions,omitempty"`
}

type Method struct {
	Kind string `yaml:"kind" json:"kind" validate:"required,oneof=plurality approval borda random_dictator star irv stv bmj"`
	// Seats is the number of STV winners
	Seats        int  `yaml:"seats,omitempty" json:"seats,omitempty" validate:"required_if=Kind stv,min=0"`
	Simultaneous bool `yaml:"simultaneous,omitempty" json:"simultaneous,omitempty"`
	// Base is the Borda score of a last place
	Base     int  `yaml:"base,omitempty" json:"base,omitempty" validate:"oneof=0 1"`
	MaxScore uint `yaml:"max_score,omitempty" json:"max_score,omitempty"`
}

type Bloc struct {
	// Members is capped at MaxBlocMembers
	Members    int        `yaml:"members" json:"members" validate:"min=0,max=10000000"`
	Preference Preference `yaml:"preference" json:"preference"`
	Tactics    []Tactic   `yaml:"tactics,omitempty" json:"tactics,omitempty" validate:"dive"`
}

type Preference struct {
	Kind       string               `yaml:"kind" json:"kind" validate:"required,oneof=impartial mallows plackett_luce manual"`
	Reference  []models.ID          `yaml:"reference,omitempty" json:"reference,omitempty" validate:"required_if=Kind mallows"`
	Dispersion float64              `yaml:"dispersion,omitempty" json:"dispersion,omitempty" validate:"min=0"`
	Weights    []preferences.Weight `yaml:"weights,omitempty" json:"weights,omitempty" validate:"required_if=Kind plackett_luce"`
	// Ballots are the rankings or approval sets of a manual preference
	Ballots [][]models.ID `yaml:"ballots,omitempty" json:"ballots,omitempty"`
	// Scores are the score ballots of a manual preference
	Scores []map[models.ID]uint `yaml:"scores,omitempty" json:"scores,omitempty"`
}

type Tactic struct {
	Kind      string      `yaml:"kind" json:"kind" validate:"required,oneof=identity compromise burial pushover"`
	Targets   []models.ID `yaml:"targets,omitempty" json:"targets,omitempty"`
	Preferred []models.ID `yaml:"preferred,omitempty" json:"preferred,omitempty"`
	Pushover  []models.ID `yaml:"pushover,omitempty" json:"pushover,omitempty"`
	// Weight defaults to 1 when omitted. Zero switches the tactic off.
	Weight *float64 `yaml:"weight,omitempty" json:"weight,omitempty" validate:"omitempty,min=0"`
}

// TacticWeight returns w for use as a Tactic.Weight literal
func TacticWeight(w float64) *float64 { return &w }

// Validate checks struct constraints
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	return nil
}

// BallotKind is the ballot shape the scenario's method counts
func (s *Scenario) BallotKind() (string, error) {
	switch s.Method.Kind {
	case Approval:
		return models.KindNominal, nil
	case Star, BMJ:
		return models.KindCardinal, nil
	case Plurality, Borda, RandomDictator, IRV, STV:
		return models.KindOrdinal, nil
	}
	return "", fmt.Errorf("method %q: %w", s.Method.Kind, ErrUnknownKind)
}

// Voters is the total membership of all blocs
func (s *Scenario) Voters() int {
	n := 0
	for _, b := range s.Blocs {
		n += b.Members
	}
	return n
}

// Parse decodes and validates a scenario written in YAML or JSON. JSON goes
// through encoding/json so that score maps keyed by quoted IDs decode.
func Parse(data []byte) (*Scenario, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyScenario
	}
	var s Scenario
	unmarshal := yaml.Unmarshal
	if trimmed[0] == '{' {
		unmarshal = json.Unmarshal
	}
	if err := unmarshal(trimmed, &s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Decode reads a scenario from r
func Decode(r io.Reader) (*Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("scenario: read: %w", err)
	}
	return Parse(data)
}

// Load reads a scenario file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Marshal encodes the scenario as YAML
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
