// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scenario

import (
	"fmt"

	"github.com/danielhkuo/kingmaker/election"
	"github.com/danielhkuo/kingmaker/methods"
	"github.com/danielhkuo/kingmaker/models"
	"github.com/danielhkuo/kingmaker/preferences"
	"github.com/danielhkuo/kingmaker/tactics"
)

// Build validates the scenario and constructs the typed election behind it
func Build(s *Scenario, opts ...election.Option) (election.Simulation, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	candidates, err := s.buildCandidates()
	if err != nil {
		return nil, err
	}
	kind, err := s.BallotKind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case models.KindNominal:
		blocs, err := buildBlocs[models.Nominal](s)
		if err != nil {
			return nil, err
		}
		return simulate(candidates, blocs, methods.Method[models.Nominal, models.SingleWinner](methods.Approval{}), opts)

	case models.KindCardinal:
		blocs, err := buildBlocs[models.Cardinal](s)
		if err != nil {
			return nil, err
		}
		var method methods.Method[models.Cardinal, models.SingleWinner] = methods.Star{}
		if s.Method.Kind == BMJ {
			method = methods.BMJ{MaxScore: s.Method.MaxScore}
		}
		return simulate(candidates, blocs, method, opts)
	}

	blocs, err := buildBlocs[models.Ordinal](s)
	if err != nil {
		return nil, err
	}
	if s.Method.Kind == STV {
		stv := methods.STV{Seats: s.Method.Seats, ElectSimultaneously: s.Method.Simultaneous}
		return simulate(candidates, blocs, methods.Method[models.Ordinal, models.MultiWinner](stv), opts)
	}

	var method methods.Method[models.Ordinal, models.SingleWinner]
	switch s.Method.Kind {
	case Plurality:
		method = methods.Plurality{}
	case Borda:
		method = methods.Borda{Base: s.Method.Base}
	case RandomDictator:
		method = methods.RandomDictator{}
	case IRV:
		method = methods.IRV{}
	}
	return simulate(candidates, blocs, method, opts)
}

func simulate[B models.Ballot, O models.Outcome](candidates []models.Candidate, blocs []election.VotingBloc[B], method methods.Method[B, O], opts []election.Option) (election.Simulation, error) {
	e, err := election.New(candidates, blocs, method, opts...)
	if err != nil {
		return nil, err
	}
	return e.Simulation(), nil
}

func (s *Scenario) buildCandidates() ([]models.Candidate, error) {
	out := make([]models.Candidate, len(s.Candidates))
	for i, c := range s.Candidates {
		candidate, err := models.NewCandidate(c.ID, c.Name, c.Party, c.Positions)
		if err != nil {
			return nil, err
		}
		out[i] = candidate
	}
	return out, nil
}

func buildBlocs[B models.Ballot](s *Scenario) ([]election.VotingBloc[B], error) {
	blocs := make([]election.VotingBloc[B], len(s.Blocs))
	for i, b := range s.Blocs {
		pref, err := buildPreference[B](b.Preference)
		if err != nil {
			return nil, fmt.Errorf("bloc %d: %w", i, err)
		}
		strategy, err := buildStrategy[B](b.Tactics)
		if err != nil {
			return nil, fmt.Errorf("bloc %d: %w", i, err)
		}
		bloc, err := election.NewVotingBloc(pref, strategy, b.Members)
		if err != nil {
			return nil, fmt.Errorf("bloc %d: %w", i, err)
		}
		blocs[i] = bloc
	}
	return blocs, nil
}

func buildPreference[B models.Ballot](p Preference) (preferences.Preference[B], error) {
	kind := models.BallotKind[B]()

	var pref any
	switch p.Kind {
	case Impartial:
		return preferences.Impartial[B]{}, nil

	case Manual:
		profile, err := manualProfile[B](p)
		if err != nil {
			return nil, err
		}
		m, err := preferences.NewManual(profile)
		if err != nil {
			return nil, err
		}
		return m, nil

	case Mallows:
		if kind != models.KindOrdinal {
			return nil, fmt.Errorf("mallows with %s ballots: %w", kind, ErrKindMismatch)
		}
		m, err := preferences.NewMallows(p.Reference, p.Dispersion)
		if err != nil {
			return nil, err
		}
		pref = m

	case PlackettLuce:
		if kind != models.KindOrdinal {
			return nil, fmt.Errorf("plackett-luce with %s ballots: %w", kind, ErrKindMismatch)
		}
		pl, err := preferences.NewPlackettLuce(p.Weights)
		if err != nil {
			return nil, err
		}
		pref = pl

	default:
		return nil, fmt.Errorf("preference %q: %w", p.Kind, ErrUnknownKind)
	}
	return pref.(preferences.Preference[B]), nil
}

func manualProfile[B models.Ballot](p Preference) (models.Profile[B], error) {
	kind := models.BallotKind[B]()

	var profile any
	switch kind {
	case models.KindCardinal:
		if len(p.Ballots) > 0 {
			return nil, fmt.Errorf("ranked ballots for %s method: %w", kind, ErrKindMismatch)
		}
		out := make(models.Profile[models.Cardinal], len(p.Scores))
		for i, scores := range p.Scores {
			out[i] = models.Cardinal(scores)
		}
		profile = out

	case models.KindNominal:
		if len(p.Scores) > 0 {
			return nil, fmt.Errorf("score ballots for %s method: %w", kind, ErrKindMismatch)
		}
		out := make(models.Profile[models.Nominal], len(p.Ballots))
		for i, ids := range p.Ballots {
			out[i] = models.NewNominal(ids...)
		}
		profile = out

	default:
		if len(p.Scores) > 0 {
			return nil, fmt.Errorf("score ballots for %s method: %w", kind, ErrKindMismatch)
		}
		out := make(models.Profile[models.Ordinal], len(p.Ballots))
		for i, ids := range p.Ballots {
			out[i] = models.Ordinal(ids)
		}
		profile = out
	}
	return profile.(models.Profile[B]), nil
}

func buildStrategy[B models.Ballot](ts []Tactic) (tactics.Strategy[B], error) {
	builder := tactics.NewStrategy[B]()
	for i, t := range ts {
		tactic, err := buildTactic[B](t)
		if err != nil {
			return tactics.Strategy[B]{}, fmt.Errorf("tactic %d: %w", i, err)
		}
		weight := 1.0
		if t.Weight != nil {
			weight = *t.Weight
		}
		builder.Add(tactic, weight)
	}
	return builder.Build()
}

func buildTactic[B models.Ballot](t Tactic) (tactics.Tactic[B], error) {
	if t.Kind == Identity {
		return tactics.Identity[B]{}, nil
	}
	if kind := models.BallotKind[B](); kind != models.KindOrdinal {
		return nil, fmt.Errorf("%s with %s ballots: %w", t.Kind, kind, ErrKindMismatch)
	}

	var tactic any
	switch t.Kind {
	case Compromise:
		tactic = tactics.NewCompromise(t.Targets...)
	case Burial:
		tactic = tactics.NewBurial(t.Targets...)
	case Pushover:
		tactic = tactics.NewPushover(t.Preferred, t.Pushover)
	default:
		return nil, fmt.Errorf("tactic %q: %w", t.Kind, ErrUnknownKind)
	}
	return tactic.(tactics.Tactic[B]), nil
}
