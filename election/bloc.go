// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"math/rand/v2"

	"github.com/danielhkuo/kingmaker/models"
	"github.com/danielhkuo/kingmaker/preferences"
	"github.com/danielhkuo/kingmaker/tactics"
)

// VotingBloc is a group of voters sharing one preference model and one strategy
type VotingBloc[B models.Ballot] struct {
	preference preferences.Preference[B]
	strategy   tactics.Strategy[B]
	members    int
}

// NewVotingBloc builds a bloc of the given size
func NewVotingBloc[B models.Ballot](preference preferences.Preference[B], strategy tactics.Strategy[B], members int) (VotingBloc[B], error) {
	if preference == nil {
		return VotingBloc[B]{}, ErrNilPreference
	}
	if members < 0 {
		return VotingBloc[B]{}, fmt.Errorf("%d members: %w", members, ErrInvalidMembers)
	}
	return VotingBloc[B]{preference: preference, strategy: strategy, members: members}, nil
}

// HonestBloc is a bloc whose members all vote sincerely
func HonestBloc[B models.Ballot](preference preferences.Preference[B], members int) (VotingBloc[B], error) {
	return NewVotingBloc(preference, tactics.Honest[B](), members)
}

func (v VotingBloc[B]) Preference() preferences.Preference[B] { return v.preference }
func (v VotingBloc[B]) Strategy() tactics.Strategy[B]         { return v.strategy }
func (v VotingBloc[B]) Members() int                          { return v.members }

// Realize draws one honest ballot per member
func (v VotingBloc[B]) Realize(candidates []models.Candidate, rng *rand.Rand) models.Profile[B] {
	return preferences.Sample(v.preference, candidates, v.members, rng)
}

// Vote draws one ballot per member and passes each through the bloc's strategy
func (v VotingBloc[B]) Vote(candidates []models.Candidate, rng *rand.Rand) models.Profile[B] {
	profile := make(models.Profile[B], 0, v.members)
	for i := 0; i < v.members; i++ {
		honest := v.preference.Draw(candidates, rng)
		profile = append(profile, v.strategy.Apply(honest, rng))
	}
	return profile
}

func (v VotingBloc[B]) String() string {
	return fmt.Sprintf("%d × %s, %s", v.members, v.preference, v.strategy)
}
