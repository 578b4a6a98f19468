// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tactics

import (
	"fmt"
	"slices"

	"github.com/danielhkuo/kingmaker/models"
)

// Tactic rewrites one honest ballot into the ballot actually cast.
// Apply must not modify its argument.
type Tactic[B models.Ballot] interface {
	Apply(ballot B) B
	String() string
}

// Identity casts the honest ballot unchanged
type Identity[B models.Ballot] struct{}

func (Identity[B]) Apply(ballot B) B { return ballot }
func (Identity[B]) String() string   { return "Identity" }

// Compromise ranks electable candidates first, in the given order, ahead of
// the voter's true preferences: compromise + (ballot - compromise).
type Compromise struct {
	targets []models.ID
}

func NewCompromise(targets ...models.ID) Compromise {
	return Compromise{targets: slices.Clone(targets)}
}

func (c Compromise) Apply(ballot models.Ordinal) models.Ordinal {
	front := present(ballot, c.targets)
	return append(front, ballot.Without(front...)...)
}

func (c Compromise) String() string { return fmt.Sprintf("Compromise(%v)", c.targets) }

// Burial moves threatening candidates to the bottom, in the given order:
// (ballot - buried) + buried.
type Burial struct {
	targets []models.ID
}

func NewBurial(targets ...models.ID) Burial {
	return Burial{targets: slices.Clone(targets)}
}

func (b Burial) Apply(ballot models.Ordinal) models.Ordinal {
	buried := present(ballot, b.targets)
	return append(ballot.Without(buried...), buried...)
}

func (b Burial) String() string { return fmt.Sprintf("Burial(%v)", b.targets) }

// Pushover ranks weak candidates right after the preferred ones, hoping they
// knock out stronger rivals in early rounds: preferred + pushover + rest.
type Pushover struct {
	preferred []models.ID
	pushover  []models.ID
}

func NewPushover(preferred, pushover []models.ID) Pushover {
	return Pushover{preferred: slices.Clone(preferred), pushover: slices.Clone(pushover)}
}

func (p Pushover) Apply(ballot models.Ordinal) models.Ordinal {
	front := present(ballot, append(slices.Clone(p.preferred), p.pushover...))
	return append(front, ballot.Without(front...)...)
}

func (p Pushover) String() string {
	return fmt.Sprintf("Pushover(preferred=%v, pushover=%v)", p.preferred, p.pushover)
}

// present keeps the targets that appear on the ballot, first occurrence only
func present(ballot models.Ordinal, targets []models.ID) models.Ordinal {
	out := make(models.Ordinal, 0, len(targets))
	for _, id := range targets {
		if slices.Contains(ballot, id) && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
