// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/kingmaker/methods"
	"github.com/danielhkuo/kingmaker/models"
	"github.com/danielhkuo/kingmaker/preferences"
	"github.com/danielhkuo/kingmaker/sampling"
)

var (
	ErrNoCandidates   = errors.New("election needs at least one candidate")
	ErrNilMethod      = errors.New("election needs a voting method")
	ErrNilPreference  = errors.New("voting bloc needs a preference model")
	ErrInvalidMembers = errors.New("voting bloc member count must not be negative")
	ErrInvalidRuns    = errors.New("run count must not be negative")
)

// MaxVoters bounds the total membership of an election's blocs
const MaxVoters = 1 << 30

// Election is an immutable configuration: candidates, voting blocs and a method
type Election[B models.Ballot, O models.Outcome] struct {
	candidates []models.Candidate
	blocs      []VotingBloc[B]
	method     methods.Method[B, O]
	workers    int
	logger     *slog.Logger
}

// Option configures an Election
type Option func(*config)

type config struct {
	workers int
	logger  *slog.Logger
}

// WithWorkers bounds how many runs RunMany evaluates at once.
// Zero or less means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithLogger sets the logger used for batch progress
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// New validates the configuration and builds an Election.
// Preferences and methods implementing Validate are checked against the candidates.
func New[B models.Ballot, O models.Outcome](candidates []models.Candidate, blocs []VotingBloc[B], method methods.Method[B, O], opts ...Option) (*Election[B, O], error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers <= 0 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if err := models.ValidateCandidates(candidates); err != nil {
		return nil, err
	}
	if method == nil {
		return nil, ErrNilMethod
	}

	voters := 0
	for i, bloc := range blocs {
		if bloc.preference == nil {
			return nil, fmt.Errorf("bloc %d: %w", i, ErrNilPreference)
		}
		if bloc.members < 0 {
			return nil, fmt.Errorf("bloc %d: %w", i, ErrInvalidMembers)
		}
		// Every profile holds Voters() ballots, so the total must fit a slice
		if bloc.members > MaxVoters-voters {
			return nil, fmt.Errorf("bloc %d: more than %d voters in total: %w", i, MaxVoters, ErrInvalidMembers)
		}
		voters += bloc.members
		if v, ok := bloc.preference.(preferences.Validator); ok {
			if err := v.Validate(candidates); err != nil {
				return nil, fmt.Errorf("bloc %d: %w", i, err)
			}
		}
	}
	if v, ok := method.(methods.Validator); ok {
		if err := v.Validate(candidates); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}

	return &Election[B, O]{
		candidates: slices.Clone(candidates),
		blocs:      slices.Clone(blocs),
		method:     method,
		workers:    cfg.workers,
		logger:     cfg.logger,
	}, nil
}

func (e *Election[B, O]) Candidates() []models.Candidate { return slices.Clone(e.candidates) }
func (e *Election[B, O]) Blocs() []VotingBloc[B]         { return slices.Clone(e.blocs) }
func (e *Election[B, O]) Method() methods.Method[B, O]   { return e.method }
func (e *Election[B, O]) Workers() int                   { return e.workers }

// Voters is the total membership of all blocs, the length of every profile
func (e *Election[B, O]) Voters() int {
	n := 0
	for _, bloc := range e.blocs {
		n += bloc.members
	}
	return n
}

// Realize draws the honest ballots of every bloc, in bloc order
func (e *Election[B, O]) Realize(rng *rand.Rand) models.Profile[B] {
	profile := make(models.Profile[B], 0, e.Voters())
	for _, bloc := range e.blocs {
		profile = append(profile, bloc.Realize(e.candidates, rng)...)
	}
	return profile
}

// Vote draws every bloc's ballots and applies each bloc's strategy.
// This is the profile the method tabulates.
func (e *Election[B, O]) Vote(rng *rand.Rand) models.Profile[B] {
	profile := make(models.Profile[B], 0, e.Voters())
	for _, bloc := range e.blocs {
		profile = append(profile, bloc.Vote(e.candidates, rng)...)
	}
	return profile
}

// RunOnce votes with a fresh source seeded from seed and tabulates the result
func (e *Election[B, O]) RunOnce(seed uint64) (O, error) {
	profile := e.Vote(sampling.NewRand(seed))
	return e.method.Outcome(e.candidates, profile)
}

// SubSeeds returns the n seeds RunMany derives from seed, in run order
func SubSeeds(n int, seed uint64) []uint64 {
	rng := sampling.NewRand(seed)
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = rng.Uint64()
	}
	return seeds
}

// RunMany evaluates n runs in parallel. Run i uses the i-th sub-seed drawn
// from seed and its outcome is stored at index i, so the result is the same
// for any number of workers. Cancelling ctx abandons outstanding runs.
func (e *Election[B, O]) RunMany(ctx context.Context, n int, seed uint64) ([]O, error) {
	if n < 0 {
		return nil, fmt.Errorf("%d runs: %w", n, ErrInvalidRuns)
	}

	start := time.Now()
	e.logger.Debug("simulation batch started",
		"method", e.method.String(),
		"runs", n,
		"seed", seed,
		"workers", e.workers,
	)

	seeds := SubSeeds(n, seed)
	outcomes := make([]O, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, s := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o, err := e.RunOnce(s)
			if err != nil {
				return fmt.Errorf("run %d (seed %d): %w", i, s, err)
			}
			outcomes[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Warn("simulation batch failed", "method", e.method.String(), "error", err)
		return nil, err
	}

	e.logger.Info("simulation batch finished",
		"method", e.method.String(),
		"runs", n,
		"duration", time.Since(start),
	)
	return outcomes, nil
}

// Count is one distinct outcome and how many runs produced it
type Count[O models.Outcome] struct {
	Outcome O   `json:"outcome"`
	Times   int `json:"times"`
}

// Tabulate groups equal outcomes, in order of first appearance
func Tabulate[O models.Outcome](outcomes []O) []Count[O] {
	var counts []Count[O]
	position := make(map[string]int)
	for _, o := range outcomes {
		key := o.Key()
		if i, ok := position[key]; ok {
			counts[i].Times++
			continue
		}
		position[key] = len(counts)
		counts = append(counts, Count[O]{Outcome: o, Times: 1})
	}
	return counts
}

// BlocSummary describes one voting bloc
type BlocSummary struct {
	Preference string `json:"preference"`
	Strategy   string `json:"strategy"`
	Members    int    `json:"members"`
}

// Configuration summarizes an election for reports
type Configuration struct {
	Ballot     string             `json:"ballot"`
	Method     string             `json:"method"`
	Candidates []models.Candidate `json:"candidates"`
	Blocs      []BlocSummary      `json:"blocs"`
}

// Configuration describes the election
func (e *Election[B, O]) Configuration() Configuration {
	blocs := make([]BlocSummary, len(e.blocs))
	for i, bloc := range e.blocs {
		blocs[i] = BlocSummary{
			Preference: bloc.preference.String(),
			Strategy:   bloc.strategy.String(),
			Members:    bloc.members,
		}
	}
	return Configuration{
		Ballot:     models.BallotKind[B](),
		Method:     e.method.String(),
		Candidates: e.Candidates(),
		Blocs:      blocs,
	}
}
