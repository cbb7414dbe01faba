package solver

import (
	"github.com/katalvlaran/muster/cluster"
	"github.com/katalvlaran/muster/combat"
)

// Default search effort, matching the CLI defaults.
const (
	DefaultRestarts       = 50
	DefaultSwapIterations = 200
)

// Options configures one solve. Use DefaultOptions() and the WithX
// helpers; a zero Options value is not valid.
type Options struct {
	// Seed is the base seed; every restart derives its own stream from
	// Seed plus its restart index.
	Seed int64
	// Restarts is the number of independent greedy restarts (≥ 1).
	Restarts int
	// SwapIterations bounds local-search passes per restart (≥ 0;
	// 0 disables local search).
	SwapIterations int
	// Parallelism caps concurrent restart workers; values ≤ 1 run
	// sequentially. The result is identical either way.
	Parallelism int
	// TrimPolicy overrides the roster trim ranking; nil selects
	// cluster.DensityRank.
	TrimPolicy cluster.TrimPolicy
	// Combat enables combat scoring, swap tie-breaks and the composite
	// selection key. Nil disables all combat scoring.
	Combat *combat.Context
	// MinCombatScore rejects any winning solution whose composite falls
	// below it; active only when EnforceMinCombat is set.
	MinCombatScore   float64
	EnforceMinCombat bool
}

// Option mutates Options during construction.
type Option func(*Options)

// DefaultOptions returns the baseline: seed 0, 50 restarts, 200 swap
// iterations, sequential execution, default trim policy, no combat.
func DefaultOptions() Options {
	return Options{
		Seed:           0,
		Restarts:       DefaultRestarts,
		SwapIterations: DefaultSwapIterations,
		Parallelism:    1,
	}
}

// WithSeed sets the base RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRestarts sets the independent restart count.
func WithRestarts(n int) Option {
	return func(o *Options) { o.Restarts = n }
}

// WithSwapIterations sets the local-search pass budget per restart.
func WithSwapIterations(n int) Option {
	return func(o *Options) { o.SwapIterations = n }
}

// WithParallelism caps concurrent restart workers.
func WithParallelism(workers int) Option {
	return func(o *Options) { o.Parallelism = workers }
}

// WithTrimPolicy overrides the roster trim ranking policy.
func WithTrimPolicy(policy cluster.TrimPolicy) Option {
	return func(o *Options) { o.TrimPolicy = policy }
}

// WithCombatContext enables combat scoring and tie-breaking.
func WithCombatContext(ctx *combat.Context) Option {
	return func(o *Options) { o.Combat = ctx }
}

// WithMinCombatScore enables the minimum-composite filter.
func WithMinCombatScore(min float64) Option {
	return func(o *Options) {
		o.MinCombatScore = min
		o.EnforceMinCombat = true
	}
}

// buildOptions folds the option list over the defaults and validates.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	if o.Restarts < 1 || o.SwapIterations < 0 || o.Parallelism < 0 {
		return Options{}, ErrInvalidOptions
	}
	// Threshold without a scorer can never be satisfied nor checked.
	if o.EnforceMinCombat && o.Combat == nil {
		return Options{}, ErrInvalidOptions
	}

	return o, nil
}
