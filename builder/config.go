// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness available.
	rng *rand.Rand
	// Upper bound for seed starts and rule destinations.
	window uint64
	// Upper bound for rule, gap and seed lengths.
	maxLength uint64
}

// Deterministic defaults.
const (
	defaultWindow    = uint64(1) << 32
	defaultMaxLength = uint64(1) << 24
)

// Option customizes a constructor.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand for the given seed.
// Seed 0 is replaced by defaultRNGSeed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rngFromSeed(seed) }
}

// WithWindow bounds seed starts and rule destinations to [0, window).
// Panics when window is zero.
func WithWindow(window uint64) Option {
	if window == 0 {
		panic("builder: WithWindow(0)")
	}
	return func(c *builderConfig) { c.window = window }
}

// WithMaxLength bounds generated lengths to [1, n]. Panics when n is zero.
func WithMaxLength(n uint64) Option {
	if n == 0 {
		panic("builder: WithMaxLength(0)")
	}
	return func(c *builderConfig) { c.maxLength = n }
}

// newBuilderConfig applies options in order over the defaults; last wins.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		window:    defaultWindow,
		maxLength: defaultMaxLength,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
