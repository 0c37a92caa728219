// SPDX-License-Identifier: MIT
// Package: sortlab/sequence
//
// options.go — functional options for NewGenerator.
//
// Contract:
//   • Options mutate an unexported generatorConfig, applied in order (last wins).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Seeding is explicit: WithSeed or WithRand. The default seed is DefaultSeed.

package sequence

import (
	"math"
	"math/rand"
)

// Deterministic defaults.
const (
	// DefaultSeed seeds the stream when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 42
	// DefaultMin is the inclusive lower bound of Uniform draws.
	DefaultMin = 0
	// DefaultMax is the inclusive upper bound of Uniform draws.
	DefaultMax = 6000
	// DefaultSwaps is the transposition count used by the "almost_sorted" label.
	DefaultSwaps = 5
)

// generatorConfig aggregates all knobs resolved by NewGenerator.
type generatorConfig struct {
	rng *rand.Rand // nil → seeded from DefaultSeed
	min int        // inclusive
	max int        // inclusive, ≥ min
}

// Option customizes a Generator before its stream is created.
type Option func(*generatorConfig)

// newGeneratorConfig applies opts over deterministic defaults.
// Complexity: O(len(opts)).
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		min: DefaultMin,
		max: DefaultMax,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// WithSeed creates a fresh *rand.Rand from seed. Use it to freeze outcomes
// in tests and to reproduce a benchmark session.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand hands an existing stream to the generator. The generator takes
// ownership; callers must not draw from r afterwards. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sequence: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithRange sets the inclusive bounds of Uniform draws. Panics if lo > hi or
// if the range holds more than math.MaxInt values.
func WithRange(lo, hi int) Option {
	if lo > hi {
		panic("sequence: WithRange(lo>hi)")
	}
	// hi-lo wraps negative on overflow; hi-lo+1 must still fit in an int.
	if span := hi - lo; span < 0 || span == math.MaxInt {
		panic("sequence: WithRange(span overflows int)")
	}
	return func(c *generatorConfig) {
		c.min, c.max = lo, hi
	}
}
