package experiment

import (
	"go.uber.org/zap"
)

// DefaultRepeats is the number of timed runs averaged per size.
const DefaultRepeats = 5

// runnerConfig collects resolved Runner knobs.
type runnerConfig struct {
	repeats int
	clock   Clock
	logger  *zap.Logger
	metrics *Metrics
}

// Option customizes a Runner.
type Option func(*runnerConfig)

// WithRepeats sets the number of timed runs per size. Panics if n < 1.
func WithRepeats(n int) Option {
	if n < 1 {
		panic("experiment: WithRepeats(n<1)")
	}
	return func(c *runnerConfig) { c.repeats = n }
}

// WithClock replaces the wall clock, typically with a fake in tests.
// Panics on nil.
func WithClock(clock Clock) Option {
	if clock == nil {
		panic("experiment: WithClock(nil)")
	}
	return func(c *runnerConfig) { c.clock = clock }
}

// WithLogger attaches a structured logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(c *runnerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records every timed run into m.
func WithMetrics(m *Metrics) Option {
	return func(c *runnerConfig) { c.metrics = m }
}
