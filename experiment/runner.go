package experiment

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/sortlab/sequence"
	"github.com/katalvlaran/sortlab/sorting"
)

// Runner executes the repeated-measurement protocol described in the
// package documentation. A Runner is stateless between calls and may be
// reused; it is not meant for concurrent use.
type Runner struct {
	repeats int
	clock   Clock
	logger  *zap.Logger
	metrics *Metrics
}

// NewRunner resolves opts over the defaults: DefaultRepeats runs, the wall
// clock, a no-op logger and no metrics.
func NewRunner(opts ...Option) *Runner {
	cfg := runnerConfig{
		repeats: DefaultRepeats,
		clock:   WallClock(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Runner{
		repeats: cfg.repeats,
		clock:   cfg.clock,
		logger:  cfg.logger,
		metrics: cfg.metrics,
	}
}

// Repeats reports the number of timed runs per size.
func (r *Runner) Repeats() int { return r.repeats }

// Run measures strategy s on inputs drawn from d, one Series entry per size.
// Generator errors (negative size, unknown distribution) abort the run and
// are returned wrapped with the offending size.
func (r *Runner) Run(sizes []int, d sequence.Distribution, s sorting.Strategy, gen *sequence.Generator) (Series, error) {
	fn := s.Func()
	if fn == nil {
		return nil, fmt.Errorf("Run: algorithm %d: %w", int(s.Algorithm), sorting.ErrUnknownStrategy)
	}

	return r.run(sizes, d, s.Label(), fn, gen)
}

// RunFunc applies the same protocol to an arbitrary whole-slice sort; name
// labels logs and metrics.
func (r *Runner) RunFunc(sizes []int, d sequence.Distribution, name string, fn sorting.SortFunc, gen *sequence.Generator) (Series, error) {
	if fn == nil {
		return nil, fmt.Errorf("RunFunc: nil sort func: %w", ErrNilDependency)
	}

	return r.run(sizes, d, name, fn, gen)
}

func (r *Runner) run(sizes []int, d sequence.Distribution, name string, fn sorting.SortFunc, gen *sequence.Generator) (Series, error) {
	if gen == nil {
		return nil, fmt.Errorf("Run: nil generator: %w", ErrNilDependency)
	}
	dist := d.String()
	log := r.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("algorithm", name),
		zap.String("distribution", dist),
	)
	log.Debug("experiment started", zap.Ints("sizes", sizes), zap.Int("repeats", r.repeats))

	series := make(Series, 0, len(sizes))
	for _, size := range sizes {
		base, err := gen.Generate(d, size)
		if err != nil {
			log.Warn("base array generation failed", zap.Int("size", size), zap.Error(err))

			return nil, fmt.Errorf("Run: size %d: %w", size, err)
		}

		m := r.measure(base, name, dist, fn)
		series = append(series, m)
		log.Debug("size measured", zap.Int("size", size), zap.Int64("mean_us", m.MeanMicros))
	}
	log.Info("experiment finished", zap.Int("points", len(series)))

	return series, nil
}

// measure times fn on Repeats fresh copies of base and returns the
// truncating mean. base itself is never handed to fn.
func (r *Runner) measure(base []int, name, dist string, fn sorting.SortFunc) Measurement {
	work := make([]int, len(base))
	var total int64
	for i := 0; i < r.repeats; i++ {
		copy(work, base)
		elapsed := Measure(r.clock, func() { fn(work) })
		total += elapsed.Microseconds()
		r.metrics.observeRun(name, dist, elapsed.Seconds())
	}
	r.metrics.observeSize(name, dist)

	return Measurement{Size: len(base), MeanMicros: total / int64(r.repeats)}
}
