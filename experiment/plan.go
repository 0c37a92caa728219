package experiment

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/sortlab/sequence"
	"github.com/katalvlaran/sortlab/sorting"
)

// Plan lists every (distribution, strategy) pair to measure over Sizes.
type Plan struct {
	Sizes         []int
	Distributions []sequence.Distribution
	Strategies    []sorting.Strategy
}

// Result is the Series of one (distribution, strategy) pair.
type Result struct {
	Distribution sequence.Distribution
	Strategy     sorting.Strategy
	Series       Series
}

// RunPlan measures the cartesian product of p, distribution-major.
//
// For each distribution and each size ONE base array is generated and every
// strategy is timed on copies of that same array, so strategies are compared
// on identical inputs. The generator therefore advances once per
// (distribution, size), independent of the number of strategies.
//
// Results come back per distribution, strategies in declared order. On a
// generator error the results of fully measured distributions are returned
// together with the error.
func (r *Runner) RunPlan(p Plan, gen *sequence.Generator) ([]Result, error) {
	if len(p.Sizes) == 0 || len(p.Distributions) == 0 || len(p.Strategies) == 0 {
		return nil, fmt.Errorf("RunPlan: %d sizes, %d distributions, %d strategies: %w",
			len(p.Sizes), len(p.Distributions), len(p.Strategies), ErrEmptyPlan)
	}
	if gen == nil {
		return nil, fmt.Errorf("RunPlan: nil generator: %w", ErrNilDependency)
	}
	fns := make([]sorting.SortFunc, len(p.Strategies))
	for i, s := range p.Strategies {
		if fns[i] = s.Func(); fns[i] == nil {
			return nil, fmt.Errorf("RunPlan: algorithm %d: %w", int(s.Algorithm), sorting.ErrUnknownStrategy)
		}
	}

	results := make([]Result, 0, len(p.Distributions)*len(p.Strategies))
	for _, d := range p.Distributions {
		dist := d.String()
		log := r.logger.With(zap.String("run_id", uuid.NewString()), zap.String("distribution", dist))
		log.Debug("plan distribution started", zap.Ints("sizes", p.Sizes), zap.Int("strategies", len(fns)))

		series := make([]Series, len(p.Strategies))
		for i := range series {
			series[i] = make(Series, 0, len(p.Sizes))
		}
		for _, size := range p.Sizes {
			base, err := gen.Generate(d, size)
			if err != nil {
				log.Warn("base array generation failed", zap.Int("size", size), zap.Error(err))

				return results, fmt.Errorf("RunPlan: %s size %d: %w", dist, size, err)
			}
			for i, s := range p.Strategies {
				m := r.measure(base, s.Label(), dist, fns[i])
				series[i] = append(series[i], m)
				log.Debug("size measured",
					zap.String("algorithm", s.Label()),
					zap.Int("size", size),
					zap.Int64("mean_us", m.MeanMicros))
			}
		}
		for i, s := range p.Strategies {
			results = append(results, Result{Distribution: d, Strategy: s, Series: series[i]})
		}
		log.Info("plan distribution finished", zap.Int("points", len(p.Sizes)*len(fns)))
	}

	return results, nil
}
