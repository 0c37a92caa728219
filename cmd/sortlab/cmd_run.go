package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sortlab/config"
	"github.com/katalvlaran/sortlab/experiment"
	"github.com/katalvlaran/sortlab/report"
	"github.com/katalvlaran/sortlab/sequence"
)

// runOptions holds the flags of the run command. Flags override the config
// file only when set explicitly.
type runOptions struct {
	configPath    string
	seed          int64
	repeats       int
	sizes         []int
	distributions []string
	algorithms    []string
	threshold     int
	swaps         int
	format        string
	metrics       bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark plan and print one table per algorithm/data pair",
		Long: `Runs every (distribution, algorithm) pair of the plan against one seeded
generator. The plan comes from --config (YAML) or the built-in default;
individual flags override it.

Example:
  sortlab run --sizes 1000,5000,10000 --distributions random,reverse --format table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExperiment(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML plan file")
	f.Int64Var(&opts.seed, "seed", sequence.DefaultSeed, "Generator seed")
	f.IntVar(&opts.repeats, "repeats", experiment.DefaultRepeats, "Timed runs per size")
	f.IntSliceVar(&opts.sizes, "sizes", nil, "Array sizes, in order")
	f.StringSliceVar(&opts.distributions, "distributions", nil, "random, reverse, almost_sorted")
	f.StringSliceVar(&opts.algorithms, "algorithms", nil, "merge, hybrid")
	f.IntVar(&opts.threshold, "threshold", 0, "Hybrid insertion-sort threshold")
	f.IntVar(&opts.swaps, "swaps", 0, "Transpositions for almost_sorted")
	f.StringVar(&opts.format, "format", "", "Report format: text or table")
	f.BoolVar(&opts.metrics, "metrics", false, "Log Prometheus histogram totals after the run")

	return cmd
}

// resolveConfig loads the plan and applies explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *runOptions) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if f.Changed("repeats") {
		cfg.Repeats = opts.repeats
	}
	if f.Changed("sizes") {
		cfg.Sizes = opts.sizes
	}
	if f.Changed("distributions") {
		cfg.Distributions = opts.distributions
	}
	if f.Changed("algorithms") {
		cfg.Algorithms = opts.algorithms
	}
	if f.Changed("threshold") {
		cfg.Threshold = opts.threshold
	}
	if f.Changed("swaps") {
		cfg.Swaps = opts.swaps
	}
	if f.Changed("format") {
		cfg.Format = opts.format
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// runExperiment executes the resolved plan and writes the reports.
func runExperiment(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	log := logger
	if !verbose && cfg.LogLevel != "" {
		if log, err = newLogger(cfg.LogLevel, false); err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
	}
	if log == nil {
		log = zap.NewNop()
	}

	plan, err := cfg.Plan()
	if err != nil {
		return err
	}

	runnerOpts := []experiment.Option{
		experiment.WithRepeats(cfg.Repeats),
		experiment.WithLogger(log),
	}
	reg := prometheus.NewRegistry()
	if opts.metrics {
		runnerOpts = append(runnerOpts, experiment.WithMetrics(experiment.NewMetrics(reg)))
	}

	log.Info("Starting benchmark",
		zap.Int64("seed", cfg.Seed),
		zap.Int("repeats", cfg.Repeats),
		zap.Int("sizes", len(cfg.Sizes)),
		zap.Strings("distributions", cfg.Distributions),
		zap.Strings("algorithms", cfg.Algorithms))

	gen := sequence.NewGenerator(sequence.WithSeed(cfg.Seed))
	results, err := experiment.NewRunner(runnerOpts...).RunPlan(plan, gen)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	write := report.WriteText
	if cfg.Format == config.FormatTable {
		write = report.WriteTable
	}
	out := cmd.OutOrStdout()
	for _, res := range results {
		if err := write(out, res.Series.Sizes(), res.Series.Micros(), res.Strategy.Name(), res.Distribution.String()); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if opts.metrics {
		return logMetrics(log, reg)
	}

	return nil
}

// logMetrics logs sample count and sum of every gathered histogram series.
func logMetrics(log *zap.Logger, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			h := m.GetHistogram()
			if h == nil {
				continue
			}
			fields := []zap.Field{
				zap.String("metric", mf.GetName()),
				zap.Uint64("count", h.GetSampleCount()),
				zap.Float64("sum_seconds", h.GetSampleSum()),
			}
			for _, lp := range m.GetLabel() {
				fields = append(fields, zap.String(lp.GetName(), lp.GetValue()))
			}
			log.Info("Metric", fields...)
		}
	}

	return nil
}
