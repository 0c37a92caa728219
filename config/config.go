// Package config loads and validates sortlab experiment plans from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sortlab/experiment"
	"github.com/katalvlaran/sortlab/sequence"
	"github.com/katalvlaran/sortlab/sorting"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is one experiment plan plus its presentation settings.
type Config struct {
	// Seed initializes the single generator stream of the session.
	Seed int64 `yaml:"seed"`
	// Repeats is the number of timed runs averaged per size.
	Repeats int `yaml:"repeats"`
	// Sizes are measured in the listed order.
	Sizes []int `yaml:"sizes"`
	// Distributions: random, reverse, almost_sorted.
	Distributions []string `yaml:"distributions"`
	// Algorithms: merge, hybrid.
	Algorithms []string `yaml:"algorithms"`
	// Threshold is the hybrid insertion-sort cut-over.
	Threshold int `yaml:"threshold"`
	// Swaps overrides the transposition count of almost_sorted.
	Swaps int `yaml:"swaps"`

	// Format selects the report renderer: text or table.
	Format string `yaml:"format"`
	// LogLevel: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the reference plan: sizes 500..10000 step 100 on all
// three distributions for both algorithms, 5 repeats, threshold 10, seed 42.
func DefaultConfig() *Config {
	sizes := make([]int, 0, 96)
	for n := 500; n <= 10_000; n += 100 {
		sizes = append(sizes, n)
	}

	return &Config{
		Seed:          sequence.DefaultSeed,
		Repeats:       experiment.DefaultRepeats,
		Sizes:         sizes,
		Distributions: []string{sequence.LabelRandom, sequence.LabelReverse, sequence.LabelAlmostSorted},
		Algorithms:    []string{sorting.LabelMerge, sorting.LabelHybrid},
		Threshold:     sorting.DefaultThreshold,
		Swaps:         sequence.DefaultSwaps,
		Format:        FormatText,
		LogLevel:      "info",
	}
}

// Load reads a YAML file over DefaultConfig: keys absent from the file keep
// their defaults. The result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return data, nil
}

// Validate checks ranges and labels. Every failure wraps ErrInvalidConfig
// and, for labels, the package sentinel (sequence.ErrUnknownDistribution,
// sorting.ErrUnknownStrategy).
func (c *Config) Validate() error {
	if c.Repeats < 1 {
		return fmt.Errorf("%w: repeats must be ≥ 1, got %d", ErrInvalidConfig, c.Repeats)
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: at least one size is required", ErrInvalidConfig)
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: negative size %d", ErrInvalidConfig, n)
		}
	}
	if c.Swaps < 0 {
		return fmt.Errorf("%w: swaps must be ≥ 0, got %d", ErrInvalidConfig, c.Swaps)
	}
	if _, err := c.Plan(); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatTable:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}

	return nil
}

// Plan converts the label lists into an experiment.Plan.
func (c *Config) Plan() (experiment.Plan, error) {
	plan := experiment.Plan{Sizes: c.Sizes}
	if len(c.Distributions) == 0 || len(c.Algorithms) == 0 {
		return plan, fmt.Errorf("%w: distributions and algorithms must be non-empty", ErrInvalidConfig)
	}
	for _, label := range c.Distributions {
		d, err := sequence.ParseDistribution(label)
		if err != nil {
			return plan, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if d.Kind == sequence.AlmostSorted {
			d.Swaps = c.Swaps
		}
		plan.Distributions = append(plan.Distributions, d)
	}
	for _, label := range c.Algorithms {
		s, err := sorting.ParseStrategy(label, c.Threshold)
		if err != nil {
			return plan, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		plan.Strategies = append(plan.Strategies, s)
	}

	return plan, nil
}
