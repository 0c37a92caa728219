// Command sortlab benchmarks merge-sort variants on generated inputs.
//
//	sortlab run [--config plan.yaml] [--sizes 100,1000] [--format table]
//	sortlab sort [--threshold 15] < numbers.txt
//	sortlab config > plan.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// newLogger builds a production logger at the given level; verbose forces debug.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	return zcfg.Build()
}

// newRootCmd wires the command tree. Each call returns fresh commands and
// flag storage.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sortlab",
		Short: "sortlab - merge sort vs hybrid merge+insertion sort benchmarks",
		Long: `sortlab times sort strategies on reproducible, generated inputs.

For every requested size it generates one base array (random, reverse or
almost sorted), sorts fresh copies of it several times and reports the
truncated mean time in microseconds.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger("", verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newRunCmd())
	root.AddCommand(newSortCmd())
	root.AddCommand(newConfigCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
