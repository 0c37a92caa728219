package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sortlab/sorting"
)

func newSortCmd() *cobra.Command {
	var threshold int
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort integers from stdin with the hybrid merge+insertion sort",
		Long: `Reads a count n followed by n integers (any whitespace) from stdin and
prints them sorted, separated by single spaces.

Example:
  echo "5  3 1 4 1 5" | sortlab sort`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd.InOrStdin(), cmd.OutOrStdout(), threshold)
		},
	}
	cmd.Flags().IntVar(&threshold, "threshold", sorting.StandaloneThreshold, "Insertion-sort threshold")

	return cmd
}

// maxPrealloc bounds the capacity reserved up front for the declared count.
const maxPrealloc = 1 << 16

// readInts parses "n v1 ... vn" from r.
func readInts(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("failed to read %s: %w", what, err)
			}
			return 0, fmt.Errorf("failed to read %s: %w", what, io.ErrUnexpectedEOF)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("failed to parse %s: %w", what, err)
		}
		return v, nil
	}

	n, err := next("count")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("negative count %d", n)
	}
	// n comes from the input; the slice grows with the elements actually read.
	arr := make([]int, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		v, err := next(fmt.Sprintf("element %d", i))
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}

	return arr, nil
}

// runSort sorts stdin-style input and writes the space-separated result.
func runSort(in io.Reader, out io.Writer, threshold int) error {
	arr, err := readInts(in)
	if err != nil {
		return err
	}
	if logger != nil {
		logger.Debug("Sorting input", zap.Int("n", len(arr)), zap.Int("threshold", threshold))
	}

	sorting.HybridSort(arr, threshold)

	parts := make([]string, len(arr))
	for i, v := range arr {
		parts[i] = strconv.Itoa(v)
	}
	w := bufio.NewWriter(out)
	w.WriteString(strings.Join(parts, " "))
	w.WriteString("\n")

	return w.Flush()
}
