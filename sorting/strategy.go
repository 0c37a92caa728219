package sorting

import (
	"fmt"
	"strings"
)

// Threshold defaults.
const (
	// DefaultThreshold is the hybrid cut-over used by the benchmark driver.
	DefaultThreshold = 10
	// StandaloneThreshold is the cut-over used by the stdin sorter.
	StandaloneThreshold = 15
)

// Labels accepted by ParseStrategy.
const (
	LabelMerge  = "merge"
	LabelHybrid = "hybrid"
)

// Algorithm enumerates the available sort strategies.
type Algorithm int

const (
	// PlainMerge is top-down merge sort down to single elements.
	PlainMerge Algorithm = iota
	// HybridMergeInsertion is merge sort with an insertion-sort cut-over.
	HybridMergeInsertion
)

// SortFunc sorts a whole slice in place.
type SortFunc func([]int)

// Strategy is a closed tagged variant over Algorithm. Threshold is read only
// by HybridMergeInsertion.
type Strategy struct {
	Algorithm Algorithm
	Threshold int
}

// Merge returns the PlainMerge strategy.
func Merge() Strategy { return Strategy{Algorithm: PlainMerge} }

// Hybrid returns HybridMergeInsertion with the given threshold.
func Hybrid(threshold int) Strategy {
	return Strategy{Algorithm: HybridMergeInsertion, Threshold: threshold}
}

// Name renders a human-readable label for reports, e.g. "Merge Sort" or
// "Hybrid Merge+Insertion Sort (threshold=10)".
func (s Strategy) Name() string {
	switch s.Algorithm {
	case PlainMerge:
		return "Merge Sort"
	case HybridMergeInsertion:
		return fmt.Sprintf("Hybrid Merge+Insertion Sort (threshold=%d)", s.Threshold)
	default:
		return "unknown"
	}
}

// Label returns the short machine label ("merge" or "hybrid").
func (s Strategy) Label() string {
	switch s.Algorithm {
	case PlainMerge:
		return LabelMerge
	case HybridMergeInsertion:
		return LabelHybrid
	default:
		return "unknown"
	}
}

// Func returns the whole-slice sort for s, or nil for an unknown Algorithm.
func (s Strategy) Func() SortFunc {
	switch s.Algorithm {
	case PlainMerge:
		return Sort
	case HybridMergeInsertion:
		threshold := s.Threshold

		return func(a []int) { HybridSort(a, threshold) }
	default:
		return nil
	}
}

// ParseStrategy maps "merge" or "hybrid" (case-insensitive) to a Strategy;
// threshold is attached to hybrid only.
func ParseStrategy(label string, threshold int) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case LabelMerge:
		return Merge(), nil
	case LabelHybrid:
		return Hybrid(threshold), nil
	default:
		return Strategy{}, fmt.Errorf("ParseStrategy: label %q: %w", label, ErrUnknownStrategy)
	}
}
