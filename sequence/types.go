package sequence

import (
	"strings"
)

// Kind enumerates the supported input shapes.
//
//   - Uniform       — independent uniform draws from the generator range.
//   - ReverseSorted — strictly decreasing [n, ..., 1].
//   - AlmostSorted  — identity permutation disturbed by Swaps transpositions.
type Kind int

const (
	// Uniform draws every element independently.
	Uniform Kind = iota
	// ReverseSorted yields [n, n-1, ..., 1].
	ReverseSorted
	// AlmostSorted yields [0..n-1] with random transpositions.
	AlmostSorted
)

// Canonical labels, as accepted by ParseDistribution and printed by String.
const (
	LabelRandom       = "random"
	LabelUniform      = "uniform"
	LabelReverse      = "reverse"
	LabelAlmostSorted = "almost_sorted"
)

// Distribution is a closed tagged variant over Kind. Swaps is meaningful only
// for AlmostSorted and ignored otherwise.
type Distribution struct {
	Kind  Kind
	Swaps int
}

// UniformDist returns the Uniform distribution.
func UniformDist() Distribution { return Distribution{Kind: Uniform} }

// ReverseSortedDist returns the ReverseSorted distribution.
func ReverseSortedDist() Distribution { return Distribution{Kind: ReverseSorted} }

// AlmostSortedWith returns AlmostSorted with the given transposition count.
func AlmostSortedWith(swaps int) Distribution {
	return Distribution{Kind: AlmostSorted, Swaps: swaps}
}

// String returns the canonical label of d ("random", "reverse",
// "almost_sorted"), or "unknown" for an out-of-range Kind.
func (d Distribution) String() string {
	switch d.Kind {
	case Uniform:
		return LabelRandom
	case ReverseSorted:
		return LabelReverse
	case AlmostSorted:
		return LabelAlmostSorted
	default:
		return "unknown"
	}
}

// ParseDistribution maps a label onto a Distribution. Matching is
// case-insensitive and ignores surrounding spaces; "almost_sorted" gets
// DefaultSwaps transpositions. Any other label returns ErrUnknownDistribution
// instead of silently yielding an empty array.
func ParseDistribution(label string) (Distribution, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case LabelRandom, LabelUniform:
		return UniformDist(), nil
	case LabelReverse:
		return ReverseSortedDist(), nil
	case LabelAlmostSorted:
		return AlmostSortedWith(DefaultSwaps), nil
	default:
		return Distribution{}, wrapf(methodParse, ErrUnknownDistribution, "label %q", label)
	}
}
