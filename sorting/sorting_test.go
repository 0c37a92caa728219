package sorting_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/sequence"
	"github.com/katalvlaran/sortlab/sorting"
)

// scenario is the fixed input shared by the concrete-case tests.
var scenario = []int{5, 3, 8, 1, 9, 2}

// clone returns an independent copy of a.
func clone(a []int) []int {
	out := make([]int, len(a))
	copy(out, a)

	return out
}

// TestConcreteScenario checks every entry point on the same input.
func TestConcreteScenario(t *testing.T) {
	want := []int{1, 2, 3, 5, 8, 9}

	a := clone(scenario)
	require.NoError(t, sorting.MergeSort(a, 0, len(a)-1))
	assert.Equal(t, want, a, "MergeSort")

	b := clone(scenario)
	require.NoError(t, sorting.InsertionSort(b, 0, len(b)-1))
	assert.Equal(t, want, b, "InsertionSort")

	c := clone(scenario)
	require.NoError(t, sorting.HybridMergeSort(c, 0, len(c)-1, 3))
	assert.Equal(t, want, c, "HybridMergeSort(threshold=3)")
}

// TestSubrangeOnly verifies that elements outside [lo, hi] stay put.
func TestSubrangeOnly(t *testing.T) {
	a := []int{9, 7, 5, 3, 1, 0}
	require.NoError(t, sorting.MergeSort(a, 1, 4))
	assert.Equal(t, []int{9, 1, 3, 5, 7, 0}, a)

	b := []int{9, 7, 5, 3, 1, 0}
	require.NoError(t, sorting.HybridMergeSort(b, 1, 4, 2))
	assert.Equal(t, []int{9, 1, 3, 5, 7, 0}, b)

	c := []int{9, 7, 5, 3, 1, 0}
	require.NoError(t, sorting.InsertionSort(c, 1, 4))
	assert.Equal(t, []int{9, 1, 3, 5, 7, 0}, c)
}

// TestCorrectness_GeneratedInputs sorts every distribution at several sizes
// with both strategies and compares against sort.Ints.
func TestCorrectness_GeneratedInputs(t *testing.T) {
	gen := sequence.NewGenerator(sequence.WithSeed(11))
	dists := []sequence.Distribution{
		sequence.UniformDist(),
		sequence.ReverseSortedDist(),
		sequence.AlmostSortedWith(5),
	}
	strategies := []sorting.Strategy{
		sorting.Merge(),
		sorting.Hybrid(sorting.DefaultThreshold),
		sorting.Hybrid(0),
		sorting.Hybrid(1),
		sorting.Hybrid(64),
	}
	for _, d := range dists {
		for _, n := range []int{0, 1, 2, 3, 9, 10, 11, 100, 1023} {
			base, err := gen.Generate(d, n)
			require.NoError(t, err)

			want := clone(base)
			sort.Ints(want)
			for _, s := range strategies {
				got := clone(base)
				s.Func()(got)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("%s on %s n=%d mismatch (-want +got):\n%s", s.Name(), d, n, diff)
				}
			}
		}
	}
}

// TestIdempotence checks that sorted input comes back unchanged.
func TestIdempotence(t *testing.T) {
	sorted := []int{-4, -4, 0, 1, 1, 2, 7, 7, 7, 100}
	for _, s := range []sorting.Strategy{sorting.Merge(), sorting.Hybrid(3), sorting.Hybrid(100)} {
		got := clone(sorted)
		s.Func()(got)
		assert.Equal(t, sorted, got, s.Name())
	}
}

// TestHybridEquivalence checks the two degenerate thresholds.
func TestHybridEquivalence(t *testing.T) {
	gen := sequence.NewGenerator(sequence.WithSeed(3))
	base, err := gen.Random(257)
	require.NoError(t, err)
	hi := len(base) - 1

	// threshold ≥ n: a single insertion-sort pass.
	viaInsertion := clone(base)
	require.NoError(t, sorting.InsertionSort(viaInsertion, 0, hi))
	for _, th := range []int{len(base), len(base) + 1, 10_000} {
		got := clone(base)
		require.NoError(t, sorting.HybridMergeSort(got, 0, hi, th))
		assert.Equal(t, viaInsertion, got, "threshold=%d", th)
	}

	// threshold ≤ 1: plain merge sort.
	viaMerge := clone(base)
	require.NoError(t, sorting.MergeSort(viaMerge, 0, hi))
	for _, th := range []int{1, 0, -5} {
		got := clone(base)
		require.NoError(t, sorting.HybridMergeSort(got, 0, hi, th))
		assert.Equal(t, viaMerge, got, "threshold=%d", th)
	}
}

// TestDuplicatesAndNegatives covers multiset preservation with repeats.
func TestDuplicatesAndNegatives(t *testing.T) {
	in := []int{3, -1, 3, 0, -1, 3, 2, -7, 0}
	want := []int{-7, -1, -1, 0, 0, 2, 3, 3, 3}

	a := clone(in)
	sorting.Sort(a)
	assert.Equal(t, want, a)

	b := clone(in)
	sorting.HybridSort(b, 4)
	assert.Equal(t, want, b)
}

// TestEmptyAndSingle checks that degenerate ranges are accepted no-ops.
func TestEmptyAndSingle(t *testing.T) {
	var empty []int
	assert.NoError(t, sorting.MergeSort(empty, 0, -1))
	assert.NoError(t, sorting.HybridMergeSort(empty, 0, -1, 10))
	assert.NoError(t, sorting.InsertionSort(empty, 0, -1))
	sorting.Sort(empty)
	sorting.HybridSort(empty, 0)

	one := []int{42}
	assert.NoError(t, sorting.MergeSort(one, 0, 0))
	assert.Equal(t, []int{42}, one)
}

// TestIndexOutOfRange verifies fail-fast bounds checking without mutation.
func TestIndexOutOfRange(t *testing.T) {
	cases := []struct {
		name   string
		lo, hi int
	}{
		{"hi past end", 0, 6},
		{"negative lo", -1, 3},
		{"both out", 10, 20},
	}
	for _, tc := range cases {
		a := clone(scenario)
		assert.ErrorIs(t, sorting.MergeSort(a, tc.lo, tc.hi), sorting.ErrIndexOutOfRange, tc.name)
		assert.ErrorIs(t, sorting.HybridMergeSort(a, tc.lo, tc.hi, 3), sorting.ErrIndexOutOfRange, tc.name)
		assert.ErrorIs(t, sorting.InsertionSort(a, tc.lo, tc.hi), sorting.ErrIndexOutOfRange, tc.name)
		assert.Equal(t, scenario, a, "%s: slice must be untouched", tc.name)
	}
}
