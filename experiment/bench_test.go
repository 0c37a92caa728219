package experiment_test

import (
	"testing"

	"github.com/katalvlaran/sortlab/experiment"
	"github.com/katalvlaran/sortlab/sequence"
	"github.com/katalvlaran/sortlab/sorting"
)

// BenchmarkRunner_Overhead measures the protocol around a trivially cheap
// sort: generation, copies and clock reads.
func BenchmarkRunner_Overhead(b *testing.B) {
	r := experiment.NewRunner()
	gen := sequence.NewGenerator()
	noop := func([]int) {}
	sizes := []int{1_000}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.RunFunc(sizes, sequence.ReverseSortedDist(), "noop", noop, gen); err != nil {
			b.Fatalf("RunFunc failed: %v", err)
		}
	}
}

// BenchmarkRunner_HybridRandom runs the full protocol with hybrid sort.
func BenchmarkRunner_HybridRandom(b *testing.B) {
	r := experiment.NewRunner()
	gen := sequence.NewGenerator()
	sizes := []int{1_000, 5_000}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Run(sizes, sequence.UniformDist(), sorting.Hybrid(sorting.DefaultThreshold), gen); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}
