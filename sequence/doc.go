// Package sequence generates reproducible integer test arrays under a small,
// closed set of input distributions.
//
// 🚀 What is it for?
//
//	Sort benchmarks are only comparable when every competitor sees the same
//	input. A Generator owns one seeded *rand.Rand and derives all arrays of a
//	session from that single stream, so two generators built with the same
//	seed and driven by the same call sequence yield identical arrays.
//
// ✨ Distributions:
//   - Uniform       — independent draws from an inclusive range ([0,6000] by default)
//   - ReverseSorted — [n, n-1, ..., 1], no randomness consumed
//   - AlmostSorted  — [0, 1, ..., n-1] with k random index-pair transpositions
//
// ⚙️ Usage:
//
//	gen := sequence.NewGenerator(sequence.WithSeed(42))
//	base, err := gen.Generate(sequence.AlmostSortedWith(5), 1000)
//
// Determinism policy:
//   - The stream is seeded once in NewGenerator and never reseeded.
//   - Random(n) advances the stream by exactly n draws.
//   - AlmostSorted(n, k) advances it by exactly 2k draws, also for n ≤ 1
//     where every transposition is a self-swap.
//
// A Generator is not safe for concurrent use; benchmarks drive it sequentially.
package sequence
