package sequence

import (
	"math/rand"
)

// Generator produces integer sequences from a single seeded stream.
//
// All three generation methods share the stream, so the values returned by
// any call depend on every earlier call on the same Generator. That shared
// state is what makes a whole benchmark session reproducible from one seed.
type Generator struct {
	rng *rand.Rand
	min int
	max int
}

// NewGenerator resolves opts and seeds the stream exactly once.
// Without options it behaves as NewGenerator(WithSeed(DefaultSeed)).
func NewGenerator(opts ...Option) *Generator {
	cfg := newGeneratorConfig(opts...)

	return &Generator{rng: cfg.rng, min: cfg.min, max: cfg.max}
}

// Range reports the inclusive bounds of Uniform draws.
func (g *Generator) Range() (lo, hi int) { return g.min, g.max }

// Random returns size independent draws from [min, max].
// The stream advances by exactly size draws.
//
// Complexity: O(size) time and memory.
func (g *Generator) Random(size int) ([]int, error) {
	if size < 0 {
		return nil, wrapf(methodRandom, ErrNegativeSize, "size %d", size)
	}
	span := g.max - g.min + 1
	out := make([]int, size)
	for i := range out {
		out[i] = g.min + g.rng.Intn(span)
	}

	return out, nil
}

// ReverseSorted returns [size, size-1, ..., 1]. No randomness is consumed;
// size 0 yields an empty, non-nil slice.
//
// Complexity: O(size) time and memory.
func (g *Generator) ReverseSorted(size int) ([]int, error) {
	if size < 0 {
		return nil, wrapf(methodReverseSorted, ErrNegativeSize, "size %d", size)
	}
	out := make([]int, size)
	for i := range out {
		out[i] = size - i
	}

	return out, nil
}

// AlmostSorted returns [0, 1, ..., size-1] after swaps transpositions of two
// indices drawn uniformly from [0, size-1]. Self-swaps (i1 == i2) count
// toward swaps and leave the array unchanged, so the result may be closer to
// sorted than swaps suggests.
//
// Exactly 2*swaps draws are consumed regardless of size. For size 0 there is
// no valid index: the draws are taken and discarded.
//
// Complexity: O(size + swaps) time, O(size) memory.
func (g *Generator) AlmostSorted(size, swaps int) ([]int, error) {
	if size < 0 {
		return nil, wrapf(methodAlmostSorted, ErrNegativeSize, "size %d", size)
	}
	if swaps < 0 {
		return nil, wrapf(methodAlmostSorted, ErrNegativeSwaps, "swaps %d", swaps)
	}
	out := make([]int, size)
	for i := range out {
		out[i] = i
	}
	for s := 0; s < swaps; s++ {
		i1 := g.index(size)
		i2 := g.index(size)
		if size == 0 {
			continue
		}
		out[i1], out[i2] = out[i2], out[i1]
	}

	return out, nil
}

// Generate dispatches on d.Kind. Unknown kinds fail with
// ErrUnknownDistribution.
func (g *Generator) Generate(d Distribution, size int) ([]int, error) {
	switch d.Kind {
	case Uniform:
		return g.Random(size)
	case ReverseSorted:
		return g.ReverseSorted(size)
	case AlmostSorted:
		return g.AlmostSorted(size, d.Swaps)
	default:
		return nil, wrapf(methodGenerate, ErrUnknownDistribution, "kind %d", int(d.Kind))
	}
}

// index draws one uniform index in [0, n-1]; for n == 0 it still consumes a
// draw and returns 0.
func (g *Generator) index(n int) int {
	if n <= 0 {
		g.rng.Int63()

		return 0
	}

	return g.rng.Intn(n)
}
