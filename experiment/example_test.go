package experiment_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/sortlab/experiment"
	"github.com/katalvlaran/sortlab/sequence"
	"github.com/katalvlaran/sortlab/sorting"
)

// fixedClock makes every timed run last exactly step.
type fixedClock struct {
	now  time.Time
	step time.Duration
	odd  bool
}

func (c *fixedClock) Now() time.Time {
	if c.odd {
		c.now = c.now.Add(c.step)
	}
	c.odd = !c.odd

	return c.now
}

// ExampleRunner_Run measures merge sort on reverse-sorted input. A fixed
// clock stands in for real timings so the output is stable.
func ExampleRunner_Run() {
	r := experiment.NewRunner(experiment.WithClock(&fixedClock{step: 120 * time.Microsecond}))
	gen := sequence.NewGenerator(sequence.WithSeed(42))

	series, err := r.Run([]int{10, 100, 1000}, sequence.ReverseSortedDist(), sorting.Merge(), gen)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, m := range series {
		fmt.Printf("%d\t%dµs\n", m.Size, m.MeanMicros)
	}
	// Output:
	// 10	120µs
	// 100	120µs
	// 1000	120µs
}
