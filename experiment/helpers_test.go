package experiment_test

import (
	"time"
)

// scriptedClock advances by steps[k] between the start and end mark of the
// k-th Measure call, cycling through steps.
type scriptedClock struct {
	now   time.Time
	steps []time.Duration
	calls int
}

func newScriptedClock(steps ...time.Duration) *scriptedClock {
	return &scriptedClock{now: time.Unix(1_700_000_000, 0), steps: steps}
}

func (c *scriptedClock) Now() time.Time {
	if c.calls%2 == 1 {
		c.now = c.now.Add(c.steps[(c.calls/2)%len(c.steps)])
	}
	c.calls++

	return c.now
}

// clone returns an independent copy of a.
func clone(a []int) []int {
	out := make([]int, len(a))
	copy(out, a)

	return out
}
