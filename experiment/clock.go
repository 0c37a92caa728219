package experiment

import "time"

// Clock supplies the start and end marks around a timed operation.
// The default wall clock reads time.Now, whose monotonic component makes
// Sub immune to wall-clock adjustments.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// WallClock returns the monotonic wall clock used by default.
func WallClock() Clock { return wallClock{} }

// Measure returns the time spent inside fn, and nothing else: callers must
// do their setup before calling Measure.
func Measure(clock Clock, fn func()) time.Duration {
	start := clock.Now()
	fn()

	return clock.Now().Sub(start)
}
