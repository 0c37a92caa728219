package experiment

import "time"

// Measurement is one (size, mean time) entry of a Series.
type Measurement struct {
	Size int
	// MeanMicros is the truncating mean of the per-run whole microseconds.
	MeanMicros int64
}

// Mean returns MeanMicros as a time.Duration.
func (m Measurement) Mean() time.Duration {
	return time.Duration(m.MeanMicros) * time.Microsecond
}

// Series holds one Measurement per requested size, in request order.
type Series []Measurement

// Sizes projects the size column.
func (s Series) Sizes() []int {
	out := make([]int, len(s))
	for i, m := range s {
		out[i] = m.Size
	}

	return out
}

// Micros projects the mean-time column in microseconds.
func (s Series) Micros() []int64 {
	out := make([]int64, len(s))
	for i, m := range s {
		out[i] = m.MeanMicros
	}

	return out
}
