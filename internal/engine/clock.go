package engine

import (
	"time"
)

// Clock supplies monotonic timestamps in seconds. The zero point is
// arbitrary; only differences matter.
type Clock interface {
	Now() float64
}

type realClock struct {
	start time.Time
}

// NewRealClock returns a clock measuring wall time from now.
func NewRealClock() Clock {
	return &realClock{start: time.Now()}
}

func (c *realClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock is advanced by hand, for tests and scripted runs.
type ManualClock struct {
	Current float64
}

func (c *ManualClock) Now() float64 {
	return c.Current
}

// Advance moves the clock forward by the given seconds.
func (c *ManualClock) Advance(seconds float64) {
	c.Current += seconds
}
