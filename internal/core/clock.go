package core

import "time"

// Clock supplies elapsed time in milliseconds.
type Clock interface {
	NowMillis() int64
}

// WallClock measures real elapsed time since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock starts a wall clock at the current instant.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// NowMillis returns milliseconds elapsed since the clock was created.
func (c *WallClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// StepClock derives time from a count of fixed simulation steps, so the
// simulation is unaffected by wall-clock jitter.
type StepClock struct {
	ticks    int64
	tickRate int
}

// NewStepClock creates a clock that advances 1/tickRate seconds per Advance.
func NewStepClock(tickRate int) *StepClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &StepClock{tickRate: tickRate}
}

// Advance moves the clock forward by one step.
func (c *StepClock) Advance() {
	c.ticks++
}

// Reset rewinds the clock to zero.
func (c *StepClock) Reset() {
	c.ticks = 0
}

// Ticks returns the number of steps taken.
func (c *StepClock) Ticks() int64 {
	return c.ticks
}

// NowMillis returns the simulated time in milliseconds.
func (c *StepClock) NowMillis() int64 {
	return c.ticks * 1000 / int64(c.tickRate)
}

// ManualClock is a Clock whose time is set explicitly.
type ManualClock struct {
	Millis int64
}

// NowMillis returns the current manual time.
func (c *ManualClock) NowMillis() int64 {
	return c.Millis
}

// Add advances the manual clock by d.
func (c *ManualClock) Add(d time.Duration) {
	c.Millis += d.Milliseconds()
}
