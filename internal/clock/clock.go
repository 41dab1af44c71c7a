// Package clock owns simulated time: a monotonically increasing tick
// counter, a step size scaling ticks to simulated days, and a running flag.
package clock

import "sync/atomic"

// Clock is the simulation clock. Mutation belongs to the simulation
// goroutine; the fields are atomics so other goroutines (connection
// handshakes, broadcasters) may read concurrently.
type Clock struct {
	tick    atomic.Uint64
	step    atomic.Uint64
	running atomic.Bool
}

// New returns a paused clock at tick 0 with the given step size. A zero
// step size is coerced to 1.
func New(step uint64) *Clock {
	if step == 0 {
		step = 1
	}
	c := &Clock{}
	c.step.Store(step)
	return c
}

// Advance increments the tick counter when the clock is running. While
// paused, simulated time does not move.
func (c *Clock) Advance() {
	if c.running.Load() {
		c.tick.Add(1)
	}
}

// Tick returns the current tick counter.
func (c *Clock) Tick() uint64 {
	return c.tick.Load()
}

// SetTick overwrites the tick counter. Used by replicas applying an
// authoritative update; the authoritative peer only ever advances.
func (c *Clock) SetTick(t uint64) {
	c.tick.Store(t)
}

// Step returns the step size in simulated days per tick.
func (c *Clock) Step() uint64 {
	return c.step.Load()
}

// SetStep changes the step size, effective immediately. A zero value is
// rejected, leaving the current step in place.
func (c *Clock) SetStep(step uint64) {
	if step > 0 {
		c.step.Store(step)
	}
}

// Running reports whether simulated time advances on the next tick.
func (c *Clock) Running() bool {
	return c.running.Load()
}

// SetRunning sets the running flag, effective on the next tick boundary.
func (c *Clock) SetRunning(running bool) {
	c.running.Store(running)
}

// Toggle flips the running flag and returns the new value. Only the
// simulation goroutine toggles, so load-then-store does not race another
// writer.
func (c *Clock) Toggle() bool {
	running := !c.running.Load()
	c.running.Store(running)
	return running
}

// TimeDays returns the simulated time in days: tick × step size.
func (c *Clock) TimeDays() float64 {
	return float64(c.tick.Load()) * float64(c.step.Load())
}
