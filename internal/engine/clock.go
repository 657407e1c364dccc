package engine

// Clock converts variable real frame time into fixed logical steps.
// It accumulates elapsed seconds and drains them one interval at a time,
// so the simulation sees the same sequence of ticks whether it is driven
// by a smooth 60 Hz caller or a stalling one.
type Clock struct {
	accumulator    float64
	baseInterval   float64
	dashMultiplier float64
	maxDelta       float64
}

// NewClock creates a clock with the given base step interval in seconds.
// While dashing, the effective interval is baseInterval / dashMultiplier.
func NewClock(baseInterval, dashMultiplier, maxDelta float64) Clock {
	return Clock{
		baseInterval:   baseInterval,
		dashMultiplier: dashMultiplier,
		maxDelta:       maxDelta,
	}
}

// Reset discards any accumulated time.
func (c *Clock) Reset() {
	c.accumulator = 0
}

// Advance accumulates dt (clamped to maxDelta, preventing a catch-up
// spiral after a stall) and invokes tick once per drained interval.
// The interval is sampled once at entry: a dash toggle mid-drain takes
// effect on the next Advance call, not mid-loop.
// Returns the number of ticks that ran.
func (c *Clock) Advance(dt float64, dashing bool, tick func()) int {
	if dt > c.maxDelta {
		dt = c.maxDelta
	}
	c.accumulator += dt

	interval := c.baseInterval
	if dashing {
		interval /= c.dashMultiplier
	}

	ticks := 0
	for c.accumulator >= interval {
		tick()
		c.accumulator -= interval
		ticks++
	}
	return ticks
}
