package engine

import "testing"

// Tests use power-of-two intervals (1/16s base) so the drained tick counts
// are exact regardless of float rounding. Production timing goes through
// the identical code path.

func newTestClock() Clock {
	return NewClock(0.0625, 2.0, 0.25)
}

func TestClockFixedStepDeterminism(t *testing.T) {
	// For any split of the same total elapsed time (with every chunk under
	// the clamp), the number of drained ticks is total / interval.
	splits := [][]float64{
		{0.25, 0.25, 0.25, 0.25},
		{0.125, 0.125, 0.125, 0.125, 0.125, 0.125, 0.125, 0.125},
		{0.0625, 0.0625, 0.0625, 0.0625, 0.0625, 0.0625, 0.0625, 0.0625,
			0.0625, 0.0625, 0.0625, 0.0625, 0.0625, 0.0625, 0.0625, 0.0625},
		{0.1875, 0.0625, 0.25, 0.25, 0.25},
	}

	for _, deltas := range splits {
		c := newTestClock()
		total := 0
		for _, dt := range deltas {
			total += c.Advance(dt, false, func() {})
		}
		if total != 16 {
			t.Errorf("split %v drained %d ticks, expected 16", deltas, total)
		}
	}
}

func TestClockZeroOrManyTicksPerFrame(t *testing.T) {
	c := newTestClock()

	if n := c.Advance(0.03125, false, func() {}); n != 0 {
		t.Errorf("short frame drained %d ticks, expected 0", n)
	}
	if n := c.Advance(0.25, false, func() {}); n != 4 {
		// 0.03125 + 0.25 accumulated, 4 whole intervals drain
		t.Errorf("long frame drained %d ticks, expected 4", n)
	}
}

func TestClockClampsDelta(t *testing.T) {
	c := newTestClock()

	// A 10-second stall is clamped to 0.25s: 4 ticks, not 160.
	if n := c.Advance(10.0, false, func() {}); n != 4 {
		t.Errorf("stalled frame drained %d ticks, expected 4", n)
	}
}

func TestClockDashHalvesInterval(t *testing.T) {
	c := newTestClock()

	if n := c.Advance(0.25, true, func() {}); n != 8 {
		t.Errorf("dash frame drained %d ticks, expected 8", n)
	}
}

func TestClockDashSampledAtAdvanceEntry(t *testing.T) {
	// The interval in effect is the one sampled at loop entry; toggling
	// dash becomes visible on the next Advance call.
	c := newTestClock()

	dash := false
	n := c.Advance(0.25, dash, func() { dash = true })
	if n != 4 {
		t.Errorf("toggle mid-drain drained %d ticks, expected 4 at the normal rate", n)
	}

	if n := c.Advance(0.25, dash, func() {}); n != 8 {
		t.Errorf("next frame drained %d ticks, expected 8 at the dash rate", n)
	}
}

func TestClockCarriesRemainder(t *testing.T) {
	c := newTestClock()

	c.Advance(0.03125, false, func() {})
	if n := c.Advance(0.03125, false, func() {}); n != 1 {
		t.Errorf("remainder not carried: drained %d ticks, expected 1", n)
	}
}

func TestClockReset(t *testing.T) {
	c := newTestClock()
	c.Advance(0.03125, false, func() {})
	c.Reset()
	if n := c.Advance(0.03125, false, func() {}); n != 0 {
		t.Errorf("Reset did not discard accumulated time: drained %d ticks", n)
	}
}
