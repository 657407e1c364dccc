package engine

// Combo tracks the score multiplier earned by eating quickly.
// Each eat bumps the multiplier (capped) and rearms the decay window;
// once the window runs out without another eat the multiplier falls
// straight back to 1.
type Combo struct {
	Multiplier int
	Timer      int

	window int
	max    int
}

// NewCombo creates a combo tracker with the given decay window (in ticks)
// and multiplier cap.
func NewCombo(window, max int) Combo {
	return Combo{
		Multiplier: 1,
		window:     window,
		max:        max,
	}
}

// Reset returns the combo to its idle state.
func (c *Combo) Reset() {
	c.Multiplier = 1
	c.Timer = 0
}

// Eat registers an eat event: multiplier up (capped), window rearmed.
func (c *Combo) Eat() {
	c.Multiplier++
	if c.Multiplier > c.max {
		c.Multiplier = c.max
	}
	c.Timer = c.window
}

// Decay advances the decay window by one tick. It runs once per logical
// tick, after any same-tick Eat, so a fresh eat is never instantly decayed.
func (c *Combo) Decay() {
	if c.Timer > 0 {
		c.Timer--
		if c.Timer == 0 {
			c.Multiplier = 1
		}
	}
}
