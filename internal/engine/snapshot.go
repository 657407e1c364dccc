package engine

// Snapshot captures the observable simulation state for determinism
// testing and debugging.
type Snapshot struct {
	Tick          uint64
	Scene         Scene
	Mode          Mode
	Score         int
	Combo         int
	ComboTimer    int
	MaxCombo      int
	SnakeLen      int
	HeadX         int
	HeadY         int
	Dir           string
	FoodX         int
	FoodY         int
	Started       bool
	Paused        bool
	Dashing       bool
	LiveParticles int
}

// Snapshot returns the current state for determinism verification.
func (e *Engine) Snapshot() Snapshot {
	head := e.sim.Head()
	food := e.sim.Food()

	return Snapshot{
		Tick:          e.tick,
		Scene:         e.scene,
		Mode:          e.mode,
		Score:         e.sim.Score(),
		Combo:         e.combo.Multiplier,
		ComboTimer:    e.combo.Timer,
		MaxCombo:      e.maxCombo,
		SnakeLen:      e.sim.Len(),
		HeadX:         head.X,
		HeadY:         head.Y,
		Dir:           e.sim.Dir().String(),
		FoodX:         food.X,
		FoodY:         food.Y,
		Started:       e.started,
		Paused:        e.paused,
		Dashing:       e.dashing,
		LiveParticles: e.particles.Live(),
	}
}
