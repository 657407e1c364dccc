// Package engine implements the deterministic snake simulation: the
// fixed-step clock, the buffered input queue, the movement and collision
// resolver, the combo economy and the particle field. It is pure logic;
// the platform layer owns the terminal, timing source and persistence.
package engine

import (
	"math/rand"

	"snake-engine/internal/config"
	"snake-engine/internal/core"
)

// Scene is the coarse state of a session.
type Scene string

const (
	SceneMenu     Scene = "menu"
	SceneGame     Scene = "game"
	SceneGameOver Scene = "game_over"
	SceneScores   Scene = "scores"
)

// Engine owns all mutable gameplay state and coordinates the subsystems.
// All methods run on a single goroutine; a tick, once started, completes
// (or transitions to game over) before control returns.
type Engine struct {
	cfg config.EngineConfig
	rng *rand.Rand

	scene Scene
	mode  Mode

	grid      Grid
	queue     InputQueue
	combo     Combo
	particles ParticleField
	sim       Sim
	clock     Clock

	tick     uint64
	started  bool
	paused   bool
	dashing  bool
	debug    bool
	maxCombo int
}

// New creates an engine in the menu scene. Call StartRound to play.
// The returned engine must not be copied: the simulation holds pointers
// into its sibling subsystems.
func New(cfg config.EngineConfig) *Engine {
	e := &Engine{
		cfg:       cfg,
		scene:     SceneMenu,
		mode:      ModeClassic,
		combo:     NewCombo(cfg.Scoring.ComboWindow, cfg.Scoring.MaxCombo),
		particles: NewParticleField(cfg.Particles.LifeMin, cfg.Particles.LifeMax),
		clock:     NewClock(cfg.Timing.BaseTickSeconds, cfg.Timing.DashMultiplier, cfg.Timing.MaxFrameDelta),
	}
	e.sim = NewSim(&e.grid, &e.queue, &e.combo, &e.particles, cfg.Scoring, cfg.Particles)
	return e
}

// StartRound generates a level for the chosen mode and resets every
// subsystem. The round stays dormant until the first accepted heading.
func (e *Engine) StartRound(mode Mode, seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
	e.mode = mode
	e.scene = SceneGame
	e.tick = 0
	e.started = false
	e.paused = false
	e.dashing = false
	e.maxCombo = 1

	spawn := core.Vec2{X: GridWidth / 2, Y: GridHeight / 2}

	e.grid.Generate(mode, e.rng, e.cfg.Level)
	e.grid.ClearSpawnArea(spawn, e.cfg.Level.SpawnClearRadius)

	e.queue.Reset()
	e.combo.Reset()
	e.particles.Reset(e.rng)
	e.sim.Reset(e.rng, spawn)
	e.clock.Reset()
}

// HandleHeading is the input-collection side of the queue contract: it
// applies the anti-reversal and anti-duplicate filter before enqueuing.
// The comparison heading is the most recently queued one, falling back to
// the live heading when the queue is empty. Returns whether the heading
// was accepted.
func (e *Engine) HandleHeading(dir core.Vec2) bool {
	if e.scene != SceneGame || dir.IsZero() {
		return false
	}

	// Press-to-start: the snake spawns heading right, so a left start
	// would reverse into its own body.
	if !e.started {
		if dir == core.DirLeft {
			return false
		}
		e.started = true
		e.sim.SetDir(dir)
		e.queue.Enqueue(dir)
		return true
	}

	last, ok := e.queue.PeekLast()
	if !ok {
		last = e.sim.Dir()
	}
	if dir.Opposite(last) || dir == last {
		return false
	}

	e.queue.Enqueue(dir)
	return true
}

// SetDashing updates the dash modifier sampled by the next Advance call.
func (e *Engine) SetDashing(on bool) {
	if e.scene == SceneGame {
		e.dashing = on
	}
}

// TogglePause flips the pause flag while in game.
func (e *Engine) TogglePause() {
	if e.scene == SceneGame {
		e.paused = !e.paused
	}
}

// ToggleDebug flips the debug overlay.
func (e *Engine) ToggleDebug() {
	e.debug = !e.debug
}

// Advance feeds real elapsed seconds to the fixed-step clock and drains
// whole logical ticks. The snake advances only while started and not
// paused; particles advance whenever the game scene is live. A collision
// flips the scene mid-drain, which stops the remaining intervals from
// simulating.
func (e *Engine) Advance(dt float64) {
	if e.scene != SceneGame {
		return
	}

	e.clock.Advance(dt, e.dashing, func() {
		if e.scene != SceneGame {
			return
		}

		if e.started && !e.paused {
			e.tick++
			res := e.sim.Tick(e.dashing)
			if res.Ate && e.combo.Multiplier > e.maxCombo {
				e.maxCombo = e.combo.Multiplier
			}
			if res.Collided {
				e.scene = SceneGameOver
				return
			}
		}

		e.particles.Advance()
	})
}

// ToMenu abandons the current round and returns to the menu.
func (e *Engine) ToMenu() {
	e.scene = SceneMenu
}

// ToScores moves to the leaderboard scene (after name entry).
func (e *Engine) ToScores() {
	e.scene = SceneScores
}

// Scene returns the current scene.
func (e *Engine) Scene() Scene {
	return e.scene
}

// Mode returns the level mode of the current/last round.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Score returns the current round score.
func (e *Engine) Score() int {
	return e.sim.Score()
}

// MaxCombo returns the highest multiplier reached this round.
func (e *Engine) MaxCombo() int {
	return e.maxCombo
}

// Started reports whether the first heading has been accepted.
func (e *Engine) Started() bool {
	return e.started
}

// Paused reports whether the round is paused.
func (e *Engine) Paused() bool {
	return e.paused
}

// Dashing reports whether the dash modifier is active.
func (e *Engine) Dashing() bool {
	return e.dashing
}
