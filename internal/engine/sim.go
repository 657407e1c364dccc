package engine

import (
	"math/rand"

	"snake-engine/internal/config"
	"snake-engine/internal/core"
)

// Snake body limits. The body lives in a fixed arena-style array with an
// explicit length, preserving the bounded-memory guarantee.
const (
	MaxSnakeLen     = 2048
	InitialSnakeLen = 4
)

// CollisionCause pins the collision precedence: a move that is both
// out of bounds and into a wall is always reported as out of bounds.
type CollisionCause int

const (
	CauseNone CollisionCause = iota
	CauseOutOfBounds
	CauseWall
	CauseSelf
)

func (c CollisionCause) String() string {
	switch c {
	case CauseOutOfBounds:
		return "out_of_bounds"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// TickResult reports what one logical tick did.
type TickResult struct {
	Collided bool
	Cause    CollisionCause
	Ate      bool
	Points   int // Score delta for this tick
}

// Sim owns the snake body and the food, and resolves one logical tick:
// consume at most one queued heading, advance, collide or move, eat, grow.
// It holds a read-only view of the wall grid and drives the combo and
// particle side effects on eat events.
type Sim struct {
	body        [MaxSnakeLen]core.Vec2
	length      int
	dir         core.Vec2
	growPending int
	theme       core.Color

	food     core.Vec2
	score    int
	collided bool

	grid      *Grid
	queue     *InputQueue
	combo     *Combo
	particles *ParticleField
	rng       *rand.Rand

	scoring   config.ScoringConfig
	particleC config.ParticlesConfig
}

// NewSim wires the simulation to its collaborators. The grid is consulted
// read-only; queue, combo and particles are mutated during ticks.
func NewSim(grid *Grid, queue *InputQueue, combo *Combo, particles *ParticleField,
	scoring config.ScoringConfig, particleC config.ParticlesConfig) Sim {
	return Sim{
		grid:      grid,
		queue:     queue,
		combo:     combo,
		particles: particles,
		scoring:   scoring,
		particleC: particleC,
	}
}

// Reset spawns the snake at center heading right, body extending left,
// and places the first food on a free cell.
func (s *Sim) Reset(rng *rand.Rand, center core.Vec2) {
	s.rng = rng
	s.length = InitialSnakeLen
	s.dir = core.DirRight
	s.growPending = 0
	s.theme = core.ColorGreen
	s.score = 0
	s.collided = false

	for i := 0; i < s.length; i++ {
		s.body[i] = core.Vec2{X: center.X - i, Y: center.Y}
	}

	s.spawnFood()
}

// Head returns the current head cell.
func (s *Sim) Head() core.Vec2 {
	return s.body[0]
}

// Len returns the current body length.
func (s *Sim) Len() int {
	return s.length
}

// Segment returns the i-th body cell (0 = head).
func (s *Sim) Segment(i int) core.Vec2 {
	return s.body[i]
}

// Dir returns the live heading.
func (s *Sim) Dir() core.Vec2 {
	return s.dir
}

// SetDir sets the live heading directly. Used once, when the first
// accepted input both starts the round and seeds the queue.
func (s *Sim) SetDir(dir core.Vec2) {
	s.dir = dir
}

// Food returns the current food cell, or (-1,-1) if the grid is full.
func (s *Sim) Food() core.Vec2 {
	return s.food
}

// Score returns the accumulated score.
func (s *Sim) Score() int {
	return s.score
}

// Theme returns the snake's current color tier.
func (s *Sim) Theme() core.Color {
	return s.theme
}

// Collided reports whether the simulation reached its terminal state.
func (s *Sim) Collided() bool {
	return s.collided
}

// occupied reports whether any current body segment sits on the cell.
func (s *Sim) occupied(cell core.Vec2) bool {
	for i := 0; i < s.length; i++ {
		if s.body[i] == cell {
			return true
		}
	}
	return false
}

// Tick advances the snake by one logical step. Once collided it is a
// no-op; the owner is expected to move the round to game over.
func (s *Sim) Tick(dashing bool) TickResult {
	if s.collided {
		return TickResult{Collided: true}
	}

	// 1. Consume at most one queued heading; otherwise the previous
	// live heading persists.
	if dir, ok := s.queue.Dequeue(); ok {
		s.dir = dir
	}

	// 2-3. Candidate head and collision precedence:
	// out of bounds, then wall, then self (tail excluded, it vacates
	// this same tick).
	next := s.body[0].Add(s.dir)

	cause := CauseNone
	switch {
	case !s.grid.InBounds(next.X, next.Y):
		cause = CauseOutOfBounds
	case s.grid.Wall(next.X, next.Y):
		cause = CauseWall
	default:
		for i := 0; i < s.length-1; i++ {
			if s.body[i] == next {
				cause = CauseSelf
				break
			}
		}
	}

	if cause != CauseNone {
		s.collided = true
		return TickResult{Collided: true, Cause: cause}
	}

	// 4. Shift the body; the slot past the tail keeps the old tail so a
	// pending growth can claim it below.
	last := s.length
	if last >= MaxSnakeLen {
		last = MaxSnakeLen - 1
	}
	for i := last; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	s.body[0] = next

	result := TickResult{}

	// 5. Eat.
	if next == s.food {
		points := s.scoring.BasePoints * s.combo.Multiplier
		if dashing {
			points *= s.scoring.DashBonus
		}
		s.score += points
		s.growPending++
		s.combo.Eat()

		// Burst scales with the new multiplier but keeps the current
		// theme color; the tier upgrade lands on the next eat.
		burst := s.particleC.BurstBase + s.combo.Multiplier*s.particleC.BurstPerCombo
		s.particles.SpawnBurst(next, burst, s.theme)

		s.updateTheme()
		s.spawnFood()

		result.Ate = true
		result.Points = points
	}

	// 6. Apply pending growth by keeping the shifted-out tail.
	if s.growPending > 0 && s.length < MaxSnakeLen {
		s.length++
		s.growPending--
	}

	// 7. Combo decay, after any same-tick eat reset.
	s.combo.Decay()

	return result
}

// updateTheme upgrades the snake color by score thresholds. Score never
// decreases within a life, so the tier never downgrades.
func (s *Sim) updateTheme() {
	switch {
	case s.score > 500:
		s.theme = core.ColorMagenta
	case s.score > 250:
		s.theme = core.ColorCyan
	case s.score > 100:
		s.theme = core.ColorYellow
	}
}

// spawnFood relocates the food to a uniformly random cell that is neither
// wall nor body. Enumerating the free cells up front bounds the search:
// a fully occupied grid parks the food off-grid instead of spinning.
func (s *Sim) spawnFood() {
	var free []core.Vec2
	for y := 1; y < GridHeight-1; y++ {
		for x := 1; x < GridWidth-1; x++ {
			cell := core.Vec2{X: x, Y: y}
			if !s.grid.Wall(x, y) && !s.occupied(cell) {
				free = append(free, cell)
			}
		}
	}

	if len(free) == 0 {
		s.food = core.Vec2{X: -1, Y: -1}
		return
	}

	s.food = free[s.rng.Intn(len(free))]
}
