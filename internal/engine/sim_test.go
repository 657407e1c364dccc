package engine

import (
	"math/rand"
	"testing"

	"snake-engine/internal/config"
	"snake-engine/internal/core"
)

// simHarness assembles a simulation with live collaborators, mirroring the
// wiring the engine does at round start.
type simHarness struct {
	grid      Grid
	queue     InputQueue
	combo     Combo
	particles ParticleField
	sim       Sim
	rng       *rand.Rand
}

func newSimHarness(seed int64, mode Mode) *simHarness {
	cfg := config.Default()
	h := &simHarness{
		combo:     NewCombo(cfg.Scoring.ComboWindow, cfg.Scoring.MaxCombo),
		particles: NewParticleField(cfg.Particles.LifeMin, cfg.Particles.LifeMax),
		rng:       rand.New(rand.NewSource(seed)),
	}
	h.sim = NewSim(&h.grid, &h.queue, &h.combo, &h.particles, cfg.Scoring, cfg.Particles)
	h.grid.Generate(mode, h.rng, cfg.Level)
	h.particles.Reset(h.rng)
	h.sim.Reset(h.rng, core.Vec2{X: GridWidth / 2, Y: GridHeight / 2})
	return h
}

// parkFood moves the food off-grid so movement tests run without eat events.
func (h *simHarness) parkFood() {
	h.sim.food = core.Vec2{X: -1, Y: -1}
}

func TestSimReset(t *testing.T) {
	h := newSimHarness(1, ModeClassic)

	if h.sim.Len() != InitialSnakeLen {
		t.Fatalf("Len() = %d, expected %d", h.sim.Len(), InitialSnakeLen)
	}
	if h.sim.Dir() != core.DirRight {
		t.Errorf("Dir() = %v, expected right", h.sim.Dir())
	}

	// Body extends left from the spawn cell.
	head := h.sim.Head()
	for i := 0; i < h.sim.Len(); i++ {
		want := core.Vec2{X: head.X - i, Y: head.Y}
		if h.sim.Segment(i) != want {
			t.Errorf("Segment(%d) = %v, expected %v", i, h.sim.Segment(i), want)
		}
	}

	food := h.sim.Food()
	if h.grid.Wall(food.X, food.Y) || h.sim.occupied(food) {
		t.Errorf("food spawned on an occupied cell %v", food)
	}
}

func TestSimPlainMove(t *testing.T) {
	h := newSimHarness(1, ModeClassic)
	h.parkFood()

	head := h.sim.Head()
	oldTail := h.sim.Segment(h.sim.Len() - 1)

	res := h.sim.Tick(false)

	if res.Collided || res.Ate || res.Points != 0 {
		t.Fatalf("plain move reported events: %+v", res)
	}
	if h.sim.Head() != head.Add(core.DirRight) {
		t.Errorf("head = %v, expected %v", h.sim.Head(), head.Add(core.DirRight))
	}
	if h.sim.Len() != InitialSnakeLen {
		t.Errorf("Len() = %d, a plain move must not grow", h.sim.Len())
	}
	if h.sim.occupied(oldTail) {
		t.Errorf("old tail cell %v not vacated", oldTail)
	}
	if h.sim.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", h.sim.Score())
	}
}

func TestSimConsumesOneQueuedHeadingPerTick(t *testing.T) {
	h := newSimHarness(1, ModeClassic)
	h.parkFood()

	h.queue.Enqueue(core.DirUp)
	h.queue.Enqueue(core.DirRight)

	h.sim.Tick(false)

	if h.sim.Dir() != core.DirUp {
		t.Errorf("Dir() = %v, expected up after one tick", h.sim.Dir())
	}
	if h.queue.Len() != 1 {
		t.Errorf("queue len = %d, a tick consumes exactly one heading", h.queue.Len())
	}
}

func TestSimTailChaseLegal(t *testing.T) {
	h := newSimHarness(1, ModeClassic)
	h.parkFood()

	// A 2x2 loop: the candidate head cell is the current tail, which
	// vacates this same tick.
	h.sim.length = 4
	h.sim.body[0] = core.Vec2{X: 10, Y: 10}
	h.sim.body[1] = core.Vec2{X: 10, Y: 11}
	h.sim.body[2] = core.Vec2{X: 11, Y: 11}
	h.sim.body[3] = core.Vec2{X: 11, Y: 10}
	h.sim.dir = core.DirRight

	res := h.sim.Tick(false)

	if res.Collided {
		t.Fatalf("tail chase reported a collision: %v", res.Cause)
	}
	if h.sim.Head() != (core.Vec2{X: 11, Y: 10}) {
		t.Errorf("head = %v, expected the vacated tail cell", h.sim.Head())
	}
}

func TestSimSelfCollision(t *testing.T) {
	h := newSimHarness(1, ModeClassic)
	h.parkFood()

	// Same loop shape but with one extra segment, so the candidate cell is
	// body, not tail.
	h.sim.length = 5
	h.sim.body[0] = core.Vec2{X: 10, Y: 10}
	h.sim.body[1] = core.Vec2{X: 10, Y: 11}
	h.sim.body[2] = core.Vec2{X: 11, Y: 11}
	h.sim.body[3] = core.Vec2{X: 11, Y: 10}
	h.sim.body[4] = core.Vec2{X: 12, Y: 10}
	h.sim.dir = core.DirRight

	res := h.sim.Tick(false)

	if !res.Collided || res.Cause != CauseSelf {
		t.Fatalf("expected self collision, got %+v", res)
	}
	if !h.sim.Collided() {
		t.Error("Collided() = false after a fatal tick")
	}

	// The simulation stays terminal.
	if res := h.sim.Tick(false); !res.Collided {
		t.Error("tick after collision must remain terminal")
	}
}

func TestSimWallCollision(t *testing.T) {
	h := newSimHarness(1, ModeClassic)
	h.parkFood()

	h.sim.body[0] = core.Vec2{X: 1, Y: 5}
	h.sim.body[1] = core.Vec2{X: 2, Y: 5}
	h.sim.body[2] = core.Vec2{X: 3, Y: 5}
	h.sim.body[3] = core.Vec2{X: 4, Y: 5}
	h.sim.dir = core.DirLeft

	res := h.sim.Tick(false)

	if !res.Collided || res.Cause != CauseWall {
		t.Fatalf("expected wall collision, got %+v", res)
	}
}

func TestSimOutOfBoundsPrecedesWall(t *testing.T) {
	h := newSimHarness(1, ModeClassic)
	h.parkFood()

	// An off-grid candidate also reads as wall; the cause must still be
	// out of bounds.
	h.sim.body[0] = core.Vec2{X: 0, Y: 5}
	h.sim.body[1] = core.Vec2{X: 1, Y: 5}
	h.sim.body[2] = core.Vec2{X: 2, Y: 5}
	h.sim.body[3] = core.Vec2{X: 3, Y: 5}
	h.sim.dir = core.DirLeft

	res := h.sim.Tick(false)

	if !res.Collided || res.Cause != CauseOutOfBounds {
		t.Fatalf("expected out-of-bounds collision, got %+v", res)
	}
}

func TestSimEat(t *testing.T) {
	h := newSimHarness(1, ModeClassic)

	ahead := h.sim.Head().Add(core.DirRight)
	h.sim.food = ahead

	res := h.sim.Tick(false)

	if !res.Ate {
		t.Fatal("expected an eat event")
	}
	if res.Points != 10 || h.sim.Score() != 10 {
		t.Errorf("points = %d score = %d, expected 10/10 at multiplier 1", res.Points, h.sim.Score())
	}
	if h.sim.Len() != InitialSnakeLen+1 {
		t.Errorf("Len() = %d, expected growth by one", h.sim.Len())
	}
	if h.combo.Multiplier != 2 {
		t.Errorf("multiplier = %d, expected 2", h.combo.Multiplier)
	}
	if h.combo.Timer != 59 {
		t.Errorf("timer = %d, expected 59 (window minus the same-tick decay)", h.combo.Timer)
	}

	// Burst scales with the refreshed multiplier.
	if live := h.particles.Live(); live != 10+2*5 {
		t.Errorf("Live() = %d, expected 20 burst particles", live)
	}

	// The food relocated to a free cell.
	food := h.sim.Food()
	if food == ahead {
		t.Error("food did not respawn")
	}
	if h.grid.Wall(food.X, food.Y) || h.sim.occupied(food) {
		t.Errorf("food respawned on an occupied cell %v", food)
	}
}

func TestSimDashDoublesPoints(t *testing.T) {
	h := newSimHarness(1, ModeClassic)
	h.sim.food = h.sim.Head().Add(core.DirRight)

	res := h.sim.Tick(true)

	if !res.Ate || res.Points != 20 {
		t.Errorf("dash eat = %+v, expected 20 points", res)
	}
}

func TestSimComboScoring(t *testing.T) {
	h := newSimHarness(1, ModeClassic)

	// Consecutive eats within the window: 10, 20, 30, 40, then capped 40.
	want := []int{10, 20, 30, 40, 40}
	total := 0
	for i, expected := range want {
		h.sim.food = h.sim.Head().Add(core.DirRight)
		res := h.sim.Tick(false)
		if !res.Ate {
			t.Fatalf("eat %d did not land", i)
		}
		if res.Points != expected {
			t.Errorf("eat %d = %d points, expected %d", i, res.Points, expected)
		}
		total += expected
	}
	if h.sim.Score() != total {
		t.Errorf("Score() = %d, expected %d", h.sim.Score(), total)
	}
}

func TestSimThemeTiers(t *testing.T) {
	h := newSimHarness(1, ModeClassic)

	cases := []struct {
		score int
		want  core.Color
	}{
		{0, core.ColorGreen},
		{100, core.ColorGreen},
		{101, core.ColorYellow},
		{250, core.ColorYellow},
		{251, core.ColorCyan},
		{500, core.ColorCyan},
		{501, core.ColorMagenta},
	}

	for _, c := range cases {
		h.sim.score = c.score
		h.sim.updateTheme()
		if h.sim.Theme() != c.want {
			t.Errorf("score %d: theme = %v, expected %v", c.score, h.sim.Theme(), c.want)
		}
	}
}

func TestSimGrowthCappedAtMaxLen(t *testing.T) {
	h := newSimHarness(1, ModeClassic)
	h.sim.length = MaxSnakeLen
	h.sim.food = h.sim.Head().Add(core.DirRight)

	res := h.sim.Tick(false)

	if !res.Ate {
		t.Fatal("expected an eat event")
	}
	if h.sim.Len() != MaxSnakeLen {
		t.Errorf("Len() = %d, expected the cap %d", h.sim.Len(), MaxSnakeLen)
	}
}

func TestSimFoodOffGridWhenFull(t *testing.T) {
	h := newSimHarness(1, ModeClassic)

	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			h.grid.set(x, y, true)
		}
	}

	h.sim.spawnFood()

	if h.sim.Food() != (core.Vec2{X: -1, Y: -1}) {
		t.Errorf("Food() = %v, expected the off-grid sentinel", h.sim.Food())
	}
}

func TestSimEatExclusivity(t *testing.T) {
	// Across seeds, every tick yields at most one eat: the score moves only
	// by that tick's points, length grows by at most one, and the food is
	// never left on a wall or body cell.
	for seed := int64(0); seed < 20; seed++ {
		h := newSimHarness(seed, ModeClassic)

		for step := 0; step < 37; step++ {
			preScore := h.sim.Score()
			preLen := h.sim.Len()
			preFood := h.sim.Food()
			wasAhead := preFood == h.sim.Head().Add(h.sim.Dir())

			res := h.sim.Tick(false)
			if res.Collided {
				break
			}

			if res.Ate != wasAhead {
				t.Fatalf("seed %d step %d: Ate = %v, food ahead = %v", seed, step, res.Ate, wasAhead)
			}
			if h.sim.Score() != preScore+res.Points {
				t.Fatalf("seed %d step %d: score moved by %d, points say %d",
					seed, step, h.sim.Score()-preScore, res.Points)
			}
			grew := h.sim.Len() - preLen
			if grew < 0 || grew > 1 || (grew == 1 && !res.Ate) {
				t.Fatalf("seed %d step %d: length moved by %d with Ate=%v", seed, step, grew, res.Ate)
			}

			food := h.sim.Food()
			if food.X >= 0 && (h.grid.Wall(food.X, food.Y) || h.sim.occupied(food)) {
				t.Fatalf("seed %d step %d: food on occupied cell %v", seed, step, food)
			}
		}
	}
}
