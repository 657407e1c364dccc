package engine

import (
	"math/rand"

	"snake-engine/internal/config"
	"snake-engine/internal/core"
)

// The arena is a fixed-size grid; configurable dimensions are a non-goal.
const (
	GridWidth  = 80
	GridHeight = 30
)

// Mode selects the level generation style.
type Mode string

const (
	ModeClassic   Mode = "classic"   // Open arena, border walls only
	ModeObstacles Mode = "obstacles" // Randomly placed wall blocks
)

// Grid is the wall occupancy map. The border is always wall; interior
// cells are mutated only during Generate/ClearSpawnArea at round reset.
type Grid struct {
	cells [GridWidth * GridHeight]bool
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < GridWidth && y >= 0 && y < GridHeight
}

// Wall reports whether the cell at (x, y) is a wall.
// Out-of-bounds cells are treated as wall.
func (g *Grid) Wall(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.cells[y*GridWidth+x]
}

func (g *Grid) set(x, y int, wall bool) {
	g.cells[y*GridWidth+x] = wall
}

// Generate clears the grid and marks the full outer border as wall.
// In obstacle mode it additionally scatters randomly sized wall blocks at
// random interior positions; blocks may overlap, which is harmless.
func (g *Grid) Generate(mode Mode, rng *rand.Rand, cfg config.LevelConfig) {
	for i := range g.cells {
		g.cells[i] = false
	}

	for x := 0; x < GridWidth; x++ {
		g.set(x, 0, true)
		g.set(x, GridHeight-1, true)
	}
	for y := 0; y < GridHeight; y++ {
		g.set(0, y, true)
		g.set(GridWidth-1, y, true)
	}

	if mode != ModeObstacles {
		return
	}

	count := cfg.ObstacleCountMin + rng.Intn(cfg.ObstacleCountMax-cfg.ObstacleCountMin+1)
	for i := 0; i < count; i++ {
		w := cfg.BlockWidthMin + rng.Intn(cfg.BlockWidthMax-cfg.BlockWidthMin+1)
		h := cfg.BlockHeightMin + rng.Intn(cfg.BlockHeightMax-cfg.BlockHeightMin+1)
		x := 2 + rng.Intn(GridWidth-w-2)
		y := 2 + rng.Intn(GridHeight-h-2)

		for bx := 0; bx < w; bx++ {
			for by := 0; by < h; by++ {
				g.set(x+bx, y+by, true)
			}
		}
	}
}

// ClearSpawnArea empties a (2*radius+1) square centered on the spawn cell
// so the snake always has a playable starting region. The border wall is
// left intact. This is a reset-time post-processing step, not part of
// Generate itself.
func (g *Grid) ClearSpawnArea(center core.Vec2, radius int) {
	for x := center.X - radius; x <= center.X+radius; x++ {
		for y := center.Y - radius; y <= center.Y+radius; y++ {
			if x > 0 && x < GridWidth-1 && y > 0 && y < GridHeight-1 {
				g.set(x, y, false)
			}
		}
	}
}
