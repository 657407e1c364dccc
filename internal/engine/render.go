package engine

import (
	"fmt"

	"snake-engine/internal/core"
)

// Render draws the game scene (map, food, snake, particles, HUD and
// overlays) into the screen buffer, centered when the terminal is larger
// than the arena. Menu, game-over and leaderboard chrome belong to the
// platform layer. The engine never depends on rendering succeeding.
func (e *Engine) Render(dst *core.Screen) {
	if e.scene != SceneGame && e.scene != SceneGameOver {
		return
	}

	ox := (dst.Width() - GridWidth) / 2
	oy := (dst.Height() - GridHeight) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}

	// Walls
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			if e.grid.Wall(x, y) {
				dst.SetCell(ox+x, oy+y, '█', core.ColorGray)
			}
		}
	}

	// Food
	if food := e.sim.Food(); food.X >= 0 {
		dst.SetCell(ox+food.X, oy+food.Y, '♦', core.ColorBrightRed)
	}

	// Snake: bright head, shaded body; everything red while dashing.
	for i := 0; i < e.sim.Len(); i++ {
		seg := e.sim.Segment(i)
		color := e.sim.Theme()
		glyph := '▒'
		if i == 0 {
			glyph = '█'
			color = brighten(color)
		}
		if e.dashing {
			color = core.ColorBrightRed
		}
		dst.SetCell(ox+seg.X, oy+seg.Y, glyph, color)
	}

	// Particles are not bounds-clamped; the screen clips them.
	e.particles.Each(func(p Particle) {
		dst.SetCell(ox+p.Pos.X, oy+p.Pos.Y, p.Glyph, p.Color)
	})

	e.renderHUD(dst, ox, oy)

	if !e.started && e.scene == SceneGame {
		dst.DrawText(ox+GridWidth/2-11, oy+GridHeight/2-5, "PRESS ARROWS TO START", core.ColorBrightWhite)
	}
	if e.paused {
		dst.DrawText(ox+GridWidth/2-4, oy+GridHeight/2-5, "PAUSED", core.ColorBrightYellow)
	}
}

// renderHUD draws the status line over the top border plus the combo bar.
func (e *Engine) renderHUD(dst *core.Screen, ox, oy int) {
	dash := "OFF"
	if e.dashing {
		dash = "ON"
	}
	hud := fmt.Sprintf(" SCORE: %d | COMBO: x%d | DASH: %s ", e.sim.Score(), e.combo.Multiplier, dash)
	dst.DrawText(ox+2, oy, hud, core.ColorBrightWhite)

	// Combo timer bar while a multiplier is live.
	if e.combo.Multiplier > 1 {
		dst.DrawHLine(ox+2, oy+1, e.combo.Timer/2, '▀', core.ColorYellow)
	}

	if e.debug {
		head := e.sim.Head()
		dbg := fmt.Sprintf("TICK: %d | X:%d Y:%d", e.tick, head.X, head.Y)
		dst.DrawText(ox+GridWidth-25, oy, dbg, core.ColorGreen)
	}
}

// brighten maps a theme tier to its bright variant for the head cell.
func brighten(c core.Color) core.Color {
	switch c {
	case core.ColorGreen:
		return core.ColorBrightGreen
	case core.ColorYellow:
		return core.ColorBrightYellow
	case core.ColorCyan:
		return core.ColorBrightCyan
	case core.ColorMagenta:
		return core.ColorBrightMagenta
	}
	return c
}
