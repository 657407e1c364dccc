package engine

import (
	"math/rand"

	"snake-engine/internal/core"
)

// ParticleCap is the fixed pool size. Exhaustion is not an error: bursts
// that do not fit are partially fulfilled.
const ParticleCap = 200

// Particle is a short-lived visual effect cell. Positions are not clamped
// to the grid; the renderer simply clips whatever drifts off screen.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Life  int // Ticks remaining; <= 0 means the slot is inert
	Glyph rune
	Color core.Color
}

// ParticleField is a fixed-capacity pool of particles advanced once per
// logical tick. Slots whose life has run out are reused by later bursts.
type ParticleField struct {
	pool    [ParticleCap]Particle
	rng     *rand.Rand
	lifeMin int
	lifeMax int // exclusive
}

// NewParticleField creates a pool whose particles live [lifeMin, lifeMax)
// ticks.
func NewParticleField(lifeMin, lifeMax int) ParticleField {
	return ParticleField{
		lifeMin: lifeMin,
		lifeMax: lifeMax,
	}
}

// Reset clears every slot and installs the RNG used for spawn randomness.
func (f *ParticleField) Reset(rng *rand.Rand) {
	f.rng = rng
	for i := range f.pool {
		f.pool[i] = Particle{}
	}
}

// SpawnBurst fills up to count inert slots with particles seeded at cell.
// Velocities are small integer jitters in {-1,0,1}; glyphs alternate
// between '*' and '+'. Fewer inert slots than count is silent partial
// fulfillment.
func (f *ParticleField) SpawnBurst(cell core.Vec2, count int, color core.Color) {
	for i := range f.pool {
		if count <= 0 {
			return
		}
		if f.pool[i].Life > 0 {
			continue
		}
		glyph := '*'
		if f.rng.Intn(2) == 0 {
			glyph = '+'
		}
		f.pool[i] = Particle{
			Pos:   cell,
			Vel:   core.Vec2{X: f.rng.Intn(3) - 1, Y: f.rng.Intn(3) - 1},
			Life:  f.lifeMin + f.rng.Intn(f.lifeMax-f.lifeMin),
			Glyph: glyph,
			Color: color,
		}
		count--
	}
}

// Advance integrates every live particle by one tick. Particles reaching
// zero life become inert and available for reuse on the next spawn.
func (f *ParticleField) Advance() {
	for i := range f.pool {
		if f.pool[i].Life > 0 {
			f.pool[i].Pos = f.pool[i].Pos.Add(f.pool[i].Vel)
			f.pool[i].Life--
		}
	}
}

// Live returns the number of particles still alive.
func (f *ParticleField) Live() int {
	n := 0
	for i := range f.pool {
		if f.pool[i].Life > 0 {
			n++
		}
	}
	return n
}

// Each calls fn for every live particle, in pool order.
func (f *ParticleField) Each(fn func(Particle)) {
	for i := range f.pool {
		if f.pool[i].Life > 0 {
			fn(f.pool[i])
		}
	}
}
