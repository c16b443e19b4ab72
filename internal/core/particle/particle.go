// Package particle implements the short-lived "pop" particles emitted when
// letters are selected and words are completed.
package particle

import (
	"image/color"
	"math/rand"
)

const (
	// Gravity is added to the vertical velocity every tick.
	Gravity = 0.2
	// DecayRate is subtracted from Life every tick.
	DecayRate = 0.02
)

// Palette holds the colours a burst draws from.
var Palette = []color.RGBA{
	{255, 215, 0, 255},  // gold
	{255, 165, 0, 255},  // orange
	{255, 99, 71, 255},  // tomato
	{79, 172, 254, 255}, // sky
}

// Particle is a single ballistic dot that fades out over its lifetime.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 at spawn, dead at <= 0
	Size   float64
	Color  color.RGBA

	age int
}

// New creates a particle at (x, y) with an upward-biased random velocity.
// Horizontal velocity is uniform in [-2.5, 2.5), vertical in (-7, -2].
func New(x, y float64, clr color.RGBA, rng *rand.Rand) *Particle {
	return &Particle{
		X:     x,
		Y:     y,
		VX:    (rng.Float64() - 0.5) * 5,
		VY:    rng.Float64()*-5 - 2,
		Life:  1,
		Size:  rng.Float64()*4 + 2,
		Color: clr,
	}
}

// Update advances the particle one tick and reports whether it is still alive.
func (p *Particle) Update() bool {
	p.X += p.VX
	p.Y += p.VY
	p.VY += Gravity

	// Life follows the tick count; a particle lives exactly 1/DecayRate ticks.
	p.age++
	p.Life = 1 - float64(p.age)*DecayRate
	return p.Life > 0
}

// Burst emits count particles at (x, y) with colours picked from Palette.
func Burst(x, y float64, count int, rng *rand.Rand) []*Particle {
	out := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, New(x, y, Palette[rng.Intn(len(Palette))], rng))
	}
	return out
}

// System owns a live set of particles.
type System struct {
	particles []*Particle
}

// NewSystem creates an empty particle system.
func NewSystem() *System {
	return &System{}
}

// Add appends particles to the system.
func (s *System) Add(ps ...*Particle) {
	s.particles = append(s.particles, ps...)
}

// Update ticks every particle and drops the dead ones.
func (s *System) Update() {
	alive := s.particles[:0]
	for _, p := range s.particles {
		if p.Update() {
			alive = append(alive, p)
		}
	}
	// Clear the tail so dropped particles can be collected.
	for i := len(alive); i < len(s.particles); i++ {
		s.particles[i] = nil
	}
	s.particles = alive
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Particles returns value copies of the live particles.
func (s *System) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	for i, p := range s.particles {
		out[i] = *p
	}
	return out
}
