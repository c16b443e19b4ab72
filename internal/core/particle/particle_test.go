package particle

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewVelocityRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		p := New(10, 20, Palette[0], rng)
		if p.VX < -2.5 || p.VX >= 2.5 {
			t.Fatalf("VX out of range: %f", p.VX)
		}
		if p.VY > -2 || p.VY <= -7 {
			t.Fatalf("VY out of range: %f", p.VY)
		}
		if p.Size < 2 || p.Size >= 6 {
			t.Fatalf("Size out of range: %f", p.Size)
		}
		if p.Life != 1 {
			t.Fatalf("Expected life 1, got %f", p.Life)
		}
	}
}

func TestUpdateLifetimeIsFiftyTicks(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := New(0, 0, Palette[1], rng)

	ticks := 0
	for p.Update() {
		ticks++
		if ticks > 100 {
			t.Fatal("particle never died")
		}
	}
	ticks++ // the call that returned false

	if ticks != 50 {
		t.Errorf("Expected particle to die on tick 50, died on tick %d", ticks)
	}
}

func TestUpdateAppliesGravity(t *testing.T) {
	p := &Particle{X: 0, Y: 0, VX: 1, VY: -5, Life: 1}
	p.Update()

	if p.X != 1 || p.Y != -5 {
		t.Errorf("Expected position (1, -5), got (%f, %f)", p.X, p.Y)
	}
	if math.Abs(p.VY-(-4.8)) > 1e-9 {
		t.Errorf("Expected VY -4.8, got %f", p.VY)
	}
}

func TestSystemDropsDeadParticles(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := NewSystem()
	s.Add(Burst(100, 100, 10, rng)...)

	if s.Len() != 10 {
		t.Fatalf("Expected 10 particles, got %d", s.Len())
	}

	for i := 0; i < 49; i++ {
		s.Update()
	}
	if s.Len() != 10 {
		t.Errorf("Expected 10 particles after 49 ticks, got %d", s.Len())
	}

	s.Update()
	if s.Len() != 0 {
		t.Errorf("Expected 0 particles after 50 ticks, got %d", s.Len())
	}
}
