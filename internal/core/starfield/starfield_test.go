package starfield

import (
	"math/rand"
	"testing"
)

func TestNewScattersWithinBounds(t *testing.T) {
	f := New(100, 1200, 800, rand.New(rand.NewSource(1)))
	if len(f.Stars) != 100 {
		t.Fatalf("Expected 100 stars, got %d", len(f.Stars))
	}
	for i, s := range f.Stars {
		if s.X < 0 || s.X >= 1200 || s.Y < 0 || s.Y >= 800 {
			t.Errorf("star %d out of bounds: (%f, %f)", i, s.X, s.Y)
		}
		if s.Speed < 0.2 || s.Speed >= 0.7 {
			t.Errorf("star %d speed out of range: %f", i, s.Speed)
		}
		if s.Size < 1 || s.Size >= 3 {
			t.Errorf("star %d size out of range: %f", i, s.Size)
		}
	}
}

func TestUpdateMovesDown(t *testing.T) {
	f := New(1, 1200, 800, rand.New(rand.NewSource(2)))
	f.Stars[0] = Star{X: 300, Y: 100, Speed: 0.5}

	f.Update()

	if f.Stars[0].Y != 100.5 || f.Stars[0].X != 300 {
		t.Errorf("Expected (300, 100.5), got (%f, %f)", f.Stars[0].X, f.Stars[0].Y)
	}
}

func TestUpdateWrapsPastBottom(t *testing.T) {
	f := New(1, 1200, 800, rand.New(rand.NewSource(3)))
	f.Stars[0] = Star{X: 300, Y: 800.1, Speed: 0.3}

	f.Update()

	s := f.Stars[0]
	if s.Y != 0 {
		t.Errorf("Expected wrapped star at y 0, got %f", s.Y)
	}
	if s.X < 0 || s.X >= 1200 {
		t.Errorf("Expected new x in [0, 1200), got %f", s.X)
	}
}

func TestUpdateDoesNotWrapAtExactHeight(t *testing.T) {
	f := New(1, 1200, 800, rand.New(rand.NewSource(4)))
	f.Stars[0] = Star{X: 10, Y: 799.5, Speed: 0.5}

	f.Update()

	if f.Stars[0].Y != 800 {
		t.Errorf("Expected star to sit at 800 without wrapping, got %f", f.Stars[0].Y)
	}
}
