package tile

import (
	"math"
	"testing"
)

func TestUpdateConvergesMonotonically(t *testing.T) {
	tests := []struct {
		name         string
		x, y, tx, ty float64
	}{
		{"far right", 0, 0, 900, 0},
		{"diagonal", 100, 700, 600, 650},
		{"negative", 500, 500, -200, -40},
		{"already there", 42, 42, 42, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New('A', tt.x, tt.y, 0)
			l.MoveTo(tt.tx, tt.ty)

			prev := l.Distance()
			for i := 0; i < 200; i++ {
				l.Update()
				d := l.Distance()
				if prev > 0 && d >= prev {
					t.Fatalf("tick %d: distance did not decrease (%f -> %f)", i, prev, d)
				}
				if prev == 0 && d != 0 {
					t.Fatalf("tick %d: moved away from target after arriving", i)
				}
				prev = d
			}
			if prev != 0 {
				t.Errorf("Expected letter to reach target, distance %f", prev)
			}
		})
	}
}

func TestUpdateScale(t *testing.T) {
	l := New('B', 0, 0, 0)
	l.Selected = true
	for i := 0; i < 100; i++ {
		l.Update()
	}
	if l.Scale != SelectedScale {
		t.Errorf("Expected scale %f, got %f", SelectedScale, l.Scale)
	}

	l.Selected = false
	l.Update()
	if l.Scale >= SelectedScale || l.Scale <= 1 {
		t.Errorf("Expected scale to start shrinking, got %f", l.Scale)
	}
	for i := 0; i < 100; i++ {
		l.Update()
	}
	if l.Scale != 1 {
		t.Errorf("Expected scale 1, got %f", l.Scale)
	}
}

func TestContainsUsesCurrentPosition(t *testing.T) {
	l := New('C', 100, 100, 0)
	l.MoveTo(500, 100)

	if !l.Contains(100, 100) {
		t.Error("Expected hit at spawn position")
	}
	if !l.Contains(134.9, 65.1) {
		t.Error("Expected hit just inside the region")
	}
	if l.Contains(135, 100) {
		t.Error("Expected miss on the region edge")
	}
	if l.Contains(500, 100) {
		t.Error("Expected miss at target before the letter moved")
	}

	l.Update()
	if math.Abs(l.X-160) > 1e-9 {
		t.Fatalf("Expected x 160 after one tick, got %f", l.X)
	}
	if !l.Contains(190, 100) {
		t.Error("Expected hitbox to follow the animated position")
	}
}
