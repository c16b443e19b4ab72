// Package tile implements the selectable letter pieces the player taps to
// spell the target word.
package tile

import "math"

const (
	// Smoothing is the per-tick interpolation factor toward the target.
	Smoothing = 0.15
	// HalfExtent is half the side of the square hit region.
	HalfExtent = 35.0
	// Size is the drawn side length of a tile.
	Size = 70.0
	// SelectedScale is the scale a selected tile animates toward.
	SelectedScale = 1.1

	snapEpsilon = 1e-3
)

// Letter is a single letter tile.
type Letter struct {
	Char     rune
	X, Y     float64
	TargetX  float64
	TargetY  float64
	Index    int // position in the shuffled word
	Selected bool
	Scale    float64
}

// New creates a letter resting at its spawn position.
func New(char rune, x, y float64, index int) *Letter {
	return &Letter{
		Char:    char,
		X:       x,
		Y:       y,
		TargetX: x,
		TargetY: y,
		Index:   index,
		Scale:   1,
	}
}

// MoveTo sets the position the letter animates toward.
func (l *Letter) MoveTo(x, y float64) {
	l.TargetX = x
	l.TargetY = y
}

// Update eases position and scale toward their targets.
func (l *Letter) Update() {
	l.X = approach(l.X, l.TargetX)
	l.Y = approach(l.Y, l.TargetY)

	scale := 1.0
	if l.Selected {
		scale = SelectedScale
	}
	l.Scale = approach(l.Scale, scale)
}

// Contains reports whether (px, py) is inside the hit region around the
// letter's current, animated position.
func (l *Letter) Contains(px, py float64) bool {
	return math.Abs(px-l.X) < HalfExtent && math.Abs(py-l.Y) < HalfExtent
}

// Distance returns how far the letter is from its target.
func (l *Letter) Distance() float64 {
	return math.Hypot(l.TargetX-l.X, l.TargetY-l.Y)
}

func approach(v, target float64) float64 {
	v += (target - v) * Smoothing
	if math.Abs(target-v) < snapEpsilon {
		return target
	}
	return v
}
