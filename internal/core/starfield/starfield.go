// Package starfield implements the slowly falling background stars.
package starfield

import "math/rand"

// Star is a single background star.
type Star struct {
	X, Y  float64
	Size  float64
	Speed float64 // units per tick
}

// Field is a set of stars scrolling down a width x height area.
type Field struct {
	Stars  []Star
	width  float64
	height float64
	rng    *rand.Rand
}

// New scatters count stars over the area.
func New(count int, width, height float64, rng *rand.Rand) *Field {
	f := &Field{
		Stars:  make([]Star, count),
		width:  width,
		height: height,
		rng:    rng,
	}
	for i := range f.Stars {
		f.Stars[i] = Star{
			X:     rng.Float64() * width,
			Y:     rng.Float64() * height,
			Size:  rng.Float64()*2 + 1,
			Speed: rng.Float64()*0.5 + 0.2,
		}
	}
	return f
}

// Update moves every star down by its speed. A star that passes the bottom
// edge wraps to the top at a new random x.
func (f *Field) Update() {
	for i := range f.Stars {
		s := &f.Stars[i]
		s.Y += s.Speed
		if s.Y > f.height {
			s.Y = 0
			s.X = f.rng.Float64() * f.width
		}
	}
}
