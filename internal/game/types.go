package game

import (
	"chosenoffset.com/wordexplorer/internal/core/particle"
	"chosenoffset.com/wordexplorer/internal/core/starfield"
	"chosenoffset.com/wordexplorer/internal/core/tile"
	"chosenoffset.com/wordexplorer/internal/render"
)

// Logical canvas size. All game coordinates use this space.
const (
	CanvasWidth  = 1200
	CanvasHeight = 800
)

// Snapshot is a read-only copy of everything the presentation layer draws.
type Snapshot struct {
	State      State
	Score      int
	Level      int
	Combo      int
	TimeLeft   float64
	TargetWord string
	Attempt    string

	Letters   []tile.Letter
	Particles []particle.Particle
	Stars     []starfield.Star
	Buttons   []Button
	Continue  Button
}

// Presenter draws a snapshot. It must not retain or mutate game state.
type Presenter interface {
	Draw(screen render.Image, snap Snapshot)
}

// Dialog shows informational panels. Show must return without waiting for
// the player; Update advances any animation on the game clock. Dismiss
// removes whatever panel is up.
type Dialog interface {
	Show(title string, lines []string)
	Update(dt float64)
	Dismiss()
}

type nopDialog struct{}

func (nopDialog) Show(string, []string) {}
func (nopDialog) Update(float64)        {}
func (nopDialog) Dismiss()              {}
