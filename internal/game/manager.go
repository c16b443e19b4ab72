package game

import (
	"context"
	"image/color"
	"time"

	"chosenoffset.com/wordexplorer/internal/render"
)

// MaxStep caps the time a single tick may advance the game, in seconds.
const MaxStep = 0.1

// Manager drives a Game from the engine's frame callbacks: it measures
// elapsed time, forwards taps in canvas coordinates, and draws the game onto
// a fixed-size canvas scaled to the window.
type Manager struct {
	Game      *Game
	Presenter Presenter
	Renderer  render.Renderer
	InputMgr  render.InputManager

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	ctx          context.Context
	last         time.Time
	screenWidth  int
	screenHeight int
	canvas       render.Image
	taps         []render.Point
}

// NewManager creates a game manager. ctx is passed to every game operation.
func NewManager(ctx context.Context, g *Game, p Presenter, r render.Renderer, input render.InputManager) *Manager {
	return &Manager{
		Game:         g,
		Presenter:    p,
		Renderer:     r,
		InputMgr:     input,
		Now:          time.Now,
		ctx:          ctx,
		screenWidth:  CanvasWidth,
		screenHeight: CanvasHeight,
	}
}

// Update handles keys and queued taps, then advances the game by the time elapsed
// since the previous call.
func (m *Manager) Update() error {
	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	dt := m.step()

	if m.InputMgr.IsKeyJustPressed(render.KeyEnter) || m.InputMgr.IsKeyJustPressed(render.KeySpace) {
		m.Game.Confirm(m.ctx)
	}

	m.taps = m.InputMgr.AppendTaps(m.taps[:0])
	for _, tap := range m.taps {
		x, y := m.ToCanvas(tap)
		m.Game.HandleTap(m.ctx, x, y)
	}

	m.Game.Update(m.ctx, dt)
	return nil
}

// step returns the seconds since the previous call, clamped to [0, MaxStep].
// The first call returns 0.
func (m *Manager) step() float64 {
	now := m.Now()
	defer func() { m.last = now }()

	if m.last.IsZero() {
		return 0
	}
	dt := now.Sub(m.last).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > MaxStep {
		return MaxStep
	}
	return dt
}

// ToCanvas converts a point in window coordinates to canvas coordinates.
func (m *Manager) ToCanvas(p render.Point) (x, y float64) {
	return p.X * CanvasWidth / float64(m.screenWidth), p.Y * CanvasHeight / float64(m.screenHeight)
}

// Draw renders the game to the canvas and stretches it over the screen.
func (m *Manager) Draw(screen render.Image) {
	if m.canvas == nil {
		m.canvas = m.Renderer.NewImage(CanvasWidth, CanvasHeight)
	}

	m.canvas.Clear()
	m.Presenter.Draw(m.canvas, m.Game.Snapshot())

	w, h := screen.Size()
	screen.Fill(color.Black)
	opts := &render.DrawImageOptions{Filter: true}
	opts.GeoM = render.NewGeoM()
	opts.GeoM.Scale(float64(w)/CanvasWidth, float64(h)/CanvasHeight)
	screen.DrawImage(m.canvas, opts)
}

// Layout records the window size and uses it as the screen size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		m.screenWidth = outsideWidth
		m.screenHeight = outsideHeight
	}
	return m.screenWidth, m.screenHeight
}
