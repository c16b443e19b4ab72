// Package scene draws game snapshots: the starfield backdrop, the menu, the
// play field with its HUD, the level summary, particles, and any dialog
// panel on top.
package scene

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/wordexplorer/internal/core/tile"
	"chosenoffset.com/wordexplorer/internal/game"
	"chosenoffset.com/wordexplorer/internal/render"
	"chosenoffset.com/wordexplorer/internal/ui/dialog"
)

var (
	skyTop       = color.RGBA{0x1e, 0x3c, 0x72, 0xff}
	skyBottom    = color.RGBA{0x2a, 0x52, 0x98, 0xff}
	white        = color.RGBA{0xff, 0xff, 0xff, 0xff}
	gold         = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	orange       = color.RGBA{0xff, 0xa5, 0x00, 0xff}
	sky          = color.RGBA{0x4f, 0xac, 0xfe, 0xff}
	cyan         = color.RGBA{0x00, 0xf2, 0xfe, 0xff}
	green        = color.RGBA{0x00, 0xff, 0x00, 0xff}
	shadow       = color.NRGBA{0, 0, 0, 77}
	panelBg      = color.NRGBA{0, 0, 0, 128}
	boxBg        = color.NRGBA{0, 0, 0, 153}
	dimBg        = color.NRGBA{0, 0, 0, 204}
	summaryBg    = color.NRGBA{0, 0, 0, 230}
	dialogBg     = color.NRGBA{20, 20, 30, 230}
	dialogText   = color.RGBA{200, 200, 200, 255}
	tileRadius   = float32(10)
	buttonRadius = float32(15)
)

// Panels reports the informational panel currently on screen.
type Panels interface {
	Current() (dialog.Message, bool)
}

// Scene implements game.Presenter on top of a render.Renderer.
type Scene struct {
	r      render.Renderer
	panels Panels
}

// New creates a scene. panels may be nil.
func New(r render.Renderer, panels Panels) *Scene {
	return &Scene{r: r, panels: panels}
}

// Draw renders a snapshot onto screen. screen is the logical canvas.
func (s *Scene) Draw(screen render.Image, snap game.Snapshot) {
	s.drawBackground(screen, snap)

	switch snap.State {
	case game.StateMenu:
		s.drawMenu(screen, snap)
	case game.StatePlaying:
		s.drawGame(screen, snap)
	case game.StateComplete:
		s.drawGame(screen, snap)
		s.drawComplete(screen, snap)
	}

	for _, p := range snap.Particles {
		c := p.Color
		c.A = uint8(math.Round(clamp01(p.Life) * 255))
		s.r.FillCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), color.NRGBA(c))
	}

	if s.panels != nil {
		if msg, ok := s.panels.Current(); ok {
			s.drawDialog(screen, msg)
		}
	}
}

func (s *Scene) drawBackground(screen render.Image, snap game.Snapshot) {
	s.r.FillGradientRect(screen, 0, 0, game.CanvasWidth, game.CanvasHeight, skyTop, skyBottom)
	for _, st := range snap.Stars {
		s.r.FillCircle(screen, float32(st.X), float32(st.Y), float32(st.Size), white)
	}
}

func (s *Scene) drawMenu(screen render.Image, snap game.Snapshot) {
	cx := float64(game.CanvasWidth) / 2
	s.r.DrawText(screen, "Word Explorer", cx+2, 202, shadow, bold(64))
	s.r.DrawText(screen, "Word Explorer", cx, 200, white, bold(64))
	s.r.DrawText(screen, "Adventure Awaits!", cx, 260, gold, render.TextOptions{Size: 28, Align: render.AlignCenter})

	for _, b := range snap.Buttons {
		s.drawButton(screen, b, sky, cyan, 24)
	}
}

func (s *Scene) drawButton(screen render.Image, b game.Button, top, bottom color.Color, size float64) {
	x, y := float32(b.X-b.W/2), float32(b.Y-b.H/2)
	w, h := float32(b.W), float32(b.H)
	s.r.FillRoundRect(screen, x, y, w, h, buttonRadius, bottom)
	s.r.FillRoundRect(screen, x, y, w, h/2, buttonRadius, top)
	s.r.FillRect(screen, x, y+h/2-buttonRadius, w, buttonRadius, top)
	s.r.StrokeRoundRect(screen, x, y, w, h, buttonRadius, 3, white)
	s.r.DrawText(screen, b.Label, b.X, b.Y, white, bold(size))
}

func (s *Scene) drawGame(screen render.Image, snap game.Snapshot) {
	cx := float64(game.CanvasWidth) / 2

	// Target panel
	s.r.FillRoundRect(screen, float32(cx-300), 150, 600, 150, 20, panelBg)
	s.r.StrokeRoundRect(screen, float32(cx-300), 150, 600, 150, 20, 3, gold)
	s.r.DrawText(screen, "Form: "+snap.TargetWord, cx, 200, white, bold(32))

	attempt, clr := snap.Attempt, gold
	if attempt == "" {
		attempt = "___"
	}
	if snap.Attempt == snap.TargetWord {
		clr = green
	}
	s.r.DrawText(screen, attempt, cx, 260, clr, bold(48))

	s.drawUIBox(screen, 40, 40, "Score", fmt.Sprint(snap.Score))
	s.drawUIBox(screen, 40, 130, "Level", fmt.Sprint(snap.Level))
	s.drawUIBox(screen, game.CanvasWidth-220, 40, "Time", fmt.Sprint(int(math.Ceil(snap.TimeLeft))))
	if snap.Combo > 0 {
		s.drawUIBox(screen, game.CanvasWidth-220, 130, "Combo", fmt.Sprintf("x%d", snap.Combo))
	}

	for _, l := range snap.Letters {
		s.drawTile(screen, l)
	}
}

func (s *Scene) drawUIBox(screen render.Image, x, y float32, label, value string) {
	const w, h = 180, 70
	s.r.FillRoundRect(screen, x, y, w, h, 10, boxBg)
	s.r.StrokeRoundRect(screen, x, y, w, h, 10, 2, sky)
	cx := float64(x) + w/2
	s.r.DrawText(screen, label, cx, float64(y)+20, white, bold(16))
	s.r.DrawText(screen, value, cx, float64(y)+50, gold, bold(28))
}

func (s *Scene) drawTile(screen render.Image, l tile.Letter) {
	half := float32(tile.Size) / 2 * float32(l.Scale)
	x, y := float32(l.X)-half, float32(l.Y)-half
	size := half * 2

	fill, edge, border := sky, cyan, white
	if l.Selected {
		fill, edge, border = gold, orange, gold
	}

	s.r.FillRoundRect(screen, x, y+5, size, size, tileRadius, shadow)
	s.r.FillRoundRect(screen, x, y, size, size, tileRadius, edge)
	s.r.FillRoundRect(screen, x+4, y+4, size-8, size-8, tileRadius, fill)
	s.r.StrokeRoundRect(screen, x, y, size, size, tileRadius, 3, border)
	s.r.DrawText(screen, string(l.Char), l.X, l.Y, white, bold(40*l.Scale))
}

func (s *Scene) drawComplete(screen render.Image, snap game.Snapshot) {
	cx, cy := float64(game.CanvasWidth)/2, float64(game.CanvasHeight)/2

	s.r.FillRect(screen, 0, 0, game.CanvasWidth, game.CanvasHeight, dimBg)
	s.r.FillRoundRect(screen, float32(cx-300), float32(cy-200), 600, 400, 30, summaryBg)
	s.r.StrokeRoundRect(screen, float32(cx-300), float32(cy-200), 600, 400, 30, 4, gold)

	s.r.DrawText(screen, "Level Complete!", cx, cy-80, gold, bold(56))
	s.r.DrawText(screen, fmt.Sprintf("Score: %d", snap.Score), cx, cy, white, bold(36))
	s.r.DrawText(screen, fmt.Sprintf("Next Level: %d", snap.Level+1), cx, cy+50, white, bold(36))

	s.drawButton(screen, snap.Continue, sky, sky, 28)
}

func (s *Scene) drawDialog(screen render.Image, msg dialog.Message) {
	alpha := msg.Alpha()
	if alpha <= 0 {
		return
	}

	titleOpts := bold(28)
	bodyOpts := render.TextOptions{Size: 20, Align: render.AlignLeft}
	const lineHeight, padding = 30.0, 24.0

	width, _ := s.r.MeasureText(msg.Title, titleOpts)
	for _, line := range msg.Lines {
		if w, _ := s.r.MeasureText(line, bodyOpts); w > width {
			width = w
		}
	}
	width += padding * 2
	height := padding*2 + lineHeight*float64(len(msg.Lines)+1)

	x := (float64(game.CanvasWidth) - width) / 2
	y := 60.0

	s.r.FillRoundRect(screen, float32(x), float32(y), float32(width), float32(height), 15, fade(dialogBg, alpha))
	s.r.StrokeRoundRect(screen, float32(x), float32(y), float32(width), float32(height), 15, 2, fade(gold, alpha))

	cx := x + width/2
	ty := y + padding + lineHeight/2
	s.r.DrawText(screen, msg.Title, cx, ty, fade(gold, alpha), titleOpts)
	for _, line := range msg.Lines {
		ty += lineHeight
		s.r.DrawText(screen, line, x+padding, ty, fade(dialogText, alpha), bodyOpts)
	}
}

func bold(size float64) render.TextOptions {
	return render.TextOptions{Size: size, Align: render.AlignCenter, Weight: render.WeightBold}
}

// fade scales a colour's opacity by alpha.
func fade(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * clamp01(alpha)))
	return n
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
