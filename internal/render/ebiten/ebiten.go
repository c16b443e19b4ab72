package ebiten

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"chosenoffset.com/wordexplorer/internal/render"
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace

	whiteImg *ebiten.Image
}

type faceKey struct {
	size   float64
	weight render.FontWeight
}

// init sets up the global functions for the ebiten render.
func init() {
	render.NewGeoM = func() render.GeoM {
		return NewGeoM()
	}
}

// NewRenderer creates a new Ebiten-based renderer with the embedded Go fonts.
func NewRenderer() (render.Renderer, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &EbitenRenderer{
		regular:  regular,
		bold:     bold,
		faces:    make(map[faceKey]*text.GoTextFace),
		whiteImg: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}, nil
}

// NewImage creates a new image with the given dimensions.
func (r *EbitenRenderer) NewImage(width, height int) render.Image {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(unwrap(dst), x, y, radius, clr, true)
}

// FillRect draws a filled axis-aligned rectangle.
func (r *EbitenRenderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(unwrap(dst), x, y, w, h, clr, false)
}

// FillRoundRect draws a filled rectangle with rounded corners.
func (r *EbitenRenderer) FillRoundRect(dst render.Image, x, y, w, h, radius float32, clr color.Color) {
	path := roundRectPath(x, y, w, h, radius)
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r.drawPath(unwrap(dst), vs, is, clr)
}

// StrokeRoundRect draws the outline of a rectangle with rounded corners.
func (r *EbitenRenderer) StrokeRoundRect(dst render.Image, x, y, w, h, radius, strokeWidth float32, clr color.Color) {
	path := roundRectPath(x, y, w, h, radius)
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    strokeWidth,
		LineJoin: vector.LineJoinRound,
	})
	r.drawPath(unwrap(dst), vs, is, clr)
}

// FillGradientRect fills a rectangle with a vertical two-stop gradient.
func (r *EbitenRenderer) FillGradientRect(dst render.Image, x, y, w, h float32, top, bottom color.Color) {
	tr, tg, tb, ta := floatColor(top)
	br, bg, bb, ba := floatColor(bottom)

	vs := []ebiten.Vertex{
		{DstX: x, DstY: y, SrcX: 1, SrcY: 1, ColorR: tr, ColorG: tg, ColorB: tb, ColorA: ta},
		{DstX: x + w, DstY: y, SrcX: 1, SrcY: 1, ColorR: tr, ColorG: tg, ColorB: tb, ColorA: ta},
		{DstX: x, DstY: y + h, SrcX: 1, SrcY: 1, ColorR: br, ColorG: bg, ColorB: bb, ColorA: ba},
		{DstX: x + w, DstY: y + h, SrcX: 1, SrcY: 1, ColorR: br, ColorG: bg, ColorB: bb, ColorA: ba},
	}
	is := []uint16{0, 1, 2, 1, 3, 2}
	unwrap(dst).DrawTriangles(vs, is, r.whiteImg, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

func (r *EbitenRenderer) drawPath(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.Color) {
	cr, cg, cb, ca := floatColor(clr)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
	dst.DrawTriangles(vs, is, r.whiteImg, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	})
}

func roundRectPath(x, y, w, h, radius float32) *vector.Path {
	var path vector.Path
	path.MoveTo(x+radius, y)
	path.LineTo(x+w-radius, y)
	path.ArcTo(x+w, y, x+w, y+radius, radius)
	path.LineTo(x+w, y+h-radius)
	path.ArcTo(x+w, y+h, x+w-radius, y+h, radius)
	path.LineTo(x+radius, y+h)
	path.ArcTo(x, y+h, x, y+h-radius, radius)
	path.LineTo(x, y+radius)
	path.ArcTo(x, y, x+radius, y, radius)
	path.Close()
	return &path
}

// floatColor converts a color to premultiplied float components.
func floatColor(clr color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := clr.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}

func (r *EbitenRenderer) face(opts render.TextOptions) *text.GoTextFace {
	key := faceKey{size: opts.Size, weight: opts.Weight}
	if f, ok := r.faces[key]; ok {
		return f
	}
	src := r.regular
	if opts.Weight == render.WeightBold {
		src = r.bold
	}
	f := &text.GoTextFace{Source: src, Size: opts.Size}
	r.faces[key] = f
	return f
}

// DrawText draws a single line of text anchored at (x, y) on its vertical middle.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y float64, clr color.Color, opts render.TextOptions) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = textAlign(opts.Align)
	op.SecondaryAlign = text.AlignCenter
	text.Draw(unwrap(dst), str, r.face(opts), op)
}

// MeasureText measures the width and height of a single line of text.
func (r *EbitenRenderer) MeasureText(str string, opts render.TextOptions) (width, height float64) {
	return text.Measure(str, r.face(opts), 0)
}

func textAlign(a render.TextAlign) text.Align {
	switch a {
	case render.AlignCenter:
		return text.AlignCenter
	default:
		return text.AlignStart
	}
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

func unwrap(img render.Image) *ebiten.Image {
	return img.(*EbitenImage).img
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear clears the image to transparent.
func (i *EbitenImage) Clear() {
	i.img.Clear()
}

// DrawImage draws the source image onto this image.
func (i *EbitenImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	srcImg := unwrap(src)

	if opts == nil {
		i.img.DrawImage(srcImg, nil)
		return
	}

	ebitenOpts := &ebiten.DrawImageOptions{}
	if opts.GeoM != nil {
		ebitenOpts.GeoM = opts.GeoM.(*EbitenGeoM).geoM
	}
	if opts.Filter {
		ebitenOpts.Filter = ebiten.FilterLinear
	}

	i.img.DrawImage(srcImg, ebitenOpts)
}

// EbitenGeoM wraps ebiten's GeoM to implement the render.GeoM interface.
type EbitenGeoM struct {
	geoM ebiten.GeoM
}

// NewGeoM creates a new geometric transformation matrix.
func NewGeoM() render.GeoM {
	return &EbitenGeoM{geoM: ebiten.GeoM{}}
}

// Translate shifts the image by (tx, ty).
func (g *EbitenGeoM) Translate(tx, ty float64) {
	g.geoM.Translate(tx, ty)
}

// Scale scales the image by (sx, sy).
func (g *EbitenGeoM) Scale(sx, sy float64) {
	g.geoM.Scale(sx, sy)
}

// Reset resets the matrix to identity.
func (g *EbitenGeoM) Reset() {
	g.geoM.Reset()
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct {
	touchIDs []ebiten.TouchID
}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// AppendTaps appends mouse clicks and new touches from this tick.
func (m *EbitenInputManager) AppendTaps(taps []render.Point) []render.Point {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		taps = append(taps, render.Point{X: float64(x), Y: float64(y)})
	}

	m.touchIDs = inpututil.AppendJustPressedTouchIDs(m.touchIDs[:0])
	for _, id := range m.touchIDs {
		x, y := ebiten.TouchPosition(id)
		taps = append(taps, render.Point{X: float64(x), Y: float64(y)})
	}
	return taps
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyEscape:
		return ebiten.KeyEscape
	case render.KeySpace:
		return ebiten.KeySpace
	case render.KeyEnter:
		return ebiten.KeyEnter
	default:
		return 0
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// SetTPS sets the number of Update calls per second.
func (e *EbitenEngine) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&gameAdapter{game: game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
