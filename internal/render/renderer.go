package render

import (
	"errors"
	"image/color"
)

// ErrQuit is returned from Game.Update to end the game loop normally.
var ErrQuit = errors.New("quit")

// TextAlign controls horizontal text placement relative to the anchor x.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
)

// FontWeight selects between the regular and bold faces.
type FontWeight int

const (
	WeightRegular FontWeight = iota
	WeightBold
)

// TextOptions describes how a string is laid out.
type TextOptions struct {
	Size   float64
	Align  TextAlign
	Weight FontWeight
}

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	FillRect(dst Image, x, y, w, h float32, clr color.Color)
	FillRoundRect(dst Image, x, y, w, h, radius float32, clr color.Color)
	StrokeRoundRect(dst Image, x, y, w, h, radius, strokeWidth float32, clr color.Color)
	FillGradientRect(dst Image, x, y, w, h float32, top, bottom color.Color)

	// Text operations. (x, y) is the anchor on the text's vertical middle.
	DrawText(dst Image, text string, x, y float64, clr color.Color, opts TextOptions)
	MeasureText(text string, opts TextOptions) (width, height float64)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
	// Filter smooths the image when it is scaled.
	Filter bool
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales the image by (sx, sy).
	Scale(sx, sy float64)

	// Reset resets the matrix to identity.
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// Point is a position in host or canvas coordinates.
type Point struct {
	X, Y float64
}

// InputManager handles input from the user (keyboard, mouse, touch).
type InputManager interface {
	IsKeyJustPressed(key Key) bool

	// AppendTaps appends the positions of every mouse click and touch that
	// started this tick, in host window coordinates.
	AppendTaps(taps []Point) []Point
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game reads. Escape quits; Enter and Space
// activate the current screen's default button.
const (
	KeyEscape Key = iota
	KeySpace
	KeyEnter
)

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// SetTPS sets the number of Update calls per second.
	SetTPS(tps int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
