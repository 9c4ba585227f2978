package arbor

import (
	"image"
	"image/color"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
//
// When used as a sprite tint, A is the blend strength toward (R, G, B):
// zero leaves the sprite untouched and one replaces its color entirely.
type Color struct {
	R, G, B, A float64
}

// ColorNone is the default tint (no color modification).
var ColorNone = Color{}

// ColorWhite and ColorBlack are opaque white and black.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// RGB builds an opaque Color from 0-255 components.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// RGBA builds a Color from 0-255 components.
func RGBA(r, g, b, a uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// TextAlign controls horizontal text alignment relative to the drawing x.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // x is the left edge (default)
	TextAlignCenter                  // x is the center
	TextAlignRight                   // x is the right edge
)

// Direction names one of the four arrow directions.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Default draw depths of the layers a Scene owns.
const (
	ZBackground = -1000
	ZOverlay    = 1000
	ZMessageBox = 2000
	ZSpeechBox  = 2001
	ZViewport   = 99999
)

// Viewport is the clip rectangle and base depth shared by the sprites of one
// container or scene.
type Viewport struct {
	Rect image.Rectangle
	Z    int

	disposed bool
}

// NewViewport creates a viewport covering the given rectangle.
func NewViewport(x, y, width, height int) *Viewport {
	return &Viewport{Rect: image.Rect(x, y, x+width, y+height)}
}

// Width returns the viewport width in pixels.
func (v *Viewport) Width() int { return v.Rect.Dx() }

// Height returns the viewport height in pixels.
func (v *Viewport) Height() int { return v.Rect.Dy() }

// Dispose marks the viewport as disposed. Safe to call more than once.
func (v *Viewport) Dispose() { v.disposed = true }

// IsDisposed reports whether Dispose has been called.
func (v *Viewport) IsDisposed() bool { return v.disposed }
