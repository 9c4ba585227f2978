package arbor

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextTheme is a named pair of text colors.
type TextTheme struct {
	Base   Color
	Shadow Color
}

// DefaultThemeKey is the theme used when none is named.
const DefaultThemeKey = "default"

// DefaultTextThemes returns the built-in theme table.
func DefaultTextThemes() map[string]TextTheme {
	return map[string]TextTheme{
		DefaultThemeKey: {Base: RGB(72, 72, 72), Shadow: RGB(160, 160, 160)},
	}
}

// OutlineStyle selects how the shadow color of a theme is applied.
type OutlineStyle uint8

const (
	OutlineShadow  OutlineStyle = iota // drop shadow to the right and below
	OutlineOutline                     // shadow color on all eight sides
	OutlineNone                        // base color only
)

// Canvas is a persistent bitmap that text and images are drawn onto. Overlays
// draw through a Canvas so the rendering backend stays swappable.
type Canvas interface {
	Size() (width, height int)
	Clear()
	// DrawImage copies src (relative to img's bounds; empty = whole image) to (x, y).
	DrawImage(img *ebiten.Image, x, y int, src image.Rectangle)
	DrawText(s string, x, y int, align TextAlign, theme TextTheme, outline OutlineStyle)
	// DrawParagraph wraps s to width and draws at most maxLines lines
	// (maxLines < 0 means no limit).
	DrawParagraph(s string, x, y, width, maxLines int, theme TextTheme)
	TextWidth(s string) int
}

// CanvasFactory creates canvases for overlays.
type CanvasFactory func(width, height int) Canvas

// shadowOffsets and outlineOffsets are the pixel offsets at which the shadow
// color is drawn before the base color.
var (
	shadowOffsets  = [][2]int{{2, 0}, {0, 2}, {2, 2}}
	outlineOffsets = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// ImageCanvas is a Canvas backed by an *ebiten.Image.
type ImageCanvas struct {
	img  *ebiten.Image
	font FaceFont
}

// NewImageCanvas creates a width x height canvas that renders text with font.
func NewImageCanvas(width, height int, font FaceFont) *ImageCanvas {
	return &ImageCanvas{img: ebiten.NewImage(width, height), font: font}
}

// ImageCanvasFactory returns a CanvasFactory producing ImageCanvases.
func ImageCanvasFactory(font FaceFont) CanvasFactory {
	return func(width, height int) Canvas {
		return NewImageCanvas(width, height, font)
	}
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *ebiten.Image { return c.img }

// Size returns the canvas dimensions.
func (c *ImageCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear erases the canvas to transparent.
func (c *ImageCanvas) Clear() { c.img.Clear() }

// DrawImage copies part of img onto the canvas.
func (c *ImageCanvas) DrawImage(img *ebiten.Image, x, y int, src image.Rectangle) {
	if img == nil {
		return
	}
	if !src.Empty() {
		img = subImage(img, src)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	c.img.DrawImage(img, op)
}

// TextWidth returns the rendered width of s.
func (c *ImageCanvas) TextWidth(s string) int {
	return textWidth(c.font, s)
}

// DrawText draws one line of themed text.
func (c *ImageCanvas) DrawText(s string, x, y int, align TextAlign, theme TextTheme, outline OutlineStyle) {
	switch align {
	case TextAlignCenter:
		x -= c.TextWidth(s) / 2
	case TextAlignRight:
		x -= c.TextWidth(s)
	}
	var offsets [][2]int
	switch outline {
	case OutlineShadow:
		offsets = shadowOffsets
	case OutlineOutline:
		offsets = outlineOffsets
	}
	for _, off := range offsets {
		c.drawString(s, x+off[0], y+off[1], theme.Shadow)
	}
	c.drawString(s, x, y, theme.Base)
}

// DrawParagraph draws word-wrapped themed text.
func (c *ImageCanvas) DrawParagraph(s string, x, y, width, maxLines int, theme TextTheme) {
	lines := WrapText(c.font, s, width)
	if maxLines >= 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	lh := lineHeight(c.font)
	for i, line := range lines {
		c.DrawText(line, x, y+i*lh, TextAlignLeft, theme, OutlineShadow)
	}
}

func (c *ImageCanvas) drawString(s string, x, y int, col Color) {
	drawFaceText(c.img, c.font, s, x, y, col)
}

// drawFaceText renders s with its top-left corner at (x, y).
func drawFaceText(dst *ebiten.Image, font FaceFont, s string, x, y int, col Color) {
	if s == "" || font == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col.toRGBA())
	op.LineSpacing = font.LineHeight()
	text.Draw(dst, s, font.Face(), op)
}
