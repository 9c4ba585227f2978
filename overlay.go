package arbor

import (
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextOptions configures Overlay.DrawText. The zero value draws left-aligned
// text in the default theme with a drop shadow.
type TextOptions struct {
	Align   TextAlign
	Theme   string
	Outline OutlineStyle
}

// numberStripCells is the number of equal-width cells in a number strip
// image: the digits 0-9 followed by '/'.
const numberStripCells = 11

// Overlay is a full-size transparent sprite that text and images are drawn
// onto. It carries a table of named color themes.
type Overlay struct {
	spriteBase
	canvas Canvas
	themes map[string]TextTheme
}

// NewOverlay creates an overlay drawing onto canvas with the given themes
// (copied). The overlay starts at depth ZOverlay.
func NewOverlay(name string, canvas Canvas, themes map[string]TextTheme) *Overlay {
	o := &Overlay{
		spriteBase: newSpriteBase(name),
		canvas:     canvas,
		themes:     make(map[string]TextTheme, len(themes)),
	}
	o.z = ZOverlay
	for k, v := range themes {
		o.themes[k] = v
	}
	return o
}

// Canvas returns the backing canvas.
func (o *Overlay) Canvas() Canvas { return o.canvas }

// AddTheme registers or replaces a color theme.
func (o *Overlay) AddTheme(key string, base, shadow Color) {
	o.checkLive("AddTheme")
	o.themes[key] = TextTheme{Base: base, Shadow: shadow}
}

// Theme returns the theme registered under key ("" means the default theme).
// Panics with *UnknownThemeError if the key is not registered.
func (o *Overlay) Theme(key string) TextTheme {
	if key == "" {
		key = DefaultThemeKey
	}
	t, ok := o.themes[key]
	if !ok {
		panic(&UnknownThemeError{Theme: key})
	}
	return t
}

// HasTheme reports whether key is registered.
func (o *Overlay) HasTheme(key string) bool {
	_, ok := o.themes[key]
	return ok
}

// Clear erases everything drawn on the overlay.
func (o *Overlay) Clear() {
	o.checkLive("Clear")
	o.canvas.Clear()
}

// TextWidth returns the rendered width of s.
func (o *Overlay) TextWidth(s string) int {
	return o.canvas.TextWidth(s)
}

// DrawText draws one line of themed text.
func (o *Overlay) DrawText(s string, x, y int, opts TextOptions) {
	o.checkLive("DrawText")
	o.canvas.DrawText(s, x, y, opts.Align, o.Theme(opts.Theme), opts.Outline)
}

// DrawParagraphText draws s wrapped to width, limited to lines lines.
func (o *Overlay) DrawParagraphText(s string, x, y, width, lines int, theme string) {
	o.checkLive("DrawParagraphText")
	o.canvas.DrawParagraph(s, x, y, width, lines, o.Theme(theme))
}

// DrawFormattedText draws s wrapped to width with no line limit.
func (o *Overlay) DrawFormattedText(s string, x, y, width int, theme string) {
	o.checkLive("DrawFormattedText")
	o.canvas.DrawParagraph(s, x, y, width, -1, o.Theme(theme))
}

// DrawImage copies src of img (empty = whole image) to (x, y).
func (o *Overlay) DrawImage(img *ebiten.Image, x, y int, src image.Rectangle) {
	o.checkLive("DrawImage")
	o.canvas.DrawImage(img, x, y, src)
}

// DrawNumberFromImage draws s using a number strip: img holds the digits 0-9
// then '/', all the same width, in one horizontal row. With TextAlignRight
// the number ends at x; otherwise it starts at x.
// Panics with *InvalidNumericInputError if s has any other character.
func (o *Overlay) DrawNumberFromImage(img *ebiten.Image, s string, x, y int, align TextAlign) {
	o.checkLive("DrawNumberFromImage")
	for _, r := range s {
		if (r < '0' || r > '9') && r != '/' {
			panic(&InvalidNumericInputError{Input: s})
		}
	}
	b := img.Bounds()
	cw, ch := b.Dx()/numberStripCells, b.Dy()
	chars := []rune(s)
	if align == TextAlignRight {
		for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
			chars[i], chars[j] = chars[j], chars[i]
		}
	}
	for i, r := range chars {
		idx := 10
		if r != '/' {
			idx = int(r - '0')
		}
		cx := x + i*cw
		if align == TextAlignRight {
			cx = x - (i+1)*cw
		}
		o.canvas.DrawImage(img, cx, y, image.Rect(idx*cw, 0, idx*cw+cw, ch))
	}
}

// CropText shortens s to fit within maxWidth, replacing the removed tail with
// cont. maxWidth should include the shadow margin at the end of the string.
//
// s is returned unchanged if maxWidth <= 0 or s already fits. Otherwise
// characters are dropped from the end until the prefix plus cont fits; if not
// even cont alone fits, cont is returned.
func (o *Overlay) CropText(s string, maxWidth int, cont string) string {
	return cropText(o.canvas.TextWidth, s, maxWidth, cont)
}

func cropText(width func(string) int, s string, maxWidth int, cont string) string {
	if maxWidth <= 0 || width(s) <= maxWidth {
		return s
	}
	limit := maxWidth - width(cont)
	clusters := graphemes(s)
	for n := len(clusters) - 1; n >= 0; n-- {
		prefix := strings.Join(clusters[:n], "")
		if width(prefix) <= limit {
			return prefix + cont
		}
	}
	return cont
}

// Update is a no-op; overlays only change when drawn on.
func (o *Overlay) Update(dt float64) {}

// Draw renders the overlay's canvas when it is image-backed.
func (o *Overlay) Draw(dst *ebiten.Image) {
	if o.disposed || !o.visible {
		return
	}
	if ic, ok := o.canvas.(*ImageCanvas); ok {
		drawTinted(dst, ic.img, float64(o.x), float64(o.y), o.color)
	}
}

// Dispose releases the canvas.
func (o *Overlay) Dispose() {
	if o.disposed {
		return
	}
	debugLog("dispose overlay %q", o.name)
	o.disposed = true
	if ic, ok := o.canvas.(*ImageCanvas); ok {
		ic.img.Deallocate()
	}
	o.canvas = nil
}
