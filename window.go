package arbor

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// WindowSkin styles a modal window frame.
type WindowSkin struct {
	Fill        Color
	Border      Color
	BorderWidth float32
	Padding     int
	Text        TextTheme
	Cursor      Color
}

// DefaultWindowSkin returns the built-in skin: a light panel with dark text.
func DefaultWindowSkin() WindowSkin {
	return WindowSkin{
		Fill:        RGBA(248, 248, 248, 240),
		Border:      RGB(96, 96, 112),
		BorderWidth: 2,
		Padding:     12,
		Text:        DefaultTextThemes()[DefaultThemeKey],
		Cursor:      RGBA(160, 176, 224, 160),
	}
}

// Placeable is anything the layout helpers can position.
type Placeable interface {
	Width() int
	Height() int
	SetPosition(x, y int)
}

// BottomLeft places p in the bottom-left corner of a screenW x screenH screen.
func BottomLeft(p Placeable, screenW, screenH int) {
	p.SetPosition(0, screenH-p.Height())
}

// BottomRight places p in the bottom-right corner.
func BottomRight(p Placeable, screenW, screenH int) {
	p.SetPosition(screenW-p.Width(), screenH-p.Height())
}

// windowBase is the frame shared by text, command and number windows.
type windowBase struct {
	spriteBase
	width, height int
	skin          WindowSkin
	font          Font
}

func newWindowBase(name string, font Font, skin WindowSkin) windowBase {
	return windowBase{spriteBase: newSpriteBase(name), skin: skin, font: font}
}

// Width returns the window width including the frame.
func (w *windowBase) Width() int { return w.width }

// Height returns the window height including the frame.
func (w *windowBase) Height() int { return w.height }

// SetWidth resizes the window horizontally.
func (w *windowBase) SetWidth(width int) {
	w.checkLive("SetWidth")
	w.width = max(width, 0)
}

// Skin returns the window's skin.
func (w *windowBase) Skin() WindowSkin { return w.skin }

// SetSkin restyles the window.
func (w *windowBase) SetSkin(skin WindowSkin) {
	w.checkLive("SetSkin")
	w.skin = skin
}

// innerWidth is the width available to content.
func (w *windowBase) innerWidth() int {
	return max(w.width-2*w.skin.Padding, 0)
}

// heightForLines is the window height that fits n text lines.
func (w *windowBase) heightForLines(n int) int {
	return n*lineHeight(w.font) + 2*w.skin.Padding
}

func (w *windowBase) drawFrame(dst *ebiten.Image) {
	fillRect(dst, w.x, w.y, w.width, w.height, w.skin.Fill)
	if w.skin.BorderWidth > 0 {
		strokeRect(dst, w.x, w.y, w.width, w.height, w.skin.BorderWidth, w.skin.Border)
	}
}

// drawLine draws one line of text with the skin's theme and a drop shadow.
func (w *windowBase) drawLine(dst *ebiten.Image, s string, x, y int) {
	ff, ok := w.font.(FaceFont)
	if !ok || s == "" {
		return
	}
	for _, off := range shadowOffsets {
		drawFaceText(dst, ff, s, x+off[0], y+off[1], w.skin.Text.Shadow)
	}
	drawFaceText(dst, ff, s, x, y, w.skin.Text.Base)
}

func (w *windowBase) dispose(kind string) bool {
	if w.disposed {
		return false
	}
	debugLog("dispose %s %q", kind, w.name)
	w.disposed = true
	return true
}
