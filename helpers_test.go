package arbor

import (
	"fmt"
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fixedFont measures every rune as 6px wide, except the ellipsis at 12px.
// Lines are 10px tall.
type fixedFont struct{}

func (fixedFont) MeasureString(s string) (float64, float64) {
	w := 0
	for _, r := range s {
		if r == '…' {
			w += 12
		} else {
			w += 6
		}
	}
	return float64(w), 10
}

func (fixedFont) LineHeight() float64 { return 10 }

// testSprite is a minimal Sprite that counts Dispose and Update calls.
type testSprite struct {
	spriteBase
	disposeCalls int
	updateCalls  int
}

func newTestSprite(name string, x, y, z int) *testSprite {
	s := &testSprite{spriteBase: newSpriteBase(name)}
	s.x, s.y, s.z = x, y, z
	return s
}

func (s *testSprite) Update(dt float64) { s.updateCalls++ }

func (s *testSprite) Dispose() {
	s.disposeCalls++
	s.disposed = true
}

// spriteAt returns a factory placing a testSprite at (x, y, z).
func spriteAt(x, y, z int) func(*Container) Sprite {
	return func(c *Container) Sprite {
		return newTestSprite(fmt.Sprintf("s%d_%d_%d", x, y, z), x, y, z)
	}
}

// canvasCall is one recorded drawing operation.
type canvasCall struct {
	op    string
	s     string
	x, y  int
	src   image.Rectangle
	align TextAlign
	theme TextTheme
	lines int
}

// recordingCanvas is a Canvas that records calls and measures with fixedFont.
type recordingCanvas struct {
	w, h  int
	calls []canvasCall
}

func newRecordingCanvas(w, h int) Canvas { return &recordingCanvas{w: w, h: h} }

func (c *recordingCanvas) Size() (int, int) { return c.w, c.h }

func (c *recordingCanvas) Clear() {
	c.calls = append(c.calls, canvasCall{op: "clear"})
}

func (c *recordingCanvas) DrawImage(img *ebiten.Image, x, y int, src image.Rectangle) {
	c.calls = append(c.calls, canvasCall{op: "image", x: x, y: y, src: src})
}

func (c *recordingCanvas) DrawText(s string, x, y int, align TextAlign, theme TextTheme, outline OutlineStyle) {
	c.calls = append(c.calls, canvasCall{op: "text", s: s, x: x, y: y, align: align, theme: theme})
}

func (c *recordingCanvas) DrawParagraph(s string, x, y, width, maxLines int, theme TextTheme) {
	c.calls = append(c.calls, canvasCall{op: "paragraph", s: s, x: x, y: y, theme: theme, lines: maxLines})
}

func (c *recordingCanvas) TextWidth(s string) int { return textWidth(fixedFont{}, s) }

// expectPanic runs fn and returns the recovered value, failing the test if
// fn returned normally.
func expectPanic(t *testing.T, fn func()) (r any) {
	t.Helper()
	defer func() { r = recover() }()
	fn()
	t.Fatal("expected panic, got none")
	return nil
}
