package widgets

import (
	"image"
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/arbor"
)

// monoFont measures every rune as 6px wide with 10px lines.
type monoFont struct{}

func (monoFont) MeasureString(s string) (float64, float64) {
	return float64(6 * len([]rune(s))), 10
}

func (monoFont) LineHeight() float64 { return 10 }

// textCanvas records the strings drawn since the last Clear.
type textCanvas struct {
	w, h  int
	texts []string
}

func (c *textCanvas) Size() (int, int) { return c.w, c.h }
func (c *textCanvas) Clear()           { c.texts = nil }
func (c *textCanvas) DrawImage(*ebiten.Image, int, int, image.Rectangle) {
}

func (c *textCanvas) DrawText(s string, x, y int, align arbor.TextAlign, theme arbor.TextTheme, outline arbor.OutlineStyle) {
	c.texts = append(c.texts, s)
}

func (c *textCanvas) DrawParagraph(s string, x, y, width, maxLines int, theme arbor.TextTheme) {
	c.texts = append(c.texts, s)
}

func (c *textCanvas) TextWidth(s string) int { return 6 * len([]rune(s)) }

const originX, originY = 40, 300

func newTestControls(in arbor.PointerInput) (*PlayControls, *textCanvas) {
	var canvas *textCanvas
	parent := arbor.NewViewport(0, 0, 640, 480)
	parent.Z = 100
	p := NewPlayControls(originX, originY, 520, 60, parent, in, Options{
		Font: monoFont{},
		CanvasFactory: func(w, h int) arbor.Canvas {
			canvas = &textCanvas{w: w, h: h}
			return canvas
		},
	})
	return p, canvas
}

// click queues a click at the given point relative to the strip and runs
// one update.
func click(p *PlayControls, in *arbor.ScriptedInput, x, y int) {
	in.Click(p.X()+x, p.Y()+y)
	in.Update()
	p.Update(0)
}

func slowdownX(i int) int {
	return SlowdownButtonX + (SlowdownButtonWidth+SlowdownButtonSpacing)*i + 5
}

func TestPlayControlsDefaults(t *testing.T) {
	p, canvas := newTestControls(nil)
	if p.Slowdown() != 1 || p.Looping() || p.Duration() != 0 {
		t.Errorf("Slowdown = %d, Looping = %v, Duration = %d", p.Slowdown(), p.Looping(), p.Duration())
	}
	if got := p.Highlighted(); !slices.Equal(got, []int{1}) {
		t.Errorf("Highlighted() = %v, want [1]", got)
	}
	if p.Viewport().Z != 110 {
		t.Errorf("viewport Z = %d, want 110", p.Viewport().Z)
	}
	if !p.find("play").node.Visible() || p.find("stop").node.Visible() {
		t.Error("play should be shown and stop hidden")
	}
	if n := p.find("play").node; n.X() != originX+PlayButtonX || n.Y() != originY+PlayButtonY {
		t.Errorf("play at (%d, %d)", n.X(), n.Y())
	}
	for _, want := range []string{"Slowdown factor", "Duration", "0s", "1", "8"} {
		if !slices.Contains(canvas.texts, want) {
			t.Errorf("overlay missing %q, got %q", want, canvas.texts)
		}
	}
}

func TestPlayControlsPlayNeedsDuration(t *testing.T) {
	in := arbor.NewScriptedInput()
	p, canvas := newTestControls(in)

	click(p, in, PlayButtonX+5, PlayButtonY+5)
	if c := p.Requested(); c != nil {
		t.Errorf("Requested() = %v with no duration, want nil", c)
	}

	p.SetDuration(50)
	if !slices.Contains(canvas.texts, "2.5s") {
		t.Errorf("overlay = %q, want 2.5s", canvas.texts)
	}
	click(p, in, PlayButtonX+5, PlayButtonY+5)
	if c := p.Requested(); c != (PlayButton{}) {
		t.Errorf("Requested() = %v, want PlayButton", c)
	}
	if c := p.Requested(); c != nil {
		t.Errorf("second Requested() = %v, want nil", c)
	}
}

func TestPlayControlsSlowdown(t *testing.T) {
	in := arbor.NewScriptedInput()
	p, _ := newTestControls(in)

	for i, f := range SlowdownFactors {
		click(p, in, slowdownX(i), SlowdownButtonY+5)
		if p.Slowdown() != f {
			t.Errorf("after clicking button %d Slowdown() = %d, want %d", i, p.Slowdown(), f)
		}
		if got := p.Highlighted(); !slices.Equal(got, []int{f}) {
			t.Errorf("Highlighted() = %v, want [%d]", got, f)
		}
	}
}

func TestPlayControlsLoopToggle(t *testing.T) {
	in := arbor.NewScriptedInput()
	p, _ := newTestControls(in)

	click(p, in, LoopButtonX+3, LoopButtonY+3)
	if !p.Looping() || p.find("loop").node.Visible() || !p.find("unloop").node.Visible() {
		t.Error("loop click should switch to looping")
	}
	click(p, in, LoopButtonX+3, LoopButtonY+3)
	if p.Looping() || !p.find("loop").node.Visible() || p.find("unloop").node.Visible() {
		t.Error("unloop click should switch back")
	}
}

func TestPlayControlsPlaying(t *testing.T) {
	in := arbor.NewScriptedInput()
	p, _ := newTestControls(in)
	p.SetDuration(20)

	p.PrepareToPlay()
	click(p, in, slowdownX(3), SlowdownButtonY+5)
	if p.Slowdown() != 1 {
		t.Errorf("slowdown changed to %d while playing", p.Slowdown())
	}
	// The strip is hidden and shown again; stop must stay up.
	p.SetVisible(false)
	p.SetVisible(true)
	if !p.find("stop").node.Visible() || p.find("play").node.Visible() {
		t.Error("stop should be shown and play hidden while playing")
	}
	click(p, in, PlayButtonX+5, PlayButtonY+5)
	if c := p.Requested(); c != (StopButton{}) {
		t.Errorf("Requested() = %v, want StopButton", c)
	}

	p.EndPlaying()
	click(p, in, slowdownX(3), SlowdownButtonY+5)
	if p.Slowdown() != 6 {
		t.Errorf("Slowdown() = %d, want 6", p.Slowdown())
	}
	if !p.find("play").node.Visible() || p.find("stop").node.Visible() {
		t.Error("play should be shown again after EndPlaying")
	}
}

func TestPlayControlsMove(t *testing.T) {
	in := arbor.NewScriptedInput()
	p, _ := newTestControls(in)
	p.SetPosition(0, 0)
	click(p, in, slowdownX(1), SlowdownButtonY+5)
	if p.Slowdown() != 2 {
		t.Errorf("Slowdown() = %d after moving, want 2", p.Slowdown())
	}
	// A click where the button used to be does nothing.
	in.Click(originX+slowdownX(4), originY+SlowdownButtonY+5)
	in.Update()
	p.Update(0)
	if p.Slowdown() != 2 {
		t.Errorf("Slowdown() = %d, want 2", p.Slowdown())
	}
}

func TestPlayControlsPressLabel(t *testing.T) {
	p, _ := newTestControls(nil)
	p.Press(Label{Text: "Duration"})
	if p.Requested() != nil || p.Slowdown() != 1 || p.Looping() {
		t.Error("pressing a label should do nothing")
	}
}

func TestPlayControlsDispose(t *testing.T) {
	p, _ := newTestControls(nil)
	play := p.find("play").node
	p.Dispose()
	p.Dispose()
	if !p.IsDisposed() || !play.IsDisposed() {
		t.Error("strip and its buttons should be disposed")
	}
	p.Update(0)
}
