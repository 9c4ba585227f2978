package arbor

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

// NumberParams bounds a numeric entry.
type NumberParams struct {
	Min     int
	Max     int
	Initial int
}

// normalized orders Min and Max, keeps both non-negative and clamps Initial
// into range.
func (p NumberParams) normalized() NumberParams {
	if p.Max < p.Min {
		p.Min, p.Max = p.Max, p.Min
	}
	p.Min = max(p.Min, 0)
	p.Max = max(p.Max, p.Min)
	p.Initial = min(max(p.Initial, p.Min), p.Max)
	return p
}

// NumberWindow edits an integer: up and down step by one with wraparound,
// left and right step by ten clamped to the bounds.
type NumberWindow struct {
	windowBase

	params NumberParams
	value  int

	input Input
	sound SoundPlayer
}

// NewNumberWindow creates a window sized to fit the widest value.
func NewNumberWindow(name string, params NumberParams, font Font, skin WindowSkin, input Input, sound SoundPlayer) *NumberWindow {
	if sound == nil {
		sound = NopSound{}
	}
	params = params.normalized()
	w := &NumberWindow{
		windowBase: newWindowBase(name, font, skin),
		params:     params,
		value:      params.Initial,
		input:      input,
		sound:      sound,
	}
	widest := max(textWidth(font, strconv.Itoa(params.Min)), textWidth(font, strconv.Itoa(params.Max)))
	w.width = widest + 2*cursorIndent + 2*skin.Padding
	w.height = w.heightForLines(1)
	return w
}

// Value returns the current number.
func (w *NumberWindow) Value() int { return w.value }

// SetValue sets the number, clamped to the bounds.
func (w *NumberWindow) SetValue(v int) {
	w.checkLive("SetValue")
	w.value = min(max(v, w.params.Min), w.params.Max)
}

// Update applies directional input.
func (w *NumberWindow) Update(dt float64) {
	if w.disposed || !w.visible || w.input == nil {
		return
	}
	p := w.params
	old := w.value
	switch {
	case w.input.Triggered(ActionUp):
		w.value++
		if w.value > p.Max {
			w.value = p.Min
		}
	case w.input.Triggered(ActionDown):
		w.value--
		if w.value < p.Min {
			w.value = p.Max
		}
	case w.input.Triggered(ActionRight):
		w.value = min(w.value+10, p.Max)
	case w.input.Triggered(ActionLeft):
		w.value = max(w.value-10, p.Min)
	}
	if w.value != old {
		w.sound.PlayCursor()
	}
}

// Draw renders the value right-aligned between two step markers.
func (w *NumberWindow) Draw(dst *ebiten.Image) {
	if w.disposed || !w.visible {
		return
	}
	w.drawFrame(dst)
	pad := w.skin.Padding
	s := strconv.Itoa(w.value)
	x := w.x + w.width - pad - cursorIndent - textWidth(w.font, s)
	w.drawLine(dst, s, x, w.y+pad)
	lh := lineHeight(w.font)
	fillRect(dst, w.x+pad, w.y+pad+lh/2-2, 6, 4, w.skin.Text.Base)
	fillRect(dst, w.x+w.width-pad-6, w.y+pad+lh/2-2, 6, 4, w.skin.Text.Base)
}

// Dispose releases the window.
func (w *NumberWindow) Dispose() {
	if w.dispose("number window") {
		w.input = nil
	}
}

// NumberContext is what a NumberChooser may use while it runs.
type NumberContext struct {
	Driver Driver
	Input  Input
	Sound  SoundPlayer
	// Box is the scene's speech box, used for the prompt.
	Box  MessageWindow
	Font Font
	Skin WindowSkin
	// Width and Height are the screen size.
	Width, Height int
	// Lines is the page height of the speech box.
	Lines int
	// Z is the depth to put modal windows at.
	Z int
	// Attach shows a temporary window until the returned release is called.
	Attach func(s Sprite) (release func())
	// Update is the scene's per-frame update hook.
	Update func()
}

// Frame advances one dialog iteration: frame, input, scene update.
func (ctx NumberContext) Frame() {
	ctx.Driver.AdvanceFrame()
	ctx.Input.Update()
	if ctx.Update != nil {
		ctx.Update()
	}
}

// NumberChooser runs a blocking numeric entry. It returns the confirmed value
// and true, or false if the player cancelled.
type NumberChooser interface {
	ChooseNumber(ctx NumberContext, prompt string, params NumberParams) (int, bool)
}

// NumberChooserFunc adapts a function to NumberChooser.
type NumberChooserFunc func(ctx NumberContext, prompt string, params NumberParams) (int, bool)

// ChooseNumber calls f.
func (f NumberChooserFunc) ChooseNumber(ctx NumberContext, prompt string, params NumberParams) (int, bool) {
	return f(ctx, prompt, params)
}

// WindowNumberChooser is the default NumberChooser: the prompt streams in the
// speech box, then a NumberWindow above its right edge takes input. On
// cancel it returns params.Initial and false.
type WindowNumberChooser struct{}

// ChooseNumber implements NumberChooser.
func (WindowNumberChooser) ChooseNumber(ctx NumberContext, prompt string, params NumberParams) (int, bool) {
	params = params.normalized()
	sound := ctx.Sound
	if sound == nil {
		sound = NopSound{}
	}
	box := ctx.Box
	box.SetVisible(true)
	box.SetText(prompt)
	lines := ctx.Lines
	if lines < 1 {
		lines = DefaultConfig().MessageLines
	}
	BottomLeftLines(box, lines, ctx.Width, ctx.Height)
	defer box.SetVisible(false)

	win := NewNumberWindow("number_window", params, ctx.Font, ctx.Skin, ctx.Input, sound)
	win.SetZ(ctx.Z)
	BottomRight(win, ctx.Width, ctx.Height)
	win.SetY(win.Y() - box.Height())
	win.SetVisible(!box.Busy())
	release := ctx.Attach(win)
	defer release()

	for {
		ctx.Frame()
		if box.Busy() {
			if ctx.Input.Triggered(ActionConfirm) {
				if box.Pausing() {
					sound.PlayDecision()
				}
				box.Resume()
			}
			continue
		}
		win.SetVisible(true)
		switch {
		case ctx.Input.Triggered(ActionCancel):
			sound.PlayCancel()
			return params.Initial, false
		case ctx.Input.Triggered(ActionConfirm):
			sound.PlayDecision()
			return win.Value(), true
		}
	}
}
