package arbor

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// cursorIndent is the space reserved left of each command for the cursor.
const cursorIndent = 16

// CommandWindow is a vertical list of commands with a cursor. Up and down
// move the cursor with wraparound while the window is visible.
type CommandWindow struct {
	windowBase

	commands []string
	index    int
	topRow   int

	input Input
	sound SoundPlayer
}

// NewCommandWindow creates a window sized to fit commands.
func NewCommandWindow(name string, commands []string, font Font, skin WindowSkin, input Input, sound SoundPlayer) *CommandWindow {
	if sound == nil {
		sound = NopSound{}
	}
	w := &CommandWindow{
		windowBase: newWindowBase(name, font, skin),
		commands:   append([]string(nil), commands...),
		input:      input,
		sound:      sound,
	}
	widest := 0
	for _, c := range commands {
		widest = max(widest, textWidth(font, c))
	}
	w.width = widest + cursorIndent + 2*skin.Padding
	w.height = w.heightForLines(max(len(commands), 1))
	return w
}

// Commands returns the command labels.
func (w *CommandWindow) Commands() []string { return w.commands }

// Index returns the highlighted command.
func (w *CommandWindow) Index() int { return w.index }

// SetIndex moves the cursor to i, clamped into range.
func (w *CommandWindow) SetIndex(i int) {
	w.checkLive("SetIndex")
	if len(w.commands) == 0 {
		w.index = 0
		return
	}
	w.index = min(max(i, 0), len(w.commands)-1)
	w.scrollToIndex()
}

// SetHeight resizes the window; commands that no longer fit scroll.
func (w *CommandWindow) SetHeight(height int) {
	w.checkLive("SetHeight")
	w.height = max(height, w.heightForLines(1))
	w.scrollToIndex()
}

// Rows returns how many commands fit in the window at once.
func (w *CommandWindow) Rows() int {
	lh := lineHeight(w.font)
	return max((w.height-2*w.skin.Padding)/lh, 1)
}

// TopRow returns the first visible command.
func (w *CommandWindow) TopRow() int { return w.topRow }

func (w *CommandWindow) scrollToIndex() {
	rows := w.Rows()
	if w.index < w.topRow {
		w.topRow = w.index
	}
	if w.index >= w.topRow+rows {
		w.topRow = w.index - rows + 1
	}
	w.topRow = min(w.topRow, max(len(w.commands)-rows, 0))
}

// Update moves the cursor on up/down input.
func (w *CommandWindow) Update(dt float64) {
	if w.disposed || !w.visible || w.input == nil || len(w.commands) == 0 {
		return
	}
	n := len(w.commands)
	old := w.index
	switch {
	case w.input.Triggered(ActionUp):
		w.index = (w.index - 1 + n) % n
	case w.input.Triggered(ActionDown):
		w.index = (w.index + 1) % n
	}
	if w.index != old {
		w.sound.PlayCursor()
		w.scrollToIndex()
	}
}

// Draw renders the visible commands and the cursor.
func (w *CommandWindow) Draw(dst *ebiten.Image) {
	if w.disposed || !w.visible {
		return
	}
	w.drawFrame(dst)
	pad := w.skin.Padding
	lh := lineHeight(w.font)
	end := min(w.topRow+w.Rows(), len(w.commands))
	for i := w.topRow; i < end; i++ {
		y := w.y + pad + (i-w.topRow)*lh
		if i == w.index {
			fillRect(dst, w.x+pad/2, y, w.width-pad, lh, w.skin.Cursor)
		}
		w.drawLine(dst, w.commands[i], w.x+pad+cursorIndent, y)
	}
}

// Dispose releases the window.
func (w *CommandWindow) Dispose() {
	if w.dispose("command window") {
		w.input = nil
	}
}
