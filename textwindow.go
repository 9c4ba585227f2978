package arbor

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// MessageWindow is a modal window that streams text page by page.
type MessageWindow interface {
	Sprite
	Placeable

	SetText(text string)
	Text() string

	// Busy reports whether text is still streaming or paused at a page break.
	Busy() bool
	// Pausing reports whether the window waits at a page break.
	Pausing() bool
	// Resume continues past a page break and returns true. While text is
	// still streaming it completes the current page and returns false. When
	// idle it returns true.
	Resume() bool

	// SetLines sets the window height to fit n lines per page.
	SetLines(n int)
	// ResizeHeightToFit resizes the window to width and tall enough to show
	// text on one page.
	ResizeHeightToFit(text string, width int)
}

// TextWindow is the built-in MessageWindow. Text is wrapped to the window
// width, split into pages of Lines lines and revealed Speed characters per
// update; a Speed of zero shows each page at once.
type TextWindow struct {
	windowBase

	text  string
	lines int
	speed float64

	pages    [][]string // wrapped lines per page, split into graphemes
	page     int
	pageLen  int
	shown    int
	progress float64
	pausing  bool
	blink    int
}

// NewTextWindow creates a hidden window of the given width showing lines
// lines per page.
func NewTextWindow(name string, font Font, skin WindowSkin, width, lines int, speed float64) *TextWindow {
	w := &TextWindow{windowBase: newWindowBase(name, font, skin), speed: speed}
	w.visible = false
	w.width = width
	w.SetLines(lines)
	return w
}

// Text returns the full text last set.
func (w *TextWindow) Text() string { return w.text }

// Lines returns the number of lines per page.
func (w *TextWindow) Lines() int { return w.lines }

// Speed returns the reveal speed in characters per update.
func (w *TextWindow) Speed() float64 { return w.speed }

// SetSpeed changes the reveal speed.
func (w *TextWindow) SetSpeed(speed float64) { w.speed = speed }

// SetText replaces the text and restarts streaming from the first page.
func (w *TextWindow) SetText(text string) {
	w.checkLive("SetText")
	w.text = text
	w.layout()
}

// SetLines sets the number of lines per page and the matching height.
func (w *TextWindow) SetLines(n int) {
	w.checkLive("SetLines")
	w.lines = max(n, 1)
	w.height = w.heightForLines(w.lines)
	w.layout()
}

// SetWidth resizes the window and rewraps the text.
func (w *TextWindow) SetWidth(width int) {
	w.windowBase.SetWidth(width)
	w.layout()
}

// ResizeHeightToFit sets the width and grows the height so text fits on a
// single page.
func (w *TextWindow) ResizeHeightToFit(text string, width int) {
	w.checkLive("ResizeHeightToFit")
	w.width = max(width, 0)
	n := len(WrapText(w.font, text, w.innerWidth()))
	w.lines = max(n, 1)
	w.height = w.heightForLines(w.lines)
	w.layout()
}

// BottomLeftLines sizes w to the full screen width and lines lines, then
// places it in the bottom-left corner.
func BottomLeftLines(w MessageWindow, lines, screenW, screenH int) {
	if tw, ok := w.(*TextWindow); ok {
		tw.width = screenW
	}
	w.SetLines(lines)
	BottomLeft(w, screenW, screenH)
}

func (w *TextWindow) layout() {
	w.pages = w.pages[:0]
	var cur []string
	for _, line := range WrapText(w.font, w.text, w.innerWidth()) {
		cur = append(cur, line)
		if len(cur) == w.lines {
			w.pages = append(w.pages, cur)
			cur = nil
		}
	}
	if len(cur) > 0 || len(w.pages) == 0 {
		w.pages = append(w.pages, cur)
	}
	w.startPage(0)
}

func (w *TextWindow) startPage(i int) {
	w.page = i
	w.pageLen = 0
	for _, line := range w.pages[i] {
		w.pageLen += len(graphemes(line))
	}
	w.shown = 0
	w.progress = 0
	w.pausing = false
	if w.speed <= 0 {
		w.finishPage()
	}
}

func (w *TextWindow) finishPage() {
	w.shown = w.pageLen
	w.progress = float64(w.pageLen)
	w.pausing = w.page < len(w.pages)-1
}

// Busy reports whether text remains to be shown.
func (w *TextWindow) Busy() bool {
	return w.page < len(w.pages)-1 || w.shown < w.pageLen
}

// Pausing reports whether the window waits at a page break.
func (w *TextWindow) Pausing() bool { return w.pausing }

// Resume advances past a page break or completes the current page.
func (w *TextWindow) Resume() bool {
	if w.disposed {
		return true
	}
	switch {
	case w.pausing:
		w.startPage(w.page + 1)
		return true
	case w.shown < w.pageLen:
		w.finishPage()
		return false
	}
	return true
}

// Update reveals more of the current page.
func (w *TextWindow) Update(dt float64) {
	if w.disposed {
		return
	}
	w.blink++
	if w.shown >= w.pageLen {
		return
	}
	w.progress += w.speed
	w.shown = min(int(w.progress), w.pageLen)
	if w.shown >= w.pageLen {
		w.finishPage()
	}
}

// VisibleText returns the part of the current page revealed so far.
func (w *TextWindow) VisibleText() string {
	if len(w.pages) == 0 {
		return ""
	}
	var sb strings.Builder
	left := w.shown
	for i, line := range w.pages[w.page] {
		if i > 0 {
			sb.WriteByte('\n')
		}
		g := graphemes(line)
		n := min(left, len(g))
		sb.WriteString(strings.Join(g[:n], ""))
		left -= n
	}
	return sb.String()
}

// Draw renders the frame, the revealed text and a blinking page-break marker.
func (w *TextWindow) Draw(dst *ebiten.Image) {
	if w.disposed || !w.visible {
		return
	}
	w.drawFrame(dst)
	pad := w.skin.Padding
	lh := lineHeight(w.font)
	for i, line := range strings.Split(w.VisibleText(), "\n") {
		w.drawLine(dst, line, w.x+pad, w.y+pad+i*lh)
	}
	if w.pausing && (w.blink/16)%2 == 0 {
		fillRect(dst, w.x+w.width-pad-8, w.y+w.height-pad-6, 8, 6, w.skin.Text.Base)
	}
}

// Dispose releases the window.
func (w *TextWindow) Dispose() {
	if w.dispose("text window") {
		w.pages = nil
	}
}
