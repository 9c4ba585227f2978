package arbor

import (
	"testing"
)

func testSkin() WindowSkin {
	skin := DefaultWindowSkin()
	skin.Padding = 12
	return skin
}

// --- TextWindow ---

func TestTextWindowPaging(t *testing.T) {
	w := NewTextWindow("box", fixedFont{}, testSkin(), 320, 2, 0)
	if w.Visible() {
		t.Error("text window should start hidden")
	}
	w.SetText("one\ntwo\nthree")

	if !w.Busy() || !w.Pausing() {
		t.Fatalf("Busy = %v, Pausing = %v, want true, true", w.Busy(), w.Pausing())
	}
	if got := w.VisibleText(); got != "one\ntwo" {
		t.Errorf("VisibleText() = %q, want first page", got)
	}
	if !w.Resume() {
		t.Error("Resume() at a page break = false, want true")
	}
	if w.Busy() || w.Pausing() {
		t.Errorf("after last page Busy = %v, Pausing = %v", w.Busy(), w.Pausing())
	}
	if got := w.VisibleText(); got != "three" {
		t.Errorf("VisibleText() = %q, want three", got)
	}
	if !w.Resume() {
		t.Error("Resume() when idle = false, want true")
	}
}

func TestTextWindowStreaming(t *testing.T) {
	w := NewTextWindow("box", fixedFont{}, testSkin(), 320, 2, 2)
	w.SetText("Hello")

	w.Update(0)
	if got := w.VisibleText(); got != "He" {
		t.Errorf("after 1 update VisibleText() = %q, want He", got)
	}
	if !w.Busy() || w.Pausing() {
		t.Errorf("streaming Busy = %v, Pausing = %v", w.Busy(), w.Pausing())
	}
	if w.Resume() {
		t.Error("Resume() while streaming = true, want false")
	}
	if got := w.VisibleText(); got != "Hello" || w.Busy() {
		t.Errorf("after Resume VisibleText() = %q, Busy = %v", got, w.Busy())
	}
}

func TestTextWindowSizing(t *testing.T) {
	w := NewTextWindow("box", fixedFont{}, testSkin(), 320, 2, 0)
	if w.Height() != 44 {
		t.Errorf("Height() = %d, want 44", w.Height())
	}
	w.SetLines(4)
	if w.Height() != 64 || w.Lines() != 4 {
		t.Errorf("SetLines(4): Height() = %d, Lines() = %d", w.Height(), w.Lines())
	}
	// 100px wide leaves 76px for text: 12 characters per line.
	w.ResizeHeightToFit("aaaa bbbb cccc dddd", 100)
	if w.Width() != 100 || w.Lines() != 2 || w.Height() != 44 {
		t.Errorf("ResizeHeightToFit: %dx%d, %d lines", w.Width(), w.Height(), w.Lines())
	}

	BottomLeftLines(w, 3, 320, 240)
	if w.Width() != 320 || w.Height() != 54 || w.X() != 0 || w.Y() != 186 {
		t.Errorf("BottomLeftLines: %dx%d at (%d, %d)", w.Width(), w.Height(), w.X(), w.Y())
	}
}

func TestTextWindowDispose(t *testing.T) {
	w := NewTextWindow("box", fixedFont{}, testSkin(), 320, 2, 1)
	w.Dispose()
	w.Dispose()
	w.Update(0)
	if !w.Resume() {
		t.Error("Resume() on a disposed window = false, want true")
	}
	expectPanic(t, func() { w.SetText("x") })
}

// --- CommandWindow ---

func TestCommandWindowCursor(t *testing.T) {
	in := NewScriptedInput().Press(ActionDown).Press(ActionDown).Press(ActionDown).Press(ActionUp)
	snd := &recordingSound{}
	w := NewCommandWindow("cmd", []string{"Use", "Give", "Toss"}, fixedFont{}, testSkin(), in, snd)

	wants := []int{1, 2, 0, 2}
	for i, want := range wants {
		in.Update()
		w.Update(0)
		if w.Index() != want {
			t.Errorf("step %d: Index() = %d, want %d", i, w.Index(), want)
		}
	}
	if len(snd.played) != 4 {
		t.Errorf("cursor sounds = %d, want 4", len(snd.played))
	}
}

func TestCommandWindowHiddenIgnoresInput(t *testing.T) {
	in := NewScriptedInput().Press(ActionDown)
	w := NewCommandWindow("cmd", []string{"Yes", "No"}, fixedFont{}, testSkin(), in, nil)
	w.SetVisible(false)
	in.Update()
	w.Update(0)
	if w.Index() != 0 {
		t.Errorf("hidden window moved to %d", w.Index())
	}
}

func TestCommandWindowSize(t *testing.T) {
	w := NewCommandWindow("cmd", []string{"Yes", "No"}, fixedFont{}, testSkin(), nil, nil)
	if w.Width() != 58 || w.Height() != 44 {
		t.Errorf("size = %dx%d, want 58x44", w.Width(), w.Height())
	}
}

func TestCommandWindowScroll(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f"}
	w := NewCommandWindow("cmd", names, fixedFont{}, testSkin(), nil, nil)
	w.SetHeight(54) // three rows
	if w.Rows() != 3 {
		t.Fatalf("Rows() = %d, want 3", w.Rows())
	}
	tests := []struct{ index, top int }{
		{2, 0},
		{4, 2},
		{5, 3},
		{1, 1},
		{-3, 0},
		{99, 3},
	}
	for _, tt := range tests {
		w.SetIndex(tt.index)
		if w.TopRow() != tt.top {
			t.Errorf("SetIndex(%d): TopRow() = %d, want %d", tt.index, w.TopRow(), tt.top)
		}
	}
	if w.Index() != 5 {
		t.Errorf("Index() = %d, want clamped 5", w.Index())
	}
}

// --- NumberWindow ---

func TestNumberWindow(t *testing.T) {
	tests := []struct {
		name   string
		params NumberParams
		press  []Action
		want   int
	}{
		{"up", NumberParams{0, 5, 2}, []Action{ActionUp}, 3},
		{"up wraps", NumberParams{0, 5, 5}, []Action{ActionUp}, 0},
		{"down wraps", NumberParams{1, 5, 1}, []Action{ActionDown}, 5},
		{"right", NumberParams{0, 50, 5}, []Action{ActionRight}, 15},
		{"right clamps", NumberParams{0, 50, 45}, []Action{ActionRight}, 50},
		{"left clamps", NumberParams{3, 50, 5}, []Action{ActionLeft}, 3},
		{"swapped bounds", NumberParams{9, 0, 20}, nil, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewScriptedInput()
			for _, a := range tt.press {
				in.Press(a)
			}
			w := NewNumberWindow("num", tt.params, fixedFont{}, testSkin(), in, nil)
			for range tt.press {
				in.Update()
				w.Update(0)
			}
			if w.Value() != tt.want {
				t.Errorf("Value() = %d, want %d", w.Value(), tt.want)
			}
		})
	}
}

func TestNumberWindowSetValue(t *testing.T) {
	w := NewNumberWindow("num", NumberParams{Min: 1, Max: 10}, fixedFont{}, testSkin(), nil, nil)
	if w.Value() != 1 {
		t.Errorf("initial Value() = %d, want 1 (clamped)", w.Value())
	}
	w.SetValue(42)
	if w.Value() != 10 {
		t.Errorf("Value() = %d, want 10", w.Value())
	}
	w.Dispose()
	expectPanic(t, func() { w.SetValue(3) })
}

// --- Placement ---

func TestPlacement(t *testing.T) {
	w := NewCommandWindow("cmd", []string{"Yes", "No"}, fixedFont{}, testSkin(), nil, nil)
	BottomRight(w, 320, 240)
	if w.X() != 262 || w.Y() != 196 {
		t.Errorf("BottomRight = (%d, %d), want (262, 196)", w.X(), w.Y())
	}
	BottomLeft(w, 320, 240)
	if w.X() != 0 || w.Y() != 196 {
		t.Errorf("BottomLeft = (%d, %d), want (0, 196)", w.X(), w.Y())
	}
}

func TestNumberParamsNormalized(t *testing.T) {
	tests := []struct {
		in, want NumberParams
	}{
		{NumberParams{Min: 0, Max: 10, Initial: 4}, NumberParams{Min: 0, Max: 10, Initial: 4}},
		{NumberParams{Min: 10, Max: 2, Initial: 20}, NumberParams{Min: 2, Max: 10, Initial: 10}},
		{NumberParams{Min: -5, Max: 3, Initial: -2}, NumberParams{Min: 0, Max: 3, Initial: 0}},
		{NumberParams{Min: -9, Max: -1, Initial: -4}, NumberParams{Min: 0, Max: 0, Initial: 0}},
	}
	for _, tt := range tests {
		if got := tt.in.normalized(); got != tt.want {
			t.Errorf("%+v.normalized() = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
