package arbor

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestStepDriverCountsFrames(t *testing.T) {
	var seen []int
	d := &StepDriver{OnFrame: func(f int) { seen = append(seen, f) }}
	for range 3 {
		d.AdvanceFrame()
	}
	if d.Frames != 3 {
		t.Errorf("Frames = %d, want 3", d.Frames)
	}
	if len(seen) != 3 || seen[2] != 3 {
		t.Errorf("OnFrame saw %v, want [1 2 3]", seen)
	}
}

func TestStepDriverMaxFramesPanics(t *testing.T) {
	d := &StepDriver{MaxFrames: 2}
	d.AdvanceFrame()
	d.AdvanceFrame()
	expectPanic(t, d.AdvanceFrame)
}

func TestHostHandOff(t *testing.T) {
	var steps []int
	h := NewHost(RunConfig{Width: 64, Height: 48}, func(h *Host) error {
		for i := range 3 {
			steps = append(steps, i)
			h.AdvanceFrame()
		}
		return nil
	})

	for i := range 3 {
		if err := h.Update(); err != nil {
			t.Fatalf("Update %d: %v", i, err)
		}
		// The logic goroutine is parked in AdvanceFrame here.
		if len(steps) != i+1 {
			t.Errorf("after Update %d: logic ran %d steps, want %d", i, len(steps), i+1)
		}
	}
	if err := h.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("final Update = %v, want ebiten.Termination", err)
	}
	if err := h.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after finish = %v, want ebiten.Termination", err)
	}
	if h.Frames() != 3 {
		t.Errorf("Frames = %d, want 3", h.Frames())
	}
}

func TestHostPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	h := NewHost(RunConfig{}, func(*Host) error { return boom })
	if err := h.Update(); !errors.Is(err, boom) {
		t.Errorf("Update = %v, want %v", err, boom)
	}
}

func TestHostRepanics(t *testing.T) {
	h := NewHost(RunConfig{}, func(*Host) error { panic("logic failed") })
	r := expectPanic(t, func() { _ = h.Update() })
	if r != "logic failed" {
		t.Errorf("panic = %v, want %q", r, "logic failed")
	}
}

type countingDrawable struct{ draws int }

func (c *countingDrawable) Draw(*ebiten.Image) { c.draws++ }

func TestHostPresentWithdraw(t *testing.T) {
	h := NewHost(RunConfig{Width: 8, Height: 8}, nil)
	d := &countingDrawable{}
	h.Present(d)
	h.Present(d)
	screen := ebiten.NewImage(8, 8)
	h.Draw(screen)
	if d.draws != 1 {
		t.Errorf("draws = %d, want 1", d.draws)
	}
	h.Withdraw(d)
	h.Draw(screen)
	if d.draws != 1 {
		t.Errorf("draws after Withdraw = %d, want 1", d.draws)
	}
	if w, hh := h.Layout(100, 100); w != 8 || hh != 8 {
		t.Errorf("Layout = (%d, %d), want (8, 8)", w, hh)
	}
}
