package arbor

import "testing"

func TestAddFPSDisplay(t *testing.T) {
	c := newTestContainer()
	n := c.AddFPSDisplay("fps", 4, 4)
	if n.Z() != ZTop {
		t.Errorf("Z = %d, want %d", n.Z(), ZTop)
	}
	if n.Width() != 100 || n.Height() != 32 {
		t.Errorf("size = %dx%d, want 100x32", n.Width(), n.Height())
	}
	c.SetPosition(50, 50)
	if n.X() != 4 || n.Y() != 4 {
		t.Errorf("position = (%d, %d), want it left at (4, 4)", n.X(), n.Y())
	}
	// Redraws happen on the update that crosses half a second.
	n.Update(0.3)
	n.Update(0.3)
	if n.Image() == nil {
		t.Error("FPS display lost its image")
	}
}
