package arbor

import "testing"

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right edge excluded", 110, 70, false},
		{"last pixel", 109, 69, true},
		{"outside left", 5, 40, false},
		{"outside top", 50, 15, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestParseAction(t *testing.T) {
	for a := Action(0); a < actionCount; a++ {
		got, err := ParseAction(a.String())
		if err != nil {
			t.Errorf("ParseAction(%q): %v", a, err)
			continue
		}
		if got != a {
			t.Errorf("ParseAction(%q) = %v, want %v", a, got, a)
		}
	}
	if _, err := ParseAction("jump"); err == nil {
		t.Error("ParseAction(jump) should fail")
	}
	if got, _ := ParseAction(" Confirm "); got != ActionConfirm {
		t.Errorf("ParseAction is case sensitive: got %v", got)
	}
}

func TestDefaultKeyBindingsCoverEveryAction(t *testing.T) {
	b := DefaultKeyBindings()
	for a := Action(0); a < actionCount; a++ {
		if len(b[a]) == 0 {
			t.Errorf("no default key for %v", a)
		}
	}
}
