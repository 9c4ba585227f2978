package arbor

import (
	"strings"
	"testing"
)

func TestLoadInputScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "wait", "frames": 3},
			{"action": "press", "actions": ["confirm"]},
			{"action": "click", "x": 100, "y": 200},
			{"action": "press", "actions": ["Cancel", "up"]}
		]
	}`)

	in, err := LoadInputScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Remaining() != 6 {
		t.Fatalf("Remaining = %d, want 6", in.Remaining())
	}
	for range 3 {
		in.Update()
	}
	in.Update()
	if !in.Triggered(ActionConfirm) {
		t.Error("step 2 should trigger confirm")
	}
	in.Update()
	if x, y, ok := in.Clicked(); !ok || x != 100 || y != 200 {
		t.Errorf("Clicked = (%d, %d, %v), want (100, 200, true)", x, y, ok)
	}
	in.Update()
	if !in.Triggered(ActionCancel) || !in.Triggered(ActionUp) {
		t.Error("step 4 should trigger cancel and up")
	}
}

func TestLoadInputScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid json", `not json`, "parse input script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown step", `{"steps": [{"action": "screenshot"}]}`, "unknown action"},
		{"unknown input", `{"steps": [{"action": "press", "actions": ["jump"]}]}`, "jump"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadInputScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}
