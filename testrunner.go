package arbor

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single entry in an input script.
type scriptStep struct {
	Action  string   `json:"action"`
	Actions []string `json:"actions,omitempty"`
	X       int      `json:"x,omitempty"`
	Y       int      `json:"y,omitempty"`
	Frames  int      `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// LoadInputScript parses a JSON input script into a ScriptedInput:
//
//	{"steps": [
//	  {"action": "wait", "frames": 30},
//	  {"action": "press", "actions": ["confirm"]},
//	  {"action": "click", "x": 241, "y": 8}
//	]}
func LoadInputScript(jsonData []byte) (*ScriptedInput, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("arbor: parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("arbor: parse input script: no steps")
	}
	in := NewScriptedInput()
	for i, st := range script.Steps {
		switch st.Action {
		case "press":
			actions := make([]Action, 0, len(st.Actions))
			for _, name := range st.Actions {
				a, err := ParseAction(name)
				if err != nil {
					return nil, fmt.Errorf("arbor: parse input script: step %d: %w", i, err)
				}
				actions = append(actions, a)
			}
			in.Press(actions...)
		case "wait":
			frames := st.Frames
			if frames < 1 {
				frames = 1
			}
			in.Wait(frames)
		case "click":
			in.Click(st.X, st.Y)
		default:
			return nil, fmt.Errorf("arbor: parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return in, nil
}
