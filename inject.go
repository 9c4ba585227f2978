package arbor

// scriptedFrame is the input state of one loop iteration.
type scriptedFrame struct {
	actions [actionCount]bool
	clicked bool
	clickX  int
	clickY  int
}

// ScriptedInput is a deterministic Input for tests and replays. Each Update
// consumes one queued frame; once the queue is empty, nothing is triggered.
type ScriptedInput struct {
	queue   []scriptedFrame
	current scriptedFrame
	frames  int
}

// NewScriptedInput creates an empty script.
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{}
}

// Press queues one frame in which all the given actions trigger together.
func (s *ScriptedInput) Press(actions ...Action) *ScriptedInput {
	var f scriptedFrame
	for _, a := range actions {
		if a < actionCount {
			f.actions[a] = true
		}
	}
	s.queue = append(s.queue, f)
	return s
}

// Wait queues n idle frames.
func (s *ScriptedInput) Wait(n int) *ScriptedInput {
	for range n {
		s.queue = append(s.queue, scriptedFrame{})
	}
	return s
}

// Click queues one frame with a click at (x, y).
func (s *ScriptedInput) Click(x, y int) *ScriptedInput {
	s.queue = append(s.queue, scriptedFrame{clicked: true, clickX: x, clickY: y})
	return s
}

// Update pops the next frame.
func (s *ScriptedInput) Update() {
	s.frames++
	if len(s.queue) == 0 {
		s.current = scriptedFrame{}
		return
	}
	s.current = s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]
}

// Triggered reports whether a fires in the current frame.
func (s *ScriptedInput) Triggered(a Action) bool {
	return a < actionCount && s.current.actions[a]
}

// Clicked reports the current frame's click.
func (s *ScriptedInput) Clicked() (int, int, bool) {
	return s.current.clickX, s.current.clickY, s.current.clicked
}

// Remaining returns the number of queued frames not yet consumed.
func (s *ScriptedInput) Remaining() int { return len(s.queue) }

// Done reports whether every queued frame has been consumed.
func (s *ScriptedInput) Done() bool { return len(s.queue) == 0 }

// Frames returns how many times Update has been called.
func (s *ScriptedInput) Frames() int { return s.frames }
