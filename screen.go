package arbor

// Visuals is what a Screen drives. *Scene implements it; screen types that
// embed *Scene can override any method (a cursor Index, their own
// UpdateInput) and the Screen calls the override. NewScreen also binds an
// embedded scene to the value it drives, so dialog frames run an
// overridden UpdateVisuals as well.
type Visuals interface {
	FadeIn()
	FadeOut()
	Dispose()
	IsDisposed() bool

	// Index is the cursor position, for screens that have one.
	Index() int
	// RefreshOnIndexChanged is called when Index changes during Navigate.
	RefreshOnIndexChanged(oldIndex int)
	// UpdateInput maps this frame's input to a command, or CommandNone.
	UpdateInput() Command
	UpdateVisuals()
	Refresh()
	AdvanceFrame()

	ShowMessage(text string)
	ShowConfirmMessage(text string) bool
	ShowChoiceMessage(text string, opts Options, index int, layout ChoiceLayout) Selection
	ShowChoice(opts Options, index int) Selection
	ChooseNumber(prompt string, params NumberParams) (int, bool)
}

// ScreenConfig configures NewScreen. All fields are optional.
type ScreenConfig struct {
	Actions ActionLookup
	Menus   MenuLookup
	Events  EventSink
}

// Screen drives one Visuals: it fades it in, runs the navigation loop,
// resolves commands through the action table and fades it out.
type Screen struct {
	id       string
	visuals  Visuals
	cfg      ScreenConfig
	disposed bool

	// Result is free for effects to store what the screen returns to its
	// caller.
	Result any
	// OnStartMainLoop, when set, runs at the top of every Main iteration.
	OnStartMainLoop func(s *Screen)
}

// NewScreen creates a screen with the given action-table id.
func NewScreen(id string, visuals Visuals, cfg ScreenConfig) *Screen {
	if b, ok := visuals.(interface{ bindVisuals(Visuals) }); ok {
		b.bindVisuals(visuals)
	}
	return &Screen{id: id, visuals: visuals, cfg: cfg}
}

// ID returns the screen's action-table id.
func (s *Screen) ID() string { return s.id }

// Visuals returns the driven visuals.
func (s *Screen) Visuals() Visuals { return s.visuals }

// IsDisposed reports whether the screen has ended.
func (s *Screen) IsDisposed() bool { return s.disposed }

// Index returns the visuals' cursor position.
func (s *Screen) Index() int { return s.visuals.Index() }

func (s *Screen) emit(ev ScreenEvent) {
	ev.Screen = s.id
	emit(s.cfg.Events, ev)
}

// --- Lifecycle ---

// Start fades the visuals in.
func (s *Screen) Start() {
	s.visuals.FadeIn()
	debugLog("screen %q started", s.id)
	s.emit(ScreenEvent{Type: EventScreenStart})
}

// End fades the visuals out and disposes them. Later calls do nothing.
func (s *Screen) End() {
	if s.disposed {
		return
	}
	s.visuals.FadeOut()
	s.finish()
}

// SilentEnd disposes the visuals without fading. Later calls do nothing.
func (s *Screen) SilentEnd() {
	if s.disposed {
		return
	}
	s.finish()
}

func (s *Screen) finish() {
	s.visuals.Dispose()
	s.disposed = true
	debugLog("screen %q ended", s.id)
	s.emit(ScreenEvent{Type: EventScreenEnd})
}

// ShowAndHide starts the screen, runs fn, then ends it.
func (s *Screen) ShowAndHide(fn func(s *Screen)) {
	s.Start()
	if fn != nil {
		fn(s)
	}
	s.End()
}

// Main runs the screen: start, then navigate and perform actions until a
// command (or an action's returned value) is CommandQuit or the screen ends
// during an action, then end.
func (s *Screen) Main() {
	s.Start()
	for {
		if s.OnStartMainLoop != nil {
			s.OnStartMainLoop(s)
		}
		cmd := s.Navigate()
		if cmd == CommandQuit {
			break
		}
		if s.PerformAction(cmd) == CommandQuit {
			break
		}
		if s.disposed {
			break
		}
	}
	s.End()
}

// Navigate blocks until the visuals report a command. Each frame it checks
// the cursor index around UpdateVisuals and around UpdateInput and calls
// RefreshOnIndexChanged when it moved.
func (s *Screen) Navigate() Command {
	v := s.visuals
	for {
		v.AdvanceFrame()
		old := v.Index()
		v.UpdateVisuals()
		s.checkIndex(old)
		old = v.Index()
		cmd := v.UpdateInput()
		s.checkIndex(old)
		if cmd != CommandNone {
			debugLog("screen %q: command %q", s.id, cmd)
			s.emit(ScreenEvent{Type: EventCommand, Command: cmd})
			return cmd
		}
	}
}

func (s *Screen) checkIndex(old int) {
	if idx := s.visuals.Index(); idx != old {
		s.visuals.RefreshOnIndexChanged(old)
		s.emit(ScreenEvent{Type: EventIndexChanged, Index: idx})
	}
}

// --- Actions ---

// PerformAction resolves cmd through the action table. Missing entries and
// failed conditions resolve to CommandNone. A menu entry shows its options
// and resolves the chosen key in turn. An effect's result is returned only
// when the entry has ReturnsValue.
func (s *Screen) PerformAction(cmd Command) Command {
	if s.cfg.Actions == nil {
		return CommandNone
	}
	entry, ok := s.cfg.Actions.Lookup(s.id, cmd)
	if !ok {
		return CommandNone
	}
	if entry.Condition != nil && !entry.Condition(s) {
		debugLog("screen %q: %q condition failed", s.id, cmd)
		return CommandNone
	}
	s.emit(ScreenEvent{Type: EventAction, Command: cmd})
	switch {
	case entry.Menu != "":
		var msg string
		if entry.MenuMessage != nil {
			msg = entry.MenuMessage(s)
		}
		sel := s.ShowChoiceFromMenuHandler(entry.Menu, msg)
		if sel.Cancelled() {
			return CommandNone
		}
		return s.PerformAction(sel.Key)
	case entry.Effect != nil:
		ret := entry.Effect(s)
		if entry.ReturnsValue {
			return ret
		}
	}
	return CommandNone
}

// ShowChoiceFromMenuHandler shows the available options of menuID, with
// message in the speech box when it is not empty. An empty menu returns
// NoSelection without showing anything.
func (s *Screen) ShowChoiceFromMenuHandler(menuID, message string) Selection {
	if s.cfg.Menus == nil {
		return NoSelection
	}
	opts := s.cfg.Menus.Available(menuID, s)
	if len(opts) == 0 {
		debugLog("screen %q: menu %q has no options", s.id, menuID)
		return NoSelection
	}
	if message != "" {
		return s.visuals.ShowChoiceMessage(message, opts, 0, ChoiceLayout{})
	}
	return s.visuals.ShowChoice(opts, 0)
}

// --- Pass-throughs ---

// ShowMessage shows a message on the visuals.
func (s *Screen) ShowMessage(text string) { s.visuals.ShowMessage(text) }

// ShowConfirmMessage asks a yes/no question.
func (s *Screen) ShowConfirmMessage(text string) bool { return s.visuals.ShowConfirmMessage(text) }

// ShowChoiceMessage shows text with a choice.
func (s *Screen) ShowChoiceMessage(text string, opts Options, index int, layout ChoiceLayout) Selection {
	return s.visuals.ShowChoiceMessage(text, opts, index, layout)
}

// ShowChoice shows a standalone choice.
func (s *Screen) ShowChoice(opts Options, index int) Selection {
	return s.visuals.ShowChoice(opts, index)
}

// ChooseNumber asks for a number.
func (s *Screen) ChooseNumber(prompt string, params NumberParams) (int, bool) {
	return s.visuals.ChooseNumber(prompt, params)
}

// Refresh redraws the visuals.
func (s *Screen) Refresh() { s.visuals.Refresh() }

// Update advances the visuals one frame without input.
func (s *Screen) Update() { s.visuals.UpdateVisuals() }
