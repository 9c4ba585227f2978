package arbor

// ChoiceAlign places the command window of ShowChoiceMessage relative to the
// speech box.
type ChoiceAlign uint8

const (
	ChoiceHorizontal ChoiceAlign = iota // beside the speech box
	ChoiceVertical                      // stacked above the speech box
)

// ChoiceSide selects which screen edge the command window is flush with.
type ChoiceSide uint8

const (
	ChoiceRight ChoiceSide = iota
	ChoiceLeft
)

// ChoiceLayout configures ShowChoiceMessage. The zero value puts the choices
// to the right of the speech box.
type ChoiceLayout struct {
	Align ChoiceAlign
	Side  ChoiceSide
}

// Dialog names used in events and debug output.
const (
	dialogMessage       = "message"
	dialogConfirm       = "confirm"
	dialogChoiceMessage = "choice-message"
	dialogChoice        = "choice"
	dialogNumber        = "number"
)

func (s *Scene) openDialog(kind string) {
	debugLog("scene %q: open %s dialog", s.cfg.Name, kind)
	emit(s.cfg.Events, ScreenEvent{Type: EventDialogOpen, Screen: s.cfg.Name, Dialog: kind})
}

func (s *Scene) closeDialog(kind string, index int) {
	debugLog("scene %q: close %s dialog (%d)", s.cfg.Name, kind, index)
	emit(s.cfg.Events, ScreenEvent{Type: EventDialogClose, Screen: s.cfg.Name, Dialog: kind, Index: index})
}

// streamText handles confirm input while box is busy: it plays the decision
// SE at a page break and resumes. It reports whether box was busy.
func (s *Scene) streamText(box MessageWindow) bool {
	if !box.Busy() {
		return false
	}
	if s.cfg.Input.Triggered(ActionConfirm) {
		if box.Pausing() {
			s.cfg.Sound.PlayDecision()
		}
		box.Resume()
	}
	return true
}

// restoreSpeechBox puts the speech box back to its default size and hides it.
func (s *Scene) restoreSpeechBox() {
	if s.speechBox.IsDisposed() {
		return
	}
	s.speechBox.SetVisible(false)
	BottomLeftLines(s.speechBox, s.cfg.Config.MessageLines, s.cfg.Width, s.cfg.Height)
}

func (s *Scene) newCommandWindow(name string, commands []string) *CommandWindow {
	w := NewCommandWindow(name, commands, s.cfg.Font, s.skin, s.cfg.Input, s.cfg.Sound)
	w.SetZ(s.modalZ())
	return w
}

// ShowMessage shows text in the speech box and blocks until the player has
// read it all: confirm advances through pages, then confirm or cancel closes
// the box.
func (s *Scene) ShowMessage(text string) {
	s.openDialog(dialogMessage)
	box := s.speechBox
	box.SetText(text)
	box.SetVisible(true)
	defer s.restoreSpeechBox()

	in := s.cfg.Input
	for {
		s.frame()
		if s.streamText(box) {
			continue
		}
		if in.Triggered(ActionConfirm) || in.Triggered(ActionCancel) {
			break
		}
	}
	s.closeDialog(dialogMessage, 0)
}

// ShowConfirmMessage shows text with a Yes/No choice once the text has
// finished. It returns true for Yes and false for No or cancel.
func (s *Scene) ShowConfirmMessage(text string) bool {
	s.openDialog(dialogConfirm)
	box := s.speechBox
	box.SetText(text)
	box.SetVisible(true)
	defer s.restoreSpeechBox()

	win := s.newCommandWindow("confirm_window", []string{s.T("Yes"), s.T("No")})
	BottomRight(win, s.cfg.Width, s.cfg.Height)
	win.SetY(win.Y() - box.Height())
	win.SetVisible(false)
	release := s.attach(win)
	defer release()

	in := s.cfg.Input
	for {
		s.frame()
		if s.streamText(box) {
			win.SetVisible(false)
			continue
		}
		win.SetVisible(true)
		switch {
		case in.Triggered(ActionCancel):
			s.cfg.Sound.PlayCancel()
			s.closeDialog(dialogConfirm, -1)
			return false
		case in.Triggered(ActionConfirm) && box.Resume():
			s.cfg.Sound.PlayDecision()
			s.closeDialog(dialogConfirm, win.Index())
			return win.Index() == 0
		}
	}
}

// ShowChoiceMessage shows text in the speech box together with a command
// window listing opts, starting at index. The command window only appears
// once the text has finished. It returns NoSelection when cancelled or when
// opts is empty.
func (s *Scene) ShowChoiceMessage(text string, opts Options, index int, layout ChoiceLayout) Selection {
	if len(opts) == 0 {
		return NoSelection
	}
	s.openDialog(dialogChoiceMessage)
	box := s.speechBox
	win := s.newCommandWindow("choice_window", opts.Names())
	win.SetIndex(index)
	s.layoutChoice(box, win, text, layout)
	box.SetText(text)
	box.SetVisible(true)
	defer s.restoreSpeechBox()

	win.SetVisible(false)
	release := s.attach(win)
	defer release()

	sel := s.runChoice(win, opts, box)
	s.closeDialog(dialogChoiceMessage, sel.Index)
	return sel
}

// layoutChoice sizes and places the speech box and command window.
func (s *Scene) layoutChoice(box MessageWindow, win *CommandWindow, text string, layout ChoiceLayout) {
	sw, sh := s.cfg.Width, s.cfg.Height
	switch layout.Align {
	case ChoiceVertical:
		box.ResizeHeightToFit(text, sw)
		box.SetPosition(0, sh-box.Height())
		if free := sh - box.Height(); win.Height() > free {
			win.SetHeight(free)
		}
		x := sw - win.Width()
		if layout.Side == ChoiceLeft {
			x = 0
		}
		win.SetPosition(x, sh-box.Height()-win.Height())
	default:
		box.ResizeHeightToFit(text, sw-win.Width())
		if win.Height() > sh {
			win.SetHeight(sh)
		}
		if layout.Side == ChoiceLeft {
			win.SetPosition(0, sh-win.Height())
			box.SetPosition(win.Width(), sh-box.Height())
		} else {
			box.SetPosition(0, sh-box.Height())
			win.SetPosition(sw-win.Width(), sh-win.Height())
		}
	}
}

// ShowChoice shows a standalone command window listing opts in the
// bottom-right corner. It returns NoSelection when cancelled or when opts is
// empty.
func (s *Scene) ShowChoice(opts Options, index int) Selection {
	if len(opts) == 0 {
		return NoSelection
	}
	s.openDialog(dialogChoice)
	win := s.newCommandWindow("choice_window", opts.Names())
	win.SetIndex(index)
	if win.Height() > s.cfg.Height {
		win.SetHeight(s.cfg.Height)
	}
	BottomRight(win, s.cfg.Width, s.cfg.Height)
	release := s.attach(win)
	defer release()

	sel := s.runChoice(win, opts, nil)
	s.closeDialog(dialogChoice, sel.Index)
	return sel
}

// runChoice runs the command window loop. box, when not nil, gates the
// window until its text has finished.
func (s *Scene) runChoice(win *CommandWindow, opts Options, box MessageWindow) Selection {
	in := s.cfg.Input
	for {
		s.frame()
		if box != nil && s.streamText(box) {
			win.SetVisible(false)
			continue
		}
		win.SetVisible(true)
		switch {
		case in.Triggered(ActionCancel):
			s.cfg.Sound.PlayCancel()
			return NoSelection
		case in.Triggered(ActionConfirm):
			s.cfg.Sound.PlayDecision()
			return opts.selectionAt(win.Index())
		}
	}
}

// ChooseNumber asks for a number between params.Min and params.Max through
// the scene's NumberChooser. It returns the number and true, or false if the
// player cancelled.
func (s *Scene) ChooseNumber(prompt string, params NumberParams) (int, bool) {
	s.openDialog(dialogNumber)
	n, ok := s.cfg.Numbers.ChooseNumber(s.numberContext(), prompt, params)
	s.restoreSpeechBox()
	idx := n
	if !ok {
		idx = -1
	}
	s.closeDialog(dialogNumber, idx)
	return n, ok
}

func (s *Scene) numberContext() NumberContext {
	return NumberContext{
		Driver: s.cfg.Driver,
		Input:  s.cfg.Input,
		Sound:  s.cfg.Sound,
		Box:    s.speechBox,
		Font:   s.cfg.Font,
		Skin:   s.skin,
		Width:  s.cfg.Width,
		Height: s.cfg.Height,
		Lines:  s.cfg.Config.MessageLines,
		Z:      s.modalZ(),
		Attach: s.attach,
		Update: s.updateVisuals,
	}
}
