package arbor

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a logical input the dialog and navigation loops react to.
type Action uint8

const (
	ActionConfirm Action = iota
	ActionCancel
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	actionCount
)

var actionNames = [actionCount]string{"confirm", "cancel", "up", "down", "left", "right"}

// String returns the lower-case action name.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// ParseAction converts a name such as "confirm" to an Action.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("arbor: unknown input action %q", name)
}

// UnmarshalText implements encoding.TextUnmarshaler so actions can be used as
// config map keys.
func (a *Action) UnmarshalText(b []byte) error {
	v, err := ParseAction(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Input is a per-iteration input snapshot. Update polls the backend once;
// Triggered then answers from that snapshot until the next Update, so every
// check in one loop iteration sees the same state.
type Input interface {
	Update()
	Triggered(a Action) bool
}

// PointerInput is implemented by inputs that report clicks or taps.
type PointerInput interface {
	Input
	// Clicked returns the position of a click that started this iteration.
	Clicked() (x, y int, ok bool)
}

// HitRect is an axis-aligned rectangular hit area in screen pixels.
type HitRect struct {
	X, Y, Width, Height int
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// DefaultKeyBindings returns the default keyboard mapping.
func DefaultKeyBindings() map[Action][]ebiten.Key {
	return map[Action][]ebiten.Key{
		ActionConfirm: {ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyC},
		ActionCancel:  {ebiten.KeyEscape, ebiten.KeyX, ebiten.KeyBackspace},
		ActionUp:      {ebiten.KeyArrowUp},
		ActionDown:    {ebiten.KeyArrowDown},
		ActionLeft:    {ebiten.KeyArrowLeft},
		ActionRight:   {ebiten.KeyArrowRight},
	}
}

// KeyboardInput reads Ebitengine's keyboard, mouse and touch state. The
// right mouse button counts as cancel. Must be updated from ebiten's Update
// goroutine side of a Host hand-off.
type KeyboardInput struct {
	bindings  map[Action][]ebiten.Key
	triggered [actionCount]bool

	clicked      bool
	clickX       int
	clickY       int
	touchScratch []ebiten.TouchID
}

// NewKeyboardInput creates a keyboard input. A nil bindings map uses
// DefaultKeyBindings.
func NewKeyboardInput(bindings map[Action][]ebiten.Key) *KeyboardInput {
	if bindings == nil {
		bindings = DefaultKeyBindings()
	}
	return &KeyboardInput{bindings: bindings}
}

// Update snapshots key triggers and clicks for this iteration.
func (in *KeyboardInput) Update() {
	for a := Action(0); a < actionCount; a++ {
		in.triggered[a] = false
		for _, k := range in.bindings[a] {
			if inpututil.IsKeyJustPressed(k) {
				in.triggered[a] = true
				break
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		in.triggered[ActionCancel] = true
	}

	in.clicked = false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.clickX, in.clickY = ebiten.CursorPosition()
		in.clicked = true
		return
	}
	in.touchScratch = inpututil.AppendJustPressedTouchIDs(in.touchScratch[:0])
	if len(in.touchScratch) > 0 {
		in.clickX, in.clickY = ebiten.TouchPosition(in.touchScratch[0])
		in.clicked = true
	}
}

// Triggered reports whether a was newly pressed this iteration.
func (in *KeyboardInput) Triggered(a Action) bool {
	return a < actionCount && in.triggered[a]
}

// Clicked returns this iteration's click or tap position.
func (in *KeyboardInput) Clicked() (int, int, bool) {
	return in.clickX, in.clickY, in.clicked
}
