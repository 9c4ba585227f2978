package arbor

import (
	"cmp"
	"slices"
)

// Command is a navigation command returned by Navigate and resolved through
// the action table.
type Command string

const (
	// CommandNone means no command; Navigate keeps looping.
	CommandNone Command = ""
	// CommandQuit ends Screen.Main.
	CommandQuit Command = "quit"
)

// ActionEntry describes what a command does on one screen. Either Menu or
// Effect is normally set; Menu wins when both are.
type ActionEntry struct {
	// Condition, when set, must return true for the entry to run.
	Condition func(s *Screen) bool
	// Menu is a menu id; its available options are shown as a choice and the
	// chosen option's key is resolved in turn.
	Menu string
	// MenuMessage, when set, is evaluated each time the menu opens and shown
	// alongside the choice.
	MenuMessage func(s *Screen) string
	// Effect runs the command.
	Effect func(s *Screen) Command
	// ReturnsValue makes PerformAction return Effect's result. Without it the
	// result is discarded, so an effect cannot end the main loop by accident.
	ReturnsValue bool
}

// ActionLookup resolves (screen id, command) to an entry.
type ActionLookup interface {
	Lookup(screenID string, cmd Command) (ActionEntry, bool)
}

type actionKey struct {
	screen string
	cmd    Command
}

// ActionRegistry is the default ActionLookup, filled in by the application
// at startup.
type ActionRegistry struct {
	entries map[actionKey]ActionEntry
	order   map[string][]Command
}

// NewActionRegistry creates an empty registry.
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{
		entries: make(map[actionKey]ActionEntry),
		order:   make(map[string][]Command),
	}
}

// Register adds the entry for cmd on screenID. Panics with
// *DuplicateKeyError if one is already registered.
func (r *ActionRegistry) Register(screenID string, cmd Command, entry ActionEntry) {
	k := actionKey{screenID, cmd}
	if _, ok := r.entries[k]; ok {
		panic(&DuplicateKeyError{Owner: screenID, Key: string(cmd)})
	}
	r.entries[k] = entry
	r.order[screenID] = append(r.order[screenID], cmd)
}

// Lookup returns the entry for cmd on screenID.
func (r *ActionRegistry) Lookup(screenID string, cmd Command) (ActionEntry, bool) {
	e, ok := r.entries[actionKey{screenID, cmd}]
	return e, ok
}

// Commands returns the commands registered for screenID in registration
// order.
func (r *ActionRegistry) Commands(screenID string) []Command {
	return slices.Clone(r.order[screenID])
}

// MenuOption is one candidate entry of a menu.
type MenuOption struct {
	Key  Command
	Name string
	// NameFunc, when set, computes the display name each time the menu opens.
	NameFunc func(s *Screen) string
	// Order sorts options; equal orders keep registration order.
	Order int
	// Condition, when set, hides the option unless it returns true.
	Condition func(s *Screen) bool
}

// MenuLookup builds the options of a menu for a screen, already filtered by
// availability.
type MenuLookup interface {
	Available(menuID string, s *Screen) Options
}

// MenuRegistry is the default MenuLookup.
type MenuRegistry struct {
	menus map[string][]MenuOption
}

// NewMenuRegistry creates an empty registry.
func NewMenuRegistry() *MenuRegistry {
	return &MenuRegistry{menus: make(map[string][]MenuOption)}
}

// Add appends opt to menuID. Panics with *DuplicateKeyError if the menu
// already has an option with the same key.
func (r *MenuRegistry) Add(menuID string, opt MenuOption) {
	for _, o := range r.menus[menuID] {
		if o.Key == opt.Key {
			panic(&DuplicateKeyError{Owner: "menu " + menuID, Key: string(opt.Key)})
		}
	}
	r.menus[menuID] = append(r.menus[menuID], opt)
}

// Available returns the options of menuID whose condition holds for s,
// sorted by Order. An unknown menu has no options.
func (r *MenuRegistry) Available(menuID string, s *Screen) Options {
	cands := slices.Clone(r.menus[menuID])
	slices.SortStableFunc(cands, func(a, b MenuOption) int {
		return cmp.Compare(a.Order, b.Order)
	})
	var opts Options
	for _, o := range cands {
		if o.Condition != nil && !o.Condition(s) {
			continue
		}
		name := o.Name
		if o.NameFunc != nil {
			name = o.NameFunc(s)
		}
		opts = append(opts, Option{Key: o.Key, Name: name})
	}
	return opts
}
