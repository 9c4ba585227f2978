package arbor

// Option is one entry of a choice dialog. Key identifies the option to the
// caller; plain lists built by OptionList leave it empty and callers use the
// selected index instead.
type Option struct {
	Key  Command
	Name string
}

// Options is an ordered set of choices.
type Options []Option

// OptionList builds keyless options from display names.
func OptionList(names ...string) Options {
	opts := make(Options, len(names))
	for i, n := range names {
		opts[i] = Option{Name: n}
	}
	return opts
}

// Names returns the display names in order.
func (o Options) Names() []string {
	names := make([]string, len(o))
	for i, opt := range o {
		names[i] = opt.Name
	}
	return names
}

// Selection is the result of a choice dialog.
type Selection struct {
	Index int
	Key   Command
}

// NoSelection is returned when a choice dialog is cancelled or has nothing to
// choose from. Its Index is -1, so it never equals a real selection.
var NoSelection = Selection{Index: -1}

// Cancelled reports whether s is NoSelection.
func (s Selection) Cancelled() bool { return s.Index < 0 }

// selectionAt returns the selection for index i.
func (o Options) selectionAt(i int) Selection {
	if i < 0 || i >= len(o) {
		return NoSelection
	}
	return Selection{Index: i, Key: o[i].Key}
}
