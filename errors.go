package arbor

import "fmt"

// Structural misuse (duplicate keys, disposed objects, unknown themes, bad
// number strings) is a programmer error. arbor panics with one of the error
// values below so callers can tell them apart with errors.As after recover.

// DisposedError reports an operation on a disposed sprite or container.
type DisposedError struct {
	Name string
	Op   string
}

func (e *DisposedError) Error() string {
	return fmt.Sprintf("arbor: %s on disposed %q", e.Op, e.Name)
}

// DuplicateKeyError reports a key registered twice in the same owner.
type DuplicateKeyError struct {
	Owner string
	Key   string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("arbor: %q already has an entry for key %q", e.Owner, e.Key)
}

// UnknownThemeError reports a text draw with an unregistered color theme.
type UnknownThemeError struct {
	Theme string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("arbor: unknown text theme %q", e.Theme)
}

// InvalidNumericInputError reports a number-strip draw given characters other
// than digits and '/'.
type InvalidNumericInputError struct {
	Input string
}

func (e *InvalidNumericInputError) Error() string {
	return fmt.Sprintf("arbor: can't draw %q as a number", e.Input)
}

// UnknownKeyError reports a lookup of a key that was never added.
type UnknownKeyError struct {
	Owner string
	Key   string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("arbor: %q has no entry for key %q", e.Owner, e.Key)
}
