package arbor

// EventSink is the interface for optional event forwarding. When set on a
// Scene or Screen, lifecycle, dialog and navigation events are emitted to it.
type EventSink interface {
	Emit(event ScreenEvent)
}

// EventType identifies a ScreenEvent.
type EventType uint8

const (
	EventScreenStart  EventType = iota // Screen.Start finished fading in
	EventScreenEnd                     // Screen ended (faded or silent)
	EventCommand                       // Navigate returned a command
	EventAction                        // PerformAction ran an entry
	EventDialogOpen                    // a dialog began
	EventDialogClose                   // a dialog returned
	EventIndexChanged                  // the scene's cursor index changed
)

var eventTypeNames = [...]string{
	"screen-start", "screen-end", "command", "action", "dialog-open", "dialog-close", "index-changed",
}

// String returns the event type name.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// ScreenEvent carries one screen or dialog event.
type ScreenEvent struct {
	Type   EventType
	Screen string
	// Command is set for EventCommand and EventAction.
	Command Command
	// Dialog names the dialog for EventDialogOpen and EventDialogClose.
	Dialog string
	// Index is the new index for EventIndexChanged, or the selected index
	// for EventDialogClose (-1 when cancelled).
	Index int
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(ScreenEvent)

// Emit calls f(event).
func (f EventSinkFunc) Emit(event ScreenEvent) { f(event) }

func emit(sink EventSink, event ScreenEvent) {
	if sink != nil {
		sink.Emit(event)
	}
}
