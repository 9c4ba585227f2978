package arbor

import (
	"fmt"
	"os"
)

// globalDebug enables diagnostic output. Containers and sprites lack a scene
// pointer, so the flag is package level; arbor is single-threaded.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, dialog, navigation
// and disposal activity plus missing-asset warnings are printed to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool {
	return globalDebug
}

// debugLog prints one "[arbor]" line to stderr when debug mode is on.
func debugLog(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[arbor] "+format+"\n", args...)
}

// debugMaxChildCount is the child count past which a container warns.
const debugMaxChildCount = 256

func debugCheckChildCount(c *Container) {
	if !globalDebug {
		return
	}
	if len(c.sprites) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[arbor] warning: container %q has %d children (threshold %d)\n",
			c.cfg.Name, len(c.sprites), debugMaxChildCount)
	}
}
