package pinchzoom

import (
	"fmt"
	"io"
)

// SetDebugMode enables or disables debug logging. When enabled, state
// transitions, double taps, layout and sanitize decisions are written to the
// debug writer (stderr unless changed with SetDebugOutput).
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// SetDebugOutput redirects debug logging. A nil writer disables output even
// in debug mode.
func (c *Controller) SetDebugOutput(w io.Writer) {
	c.debugOut = w
}

// debugf prints one debug line. No-op unless debug mode is on.
func (c *Controller) debugf(format string, args ...any) {
	if !c.debug || c.debugOut == nil {
		return
	}
	_, _ = fmt.Fprintf(c.debugOut, "[pinchzoom] "+format+"\n", args...)
}
