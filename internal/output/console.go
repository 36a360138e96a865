package output

import (
	"fmt"
	"io"
	"time"

	"github.com/mrzor/gesture-tracer/internal/gesture"
)

// ConsoleFormatter writes human-readable gesture lines to a writer.
type ConsoleFormatter struct {
	w io.Writer
}

// NewConsoleFormatter creates a console formatter writing to w.
func NewConsoleFormatter(w io.Writer) *ConsoleFormatter {
	return &ConsoleFormatter{w: w}
}

// HandleGesture writes one line per gesture.
func (f *ConsoleFormatter) HandleGesture(g *gesture.Gesture) error {
	var err error
	if g.IsSwipe() {
		_, err = fmt.Fprintf(f.w, "%s from (%d, %d) to (%d, %d) in %s\n",
			g.Type, g.StartX, g.StartY, g.X, g.Y, g.Duration.Round(time.Millisecond))
	} else {
		_, err = fmt.Fprintf(f.w, "%s at (%d, %d) after %s\n",
			g.Type, g.X, g.Y, g.Duration.Round(time.Millisecond))
	}
	return err
}

// SessionOpened writes the touch-start notice. Wired to the tracker's
// session-open hook.
func (f *ConsoleFormatter) SessionOpened(x, y int) {
	fmt.Fprintf(f.w, "touch started at (%d, %d)\n", x, y)
}
