package output

import "github.com/mrzor/gesture-tracer/internal/gesture"

// Multi fans a gesture out to several handlers. Every handler runs even if
// an earlier one fails; the first error is returned afterwards.
type Multi []gesture.Handler

// HandleGesture dispatches the gesture to all handlers in order.
func (m Multi) HandleGesture(g *gesture.Gesture) error {
	var firstErr error
	for _, h := range m {
		if err := h.HandleGesture(g); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
