package gesture

import (
	"math"
	"time"
)

// Thresholds tune the classifier. All three are configuration inputs.
type Thresholds struct {
	// ClickMaxDuration is the longest contact still counted as a tap.
	ClickMaxDuration time.Duration
	// ClickMaxDistance is the largest displacement still counted as a tap.
	ClickMaxDistance float64
	// SwipeMinDistance is the smallest displacement counted as a swipe.
	SwipeMinDistance float64
}

// DefaultThresholds returns the stock tuning for phone-sized screens.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ClickMaxDuration: 300 * time.Millisecond,
		ClickMaxDistance: 100,
		SwipeMinDistance: 200,
	}
}

// Classify turns a completed session into a gesture. It is a pure function
// of the session displacement and duration. The boolean is false when the
// session matches neither the click nor the swipe rule; such sessions are
// discarded, not errors.
func Classify(s Session, th Thresholds) (Gesture, bool) {
	duration := s.Duration()
	dx := float64(s.EndX - s.StartX)
	dy := float64(s.EndY - s.StartY)
	distance := math.Hypot(dx, dy)

	g := Gesture{
		X:        s.EndX,
		Y:        s.EndY,
		StartX:   s.StartX,
		StartY:   s.StartY,
		Duration: duration,
	}

	// The click rule wins over the swipe rule when both could apply.
	if duration <= th.ClickMaxDuration && distance <= th.ClickMaxDistance {
		g.Type = Click
		return g, true
	}

	if distance >= th.SwipeMinDistance {
		if math.Abs(dx) > math.Abs(dy) {
			if dx > 0 {
				g.Type = SwipeRight
			} else {
				g.Type = SwipeLeft
			}
		} else {
			if dy > 0 {
				g.Type = SwipeDown
			} else {
				g.Type = SwipeUp
			}
		}
		return g, true
	}

	return Gesture{}, false
}

// Classifier forwards classified sessions to a gesture handler.
// It implements the tracker's session sink.
type Classifier struct {
	thresholds Thresholds
	handler    Handler
}

// NewClassifier creates a classifier with the given thresholds and handler.
func NewClassifier(th Thresholds, handler Handler) *Classifier {
	return &Classifier{
		thresholds: th,
		handler:    handler,
	}
}

// HandleSession classifies a completed session and forwards the result.
// Sub-threshold sessions produce no gesture and no error.
func (c *Classifier) HandleSession(s Session) error {
	g, ok := Classify(s, c.thresholds)
	if !ok {
		return nil
	}
	return c.handler.HandleGesture(&g)
}
