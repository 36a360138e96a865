// Package gesture classifies completed touch sessions into semantic gestures.
package gesture

import (
	"fmt"
	"time"
)

// Type identifies the semantic gesture decoded from a touch session.
type Type int

// Gesture types, in the order the on-device service defines them.
const (
	Click Type = iota + 1
	SwipeLeft
	SwipeRight
	SwipeUp
	SwipeDown
)

// String returns the wire name used by the accessibility service broadcast.
func (t Type) String() string {
	switch t {
	case Click:
		return "CLICK"
	case SwipeLeft:
		return "SWIPE_LEFT"
	case SwipeRight:
		return "SWIPE_RIGHT"
	case SwipeUp:
		return "SWIPE_UP"
	case SwipeDown:
		return "SWIPE_DOWN"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(t))
	}
}

// Session is one completed finger-down-to-finger-up interaction.
type Session struct {
	StartX, StartY int
	EndX, EndY     int
	Start, End     time.Time
}

// Duration returns the contact time of the session.
func (s Session) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Gesture is the classified result of a session. X and Y are the end point;
// swipes additionally carry the start point.
type Gesture struct {
	Type           Type
	X, Y           int
	StartX, StartY int
	Duration       time.Duration
}

// IsSwipe reports whether the gesture carries a meaningful start point.
func (g *Gesture) IsSwipe() bool {
	return g.Type != Click
}

// Handler receives classified gestures.
type Handler interface {
	HandleGesture(g *Gesture) error
}
