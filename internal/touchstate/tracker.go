package touchstate

import (
	"time"

	"github.com/mrzor/gesture-tracer/internal/coordscale"
	"github.com/mrzor/gesture-tracer/internal/evdev"
	"github.com/mrzor/gesture-tracer/internal/gesture"
)

// SessionSink receives completed touch sessions, typically the classifier.
type SessionSink interface {
	HandleSession(s gesture.Session) error
}

// TouchState is the single mutable entity of the decoder.
// The session start tuple is private: it is set piecewise as samples arrive
// and cleared as one unit when the session ends.
type TouchState struct {
	X, Y       int
	TrackingID int32
	Touching   bool

	startX, startY int
	startTime      time.Time

	haveStartX, haveStartY, haveStartTime bool
}

// SessionComplete reports whether the full start tuple has been sampled,
// which is the precondition for producing a session on lift.
func (s TouchState) SessionComplete() bool {
	return s.haveStartX && s.haveStartY && s.haveStartTime
}

// Tracker consumes decoded input events and mutates the touch state in
// place, handing completed sessions to the sink. One Tracker is created at
// detector start and lives for the process lifetime.
type Tracker struct {
	state  TouchState
	scaler *coordscale.Scaler
	now    func() time.Time
	sink   SessionSink

	// onSessionOpen fires when both start coordinates have been sampled
	// after a press.
	onSessionOpen func(x, y int)
}

// New creates a tracker. A nil scaler means no coordinate rescaling; a nil
// clock means time.Now.
func New(scaler *coordscale.Scaler, now func() time.Time, sink SessionSink) *Tracker {
	if scaler == nil {
		scaler = &coordscale.Scaler{}
	}
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		state:  TouchState{TrackingID: evdev.TrackingIDNone},
		scaler: scaler,
		now:    now,
		sink:   sink,
	}
}

// OnSessionOpen registers a notification for session starts. Optional.
func (t *Tracker) OnSessionOpen(fn func(x, y int)) {
	t.onSessionOpen = fn
}

// State returns a copy of the current touch state.
func (t *Tracker) State() TouchState {
	return t.state
}

// HandleEvent routes one decoded event to the matching state transition.
// Events outside the recognized (type, code) pairs are ignored.
func (t *Tracker) HandleEvent(event *evdev.Event) error {
	switch {
	case event.Is(evdev.EV_KEY, evdev.BTN_TOUCH):
		return t.handleButtonTouch(event.Value)
	case event.Is(evdev.EV_ABS, evdev.ABS_MT_POSITION_X):
		t.handlePositionX(int(event.Value))
		return nil
	case event.Is(evdev.EV_ABS, evdev.ABS_MT_POSITION_Y):
		t.handlePositionY(int(event.Value))
		return nil
	case event.Is(evdev.EV_ABS, evdev.ABS_MT_TRACKING_ID):
		return t.handleTrackingID(event.Value)
	default:
		return nil
	}
}

// handleButtonTouch processes the BTN_TOUCH press/release signal.
func (t *Tracker) handleButtonTouch(value int32) error {
	t.state.Touching = value != 0
	if value != 0 {
		t.state.startTime = t.now()
		t.state.haveStartTime = true
		return nil
	}
	return t.finishSession()
}

// handlePositionX updates the running X coordinate. The first X sample after
// a press fixes the session origin on that axis.
func (t *Tracker) handlePositionX(raw int) {
	x := t.scaler.ScaleX(raw)
	t.state.X = x
	if t.state.Touching && !t.state.haveStartX {
		t.state.startX = x
		t.state.haveStartX = true
	}
}

// handlePositionY updates the running Y coordinate. The panel reports X
// before Y within one contact update, so the first Y sample completes the
// session origin and opens the session.
func (t *Tracker) handlePositionY(raw int) {
	y := t.scaler.ScaleY(raw)
	t.state.Y = y
	if t.state.Touching && !t.state.haveStartY {
		t.state.startY = y
		t.state.haveStartY = true
		if t.onSessionOpen != nil {
			t.onSessionOpen(t.state.startX, t.state.startY)
		}
	}
}

// handleTrackingID processes contact identity changes. A lift may arrive via
// tracking id with no BTN_TOUCH release; devices use either signal
// interchangeably, so both paths run touch-end evaluation. The id is stored
// unconditionally afterward.
func (t *Tracker) handleTrackingID(value int32) error {
	var err error
	if value == evdev.TrackingIDNone {
		err = t.finishSession()
	}
	t.state.TrackingID = value
	return err
}

// finishSession hands the active session to the sink, if complete, and
// always clears the start tuple so the next press starts clean. Tracking id,
// touching flag and current coordinates persist across sessions.
func (t *Tracker) finishSession() error {
	defer t.clearSessionStart()

	if !t.state.SessionComplete() {
		// Lift before both coordinates were sampled: incomplete
		// session, silently discarded.
		return nil
	}

	return t.sink.HandleSession(gesture.Session{
		StartX: t.state.startX,
		StartY: t.state.startY,
		EndX:   t.state.X,
		EndY:   t.state.Y,
		Start:  t.state.startTime,
		End:    t.now(),
	})
}

// clearSessionStart resets the start tuple as one unit.
func (t *Tracker) clearSessionStart() {
	t.state.startX, t.state.startY = 0, 0
	t.state.startTime = time.Time{}
	t.state.haveStartX, t.state.haveStartY, t.state.haveStartTime = false, false, false
}
