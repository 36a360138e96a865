// Package evdev defines the decoded input event value and the subset of
// Linux event codes the gesture decoder reacts to.
package evdev

// Event type constants matching kernel conventions (linux/input-event-codes.h).
//
//nolint:revive,staticcheck // ALL_CAPS naming matches C/kernel conventions
const (
	EV_SYN = 0x0000
	EV_KEY = 0x0001
	EV_ABS = 0x0003
)

// Event code constants for the multitouch protocol.
//
//nolint:revive,staticcheck // ALL_CAPS naming matches C/kernel conventions
const (
	ABS_MT_POSITION_X  = 0x0035
	ABS_MT_POSITION_Y  = 0x0036
	ABS_MT_TRACKING_ID = 0x0039
	BTN_TOUCH          = 0x014a
)

// TrackingIDNone is reported on ABS_MT_TRACKING_ID when a contact lifts.
// On the wire it appears as 0xffffffff.
const TrackingIDNone int32 = -1

// Event is one decoded input event line from the device stream.
// A fresh value is produced per parsed line; it has no identity beyond
// its fields.
type Event struct {
	Device string
	Type   uint16
	Code   uint16
	Value  int32
}

// Is reports whether the event carries the given type and code.
func (e *Event) Is(typ, code uint16) bool {
	return e.Type == typ && e.Code == code
}
