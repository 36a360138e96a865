// Package touchstate tracks the single persistent touch contact state and
// detects session boundaries.
//
// State machine:
//
//	┌─────────────────────────────────────────┐
//	│   Tracker (lives for the process)       │
//	│   X, Y, TrackingID, Touching            │
//	│                                         │
//	│   ┌─────────────────────────────┐       │
//	│   │  active session (transient) │       │
//	│   │  entered: press + first X   │       │
//	│   │  and first Y sample         │       │
//	│   │  exited: release or         │       │
//	│   │  tracking-id -1             │       │
//	│   └─────────────────────────────┘       │
//	└─────────────────────────────────────────┘
//
// A lift observed before both coordinates were sampled discards the session
// silently. The start tuple (x, y, time) is always cleared as one unit, so a
// new press never observes values left over from the previous session.
//
// The tracker is strictly reactive and single-threaded; hosts embedding it in
// concurrent work must serialize access.
package touchstate
