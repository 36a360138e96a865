// Package output provides emitters for classified gestures.
//
// Every emitter implements gesture.Handler and stays a pure boundary layer:
//   - ConsoleFormatter writes human-readable lines
//   - ActionLog appends JSON records in the episode recorder schema
//   - OTELFormatter records one span per gesture
//   - Multi fans a gesture out to several emitters
//
// Emitters do NOT classify, track state, or parse events; all of that is
// delegated to the decoder packages. Transport failures are reported as
// errors to the stream loop, which logs them and keeps processing.
package output
