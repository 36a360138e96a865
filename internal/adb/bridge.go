// Package adb shells out to the Android debug bridge.
//
// The bridge is a boundary collaborator: it produces the raw getevent line
// stream the decoder consumes, and it delivers classified gestures back to
// the on-device accessibility service as broadcasts.
package adb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"

	"github.com/mrzor/gesture-tracer/internal/gesture"
)

// Bridge runs adb commands against the connected device.
type Bridge struct {
	path           string
	servicePackage string
}

// New creates a bridge using the given adb executable. servicePackage is the
// Android package receiving gesture broadcasts; it may be empty if the
// bridge is only used as an event source.
func New(path, servicePackage string) *Bridge {
	return &Bridge{
		path:           path,
		servicePackage: servicePackage,
	}
}

// StartGetevent spawns `adb shell getevent` and returns its stdout as the
// raw line source. The process is killed when ctx is cancelled; callers
// should Wait on the returned command after the stream drains.
func (b *Bridge) StartGetevent(ctx context.Context) (io.ReadCloser, *exec.Cmd, error) {
	cmd := exec.CommandContext(ctx, b.path, "shell", "getevent")
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("opening getevent pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("starting %s shell getevent: %w", b.path, err)
	}
	return stdout, cmd, nil
}

// HandleGesture forwards the gesture to the accessibility service via
// `am broadcast`. Implements gesture.Handler.
func (b *Bridge) HandleGesture(g *gesture.Gesture) error {
	out, err := exec.Command(b.path, b.broadcastArgs(g)...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("broadcasting gesture: %w (%s)", err, bytes.TrimSpace(out))
	}
	return nil
}

// broadcastArgs builds the am broadcast invocation. Clicks carry the end
// point as x/y; swipes carry the start as x/y and the end as x2/y2, the
// wire contract of the service.
func (b *Bridge) broadcastArgs(g *gesture.Gesture) []string {
	args := []string{
		"shell", "am", "broadcast",
		"--user", "0",
		"-a", b.servicePackage + ".ACTION_GESTURE",
		"-p", b.servicePackage,
		"--es", "type", g.Type.String(),
	}
	if g.IsSwipe() {
		args = append(args,
			"--ei", "x", strconv.Itoa(g.StartX),
			"--ei", "y", strconv.Itoa(g.StartY),
			"--ei", "x2", strconv.Itoa(g.X),
			"--ei", "y2", strconv.Itoa(g.Y),
		)
	} else {
		args = append(args,
			"--ei", "x", strconv.Itoa(g.X),
			"--ei", "y", strconv.Itoa(g.Y),
		)
	}
	return args
}
