// Package lineparser decodes textual getevent lines into input events.
package lineparser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mrzor/gesture-tracer/internal/evdev"
)

// DefaultDevice is used for lines that carry no device path prefix.
// getevent omits the prefix when invoked against a single device node.
const DefaultDevice = "unknown"

// eventLine matches both shapes getevent produces:
//
//	/dev/input/event3: 0003 0035 000001a5
//	0003 0035 000001a5
//
// All three numeric fields are fixed-width lowercase hex.
var eventLine = regexp.MustCompile(`^(?:/dev/input/(\w+): )?([0-9a-f]{4}) ([0-9a-f]{4}) ([0-9a-f]{8})$`)

// Parse decodes one raw line into an event. The boolean is false for lines
// that match neither shape; device banners, key names and other getevent
// chatter arrive constantly and are dropped, not treated as errors.
// Invalid byte sequences are replaced, never fatal.
func Parse(line []byte) (evdev.Event, bool) {
	text := strings.ToValidUTF8(string(line), "�")

	m := eventLine.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return evdev.Event{}, false
	}

	device := m[1]
	if device == "" {
		device = DefaultDevice
	}

	// Fixed-width hex cannot fail once the pattern matched.
	typ, _ := strconv.ParseUint(m[2], 16, 16)
	code, _ := strconv.ParseUint(m[3], 16, 16)
	value, _ := strconv.ParseUint(m[4], 16, 32)

	return evdev.Event{
		Device: device,
		Type:   uint16(typ),
		Code:   uint16(code),
		// Parsed unsigned, reinterpreted signed: 0xffffffff is the
		// tracking-id release marker.
		Value: int32(uint32(value)),
	}, true
}
