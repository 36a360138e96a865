package lineparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrzor/gesture-tracer/internal/evdev"
)

func TestParse_WithDevicePrefix(t *testing.T) {
	event, ok := Parse([]byte("/dev/input/event3: 0003 0035 000001a5"))

	require.True(t, ok)
	assert.Equal(t, "event3", event.Device)
	assert.Equal(t, uint16(0x0003), event.Type)
	assert.Equal(t, uint16(0x0035), event.Code)
	assert.Equal(t, int32(0x01a5), event.Value)
}

func TestParse_WithoutDevicePrefix(t *testing.T) {
	event, ok := Parse([]byte("0001 014a 00000001"))

	require.True(t, ok)
	assert.Equal(t, DefaultDevice, event.Device)
	assert.Equal(t, uint16(evdev.EV_KEY), event.Type)
	assert.Equal(t, uint16(evdev.BTN_TOUCH), event.Code)
	assert.Equal(t, int32(1), event.Value)
}

func TestParse_NegativeValue(t *testing.T) {
	// Tracking-id release is encoded as 0xffffffff.
	event, ok := Parse([]byte("/dev/input/event3: 0003 0039 ffffffff"))

	require.True(t, ok)
	assert.Equal(t, evdev.TrackingIDNone, event.Value)
}

func TestParse_Garbage(t *testing.T) {
	_, ok := Parse([]byte("garbage"))
	assert.False(t, ok)
}

func TestParse_GeteventChatter(t *testing.T) {
	// Typical non-event lines from a live getevent stream.
	lines := []string{
		"",
		"add device 1: /dev/input/event3",
		"  name:     \"touch_dev\"",
		"could not get driver version for /dev/input/mouse0, Not a typewriter",
	}

	for _, line := range lines {
		_, ok := Parse([]byte(line))
		assert.False(t, ok, "line %q should be dropped", line)
	}
}

func TestParse_UppercaseHexRejected(t *testing.T) {
	_, ok := Parse([]byte("/dev/input/event3: 0003 0035 000001A5"))
	assert.False(t, ok)
}

func TestParse_WrongFieldWidth(t *testing.T) {
	_, ok := Parse([]byte("/dev/input/event3: 03 35 01a5"))
	assert.False(t, ok)
}

func TestParse_InvalidUTF8(t *testing.T) {
	// Invalid byte sequences are replaced, never fatal.
	_, ok := Parse([]byte{0xff, 0xfe, 'x'})
	assert.False(t, ok)

	// A valid event line with mangled trailing bytes still fails the match
	// without panicking.
	_, ok = Parse(append([]byte("0003 0035 000001a5"), 0xff))
	assert.False(t, ok)
}

func TestParse_SYNLines(t *testing.T) {
	// SYN_REPORT padding parses fine; routing is the tracker's concern.
	event, ok := Parse([]byte("/dev/input/event3: 0000 0000 00000000"))

	require.True(t, ok)
	assert.True(t, event.Is(evdev.EV_SYN, 0))
}
