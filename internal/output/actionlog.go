package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mrzor/gesture-tracer/internal/gesture"
)

// actionCoords is an x/y pair in the action log schema.
type actionCoords struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// actionRecord is one logged gesture. The schema matches what the episode
// overlay tooling reads back: action_type plus coordinates.
type actionRecord struct {
	ActionType     string        `json:"action_type"`
	Coordinates    actionCoords  `json:"coordinates"`
	EndCoordinates *actionCoords `json:"end_coordinates,omitempty"`
	DurationSec    float64       `json:"duration_seconds"`
	Timestamp      time.Time     `json:"timestamp"`
}

// ActionLog appends one JSON record per gesture to a file.
type ActionLog struct {
	file *os.File
	enc  *json.Encoder
	now  func() time.Time
}

// OpenActionLog opens (or creates) the log file for appending.
func OpenActionLog(path string) (*ActionLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening action log: %w", err)
	}
	return &ActionLog{file: f, enc: json.NewEncoder(f), now: time.Now}, nil
}

// HandleGesture appends the gesture as one JSON line.
func (l *ActionLog) HandleGesture(g *gesture.Gesture) error {
	rec := actionRecord{
		ActionType:  strings.ToLower(g.Type.String()),
		DurationSec: g.Duration.Seconds(),
		Timestamp:   l.now().UTC(),
	}
	if g.IsSwipe() {
		rec.Coordinates = actionCoords{X: g.StartX, Y: g.StartY}
		rec.EndCoordinates = &actionCoords{X: g.X, Y: g.Y}
	} else {
		rec.Coordinates = actionCoords{X: g.X, Y: g.Y}
	}

	if err := l.enc.Encode(rec); err != nil {
		return fmt.Errorf("appending action record: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (l *ActionLog) Close() error {
	return l.file.Close()
}
