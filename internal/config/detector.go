package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/mrzor/gesture-tracer/internal/gesture"
)

// DetectorConfig holds gesture detection tuning from environment variables.
type DetectorConfig struct {
	ClickMaxDuration time.Duration `env:"GESTURE_CLICK_MAX_DURATION" envDefault:"300ms"`
	ClickMaxDistance float64       `env:"GESTURE_CLICK_MAX_DISTANCE" envDefault:"100"`
	SwipeMinDistance float64       `env:"GESTURE_SWIPE_MIN_DISTANCE" envDefault:"200"`

	// Coordinate rescale parameters. A zero raw maximum disables scaling
	// on that axis.
	RawMaxX int `env:"GESTURE_RAW_MAX_X" envDefault:"0"`
	RawMaxY int `env:"GESTURE_RAW_MAX_Y" envDefault:"0"`
	TargetX int `env:"GESTURE_TARGET_X" envDefault:"0"`
	TargetY int `env:"GESTURE_TARGET_Y" envDefault:"0"`

	// ADBPath is the debug bridge executable.
	ADBPath string `env:"GESTURE_ADB_PATH" envDefault:"adb"`
}

// ParseDetectorConfig parses detector tuning from environment variables.
func ParseDetectorConfig() (*DetectorConfig, error) {
	var cfg DetectorConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse detector config: %w", err)
	}
	return &cfg, nil
}

// Thresholds returns the classifier tuning.
func (c *DetectorConfig) Thresholds() gesture.Thresholds {
	return gesture.Thresholds{
		ClickMaxDuration: c.ClickMaxDuration,
		ClickMaxDistance: c.ClickMaxDistance,
		SwipeMinDistance: c.SwipeMinDistance,
	}
}

// ScalingEnabled reports whether any axis has a calibrated raw maximum.
func (c *DetectorConfig) ScalingEnabled() bool {
	return c.RawMaxX > 0 || c.RawMaxY > 0
}
