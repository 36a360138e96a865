package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs([]string{"gesture-tracer"})

	require.NoError(t, err)
	assert.False(t, cfg.Stdin)
	assert.Empty(t, cfg.ServicePackage, "broadcasting is opt-in")
	assert.Empty(t, cfg.ActionLogPath)
	assert.Empty(t, cfg.CustomAttributes)
}

func TestParseArgs_Stdin(t *testing.T) {
	cfg, err := ParseArgs([]string{"gesture-tracer", "--stdin"})

	require.NoError(t, err)
	assert.True(t, cfg.Stdin)
}

func TestParseArgs_ServicePackage(t *testing.T) {
	cfg, err := ParseArgs([]string{"gesture-tracer", "--package", "com.wiretap"})

	require.NoError(t, err)
	assert.Equal(t, "com.wiretap", cfg.ServicePackage)
}

func TestParseArgs_ServicePackageShortForm(t *testing.T) {
	cfg, err := ParseArgs([]string{"gesture-tracer", "-p", "com.wiretap"})

	require.NoError(t, err)
	assert.Equal(t, "com.wiretap", cfg.ServicePackage)
}

func TestParseArgs_ActionLog(t *testing.T) {
	cfg, err := ParseArgs([]string{"gesture-tracer", "--log", "actions.jsonl"})

	require.NoError(t, err)
	assert.Equal(t, "actions.jsonl", cfg.ActionLogPath)
}

func TestParseArgs_SingleCustomAttribute(t *testing.T) {
	cfg, err := ParseArgs([]string{"gesture-tracer", "--attr", "foo=bar"})

	require.NoError(t, err)
	require.Len(t, cfg.CustomAttributes, 1)
	assert.Equal(t, "foo", cfg.CustomAttributes[0].Name)
	assert.Equal(t, "bar", cfg.CustomAttributes[0].Expression)
}

func TestParseArgs_MultipleCustomAttributes(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"gesture-tracer",
		"-a", "gesture.kind=type",
		"-a", `fast=duration < 0.1`,
	})

	require.NoError(t, err)
	require.Len(t, cfg.CustomAttributes, 2)
	assert.Equal(t, "gesture.kind", cfg.CustomAttributes[0].Name)
	assert.Equal(t, "type", cfg.CustomAttributes[0].Expression)
	assert.Equal(t, "fast", cfg.CustomAttributes[1].Name)
	assert.Equal(t, "duration < 0.1", cfg.CustomAttributes[1].Expression)
}

func TestParseArgs_CustomAttributeWithEquals(t *testing.T) {
	cfg, err := ParseArgs([]string{"gesture-tracer", "--attr", `check=type=="CLICK"`})

	require.NoError(t, err)
	require.Len(t, cfg.CustomAttributes, 1)
	assert.Equal(t, "check", cfg.CustomAttributes[0].Name)
	assert.Equal(t, `type=="CLICK"`, cfg.CustomAttributes[0].Expression)
}

func TestParseArgs_CustomAttributeInvalidFormat(t *testing.T) {
	_, err := ParseArgs([]string{"gesture-tracer", "--attr", "noequals"})
	assert.Error(t, err)
}

func TestParseArgs_CustomAttributeEmptyName(t *testing.T) {
	_, err := ParseArgs([]string{"gesture-tracer", "--attr", "=expr"})
	assert.Error(t, err)
}

func TestParseArgs_CustomAttributeEmptyExpression(t *testing.T) {
	_, err := ParseArgs([]string{"gesture-tracer", "--attr", "name="})
	assert.Error(t, err)
}

func TestParseArgs_MissingFlagValue(t *testing.T) {
	_, err := ParseArgs([]string{"gesture-tracer", "--package"})
	assert.Error(t, err)
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	_, err := ParseArgs([]string{"gesture-tracer", "--bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Usage:")
}

func TestParseDetectorConfig_Defaults(t *testing.T) {
	cfg, err := ParseDetectorConfig()

	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, cfg.ClickMaxDuration)
	assert.Equal(t, float64(100), cfg.ClickMaxDistance)
	assert.Equal(t, float64(200), cfg.SwipeMinDistance)
	assert.Equal(t, "adb", cfg.ADBPath)
	assert.False(t, cfg.ScalingEnabled())
}

func TestParseDetectorConfig_Overrides(t *testing.T) {
	t.Setenv("GESTURE_CLICK_MAX_DURATION", "500ms")
	t.Setenv("GESTURE_SWIPE_MIN_DISTANCE", "350")
	t.Setenv("GESTURE_RAW_MAX_X", "4095")
	t.Setenv("GESTURE_RAW_MAX_Y", "4095")
	t.Setenv("GESTURE_TARGET_X", "1008")
	t.Setenv("GESTURE_TARGET_Y", "2240")

	cfg, err := ParseDetectorConfig()

	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.ClickMaxDuration)
	assert.Equal(t, float64(350), cfg.SwipeMinDistance)
	assert.True(t, cfg.ScalingEnabled())

	th := cfg.Thresholds()
	assert.Equal(t, 500*time.Millisecond, th.ClickMaxDuration)
	assert.Equal(t, float64(100), th.ClickMaxDistance)
}

func TestParseDetectorConfig_InvalidDuration(t *testing.T) {
	t.Setenv("GESTURE_CLICK_MAX_DURATION", "not-a-duration")

	_, err := ParseDetectorConfig()
	assert.Error(t, err)
}

func TestParseOTELConfig_EndpointPriority(t *testing.T) {
	cfg := &OTELConfig{}
	assert.Equal(t, "localhost:4318", cfg.GetEndpoint())

	cfg.ExporterEndpoint = "collector:4318"
	assert.Equal(t, "collector:4318", cfg.GetEndpoint())

	cfg.TracesEndpoint = "traces:4318"
	assert.Equal(t, "traces:4318", cfg.GetEndpoint())
}

func TestParseOTELConfig_ResourceAttributes(t *testing.T) {
	cfg := &OTELConfig{ResourceAttributes: "env=lab, device.serial=emulator-5554,bad"}

	attrs := cfg.ParseResourceAttributes()

	require.Len(t, attrs, 2)
	assert.Equal(t, "env", string(attrs[0].Key))
	assert.Equal(t, "lab", attrs[0].Value.AsString())
	assert.Equal(t, "device.serial", string(attrs[1].Key))
}

func TestParseOTELConfig_Disabled(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")

	cfg, err := ParseOTELConfig()

	require.NoError(t, err)
	assert.True(t, cfg.Disabled)
}
