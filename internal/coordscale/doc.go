// Package coordscale provides coordinate conversion from raw digitizer
// readings to screen pixels.
//
// Touch panels report positions in their own resolution (commonly 0..4095),
// which rarely matches the display. The scaler applies a per-axis linear map
// from a calibrated raw maximum to the target resolution. The same map is
// applied to every sample, so session start and end coordinates are always
// expressed in the same space.
package coordscale
