package coordscale

// Scaler maps raw touch coordinates onto a target resolution.
// The zero value is the identity map.
type Scaler struct {
	rawMaxX, rawMaxY int
	targetX, targetY int
}

// New creates a scaler mapping raw axis maxima onto target dimensions.
// A non-positive raw maximum disables scaling on that axis.
func New(rawMaxX, rawMaxY, targetX, targetY int) *Scaler {
	return &Scaler{
		rawMaxX: rawMaxX,
		rawMaxY: rawMaxY,
		targetX: targetX,
		targetY: targetY,
	}
}

// ScaleX converts a raw X sample to target space.
func (s *Scaler) ScaleX(raw int) int {
	if s.rawMaxX <= 0 {
		return raw
	}
	return raw * s.targetX / s.rawMaxX
}

// ScaleY converts a raw Y sample to target space.
func (s *Scaler) ScaleY(raw int) int {
	if s.rawMaxY <= 0 {
		return raw
	}
	return raw * s.targetY / s.rawMaxY
}
