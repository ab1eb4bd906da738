package icurve

// Space is the configuration record that sets the sizes at which hull and
// segment approximations become usable.
//
// Grounded on original_source/iCurve/src/int/collision/space.rs.
type Space struct {
	LineLevel    uint32
	ConvexLevel  uint32
}

// DefaultSpace matches the original's Default impl: with_line_level(4).
func DefaultSpace() Space {
	return WithLineLevel(4)
}

// WithLineLevel derives ConvexLevel = 32 - lineLevel, keeping the invariant
// LineLevel < ConvexLevel.
func WithLineLevel(lineLevel uint32) Space {
	return Space{LineLevel: lineLevel, ConvexLevel: 32 - lineLevel}
}

// SnapRadius is 2^LineLevel, the size below which a collider is treated as
// its endpoint segment.
func (s Space) SnapRadius() int64 {
	return int64(1) << s.LineLevel
}
