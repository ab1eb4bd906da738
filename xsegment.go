package icurve

// XSegment stores its endpoints in canonical order (A <= B under the
// IntPoint total order).
//
// Grounded on original_source/iCurve/src/int/math/x_segment.rs.
type XSegment struct {
	A, B IntPoint
}

// NewXSegment orders the pair, swapping if needed.
func NewXSegment(a, b IntPoint) XSegment {
	if a.Less(b) || a.Equal(b) {
		return XSegment{a, b}
	}
	return XSegment{b, a}
}

// Less compares two XSegments lexicographically (A, then B).
func (s XSegment) Less(o XSegment) bool {
	if !s.A.Equal(o.A) {
		return s.A.Less(o.A)
	}
	return s.B.Less(o.B)
}

func (s XSegment) xRange() lineRange { return newLineRange(s.A.X, s.B.X) }
func (s XSegment) yRange() lineRange { return newLineRange(s.A.Y, s.B.Y) }

// IsOverlapXY is the cheap bounding-box pruning test: disjoint x or y
// ranges imply no crossing is possible.
func (s XSegment) IsOverlapXY(o XSegment) bool {
	return s.xRange().overlap(o.xRange()) && s.yRange().overlap(o.yRange())
}

// Contains reports whether p lies on the closed segment, assuming p is
// already known to be collinear with A,B (callers check that separately).
func (s XSegment) Contains(p IntPoint) bool {
	return newLineRange(s.A.X, s.B.X).overlap(lineRange{p.X, p.X}) &&
		newLineRange(s.A.Y, s.B.Y).overlap(lineRange{p.Y, p.Y})
}

// dirOffset is B - A.
func (s XSegment) dirOffset() IntOffset { return s.B.Sub(s.A) }
