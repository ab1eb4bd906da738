package icurve

// Boundary returns the axis-aligned bounding box of the anchor polygon,
// which bounds the curve itself since Bézier curves lie within their
// control-point convex hull.
//
// Grounded on original_source/iCurve/src/int/bezier/spline_cube.rs (and
// the square/line analogues) for the per-kind math, with Arc's original
// silent IntRect::empty()/panic! replaced by a proper error return per
// §7's Unimplemented disposition.
func (s Spline) Boundary() (IntRect, error) {
	if s.Kind == SplineArc {
		return IntRect{}, ErrUnimplementedArc
	}
	return WithPoints(s.anchors()), nil
}

// StartDir and EndDir are the 16-bit-normalized tangent directions at the
// curve endpoints.
func (s Spline) StartDir() (IntOffset, error) {
	if s.Kind == SplineArc {
		return IntOffset{}, ErrUnimplementedArc
	}
	a := s.Anchors
	switch s.Kind {
	case SplineLine:
		return Normalized16(a[1].Sub(a[0])), nil
	case SplineSquare:
		return Normalized16(a[1].Sub(a[0])), nil
	case SplineCubic:
		return Normalized16(a[1].Sub(a[0])), nil
	}
	return IntOffset{}, ErrUnimplementedArc
}

func (s Spline) EndDir() (IntOffset, error) {
	if s.Kind == SplineArc {
		return IntOffset{}, ErrUnimplementedArc
	}
	a := s.Anchors
	switch s.Kind {
	case SplineLine:
		return Normalized16(a[1].Sub(a[0])), nil
	case SplineSquare:
		return Normalized16(a[2].Sub(a[1])), nil
	case SplineCubic:
		return Normalized16(a[3].Sub(a[2])), nil
	}
	return IntOffset{}, ErrUnimplementedArc
}

// PointAt evaluates the curve at a dyadic parameter via repeated de
// Casteljau steps using lineDivide: one level for Line, two for Square,
// three for Cubic.
func (s Spline) PointAt(pos SplitPosition) (IntPoint, error) {
	a := s.Anchors
	switch s.Kind {
	case SplineLine:
		return LineDividePoint(a[0], a[1], pos), nil
	case SplineSquare:
		m0 := LineDividePoint(a[0], a[1], pos)
		m1 := LineDividePoint(a[1], a[2], pos)
		return LineDividePoint(m0, m1, pos), nil
	case SplineCubic:
		m0 := LineDividePoint(a[0], a[1], pos)
		m1 := LineDividePoint(a[1], a[2], pos)
		m2 := LineDividePoint(a[2], a[3], pos)
		n0 := LineDividePoint(m0, m1, pos)
		n1 := LineDividePoint(m1, m2, pos)
		return LineDividePoint(n0, n1, pos), nil
	default:
		return IntPoint{}, ErrUnimplementedArc
	}
}

// Bisect splits the curve at t=1/2 using integer midpoints, returning the
// two child splines that together partition the curve.
func (s Spline) Bisect() (Spline, Spline, error) {
	a := s.Anchors
	switch s.Kind {
	case SplineLine:
		m := Mid(a[0], a[1])
		return NewLine(a[0], m), NewLine(m, a[1]), nil
	case SplineSquare:
		m0 := Mid(a[0], a[1])
		m1 := Mid(a[1], a[2])
		mm := Mid(m0, m1)
		return NewSquare(a[0], m0, mm), NewSquare(mm, m1, a[2]), nil
	case SplineCubic:
		m0 := Mid(a[0], a[1])
		m1 := Mid(a[1], a[2])
		m2 := Mid(a[2], a[3])
		n0 := Mid(m0, m1)
		n1 := Mid(m1, m2)
		mm := Mid(n0, n1)
		return NewCubic(a[0], m0, n0, mm), NewCubic(mm, n1, m2, a[3]), nil
	default:
		return Spline{}, Spline{}, ErrUnimplementedArc
	}
}

// Split performs a de Casteljau split at an arbitrary dyadic parameter
// using lineDivide in place of the midpoint operator.
//
// The Square branch fixes the open question in §9: the middle control
// point of the second child must be lineDivide(ma, mb, pos), not
// lineDivide(m, b, pos).
func (s Spline) Split(pos SplitPosition) (Spline, Spline, error) {
	a := s.Anchors
	switch s.Kind {
	case SplineLine:
		m := LineDividePoint(a[0], a[1], pos)
		return NewLine(a[0], m), NewLine(m, a[1]), nil
	case SplineSquare:
		ma := LineDividePoint(a[0], a[1], pos)
		mb := LineDividePoint(a[1], a[2], pos)
		m := LineDividePoint(ma, mb, pos)
		return NewSquare(a[0], ma, m), NewSquare(m, mb, a[2]), nil
	case SplineCubic:
		m0 := LineDividePoint(a[0], a[1], pos)
		m1 := LineDividePoint(a[1], a[2], pos)
		m2 := LineDividePoint(a[2], a[3], pos)
		n0 := LineDividePoint(m0, m1, pos)
		n1 := LineDividePoint(m1, m2, pos)
		mm := LineDividePoint(n0, n1, pos)
		return NewCubic(a[0], m0, n0, mm), NewCubic(mm, n1, m2, a[3]), nil
	default:
		return Spline{}, Spline{}, ErrUnimplementedArc
	}
}
