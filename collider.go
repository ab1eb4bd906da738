package icurve

// Collider pairs a spline with its bounding rect and, when the boundary is
// small enough to bound tightly, a 4-hull approximation.
//
// Grounded on original_source/iCurve/src/int/collision/{collider,approximation}.rs.
// The Arc branch there silently returns IntRect::empty()/panics; here it
// surfaces ErrUnimplementedArc, per §7.
type Collider struct {
	Spline         Spline
	Boundary       IntRect
	Approximation  *FourConvex
	SizeLevel      uint32
}

// NewCollider classifies the spline's boundary against space and builds
// the appropriate hull approximation (none, endpoint segment, or full
// anchor-polygon hull).
func NewCollider(s Spline, space Space) (Collider, error) {
	boundary, err := s.Boundary()
	if err != nil {
		return Collider{}, err
	}
	if err := checkCoordinateRange(s.anchors()...); err != nil {
		return Collider{}, err
	}
	sizeLevel := boundary.MaxLogSize()

	var approx *FourConvex
	switch {
	case sizeLevel >= space.ConvexLevel:
		approx = nil
	case sizeLevel < space.LineLevel:
		fc := BuildFourConvex([]IntPoint{s.Start(), s.End()})
		approx = &fc
	default:
		fc := BuildFourConvex(s.anchors())
		approx = &fc
	}

	return Collider{
		Spline:        s,
		Boundary:      boundary,
		Approximation: approx,
		SizeLevel:     sizeLevel,
	}, nil
}

// ToSegment reduces the collider to the straight segment between the
// spline's endpoints, used once the solver reaches a leaf pair.
func (c Collider) ToSegment() XSegment {
	return NewXSegment(c.Spline.Start(), c.Spline.End())
}

// Overlap is the pair overlap test of §4.5: bounding-box overlap first,
// then a hull separating-axis test with a bisection-depth margin when both
// sides have hull approximations, otherwise treated as overlapping.
func (c Collider) Overlap(o Collider, space Space) bool {
	if !c.Boundary.OverlapInclusive(o.Boundary) {
		return false
	}
	if c.Approximation != nil && o.Approximation != nil {
		maxLevel := c.SizeLevel
		if o.SizeLevel > maxLevel {
			maxLevel = o.SizeLevel
		}
		margin := int64(2) + int64(maxLevel) - int64(space.LineLevel)
		if margin < 0 {
			margin = 0
		}
		return c.Approximation.OverlapsWithSpace(o.Approximation, margin)
	}
	return true
}

// Bisect splits the underlying spline when its size level still exceeds
// space.LineLevel, reporting ok=false for an already-leaf collider.
func (c Collider) Bisect(space Space) (left, right Collider, ok bool, err error) {
	if c.SizeLevel <= space.LineLevel {
		return Collider{}, Collider{}, false, nil
	}
	s0, s1, err := c.Spline.Bisect()
	if err != nil {
		return Collider{}, Collider{}, false, err
	}
	left, err = NewCollider(s0, space)
	if err != nil {
		return Collider{}, Collider{}, false, err
	}
	right, err = NewCollider(s1, space)
	if err != nil {
		return Collider{}, Collider{}, false, err
	}
	return left, right, true, nil
}
