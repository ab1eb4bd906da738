package icurve

import "github.com/iShape-Rust/iCurve/internal/wide"

// OverlapKind tags the two possible shapes of an XSegment crossing result.
// Kept as a closed struct+enum pair rather than an interface, per the
// design notes in §9: the solver's soundness depends on a statically known
// variant set.
type OverlapKind int

const (
	OverlapPoint OverlapKind = iota
	OverlapSegment
)

// XOverlap is the result of crossing two XSegments: either a single point
// or a collinear overlapping sub-segment.
type XOverlap struct {
	Kind    OverlapKind
	Point   IntPoint
	Segment XSegment
}

func pointOverlap(p IntPoint) XOverlap {
	return XOverlap{Kind: OverlapPoint, Point: p}
}

func segmentOverlap(s XSegment) XOverlap {
	return XOverlap{Kind: OverlapSegment, Segment: s}
}

// Cross computes the exact intersection of two segments.
//
// Grounded on
// original_source/iCurve/src/int/collision/x_segment.rs (the collision
// variant, not the lighter math/x_segment.rs), including its split into a
// generic branch and degenerate collinear / degenerate non-collinear
// branches.
func Cross(s, t XSegment) (XOverlap, bool) {
	if !s.IsOverlapXY(t) {
		return XOverlap{}, false
	}

	cab := ClockDirection(s.A, s.B, t.A)
	dab := ClockDirection(s.A, s.B, t.B)
	acd := ClockDirection(t.A, t.B, s.A)
	bcd := ClockDirection(t.A, t.B, s.B)

	if cab != 0 && dab != 0 && acd != 0 && bcd != 0 && cab != dab && acd != bcd {
		p := crossPoint(s, t)
		return pointOverlap(p), true
	}

	if cab != 0 && dab != 0 && acd != 0 && bcd != 0 {
		return XOverlap{}, false
	}

	if CrossProduct(s.dirOffset(), t.dirOffset()) == 0 {
		return degenerateCollinearCross(s, t)
	}

	return degenerateNotCollinearCross(s, t, cab, dab, acd, bcd)
}

// degenerateCollinearCross resolves the Open Question from §9: a collinear
// single-endpoint touch reports Point unless both endpoints coincide, in
// which case it reports a degenerate Segment containing that one point.
func degenerateCollinearCross(s, t XSegment) (XOverlap, bool) {
	self, other := s, t
	if t.A.Less(s.A) {
		self, other = t, s
	}

	if !self.B.Less(other.B) {
		// other.b <= self.b
		return segmentOverlap(other), true
	}
	if other.A.Less(self.B) {
		return segmentOverlap(NewXSegment(other.A, self.B)), true
	}
	if other.A.Equal(self.B) {
		return pointOverlap(other.A), true
	}
	return XOverlap{}, false
}

// degenerateNotCollinearCross handles the case where exactly one (or more)
// of the four clock directions is zero but the segments are not collinear:
// an endpoint of one segment lies exactly on the span of the other.
func degenerateNotCollinearCross(s, t XSegment, cab, dab, acd, bcd int) (XOverlap, bool) {
	if cab == 0 && s.Contains(t.A) {
		return pointOverlap(t.A), true
	}
	if dab == 0 && s.Contains(t.B) {
		return pointOverlap(t.B), true
	}
	if acd == 0 && t.Contains(s.A) {
		return pointOverlap(s.A), true
	}
	if bcd == 0 && t.Contains(s.B) {
		return pointOverlap(s.B), true
	}
	return XOverlap{}, false
}

// crossPoint computes the interior crossing point via the translate-to-
// origin method of spec.md §4.2, widening to i128 only where the spec
// requires it.
func crossPoint(s, t XSegment) IntPoint {
	A := s.B.Sub(s.A)
	B0 := t.A.Sub(s.A)
	B1 := t.B.Sub(s.A)

	xyB := AccurateCrossProduct(B0, B1)
	dxB := B0.X - B1.X
	dyB := B0.Y - B1.Y

	var x0, y0 int64
	switch {
	case A.X == 0:
		x0 = 0
		y0 = xyB.QuoRound(wide.FromInt64(dxB))
	case A.Y == 0:
		y0 = 0
		x0 = xyB.Neg().QuoRound(wide.FromInt64(dyB))
	default:
		den := wide.Mul64(A.Y, dxB).Sub(wide.Mul64(A.X, dyB))
		kx := wide.FromInt64(A.X).Mul(xyB)
		ky := wide.FromInt64(A.Y).Mul(xyB)
		x0 = kx.QuoRound(den)
		y0 = ky.QuoRound(den)
	}

	return s.A.Add(IntOffset{x0, y0})
}
