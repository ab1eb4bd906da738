package icurve

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestLineBoundary(t *testing.T) {
	s := NewLine(IntPoint{0, 0}, IntPoint{10, 5})
	r, err := s.Boundary()
	if err != nil {
		t.Fatal(err)
	}
	test.T(t, r, IntRect{0, 0, 10, 5})
}

func TestArcUnimplemented(t *testing.T) {
	s := Spline{Kind: SplineArc}
	_, err := s.Boundary()
	test.T(t, err, ErrUnimplementedArc)

	_, _, err = s.Bisect()
	test.T(t, err, ErrUnimplementedArc)

	_, _, err = s.Split(SplitPosition{Power: 1, Value: 1})
	test.T(t, err, ErrUnimplementedArc)
}

func TestCubicBisectEndpointsMatch(t *testing.T) {
	s := NewCubic(IntPoint{0, 0}, IntPoint{0, 50}, IntPoint{50, 100}, IntPoint{100, 100})
	left, right, err := s.Bisect()
	if err != nil {
		t.Fatal(err)
	}
	test.T(t, left.Start(), s.Start())
	test.T(t, right.End(), s.End())
	test.T(t, left.End(), right.Start())
}

func TestSquareSplitArbitraryUsesLineDivideMaMb(t *testing.T) {
	s := NewSquare(IntPoint{0, 0}, IntPoint{10, 20}, IntPoint{20, 0})
	pos := SplitPosition{Power: 2, Value: 1} // t = 1/4
	left, right, err := s.Split(pos)
	if err != nil {
		t.Fatal(err)
	}

	ma := LineDividePoint(s.Anchors[0], s.Anchors[1], pos)
	mb := LineDividePoint(s.Anchors[1], s.Anchors[2], pos)
	m := LineDividePoint(ma, mb, pos)

	test.T(t, left.Anchors[1], ma)
	test.T(t, left.Anchors[2], m)
	test.T(t, right.Anchors[0], m)
	test.T(t, right.Anchors[1], mb)
}

func TestLinePointAtHalfIsMidpoint(t *testing.T) {
	s := NewLine(IntPoint{0, 0}, IntPoint{10, 10})
	p, err := s.PointAt(SplitPosition{Power: 1, Value: 1})
	if err != nil {
		t.Fatal(err)
	}
	test.T(t, p, IntPoint{5, 5})
}
