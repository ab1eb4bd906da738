package icurve

import (
	"testing"

	"github.com/tdewolff/test"
)

// TestApproximatePointsLine checks invariant 5 of §8 for the trivial case
// of a straight line: no deviation ever triggers a split.
func TestApproximatePointsLine(t *testing.T) {
	s := NewLine(IntPoint{0, 0}, IntPoint{100, 0})
	pts, err := ApproximatePoints(s, UNIT-1, 1)
	if err != nil {
		t.Fatal(err)
	}
	test.That(t, len(pts) >= 2)
	test.T(t, pts[0], s.Start())
	test.T(t, pts[len(pts)-1], s.End())
}

// TestApproximatePointsCubicEndpoints checks invariant 5 for a curved
// spline that must be subdivided.
func TestApproximatePointsCubicEndpoints(t *testing.T) {
	s := NewCubic(IntPoint{0, 0}, IntPoint{0, 100}, IntPoint{100, 100}, IntPoint{100, 0})
	pts, err := ApproximatePoints(s, 60000, 1)
	if err != nil {
		t.Fatal(err)
	}
	test.That(t, len(pts) >= 2)
	test.T(t, pts[0], s.Start())
	test.T(t, pts[len(pts)-1], s.End())
}

func TestApproximatePointsArcUnimplemented(t *testing.T) {
	s := Spline{Kind: SplineArc}
	_, err := ApproximatePoints(s, UNIT-1, 1)
	test.T(t, err, ErrUnimplementedArc)
}

func TestAvgLengthLineIsExact(t *testing.T) {
	s := NewLine(IntPoint{0, 0}, IntPoint{3, 4})
	got, err := AvgLength(s, 60000, 1)
	if err != nil {
		t.Fatal(err)
	}
	test.T(t, got, 5.0)
}

func TestIsSmall(t *testing.T) {
	test.That(t, isSmall(IntOffset{1, 1}, 8))
	test.That(t, !isSmall(IntOffset{100, 100}, 8))
}
