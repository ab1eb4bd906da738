package icurve

import (
	"testing"

	"github.com/tdewolff/test"
)

// TestCrossScenarios covers the literal end-to-end crossing cases from
// SPEC_FULL.md §8, items 1-3 and 7.
func TestCrossScenarios(t *testing.T) {
	t.Run("simple interior crossing", func(t *testing.T) {
		s := NewXSegment(IntPoint{0, -5}, IntPoint{0, 5})
		u := NewXSegment(IntPoint{-5, 0}, IntPoint{5, 0})
		ov, ok := Cross(s, u)
		test.That(t, ok)
		test.T(t, ov.Kind, OverlapPoint)
		test.T(t, ov.Point, IntPoint{0, 0})
	})

	t.Run("collinear touch", func(t *testing.T) {
		s := NewXSegment(IntPoint{0, 0}, IntPoint{10, 0})
		u := NewXSegment(IntPoint{10, 0}, IntPoint{20, 0})
		ov, ok := Cross(s, u)
		test.That(t, ok)
		test.T(t, ov.Kind, OverlapPoint)
		test.T(t, ov.Point, IntPoint{10, 0})
	})

	t.Run("collinear overlap", func(t *testing.T) {
		s := NewXSegment(IntPoint{0, 0}, IntPoint{10, 0})
		u := NewXSegment(IntPoint{5, 0}, IntPoint{15, 0})
		ov, ok := Cross(s, u)
		test.That(t, ok)
		test.T(t, ov.Kind, OverlapSegment)
		test.T(t, ov.Segment, NewXSegment(IntPoint{5, 0}, IntPoint{10, 0}))
	})

	t.Run("disjoint x-range pruning", func(t *testing.T) {
		s := NewXSegment(IntPoint{0, 0}, IntPoint{1, 0})
		u := NewXSegment(IntPoint{10, 0}, IntPoint{11, 0})
		_, ok := Cross(s, u)
		test.That(t, !ok)
	})
}

// TestCrossCommutative checks invariant 1 of §8.
func TestCrossCommutative(t *testing.T) {
	s := NewXSegment(IntPoint{0, 0}, IntPoint{10, 10})
	u := NewXSegment(IntPoint{0, 10}, IntPoint{10, 0})

	ov1, ok1 := Cross(s, u)
	ov2, ok2 := Cross(u, s)
	test.T(t, ok1, ok2)
	test.T(t, ov1.Kind, ov2.Kind)
	test.T(t, ov1.Point, ov2.Point)
}

// TestCrossRoundTrip checks invariant 2 of §8.
func TestCrossRoundTrip(t *testing.T) {
	s := NewXSegment(IntPoint{-413, 7}, IntPoint{900, -231})
	u := NewXSegment(IntPoint{-800, -500}, IntPoint{500, 800})

	ov, ok := Cross(s, u)
	if !ok || ov.Kind != OverlapPoint {
		t.Skip("no interior point crossing for this fixture")
	}
	test.T(t, ClockDirection(s.A, s.B, ov.Point), 0)
	test.T(t, ClockDirection(u.A, u.B, ov.Point), 0)
}

func TestDegenerateEndpointOnSpan(t *testing.T) {
	s := NewXSegment(IntPoint{0, 0}, IntPoint{10, 0})
	u := NewXSegment(IntPoint{5, -5}, IntPoint{5, 0})
	ov, ok := Cross(s, u)
	test.That(t, ok)
	test.T(t, ov.Kind, OverlapPoint)
	test.T(t, ov.Point, IntPoint{5, 0})
}
