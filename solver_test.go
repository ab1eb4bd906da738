package icurve

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

// TestOverlaySplinesScenarios covers the cubic end-to-end scenarios 4-6 of
// SPEC_FULL.md §8, grounded on
// original_source/iCurve/src/int/collision/solver.rs's test_0/_1/_2.
func TestOverlaySplinesScenarios(t *testing.T) {
	space := DefaultSpace()

	t.Run("scenario 4", func(t *testing.T) {
		a := NewCubic(IntPoint{0, 0}, IntPoint{0, 50}, IntPoint{50, 100}, IntPoint{100, 100})
		b := NewCubic(IntPoint{50, 0}, IntPoint{50, 50}, IntPoint{0, 100}, IntPoint{-50, 100})
		overlays, err := OverlaySplines(a, b, space)
		if err != nil {
			t.Fatal(err)
		}
		test.T(t, len(overlays), 1)
	})

	t.Run("scenario 5", func(t *testing.T) {
		a := NewCubic(IntPoint{0, -100}, IntPoint{413, 295}, IntPoint{100, 0}, IntPoint{-200, 351})
		b := NewCubic(IntPoint{100, 100}, IntPoint{100, 200}, IntPoint{200, 100}, IntPoint{200, 200})
		overlays, err := OverlaySplines(a, b, space)
		if err != nil {
			t.Fatal(err)
		}
		test.T(t, len(overlays), 1)
	})

	t.Run("scenario 6", func(t *testing.T) {
		a := NewCubic(IntPoint{167, 141}, IntPoint{103, 161}, IntPoint{-50, 175}, IntPoint{-200, 351})
		b := NewCubic(IntPoint{150, 150}, IntPoint{175, 150}, IntPoint{200, 150}, IntPoint{200, 200})
		overlays, err := OverlaySplines(a, b, space)
		if err != nil {
			t.Fatal(err)
		}
		test.T(t, len(overlays), 0)
	})
}

// TestOverlaySplinesCrossStress sweeps two perpendicular cubic splines
// whose handle points wander around a circle of radius R, asserting at
// least one overlay is always found.
//
// Grounded on original_source/iCurve/src/int/collision/solver.rs's
// test_random_0 (20 angular samples on each of the 4 handle points).
func TestOverlaySplinesCrossStress(t *testing.T) {
	if testing.Short() {
		t.Skip("stress sweep skipped in -short mode")
	}

	const count = 20
	const r = int64(10_000)
	f := float64(r)

	offsets := make([]IntOffset, count)
	deltaAngle := 2.0 * math.Pi / float64(count)
	angle := 0.0
	for i := 0; i < count; i++ {
		sn, cs := math.Sincos(angle)
		offsets[i] = IntOffset{int64(f * cs), int64(f * sn)}
		angle += deltaAngle
	}

	space := DefaultSpace()

	for _, p0 := range offsets {
		for _, p1 := range offsets {
			for _, p2 := range offsets {
				for _, p3 := range offsets {
					a := NewCubic(
						IntPoint{-r, 0},
						IntPoint{0, -r}.Add(p0),
						IntPoint{0, r}.Add(p1),
						IntPoint{r, 0},
					)
					b := NewCubic(
						IntPoint{0, -r},
						IntPoint{0, -r}.Add(p2),
						IntPoint{0, r}.Add(p3),
						IntPoint{0, r},
					)
					overlays, err := OverlaySplines(a, b, space)
					if err != nil {
						if _, ok := err.(*SolverSaturatedError); !ok {
							t.Fatal(err)
						}
					}
					if len(overlays) == 0 {
						t.Fatalf("expected at least one overlay for offsets %v %v %v %v", p0, p1, p2, p3)
					}
				}
			}
		}
	}
}
