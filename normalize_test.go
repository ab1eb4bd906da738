package icurve

import (
	"testing"

	"github.com/tdewolff/test"
)

// TestNormalized16Invariant exercises property 4 of §8: magnitude stays
// within UNIT*100 of UNIT^2 and each component is bounded by UNIT.
func TestNormalized16Invariant(t *testing.T) {
	cases := []IntOffset{
		{3, 4},
		{1, 0},
		{0, 1},
		{-7, 24},
		{1 << 30, 1},
		{1 << 39, 1 << 39},
	}
	for _, v := range cases {
		got := Normalized16(v)
		sqr := got.X*got.X + got.Y*got.Y
		diff := sqr - UNIT*UNIT
		if diff < 0 {
			diff = -diff
		}
		test.That(t, diff <= 100*UNIT, "vector", v, "normalized", got)
		test.That(t, got.X <= UNIT && got.X >= -UNIT)
		test.That(t, got.Y <= UNIT && got.Y >= -UNIT)
	}
}

func TestNormalized16Zero(t *testing.T) {
	test.T(t, Normalized16(IntOffset{}), IntOffset{})
}
