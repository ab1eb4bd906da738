package icurve

import "github.com/iShape-Rust/iCurve/internal/wide"

// UNIT is the fixed-point scale used for 16-bit-normalized direction
// vectors.
const UNIT = 1 << 16

// Normalized16 produces v' ~= v * (UNIT / |v|). The zero vector maps to the
// zero offset.
//
// Grounded on original_source/iCurve/src/int/math/normalize.rs
// (VectorNormalization16) and spline_cube.rs's use of normalized_16bit for
// start/end tangents; the 10-bit variant seen in math/point.rs is a stale
// competing revision and is not followed (spec.md §4.1 fixes UNIT = 2^16).
func Normalized16(v IntOffset) IntOffset {
	if v.X == 0 && v.Y == 0 {
		return IntOffset{}
	}

	sqrLen := wide.Mul64(v.X, v.X).Add(wide.Mul64(v.Y, v.Y))
	length := wide.Isqrt(sqrLen)
	if length == 0 {
		return IntOffset{}
	}

	bitsCount := sqrLen.BitLen()
	if bitsCount-1 <= 63-16 {
		x := wide.Mul64(v.X, UNIT).QuoFloor(wide.FromInt64(length))
		y := wide.Mul64(v.Y, UNIT).QuoFloor(wide.FromInt64(length))
		return IntOffset{x, y}
	}

	l := length >> 16
	if l == 0 {
		l = 1
	}
	return IntOffset{v.X / l, v.Y / l}
}
