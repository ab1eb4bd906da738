package icurve

// ClockDirection is sign(cross(p1-p0, p1-p2)): -1, 0, or +1.
//
// Grounded on original_source/iCurve/src/int/math/triangle.rs.
func ClockDirection(p0, p1, p2 IntPoint) int {
	a := AreaTwo(p0, p1, p2)
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}

// AreaTwo is twice the signed area of the oriented triangle (p0, p1, p2),
// matching the spec's clock(p0,p1,p2) = sign(cross(p1-p0, p1-p2)).
func AreaTwo(p0, p1, p2 IntPoint) int64 {
	return CrossProduct(p1.Sub(p0), p1.Sub(p2))
}
