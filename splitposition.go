package icurve

import "github.com/iShape-Rust/iCurve/internal/wide"

// SplitPosition is a dyadic rational t = value/2^power, power in [0,63],
// value in [0, 2^power].
//
// Grounded on original_source/iCurve/src/int/bezier/position.rs.
type SplitPosition struct {
	Power uint32
	Value uint64
}

// Bisect returns (2v)/2^(p+1) and (2v+1)/2^(p+1), one level deeper: the
// start positions of the two halves of the interval [v/2^p, (v+1)/2^p].
func (p SplitPosition) Bisect() (SplitPosition, SplitPosition) {
	return SplitPosition{Power: p.Power + 1, Value: p.Value << 1},
		SplitPosition{Power: p.Power + 1, Value: (p.Value << 1) | 1}
}

// lineDivide computes a + ((value*(b-a)) >> power), widening the product
// to i128 per the overflow ladder in §9.
func lineDivide(a, b int64, pos SplitPosition) int64 {
	delta := wide.Mul64(b-a, int64(pos.Value))
	shifted := delta.Rsh(uint(pos.Power))
	return a + shifted.Int64()
}

// LineDividePoint applies lineDivide componentwise.
func LineDividePoint(a, b IntPoint, pos SplitPosition) IntPoint {
	return IntPoint{
		X: lineDivide(a.X, b.X, pos),
		Y: lineDivide(a.Y, b.Y, pos),
	}
}
