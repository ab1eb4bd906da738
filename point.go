// Package icurve is an integer-arithmetic Bézier geometry kernel: exact
// curve-curve overlay via recursive spatial subdivision, with no floating
// point anywhere in the intersection decision path.
package icurve

import "github.com/iShape-Rust/iCurve/internal/wide"

// IntPoint is a 64-bit integer point. No point in the pipeline is expected
// to exceed roughly 2^40 in absolute value; see CoordinateOutOfRange.
//
// Grounded on original_source/iCurve/src/int/math/point.rs.
type IntPoint struct {
	X, Y int64
}

// IntOffset is shape-identical to IntPoint but represents a displacement.
type IntOffset struct {
	X, Y int64
}

func (p IntPoint) Add(o IntOffset) IntPoint {
	return IntPoint{p.X + o.X, p.Y + o.Y}
}

func (p IntPoint) Sub(q IntPoint) IntOffset {
	return IntOffset{p.X - q.X, p.Y - q.Y}
}

func (p IntPoint) AddPoint(q IntPoint) IntPoint {
	return IntPoint{p.X + q.X, p.Y + q.Y}
}

func (p IntPoint) SubOffset(o IntOffset) IntPoint {
	return IntPoint{p.X - o.X, p.Y - o.Y}
}

func (o IntOffset) Add(p IntOffset) IntOffset {
	return IntOffset{o.X + p.X, o.Y + p.Y}
}

func (o IntOffset) Sub(p IntOffset) IntOffset {
	return IntOffset{o.X - p.X, o.Y - p.Y}
}

func (o IntOffset) Scale(k int64) IntOffset {
	return IntOffset{o.X * k, o.Y * k}
}

func (o IntOffset) ToPoint() IntPoint {
	return IntPoint{o.X, o.Y}
}

func (p IntPoint) ToOffset() IntOffset {
	return IntOffset{p.X, p.Y}
}

func (p IntPoint) Neg() IntPoint {
	return IntPoint{-p.X, -p.Y}
}

func (o IntOffset) Neg() IntOffset {
	return IntOffset{-o.X, -o.Y}
}

// Mid is the integer midpoint, division toward zero as mandated by §4.4.
func Mid(a, b IntPoint) IntPoint {
	return IntPoint{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Less implements the total order: lexicographic by X then Y.
func (p IntPoint) Less(q IntPoint) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (p IntPoint) Equal(q IntPoint) bool {
	return p.X == q.X && p.Y == q.Y
}

// Compare returns -1, 0, or 1 per the IntPoint total order.
func (p IntPoint) Compare(q IntPoint) int {
	if p.X != q.X {
		if p.X < q.X {
			return -1
		}
		return 1
	}
	switch {
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	default:
		return 0
	}
}

// SqrLen is the squared length of the point viewed as a vector from origin.
func (p IntPoint) SqrLen() uint64 {
	return uint64(p.X*p.X + p.Y*p.Y)
}

func (o IntOffset) SqrLen() uint64 {
	return uint64(o.X*o.X + o.Y*o.Y)
}

// SqrDist is the squared distance between two points.
func (p IntPoint) SqrDist(q IntPoint) uint64 {
	d := p.Sub(q)
	return d.SqrLen()
}

// DotProduct is u.x*v.x + u.y*v.y.
func DotProduct(u, v IntOffset) int64 {
	return u.X*v.X + u.Y*v.Y
}

// CrossProduct is u.x*v.y - u.y*v.x. Sign tells turn direction.
func CrossProduct(u, v IntOffset) int64 {
	return u.X*v.Y - u.Y*v.X
}

// AccurateCrossProduct widens the multiplication to avoid overflow when
// operands approach the coordinate bound.
func AccurateCrossProduct(u, v IntOffset) wide.Int128 {
	return wide.Mul64(u.X, v.Y).Sub(wide.Mul64(u.Y, v.X))
}

// AccurateDotProduct is the widened counterpart of DotProduct.
func AccurateDotProduct(u, v IntOffset) wide.Int128 {
	return wide.Mul64(u.X, v.X).Add(wide.Mul64(u.Y, v.Y))
}
