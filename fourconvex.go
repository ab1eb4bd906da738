package icurve

import (
	"sort"

	"github.com/iShape-Rust/iCurve/internal/container"
	"github.com/iShape-Rust/iCurve/internal/wide"
)

// FourConvex is a convex polygon of at most 4 distinct vertices, stored in
// a fixed-capacity inline array. The 4-cap is a semantic invariant, not an
// optimization (design notes, §9), hence the backing container.FourVec
// rather than a slice.
//
// Grounded on original_source/iCurve/src/int/convex/{builder,hull}.rs and
// int/collision/{convexity,four_convex}.rs.
type FourConvex struct {
	points container.FourVec[IntPoint]
}

func (c *FourConvex) Len() int { return c.points.Len() }

func (c *FourConvex) Points() []IntPoint { return c.points.Slice() }

// BuildFourConvex builds the convex hull of up to 4 points, emitted in CCW
// order starting from the leftmost-lowest vertex. Duplicate points are
// removed; collinear triples collapse to a 2-vertex segment.
func BuildFourConvex(input []IntPoint) FourConvex {
	pts := dedupe(input)

	if len(pts) <= 2 {
		var fc FourConvex
		sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
		for _, p := range pts {
			fc.points.Push(p)
		}
		return fc
	}

	pivotIdx := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].Less(pts[pivotIdx]) {
			pivotIdx = i
		}
	}
	pivot := pts[pivotIdx]
	rest := make([]IntPoint, 0, len(pts)-1)
	for i, p := range pts {
		if i != pivotIdx {
			rest = append(rest, p)
		}
	}

	sort.Slice(rest, func(i, j int) bool {
		return polarLess(pivot, rest[i], rest[j])
	})

	stack := []IntPoint{pivot}
	for _, p := range rest {
		for len(stack) >= 2 {
			a := stack[len(stack)-2]
			b := stack[len(stack)-1]
			if CrossProduct(b.Sub(a), p.Sub(b)) > 0 {
				break
			}
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}

	var fc FourConvex
	for _, p := range stack {
		fc.points.Push(p)
	}
	return fc
}

func dedupe(input []IntPoint) []IntPoint {
	seen := make(map[IntPoint]struct{}, len(input))
	out := make([]IntPoint, 0, len(input))
	for _, p := range input {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// polarLess orders points by polar angle around pivot, breaking ties on
// equal angle by distance ascending (so the graham scan above naturally
// drops the nearer of two collinear points). The pivot is the leftmost-
// lowest point, so every other point lies within an angular range of less
// than a half turn and the cross product alone gives the angular order.
func polarLess(pivot, p, q IntPoint) bool {
	cr := CrossProduct(p.Sub(pivot), q.Sub(pivot))
	if cr != 0 {
		return cr > 0
	}
	return p.Sub(pivot).SqrLen() < q.Sub(pivot).SqrLen()
}

// IsConvex reports whether the stored vertex sequence is a convex polygon
// (trivially true for <= 2 points).
func (c *FourConvex) IsConvex() bool {
	pts := c.Points()
	n := len(pts)
	if n <= 2 {
		return true
	}

	p0 := pts[n-2]
	p1 := pts[n-1]
	pi := pts[0]

	e0 := p1.Sub(p0)
	ei := pi.Sub(p1)
	sign := CrossProduct(e0, ei) > 0

	for _, p := range pts[1:] {
		e := p.Sub(pi)
		if (CrossProduct(ei, e) > 0) != sign {
			return false
		}
		pi = p
		ei = e
	}
	return true
}

// Contains reports whether p lies inside the closed polygon. Degenerate
// polygons (<=2 points) never contain anything.
func (c *FourConvex) Contains(p IntPoint) bool {
	pts := c.Points()
	if len(pts) <= 2 {
		return false
	}
	a := pts[len(pts)-1]
	for _, b := range pts {
		v0 := p.Sub(a)
		v1 := b.Sub(a)
		if CrossProduct(v0, v1) > 0 {
			return false
		}
		a = b
	}
	return true
}

// OverlapsWithSpace is the separating-axis test with a margin, per §4.3:
// if some edge of either polygon separates the two hulls by more than
// `space`, they do not overlap.
func (c *FourConvex) OverlapsWithSpace(o *FourConvex, space int64) bool {
	if !separates(c.Points(), o.Points(), space) && !separates(o.Points(), c.Points(), space) {
		return true
	}
	return false
}

func separates(hull, other []IntPoint, space int64) bool {
	n := len(hull)
	if n < 2 {
		return false
	}
	spaceSqr := wide.Mul64(space, space)
	for i := 0; i < n; i++ {
		a := hull[i]
		b := hull[(i+1)%n]
		if n == 2 && i == 1 {
			break
		}
		edge := b.Sub(a)
		edgeSqrLen := edge.SqrLen()

		minCross := int64(0)
		first := true
		for _, v := range other {
			cr := CrossProduct(v.Sub(a), edge)
			if first || cr < minCross {
				minCross = cr
				first = false
			}
		}
		if minCross <= 0 {
			continue
		}
		lhs := wide.Mul64(minCross, minCross)
		rhs := spaceSqr.Mul(wide.FromUint64(edgeSqrLen))
		if lhs.Cmp(rhs) > 0 {
			return true
		}
	}
	return false
}

// CollideResult classifies how two convex hulls interact, for debug
// tooling per §6.
type CollideResult int

const (
	CollideNone CollideResult = iota
	CollideTouch
	CollideOverlap
)

// segments returns the polygon's edges, handling degenerate point/segment
// shapes without a spurious wraparound edge.
func (c *FourConvex) segments() []XSegment {
	pts := c.Points()
	switch len(pts) {
	case 0, 1:
		return nil
	case 2:
		return []XSegment{NewXSegment(pts[0], pts[1])}
	default:
		segs := make([]XSegment, len(pts))
		for i := range pts {
			segs[i] = NewXSegment(pts[i], pts[(i+1)%len(pts)])
		}
		return segs
	}
}

// Collide is the convex-polygon collision classifier exposed for debug
// tools (§6), grounded on
// original_source/iCurve/src/int/collision/four_convex.rs.
func Collide(a, b FourConvex) CollideResult {
	segsA := a.segments()
	segsB := b.segments()

	sawOverlap := false
	sawTouch := false

	for _, sa := range segsA {
		for _, sb := range segsB {
			ov, ok := Cross(sa, sb)
			if !ok {
				continue
			}
			if ov.Kind == OverlapSegment {
				sawOverlap = true
				continue
			}
			if isVertex(ov.Point, sa) && isVertex(ov.Point, sb) {
				sawTouch = true
			} else {
				sawOverlap = true
			}
		}
	}

	if sawOverlap {
		return CollideOverlap
	}

	for _, p := range a.Points() {
		if b.Contains(p) {
			return CollideOverlap
		}
	}
	for _, p := range b.Points() {
		if a.Contains(p) {
			return CollideOverlap
		}
	}

	if sawTouch {
		return CollideTouch
	}
	return CollideNone
}

func isVertex(p IntPoint, s XSegment) bool {
	return p.Equal(s.A) || p.Equal(s.B)
}
