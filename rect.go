package icurve

import "math/bits"

// IntRect is an axis-aligned bounding box over IntPoint.
//
// Grounded on original_source/iCurve/src/int/math/rect.rs; the bounding-box
// union method also absorbs the shape of the teacher's float Rect.Add
// (_examples/blackss2-canvas/util.go), generalized to the integer domain.
type IntRect struct {
	MinX, MinY, MaxX, MaxY int64
}

// EmptyRect returns the canonical empty rectangle: an inverted box that
// AddPoint/AddRect will always widen past.
func EmptyRect() IntRect {
	return IntRect{
		MinX: maxInt64,
		MinY: maxInt64,
		MaxX: minInt64,
		MaxY: minInt64,
	}
}

const (
	maxInt64 = int64(1<<63 - 1)
	minInt64 = -maxInt64 - 1
)

func (r IntRect) IsEmpty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

func WithAB(a, b IntPoint) IntRect {
	r := IntRect{MinX: a.X, MaxX: a.X, MinY: a.Y, MaxY: a.Y}
	return r.AddPoint(b)
}

func WithPoints(points []IntPoint) IntRect {
	r := EmptyRect()
	for _, p := range points {
		r = r.AddPoint(p)
	}
	return r
}

func (r IntRect) AddPoint(p IntPoint) IntRect {
	if p.X < r.MinX {
		r.MinX = p.X
	}
	if p.X > r.MaxX {
		r.MaxX = p.X
	}
	if p.Y < r.MinY {
		r.MinY = p.Y
	}
	if p.Y > r.MaxY {
		r.MaxY = p.Y
	}
	return r
}

func (r IntRect) AddRect(o IntRect) IntRect {
	if o.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return o
	}
	if o.MinX < r.MinX {
		r.MinX = o.MinX
	}
	if o.MaxX > r.MaxX {
		r.MaxX = o.MaxX
	}
	if o.MinY < r.MinY {
		r.MinY = o.MinY
	}
	if o.MaxY > r.MaxY {
		r.MaxY = o.MaxY
	}
	return r
}

// Width/Height are not meaningful on an empty rect; callers check IsEmpty
// first where that matters.
func (r IntRect) Width() uint64 {
	return absDiff(r.MaxX, r.MinX)
}

func (r IntRect) Height() uint64 {
	return absDiff(r.MaxY, r.MinY)
}

func absDiff(a, b int64) uint64 {
	if a >= b {
		return uint64(a - b)
	}
	return uint64(b - a)
}

// MaxLogSize is floor(log2(max(width, height))), clamped to 0 when the box
// collapses to a point.
func (r IntRect) MaxLogSize() uint32 {
	w, h := r.Width(), r.Height()
	m := w
	if h > m {
		m = h
	}
	if m == 0 {
		return 0
	}
	return uint32(bits.Len64(m) - 1)
}

// OverlapInclusive reports whether the two rects' intervals overlap on both
// axes, with boundary touching counting as overlap.
func (r IntRect) OverlapInclusive(o IntRect) bool {
	if r.MaxX < o.MinX || o.MaxX < r.MinX {
		return false
	}
	if r.MaxY < o.MinY || o.MaxY < r.MinY {
		return false
	}
	return true
}
