package icurve

// XBox carries the accumulated dyadic position alongside the collider it
// tags, so a leaf pair can later reconstruct where on the original spline
// it sits.
//
// Grounded on original_source/iCurve/src/int/collision/pair.rs.
type XBox struct {
	Position SplitPosition
	Collider Collider
}

// Pair is one candidate pairing of a primary-side and secondary-side
// sub-collider during the recursive subdivision.
type Pair struct {
	A, B XBox
}

// Overlap delegates to the colliders' overlap test.
func (p Pair) Overlap(space Space) bool {
	return p.A.Collider.Overlap(p.B.Collider, space)
}

// SplitInto bisects whichever side(s) still exceed space.LineLevel,
// producing 4, 2, or 1 (leaf) children.
func (p Pair) SplitInto(space Space) ([]Pair, error) {
	a0, a1, aOk, err := p.A.Collider.Bisect(space)
	if err != nil {
		return nil, err
	}
	b0, b1, bOk, err := p.B.Collider.Bisect(space)
	if err != nil {
		return nil, err
	}

	switch {
	case aOk && bOk:
		pa0, pa1 := p.A.Position.Bisect()
		pb0, pb1 := p.B.Position.Bisect()
		return []Pair{
			{XBox{pa0, a0}, XBox{pb0, b0}},
			{XBox{pa0, a0}, XBox{pb1, b1}},
			{XBox{pa1, a1}, XBox{pb0, b0}},
			{XBox{pa1, a1}, XBox{pb1, b1}},
		}, nil
	case aOk:
		pa0, pa1 := p.A.Position.Bisect()
		return []Pair{
			{XBox{pa0, a0}, p.B},
			{XBox{pa1, a1}, p.B},
		}, nil
	case bOk:
		pb0, pb1 := p.B.Position.Bisect()
		return []Pair{
			{p.A, XBox{pb0, b0}},
			{p.A, XBox{pb1, b1}},
		}, nil
	default:
		return []Pair{p}, nil
	}
}
