// Package quant implements the coordinate-quantization contract described
// in SPEC_FULL.md §4.7: the boundary between user-facing float64
// coordinates and the integer lattice the icurve core operates on. It is
// an external collaborator, not part of the core, and never performs a
// geometric predicate itself.
package quant

import (
	"github.com/paulmach/orb"
)

// Quantizer scales float coordinates by 2^ScalePower and snaps them to a
// grid of cell size 2^CellSizePower.
type Quantizer struct {
	ScalePower    uint
	CellSizePower uint
}

// ToInt scales f and snaps it onto the dyadic grid.
func (q Quantizer) ToInt(f float64) int64 {
	scaled := int64(f * float64(uint64(1)<<q.ScalePower))
	return SnapToGrid(scaled, q.CellSizePower)
}

// ToFloat is the inverse scale. Snapping already happened on the way in,
// so this is not a perfect round trip by design.
func (q Quantizer) ToFloat(v int64) float64 {
	return float64(v) / float64(uint64(1)<<q.ScalePower)
}

// SnapToGrid implements a → ((a>>p + ((a>>p-1)&1)) << p), a banker-style
// round-half-up using the bit above the cell.
//
// Grounded on spec.md §6's quantization contract description; there is no
// example-pack file for this external layer, so the formula is taken
// directly from the specification text rather than adapted from a teacher
// source.
func SnapToGrid(a int64, cellPower uint) int64 {
	if cellPower == 0 {
		return a
	}
	shifted := a >> cellPower
	bit := (a >> (cellPower - 1)) & 1
	return (shifted + bit) << cellPower
}

// Point interconverts between orb's float-side planar point
// (github.com/paulmach/orb, a maintained planar-geometry library already
// in the teacher pack's dependency stack) and icurve's integer IntPoint,
// via a Quantizer.
type Point struct {
	Quantizer Quantizer
}

func (p Point) ToInt(o orb.Point) IntPointPair {
	return IntPointPair{X: p.Quantizer.ToInt(o.X()), Y: p.Quantizer.ToInt(o.Y())}
}

func (p Point) ToFloat(x, y int64) orb.Point {
	return orb.Point{p.Quantizer.ToFloat(x), p.Quantizer.ToFloat(y)}
}

// IntPointPair mirrors icurve.IntPoint's shape without importing the core
// package, keeping quant a leaf dependency of icurve rather than the
// reverse.
type IntPointPair struct {
	X, Y int64
}
