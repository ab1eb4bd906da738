package icurve

import (
	"math/bits"

	"github.com/iShape-Rust/iCurve/internal/wide"
)

// Mark records one intersection found between a leaf pair of segments, plus
// the reconstructed dyadic parameter on each parent spline.
//
// Grounded on original_source/iCurve/src/int/collision/solver.rs, adapted
// to carry the pair.rs/position.rs SplitPosition-based parameter instead of
// that file's plain generation counter, per §4.5's parameter reconstruction
// requirement.
type Mark struct {
	PrimaryPosition   SplitPosition
	PrimarySegment    XSegment
	SecondaryPosition SplitPosition
	SecondarySegment  XSegment
	Overlap           XOverlap
}

// Solver owns the recursive pair-subdivision scratch state for one overlay
// query. It carries mutable state and must not be shared across concurrent
// queries; instantiate one per goroutine (§5).
type Solver struct {
	list, next []Pair
	marks      []Mark
	space      Space
	saturated  bool
}

// NewSolver creates a solver with the default space (line_level = 4).
func NewSolver() *Solver {
	return &Solver{space: DefaultSpace()}
}

// NewSolverWithSpace creates a solver using a caller-supplied space.
func NewSolverWithSpace(space Space) *Solver {
	return &Solver{space: space}
}

// Marks returns the marks recorded by the most recent Intersect call.
func (s *Solver) Marks() []Mark { return s.marks }

// Intersect runs the full pair-subdivision pipeline between two colliders.
// Scratch lists are cleared, not freed, at the start of each call.
func (s *Solver) Intersect(primary, secondary Collider) error {
	s.marks = s.marks[:0]
	s.list = s.list[:0]
	s.saturated = false

	maxLevel := primary.SizeLevel
	if secondary.SizeLevel > maxLevel {
		maxLevel = secondary.SizeLevel
	}

	var iterMin uint32
	if maxLevel > s.space.ConvexLevel {
		iterMin = maxLevel - s.space.ConvexLevel
	}
	var iterMax uint32
	if maxLevel > s.space.LineLevel {
		iterMax = maxLevel - s.space.LineLevel
	}

	root := Pair{
		A: XBox{Position: SplitPosition{}, Collider: primary},
		B: XBox{Position: SplitPosition{}, Collider: secondary},
	}
	s.list = append(s.list, root)

	if err := s.boxCross(iterMin, iterMax); err != nil {
		return err
	}

	if len(s.list) == 0 {
		return nil
	}

	if err := s.segmentCross(); err != nil {
		return err
	}

	if s.saturated {
		Logger().Warn("icurve: solver saturated, circuit breaker tripped", "pairs", len(s.list))
		return &SolverSaturatedError{PairCount: len(s.list)}
	}
	return nil
}

// boxCross is the iterative generation loop of §4.5: current/next lists
// swapped each round, never genuine recursion (design notes, §9), bounded
// by the circuit breaker at 1024 active pairs.
func (s *Solver) boxCross(iterMin, iterMax uint32) error {
	generation := uint32(0)
	for len(s.list) > 0 && generation >= iterMin && generation < iterMax {
		if len(s.list) > 1024 {
			s.saturated = true
			break
		}

		s.next = s.next[:0]
		for _, pair := range s.list {
			if !pair.Overlap(s.space) {
				continue
			}
			children, err := pair.SplitInto(s.space)
			if err != nil {
				return err
			}
			s.next = append(s.next, children...)
		}

		s.list, s.next = s.next, s.list
		generation++
	}
	return nil
}

func (s *Solver) segmentCross() error {
	for _, pair := range s.list {
		segA := pair.A.Collider.ToSegment()
		segB := pair.B.Collider.ToSegment()

		ov, ok := Cross(segA, segB)
		if !ok {
			continue
		}

		var p IntPoint
		if ov.Kind == OverlapPoint {
			p = ov.Point
		} else {
			p = ov.Segment.A
		}

		s.marks = append(s.marks, Mark{
			PrimaryPosition:   parameterAt(segA.A, segA.B, pair.A.Position, p),
			PrimarySegment:    segA,
			SecondaryPosition: parameterAt(segB.A, segB.B, pair.B.Position, p),
			SecondarySegment:  segB,
			Overlap:           ov,
		})
	}
	return nil
}

// parameterAt reconstructs the full dyadic parameter of point p on the
// parent spline by combining the accumulated outer position with a finer
// sub-parameter computed inside the leaf segment [a,b], per §4.5.
func parameterAt(a, b IntPoint, outer SplitPosition, p IntPoint) SplitPosition {
	dx := absInt64(b.X - a.X)
	dy := absInt64(b.Y - a.Y)

	var l, t int64
	if dx >= dy {
		l, t = dx, absInt64(p.X-a.X)
	} else {
		l, t = dy, absInt64(p.Y-a.Y)
	}
	if l == 0 {
		return outer
	}
	if t > l-1 {
		t = l - 1
	}

	power := uint32(bits.Len64(uint64(l)) - 1)
	// t<<power can exceed int64/uint64 range once power is large (reachable
	// through a caller-supplied Space with a high LineLevel), so the shift
	// and division are done in the widened domain rather than natively.
	value := uint64(wide.FromInt64(t).Lsh(uint(power)).QuoFloor(wide.FromInt64(l)))
	inner := SplitPosition{Power: power, Value: value}

	return composePosition(outer, inner)
}

// composePosition combines outer + inner/2^outer.Power into a single
// SplitPosition.
func composePosition(outer, inner SplitPosition) SplitPosition {
	return SplitPosition{
		Power: outer.Power + inner.Power,
		Value: (outer.Value << inner.Power) + inner.Value,
	}
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
