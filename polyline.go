package icurve

import (
	"math/bits"

	"github.com/iShape-Rust/iCurve/internal/container"
)

// Short is a single directed chord emitted by the polyline approximator.
type Short struct {
	A, B IntPoint
	Dir  IntOffset
}

type shortNode struct {
	a, b  IntPoint
	dir   IntOffset
	step  uint64
	depth uint32
}

// approximateShorts is the adaptive subdivision of §4.6: an intrusive
// arena linked list seeded with one chord spanning the curve endpoints,
// recursively split wherever direction deviates by more than minCos (a
// 16-bit fraction of UNIT) from a neighbor, stopping once a chord is
// "small" under minLen.
//
// Grounded on original_source/iCurve/src/int/bezier/short.rs.
func approximateShorts(spline Spline, minCos uint16, minLen int64) ([]Short, error) {
	if spline.Kind == SplineArc {
		return nil, ErrUnimplementedArc
	}

	startDir, err := spline.StartDir()
	if err != nil {
		return nil, err
	}
	endDir, err := spline.EndDir()
	if err != nil {
		return nil, err
	}

	a, b := spline.Start(), spline.End()
	root := shortNode{a: a, b: b, dir: Normalized16(b.Sub(a)), step: 0, depth: 0}

	list := container.NewLinkList([]shortNode{root})

	toVisit := []uint32{0}
	threshold := int64(minCos) << 16

	for len(toVisit) > 0 {
		toSplit := collectToSplit(list, toVisit, startDir, endDir, threshold)

		var nextVisit []uint32
		seenVisit := container.NewIndexBitSet()

		for _, i := range toSplit {
			node := list.Get(i)
			newDepth := node.depth + 1
			midPos := SplitPosition{Power: newDepth, Value: 2*node.step + 1}

			mid, err := spline.PointAt(midPos)
			if err != nil {
				return nil, err
			}

			leftVec := mid.Sub(node.a)
			rightVec := node.b.Sub(mid)

			left := shortNode{a: node.a, b: mid, dir: Normalized16(leftVec), step: node.step * 2, depth: newDepth}
			right := shortNode{a: mid, b: node.b, dir: Normalized16(rightVec), step: node.step*2 + 1, depth: newDepth}

			iLeft, iRight := list.SplitAt(i, left, right)

			if !isSmall(leftVec, minLen) && !seenVisit.Contains(iLeft) {
				seenVisit.Insert(iLeft)
				nextVisit = append(nextVisit, iLeft)
			}
			if !isSmall(rightVec, minLen) && !seenVisit.Contains(iRight) {
				seenVisit.Insert(iRight)
				nextVisit = append(nextVisit, iRight)
			}
		}

		toVisit = nextVisit
	}

	nodes := list.Ordered()
	shorts := make([]Short, len(nodes))
	for i, n := range nodes {
		shorts[i] = Short{A: n.a, B: n.b, Dir: n.dir}
	}
	return shorts, nil
}

// collectToSplit dedupes the round's to_split set with an IndexBitSet, so
// an index listed more than once in toVisit is split at most once in the
// round. This is the wired use of C8's bitset described in SPEC_FULL.md §9.
func collectToSplit(list *container.LinkList[shortNode], toVisit []uint32, startDir, endDir IntOffset, threshold int64) []uint32 {
	seen := container.NewIndexBitSet()
	var out []uint32
	for _, i := range toVisit {
		node := list.Get(i)

		leftDir := startDir
		if prev := list.Prev(i); prev != container.EmptyRef {
			leftDir = list.Get(prev).dir
		}
		rightDir := endDir
		if next := list.Next(i); next != container.EmptyRef {
			rightDir = list.Get(next).dir
		}

		if DotProduct(node.dir, leftDir) < threshold || DotProduct(node.dir, rightDir) < threshold {
			if !seen.Contains(i) {
				seen.Insert(i)
				out = append(out, i)
			}
		}
	}
	return out
}

// isSmall reports whether offset v is "small" for the minLen threshold,
// per §4.6's two-stage check (component magnitude first, avoiding a full
// isqrt unless both components are already below threshold).
func isSmall(v IntOffset, minLen int64) bool {
	if minLen <= 0 {
		return false
	}
	k := floorLog2(minLen)

	ax, ay := absInt64(v.X), absInt64(v.Y)
	if ax < 1 {
		ax = 1
	}
	if ay < 1 {
		ay = 1
	}
	if floorLog2(ax) >= k || floorLog2(ay) >= k {
		return false
	}

	sqrLen := v.SqrLen()
	length := int64(isqrtU64(sqrLen))
	if length < 1 {
		length = 1
	}
	return floorLog2(length) < k
}

func floorLog2(x int64) uint32 {
	if x <= 1 {
		return 0
	}
	return uint32(bits.Len64(uint64(x)) - 1)
}

func isqrtU64(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	r := uint64(1) << ((bits.Len64(x) + 1) / 2)
	for {
		next := (r + x/r) / 2
		if next >= r {
			return r
		}
		r = next
	}
}
