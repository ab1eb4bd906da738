// Package container holds the small fixed-capacity and arena-based
// containers the geometry kernel uses instead of general-purpose
// collections, grounded on _examples/original_source/iCurve/src/int/data/.
package container

// FourVec is a stack-allocated vector of capacity 4. The cap is a semantic
// invariant of the four-point convex hull (C3), not an optimization, so it
// must never be replaced by a heap-allocated slice-backed type.
//
// Grounded on original_source/iCurve/src/int/data/four_vec.rs.
type FourVec[T any] struct {
	buf [4]T
	len int
}

func (v *FourVec[T]) Len() int { return v.len }

func (v *FourVec[T]) IsEmpty() bool { return v.len == 0 }

func (v *FourVec[T]) Slice() []T { return v.buf[:v.len] }

func (v *FourVec[T]) Get(i int) T { return v.buf[i] }

func (v *FourVec[T]) Set(i int, x T) { v.buf[i] = x }

// Push appends x. Panics if already at capacity; callers in this package
// never exceed 4 elements by construction.
func (v *FourVec[T]) Push(x T) {
	if v.len >= 4 {
		panic("container: FourVec overflow")
	}
	v.buf[v.len] = x
	v.len++
}

// Remove deletes the element at idx by swapping it with the last element,
// matching the original's swap_remove (order is not preserved).
func (v *FourVec[T]) Remove(idx int) {
	last := v.len - 1
	v.buf[idx] = v.buf[last]
	v.len = last
}

// Extract removes and returns the element at idx (swap-remove semantics).
func (v *FourVec[T]) Extract(idx int) T {
	x := v.buf[idx]
	v.Remove(idx)
	return x
}

// WithSlice builds a FourVec from up to 4 source elements.
func WithSlice[T any](src []T) FourVec[T] {
	var v FourVec[T]
	for _, x := range src {
		v.Push(x)
	}
	return v
}
