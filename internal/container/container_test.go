package container

import "testing"

func TestFourVecPushRemove(t *testing.T) {
	var v FourVec[int]
	v.Push(1)
	v.Push(2)
	v.Push(3)
	if v.Len() != 3 {
		t.Fatalf("len = %d, want 3", v.Len())
	}
	v.Remove(0)
	if v.Len() != 2 {
		t.Fatalf("len = %d, want 2", v.Len())
	}
	// swap-remove puts the last element (3) into slot 0
	if v.Get(0) != 3 {
		t.Fatalf("Get(0) = %d, want 3", v.Get(0))
	}
}

func TestLinkListSplitAtOrdering(t *testing.T) {
	l := NewLinkList([]string{"a-z"})
	i0, i1 := l.SplitAt(0, "a-m", "m-z")
	if l.Get(i0) != "a-m" || l.Get(i1) != "m-z" {
		t.Fatalf("unexpected items after split")
	}
	ordered := l.Ordered()
	if len(ordered) != 2 || ordered[0] != "a-m" || ordered[1] != "m-z" {
		t.Fatalf("unexpected order: %v", ordered)
	}

	i2, i3 := l.SplitAt(i1, "m-s", "s-z")
	_ = i2
	_ = i3
	ordered = l.Ordered()
	if len(ordered) != 3 || ordered[0] != "a-m" || ordered[1] != "m-s" || ordered[2] != "s-z" {
		t.Fatalf("unexpected order after second split: %v", ordered)
	}
}

func TestIndexBitSet(t *testing.T) {
	b := NewIndexBitSet()
	b.Insert(3)
	b.Insert(130)
	if !b.Contains(3) || !b.Contains(130) {
		t.Fatal("expected both indices to be contained")
	}
	if b.Contains(4) {
		t.Fatal("index 4 should not be contained")
	}
	got := b.Iter()
	if len(got) != 2 || got[0] != 3 || got[1] != 130 {
		t.Fatalf("unexpected iteration order: %v", got)
	}
}
