package wide

import "testing"

func TestQuoRoundHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		num, den int64
		want     int64
	}{
		{5, 2, 3},
		{-5, 2, -3},
		{7, 2, 4},
		{4, 2, 2},
		{1, 3, 0},
	}
	for _, c := range cases {
		got := FromInt64(c.num).QuoRound(FromInt64(c.den))
		if got != c.want {
			t.Errorf("QuoRound(%d,%d) = %d, want %d", c.num, c.den, got, c.want)
		}
	}
}

func TestQuoFloor(t *testing.T) {
	if got := FromInt64(7).QuoFloor(FromInt64(2)); got != 3 {
		t.Errorf("got %d want 3", got)
	}
	if got := FromInt64(-7).QuoFloor(FromInt64(2)); got != -4 {
		t.Errorf("got %d want -4", got)
	}
}

func TestIsqrt(t *testing.T) {
	if got := Isqrt(FromInt64(100)); got != 10 {
		t.Errorf("got %d want 10", got)
	}
	if got := Isqrt(FromInt64(99)); got != 9 {
		t.Errorf("got %d want 9", got)
	}
}

func TestMul64Widens(t *testing.T) {
	big := int64(1) << 40
	got := Mul64(big, big)
	if got.Sign() <= 0 {
		t.Errorf("expected positive widened product")
	}
}
