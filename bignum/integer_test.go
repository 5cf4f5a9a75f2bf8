package bignum

import "testing"

func TestIntegerArithmetic(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		a, b           int64
		wantAdd        int64
		wantSub        int64
		wantMul        int64
		wantModNeg     int64 // a.Neg().Mod(b)
	}{
		{a: 7, b: 3, wantAdd: 10, wantSub: 4, wantMul: 21, wantModNeg: 2},
		{a: -5, b: 4, wantAdd: -1, wantSub: -9, wantMul: -20, wantModNeg: 1},
	} {
		a := NewIntegerFromInt64(test.a)
		b := NewIntegerFromInt64(test.b)
		if got, _ := a.Add(b).Int64(); got != test.wantAdd {
			t.Errorf("Add(%d,%d) = %d, want %d", test.a, test.b, got, test.wantAdd)
		}
		if got, _ := a.Sub(b).Int64(); got != test.wantSub {
			t.Errorf("Sub(%d,%d) = %d, want %d", test.a, test.b, got, test.wantSub)
		}
		if got, _ := a.Mul(b).Int64(); got != test.wantMul {
			t.Errorf("Mul(%d,%d) = %d, want %d", test.a, test.b, got, test.wantMul)
		}
		if got, _ := a.Neg().Mod(b).Int64(); got != test.wantModNeg {
			t.Errorf("Neg(%d).Mod(%d) = %d, want %d", test.a, test.b, got, test.wantModNeg)
		}
	}
}

func TestIntegerModNonNegative(t *testing.T) {
	t.Parallel()
	a := NewIntegerFromInt64(-1)
	m := NewIntegerFromInt64(998244353)
	got, _ := a.Mod(m).Int64()
	if got < 0 || got != 998244352 {
		t.Errorf("Mod(-1, 998244353) = %d, want 998244352", got)
	}
}

func TestIntegerInt64Overflow(t *testing.T) {
	t.Parallel()
	huge := NewIntegerFromBigInt(pow10(30))
	if _, ok := huge.Int64(); ok {
		t.Error("Int64() on a 10^30 magnitude value reported ok, want overflow failure")
	}
}

func TestDotProduct(t *testing.T) {
	t.Parallel()
	a := []Integer{NewIntegerFromInt64(1), NewIntegerFromInt64(2), NewIntegerFromInt64(3)}
	b := []Integer{NewIntegerFromInt64(4), NewIntegerFromInt64(5), NewIntegerFromInt64(6)}
	got, _ := DotProduct(a, b).Int64()
	if want := int64(1*4 + 2*5 + 3*6); got != want {
		t.Errorf("DotProduct = %d, want %d", got, want)
	}
}

func TestDotProductPanicsOnMismatch(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("DotProduct did not panic on mismatched lengths")
		}
	}()
	DotProduct([]Integer{NewIntegerFromInt64(1)}, nil)
}

func TestPowers(t *testing.T) {
	t.Parallel()
	p := NewIntegerFromInt64(998244353)
	q := NewIntegerFromInt64(233)
	got := Powers(q, p, 5)
	if len(got) != 5 {
		t.Fatalf("Powers returned %d entries, want 5", len(got))
	}
	if v, _ := got[0].Int64(); v != 1 {
		t.Errorf("Powers[0] = %d, want 1", v)
	}
	want := NewIntegerFromInt64(1)
	for j := 1; j < 5; j++ {
		want = want.Mul(q).Mod(p)
		if got[j].Cmp(want) != 0 {
			t.Errorf("Powers[%d] = %s, want %s", j, got[j], want)
		}
	}
}

func TestPowersModulusOne(t *testing.T) {
	t.Parallel()
	got := Powers(NewIntegerFromInt64(5), NewIntegerFromInt64(1), 3)
	for j, v := range got {
		if !v.IsZero() {
			t.Errorf("Powers(_, 1, _)[%d] = %s, want 0", j, v)
		}
	}
}
