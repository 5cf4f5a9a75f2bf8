package lattice

import (
	"testing"

	"github.com/gonum-community/antihash/bignum"
)

func int64s(xs ...int64) []bignum.Integer {
	out := make([]bignum.Integer, len(xs))
	for i, x := range xs {
		out[i] = bignum.NewIntegerFromInt64(x)
	}
	return out
}

// TestBuildInvariant checks spec.md P6: row n+i has its only non-zero in
// column i, equal to moduloᵢ·lambda.
func TestBuildInvariant(t *testing.T) {
	t.Parallel()
	n := 5
	modulo := int64s(998244353, 1000000007)
	base := int64s(233, 31)
	lambda := bignum.NewIntegerFromInt64(100000)

	basis := Build(n, modulo, base, lambda)
	rows, cols := basis.Dims()
	if rows != n+2 || cols != n+2 {
		t.Fatalf("Dims() = (%d, %d), want (%d, %d)", rows, cols, n+2, n+2)
	}

	for i := 0; i < 2; i++ {
		row := n + i
		for j := 0; j < cols; j++ {
			v := basis.At(row, j)
			if j == i {
				want := modulo[i].Mul(lambda)
				if v.Cmp(want) != 0 {
					t.Errorf("B[%d][%d] = %s, want %s", row, j, v, want)
				}
			} else if !v.IsZero() {
				t.Errorf("B[%d][%d] = %s, want 0", row, j, v)
			}
		}
	}

	// Identity embedding: for 0 <= j < n, B[j][k+j] == 1.
	for j := 0; j < n; j++ {
		if got, _ := basis.At(j, 2+j).Int64(); got != 1 {
			t.Errorf("B[%d][%d] = %d, want 1", j, 2+j, got)
		}
	}

	// Hash-image columns: B[j][i] = (base_i^j mod modulo_i) * lambda.
	pow := bignum.Powers(base[0], modulo[0], n)
	for j := 0; j < n; j++ {
		want := pow[j].Mul(lambda)
		if basis.At(j, 0).Cmp(want) != 0 {
			t.Errorf("B[%d][0] = %s, want %s", j, basis.At(j, 0), want)
		}
	}
}

func TestBuildPanicsOnLengthMismatch(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("Build did not panic on len(modulo) != len(base)")
		}
	}()
	Build(4, int64s(7, 11), int64s(3), bignum.NewIntegerFromInt64(1))
}

func TestRotateRowsRight(t *testing.T) {
	t.Parallel()
	b := NewBasis(4)
	for i := 0; i < 4; i++ {
		b.Set(i, 0, bignum.NewIntegerFromInt64(int64(i)))
	}
	b.RotateRowsRight(1, 3)
	want := []int64{0, 3, 1, 2}
	for i, w := range want {
		if got, _ := b.At(i, 0).Int64(); got != w {
			t.Errorf("after rotate, row %d col 0 = %d, want %d", i, got, w)
		}
	}
}
