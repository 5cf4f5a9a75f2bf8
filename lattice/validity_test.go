package lattice

import (
	"testing"

	"github.com/gonum-community/antihash/bignum"
)

func TestIsValidRow(t *testing.T) {
	t.Parallel()
	const k, sigma = 2, 26
	b := NewBasis(5)
	// row 0: hash image zero, diffs within sigma -> valid.
	b.Set(0, 0, bignum.Zero())
	b.Set(0, 1, bignum.Zero())
	b.Set(0, 2, bignum.NewIntegerFromInt64(-5))
	b.Set(0, 3, bignum.NewIntegerFromInt64(10))
	b.Set(0, 4, bignum.NewIntegerFromInt64(25))
	if !IsValidRow(b, 0, k, sigma) {
		t.Error("row 0 should be valid")
	}

	// row 1: hash image nonzero -> invalid regardless of diffs.
	b.Set(1, 0, bignum.NewIntegerFromInt64(1))
	if IsValidRow(b, 1, k, sigma) {
		t.Error("row 1 should be invalid (nonzero hash image)")
	}

	// row 2: hash image zero but a diff reaches sigma -> invalid.
	b.Set(2, 2, bignum.NewIntegerFromInt64(26))
	if IsValidRow(b, 2, k, sigma) {
		t.Error("row 2 should be invalid (|diff| == sigma)")
	}
}

func TestRowMax(t *testing.T) {
	t.Parallel()
	b := NewBasis(4)
	b.Set(0, 2, bignum.NewIntegerFromInt64(-7))
	b.Set(0, 3, bignum.NewIntegerFromInt64(3))
	got, _ := RowMax(b, 0, 2).Int64()
	if got != 7 {
		t.Errorf("RowMax = %d, want 7", got)
	}
}
