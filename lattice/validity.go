package lattice

import "github.com/gonum-community/antihash/bignum"

// HashImageZero reports whether row's first k columns (the hash-image
// columns) are all exactly zero.
func HashImageZero(b *Basis, row, k int) bool {
	for j := 0; j < k; j++ {
		if !b.At(row, j).IsZero() {
			return false
		}
	}
	return true
}

// RowMax returns the maximum absolute value among row's coefficient
// columns [k, n), the per-position character-difference coordinates.
func RowMax(b *Basis, row, k int) bignum.Integer {
	n, _ := b.Dims()
	max := b.At(row, k).Abs()
	for j := k + 1; j < n; j++ {
		v := b.At(row, j).Abs()
		if v.Cmp(max) > 0 {
			max = v
		}
	}
	return max
}

// IsValidRow implements the row validity test of spec.md §4.4: row is a
// valid solution iff its hash-image columns vanish exactly and its
// coefficient columns all fit within the alphabet size sigma.
func IsValidRow(b *Basis, row, k, sigma int) bool {
	if !HashImageZero(b, row, k) {
		return false
	}
	return RowMax(b, row, k).Cmp(bignum.NewIntegerFromInt64(int64(sigma))) < 0
}
