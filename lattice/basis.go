// Package lattice builds and manipulates the integer basis matrix the L²
// reducer works on: an (n+k)×(n+k) matrix whose first k columns are the
// hash-image columns and whose remaining n columns are the per-position
// character-difference coefficients (spec.md §3, §4.1).
package lattice

import (
	"errors"

	"github.com/gonum-community/antihash/bignum"
)

// ErrDimensionMismatch is panicked when a Basis operation is given
// coordinates or row ranges inconsistent with its dimension.
var ErrDimensionMismatch = errors.New("lattice: dimension mismatch")

// Basis is a square matrix of bignum.Integer entries, row-major, where row
// i is the i-th lattice basis vector. It plays the role gonum's mat.Dense
// plays for float64 matrices, adapted to exact arbitrary-precision entries
// and to the row-rotation operation L² reduction needs (RotateRowsRight)
// instead of BLAS-backed factorizations.
type Basis struct {
	n    int
	data []bignum.Integer
}

// NewBasis returns an n×n matrix of zero entries.
func NewBasis(n int) *Basis {
	return &Basis{n: n, data: make([]bignum.Integer, n*n)}
}

// Dims returns the matrix dimensions. Basis is always square, so rows==cols.
func (b *Basis) Dims() (rows, cols int) { return b.n, b.n }

func (b *Basis) index(i, j int) int {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		panic(ErrDimensionMismatch)
	}
	return i*b.n + j
}

// At returns the entry at row i, column j.
func (b *Basis) At(i, j int) bignum.Integer { return b.data[b.index(i, j)] }

// Set assigns the entry at row i, column j.
func (b *Basis) Set(i, j int, v bignum.Integer) { b.data[b.index(i, j)] = v }

// RowView returns the slice backing row i. Mutations through the slice are
// reflected in the matrix; the slice is invalidated by any reallocation of
// b (there is none after NewBasis).
func (b *Basis) RowView(i int) []bignum.Integer {
	if i < 0 || i >= b.n {
		panic(ErrDimensionMismatch)
	}
	return b.data[i*b.n : (i+1)*b.n]
}

// CloneFrom copies src's entries into b, which must have the same
// dimension.
func (b *Basis) CloneFrom(src *Basis) {
	if b.n != src.n {
		panic(ErrDimensionMismatch)
	}
	copy(b.data, src.data)
}

// RotateRowsRight rotates the rows [lo, hi] (inclusive) right by one: the
// row formerly at hi moves to lo, and every other row in the range shifts
// down by one index. This is the row permutation the L² reducer's deep
// insertion step performs (spec.md §4.3.3) when the Lovász test fails
// several rows back.
func (b *Basis) RotateRowsRight(lo, hi int) {
	if lo < 0 || hi >= b.n || lo > hi {
		panic(ErrDimensionMismatch)
	}
	last := make([]bignum.Integer, b.n)
	copy(last, b.RowView(hi))
	for i := hi; i > lo; i-- {
		copy(b.RowView(i), b.RowView(i-1))
	}
	copy(b.RowView(lo), last)
}
