package reduce

import "github.com/gonum-community/antihash/bignum"

func (st *State) dot(row1, row2 []bignum.Integer) bignum.Decimal {
	return bignum.NewDecimalFromInteger(bignum.DotProduct(row1, row2)).WithPrecision(st.precision)
}

// CFA recomputes rows 0..i of r, mu and s[i] from the current basis
// (spec.md §4.3.1, the Cholesky-style Factor Algorithm). It follows the
// source's literal structure, including its redundant recomputation of
// s[i][0..i] on every pass of the outer loop: by the final pass mu[i][0..i-1]
// have all been set by earlier passes, so only the last recomputation's
// s[i][i] (and hence r[i][i]) is load-bearing, but the intermediate passes
// are not optimized away here (see DESIGN.md).
func (st *State) CFA(i int) {
	bi := st.basis.RowView(i)
	for j := 0; j < i; j++ {
		bj := st.basis.RowView(j)
		rij := st.dot(bi, bj)
		for k := 0; k < j; k++ {
			rij = rij.Sub(st.mu[j][k].Mul(st.r[i][k])).WithPrecision(st.precision)
		}
		st.r[i][j] = rij
		st.mu[i][j] = rij.Quo(st.r[j][j], st.precision)

		st.s[i][0] = st.dot(bi, bi)
		for m := 1; m <= i; m++ {
			st.s[i][m] = st.s[i][m-1].Sub(st.mu[i][m-1].Mul(st.r[i][m-1])).WithPrecision(st.precision)
		}
		st.r[i][i] = st.s[i][i]
	}
}
