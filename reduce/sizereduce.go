package reduce

import (
	"context"

	"github.com/gonum-community/antihash/bignum"
)

// SizeReduce repeatedly runs CFA on row k and subtracts near-integer
// multiples of earlier rows until |mu[k][j]| <= eta' for all j < k, row k is
// already a valid candidate solution, the timeout fires, or ctx is done
// (spec.md §4.3.2). ctx is checked at the head of this loop, the same point
// spec.md §5 names as the first of the two polling points a stalled
// reduction must be interruptible at. Row 0 has no earlier rows to reduce
// against, so SizeReduce(ctx, 0) returns immediately after one CFA pass.
func (st *State) SizeReduce(ctx context.Context, k int) {
	for {
		st.CFA(k)

		if k == 0 || st.maxAbsMu(k).Cmp(st.etaPrime) <= 0 || st.checkRow(k) || st.timedOut() || ctx.Err() != nil {
			return
		}

		for i := k - 1; i >= 0; i-- {
			x := st.mu[k][i].RoundToInteger()
			xd := bignum.NewDecimalFromInteger(x)
			for j := 0; j < i; j++ {
				mul := xd.Mul(st.mu[i][j]).WithPrecision(st.precision)
				st.mu[k][j] = st.mu[k][j].Sub(mul).WithPrecision(st.precision)
			}
			bk := st.basis.RowView(k)
			bi := st.basis.RowView(i)
			for j := range bk {
				bk[j] = bk[j].Sub(x.Mul(bi[j]))
			}
		}
	}
}

// maxAbsMu returns max over j<k of |mu[k][j]|. Requires k>=1.
func (st *State) maxAbsMu(k int) bignum.Decimal {
	max := st.mu[k][0].Abs()
	for j := 1; j < k; j++ {
		v := st.mu[k][j].Abs()
		if v.Cmp(max) > 0 {
			max = v
		}
	}
	return max
}
