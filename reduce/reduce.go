package reduce

import (
	"context"

	"github.com/gonum-community/antihash/bignum"
)

// Outcome reports how Run stopped. The basis itself (reachable via
// (*State).Basis) carries whatever progress was made regardless of which
// branch stopped the loop; the extractor (antihash.extract) re-scans it for
// a valid row independent of Outcome.
type Outcome struct {
	// TimedOut is set when the wall-clock timeout or the context deadline
	// tripped before row N-1 was reached. It says nothing about whether a
	// valid row was already present in the basis when that happened — the
	// extractor decides Ok vs TimeOut by scanning the final basis itself.
	TimedOut bool
}

// Run executes the L² main loop (spec.md §4.3.3) until the basis is fully
// reduced (k reaches N), a row becomes a valid candidate solution, the host
// clock timeout fires, or ctx is done. ctx lets callers express the deadline
// the idiomatic Go way (context.WithTimeout) in addition to the injected
// Clock; both are polled at the same point the source polls its timeout, at
// the head of each outer-loop iteration right after size-reducing row k.
func (st *State) Run(ctx context.Context) Outcome {
	b0 := st.basis.RowView(0)
	st.r[0][0] = bignum.NewDecimalFromInteger(bignum.DotProduct(b0, b0)).WithPrecision(st.precision)

	k := 1
	for k < st.n {
		st.SizeReduce(ctx, k)

		stopped := st.timedOut() || ctx.Err() != nil
		if st.checkRow(k) || stopped {
			return Outcome{TimedOut: stopped}
		}

		kPrime := k
		for k >= 1 && st.deltaPrime.Mul(st.r[k-1][k-1]).Cmp(st.s[kPrime][k-1]) > 0 {
			k--
		}
		if kPrime != k {
			for i := 0; i < k; i++ {
				st.mu[k][i] = st.mu[kPrime][i]
				st.r[k][i] = st.r[kPrime][i]
			}
			st.r[k][k] = st.s[kPrime][k]
			st.basis.RotateRowsRight(k, kPrime)
		}
		k++
	}
	return Outcome{}
}
