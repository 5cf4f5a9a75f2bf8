package reduce

import (
	"github.com/gonum-community/antihash/bignum"
	"github.com/gonum-community/antihash/lattice"
)

// State is the mutable state of one L² reduction in progress: the basis
// being reduced plus the Gram-Schmidt bookkeeping matrices r, mu, s
// (spec.md §3 ReducerState). It plays the role gonum's factorization types
// (mat.QR, mat.Cholesky) play for BLAS-backed decompositions: built once by
// NewState, mutated in place by Run, then handed off (via Basis) to the
// caller once reduction stops. A State is owned by exactly one reduction;
// there is no cross-goroutine sharing (spec.md §5).
type State struct {
	basis *lattice.Basis

	r, mu, s [][]bignum.Decimal

	precision int
	sigma     int
	k         int // number of hash-image columns
	length    int // n: string length, number of coefficient columns
	n         int // total dimension, n+k

	deltaPrime bignum.Decimal
	etaPrime   bignum.Decimal

	clock     Clock
	startTime float64
	timeout   float64
}

// Params bundles the reduction parameters that are not the basis itself.
type Params struct {
	Length    int // n
	K         int // number of (modulo, base) pairs
	Delta     bignum.Decimal
	Eta       bignum.Decimal
	Precision int
	Sigma     int
	Timeout   float64
	Clock     Clock
}

// NewState builds a ReducerState over basis, computing the internally-used
// shifted bounds δ' = (δ+1)/2 and η' = (2η+1)/4 spec.md §4.3 specifies to
// absorb the L² variant's floating-point slack.
func NewState(basis *lattice.Basis, p Params) *State {
	n, _ := basis.Dims()
	clock := p.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	s := &State{
		basis:     basis,
		r:         newDecimalMatrix(n),
		mu:        newDecimalMatrix(n),
		s:         newDecimalMatrix(n),
		precision: p.Precision,
		sigma:     p.Sigma,
		k:         p.K,
		length:    p.Length,
		n:         n,
		clock:     clock,
		startTime: clock.Now(),
		timeout:   p.Timeout,
	}
	half := bignum.NewDecimalFromInt64(1).Quo(bignum.NewDecimalFromInt64(2), p.Precision)
	one := bignum.NewDecimalFromInt64(1)
	two := bignum.NewDecimalFromInt64(2)
	four := bignum.NewDecimalFromInt64(4)
	s.deltaPrime = p.Delta.Add(one).Mul(half).WithPrecision(p.Precision)
	s.etaPrime = p.Eta.Mul(two).Add(one).Quo(four, p.Precision).WithPrecision(p.Precision)
	return s
}

func newDecimalMatrix(n int) [][]bignum.Decimal {
	m := make([][]bignum.Decimal, n)
	for i := range m {
		row := make([]bignum.Decimal, n)
		for j := range row {
			row[j] = bignum.DecimalZero()
		}
		m[i] = row
	}
	return m
}

// Basis returns the (possibly partially reduced) basis, transferring
// effective ownership to the caller (spec.md §3 "Ownership").
func (s *State) Basis() *lattice.Basis { return s.basis }

// Runtime returns elapsed wall-clock seconds since the state was
// constructed, clamped to zero if the host clock read backwards
// (spec.md §5: "a negative elapsed reading must be treated as zero").
func (s *State) Runtime() float64 {
	elapsed := s.clock.Now() - s.startTime
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (s *State) timedOut() bool {
	return s.Runtime() > s.timeout
}

func (s *State) checkRow(i int) bool {
	return lattice.IsValidRow(s.basis, i, s.k, s.sigma)
}
