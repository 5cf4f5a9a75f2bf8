// Package bignum provides arbitrary-precision signed integers and
// fixed-precision decimal rationals used by the lattice construction and
// reduction engine. Integer wraps math/big.Int with the mathematical
// (Euclidean, non-negative) modulo convention the lattice builder and
// verifier require; Decimal provides the significant-digit rounding
// discipline the L² reducer depends on.
package bignum

import (
	"errors"
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// ErrDimensionMismatch is panicked by operations over vectors of Integer
// whose lengths disagree, such as DotProduct.
var ErrDimensionMismatch = errors.New("bignum: dimension mismatch")

// bigfftThreshold is the operand bit length above which Mul routes through
// bigfft's FFT-based multiplication instead of math/big's native Mul. Below
// the threshold bigfft carries more overhead than it saves.
const bigfftThreshold = 1 << 12

// Integer is an arbitrary-precision signed integer.
type Integer struct {
	v *big.Int
}

// Zero returns the additive identity.
func Zero() Integer { return Integer{v: new(big.Int)} }

// One returns the multiplicative identity.
func One() Integer { return Integer{v: big.NewInt(1)} }

// NewIntegerFromInt64 converts a machine integer to an Integer.
func NewIntegerFromInt64(x int64) Integer { return Integer{v: big.NewInt(x)} }

// NewIntegerFromBigInt copies x into a new Integer. The caller retains
// ownership of x.
func NewIntegerFromBigInt(x *big.Int) Integer { return Integer{v: new(big.Int).Set(x)} }

// BigInt returns a copy of the underlying math/big.Int value.
func (a Integer) BigInt() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.v)
}

func (a Integer) bi() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

func mulBigInt(x, y *big.Int) *big.Int {
	if x.BitLen() > bigfftThreshold && y.BitLen() > bigfftThreshold {
		return bigfft.Mul(x, y)
	}
	return new(big.Int).Mul(x, y)
}

// Add returns a+b.
func (a Integer) Add(b Integer) Integer {
	return Integer{v: new(big.Int).Add(a.bi(), b.bi())}
}

// Sub returns a-b.
func (a Integer) Sub(b Integer) Integer {
	return Integer{v: new(big.Int).Sub(a.bi(), b.bi())}
}

// Mul returns a*b, routing through an FFT-based multiplication for
// operands large enough that it pays for itself.
func (a Integer) Mul(b Integer) Integer {
	return Integer{v: mulBigInt(a.bi(), b.bi())}
}

// Neg returns -a.
func (a Integer) Neg() Integer {
	return Integer{v: new(big.Int).Neg(a.bi())}
}

// Abs returns |a|.
func (a Integer) Abs() Integer {
	return Integer{v: new(big.Int).Abs(a.bi())}
}

// Mod returns the mathematical (Euclidean) modulus of a by m: the result is
// always non-negative for m > 0, matching spec.md §4.2's requirement that
// modulo be "mathematical, non-negative result when divisor positive".
func (a Integer) Mod(m Integer) Integer {
	return Integer{v: new(big.Int).Mod(a.bi(), m.bi())}
}

// Cmp compares a and b, returning -1, 0, or +1.
func (a Integer) Cmp(b Integer) int {
	return a.bi().Cmp(b.bi())
}

// Sign returns -1, 0, or +1 according to the sign of a.
func (a Integer) Sign() int {
	return a.bi().Sign()
}

// IsZero reports whether a is the zero value.
func (a Integer) IsZero() bool {
	return a.bi().Sign() == 0
}

// String returns the base-10 representation of a.
func (a Integer) String() string {
	return a.bi().String()
}

// Int64 converts a to a machine int64, reporting ok=false if a does not fit.
func (a Integer) Int64() (value int64, ok bool) {
	if !a.bi().IsInt64() {
		return 0, false
	}
	return a.bi().Int64(), true
}

// DotProduct computes Σᵢ a[i]·b[i]. It panics with ErrDimensionMismatch if
// a and b have different lengths.
func DotProduct(a, b []Integer) Integer {
	if len(a) != len(b) {
		panic(ErrDimensionMismatch)
	}
	sum := Zero()
	for i := range a {
		sum = sum.Add(a[i].Mul(b[i]))
	}
	return sum
}

// Powers computes [q⁰ mod p, q¹ mod p, …, q^(n-1) mod p], matching spec.md
// P5: entry 0 is 1 mod p (so 0 when p = 1), and each later entry is the
// previous one times base, reduced mod p.
func Powers(base, modulo Integer, n int) []Integer {
	result := make([]Integer, n)
	if n == 0 {
		return result
	}
	result[0] = One().Mod(modulo)
	for j := 1; j < n; j++ {
		result[j] = result[j-1].Mul(base).Mod(modulo)
	}
	return result
}
