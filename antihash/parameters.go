// Package antihash searches for hash-collision adversarial inputs against
// a family of polynomial rolling hashes h(s) = Σ sᵢ·qⁱ mod p, by building
// an integer lattice (package lattice) that encodes the collision condition
// and reducing it with the L² variant of LLL (package reduce) to extract a
// short vector decoding into two colliding strings.
package antihash

import (
	"errors"
	"fmt"

	"github.com/gonum-community/antihash/bignum"
)

// ErrInvalidParameters is wrapped by the error Validate returns, and AntiHash
// panics with that error, when Parameters violate a documented precondition. Per spec.md §7 this is a
// programming error of the caller, not a reportable Result.
var ErrInvalidParameters = errors.New("antihash: invalid parameters")

// Parameters is the immutable input bundle of spec.md §3. All fields must
// satisfy their constraints before AntiHash is called; Validate checks them
// and AntiHash panics with ErrInvalidParameters if it does not hold.
type Parameters struct {
	// Length is n, the target string length. Must be >= 1.
	Length int

	// Modulo and Base are the k (modulus, base) pairs, ordered the same
	// way. len(Modulo) must equal len(Base) and be >= 1; each modulus
	// must be >= 2; each base must satisfy 0 <= base < modulus.
	Modulo []bignum.Integer
	Base   []bignum.Integer

	// Lambda scales the hash-image columns so the reducer prioritizes
	// zeroing them. Must be >= 1.
	Lambda bignum.Integer

	// Delta and Eta are the nominal Lovász/size-reduction bounds; the
	// reducer shifts them internally (spec.md §4.3). 1/4 < Delta < 1,
	// 1/2 < Eta < sqrt(Delta). Validate checks only the lower bound of Eta;
	// the sqrt(Delta) upper bound is not checked.
	Delta bignum.Decimal
	Eta   bignum.Decimal

	// Precision is the number of significant decimal digits carried by
	// every intermediate Decimal computation. Must be in [1, 100].
	Precision int

	// Sigma is the alphabet size (spec.md §4.4, §9 "Fixed small
	// alphabet"). Must be in [2, 26]; zero means "use the default of 26".
	Sigma int

	// Timeout is the wall-clock budget in seconds. Must be > 0.
	Timeout float64
}

// defaultSigma is the alphabet size used when Parameters.Sigma is left at
// its zero value, matching the source's compiled-in SIGMA = 26.
const defaultSigma = 26

func (p Parameters) sigma() int {
	if p.Sigma == 0 {
		return defaultSigma
	}
	return p.Sigma
}

// Validate reports whether p satisfies every constraint spec.md §3 assigns
// to the caller. AntiHash calls this itself and panics with
// ErrInvalidParameters if it fails; library callers that want an error
// return instead of a panic can call Validate first.
func (p Parameters) Validate() error {
	if p.Length < 1 {
		return fmt.Errorf("%w: length must be >= 1, got %d", ErrInvalidParameters, p.Length)
	}
	if len(p.Modulo) == 0 {
		return fmt.Errorf("%w: at least one (modulo, base) pair is required", ErrInvalidParameters)
	}
	if len(p.Modulo) != len(p.Base) {
		return fmt.Errorf("%w: len(Modulo)=%d != len(Base)=%d", ErrInvalidParameters, len(p.Modulo), len(p.Base))
	}
	two := bignum.NewIntegerFromInt64(2)
	zero := bignum.Zero()
	for i, m := range p.Modulo {
		if m.Cmp(two) < 0 {
			return fmt.Errorf("%w: modulo[%d]=%s must be >= 2", ErrInvalidParameters, i, m)
		}
		b := p.Base[i]
		if b.Cmp(zero) < 0 || b.Cmp(m) >= 0 {
			return fmt.Errorf("%w: base[%d]=%s must satisfy 0 <= base < modulo (%s)", ErrInvalidParameters, i, b, m)
		}
	}
	if p.Lambda.Cmp(bignum.One()) < 0 {
		return fmt.Errorf("%w: lambda=%s must be >= 1", ErrInvalidParameters, p.Lambda)
	}
	four := bignum.NewDecimalFromInt64(4)
	one := bignum.NewDecimalFromInt64(1)
	if p.Delta.Mul(four).Cmp(one) <= 0 || p.Delta.Cmp(one) >= 0 {
		return fmt.Errorf("%w: delta=%s must satisfy 1/4 < delta < 1", ErrInvalidParameters, p.Delta)
	}
	half := bignum.NewDecimalFromInt64(1).Quo(bignum.NewDecimalFromInt64(2), p.precisionOrMin())
	if p.Eta.Cmp(half) <= 0 {
		return fmt.Errorf("%w: eta=%s must be > 1/2", ErrInvalidParameters, p.Eta)
	}
	if p.Precision < 1 || p.Precision > 100 {
		return fmt.Errorf("%w: precision=%d must be in [1, 100]", ErrInvalidParameters, p.Precision)
	}
	if p.Sigma != 0 && (p.Sigma < 2 || p.Sigma > 26) {
		return fmt.Errorf("%w: sigma=%d must be in [2, 26]", ErrInvalidParameters, p.Sigma)
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("%w: timeout=%v must be > 0", ErrInvalidParameters, p.Timeout)
	}
	return nil
}

func (p Parameters) precisionOrMin() int {
	if p.Precision < 1 {
		return 1
	}
	return p.Precision
}
