package lattice

import "github.com/gonum-community/antihash/bignum"

// Build constructs the (n+k)×(n+k) basis matrix of spec.md §3/§4.1 for a
// target string length n and k (modulus, base) pairs, scaled by lambda.
//
// For 0 ≤ j < n, 0 ≤ i < k:  B[j][i]   = (baseᵢ^j mod moduloᵢ) · lambda
// For 0 ≤ i < k:             B[n+i][i] = moduloᵢ · lambda
// For 0 ≤ j < n:              B[j][k+j] = 1
// All other entries are zero.
//
// Build panics with ErrDimensionMismatch if len(modulo) != len(base); both
// are the caller's responsibility to keep in step (spec.md §7).
func Build(n int, modulo, base []bignum.Integer, lambda bignum.Integer) *Basis {
	k := len(modulo)
	if len(base) != k {
		panic(ErrDimensionMismatch)
	}
	basis := NewBasis(n + k)
	for i := 0; i < k; i++ {
		pow := bignum.Powers(base[i], modulo[i], n)
		for j := 0; j < n; j++ {
			basis.Set(j, i, pow[j].Mul(lambda))
		}
		basis.Set(n+i, i, modulo[i].Mul(lambda))
	}
	one := bignum.One()
	for j := 0; j < n; j++ {
		basis.Set(j, k+j, one)
	}
	return basis
}
