package antihash

import (
	"strings"

	"github.com/gonum-community/antihash/bignum"
	"github.com/gonum-community/antihash/lattice"
)

// extract implements the solution extractor of spec.md §4.5 over a basis
// the reducer has finished with (whether it stopped by completing,
// discovering a valid row, or timing out).
func extract(basis *lattice.Basis, p Parameters, elapsed float64, timedOut bool) Result {
	k := len(p.Modulo)
	n := p.Length
	sigma := bignum.NewIntegerFromInt64(int64(p.sigma()))

	rows, _ := basis.Dims()
	bestRow := -1
	var bestMax bignum.Integer
	for i := 0; i < rows; i++ {
		if !lattice.HashImageZero(basis, i, k) {
			continue
		}
		max := lattice.RowMax(basis, i, k)
		// Empty-difference guard (spec.md §8 scenario 6): a row whose
		// coefficient columns are all zero decodes to a == b, not a
		// collision, and is never a legitimate candidate or diagnostic.
		if max.IsZero() {
			continue
		}
		if bestRow == -1 || max.Cmp(bestMax) < 0 {
			bestRow, bestMax = i, max
		}
	}

	if bestRow >= 0 && bestMax.Cmp(sigma) < 0 {
		a, b := decodeRow(basis, bestRow, k, n)
		if verify(a, b, p.Modulo, p.Base) {
			return Result{Status: StatusOK, Elapsed: elapsed, A: a, B: b}
		}
		return Result{Status: StatusUnknown}
	}

	var best string
	if bestRow >= 0 {
		best = diffString(basis, bestRow, k, n)
	}
	if timedOut {
		return Result{Status: StatusTimeout, Best: best}
	}
	return Result{Status: StatusNotFound, Elapsed: elapsed, Best: best}
}

// decodeRow converts row's n coefficient columns into the pair of strings
// they encode (spec.md §4.5 step 2): a non-negative difference d at
// position j means a[j]='a' and b[j]='a'+d; a negative difference means the
// roles invert.
func decodeRow(basis *lattice.Basis, row, k, n int) (a, b string) {
	abytes := make([]byte, n)
	bbytes := make([]byte, n)
	for j := 0; j < n; j++ {
		d, ok := basis.At(row, k+j).Int64()
		if !ok {
			// A validated row's entries are bounded by sigma <= 26 and
			// always fit in a machine int64; this only trips on a basis
			// that was never range-checked by the caller.
			panic("antihash: row coordinate does not fit in int64")
		}
		if d >= 0 {
			abytes[j] = 'a'
			bbytes[j] = byte(int('a') + int(d))
		} else {
			abytes[j] = byte(int('a') - int(d))
			bbytes[j] = 'a'
		}
	}
	return string(abytes), string(bbytes)
}

// diffString renders row's raw coefficient columns as signed integers, the
// "coefficient portion of the row" spec.md §9 describes Best as — a
// diagnostic near-miss, not a decodable string pair.
func diffString(basis *lattice.Basis, row, k, n int) string {
	parts := make([]string, n)
	for j := 0; j < n; j++ {
		parts[j] = basis.At(row, k+j).String()
	}
	return strings.Join(parts, ",")
}

// verify recomputes h(a) and h(b) under every (modulo, base) pair and
// reports whether they agree, per spec.md §4.5 step 3. Two fixes are
// applied relative to the literal source's check(): the comparison loop
// runs the full configured length (the source's loop bound of 0 is the
// documented Open Question bug in spec.md §9), and hash agreement is
// tested as a congruence mod p rather than as exact big-integer equality
// (the source's ha != hb compares un-reduced accumulators, which is only
// coincidentally correct when the accumulator itself never exceeds p).
func verify(a, b string, modulo, base []bignum.Integer) bool {
	if a == b {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for i := range modulo {
		if rollingHash(a, modulo[i], base[i]).Cmp(rollingHash(b, modulo[i], base[i])) != 0 {
			return false
		}
	}
	return true
}

func rollingHash(s string, modulo, base bignum.Integer) bignum.Integer {
	pow := bignum.Powers(base, modulo, len(s))
	sum := bignum.Zero()
	for i := 0; i < len(s); i++ {
		coeff := bignum.NewIntegerFromInt64(int64(s[i] - 'a'))
		sum = sum.Add(coeff.Mul(pow[i]))
	}
	return sum.Mod(modulo)
}
