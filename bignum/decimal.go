package bignum

import (
	"errors"
	"math/big"
	"strings"
)

// ErrPrecisionRange is panicked by WithPrecision when asked for fewer than
// one significant digit.
var ErrPrecisionRange = errors.New("bignum: precision must be >= 1")

// ErrDivideByZero is panicked by Quo when the divisor is zero.
var ErrDivideByZero = errors.New("bignum: division by zero")

// ErrInvalidDecimalLiteral is returned by ParseDecimal for malformed input.
var ErrInvalidDecimalLiteral = errors.New("bignum: invalid decimal literal")

// Decimal is an arbitrary-precision decimal rational, represented as
// mantissa × 10^exp. It supports a with_precision operation that rounds the
// significand to a configured number of significant decimal digits using
// half-away-from-zero rounding, matching the bigdecimal crate the original
// implementation was built on (see DESIGN.md's Open Question resolution).
type Decimal struct {
	mantissa *big.Int
	exp      int
}

// DecimalZero returns the zero value.
func DecimalZero() Decimal { return Decimal{mantissa: new(big.Int), exp: 0} }

// DecimalOne returns the value 1.
func DecimalOne() Decimal { return Decimal{mantissa: big.NewInt(1), exp: 0} }

// NewDecimalFromInt64 converts a machine integer to a Decimal.
func NewDecimalFromInt64(x int64) Decimal { return Decimal{mantissa: big.NewInt(x), exp: 0} }

// NewDecimalFromInteger converts an Integer to a Decimal with exp 0.
func NewDecimalFromInteger(x Integer) Decimal { return Decimal{mantissa: x.BigInt(), exp: 0} }

// ParseDecimal parses a plain decimal literal such as "0.99" or "-12.5".
// Scientific notation is not accepted; none of this module's configuration
// surface (δ, η, λ) needs it.
func ParseDecimal(s string) (Decimal, error) {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return Decimal{}, ErrInvalidDecimalLiteral
	}
	intPart, fracPart := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx+1:]
	}
	digits := intPart + fracPart
	if digits == "" {
		return Decimal{}, ErrInvalidDecimalLiteral
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return Decimal{}, ErrInvalidDecimalLiteral
		}
	}
	m, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Decimal{}, ErrInvalidDecimalLiteral
	}
	if neg {
		m.Neg(m)
	}
	return Decimal{mantissa: m, exp: -len(fracPart)}, nil
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func (d Decimal) m() *big.Int {
	if d.mantissa == nil {
		return new(big.Int)
	}
	return d.mantissa
}

// align rescales a and b to a common exponent, returning their mantissas at
// that exponent.
func align(a, b Decimal) (am, bm *big.Int, exp int) {
	switch {
	case a.exp == b.exp:
		return a.m(), b.m(), a.exp
	case a.exp < b.exp:
		scaled := new(big.Int).Mul(b.m(), pow10(b.exp-a.exp))
		return a.m(), scaled, a.exp
	default:
		scaled := new(big.Int).Mul(a.m(), pow10(a.exp-b.exp))
		return scaled, b.m(), b.exp
	}
}

// Add returns a+b.
func (a Decimal) Add(b Decimal) Decimal {
	am, bm, exp := align(a, b)
	return Decimal{mantissa: new(big.Int).Add(am, bm), exp: exp}
}

// Sub returns a-b.
func (a Decimal) Sub(b Decimal) Decimal {
	am, bm, exp := align(a, b)
	return Decimal{mantissa: new(big.Int).Sub(am, bm), exp: exp}
}

// Mul returns a*b, exact (mantissas multiply, exponents add).
func (a Decimal) Mul(b Decimal) Decimal {
	return Decimal{mantissa: new(big.Int).Mul(a.m(), b.m()), exp: a.exp + b.exp}
}

// Neg returns -a.
func (a Decimal) Neg() Decimal {
	return Decimal{mantissa: new(big.Int).Neg(a.m()), exp: a.exp}
}

// Abs returns |a|.
func (a Decimal) Abs() Decimal {
	return Decimal{mantissa: new(big.Int).Abs(a.m()), exp: a.exp}
}

// Cmp compares a and b, returning -1, 0, or +1.
func (a Decimal) Cmp(b Decimal) int {
	am, bm, _ := align(a, b)
	return am.Cmp(bm)
}

// IsZero reports whether a is the zero value.
func (a Decimal) IsZero() bool {
	return a.m().Sign() == 0
}

func numDigits(absNonZero *big.Int) int {
	return len(absNonZero.Text(10))
}

// roundHalfAwayFromZero divides absNumerator by absDivisor, rounding the
// quotient half away from zero.
func roundHalfAwayFromZero(absNumerator, absDivisor *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(absNumerator, absDivisor, new(big.Int))
	twiceR := new(big.Int).Lsh(r, 1)
	if twiceR.CmpAbs(absDivisor) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// WithPrecision rounds a to p significant decimal digits using
// half-away-from-zero rounding (the bigdecimal crate's with_prec, which
// spec.md §4.2 and §9 require be preserved rather than switched to
// banker's rounding). Every arithmetic step in the L² reducer reapplies
// this truncation; skipping it lets mantissas grow without bound.
func (a Decimal) WithPrecision(p int) Decimal {
	if p < 1 {
		panic(ErrPrecisionRange)
	}
	if a.IsZero() {
		return DecimalZero()
	}
	abs := new(big.Int).Abs(a.m())
	digits := numDigits(abs)
	if digits <= p {
		return Decimal{mantissa: new(big.Int).Set(a.m()), exp: a.exp}
	}
	drop := digits - p
	q := roundHalfAwayFromZero(abs, pow10(drop))
	if a.m().Sign() < 0 {
		q.Neg(q)
	}
	return Decimal{mantissa: q, exp: a.exp + drop}
}

// Quo divides a by b, rounding the quotient to precision significant
// decimal digits. Unlike Add/Sub/Mul, division needs an explicit precision
// argument: decimal division does not terminate in general (1/3 has no
// finite decimal expansion), so some cutoff is unavoidable. Quo applies the
// same WithPrecision(precision) truncation to its result that the rest of
// the reducer uses, for a uniform precision discipline (see DESIGN.md).
func (a Decimal) Quo(b Decimal, precision int) Decimal {
	if b.IsZero() {
		panic(ErrDivideByZero)
	}
	if a.IsZero() {
		return DecimalZero()
	}
	absA := new(big.Int).Abs(a.m())
	absB := new(big.Int).Abs(b.m())
	digitsA := numDigits(absA)
	digitsB := numDigits(absB)
	// Scale the numerator so the integer quotient carries at least
	// precision+1 significant digits (the extra digit absorbs rounding),
	// then let WithPrecision trim it to exactly `precision`.
	shift := precision - digitsA + digitsB + 1
	if shift < 0 {
		shift = 0
	}
	scaledNum := new(big.Int).Mul(absA, pow10(shift))
	q := roundHalfAwayFromZero(scaledNum, absB)
	if a.m().Sign()*b.m().Sign() < 0 {
		q.Neg(q)
	}
	result := Decimal{mantissa: q, exp: a.exp - b.exp - shift}
	return result.WithPrecision(precision)
}

// RoundToInteger extracts the integer nearest a, rounding half away from
// zero (the L² reducer's round_to_integer, used to compute the near-integer
// multiplier in size reduction).
func (a Decimal) RoundToInteger() Integer {
	if a.exp >= 0 {
		return NewIntegerFromBigInt(new(big.Int).Mul(a.m(), pow10(a.exp)))
	}
	divisor := pow10(-a.exp)
	abs := new(big.Int).Abs(a.m())
	q := roundHalfAwayFromZero(abs, divisor)
	if a.m().Sign() < 0 {
		q.Neg(q)
	}
	return NewIntegerFromBigInt(q)
}

// String renders a in plain (non-scientific) decimal notation.
func (a Decimal) String() string {
	if a.exp >= 0 {
		return new(big.Int).Mul(a.m(), pow10(a.exp)).String()
	}
	neg := a.m().Sign() < 0
	digits := new(big.Int).Abs(a.m()).String()
	frac := -a.exp
	if len(digits) <= frac {
		digits = strings.Repeat("0", frac-len(digits)+1) + digits
	}
	s := digits[:len(digits)-frac] + "." + digits[len(digits)-frac:]
	if neg {
		s = "-" + s
	}
	return s
}
