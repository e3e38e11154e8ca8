package xnum

import (
	"fmt"
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Rational is an exact fraction extended with signed zero, signed infinity
// and NaN.
// The zero value is the numeric value of +0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// Finite non-zero values are stored as a sign and a positive [big.Rat]
// in lowest terms. Like [Integer], zeros and infinities carry a sign:
// +0 and -0 are equal under [Rational.Equal] and [Rational.Cmp],
// but [Rational.CmpStrict] orders -0 before +0.
type Rational struct {
	kind kind
	neg  bool
	val  *big.Rat // absolute value, set only when kind == kindFinite
}

// newRational takes ownership of r and returns the corresponding rational.
// A zero r is mapped to +0.
func newRational(r *big.Rat) Rational {
	switch r.Sign() {
	case 0:
		return Rational{}
	case -1:
		return Rational{kind: kindFinite, neg: true, val: r.Neg(r)}
	}
	return Rational{kind: kindFinite, val: r}
}

// newRationalSigned takes ownership of abs, which must be non-negative.
// A zero abs keeps the requested sign.
func newRationalSigned(neg bool, abs *big.Rat) Rational {
	if abs.Sign() == 0 {
		return ZeroRational(neg)
	}
	return Rational{kind: kindFinite, neg: neg, val: abs}
}

// NewRational returns a rational equal to num / den.
// See [RationalFromIntegers] for the handling of zero operands.
func NewRational(num, den int64) Rational {
	return RationalFromIntegers(big.NewInt(num), big.NewInt(den))
}

// RationalOf returns a rational equal to any machine integer.
func RationalOf[T constraints.Integer](i T) Rational {
	return newRational(new(big.Rat).SetInt(bigOf(i)))
}

// NewRationalFromFloat64 converts a float to a rational exactly.
// NaN, infinities and signed zeros map onto the corresponding special values.
func NewRationalFromFloat64(f float64) Rational {
	switch {
	case math.IsNaN(f):
		return NaNRational()
	case math.IsInf(f, 0):
		return InfRational(f < 0)
	case f == 0:
		return ZeroRational(math.Signbit(f))
	}
	return newRational(new(big.Rat).SetFloat64(f))
}

// NewRationalFromBig returns a rational equal to r.
func NewRationalFromBig(r *big.Rat) Rational {
	return newRational(new(big.Rat).Set(r))
}

// RationalFromSignAndNaturals returns a rational with the given sign and
// magnitude num / den.
// The quotient 0 / 0 is NaN, 0 / den is a signed zero and num / 0 is a
// signed infinity.
// RationalFromSignAndNaturals returns [ErrNegative] if num or den is negative.
func RationalFromSignAndNaturals(neg bool, num, den *big.Int) (Rational, error) {
	if num.Sign() < 0 || den.Sign() < 0 {
		return Rational{}, fmt.Errorf("converting %v/%v: %w", num, den, ErrNegative)
	}
	switch n, d := num.Sign(), den.Sign(); {
	case n == 0 && d == 0:
		return NaNRational(), nil
	case n == 0:
		return ZeroRational(neg), nil
	case d == 0:
		return InfRational(neg), nil
	}
	return newRationalSigned(neg, new(big.Rat).SetFrac(num, den)), nil
}

// RationalFromIntegers returns a rational equal to num / den.
// The quotient 0 / 0 is NaN, 0 / den is a zero carrying the sign of den,
// and num / 0 is an infinity carrying the sign of num.
func RationalFromIntegers(num, den *big.Int) Rational {
	switch n, d := num.Sign(), den.Sign(); {
	case n == 0 && d == 0:
		return NaNRational()
	case n == 0:
		return ZeroRational(d < 0)
	case d == 0:
		return InfRational(n < 0)
	}
	return newRational(new(big.Rat).SetFrac(num, den))
}

// RationalFromExtendedIntegers returns the (possibly infinite) quotient
// num / den computed with [Rational.Quo].
func RationalFromExtendedIntegers(num, den Integer) Rational {
	return num.Rational().Quo(den.Rational())
}

// ZeroRational returns a signed zero.
func ZeroRational(neg bool) Rational {
	return Rational{neg: neg}
}

// InfRational returns a signed infinity.
func InfRational(neg bool) Rational {
	return Rational{kind: kindInf, neg: neg}
}

// NaNRational returns a rational that is not a number.
func NaNRational() Rational {
	return Rational{kind: kindNaN}
}

// ParseRational converts a string to a rational.
// The accepted syntax is that of [ParseFraction]: special values, fractions
// such as "-3/4", decimals such as "1.25e-3" and repeating decimals such as
// "0.1[6]".
func ParseRational(s string) (Rational, error) {
	f, err := ParseFraction(s)
	if err != nil {
		return Rational{}, err
	}
	return f.Rational(), nil
}

// String implements the [fmt.Stringer] interface and returns x in the
// "num/den" form, omitting the denominator when it is 1.
// Zeros and infinities keep their sign: "-0", "-inf".
func (x Rational) String() string {
	switch x.kind {
	case kindNaN:
		return "nan"
	case kindInf:
		if x.neg {
			return "-inf"
		}
		return "inf"
	case kindZero:
		if x.neg {
			return "-0"
		}
		return "0"
	}
	if x.neg {
		return "-" + x.val.RatString()
	}
	return x.val.RatString()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [ParseRational].
func (x *Rational) UnmarshalText(text []byte) error {
	var err error
	*x, err = ParseRational(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Rational.String].
func (x Rational) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Format implements [fmt.Formatter] interface.
// The following verbs are available:
//
//	%s, %v: -3/4
//	%q:    "-3/4"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
// Zero padding applies to finite values only.
func (x Rational) Format(state fmt.State, verb rune) {
	var body string
	switch x.kind {
	case kindNaN:
		body = "nan"
	default:
		body = x.Abs().String()
	}

	// Arithmetic sign
	var sign string
	switch {
	case x.kind == kindNaN:
	case x.neg:
		sign = "-"
	case state.Flag('+'):
		sign = "+"
	case state.Flag(' '):
		sign = " "
	}

	// Quotes
	var quote string
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Padding
	width := len(quote) + len(sign) + len(body) + len(quote)
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && x.IsFinite():
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	// Writing buffer
	buf := make([]byte, 0, width+lspaces+tspaces+lzeroes)
	buf = appendRepeat(buf, ' ', lspaces)
	buf = append(buf, quote...)
	buf = append(buf, sign...)
	buf = appendRepeat(buf, '0', lzeroes)
	buf = append(buf, body...)
	buf = append(buf, quote...)
	buf = appendRepeat(buf, ' ', tspaces)

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(xnum.Rational="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

func appendRepeat(buf []byte, b byte, n int) []byte {
	for i := 0; i < n; i++ {
		buf = append(buf, b)
	}
	return buf
}

// IsNaN returns true if x is not a number.
func (x Rational) IsNaN() bool {
	return x.kind == kindNaN
}

// IsInf returns true if x is infinite.
func (x Rational) IsInf() bool {
	return x.kind == kindInf
}

// IsZero returns true if x is +0 or -0.
func (x Rational) IsZero() bool {
	return x.kind == kindZero
}

// IsFinite returns true if x is neither infinite nor NaN.
func (x Rational) IsFinite() bool {
	return x.kind == kindZero || x.kind == kindFinite
}

// IsInt returns true if x is a finite value with denominator 1.
func (x Rational) IsInt() bool {
	switch x.kind {
	case kindZero:
		return true
	case kindFinite:
		return x.val.IsInt()
	}
	return false
}

// IsNeg returns true if x carries a negative sign, including -0 and -inf.
func (x Rational) IsNeg() bool {
	return x.kind != kindNaN && x.neg
}

// IsPos returns true if x carries a positive sign, including +0 and +inf.
func (x Rational) IsPos() bool {
	return x.kind != kindNaN && !x.neg
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x is ±0 or NaN
//	+1 if x > 0
func (x Rational) Sign() int {
	switch x.kind {
	case kindZero, kindNaN:
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// SignStrict is similar to [Rational.Sign], but returns -1 for -0 and +1 for +0.
func (x Rational) SignStrict() int {
	switch {
	case x.kind == kindNaN:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// Num returns the absolute value of the numerator of x.
// NaN is treated as 0/0, zeros as 0/1 and infinities as 1/0.
func (x Rational) Num() *big.Int {
	switch x.kind {
	case kindInf:
		return big.NewInt(1)
	case kindFinite:
		return new(big.Int).Set(x.val.Num())
	}
	return new(big.Int)
}

// Denom returns the denominator of x, which is never negative.
// NaN is treated as 0/0, zeros as 0/1 and infinities as 1/0.
func (x Rational) Denom() *big.Int {
	switch x.kind {
	case kindZero:
		return big.NewInt(1)
	case kindFinite:
		return new(big.Int).Set(x.val.Denom())
	}
	return new(big.Int)
}

// NumDenom returns both [Rational.Num] and [Rational.Denom].
func (x Rational) NumDenom() (num, den *big.Int) {
	return x.Num(), x.Denom()
}

// SignedNum returns the numerator of x carrying the sign of x.
// The numerator of -inf is -1.
func (x Rational) SignedNum() *big.Int {
	z := x.Num()
	if x.neg {
		z.Neg(z)
	}
	return z
}

// SignedDenom is similar to [Rational.Denom], but the denominator of a
// zero carries its sign, so -0 is treated as 0/-1.
func (x Rational) SignedDenom() *big.Int {
	z := x.Denom()
	if x.kind == kindZero && x.neg {
		z.Neg(z)
	}
	return z
}

// Big returns x as *big.Rat.
// Big returns [ErrNotFinite] if x is infinite or NaN.
func (x Rational) Big() (*big.Rat, error) {
	switch x.kind {
	case kindZero:
		return new(big.Rat), nil
	case kindFinite:
		return x.signedRat(), nil
	}
	return nil, fmt.Errorf("converting %v: %w", x, ErrNotFinite)
}

// signedRat returns a fresh copy of the signed finite value of x.
func (x Rational) signedRat() *big.Rat {
	if x.kind != kindFinite {
		return new(big.Rat)
	}
	z := new(big.Rat).Set(x.val)
	if x.neg {
		z.Neg(z)
	}
	return z
}

// Integer returns x as an integer.
// Integer returns [ErrNotFinite] if x is infinite or NaN and
// [ErrNotInteger] if x has a fractional part.
func (x Rational) Integer() (Integer, error) {
	switch x.kind {
	case kindNaN, kindInf:
		return Integer{}, fmt.Errorf("converting %v: %w", x, ErrNotFinite)
	case kindZero:
		return ZeroInteger(x.neg), nil
	}
	if !x.val.IsInt() {
		return Integer{}, fmt.Errorf("converting %v: %w", x, ErrNotInteger)
	}
	return newIntegerSigned(x.neg, new(big.Int).Set(x.val.Num())), nil
}

// Float64 returns the nearest float64 value for x and a boolean
// indicating whether the conversion is exact.
// Special values map onto the corresponding IEEE 754 values.
func (x Rational) Float64() (f float64, exact bool) {
	switch x.kind {
	case kindNaN:
		return math.NaN(), true
	case kindInf:
		if x.neg {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	case kindZero:
		if x.neg {
			return math.Copysign(0, -1), true
		}
		return 0, true
	}
	f, exact = x.val.Float64()
	if x.neg {
		f = -f
	}
	return f, exact
}

// Neg returns x with its sign flipped. The negation of NaN is NaN.
func (x Rational) Neg() Rational {
	if x.kind == kindNaN {
		return x
	}
	x.neg = !x.neg
	return x
}

// Abs returns the absolute value of x. The absolute value of -0 is +0.
func (x Rational) Abs() Rational {
	if x.kind == kindNaN {
		return x
	}
	x.neg = false
	return x
}

// Inv returns the reciprocal 1 / x.
// Zeros and infinities swap, keeping their sign. The reciprocal of NaN is NaN.
func (x Rational) Inv() Rational {
	switch x.kind {
	case kindNaN:
		return x
	case kindZero:
		return InfRational(x.neg)
	case kindInf:
		return ZeroRational(x.neg)
	}
	return newRationalSigned(x.neg, new(big.Rat).Inv(x.val))
}

// Add returns the (possibly infinite) sum x + y.
// The sum of opposite infinities is NaN.
// The sum of two zeros is -0 only if both are -0.
func (x Rational) Add(y Rational) Rational {
	switch {
	case x.kind == kindNaN || y.kind == kindNaN:
		return NaNRational()
	case x.kind == kindInf && y.kind == kindInf:
		if x.neg != y.neg {
			return NaNRational()
		}
		return x
	case x.kind == kindInf:
		return x
	case y.kind == kindInf:
		return y
	case x.kind == kindZero && y.kind == kindZero:
		return ZeroRational(x.neg && y.neg)
	case x.kind == kindZero:
		return y
	case y.kind == kindZero:
		return x
	}
	// Exact cancellation gives +0.
	return newRational(new(big.Rat).Add(x.signedRat(), y.signedRat()))
}

// Sub returns the (possibly infinite) difference x - y.
func (x Rational) Sub(y Rational) Rational {
	return x.Add(y.Neg())
}

// Mul returns the (possibly infinite) product x * y.
// The product of a zero and an infinity is NaN.
// The sign of the result is the exclusive or of the operand signs.
func (x Rational) Mul(y Rational) Rational {
	neg := x.neg != y.neg
	switch {
	case x.kind == kindNaN || y.kind == kindNaN:
		return NaNRational()
	case x.kind == kindZero && y.kind == kindInf,
		x.kind == kindInf && y.kind == kindZero:
		return NaNRational()
	case x.kind == kindZero || y.kind == kindZero:
		return ZeroRational(neg)
	case x.kind == kindInf || y.kind == kindInf:
		return InfRational(neg)
	}
	return newRationalSigned(neg, new(big.Rat).Mul(x.val, y.val))
}

// Quo returns the (possibly infinite) quotient x / y.
// The quotients 0 / 0 and ∞ / ∞ are NaN.
// A finite value divided by an infinity is a signed zero, and a non-zero
// value divided by a zero is a signed infinity.
func (x Rational) Quo(y Rational) Rational {
	neg := x.neg != y.neg
	switch {
	case x.kind == kindNaN || y.kind == kindNaN:
		return NaNRational()
	case x.kind == kindZero && y.kind == kindZero,
		x.kind == kindInf && y.kind == kindInf:
		return NaNRational()
	case x.kind == kindInf, y.kind == kindZero:
		return InfRational(neg)
	case x.kind == kindZero, y.kind == kindInf:
		return ZeroRational(neg)
	}
	return newRationalSigned(neg, new(big.Rat).Quo(x.val, y.val))
}

// PowUint returns x raised to the power of exp.
// Zeros and infinities keep their sign only for odd exponents.
// Any value except NaN raised to the power of 0 is 1.
func (x Rational) PowUint(exp uint64) Rational {
	neg := x.neg && exp&1 == 1
	switch {
	case x.kind == kindNaN:
		return x
	case exp == 0:
		return RationalOf(1)
	case x.kind == kindZero:
		return ZeroRational(neg)
	case x.kind == kindInf:
		return InfRational(neg)
	}
	e := new(big.Int).SetUint64(exp)
	num := new(big.Int).Exp(x.val.Num(), e, nil)
	den := new(big.Int).Exp(x.val.Denom(), e, nil)
	return newRationalSigned(neg, new(big.Rat).SetFrac(num, den))
}

// Pow returns x raised to the power of exp.
// A negative exponent raises the reciprocal of x, so 0^-1 is an infinity.
// See [Rational.PowUint] for the remaining rules.
func (x Rational) Pow(exp int64) Rational {
	if exp >= 0 {
		return x.PowUint(uint64(exp))
	}
	return x.Inv().PowUint(uint64(-(exp + 1)) + 1)
}

// Cmp compares x and y and returns:
//
//	-1, true  if x < y
//	 0, true  if x == y
//	+1, true  if x > y
//	 0, false if x or y is NaN
//
// Cmp treats +0 and -0 as equal.
func (x Rational) Cmp(y Rational) (int, bool) {
	if x.kind == kindNaN || y.kind == kindNaN {
		return 0, false
	}
	return cmpExtended(x.kind, x.neg, y.kind, y.neg, func() int {
		switch {
		case x.neg != y.neg:
			return cmpBool(y.neg, x.neg)
		case x.neg:
			return y.val.Cmp(x.val)
		}
		return x.val.Cmp(y.val)
	}), true
}

// CmpStrict is similar to [Rational.Cmp], but orders -0 before +0.
func (x Rational) CmpStrict(y Rational) (int, bool) {
	switch {
	case x.kind == kindNaN || y.kind == kindNaN:
		return 0, false
	case x.kind == kindInf && y.kind == kindInf && x.neg == y.neg:
		return 0, true
	case x.kind == kindInf && x.neg, y.kind == kindInf && !y.neg:
		return -1, true
	case x.kind == kindInf, y.kind == kindInf:
		return 1, true
	case x.kind == kindZero && y.kind == kindZero:
		return cmpBool(y.neg, x.neg), true
	case x.kind == kindZero:
		return -y.Sign(), true
	case y.kind == kindZero:
		return x.Sign(), true
	}
	return x.signedRat().Cmp(y.signedRat()), true
}

// Equal returns true if x and y represent the same value.
// NaN is not equal to anything, including itself, and +0 equals -0.
func (x Rational) Equal(y Rational) bool {
	switch {
	case x.kind == kindNaN || x.kind != y.kind:
		return false
	case x.kind == kindZero:
		return true
	case x.kind == kindInf:
		return x.neg == y.neg
	}
	return x.neg == y.neg && x.val.Cmp(y.val) == 0
}

// SumRationals returns the exact sum of xs computed by pairwise accumulation.
// A NaN anywhere in xs makes the sum NaN.
func SumRationals(xs ...Rational) Rational {
	return pairwise(xs, Rational{}, NaNRational(), Rational.Add)
}

// ProductRationals returns the exact product of xs computed by pairwise
// accumulation. A NaN anywhere in xs makes the product NaN.
func ProductRationals(xs ...Rational) Rational {
	return pairwise(xs, RationalOf(1), NaNRational(), Rational.Mul)
}
