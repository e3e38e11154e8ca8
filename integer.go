package xnum

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/exp/constraints"
)

// Integer is an arbitrary-precision signed integer extended with signed
// zero, signed infinity and NaN.
// The zero value is the numeric value of +0.
//
// The sign of a zero or an infinity is significant for [Integer.CmpStrict],
// [Integer.SignStrict] and formatting, but +0 and -0 compare as equal.
type Integer struct {
	kind kind
	neg  bool
	val  *big.Int // absolute value, set only when kind == kindFinite
}

// newInteger takes ownership of x and returns the corresponding integer.
// A zero x is mapped to +0.
func newInteger(x *big.Int) Integer {
	switch x.Sign() {
	case 0:
		return Integer{}
	case -1:
		return Integer{kind: kindFinite, neg: true, val: x.Neg(x)}
	}
	return Integer{kind: kindFinite, val: x}
}

// newIntegerSigned takes ownership of abs, which must be non-negative.
// A zero abs keeps the requested sign.
func newIntegerSigned(neg bool, abs *big.Int) Integer {
	if abs.Sign() == 0 {
		return ZeroInteger(neg)
	}
	return Integer{kind: kindFinite, neg: neg, val: abs}
}

// NewInteger returns an integer equal to i.
func NewInteger(i int64) Integer {
	return newInteger(big.NewInt(i))
}

// IntegerOf returns an integer equal to any machine integer.
func IntegerOf[T constraints.Integer](i T) Integer {
	return newInteger(bigOf(i))
}

// NewIntegerFromBig returns an integer equal to x.
func NewIntegerFromBig(x *big.Int) Integer {
	return newInteger(new(big.Int).Set(x))
}

// ZeroInteger returns a signed zero.
func ZeroInteger(neg bool) Integer {
	return Integer{neg: neg}
}

// InfInteger returns a signed infinity.
func InfInteger(neg bool) Integer {
	return Integer{kind: kindInf, neg: neg}
}

// NaNInteger returns an integer that is not a number.
func NaNInteger() Integer {
	return Integer{kind: kindNaN}
}

// ParseInteger converts a string to an integer.
// Recognized special values are "inf", "+inf", "-inf", "nan", "+nan" and
// "-nan", matched case-insensitively.
// Otherwise an optional sign is followed by decimal digits or by a
// "0x"-prefixed hexadecimal literal.
// A negative zero such as "-0" keeps its sign.
func ParseInteger(s string) (Integer, error) {
	if x, ok := parseIntegerSpecial(s); ok {
		return x, nil
	}
	neg, rest := cutSign(s)
	base := 10
	if strings.HasPrefix(rest, "0x") || strings.HasPrefix(rest, "0X") {
		base, rest = 16, rest[2:]
	}
	n, err := parseDigits(rest, base)
	if err != nil {
		return Integer{}, fmt.Errorf("parsing integer %q: %w", s, err)
	}
	return newIntegerSigned(neg, n), nil
}

// ParseIntegerBase is similar to [ParseInteger], but reads the digits in
// the given base, which must be between 2 and 62 inclusive.
func ParseIntegerBase(base int, s string) (Integer, error) {
	if x, ok := parseIntegerSpecial(s); ok {
		return x, nil
	}
	neg, rest := cutSign(s)
	n, err := parseDigits(rest, base)
	if err != nil {
		return Integer{}, fmt.Errorf("parsing integer %q: %w", s, err)
	}
	return newIntegerSigned(neg, n), nil
}

func parseIntegerSpecial(s string) (Integer, bool) {
	neg, rest := cutSign(s)
	switch {
	case strings.EqualFold(rest, "inf"):
		return InfInteger(neg), true
	case strings.EqualFold(rest, "nan"):
		return NaNInteger(), true
	}
	return Integer{}, false
}

// cutSign strips a single leading '+', '-' or '−' (U+2212) from s.
func cutSign(s string) (neg bool, rest string) {
	if s == "" {
		return false, s
	}
	if rest, ok := strings.CutPrefix(s, "−"); ok {
		return true, rest
	}
	switch s[0] {
	case '-':
		return true, s[1:]
	case '+':
		return false, s[1:]
	}
	return false, s
}

// String implements the [fmt.Stringer] interface and returns the decimal
// representation of x.
// Zeros and infinities keep their sign: "-0", "-inf".
func (x Integer) String() string {
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
		return "-" + x.val.String()
	}
	return x.val.String()
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Finite non-zero values are serialized as signed "0x"-prefixed
// hexadecimal literals.
func (x Integer) MarshalText() ([]byte, error) {
	if x.kind != kindFinite {
		return []byte(x.String()), nil
	}
	if x.neg {
		return []byte(fmt.Sprintf("-%#x", x.val)), nil
	}
	return []byte(fmt.Sprintf("%#x", x.val)), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// It accepts only the serialized form produced by [Integer.MarshalText].
func (x *Integer) UnmarshalText(text []byte) error {
	s := string(text)
	switch s {
	case "nan":
		*x = NaNInteger()
		return nil
	case "inf", "-inf":
		*x = InfInteger(s[0] == '-')
		return nil
	case "0", "-0":
		*x = ZeroInteger(s[0] == '-')
		return nil
	}
	neg, rest := false, s
	if strings.HasPrefix(rest, "-") {
		neg, rest = true, rest[1:]
	}
	if !strings.HasPrefix(rest, "0x") {
		return fmt.Errorf("serialized integer %q does not start with \"0x\": %w", s, ErrInvalidFormat)
	}
	n, err := parseDigits(rest[2:], 16)
	if err != nil {
		return fmt.Errorf("serialized integer %q: %w", s, err)
	}
	*x = newIntegerSigned(neg, n)
	return nil
}

// IsNaN returns true if x is not a number.
func (x Integer) IsNaN() bool {
	return x.kind == kindNaN
}

// IsInf returns true if x is infinite.
func (x Integer) IsInf() bool {
	return x.kind == kindInf
}

// IsZero returns true if x is +0 or -0.
func (x Integer) IsZero() bool {
	return x.kind == kindZero
}

// IsFinite returns true if x is neither infinite nor NaN.
func (x Integer) IsFinite() bool {
	return x.kind == kindZero || x.kind == kindFinite
}

// IsNeg returns true if x carries a negative sign, including -0 and -inf.
func (x Integer) IsNeg() bool {
	return x.kind != kindNaN && x.neg
}

// IsPos returns true if x carries a positive sign, including +0 and +inf.
func (x Integer) IsPos() bool {
	return x.kind != kindNaN && !x.neg
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x is ±0 or NaN
//	+1 if x > 0
func (x Integer) Sign() int {
	switch x.kind {
	case kindZero, kindNaN:
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// SignStrict is similar to [Integer.Sign], but distinguishes zeros:
// it returns -1 for -0 and +1 for +0.
func (x Integer) SignStrict() int {
	switch {
	case x.kind == kindNaN:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// Big returns x as *big.Int.
// Big returns [ErrNotFinite] if x is infinite or NaN.
func (x Integer) Big() (*big.Int, error) {
	switch x.kind {
	case kindZero:
		return new(big.Int), nil
	case kindFinite:
		z := new(big.Int).Set(x.val)
		if x.neg {
			z.Neg(z)
		}
		return z, nil
	}
	return nil, fmt.Errorf("converting %v: %w", x, ErrNotFinite)
}

// signedBig returns the signed finite value of x without copying when
// possible. The result must not be modified.
func (x Integer) signedBig() *big.Int {
	if x.kind != kindFinite {
		return new(big.Int)
	}
	if x.neg {
		return new(big.Int).Neg(x.val)
	}
	return x.val
}

// UnsignedAbs returns the magnitude of x as a natural.
// The magnitude of NaN is NaN.
func (x Integer) UnsignedAbs() Natural {
	switch x.kind {
	case kindNaN:
		return NaNNatural()
	case kindInf:
		return InfNatural()
	case kindZero:
		return Natural{}
	}
	return Natural{kind: kindFinite, abs: x.val}
}

// Natural returns x as a natural.
// Natural returns [ErrNegative] if x is strictly negative.
// A negative zero converts to 0.
func (x Integer) Natural() (Natural, error) {
	if x.Sign() < 0 {
		return Natural{}, fmt.Errorf("converting %v: %w", x, ErrNegative)
	}
	return x.UnsignedAbs(), nil
}

// Rational returns x as a rational with denominator 1.
func (x Integer) Rational() Rational {
	switch x.kind {
	case kindNaN:
		return NaNRational()
	case kindInf:
		return InfRational(x.neg)
	case kindZero:
		return ZeroRational(x.neg)
	}
	return Rational{kind: kindFinite, neg: x.neg, val: new(big.Rat).SetInt(x.val)}
}

// Neg returns x with its sign flipped. The negation of NaN is NaN.
func (x Integer) Neg() Integer {
	if x.kind == kindNaN {
		return x
	}
	x.neg = !x.neg
	return x
}

// Abs returns the absolute value of x. The absolute value of -0 is +0.
func (x Integer) Abs() Integer {
	if x.kind == kindNaN {
		return x
	}
	x.neg = false
	return x
}

// Add returns the (possibly infinite) sum x + y.
// The sum of opposite infinities is NaN.
// The sum of two zeros is -0 only if both are -0.
func (x Integer) Add(y Integer) Integer {
	switch {
	case x.kind == kindNaN || y.kind == kindNaN:
		return NaNInteger()
	case x.kind == kindInf && y.kind == kindInf:
		if x.neg != y.neg {
			return NaNInteger()
		}
		return x
	case x.kind == kindInf:
		return x
	case y.kind == kindInf:
		return y
	case x.kind == kindZero && y.kind == kindZero:
		return ZeroInteger(x.neg && y.neg)
	case x.kind == kindZero:
		return y
	case y.kind == kindZero:
		return x
	}
	return newInteger(new(big.Int).Add(x.signedBig(), y.signedBig()))
}

// Sub returns the (possibly infinite) difference x - y.
func (x Integer) Sub(y Integer) Integer {
	return x.Add(y.Neg())
}

// Mul returns the (possibly infinite) product x * y.
// The product of a zero and an infinity is NaN.
// The sign of the result is the exclusive or of the operand signs.
func (x Integer) Mul(y Integer) Integer {
	neg := x.neg != y.neg
	switch {
	case x.kind == kindNaN || y.kind == kindNaN:
		return NaNInteger()
	case x.kind == kindZero && y.kind == kindInf,
		x.kind == kindInf && y.kind == kindZero:
		return NaNInteger()
	case x.kind == kindZero || y.kind == kindZero:
		return ZeroInteger(neg)
	case x.kind == kindInf || y.kind == kindInf:
		return InfInteger(neg)
	}
	return newIntegerSigned(neg, new(big.Int).Mul(x.val, y.val))
}

// Quo returns the (possibly infinite) quotient x / y truncated toward zero.
// The quotients 0 / 0 and ∞ / ∞ are NaN.
// A finite value divided by an infinity is a signed zero, and a non-zero
// value divided by a zero is a signed infinity.
func (x Integer) Quo(y Integer) Integer {
	neg := x.neg != y.neg
	switch {
	case x.kind == kindNaN || y.kind == kindNaN:
		return NaNInteger()
	case x.kind == kindZero && y.kind == kindZero,
		x.kind == kindInf && y.kind == kindInf:
		return NaNInteger()
	case x.kind == kindInf, y.kind == kindZero:
		return InfInteger(neg)
	case x.kind == kindZero, y.kind == kindInf:
		return ZeroInteger(neg)
	}
	return newIntegerSigned(neg, new(big.Int).Quo(x.val, y.val))
}

// Pow returns x raised to the power of exp.
// Zeros and infinities keep their sign only for odd exponents.
// Any value except NaN raised to the power of 0 is 1.
func (x Integer) Pow(exp uint64) Integer {
	odd := exp&1 == 1
	switch {
	case x.kind == kindNaN:
		return x
	case exp == 0:
		return NewInteger(1)
	case x.kind == kindZero:
		return ZeroInteger(x.neg && odd)
	case x.kind == kindInf:
		return InfInteger(x.neg && odd)
	}
	return newIntegerSigned(x.neg && odd, new(big.Int).Exp(x.val, new(big.Int).SetUint64(exp), nil))
}

// Cmp compares x and y and returns:
//
//	-1, true  if x < y
//	 0, true  if x == y
//	+1, true  if x > y
//	 0, false if x or y is NaN
//
// Cmp treats +0 and -0 as equal.
func (x Integer) Cmp(y Integer) (int, bool) {
	if x.kind == kindNaN || y.kind == kindNaN {
		return 0, false
	}
	return cmpExtended(x.kind, x.neg, y.kind, y.neg, func() int {
		return x.signedBig().Cmp(y.signedBig())
	}), true
}

// CmpStrict is similar to [Integer.Cmp], but orders -0 before +0.
func (x Integer) CmpStrict(y Integer) (int, bool) {
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
	return x.signedBig().Cmp(y.signedBig()), true
}

// Equal returns true if x and y represent the same value.
// NaN is not equal to anything, including itself, and +0 equals -0.
func (x Integer) Equal(y Integer) bool {
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

// rank places the non-NaN kinds of a signed number on the extended line.
// Finite values share a rank and are ordered by their payload.
func rank(k kind, neg bool) int {
	r := 0
	switch k {
	case kindInf:
		r = 2
	case kindFinite:
		r = 1
	}
	if neg {
		return -r
	}
	return r
}

// cmpExtended compares two non-NaN signed extended numbers.
// The finite callback is consulted only when both values are finite.
func cmpExtended(xk kind, xneg bool, yk kind, yneg bool, finite func() int) int {
	if xk == kindFinite && yk == kindFinite {
		return finite()
	}
	rx, ry := rank(xk, xneg), rank(yk, yneg)
	switch {
	case rx < ry:
		return -1
	case rx > ry:
		return 1
	}
	return 0
}

// cmpBool orders false before true.
func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

// SumIntegers returns the sum of xs computed by pairwise accumulation.
// A NaN anywhere in xs makes the sum NaN.
func SumIntegers(xs ...Integer) Integer {
	return pairwise(xs, Integer{}, NaNInteger(), Integer.Add)
}

// ProductIntegers returns the product of xs computed by pairwise accumulation.
// A NaN anywhere in xs makes the product NaN.
func ProductIntegers(xs ...Integer) Integer {
	return pairwise(xs, NewInteger(1), NaNInteger(), Integer.Mul)
}
