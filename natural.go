package xnum

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/exp/constraints"
)

// Natural is an arbitrary-precision non-negative integer extended with
// infinity and NaN.
// The zero value is the numeric value of 0.
//
// Natural has value semantics: its payload is never modified after
// construction, so values can be copied and shared between goroutines.
type Natural struct {
	kind kind
	abs  *big.Int // positive, set only when kind == kindFinite
}

// newNatural takes ownership of x and returns the corresponding natural.
// Zero is always represented by kindZero, never by a zero payload.
func newNatural(x *big.Int) Natural {
	switch x.Sign() {
	case 0:
		return Natural{}
	case 1:
		return Natural{kind: kindFinite, abs: x}
	}
	panic(fmt.Sprintf("newNatural(%v) failed: %v", x, ErrNegative)) // unreachable
}

// NewNatural returns a natural equal to u.
func NewNatural(u uint64) Natural {
	return newNatural(new(big.Int).SetUint64(u))
}

// NaturalOf returns a natural equal to any unsigned machine integer.
func NaturalOf[T constraints.Unsigned](u T) Natural {
	return NewNatural(uint64(u))
}

// NewNaturalFromBig returns a natural equal to x.
// NewNaturalFromBig returns an error if x is negative.
func NewNaturalFromBig(x *big.Int) (Natural, error) {
	if x.Sign() < 0 {
		return Natural{}, fmt.Errorf("converting %v: %w", x, ErrNegative)
	}
	return newNatural(new(big.Int).Set(x)), nil
}

// NaNNatural returns a natural that is not a number.
func NaNNatural() Natural {
	return Natural{kind: kindNaN}
}

// InfNatural returns the natural infinity.
func InfNatural() Natural {
	return Natural{kind: kindInf}
}

// ParseNatural converts a string to a natural.
// The input is matched case-insensitively against "inf" and "nan" first.
// Strings with the "0x" prefix are read as hexadecimal, all other strings
// as decimal digits.
func ParseNatural(s string) (Natural, error) {
	if x, ok := parseNaturalSpecial(s); ok {
		return x, nil
	}
	base, digits := 10, s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base, digits = 16, s[2:]
	}
	n, err := parseDigits(digits, base)
	if err != nil {
		return Natural{}, fmt.Errorf("parsing natural %q: %w", s, err)
	}
	return newNatural(n), nil
}

// ParseNaturalBase is similar to [ParseNatural], but reads the digits in
// the given base, which must be between 2 and 62 inclusive.
func ParseNaturalBase(base int, s string) (Natural, error) {
	if x, ok := parseNaturalSpecial(s); ok {
		return x, nil
	}
	n, err := parseDigits(s, base)
	if err != nil {
		return Natural{}, fmt.Errorf("parsing natural %q: %w", s, err)
	}
	return newNatural(n), nil
}

func parseNaturalSpecial(s string) (Natural, bool) {
	switch {
	case strings.EqualFold(s, "inf"):
		return InfNatural(), true
	case strings.EqualFold(s, "nan"):
		return NaNNatural(), true
	}
	return Natural{}, false
}

// String implements the [fmt.Stringer] interface and returns the decimal
// representation of x: "nan", "inf" or its digits.
func (x Natural) String() string {
	switch x.kind {
	case kindNaN:
		return "nan"
	case kindInf:
		return "inf"
	case kindZero:
		return "0"
	}
	return x.abs.String()
}

// MarshalText implements [encoding.TextMarshaler] interface.
// The serialized form is one of "nan", "inf", "0" or a "0x"-prefixed
// hexadecimal literal.
func (x Natural) MarshalText() ([]byte, error) {
	switch x.kind {
	case kindNaN, kindInf, kindZero:
		return []byte(x.String()), nil
	}
	return []byte(fmt.Sprintf("%#x", x.abs)), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// It accepts only the serialized form produced by [Natural.MarshalText].
func (x *Natural) UnmarshalText(text []byte) error {
	s := string(text)
	switch s {
	case "nan":
		*x = NaNNatural()
		return nil
	case "inf":
		*x = InfNatural()
		return nil
	case "0":
		*x = Natural{}
		return nil
	}
	if !strings.HasPrefix(s, "0x") {
		return fmt.Errorf("serialized natural %q does not start with \"0x\": %w", s, ErrInvalidFormat)
	}
	n, err := parseDigits(s[2:], 16)
	if err != nil {
		return fmt.Errorf("serialized natural %q: %w", s, err)
	}
	*x = newNatural(n)
	return nil
}

// IsNaN returns true if x is not a number.
func (x Natural) IsNaN() bool {
	return x.kind == kindNaN
}

// IsInf returns true if x is infinite.
func (x Natural) IsInf() bool {
	return x.kind == kindInf
}

// IsZero returns true if x == 0.
func (x Natural) IsZero() bool {
	return x.kind == kindZero
}

// IsFinite returns true if x is neither infinite nor NaN.
func (x Natural) IsFinite() bool {
	return x.kind == kindZero || x.kind == kindFinite
}

// Sign returns 0 if x is 0 or NaN and 1 otherwise.
func (x Natural) Sign() int {
	switch x.kind {
	case kindZero, kindNaN:
		return 0
	}
	return 1
}

// SignStrict returns 0 if x is NaN and 1 otherwise.
// Naturals carry no sign, so zero counts as positive.
func (x Natural) SignStrict() int {
	if x.kind == kindNaN {
		return 0
	}
	return 1
}

// Big returns x as *big.Int.
// Big returns [ErrNotFinite] if x is infinite or NaN.
func (x Natural) Big() (*big.Int, error) {
	switch x.kind {
	case kindZero:
		return new(big.Int), nil
	case kindFinite:
		return new(big.Int).Set(x.abs), nil
	}
	return nil, fmt.Errorf("converting %v: %w", x, ErrNotFinite)
}

// Integer returns x as a non-negative integer.
func (x Natural) Integer() Integer {
	switch x.kind {
	case kindNaN:
		return NaNInteger()
	case kindInf:
		return InfInteger(false)
	case kindZero:
		return Integer{}
	}
	return Integer{kind: kindFinite, val: x.abs}
}

// Rational returns x as a non-negative rational.
func (x Natural) Rational() Rational {
	return x.Integer().Rational()
}

// Add returns the (possibly infinite) sum x + y.
// NaN dominates infinity, which dominates every finite value.
func (x Natural) Add(y Natural) Natural {
	switch {
	case x.kind == kindNaN || y.kind == kindNaN:
		return NaNNatural()
	case x.kind == kindInf || y.kind == kindInf:
		return InfNatural()
	case x.kind == kindZero:
		return y
	case y.kind == kindZero:
		return x
	}
	return newNatural(new(big.Int).Add(x.abs, y.abs))
}

// Mul returns the (possibly infinite) product x * y.
// The product of 0 and infinity is NaN.
func (x Natural) Mul(y Natural) Natural {
	switch {
	case x.kind == kindNaN || y.kind == kindNaN:
		return NaNNatural()
	case x.kind == kindZero && y.kind == kindInf,
		x.kind == kindInf && y.kind == kindZero:
		return NaNNatural()
	case x.kind == kindInf || y.kind == kindInf:
		return InfNatural()
	case x.kind == kindZero || y.kind == kindZero:
		return Natural{}
	}
	return newNatural(new(big.Int).Mul(x.abs, y.abs))
}

// CheckedSub returns the difference x - y.
// The second result is false if the difference is not a natural:
// when x < y, when y is infinite and x is finite, or when x is 0 and y is not.
// Subtracting infinity from infinity gives NaN.
func (x Natural) CheckedSub(y Natural) (Natural, bool) {
	switch {
	case x.kind == kindInf && y.kind == kindInf:
		return NaNNatural(), true
	case x.kind == kindNaN || y.kind == kindNaN:
		return NaNNatural(), true
	case x.kind == kindInf, y.kind == kindZero:
		return x, true
	case x.kind == kindZero, y.kind == kindInf:
		return Natural{}, false
	}
	if x.abs.Cmp(y.abs) < 0 {
		return Natural{}, false
	}
	return newNatural(new(big.Int).Sub(x.abs, y.abs)), true
}

// Sub is similar to [Natural.CheckedSub], but reports a missing result
// as [ErrUnderflow].
func (x Natural) Sub(y Natural) (Natural, error) {
	z, ok := x.CheckedSub(y)
	if !ok {
		return Natural{}, fmt.Errorf("computing [%v - %v]: %w", x, y, ErrUnderflow)
	}
	return z, nil
}

// Pow returns x raised to the power of exp.
// Any value except NaN raised to the power of 0 is 1.
func (x Natural) Pow(exp uint64) Natural {
	switch {
	case x.kind == kindNaN:
		return x
	case exp == 0:
		return NewNatural(1)
	case x.kind == kindFinite:
		return newNatural(new(big.Int).Exp(x.abs, new(big.Int).SetUint64(exp), nil))
	}
	return x
}

// Cmp compares x and y and returns:
//
//	-1, true  if x < y
//	 0, true  if x == y
//	+1, true  if x > y
//	 0, false if x or y is NaN
func (x Natural) Cmp(y Natural) (int, bool) {
	switch {
	case x.kind == kindNaN || y.kind == kindNaN:
		return 0, false
	case x.kind == y.kind && x.kind != kindFinite:
		return 0, true
	case x.kind == kindInf, y.kind == kindZero:
		return 1, true
	case y.kind == kindInf, x.kind == kindZero:
		return -1, true
	}
	return x.abs.Cmp(y.abs), true
}

// Equal returns true if x and y represent the same value.
// NaN is not equal to anything, including itself.
func (x Natural) Equal(y Natural) bool {
	switch {
	case x.kind == kindNaN || x.kind != y.kind:
		return false
	case x.kind == kindFinite:
		return x.abs.Cmp(y.abs) == 0
	}
	return true
}

// SumNaturals returns the sum of xs computed by pairwise accumulation.
// A NaN anywhere in xs makes the sum NaN.
func SumNaturals(xs ...Natural) Natural {
	return pairwise(xs, Natural{}, NaNNatural(), Natural.Add)
}

// ProductNaturals returns the product of xs computed by pairwise accumulation.
// A NaN anywhere in xs makes the product NaN.
func ProductNaturals(xs ...Natural) Natural {
	return pairwise(xs, NewNatural(1), NaNNatural(), Natural.Mul)
}
