package xnum

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// maxExponent bounds the magnitude of a decimal exponent, so that the
// power of ten it implies stays reasonably small.
const maxExponent = 1 << 16

// digitArith is the capability set the fraction parser needs from a
// numeric domain. Every operation may fail, which lets bounded domains
// report overflow instead of wrapping.
type digitArith[T any] interface {
	zero() T
	one() T
	isZero(x T) bool
	add(x, y T) (T, error)
	sub(x, y T) (T, error)
	mul(x, y T) (T, error)
	pow10(n uint64) (T, error)
	digits(s string) (T, error)
}

// fintArith is the fast domain: every result must fit into uint64.
type fintArith struct{}

func (fintArith) zero() fint { return 0 }
func (fintArith) one() fint { return 1 }
func (fintArith) isZero(x fint) bool { return x == 0 }
func (fintArith) digits(s string) (fint, error) { return parseFint(s) }

func (fintArith) add(x, y fint) (fint, error) {
	z, ok := x.add(y)
	if !ok {
		return 0, errOverflow
	}
	return z, nil
}

func (fintArith) sub(x, y fint) (fint, error) {
	z, ok := x.sub(y)
	if !ok {
		return 0, errOverflow
	}
	return z, nil
}

func (fintArith) mul(x, y fint) (fint, error) {
	z, ok := x.mul(y)
	if !ok {
		return 0, errOverflow
	}
	return z, nil
}

func (fintArith) pow10(n uint64) (fint, error) {
	z, ok := fint(10).pow(n)
	if !ok {
		return 0, errOverflow
	}
	return z, nil
}

// naturalArith is the slow domain backed by the extended naturals.
type naturalArith struct{}

func (naturalArith) zero() Natural { return Natural{} }
func (naturalArith) one() Natural { return NewNatural(1) }
func (naturalArith) isZero(x Natural) bool { return x.IsZero() }
func (naturalArith) add(x, y Natural) (Natural, error) { return x.Add(y), nil }
func (naturalArith) mul(x, y Natural) (Natural, error) { return x.Mul(y), nil }
func (naturalArith) sub(x, y Natural) (Natural, error) { return x.Sub(y) }

func (naturalArith) pow10(n uint64) (Natural, error) {
	z := new(bint)
	z.pow10(n)
	return newNatural(z.big()), nil
}

func (naturalArith) digits(s string) (Natural, error) {
	if !isDigits(s) {
		return Natural{}, fmt.Errorf("invalid digits %q: %w", s, ErrInvalidFormat)
	}
	n, err := parseDigits(s, 10)
	if err != nil {
		return Natural{}, err
	}
	return newNatural(n), nil
}

// fraction is the domain-independent parsing result.
// For kindFinite num and den are as written, not reduced.
type fraction[T any] struct {
	kind     kind
	neg      bool
	num, den T
}

// parseFraction parses special values, "num/den" fractions and decimal
// notation with an optional repeating part into the domain described by a.
func parseFraction[T any](a digitArith[T], s string) (fraction[T], error) {
	if f, ok := parseFractionSpecial[T](s); ok {
		return f, nil
	}
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return parseSlash(a, s[:i], s[i+1:])
	}
	p, err := splitDecimal(s)
	if err != nil {
		return fraction[T]{}, err
	}
	return fractionFromDecimal(a, p)
}

func parseFractionSpecial[T any](s string) (fraction[T], bool) {
	neg, rest := cutSign(s)
	switch {
	case strings.EqualFold(rest, "inf"):
		return fraction[T]{kind: kindInf, neg: neg}, true
	case strings.EqualFold(rest, "nan"):
		return fraction[T]{kind: kindNaN}, true
	}
	return fraction[T]{}, false
}

// parseSlash handles the "num/den" notation.
// Each side may carry its own sign and an empty side stands for 1.
func parseSlash[T any](a digitArith[T], nums, dens string) (fraction[T], error) {
	nneg, nums := cutSign(nums)
	dneg, dens := cutSign(dens)
	neg := nneg != dneg

	side := func(s string) (T, error) {
		if s == "" {
			return a.one(), nil
		}
		if !isDigits(s) {
			return a.zero(), fmt.Errorf("invalid digits %q: %w", s, ErrInvalidFormat)
		}
		return a.digits(s)
	}
	num, err := side(nums)
	if err != nil {
		return fraction[T]{}, err
	}
	den, err := side(dens)
	if err != nil {
		return fraction[T]{}, err
	}

	switch {
	case a.isZero(num) && a.isZero(den):
		return fraction[T]{kind: kindNaN}, nil
	case a.isZero(den):
		return fraction[T]{kind: kindInf, neg: neg}, nil
	case a.isZero(num):
		return fraction[T]{kind: kindZero, neg: neg}, nil
	}
	return fraction[T]{kind: kindFinite, neg: neg, num: num, den: den}, nil
}

// decimalParts is a decimal literal split into its components.
// The value is (intPart + 0.[repPart]) * 10^exp, where the repeating part,
// if any, starts right after the last digit of intPart.
type decimalParts struct {
	neg     bool
	intPart string
	repPart string
	exp     int
}

// splitDecimal splits decimal notation into its components.
// The repeating part is enclosed in brackets and may be placed
//
//	after the point:     1234.5[67]
//	across the point:    12[34.5]
//	before the point:    1[23]4.5
//	without any point:   123[456]
//
// Digits that follow the closing bracket only hold their positions: the
// repetition fills them, so "0.[3]33" equals "0.[3]".
// Without a point they do not shift the value either, so "123[456]78"
// equals "123[456]", which is 123456.[456].
func splitDecimal(s string) (decimalParts, error) {
	var p decimalParts

	// Exponent
	if i := strings.IndexAny(s, "Ee"); i >= 0 {
		e, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return decimalParts{}, fmt.Errorf("invalid exponent %q: %w", s[i+1:], ErrInvalidFormat)
		}
		if e > maxExponent || e < -maxExponent {
			return decimalParts{}, fmt.Errorf("exponent %v: %w: %w", e, ErrInvalidFormat, errExponentRange)
		}
		s, p.exp = s[:i], e
	}

	// Sign
	p.neg, s = cutSign(s)

	var trail string
	if i := strings.IndexByte(s, '.'); i >= 0 {
		before, after := s[:i], s[i+1:]
		l, r := strings.IndexByte(before, '['), strings.LastIndexByte(before, ']')
		switch {
		case l >= 0 && r >= 0:
			// 1[23]4.5678
			if r < l {
				return decimalParts{}, fmt.Errorf("closing bracket before opening bracket: %w", ErrInvalidFormat)
			}
			p.intPart, p.repPart, trail = before[:l], before[l+1:r], before[r+1:]
			p.exp += len(trail) + len(p.repPart)
			if !isDigits(after) {
				return decimalParts{}, fmt.Errorf("invalid digits %q: %w", after, ErrInvalidFormat)
			}
		case l >= 0:
			// 12[34.5]678
			r = strings.LastIndexByte(after, ']')
			if r < 0 {
				return decimalParts{}, fmt.Errorf("repeating part is not closed: %w", ErrInvalidFormat)
			}
			p.intPart = before[:l]
			p.repPart = before[l+1:] + after[:r]
			p.exp += len(before) - l - 1
			trail = after[r+1:]
		case r >= 0:
			return decimalParts{}, fmt.Errorf("repeating part is not opened: %w", ErrInvalidFormat)
		default:
			l, r = strings.IndexByte(after, '['), strings.LastIndexByte(after, ']')
			switch {
			case l >= 0 && r >= 0:
				// 1234.5[67]8
				if r < l {
					return decimalParts{}, fmt.Errorf("closing bracket before opening bracket: %w", ErrInvalidFormat)
				}
				p.intPart = before + after[:l]
				p.repPart = after[l+1 : r]
				p.exp -= l
				trail = after[r+1:]
			case l < 0 && r < 0:
				// 1234.5678
				p.intPart = before + after
				p.exp -= len(after)
			default:
				return decimalParts{}, fmt.Errorf("unmatched bracket: %w", ErrInvalidFormat)
			}
		}
	} else {
		l, r := strings.IndexByte(s, '['), strings.LastIndexByte(s, ']')
		switch {
		case l >= 0 && r >= 0:
			// 123[456]78
			if r < l {
				return decimalParts{}, fmt.Errorf("closing bracket before opening bracket: %w", ErrInvalidFormat)
			}
			p.intPart, p.repPart, trail = s[:l], s[l+1:r], s[r+1:]
			p.exp += len(p.repPart)
		case l < 0 && r < 0:
			// 12345678
			p.intPart = s
		default:
			return decimalParts{}, fmt.Errorf("unmatched bracket: %w", ErrInvalidFormat)
		}
	}

	switch {
	case !isDigits(p.intPart):
		return decimalParts{}, fmt.Errorf("invalid integer part %q: %w", p.intPart, ErrInvalidFormat)
	case !isDigits(p.repPart):
		return decimalParts{}, fmt.Errorf("invalid repeating part %q: %w", p.repPart, ErrInvalidFormat)
	case !isDigits(trail):
		return decimalParts{}, fmt.Errorf("invalid digits %q after repeating part: %w", trail, ErrInvalidFormat)
	case strings.ContainsRune(s, '[') && p.repPart == "":
		return decimalParts{}, fmt.Errorf("empty repeating part: %w", ErrInvalidFormat)
	case p.intPart == "" && p.repPart == "":
		return decimalParts{}, fmt.Errorf("no digits: %w", ErrInvalidFormat)
	}
	return p, nil
}

// fractionFromDecimal evaluates decimal components in the domain described by a.
// A repeating block of length L contributes the denominator 10^L - 1.
func fractionFromDecimal[T any](a digitArith[T], p decimalParts) (fraction[T], error) {
	var err error
	num, den := a.zero(), a.one()
	if p.intPart != "" {
		num, err = a.digits(p.intPart)
		if err != nil {
			return fraction[T]{}, err
		}
	}
	if p.repPart != "" {
		if den, err = a.pow10(uint64(len(p.repPart))); err != nil {
			return fraction[T]{}, err
		}
		if den, err = a.sub(den, a.one()); err != nil {
			return fraction[T]{}, err
		}
		rep, err := a.digits(p.repPart)
		if err != nil {
			return fraction[T]{}, err
		}
		if num, err = a.mul(num, den); err != nil {
			return fraction[T]{}, err
		}
		if num, err = a.add(num, rep); err != nil {
			return fraction[T]{}, err
		}
	}

	if a.isZero(num) {
		return fraction[T]{kind: kindZero, neg: p.neg}, nil
	}

	switch {
	case p.exp > 0:
		scale, err := a.pow10(uint64(p.exp))
		if err != nil {
			return fraction[T]{}, err
		}
		if num, err = a.mul(num, scale); err != nil {
			return fraction[T]{}, err
		}
	case p.exp < 0:
		scale, err := a.pow10(uint64(-p.exp))
		if err != nil {
			return fraction[T]{}, err
		}
		if den, err = a.mul(den, scale); err != nil {
			return fraction[T]{}, err
		}
	}
	return fraction[T]{kind: kindFinite, neg: p.neg, num: num, den: den}, nil
}

// Fraction is the result of [ParseFraction]: NaN, a signed infinity,
// a signed zero or a signed finite fraction.
// The numerator and denominator of a finite fraction are kept as written,
// without reduction, so "0.50" has numerator 50 and denominator 100.
type Fraction struct {
	kind     kind
	neg      bool
	num, den *big.Int
}

// ParseFraction converts a string to a fraction.
//
// The following inputs are accepted:
//
//	special        ::= [sign] ('inf' | 'nan')
//	fraction       ::= [sign] [digits] '/' [sign] [digits]
//	decimal        ::= [sign] significand [exponent]
//	significand    ::= digits with at most one '.' and an optional
//	                   bracketed repeating part, such as '0.1[6]'
//	exponent       ::= ('e' | 'E') [sign] digits
//	sign           ::= '+' | '-' | '−'
//
// Special values are matched case-insensitively.
// In the fraction form an empty side stands for 1, the signs of both sides
// combine, 0/0 is NaN, x/0 is an infinity and 0/x is a zero.
//
// The string is first parsed using uint64 arithmetic. If any intermediate
// value overflows, it is parsed again using [big.Int] arithmetic.
func ParseFraction(s string) (Fraction, error) {
	t := strings.ReplaceAll(s, "−", "-")
	f, err := parseFractionFast(t)
	if errors.Is(err, errOverflow) {
		f, err = parseFractionSlow(t)
	}
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing fraction %q: %w", s, err)
	}
	return f, nil
}

func parseFractionFast(s string) (Fraction, error) {
	f, err := parseFraction[fint](fintArith{}, s)
	if err != nil {
		return Fraction{}, err
	}
	g := Fraction{kind: f.kind, neg: f.neg}
	if f.kind == kindFinite {
		g.num = new(big.Int).SetUint64(uint64(f.num))
		g.den = new(big.Int).SetUint64(uint64(f.den))
	}
	return g, nil
}

func parseFractionSlow(s string) (Fraction, error) {
	f, err := parseFraction[Natural](naturalArith{}, s)
	if err != nil {
		return Fraction{}, err
	}
	g := Fraction{kind: f.kind, neg: f.neg}
	if f.kind == kindFinite {
		if g.num, err = f.num.Big(); err != nil {
			return Fraction{}, err
		}
		if g.den, err = f.den.Big(); err != nil {
			return Fraction{}, err
		}
	}
	return g, nil
}

// MustParseFraction is like [ParseFraction] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding fractions.
func MustParseFraction(s string) Fraction {
	f, err := ParseFraction(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseFraction(%q) failed: %v", s, err))
	}
	return f
}

// IsNaN returns true if f is not a number.
func (f Fraction) IsNaN() bool {
	return f.kind == kindNaN
}

// IsInf returns true if f is infinite.
func (f Fraction) IsInf() bool {
	return f.kind == kindInf
}

// IsZero returns true if f is a signed zero.
func (f Fraction) IsZero() bool {
	return f.kind == kindZero
}

// IsNeg returns true if f carries a negative sign.
func (f Fraction) IsNeg() bool {
	return f.kind != kindNaN && f.neg
}

// Num returns the numerator of f as written.
// NaN and zeros have numerator 0, infinities have numerator 1.
func (f Fraction) Num() *big.Int {
	switch f.kind {
	case kindFinite:
		return new(big.Int).Set(f.num)
	case kindInf:
		return big.NewInt(1)
	}
	return new(big.Int)
}

// Denom returns the denominator of f as written.
// NaN and infinities have denominator 0, zeros have denominator 1.
func (f Fraction) Denom() *big.Int {
	switch f.kind {
	case kindFinite:
		return new(big.Int).Set(f.den)
	case kindZero:
		return big.NewInt(1)
	}
	return new(big.Int)
}

// Rational returns f as a rational reduced to lowest terms.
func (f Fraction) Rational() Rational {
	switch f.kind {
	case kindNaN:
		return NaNRational()
	case kindInf:
		return InfRational(f.neg)
	case kindZero:
		return ZeroRational(f.neg)
	}
	return newRationalSigned(f.neg, new(big.Rat).SetFrac(f.num, f.den))
}

// Integer returns f as an integer.
// Integer returns [ErrNotInteger] if f has a fractional part.
func (f Fraction) Integer() (Integer, error) {
	switch f.kind {
	case kindNaN:
		return NaNInteger(), nil
	case kindInf:
		return InfInteger(f.neg), nil
	case kindZero:
		return ZeroInteger(f.neg), nil
	}
	q, r := new(big.Int).QuoRem(f.num, f.den, new(big.Int))
	if r.Sign() != 0 {
		return Integer{}, fmt.Errorf("converting %v: %w", f, ErrNotInteger)
	}
	return newIntegerSigned(f.neg, q), nil
}

// Natural returns f as a natural.
// Natural returns [ErrNegative] if f is strictly negative and
// [ErrNotInteger] if f has a fractional part. A negative zero converts to 0.
func (f Fraction) Natural() (Natural, error) {
	i, err := f.Integer()
	if err != nil {
		return Natural{}, err
	}
	return i.Natural()
}

// String returns f in the "num/den" form, keeping the numerator and
// denominator as written. Special values are written as "nan", "inf",
// "-inf", "0" and "-0".
func (f Fraction) String() string {
	var sign string
	if f.IsNeg() {
		sign = "-"
	}
	switch f.kind {
	case kindNaN:
		return "nan"
	case kindInf:
		return sign + "inf"
	case kindZero:
		return sign + "0"
	}
	return sign + f.num.String() + "/" + f.den.String()
}
