package xnum

import (
	"fmt"
	"math/big"
)

// MustParseNatural is like [ParseNatural] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding naturals.
func MustParseNatural(s string) Natural {
	x, err := ParseNatural(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseNatural(%q) failed: %v", s, err))
	}
	return x
}

// MustParseInteger is like [ParseInteger] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParseInteger(s string) Integer {
	x, err := ParseInteger(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseInteger(%q) failed: %v", s, err))
	}
	return x
}

// MustParseRational is like [ParseRational] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rationals.
func MustParseRational(s string) Rational {
	x, err := ParseRational(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseRational(%q) failed: %v", s, err))
	}
	return x
}

// MustSub is like [Natural.Sub] but panics on underflow.
func (x Natural) MustSub(y Natural) Natural {
	z, err := x.Sub(y)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", y, err))
	}
	return z
}

// MustInteger is like [Rational.Integer] but panics if x is not an integer.
func (x Rational) MustInteger() Integer {
	z, err := x.Integer()
	if err != nil {
		panic(fmt.Sprintf("MustInteger(%v) failed: %v", x, err))
	}
	return z
}

// MustApprox is like [Rational.Approx] but panics if maxDen is not positive.
func (x Rational) MustApprox(maxDen *big.Int) Rational {
	z, err := x.Approx(maxDen)
	if err != nil {
		panic(fmt.Sprintf("MustApprox(%v) failed: %v", maxDen, err))
	}
	return z
}
