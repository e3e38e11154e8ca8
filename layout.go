package xnum

import "strings"

// LayoutFlags controls how [Rational.Layout] renders a rational.
// Flags are independent and can be combined freely.
type LayoutFlags uint8

const (
	// PlusSign writes "+" in front of positive values.
	PlusSign LayoutFlags = 1 << iota
	// SignedZero writes the sign of a zero.
	SignedZero
	// SignedInf writes "+" in front of positive infinity.
	// Negative infinity is always signed.
	SignedInf
	// DenomOne writes the denominator even when it is 1.
	DenomOne
	// HyphenMinus writes the ASCII hyphen "-" instead of the minus sign "−".
	HyphenMinus
)

var layoutFlagNames = [...]string{"PlusSign", "SignedZero", "SignedInf", "DenomOne", "HyphenMinus"}

// String returns the names of the set flags joined by "|".
func (f LayoutFlags) String() string {
	if f == 0 {
		return "0"
	}
	var names []string
	for i, name := range layoutFlagNames {
		if f&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// Layout is a rational split into the parts a typesetter needs.
// Denom is empty when the denominator is not shown.
type Layout struct {
	Sign  string
	Num   string
	Denom string
}

// String joins the parts as sign, numerator and optional "/denominator".
func (l Layout) String() string {
	if l.Denom == "" {
		return l.Sign + l.Num
	}
	return l.Sign + l.Num + "/" + l.Denom
}

// Layout splits x into sign, numerator and denominator strings according
// to flags. NaN is rendered as "NaN" and infinities as "inf".
// The result of [Layout.String] can always be read back with [ParseRational].
func (x Rational) Layout(flags LayoutFlags) Layout {
	minus := "−"
	if flags&HyphenMinus != 0 {
		minus = "-"
	}
	plus := func(show bool) string {
		if show {
			return "+"
		}
		return ""
	}

	var l Layout
	switch x.kind {
	case kindNaN:
		l.Num = "NaN"
	case kindInf:
		l.Num = "inf"
		if x.neg {
			l.Sign = minus
		} else {
			l.Sign = plus(flags&(SignedInf|PlusSign) != 0)
		}
	case kindZero:
		l.Num = "0"
		if flags&SignedZero != 0 {
			if x.neg {
				l.Sign = minus
			} else {
				l.Sign = plus(flags&PlusSign != 0)
			}
		}
		if flags&DenomOne != 0 {
			l.Denom = "1"
		}
	default:
		l.Num = x.val.Num().String()
		if x.neg {
			l.Sign = minus
		} else {
			l.Sign = plus(flags&PlusSign != 0)
		}
		if !x.val.IsInt() || flags&DenomOne != 0 {
			l.Denom = x.val.Denom().String()
		}
	}
	return l
}
