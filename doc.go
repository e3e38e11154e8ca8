/*
Package xnum implements immutable extended numbers: exact naturals,
integers and rationals augmented with signed zeros, signed infinities and NaN.

# Representation

Each type is a closed set of variants:

  - [Natural]: NaN, 0, infinity, or a positive arbitrary-precision integer.
  - [Integer]: NaN, ±0, ±infinity, or a non-zero arbitrary-precision integer.
  - [Rational]: NaN, ±0, ±infinity, or a non-zero fraction in lowest terms
    with a positive denominator.

A finite payload is never zero: any computation that produces zero yields
the zero variant. The zero value of every type is (positive) zero.
Values never share mutable state, so they are safe for concurrent use.

# Conversions

Naturals widen to integers and rationals, and integers widen to rationals,
without loss. Narrowing back fails with [ErrNotFinite] for NaN and
infinities, and with [ErrNotInteger] for rationals with a fractional part.

  - from/to string:
    [ParseNatural], [ParseInteger], [ParseRational], [ParseFraction],
    and the String, MarshalText and UnmarshalText methods.
  - from/to machine and big numbers:
    [NaturalOf], [IntegerOf], [RationalOf], [NewRationalFromFloat64],
    [Natural.Big], [Integer.Big], [Rational.Big], [Rational.Float64].
  - to typeset parts:
    [Rational.Layout].

# Operations

Arithmetic follows IEEE 754 where it applies and extends it to exact values:

  - NaN absorbs: any operation with a NaN operand returns NaN.
  - 0 * ∞, 0 / 0 and ∞ / ∞ are NaN, and so is the sum of opposite infinities.
  - The sign of a zero or infinite product or quotient is the exclusive or
    of the operand signs.
  - The sum of two zeros is -0 only if both are -0.
  - Any value except NaN raised to the power of 0 is 1.

Sums and products of sequences, such as [SumRationals], combine values
along a balanced binary tree rather than from left to right.

# Comparison

Three relations are provided and they are not derived from each other:

  - Equal: NaN equals nothing, +0 equals -0.
  - Cmp: a partial order, incomparable when an operand is NaN, +0 == -0.
  - CmpStrict: like Cmp, but -0 < +0.

# Errors

Arithmetic never fails: indeterminate forms produce NaN.
Errors are returned only for malformed input ([ErrInvalidFormat]),
failed narrowing ([ErrNotFinite], [ErrNotInteger], [ErrNegative]),
natural underflow ([ErrUnderflow]) and invalid approximation bounds
([ErrDenominator]).
*/
package xnum
