package xnum

import "errors"

// kind is the variant tag shared by all extended numbers.
// The zero kind is zero, so the zero value of every type is 0.
type kind uint8

const (
	kindZero   kind = iota // no payload
	kindFinite             // non-zero payload
	kindInf                // no payload
	kindNaN                // no payload
)

var (
	// ErrInvalidFormat is returned when text cannot be parsed as a number.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrNotFinite is returned when NaN or an infinity is narrowed to a finite type.
	ErrNotFinite = errors.New("infinity or NaN cannot be converted")
	// ErrNotInteger is returned when a non-integral value is narrowed to an integer type.
	ErrNotInteger = errors.New("value is not an integer")
	// ErrUnderflow is returned when a natural subtraction has no natural result.
	ErrUnderflow = errors.New("natural underflow")
	// ErrNegative is returned when a negative value is given where a natural is expected.
	ErrNegative = errors.New("negative value")
	// ErrDenominator is returned when an approximation bound is not positive.
	ErrDenominator = errors.New("maximum denominator must be positive")

	errOverflow      = errors.New("fast path overflow")
	errBaseRange     = errors.New("base out of range")
	errExponentRange = errors.New("exponent out of range")
)
