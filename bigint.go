package xnum

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"sync"

	"golang.org/x/exp/constraints"
)

// fint (Fast INTeger) is a wrapper around uint64.
// It is used by the fast parsing path, where every operation reports overflow
// instead of growing.
type fint uint64

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	s, carry := bits.Add64(uint64(x), uint64(y), 0)
	if carry != 0 {
		return 0, false
	}
	return fint(s), true
}

// sub calculates x - y and checks underflow.
func (x fint) sub(y fint) (z fint, ok bool) {
	if x < y {
		return 0, false
	}
	return x - y, true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if hi != 0 {
		return 0, false
	}
	return fint(lo), true
}

// pow calculates x^n by repeated squaring and checks overflow.
func (x fint) pow(n uint64) (z fint, ok bool) {
	z = 1
	for n > 0 {
		if n&1 == 1 {
			z, ok = z.mul(x)
			if !ok {
				return 0, false
			}
		}
		n >>= 1
		if n > 0 {
			x, ok = x.mul(x)
			if !ok {
				return 0, false
			}
		}
	}
	return z, true
}

// parseFint converts a string of decimal digits to fint.
func parseFint(s string) (fint, error) {
	if !isDigits(s) || s == "" {
		return 0, fmt.Errorf("invalid digits %q: %w", s, ErrInvalidFormat)
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errOverflow
	}
	return fint(u), nil
}

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = [...]*bint{
	mustParseBint("1"),
	mustParseBint("10"),
	mustParseBint("100"),
	mustParseBint("1000"),
	mustParseBint("10000"),
	mustParseBint("100000"),
	mustParseBint("1000000"),
	mustParseBint("10000000"),
	mustParseBint("100000000"),
	mustParseBint("1000000000"),
	mustParseBint("10000000000"),
	mustParseBint("100000000000"),
	mustParseBint("1000000000000"),
	mustParseBint("10000000000000"),
	mustParseBint("100000000000000"),
	mustParseBint("1000000000000000"),
	mustParseBint("10000000000000000"),
	mustParseBint("100000000000000000"),
	mustParseBint("1000000000000000000"),
	mustParseBint("10000000000000000000"),
}

// mustParseBint converts a string to *big.Int, panicking on error.
// Use only for package variable initialization and test code!
func mustParseBint(s string) *bint {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Errorf("mustParseBint(%q) failed: parsing error", s))
	}
	if z.Sign() < 0 {
		panic(fmt.Errorf("mustParseBint(%q) failed: negative number", s))
	}
	return (*bint)(z)
}

func (z *bint) big() *big.Int {
	return (*big.Int)(z)
}

func (z *bint) sign() int {
	return z.big().Sign()
}

func (z *bint) cmp(x *bint) int {
	return z.big().Cmp(x.big())
}

func (z *bint) setBint(x *bint) {
	z.big().Set(x.big())
}

func (z *bint) setInt64(x int64) {
	z.big().SetInt64(x)
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	z.big().Add(x.big(), y.big())
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	z.big().Sub(x.big(), y.big())
}

// dbl (Double) calculates z = x * 2.
func (z *bint) dbl(x *bint) {
	z.big().Lsh(x.big(), 1)
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	z.big().Mul(x.big(), y.big())
}

// fma (Fused Multiply-Addition) calculates z = x + a * y.
func (z *bint) fma(x, a, y *bint) {
	t := getBint()
	defer putBint(t)
	t.mul(a, y)
	z.add(x, t)
}

// quo calculates z = ⌊x / y⌋.
// If x or y is negative, the result is unpredictable.
func (z *bint) quo(x, y *bint) {
	z.big().Quo(x.big(), y.big())
}

// pow10 calculates z = 10^power.
func (z *bint) pow10(power uint64) {
	if power < uint64(len(bpow10)) {
		z.setBint(bpow10[power])
		return
	}
	z.big().Exp(bpow10[1].big(), new(big.Int).SetUint64(power), nil)
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}

// bigOf converts a machine integer of any width and signedness to *big.Int.
func bigOf[T constraints.Integer](x T) *big.Int {
	if x < 0 {
		return big.NewInt(int64(x))
	}
	return new(big.Int).SetUint64(uint64(x))
}

// isDigits reports whether s consists of decimal digits only.
// The empty string is considered to be digits.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseDigits converts unsigned digits in the given base to *big.Int.
// Unlike big.Int.SetString it rejects signs and empty input.
func parseDigits(s string, base int) (*big.Int, error) {
	if base < 2 || base > big.MaxBase {
		return nil, fmt.Errorf("base %v: %w: %w", base, ErrInvalidFormat, errBaseRange)
	}
	if s == "" || s[0] == '+' || s[0] == '-' {
		return nil, fmt.Errorf("invalid digits %q: %w", s, ErrInvalidFormat)
	}
	z, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("invalid digits %q in base %v: %w", s, base, ErrInvalidFormat)
	}
	return z, nil
}
