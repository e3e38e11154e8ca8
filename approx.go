package xnum

import (
	"fmt"
	"math/big"
)

// Approx returns the closest rational to x whose denominator does not
// exceed maxDen.
// Ties are resolved in favour of the last continued-fraction convergent.
// Zeros, infinities and NaN are returned unchanged, and a finite result
// that reduces to zero keeps the sign of x.
// Approx returns [ErrDenominator] if maxDen is not positive.
func (x Rational) Approx(maxDen *big.Int) (Rational, error) {
	if maxDen.Sign() <= 0 {
		return Rational{}, fmt.Errorf("approximating %v with bound %v: %w", x, maxDen, ErrDenominator)
	}
	if x.kind != kindFinite || x.val.Denom().Cmp(maxDen) <= 0 {
		return x, nil
	}
	num, den := limitDenominator(
		(*bint)(x.val.Num()),
		(*bint)(x.val.Denom()),
		(*bint)(maxDen),
	)
	if num.sign() == 0 {
		return ZeroRational(x.neg), nil
	}
	return newRationalSigned(x.neg, new(big.Rat).SetFrac(num.big(), den.big())), nil
}

// ApproxInt64 is like [Rational.Approx] with a machine integer bound.
func (x Rational) ApproxInt64(maxDen int64) (Rational, error) {
	return x.Approx(big.NewInt(maxDen))
}

// limitDenominator finds the best approximation of num / den with
// denominator at most maxDen, where num >= 0 and den > maxDen > 0.
//
// It expands num / den into a continued fraction until the next convergent
// would exceed the bound, then compares the last convergent p1 / q1 with
// the semiconvergent (p0 + k*p1) / (q0 + k*q1) using only integers.
// The arguments are not modified.
func limitDenominator(num, den, maxDen *bint) (p, q *bint) {
	p0, q0, p1, q1 := getBint(), getBint(), getBint(), getBint()
	n, d, a, q2, t := getBint(), getBint(), getBint(), getBint(), getBint()
	defer func() {
		for _, b := range []*bint{p0, q0, p1, q1, n, d, a, q2, t} {
			putBint(b)
		}
	}()

	p0.setInt64(0)
	q0.setInt64(1)
	p1.setInt64(1)
	q1.setInt64(0)
	n.setBint(num)
	d.setBint(den)

	for d.sign() != 0 {
		a.quo(n, d)
		q2.fma(q0, a, q1)
		if q2.cmp(maxDen) > 0 {
			break
		}
		// (p0, p1) = (p1, p0 + a*p1)
		t.fma(p0, a, p1)
		p0.setBint(p1)
		p1.setBint(t)
		q0.setBint(q1)
		q1.setBint(q2)
		// (n, d) = (d, n - a*d)
		t.mul(a, d)
		t.sub(n, t)
		n.setBint(d)
		d.setBint(t)
	}

	// k = (maxDen - q0) / q1
	k := new(bint)
	k.sub(maxDen, q0)
	k.quo(k, q1)

	// Semiconvergent bound: q0 + k*q1
	sq := new(bint)
	sq.fma(q0, k, q1)

	// The last convergent wins if 2*d*(q0 + k*q1) <= den.
	t.mul(d, sq)
	t.dbl(t)
	if t.cmp(den) <= 0 {
		p, q = new(bint), new(bint)
		p.setBint(p1)
		q.setBint(q1)
		return p, q
	}
	p = new(bint)
	p.fma(p0, k, p1)
	return p, sq
}
