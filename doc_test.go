package xnum_test

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/govalues/xnum"
)

// This example sums a harmonic series exactly and then looks for a short
// fraction close to the result.
func Example_harmonicSeries() {
	terms := make([]xnum.Rational, 0, 10)
	for i := int64(1); i <= 10; i++ {
		terms = append(terms, xnum.NewRational(1, i))
	}
	h := xnum.SumRationals(terms...)
	fmt.Println(h)
	a, err := h.ApproxInt64(100)
	if err != nil {
		panic(err)
	}
	fmt.Println(a)
	// Output:
	// 7381/2520
	// 290/99
}

func ExampleParseRational() {
	fmt.Println(xnum.ParseRational("0.1[6]"))
	fmt.Println(xnum.ParseRational("-1.25e-1"))
	fmt.Println(xnum.ParseRational("4/-6"))
	fmt.Println(xnum.ParseRational("-0"))
	fmt.Println(xnum.ParseRational("0/0"))
	// Output:
	// 1/6 <nil>
	// -1/8 <nil>
	// -2/3 <nil>
	// -0 <nil>
	// nan <nil>
}

func ExampleParseFraction() {
	f, err := xnum.ParseFraction("2[34.5]678")
	if err != nil {
		panic(err)
	}
	fmt.Println(f)
	fmt.Println(f.Rational())
	// Output:
	// 234300/999
	// 78100/333
}

func ExampleParseInteger() {
	fmt.Println(xnum.ParseInteger("-0x1A"))
	fmt.Println(xnum.ParseInteger("-0"))
	fmt.Println(xnum.ParseInteger("-Inf"))
	// Output:
	// -26 <nil>
	// -0 <nil>
	// -inf <nil>
}

func ExampleParseNatural() {
	fmt.Println(xnum.ParseNatural("0xff"))
	fmt.Println(xnum.ParseNatural("NaN"))
	// Output:
	// 255 <nil>
	// nan <nil>
}

func ExampleNatural_CheckedSub() {
	x := xnum.NewNatural(3)
	fmt.Println(x.CheckedSub(xnum.NewNatural(2)))
	fmt.Println(x.CheckedSub(xnum.NewNatural(5)))
	fmt.Println(xnum.InfNatural().CheckedSub(xnum.InfNatural()))
	// Output:
	// 1 true
	// 0 false
	// nan true
}

func ExampleInteger_Mul() {
	fmt.Println(xnum.NewInteger(-3).Mul(xnum.ZeroInteger(false)))
	fmt.Println(xnum.InfInteger(true).Mul(xnum.NewInteger(-2)))
	fmt.Println(xnum.InfInteger(false).Mul(xnum.ZeroInteger(false)))
	// Output:
	// -0
	// inf
	// nan
}

func ExampleInteger_CmpStrict() {
	pos, neg := xnum.ZeroInteger(false), xnum.ZeroInteger(true)
	fmt.Println(neg.Cmp(pos))
	fmt.Println(neg.CmpStrict(pos))
	fmt.Println(neg.Equal(pos))
	// Output:
	// 0 true
	// -1 true
	// true
}

func ExampleRational_Add() {
	x := xnum.MustParseRational("1/6")
	y := xnum.MustParseRational("1/3")
	fmt.Println(x.Add(y))
	fmt.Println(xnum.InfRational(false).Add(xnum.InfRational(true)))
	fmt.Println(xnum.ZeroRational(true).Add(xnum.ZeroRational(false)))
	// Output:
	// 1/2
	// nan
	// 0
}

func ExampleRational_Quo() {
	one := xnum.RationalOf(1)
	fmt.Println(one.Quo(xnum.ZeroRational(true)))
	fmt.Println(one.Quo(xnum.InfRational(false)))
	fmt.Println(xnum.ZeroRational(false).Quo(xnum.ZeroRational(false)))
	// Output:
	// -inf
	// 0
	// nan
}

func ExampleRational_Pow() {
	x := xnum.MustParseRational("-2/3")
	fmt.Println(x.Pow(3))
	fmt.Println(x.Pow(-2))
	fmt.Println(xnum.ZeroRational(true).Pow(-1))
	fmt.Println(xnum.NaNRational().Pow(0))
	// Output:
	// -8/27
	// 9/4
	// -inf
	// nan
}

func ExampleRational_Approx() {
	x := xnum.MustParseRational("3.14159")
	fmt.Println(x.Approx(big.NewInt(10)))
	fmt.Println(x.Approx(big.NewInt(100)))
	fmt.Println(x.Approx(big.NewInt(0)))
	// Output:
	// 22/7 <nil>
	// 311/99 <nil>
	// 0 approximating 314159/100000 with bound 0: maximum denominator must be positive
}

func ExampleRational_Layout() {
	x := xnum.MustParseRational("-5")
	fmt.Println(x.Layout(0))
	fmt.Println(x.Layout(xnum.HyphenMinus | xnum.DenomOne))
	z := xnum.ZeroRational(false)
	fmt.Println(z.Layout(xnum.PlusSign))
	fmt.Println(z.Layout(xnum.PlusSign | xnum.SignedZero))
	fmt.Printf("%q\n", xnum.InfRational(false).Layout(xnum.SignedInf))
	// Output:
	// −5
	// -5/1
	// 0
	// +0
	// "+inf"
}

func ExampleRational_Format() {
	x := xnum.MustParseRational("-3/4")
	fmt.Printf("%v\n", x)
	fmt.Printf("%q\n", x)
	fmt.Printf("%+v\n", x.Neg())
	fmt.Printf("[%8v]\n", x)
	// Output:
	// -3/4
	// "-3/4"
	// +3/4
	// [    -3/4]
}

func ExampleRational_MarshalText() {
	type Point struct {
		X, Y xnum.Rational
	}
	b, err := json.Marshal(Point{X: xnum.MustParseRational("1/3"), Y: xnum.ZeroRational(true)})
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))

	var p Point
	if err := json.Unmarshal([]byte(`{"X":"-inf","Y":"0.[3]"}`), &p); err != nil {
		panic(err)
	}
	fmt.Println(p.X, p.Y)
	// Output:
	// {"X":"1/3","Y":"-0"}
	// -inf 1/3
}

func ExampleInteger_MarshalText() {
	b, err := xnum.NewInteger(-255).MarshalText()
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output:
	// -0xff
}

func ExampleSumIntegers() {
	fmt.Println(xnum.SumIntegers(xnum.NewInteger(1), xnum.NewInteger(2), xnum.NaNInteger()))
	fmt.Println(xnum.SumIntegers(xnum.ZeroInteger(true), xnum.ZeroInteger(true)))
	// Output:
	// nan
	// -0
}
