package xnum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFraction(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want string // fraction as written
		}{
			// Special values
			{"inf", "inf"},
			{"+Inf", "inf"},
			{"-inf", "-inf"},
			{"−inf", "-inf"},
			{"nan", "nan"},
			{"-NAN", "nan"},

			// Fractions
			{"1/3", "1/3"},
			{"-1/3", "-1/3"},
			{"1/-3", "-1/3"},
			{"-1/-3", "1/3"},
			{"+2/+4", "2/4"},
			{"/3", "1/3"},
			{"3/", "3/1"},
			{"/", "1/1"},
			{"0/5", "0"},
			{"-0/5", "-0"},
			{"0/-5", "-0"},
			{"5/0", "inf"},
			{"5/-0", "-inf"},
			{"0/0", "nan"},
			{"-0/0", "nan"},

			// Decimals
			{"0", "0"},
			{"-0", "-0"},
			{"-0.000", "-0"},
			{"42", "42/1"},
			{"-42", "-42/1"},
			{"−42", "-42/1"},
			{"1.5", "15/10"},
			{".5", "5/10"},
			{"5.", "5/1"},
			{"1.25e2", "125/1"},
			{"1.25E-2", "125/10000"},
			{"1e+3", "1000/1"},
			{"0e5", "0"},
			{"-0e5", "-0"},

			// Repeating decimals
			{"0.[3]", "3/9"},
			{"0.1[6]", "15/90"},
			{"0.[142857]", "142857/999999"},
			{"1.[9]", "18/9"},
			{"0.[3]33", "3/9"},
			{"12[34.5]678", "1233300/999"},
			{"2[34.5]678", "234300/999"},
			{"1[23]4.5678", "122000/99"},
			{"123[456]", "123333000/999"},
			{"123[456]78", "123333000/999"},
			{"0.[0]", "0"},
			{"-0.1[6]", "-15/90"},
			{"0.1[6]e1", "15/9"},
		}
		for _, tt := range tests {
			got, err := ParseFraction(tt.s)
			require.NoError(t, err, "ParseFraction(%q)", tt.s)
			assert.Equal(t, tt.want, got.String(), "ParseFraction(%q)", tt.s)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"empty":                 "",
			"sign only":             "-",
			"point only":            ".",
			"double sign":           "--1",
			"double point":          "1.2.3",
			"letters":               "abc",
			"infinity":              "infinity",
			"hex":                   "0x1A",
			"missing exponent":      "1e",
			"exponent only":         "e5",
			"fractional exponent":   "1e1.5",
			"exponent overflow":     "1e99999999999999999999",
			"exponent range":        "1e100000",
			"unclosed bracket":      "0.[3",
			"unopened bracket":      "0.3]",
			"unopened before point": "1]2.3",
			"reversed brackets":     "0.]3[",
			"reversed no point":     "1]2[3",
			"empty brackets":        "0.[]",
			"nested brackets":       "0.[1[2]]",
			"letters in repetition": "0.[a]",
			"letters after bracket": "0.[3]x",
			"letters after point":   "1[2]3.x",
			"bracket in exponent":   "1e[2]",
			"fraction of decimals":  "1.5/2",
			"fraction with spaces":  "1 / 2",
			"three sides":           "1/2/3",
			"signed inf fraction":   "inf/2",
		}
		for name, s := range tests {
			_, err := ParseFraction(s)
			assert.ErrorIs(t, err, ErrInvalidFormat, "%v: ParseFraction(%q)", name, s)
		}
	})

	t.Run("exponent range", func(t *testing.T) {
		_, err := ParseFraction("1e100000")
		assert.ErrorIs(t, err, errExponentRange)
	})

	t.Run("slow path", func(t *testing.T) {
		tests := []struct {
			s    string
			want string
		}{
			{"18446744073709551616", "18446744073709551616/1"},
			{"1e20", "100000000000000000000/1"},
			{"1e-20", "1/100000000000000000000"},
			{"0.[12345678901234567890]", "12345678901234567890/99999999999999999999"},
			{"99999999999999999999/3", "99999999999999999999/3"},
		}
		for _, tt := range tests {
			got, err := ParseFraction(tt.s)
			require.NoError(t, err, "ParseFraction(%q)", tt.s)
			assert.Equal(t, tt.want, got.String(), "ParseFraction(%q)", tt.s)
		}
	})
}

func TestFraction_Conversions(t *testing.T) {
	t.Run("rational", func(t *testing.T) {
		tests := []struct {
			s, want string
		}{
			{"1/3", "1/3"},
			{"0.1[6]", "1/6"},
			{"2[34.5]678", "78100/333"},
			{"1.[9]", "2"},
			{"-0.50", "-1/2"},
			{"-0", "-0"},
			{"5/-0", "-inf"},
			{"nan", "nan"},
		}
		for _, tt := range tests {
			got := MustParseFraction(tt.s).Rational()
			assert.Equal(t, tt.want, got.String(), "ParseFraction(%q).Rational()", tt.s)
		}
	})

	t.Run("integer", func(t *testing.T) {
		got, err := MustParseFraction("1.20e1").Integer()
		require.NoError(t, err)
		assert.Equal(t, "12", got.String())

		got, err = MustParseFraction("-inf").Integer()
		require.NoError(t, err)
		assert.Equal(t, "-inf", got.String())

		_, err = MustParseFraction("1.5").Integer()
		assert.ErrorIs(t, err, ErrNotInteger)
	})

	t.Run("natural", func(t *testing.T) {
		got, err := MustParseFraction("6/2").Natural()
		require.NoError(t, err)
		assert.Equal(t, "3", got.String())

		got, err = MustParseFraction("-0").Natural()
		require.NoError(t, err)
		assert.True(t, got.IsZero())

		got, err = MustParseFraction("inf").Natural()
		require.NoError(t, err)
		assert.True(t, got.IsInf())

		_, err = MustParseFraction("-6/2").Natural()
		assert.ErrorIs(t, err, ErrNegative)
		_, err = MustParseFraction("-inf").Natural()
		assert.ErrorIs(t, err, ErrNegative)
		_, err = MustParseFraction("1/2").Natural()
		assert.ErrorIs(t, err, ErrNotInteger)
	})

	t.Run("accessors", func(t *testing.T) {
		f := MustParseFraction("-0.50")
		assert.True(t, f.IsNeg())
		assert.Equal(t, int64(50), f.Num().Int64())
		assert.Equal(t, int64(100), f.Denom().Int64())

		f = MustParseFraction("-inf")
		assert.True(t, f.IsInf())
		assert.Equal(t, int64(1), f.Num().Int64())
		assert.Equal(t, int64(0), f.Denom().Int64())

		f = MustParseFraction("nan")
		assert.True(t, f.IsNaN())
		assert.False(t, f.IsNeg())
	})
}

func TestMustParseFraction(t *testing.T) {
	assert.Panics(t, func() { MustParseFraction("1.2.3") })
	assert.Panics(t, func() { MustParseRational("") })
	assert.Panics(t, func() { MustParseInteger("x") })
	assert.Panics(t, func() { MustParseNatural("-1") })
}

func FuzzParseFraction(f *testing.F) {
	seeds := []string{
		"0", "-0", "1", "1/3", "-1/-3", "/", "0.1[6]", "2[34.5]678", "1[23]4.5678",
		"123[456]78", "1.25e-2", "9999999999999999999", "18446744073709551615",
		"0.[9]", "inf", "nan", "1e19", "1e20", "5/0", "0/0",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(
		func(t *testing.T, s string) {
			got, err := parseFractionFast(s)
			if err != nil {
				if errors.Is(err, errOverflow) {
					t.Skip() // overflow is an expected error in the fast path
				}
				_, slowErr := parseFractionSlow(s)
				if slowErr == nil {
					t.Errorf("parseFractionSlow(%q) succeeded, whereas parseFractionFast(%q) failed: %v", s, s, err)
				}
				return
			}
			want, err := parseFractionSlow(s)
			if err != nil {
				t.Errorf("parseFractionSlow(%q) failed: %v", s, err)
				return
			}
			if got.String() != want.String() {
				t.Errorf("parseFractionSlow(%q) = %v, whereas parseFractionFast(%q) = %v", s, want, s, got)
			}
		},
	)
}

func FuzzRational_Add(f *testing.F) {
	f.Add(int64(1), int64(3), int64(1), int64(6))
	f.Add(int64(-1), int64(2), int64(1), int64(2))
	f.Add(int64(0), int64(1), int64(0), int64(-1))
	f.Add(int64(5), int64(0), int64(-5), int64(0))

	f.Fuzz(
		func(t *testing.T, xn, xd, yn, yd int64) {
			if xd == 0 || yd == 0 || xn == 0 || yn == 0 {
				t.Skip()
				return
			}
			x, y := NewRational(xn, xd), NewRational(yn, yd)
			got := x.Add(y)

			xr, err := x.Big()
			require.NoError(t, err)
			yr, err := y.Big()
			require.NoError(t, err)
			want := NewRationalFromBig(xr.Add(xr, yr))
			if !got.Equal(want) {
				t.Errorf("%v.Add(%v) = %v, want %v", x, y, got, want)
			}
			if !SumRationals(x, y).Equal(got) {
				t.Errorf("SumRationals(%v, %v) = %v, want %v", x, y, SumRationals(x, y), got)
			}
		},
	)
}
