package xnum

import (
	"encoding"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNatural_ZeroValue(t *testing.T) {
	got := Natural{}
	assert.True(t, got.IsZero())
	assert.True(t, got.Equal(NewNatural(0)))
	assert.Equal(t, "0", got.String())
}

func TestNatural_Interfaces(t *testing.T) {
	var x any = Natural{}
	assert.Implements(t, (*fmt.Stringer)(nil), x)
	assert.Implements(t, (*encoding.TextMarshaler)(nil), x)
	assert.Implements(t, (*encoding.TextUnmarshaler)(nil), &Natural{})
}

func TestNaturalOf(t *testing.T) {
	assert.Equal(t, "255", NaturalOf(uint8(255)).String())
	assert.Equal(t, "18446744073709551615", NaturalOf(uint64(1<<64-1)).String())
	assert.True(t, NaturalOf(uint(0)).IsZero())
}

func TestNewNaturalFromBig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		x, err := NewNaturalFromBig(big.NewInt(42))
		require.NoError(t, err)
		assert.Equal(t, "42", x.String())

		x, err = NewNaturalFromBig(new(big.Int))
		require.NoError(t, err)
		assert.True(t, x.IsZero())
	})

	t.Run("error", func(t *testing.T) {
		_, err := NewNaturalFromBig(big.NewInt(-1))
		assert.ErrorIs(t, err, ErrNegative)
	})
}

func TestParseNatural(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want string
		}{
			{"0", "0"},
			{"000", "0"},
			{"1", "1"},
			{"123456789012345678901234567890", "123456789012345678901234567890"},
			{"0x1A", "26"},
			{"0xff", "255"},
			{"inf", "inf"},
			{"INF", "inf"},
			{"NaN", "nan"},
		}
		for _, tt := range tests {
			got, err := ParseNatural(tt.s)
			require.NoError(t, err, "ParseNatural(%q)", tt.s)
			assert.Equal(t, tt.want, got.String(), "ParseNatural(%q)", tt.s)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"",
			"-1",
			"+1",
			"1.5",
			"0x",
			"0xg",
			"abc",
			"-inf",
			"1_000",
		}
		for _, s := range tests {
			_, err := ParseNatural(s)
			assert.ErrorIs(t, err, ErrInvalidFormat, "ParseNatural(%q)", s)
		}
	})
}

func TestParseNaturalBase(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base int
			s    string
			want string
		}{
			{2, "1010", "10"},
			{8, "777", "511"},
			{16, "ff", "255"},
			{36, "z", "35"},
			{10, "Inf", "inf"},
		}
		for _, tt := range tests {
			got, err := ParseNaturalBase(tt.base, tt.s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String(), "ParseNaturalBase(%v, %q)", tt.base, tt.s)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := ParseNaturalBase(2, "102")
		assert.ErrorIs(t, err, ErrInvalidFormat)
		for _, base := range []int{-1, 0, 1, 63} {
			_, err = ParseNaturalBase(base, "0")
			assert.ErrorIs(t, err, ErrInvalidFormat, "ParseNaturalBase(%v, \"0\")", base)
			assert.ErrorIs(t, err, errBaseRange, "ParseNaturalBase(%v, \"0\")", base)
		}
	})
}

func TestNatural_Text(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x    Natural
			want string
		}{
			{NaNNatural(), "nan"},
			{InfNatural(), "inf"},
			{Natural{}, "0"},
			{NewNatural(26), "0x1a"},
			{MustParseNatural("340282366920938463463374607431768211456"), "0x100000000000000000000000000000000"},
		}
		for _, tt := range tests {
			text, err := tt.x.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(text))

			var got Natural
			require.NoError(t, got.UnmarshalText(text))
			assert.Equal(t, tt.x.String(), got.String())
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "26", "0x", "-0x1", "Inf", "0xzz"}
		for _, s := range tests {
			var got Natural
			err := got.UnmarshalText([]byte(s))
			assert.ErrorIs(t, err, ErrInvalidFormat, "UnmarshalText(%q)", s)
		}
	})
}

func TestNatural_Add(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "0", "0"},
		{"0", "5", "5"},
		{"5", "0", "5"},
		{"2", "3", "5"},
		{"18446744073709551615", "1", "18446744073709551616"},
		{"inf", "5", "inf"},
		{"5", "inf", "inf"},
		{"inf", "inf", "inf"},
		{"nan", "5", "nan"},
		{"0", "nan", "nan"},
		{"inf", "nan", "nan"},
		{"nan", "inf", "nan"},
	}
	for _, tt := range tests {
		x, y := MustParseNatural(tt.x), MustParseNatural(tt.y)
		got := x.Add(y)
		assert.Equal(t, tt.want, got.String(), "%v.Add(%v)", x, y)
	}
}

func TestNatural_Mul(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "5", "0"},
		{"3", "4", "12"},
		{"4294967296", "4294967296", "18446744073709551616"},
		{"inf", "5", "inf"},
		{"inf", "inf", "inf"},
		{"0", "inf", "nan"},
		{"inf", "0", "nan"},
		{"nan", "0", "nan"},
		{"0", "nan", "nan"},
	}
	for _, tt := range tests {
		x, y := MustParseNatural(tt.x), MustParseNatural(tt.y)
		got := x.Mul(y)
		assert.Equal(t, tt.want, got.String(), "%v.Mul(%v)", x, y)
	}
}

func TestNatural_CheckedSub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, want string
		}{
			{"5", "3", "2"},
			{"5", "5", "0"},
			{"5", "0", "5"},
			{"0", "0", "0"},
			{"inf", "5", "inf"},
			{"inf", "0", "inf"},
			{"inf", "inf", "nan"},
			{"nan", "5", "nan"},
			{"5", "nan", "nan"},
		}
		for _, tt := range tests {
			x, y := MustParseNatural(tt.x), MustParseNatural(tt.y)
			got, ok := x.CheckedSub(y)
			require.True(t, ok, "%v.CheckedSub(%v)", x, y)
			assert.Equal(t, tt.want, got.String(), "%v.CheckedSub(%v)", x, y)
		}
	})

	t.Run("underflow", func(t *testing.T) {
		tests := []struct {
			x, y string
		}{
			{"3", "5"},
			{"0", "1"},
			{"5", "inf"},
			{"0", "inf"},
		}
		for _, tt := range tests {
			x, y := MustParseNatural(tt.x), MustParseNatural(tt.y)
			_, ok := x.CheckedSub(y)
			assert.False(t, ok, "%v.CheckedSub(%v)", x, y)

			_, err := x.Sub(y)
			assert.ErrorIs(t, err, ErrUnderflow, "%v.Sub(%v)", x, y)
		}
	})
}

func TestNatural_Pow(t *testing.T) {
	tests := []struct {
		x    string
		exp  uint64
		want string
	}{
		{"2", 10, "1024"},
		{"2", 64, "18446744073709551616"},
		{"7", 1, "7"},
		{"7", 0, "1"},
		{"0", 0, "1"},
		{"inf", 0, "1"},
		{"0", 3, "0"},
		{"inf", 3, "inf"},
		{"nan", 0, "nan"},
		{"nan", 2, "nan"},
	}
	for _, tt := range tests {
		x := MustParseNatural(tt.x)
		got := x.Pow(tt.exp)
		assert.Equal(t, tt.want, got.String(), "%v.Pow(%v)", x, tt.exp)
	}
}

func TestNatural_Cmp(t *testing.T) {
	tests := []struct {
		x, y   string
		want   int
		wantOK bool
	}{
		{"0", "0", 0, true},
		{"0", "1", -1, true},
		{"1", "0", 1, true},
		{"2", "10", -1, true},
		{"10", "10", 0, true},
		{"inf", "inf", 0, true},
		{"inf", "100", 1, true},
		{"0", "inf", -1, true},
		{"nan", "nan", 0, false},
		{"nan", "1", 0, false},
		{"1", "nan", 0, false},
	}
	for _, tt := range tests {
		x, y := MustParseNatural(tt.x), MustParseNatural(tt.y)
		got, ok := x.Cmp(y)
		assert.Equal(t, tt.wantOK, ok, "%v.Cmp(%v)", x, y)
		assert.Equal(t, tt.want, got, "%v.Cmp(%v)", x, y)
		assert.Equal(t, tt.wantOK && tt.want == 0, x.Equal(y), "%v.Equal(%v)", x, y)
	}
}

func TestNatural_Sign(t *testing.T) {
	tests := []struct {
		x                string
		sign, signStrict int
	}{
		{"nan", 0, 0},
		{"0", 0, 1},
		{"5", 1, 1},
		{"inf", 1, 1},
	}
	for _, tt := range tests {
		x := MustParseNatural(tt.x)
		assert.Equal(t, tt.sign, x.Sign(), "%v.Sign()", x)
		assert.Equal(t, tt.signStrict, x.SignStrict(), "%v.SignStrict()", x)
	}
}

func TestNatural_Conversions(t *testing.T) {
	t.Run("widening", func(t *testing.T) {
		tests := []string{"nan", "inf", "0", "12345678901234567890123"}
		for _, s := range tests {
			x := MustParseNatural(s)
			assert.Equal(t, s, x.Integer().String())
			assert.Equal(t, s, x.Rational().String())
		}
	})

	t.Run("narrowing", func(t *testing.T) {
		b, err := NewNatural(7).Big()
		require.NoError(t, err)
		assert.Equal(t, int64(7), b.Int64())

		_, err = InfNatural().Big()
		assert.ErrorIs(t, err, ErrNotFinite)
		_, err = NaNNatural().Big()
		assert.ErrorIs(t, err, ErrNotFinite)
	})

	t.Run("payload is not shared", func(t *testing.T) {
		x := NewNatural(7)
		b, err := x.Big()
		require.NoError(t, err)
		b.SetInt64(100)
		assert.Equal(t, "7", x.String())
	})
}

func TestSumNaturals(t *testing.T) {
	assert.True(t, SumNaturals().IsZero())
	assert.Equal(t, "15", SumNaturals(NewNatural(1), NewNatural(2), NewNatural(3), NewNatural(4), NewNatural(5)).String())
	assert.Equal(t, "inf", SumNaturals(NewNatural(1), InfNatural()).String())
	assert.True(t, SumNaturals(InfNatural(), NaNNatural()).IsNaN())
}

func TestProductNaturals(t *testing.T) {
	assert.Equal(t, "1", ProductNaturals().String())
	assert.Equal(t, "120", ProductNaturals(NewNatural(1), NewNatural(2), NewNatural(3), NewNatural(4), NewNatural(5)).String())
	assert.True(t, ProductNaturals(Natural{}, InfNatural()).IsNaN())
}
