package number

import (
	"testing"

	"github.com/bmizerany/assert"
	"github.com/shopspring/decimal"
)

func TestCeil(t *testing.T) {
	data := map[string]string{
		"0.10304":     "0.11",
		"0.100000001": "0.11",
		"0.108":       "0.11",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			c := Ceil(Decimal(k), 2)
			assert.Equal(t, v, c.String(), "should be ceil")
		})
	}
}

func TestDiv(t *testing.T) {
	cases := []struct {
		a, b    int64
		roundUp bool
		want    int64
	}{
		{10, 3, false, 3},
		{10, 3, true, 4},
		{9, 3, true, 3},
		{9, 3, false, 3},
		{0, 7, true, 0},
		{1, 1000, true, 1},
		{1, 1000, false, 0},
		{7, 0, true, 0},
		{7, 0, false, 0},
	}

	for _, c := range cases {
		got := Div(Int(c.a), Int(c.b), c.roundUp)
		assert.Equal(t, Int(c.want).String(), got.String())
	}
}

func TestMulDivIsExact(t *testing.T) {
	// 16 digit decimal division would round this quotient up to 5
	a := Decimal("49999999999999999999")
	got := MulDiv(a, Int(1), Pow10(19), false)
	assert.Equal(t, "4", got.String())

	got = MulDiv(a, Int(1), Pow10(19), true)
	assert.Equal(t, "5", got.String())
}

func TestFits(t *testing.T) {
	max128 := MaxUint(128)
	assert.Equal(t, "340282366920938463463374607431768211455", max128.String())
	assert.Equal(t, true, Fits(max128, 128))
	assert.Equal(t, false, Fits(max128.Add(decimal.New(1, 0)), 128))
	assert.Equal(t, false, Fits(Int(-1), 128))
	assert.Equal(t, true, Fits(decimal.Zero, 8))
	assert.Equal(t, false, Fits(Pow10(80), 256))
}

func TestIsInteger(t *testing.T) {
	assert.Equal(t, true, IsInteger(Int(12)))
	assert.Equal(t, false, IsInteger(Decimal("1.5")))
	assert.Equal(t, false, IsInteger(Int(-2)))
}
