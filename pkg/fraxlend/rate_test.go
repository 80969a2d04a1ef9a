package fraxlend

import (
	"errors"
	"testing"

	"fraxlend/core"
	"fraxlend/pkg/number"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearRate(t *testing.T) {
	r, err := NewLinearRate(number.Int(100), number.Int(1100), number.Int(11100), number.Int(80000))
	require.Nil(t, err)

	assert.Equal(t, "100", r.NewRate(0, number.Int(0), number.Int(0)).String())
	assert.Equal(t, "600", r.NewRate(0, number.Int(40000), number.Int(0)).String())
	assert.Equal(t, "1100", r.NewRate(0, number.Int(80000), number.Int(0)).String())
	assert.Equal(t, "6100", r.NewRate(0, number.Int(90000), number.Int(0)).String())
	assert.Equal(t, "11100", r.NewRate(0, number.Int(100000), number.Int(0)).String())
}

func TestLinearRateValidation(t *testing.T) {
	_, err := NewLinearRate(number.Int(2000), number.Int(1100), number.Int(11100), number.Int(80000))
	assert.True(t, errors.Is(err, core.ErrInvalidConfig))

	_, err = NewLinearRate(number.Int(100), number.Int(1100), number.Int(11100), number.Int(0))
	assert.True(t, errors.Is(err, core.ErrInvalidConfig))

	_, err = NewLinearRate(number.Int(100), number.Int(1100), LinearRateMaxInterest.Add(number.Int(1)), number.Int(80000))
	assert.True(t, errors.Is(err, core.ErrInvalidConfig))
}

func TestVariableRate(t *testing.T) {
	r := NewVariableRate()
	old := number.Int(10000000000)

	assert.Equal(t, old.String(), r.NewRate(43200, number.Int(80000), old).String(), "inside the band")
	assert.Equal(t, old.String(), r.NewRate(0, number.Int(0), old).String(), "nothing elapsed")
	assert.Equal(t, "5000000000", r.NewRate(43200, number.Int(0), old).String(), "halves after a half life")
	assert.Equal(t, "20000000000", r.NewRate(43200, number.Int(100000), old).String(), "doubles after a half life")

	assert.Equal(t, VariableRateMinInterest.String(), r.NewRate(43200, number.Int(0), VariableRateMinInterest).String())
	assert.Equal(t, VariableRateMaxInterest.String(), r.NewRate(43200, number.Int(100000), VariableRateMaxInterest).String())
}

func TestJumpRate(t *testing.T) {
	flat, err := NewJumpRate(number.Decimal("0.031536"), number.Int(0), number.Int(0), number.Int(0))
	require.Nil(t, err)
	assert.Equal(t, "1000000000", flat.NewRate(0, number.Int(50000), number.Int(0)).String())

	kinked, err := NewJumpRate(number.Int(0), number.Decimal("0.31536"), number.Decimal("3.1536"), number.Decimal("0.8"))
	require.Nil(t, err)
	assert.Equal(t, "5000000000", kinked.NewRate(0, number.Int(50000), number.Int(0)).String())
	assert.Equal(t, "18000000000", kinked.NewRate(0, number.Int(90000), number.Int(0)).String())

	_, err = NewJumpRate(number.Int(0), number.Int(0), number.Int(0), number.Int(2))
	assert.True(t, errors.Is(err, core.ErrInvalidConfig))
}

func TestNewRateCalculator(t *testing.T) {
	calc, err := NewRateCalculator(core.Rate{})
	require.Nil(t, err)
	assert.Equal(t, "variable", calc.Name())

	calc, err = NewRateCalculator(core.Rate{
		Name:              "linear",
		MinRate:           "100",
		VertexRate:        "1100",
		MaxRate:           "11100",
		VertexUtilization: "80000",
	})
	require.Nil(t, err)
	assert.Equal(t, "linear", calc.Name())

	_, err = NewRateCalculator(core.Rate{Name: "cubic"})
	assert.True(t, errors.Is(err, core.ErrInvalidConfig))
}
