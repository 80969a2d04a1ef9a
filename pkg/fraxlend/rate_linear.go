package fraxlend

import (
	"fmt"

	"fraxlend/core"
	"fraxlend/pkg/number"

	"github.com/shopspring/decimal"
)

// LinearRateMaxInterest upper bound of any linear rate, ~10000% per year
var LinearRateMaxInterest = number.Int(146248508681)

// LinearRate two slope curve around a vertex utilization
type LinearRate struct {
	MinRate           decimal.Decimal
	VertexRate        decimal.Decimal
	MaxRate           decimal.Decimal
	VertexUtilization decimal.Decimal
}

// NewLinearRate validate & build a linear curve
func NewLinearRate(minRate, vertexRate, maxRate, vertexUtilization decimal.Decimal) (*LinearRate, error) {
	switch {
	case minRate.IsNegative(), minRate.GreaterThan(vertexRate), vertexRate.GreaterThan(maxRate):
		return nil, fmt.Errorf("%w: linear rate requires min <= vertex <= max", core.ErrInvalidConfig)
	case maxRate.GreaterThan(LinearRateMaxInterest):
		return nil, fmt.Errorf("%w: linear max rate over %s", core.ErrInvalidConfig, LinearRateMaxInterest)
	case !vertexUtilization.IsPositive(), !vertexUtilization.LessThan(UtilPrecision):
		return nil, fmt.Errorf("%w: linear vertex utilization out of (0, %s)", core.ErrInvalidConfig, UtilPrecision)
	}

	return &LinearRate{
		MinRate:           minRate,
		VertexRate:        vertexRate,
		MaxRate:           maxRate,
		VertexUtilization: vertexUtilization,
	}, nil
}

func (r *LinearRate) Name() string {
	return "linear"
}

// NewRate rate ignores elapsed time & the old rate
func (r *LinearRate) NewRate(_ int64, utilization, _ decimal.Decimal) decimal.Decimal {
	switch {
	case utilization.LessThan(r.VertexUtilization):
		slope := number.MulDiv(r.VertexRate.Sub(r.MinRate), UtilPrecision, r.VertexUtilization, false)
		return r.MinRate.Add(number.MulDiv(utilization, slope, UtilPrecision, false))
	case utilization.GreaterThan(r.VertexUtilization):
		slope := number.MulDiv(r.MaxRate.Sub(r.VertexRate), UtilPrecision, UtilPrecision.Sub(r.VertexUtilization), false)
		return r.VertexRate.Add(number.MulDiv(utilization.Sub(r.VertexUtilization), slope, UtilPrecision, false))
	default:
		return r.VertexRate
	}
}
