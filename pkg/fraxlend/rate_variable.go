package fraxlend

import (
	"fraxlend/pkg/number"

	"github.com/shopspring/decimal"
)

var (
	// VariableRateMinUtil below this utilization the rate decays
	VariableRateMinUtil = number.Int(75000)
	// VariableRateMaxUtil above this utilization the rate grows
	VariableRateMaxUtil = number.Int(85000)
	// VariableRateMinInterest ~0.25% per year
	VariableRateMinInterest = number.Int(79123523)
	// VariableRateMaxInterest ~10000% per year
	VariableRateMaxInterest = number.Int(146248508681)
	// VariableRateHalfLife 12 hours, scaled by 1e36
	VariableRateHalfLife = number.Int(43200).Mul(number.Pow10(36))
)

// VariableRate rate halves (doubles) every 12 hours at full under (over) utilization
type VariableRate struct{}

// NewVariableRate variable curve
func NewVariableRate() *VariableRate {
	return &VariableRate{}
}

func (r *VariableRate) Name() string {
	return "variable"
}

func (r *VariableRate) NewRate(deltaTime int64, utilization, oldRatePerSec decimal.Decimal) decimal.Decimal {
	dt := decimal.NewFromInt(deltaTime)

	switch {
	case utilization.LessThan(VariableRateMinUtil):
		delta := number.MulDiv(VariableRateMinUtil.Sub(utilization), number.Pow10(18), VariableRateMinUtil, false)
		decayGrowth := VariableRateHalfLife.Add(delta.Mul(delta).Mul(dt))
		rate := number.MulDiv(oldRatePerSec, VariableRateHalfLife, decayGrowth, false)
		return decimal.Max(rate, VariableRateMinInterest)
	case utilization.GreaterThan(VariableRateMaxUtil):
		delta := number.MulDiv(utilization.Sub(VariableRateMaxUtil), number.Pow10(18), UtilPrecision.Sub(VariableRateMaxUtil), false)
		decayGrowth := VariableRateHalfLife.Add(delta.Mul(delta).Mul(dt))
		rate := number.MulDiv(oldRatePerSec, decayGrowth, VariableRateHalfLife, false)
		return decimal.Min(rate, VariableRateMaxInterest)
	default:
		return oldRatePerSec
	}
}
