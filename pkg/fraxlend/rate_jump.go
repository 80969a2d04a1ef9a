package fraxlend

import (
	"fmt"

	"fraxlend/core"
	"fraxlend/pkg/number"

	"github.com/shopspring/decimal"
)

// JumpRate kinked curve, parameters are per year decimals (0.025 = 2.5%)
type JumpRate struct {
	BaseRate       decimal.Decimal
	Multiplier     decimal.Decimal
	JumpMultiplier decimal.Decimal
	Kink           decimal.Decimal
}

// NewJumpRate validate & build a jump curve
func NewJumpRate(baseRate, multiplier, jumpMultiplier, kink decimal.Decimal) (*JumpRate, error) {
	if baseRate.IsNegative() || multiplier.IsNegative() || jumpMultiplier.IsNegative() {
		return nil, fmt.Errorf("%w: negative jump rate parameter", core.ErrInvalidConfig)
	}

	if kink.IsNegative() || kink.GreaterThan(decimal.New(1, 0)) {
		return nil, fmt.Errorf("%w: kink out of [0, 1]", core.ErrInvalidConfig)
	}

	return &JumpRate{
		BaseRate:       baseRate,
		Multiplier:     multiplier,
		JumpMultiplier: jumpMultiplier,
		Kink:           kink,
	}, nil
}

func (r *JumpRate) Name() string {
	return "jump"
}

// NewRate per year rate at utilization, converted to per second scaled by RATE_PRECISION
func (r *JumpRate) NewRate(_ int64, utilization, _ decimal.Decimal) decimal.Decimal {
	util := utilization.Div(UtilPrecision)

	var yearly decimal.Decimal
	if r.Kink.IsZero() || util.LessThanOrEqual(r.Kink) {
		yearly = util.Mul(r.Multiplier).Add(r.BaseRate)
	} else {
		normal := r.Kink.Mul(r.Multiplier).Add(r.BaseRate)
		yearly = util.Sub(r.Kink).Mul(r.JumpMultiplier).Add(normal)
	}

	return number.Div(yearly.Mul(RatePrecision).Truncate(0), decimal.NewFromInt(SecondsPerYear), false)
}
