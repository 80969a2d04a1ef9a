package fraxlend

import (
	"fraxlend/core"
	"fraxlend/pkg/number"

	"github.com/shopspring/decimal"
)

// AccrueResult outcome of one accrual
type AccrueResult struct {
	InterestEarned decimal.Decimal
	FeesAmount     decimal.Decimal
	FeesShare      decimal.Decimal
	OldRate        decimal.Decimal
	NewRate        decimal.Decimal
	DeltaTime      int64
	Utilization    decimal.Decimal
	// false when nothing elapsed since the last accrual
	Accrued bool
	// false when the interest was dropped to keep totals within uint128
	InterestAdded bool
}

// Accrue accrue interest of the pair up to now
//
// Interest is computed with the rate of the elapsed period, then the rate is
// recomputed from the post-accrual utilization.
func Accrue(state *core.PairState, params *core.PairParams, calculator core.RateCalculator, now, block int64) AccrueResult {
	info := &state.RateInfo
	result := AccrueResult{
		InterestEarned: decimal.Zero,
		FeesAmount:     decimal.Zero,
		FeesShare:      decimal.Zero,
		OldRate:        info.RatePerSec,
		NewRate:        info.RatePerSec,
		Utilization:    Utilization(state.TotalAsset, state.TotalBorrow),
	}

	deltaTime := now - info.LastTimestamp
	if deltaTime <= 0 {
		return result
	}

	result.Accrued = true
	result.DeltaTime = deltaTime

	interest := number.Div(
		state.TotalBorrow.Amount.Mul(info.RatePerSec).Mul(decimal.NewFromInt(deltaTime)),
		RatePrecision,
		false,
	)

	borrowAmount := state.TotalBorrow.Amount.Add(interest)
	assetAmount := state.TotalAsset.Amount.Add(interest)
	if number.Fits(borrowAmount, 128) && number.Fits(assetAmount, 128) {
		result.InterestAdded = true
		result.InterestEarned = interest

		state.TotalBorrow.Amount = borrowAmount
		state.TotalAsset.Amount = assetAmount

		if info.FeeToProtocolRate.IsPositive() && interest.IsPositive() {
			feesAmount := number.MulDiv(interest, info.FeeToProtocolRate, FeePrecision, false)
			result.FeesAmount = feesAmount

			if denominator := assetAmount.Sub(feesAmount); state.TotalAsset.Shares.IsPositive() && denominator.IsPositive() {
				feesShare := number.MulDiv(feesAmount, state.TotalAsset.Shares, denominator, false)
				result.FeesShare = feesShare

				state.TotalAsset.Shares = state.TotalAsset.Shares.Add(feesShare)
				state.SetBalance(params.Address, state.BalanceOf(params.Address).Add(feesShare))
			}
		}
	}

	result.Utilization = Utilization(state.TotalAsset, state.TotalBorrow)
	if params.IsPastMaturity(now) {
		result.NewRate = params.PenaltyRate
	} else {
		result.NewRate = calculator.NewRate(deltaTime, result.Utilization, info.RatePerSec)
	}

	info.RatePerSec = result.NewRate
	info.LastTimestamp = now
	info.LastBlock = block
	return result
}
