package fraxlend

import (
	"fraxlend/core"
	"fraxlend/pkg/number"

	"github.com/shopspring/decimal"
)

// LiquidationQuote settlement of a liquidation
type LiquidationQuote struct {
	SharesToLiquidate       decimal.Decimal
	CollateralForLiquidator decimal.Decimal
	AmountLiquidatorToRepay decimal.Decimal
	// remaining borrower shares written off as bad debt
	SharesToAdjust decimal.Decimal
	AmountToAdjust decimal.Decimal
	// clean when the collateral could not cover the optimistic payout
	Clean bool
	// total borrow after the write off & the repayment
	TotalBorrow core.VaultAccount
	Position    core.UserPosition
}

// QuoteLiquidation size a liquidation of sharesToLiquidate from the position
//
// The quote either closes the position (no debt left) or leaves it solvent,
// otherwise it fails with ErrLiquidationInsufficient.
func QuoteLiquidation(
	totalBorrow core.VaultAccount,
	position core.UserPosition,
	sharesToLiquidate, exchangeRate, maxLTV, cleanFee, dirtyFee decimal.Decimal,
) (*LiquidationQuote, error) {
	if err := Require(sharesToLiquidate.IsPositive(), core.ErrZeroAmount, "shares to liquidate"); err != nil {
		return nil, err
	}

	if err := Require(sharesToLiquidate.LessThanOrEqual(position.BorrowShares), core.ErrInsufficientBorrowShares, ""); err != nil {
		return nil, err
	}

	if err := Require(exchangeRate.IsPositive(), core.ErrOracleInvalid, "zero exchange rate"); err != nil {
		return nil, err
	}

	balance := position.CollateralBalance
	amountInCollateral := number.MulDiv(ToAmount(totalBorrow, sharesToLiquidate, false), ExchangePrecision, exchangeRate, false)
	optimistic := number.MulDiv(amountInCollateral, LiqPrecision.Add(cleanFee), LiqPrecision, false)

	quote := &LiquidationQuote{
		SharesToLiquidate: sharesToLiquidate,
		SharesToAdjust:    decimal.Zero,
		AmountToAdjust:    decimal.Zero,
	}

	remaining := position.BorrowShares.Sub(sharesToLiquidate)
	if leftover := balance.Sub(optimistic); !leftover.IsPositive() {
		quote.Clean = true
		quote.CollateralForLiquidator = balance
		quote.SharesToAdjust = remaining
	} else {
		collateral := number.MulDiv(amountInCollateral, LiqPrecision.Add(dirtyFee), LiqPrecision, false)
		if collateral.GreaterThanOrEqual(balance) {
			collateral = balance
			quote.SharesToAdjust = remaining
		}

		quote.CollateralForLiquidator = collateral
	}

	quote.AmountLiquidatorToRepay = ToAmount(totalBorrow, sharesToLiquidate, true)
	if quote.SharesToAdjust.IsPositive() {
		quote.AmountToAdjust = ToAmount(totalBorrow, quote.SharesToAdjust, false)
	}

	after := totalBorrow
	after.Amount = decimal.Max(after.Amount.Sub(quote.AmountToAdjust).Sub(quote.AmountLiquidatorToRepay), decimal.Zero)
	after.Shares = after.Shares.Sub(sharesToLiquidate).Sub(quote.SharesToAdjust)
	quote.TotalBorrow = after

	quote.Position = core.UserPosition{
		BorrowShares:      position.BorrowShares.Sub(sharesToLiquidate).Sub(quote.SharesToAdjust),
		CollateralBalance: balance.Sub(quote.CollateralForLiquidator),
	}

	if !quote.Position.BorrowShares.IsZero() && !IsSolvent(after, quote.Position, exchangeRate, maxLTV) {
		return nil, Require(false, core.ErrLiquidationInsufficient, "position left insolvent")
	}

	return quote, nil
}
