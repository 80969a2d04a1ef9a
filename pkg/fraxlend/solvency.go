package fraxlend

import (
	"fraxlend/core"
	"fraxlend/pkg/number"

	"github.com/shopspring/decimal"
)

// IsSolvent solvency of the position at the exchange rate
//
// owed * LTV_PRECISION <= collateral * rate / EXCHANGE_PRECISION * maxLTV
func IsSolvent(totalBorrow core.VaultAccount, position core.UserPosition, exchangeRate, maxLTV decimal.Decimal) bool {
	if maxLTV.IsZero() {
		return true
	}

	if position.BorrowShares.IsZero() {
		return true
	}

	if position.CollateralBalance.IsZero() {
		return false
	}

	owed := ToAmount(totalBorrow, position.BorrowShares, true)
	collateralValue := number.MulDiv(position.CollateralBalance, exchangeRate, ExchangePrecision, false)
	return owed.Mul(LTVPrecision).LessThanOrEqual(collateralValue.Mul(maxLTV))
}

// LTV loan to value of the position, scaled by LTV_PRECISION
//
// zero without debt, -1 with debt but no collateral value.
func LTV(totalBorrow core.VaultAccount, position core.UserPosition, exchangeRate decimal.Decimal) decimal.Decimal {
	if position.BorrowShares.IsZero() {
		return decimal.Zero
	}

	collateralValue := number.MulDiv(position.CollateralBalance, exchangeRate, ExchangePrecision, false)
	if collateralValue.IsZero() {
		return decimal.NewFromInt(-1)
	}

	owed := ToAmount(totalBorrow, position.BorrowShares, true)
	return number.MulDiv(owed, LTVPrecision, collateralValue, true)
}
