package fraxlend

import (
	"fraxlend/core"
	"fraxlend/pkg/number"

	"github.com/shopspring/decimal"
)

// ToShares convert amount to shares of the vault
//
// 1:1 while the vault is empty.
func ToShares(total core.VaultAccount, amount decimal.Decimal, roundUp bool) decimal.Decimal {
	if total.Shares.IsZero() || total.Amount.IsZero() {
		return amount
	}

	return number.MulDiv(amount, total.Shares, total.Amount, roundUp)
}

// ToAmount convert shares to amount of the vault
func ToAmount(total core.VaultAccount, shares decimal.Decimal, roundUp bool) decimal.Decimal {
	if total.Shares.IsZero() {
		return shares
	}

	return number.MulDiv(shares, total.Amount, total.Shares, roundUp)
}

// Utilization borrowed / lent, scaled by UtilPrecision
func Utilization(totalAsset, totalBorrow core.VaultAccount) decimal.Decimal {
	if totalAsset.Amount.IsZero() {
		return decimal.Zero
	}

	return number.MulDiv(UtilPrecision, totalBorrow.Amount, totalAsset.Amount, false)
}

// Available idle asset held by the pair
func Available(totalAsset, totalBorrow core.VaultAccount) decimal.Decimal {
	return totalAsset.Amount.Sub(totalBorrow.Amount)
}
