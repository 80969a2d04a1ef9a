package views

import (
	"fraxlend/core"
	"fraxlend/pkg/fraxlend"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Position borrower & lender position of an address
type Position struct {
	Address           string          `json:"address"`
	BorrowShares      decimal.Decimal `json:"borrow_shares"`
	BorrowAmount      decimal.Decimal `json:"borrow_amount"`
	CollateralBalance decimal.Decimal `json:"collateral_balance"`
	// scaled by LTV_PRECISION, -1 with debt but no collateral value
	LTV         decimal.Decimal `json:"ltv"`
	Solvent     bool            `json:"solvent"`
	AssetShares decimal.Decimal `json:"asset_shares"`
	AssetAmount decimal.Decimal `json:"asset_amount"`
}

// PositionView render the position of addr at the cached exchange rate
func PositionView(params core.PairParams, state *core.PairState, addr common.Address) Position {
	position := state.PositionOf(addr)
	shares := state.BalanceOf(addr)
	rate := state.ExchangeRate.ExchangeRate

	return Position{
		Address:           addr.Hex(),
		BorrowShares:      position.BorrowShares,
		BorrowAmount:      fraxlend.ToAmount(state.TotalBorrow, position.BorrowShares, true),
		CollateralBalance: position.CollateralBalance,
		LTV:               fraxlend.LTV(state.TotalBorrow, position, rate),
		Solvent:           fraxlend.IsSolvent(state.TotalBorrow, position, rate, params.MaxLTV),
		AssetShares:       shares,
		AssetAmount:       fraxlend.ToAmount(state.TotalAsset, shares, false),
	}
}
