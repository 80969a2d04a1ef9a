package views

import (
	"sort"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Pair pair view
type Pair struct {
	Address             string                `json:"address"`
	Name                string                `json:"name"`
	Symbol              string                `json:"symbol"`
	Asset               string                `json:"asset"`
	Collateral          string                `json:"collateral"`
	MaxLTV              decimal.Decimal       `json:"max_ltv"`
	CleanLiquidationFee decimal.Decimal       `json:"clean_liquidation_fee"`
	DirtyLiquidationFee decimal.Decimal       `json:"dirty_liquidation_fee"`
	MaturityDate        int64                 `json:"maturity_date,omitempty"`
	PenaltyRate         decimal.Decimal       `json:"penalty_rate"`
	TotalAsset          core.VaultAccount     `json:"total_asset"`
	TotalBorrow         core.VaultAccount     `json:"total_borrow"`
	TotalCollateral     decimal.Decimal       `json:"total_collateral"`
	Utilization         decimal.Decimal       `json:"utilization"`
	RateInfo            core.RateInfo         `json:"current_rate_info"`
	ExchangeRate        core.ExchangeRateInfo `json:"exchange_rate_info"`
	Owner               string                `json:"owner"`
	TimeLock            string                `json:"time_lock"`
	Paused              bool                  `json:"paused"`
	BorrowerWhitelist   bool                  `json:"borrower_whitelist_active"`
	LenderWhitelist     bool                  `json:"lender_whitelist_active"`
	ApprovedBorrowers   []string              `json:"approved_borrowers"`
	ApprovedLenders     []string              `json:"approved_lenders"`
	Swappers            []string              `json:"swappers"`
	Sequence            uint64                `json:"sequence"`
}

// PairView render pair params & state
func PairView(params core.PairParams, state *core.PairState) Pair {
	return Pair{
		Address:             params.Address.Hex(),
		Name:                params.Name,
		Symbol:              params.Symbol,
		Asset:               params.Asset.Hex(),
		Collateral:          params.Collateral.Hex(),
		MaxLTV:              params.MaxLTV,
		CleanLiquidationFee: params.CleanLiquidationFee,
		DirtyLiquidationFee: params.DirtyLiquidationFee,
		MaturityDate:        params.MaturityDate,
		PenaltyRate:         params.PenaltyRate,
		TotalAsset:          state.TotalAsset,
		TotalBorrow:         state.TotalBorrow,
		TotalCollateral:     state.TotalCollateral,
		Utilization:         fraxlend.Utilization(state.TotalAsset, state.TotalBorrow),
		RateInfo:            state.RateInfo,
		ExchangeRate:        state.ExchangeRate,
		Owner:               hex(state.Access.Owner),
		TimeLock:            hex(state.Access.TimeLock),
		Paused:              state.Access.Paused,
		BorrowerWhitelist:   state.Access.BorrowerWhitelistActive,
		LenderWhitelist:     state.Access.LenderWhitelistActive,
		ApprovedBorrowers:   hexes(state.Access.ApprovedBorrowers),
		ApprovedLenders:     hexes(state.Access.ApprovedLenders),
		Swappers:            hexes(state.Access.Swappers),
		Sequence:            state.Sequence,
	}
}

func hex(addr common.Address) string {
	if addr == (common.Address{}) {
		return ""
	}

	return addr.Hex()
}

func hexes(flags map[common.Address]bool) []string {
	addrs := core.Addresses(flags)
	hs := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		hs = append(hs, addr.Hex())
	}

	sort.Strings(hs)
	return hs
}
