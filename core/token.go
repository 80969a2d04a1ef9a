package core

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Token fungible token the pair moves, asset or collateral
//
// Every call names the acting account explicitly.
type Token interface {
	Address() common.Address
	BalanceOf(ctx context.Context, owner common.Address) (decimal.Decimal, error)
	// Transfer move amount from -> to, from is the acting account
	Transfer(ctx context.Context, from, to common.Address, amount decimal.Decimal) error
	// TransferFrom spender moves amount from -> to, spending the allowance of from
	TransferFrom(ctx context.Context, spender, from, to common.Address, amount decimal.Decimal) error
	Approve(ctx context.Context, owner, spender common.Address, amount decimal.Decimal) error
}

// Swapper swap venue used by the leveraged flows
type Swapper interface {
	Address() common.Address
	// SwapExactTokensForTokens pull amountIn of path[0] from caller, send at least
	// minOut of path[len-1] to `to`, returns the amounts along the path
	SwapExactTokensForTokens(
		ctx context.Context,
		caller common.Address,
		amountIn, minOut decimal.Decimal,
		path []common.Address,
		to common.Address,
		deadline int64,
	) ([]decimal.Decimal, error)
}
