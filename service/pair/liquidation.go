package pair

import (
	"context"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Liquidate repay sharesToLiquidate of an insolvent borrower in exchange for its collateral
//
// A liquidation either closes the position or leaves it solvent. When the
// collateral runs out the remaining debt is written off against the lenders.
func (p *Pair) Liquidate(
	ctx context.Context,
	caller common.Address,
	sharesToLiquidate decimal.Decimal,
	deadline int64,
	borrower common.Address,
) (decimal.Decimal, error) {
	var collateralForLiquidator decimal.Decimal
	err := p.transact(ctx, "liquidate", func(t *txn) error {
		if err := t.requireExternal(caller, borrower); err != nil {
			return err
		}

		if t.now > deadline {
			return core.ErrPastDeadline
		}

		if err := t.gate.RequireNotPaused(); err != nil {
			return err
		}

		if err := t.gate.RequireApprovedLender(caller); err != nil {
			return err
		}

		if err := requireAmount(sharesToLiquidate, "shares to liquidate"); err != nil {
			return err
		}

		position := t.state.PositionOf(borrower)
		if err := fraxlend.Require(sharesToLiquidate.LessThanOrEqual(position.BorrowShares), core.ErrInsufficientBorrowShares, borrower.Hex()); err != nil {
			return err
		}

		t.accrue()
		rate, err := t.refresh()
		if err != nil {
			return err
		}

		if fraxlend.IsSolvent(t.state.TotalBorrow, position, rate, t.pair.params.MaxLTV) {
			return core.ErrBorrowerSolvent
		}

		quote, err := fraxlend.QuoteLiquidation(
			t.state.TotalBorrow,
			position,
			sharesToLiquidate,
			rate,
			t.pair.params.MaxLTV,
			t.pair.params.CleanLiquidationFee,
			t.pair.params.DirtyLiquidationFee,
		)
		if err != nil {
			return err
		}

		collateralForLiquidator = quote.CollateralForLiquidator
		t.settle(caller, borrower, quote)

		if err := t.pull(t.pair.asset, caller, quote.AmountLiquidatorToRepay); err != nil {
			return err
		}

		return t.push(t.pair.collateral, caller, collateralForLiquidator)
	})

	return collateralForLiquidator, err
}

// settle apply a liquidation quote to the ledger
func (t *txn) settle(liquidator, borrower common.Address, quote *fraxlend.LiquidationQuote) {
	t.state.TotalBorrow = quote.TotalBorrow
	if quote.AmountToAdjust.IsPositive() {
		t.state.TotalAsset.Amount = decimal.Max(t.state.TotalAsset.Amount.Sub(quote.AmountToAdjust), decimal.Zero)
	}

	t.state.TotalCollateral = t.state.TotalCollateral.Sub(quote.CollateralForLiquidator)
	position := t.state.Position(borrower)
	*position = quote.Position
	t.prune(borrower)

	t.emit(core.EventRepayAsset, core.NewEventData().
		Put(core.EventKeySender, liquidator).
		Put(core.EventKeyBorrower, borrower).
		Put(core.EventKeyRepay, quote.AmountLiquidatorToRepay).
		Put(core.EventKeyShares, quote.SharesToLiquidate))

	t.emit(core.EventRemoveCollateral, core.NewEventData().
		Put(core.EventKeySender, borrower).
		Put(core.EventKeyAmount, quote.CollateralForLiquidator).
		Put(core.EventKeyReceiver, liquidator).
		Put(core.EventKeyBorrower, borrower))

	t.emit(core.EventLiquidate, core.NewEventData().
		Put(core.EventKeyBorrower, borrower).
		Put(core.EventKeyCollateral, quote.CollateralForLiquidator).
		Put(core.EventKeyShares, quote.SharesToLiquidate).
		Put(core.EventKeyRepay, quote.AmountLiquidatorToRepay).
		Put(core.EventKeySharesAdjust, quote.SharesToAdjust).
		Put(core.EventKeyAmountAdjust, quote.AmountToAdjust))

	t.log.Debugf("liquidated %s shares of %s, clean %v", quote.SharesToLiquidate, borrower.Hex(), quote.Clean)
}
