package pair

import (
	"context"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// BorrowAsset borrow borrowAmount to receiver, optionally adding collateral first
func (p *Pair) BorrowAsset(
	ctx context.Context,
	caller common.Address,
	borrowAmount, collateralAmount decimal.Decimal,
	receiver common.Address,
) (decimal.Decimal, error) {
	var shares decimal.Decimal
	err := p.transact(ctx, "borrowAsset", func(t *txn) error {
		if err := t.requireExternal(caller, receiver); err != nil {
			return err
		}

		if err := t.requireCanBorrow(caller); err != nil {
			return err
		}

		if err := requireAmount(borrowAmount, "borrow amount"); err != nil {
			return err
		}

		if err := requireWhole(collateralAmount, "collateral amount"); err != nil {
			return err
		}

		t.accrue()
		rate, err := t.refresh()
		if err != nil {
			return err
		}

		if collateralAmount.IsPositive() {
			t.addCollateral(caller, collateralAmount, caller)
		}

		if shares, err = t.borrow(caller, borrowAmount, receiver); err != nil {
			return err
		}

		if err := t.requireSolvent(caller, rate); err != nil {
			return err
		}

		if err := t.pull(t.pair.collateral, caller, collateralAmount); err != nil {
			return err
		}

		return t.push(t.pair.asset, receiver, borrowAmount)
	})

	return shares, err
}

// RepayAsset repay shares of the borrower debt, paid by caller
func (p *Pair) RepayAsset(ctx context.Context, caller common.Address, shares decimal.Decimal, borrower common.Address) (decimal.Decimal, error) {
	var amount decimal.Decimal
	err := p.transact(ctx, "repayAsset", func(t *txn) error {
		if err := t.requireExternal(caller, borrower); err != nil {
			return err
		}

		if err := t.requireNotPastMaturity(); err != nil {
			return err
		}

		if err := requireAmount(shares, "repay shares"); err != nil {
			return err
		}

		t.accrue()

		amount = fraxlend.ToAmount(t.state.TotalBorrow, shares, true)
		if err := t.repay(amount, shares, caller, borrower); err != nil {
			return err
		}

		return t.pull(t.pair.asset, caller, amount)
	})

	return amount, err
}

func (t *txn) requireCanBorrow(borrower common.Address) error {
	if err := t.gate.RequireNotPaused(); err != nil {
		return err
	}

	if err := t.requireNotPastMaturity(); err != nil {
		return err
	}

	return t.gate.RequireApprovedBorrower(borrower)
}

func (t *txn) requireSolvent(borrower common.Address, rate decimal.Decimal) error {
	ok := fraxlend.IsSolvent(t.state.TotalBorrow, t.state.PositionOf(borrower), rate, t.pair.params.MaxLTV)
	return fraxlend.Require(ok, core.ErrInsolvent, borrower.Hex())
}

// borrow book the debt, the asset transfer is left to the caller
func (t *txn) borrow(borrower common.Address, amount decimal.Decimal, receiver common.Address) (decimal.Decimal, error) {
	available := fraxlend.Available(t.state.TotalAsset, t.state.TotalBorrow)
	if err := fraxlend.Require(amount.LessThanOrEqual(available), core.ErrInsufficientAssetsInContract, ""); err != nil {
		return decimal.Zero, err
	}

	shares := fraxlend.ToShares(t.state.TotalBorrow, amount, true)
	t.state.TotalBorrow.Amount = t.state.TotalBorrow.Amount.Add(amount)
	t.state.TotalBorrow.Shares = t.state.TotalBorrow.Shares.Add(shares)

	position := t.state.Position(borrower)
	position.BorrowShares = position.BorrowShares.Add(shares)

	t.emit(core.EventBorrowAsset, core.NewEventData().
		Put(core.EventKeyBorrower, borrower).
		Put(core.EventKeyReceiver, receiver).
		Put(core.EventKeyBorrowAmount, amount).
		Put(core.EventKeyShares, shares))

	return shares, nil
}

// repay book the repayment, the asset transfer is left to the caller
func (t *txn) repay(amount, shares decimal.Decimal, payer, borrower common.Address) error {
	position := t.state.PositionOf(borrower)
	if err := fraxlend.Require(position.BorrowShares.GreaterThanOrEqual(shares), core.ErrInsufficientBorrowShares, borrower.Hex()); err != nil {
		return err
	}

	t.state.TotalBorrow.Amount = decimal.Max(t.state.TotalBorrow.Amount.Sub(amount), decimal.Zero)
	t.state.TotalBorrow.Shares = t.state.TotalBorrow.Shares.Sub(shares)

	p := t.state.Position(borrower)
	p.BorrowShares = p.BorrowShares.Sub(shares)
	t.prune(borrower)

	t.emit(core.EventRepayAsset, core.NewEventData().
		Put(core.EventKeySender, payer).
		Put(core.EventKeyBorrower, borrower).
		Put(core.EventKeyRepay, amount).
		Put(core.EventKeyShares, shares))

	return nil
}

// prune drop closed positions
func (t *txn) prune(borrower common.Address) {
	if p, ok := t.state.Positions[borrower]; ok && p.IsEmpty() {
		delete(t.state.Positions, borrower)
	}
}
