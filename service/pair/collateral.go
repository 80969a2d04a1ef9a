package pair

import (
	"context"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// AddCollateral add collateral to the borrower position, paid by caller
func (p *Pair) AddCollateral(ctx context.Context, caller common.Address, amount decimal.Decimal, borrower common.Address) error {
	return p.transact(ctx, "addCollateral", func(t *txn) error {
		if err := t.requireExternal(caller, borrower); err != nil {
			return err
		}

		if err := t.gate.RequireNotPaused(); err != nil {
			return err
		}

		if err := t.requireNotPastMaturity(); err != nil {
			return err
		}

		if err := requireAmount(amount, "collateral amount"); err != nil {
			return err
		}

		t.accrue()
		t.addCollateral(caller, amount, borrower)
		return t.pull(t.pair.collateral, caller, amount)
	})
}

// RemoveCollateral withdraw collateral of caller to receiver, caller must stay solvent
func (p *Pair) RemoveCollateral(ctx context.Context, caller common.Address, amount decimal.Decimal, receiver common.Address) error {
	return p.transact(ctx, "removeCollateral", func(t *txn) error {
		if err := t.requireExternal(caller, receiver); err != nil {
			return err
		}

		if err := requireAmount(amount, "collateral amount"); err != nil {
			return err
		}

		t.accrue()

		rate := t.state.ExchangeRate.ExchangeRate
		if t.state.PositionOf(caller).BorrowShares.IsPositive() {
			var err error
			if rate, err = t.refresh(); err != nil {
				return err
			}
		}

		if err := t.removeCollateral(amount, receiver, caller); err != nil {
			return err
		}

		if err := t.requireSolvent(caller, rate); err != nil {
			return err
		}

		return t.push(t.pair.collateral, receiver, amount)
	})
}

func (t *txn) addCollateral(sender common.Address, amount decimal.Decimal, borrower common.Address) {
	position := t.state.Position(borrower)
	position.CollateralBalance = position.CollateralBalance.Add(amount)
	t.state.TotalCollateral = t.state.TotalCollateral.Add(amount)

	t.emit(core.EventAddCollateral, core.NewEventData().
		Put(core.EventKeySender, sender).
		Put(core.EventKeyBorrower, borrower).
		Put(core.EventKeyAmount, amount))
}

func (t *txn) removeCollateral(amount decimal.Decimal, receiver, borrower common.Address) error {
	position := t.state.PositionOf(borrower)
	if err := fraxlend.Require(position.CollateralBalance.GreaterThanOrEqual(amount), core.ErrInsufficientCollateral, borrower.Hex()); err != nil {
		return err
	}

	p := t.state.Position(borrower)
	p.CollateralBalance = p.CollateralBalance.Sub(amount)
	t.state.TotalCollateral = t.state.TotalCollateral.Sub(amount)
	t.prune(borrower)

	t.emit(core.EventRemoveCollateral, core.NewEventData().
		Put(core.EventKeySender, borrower).
		Put(core.EventKeyAmount, amount).
		Put(core.EventKeyReceiver, receiver).
		Put(core.EventKeyBorrower, borrower))

	return nil
}
