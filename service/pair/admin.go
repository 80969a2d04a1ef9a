package pair

import (
	"context"
	"fmt"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// ChangeFee change the protocol share of interest, accrues with the old fee first
func (p *Pair) ChangeFee(ctx context.Context, caller common.Address, newFee decimal.Decimal) error {
	return p.transact(ctx, "changeFee", func(t *txn) error {
		if err := t.gate.RequireOwnerOrTimelock(caller); err != nil {
			return err
		}

		if newFee.IsNegative() || newFee.GreaterThan(fraxlend.MaxProtocolFee) {
			return fmt.Errorf("%w: %s", core.ErrBadProtocolFee, newFee)
		}

		t.accrue()

		old := t.state.RateInfo.FeeToProtocolRate
		t.state.RateInfo.FeeToProtocolRate = newFee
		t.emit(core.EventChangeFee, core.NewEventData().
			Put(core.EventKeyOldFee, old).
			Put(core.EventKeyNewFee, newFee))

		return nil
	})
}

func (p *Pair) SetApprovedBorrowers(ctx context.Context, caller common.Address, approval bool, borrowers ...common.Address) error {
	return p.transact(ctx, "setApprovedBorrowers", func(t *txn) error {
		if err := t.gate.RequireOwnerOrTimelock(caller); err != nil {
			return err
		}

		t.gate.SetApprovedBorrowers(approval, borrowers...)
		for _, addr := range borrowers {
			t.emit(core.EventSetApprovedBorrower, core.NewEventData().
				Put(core.EventKeyBorrower, addr).
				Put(core.EventKeyApproval, approval))
		}

		return nil
	})
}

func (p *Pair) SetApprovedLenders(ctx context.Context, caller common.Address, approval bool, lenders ...common.Address) error {
	return p.transact(ctx, "setApprovedLenders", func(t *txn) error {
		if err := t.gate.RequireOwnerOrTimelock(caller); err != nil {
			return err
		}

		t.gate.SetApprovedLenders(approval, lenders...)
		for _, addr := range lenders {
			t.emit(core.EventSetApprovedLender, core.NewEventData().
				Put(core.EventKeyOwner, addr).
				Put(core.EventKeyApproval, approval))
		}

		return nil
	})
}

func (p *Pair) SetSwapper(ctx context.Context, caller, swapper common.Address, approval bool) error {
	return p.transact(ctx, "setSwapper", func(t *txn) error {
		if err := t.gate.RequireOwner(caller); err != nil {
			return err
		}

		t.gate.SetSwapper(swapper, approval)
		t.emit(core.EventSetSwapper, core.NewEventData().
			Put(core.EventKeySwapper, swapper).
			Put(core.EventKeyApproval, approval))

		return nil
	})
}

func (p *Pair) SetTimeLock(ctx context.Context, caller, timeLock common.Address) error {
	return p.transact(ctx, "setTimeLock", func(t *txn) error {
		if err := t.gate.RequireOwner(caller); err != nil {
			return err
		}

		previous := t.state.Access.TimeLock
		t.state.Access.TimeLock = timeLock
		t.emit(core.EventSetTimeLock, core.NewEventData().
			Put(core.EventKeyPrevious, previous).
			Put(core.EventKeyNext, timeLock))

		return nil
	})
}

// Pause accrue then stop deposits, borrows & liquidations
func (p *Pair) Pause(ctx context.Context, caller common.Address) error {
	return p.transact(ctx, "pause", func(t *txn) error {
		if err := t.gate.RequireOwnerOrTimelock(caller); err != nil {
			return err
		}

		t.accrue()
		t.state.Access.Paused = true
		t.emit(core.EventPaused, core.NewEventData().Put(core.EventKeyCaller, caller))
		return nil
	})
}

func (p *Pair) Unpause(ctx context.Context, caller common.Address) error {
	return p.transact(ctx, "unpause", func(t *txn) error {
		if err := t.gate.RequireOwnerOrTimelock(caller); err != nil {
			return err
		}

		t.state.Access.Paused = false
		t.emit(core.EventUnpaused, core.NewEventData().Put(core.EventKeyCaller, caller))
		return nil
	})
}

func (p *Pair) TransferOwnership(ctx context.Context, caller, newOwner common.Address) error {
	return p.transact(ctx, "transferOwnership", func(t *txn) error {
		if err := t.gate.RequireOwner(caller); err != nil {
			return err
		}

		if (newOwner == common.Address{}) {
			return fmt.Errorf("%w: new owner is the zero address", core.ErrInvalidConfig)
		}

		t.setOwner(newOwner)
		return nil
	})
}

// RenounceOwnership leave the pair without owner, privileged calls are closed for good
func (p *Pair) RenounceOwnership(ctx context.Context, caller common.Address) error {
	return p.transact(ctx, "renounceOwnership", func(t *txn) error {
		if err := t.gate.RequireOwner(caller); err != nil {
			return err
		}

		t.setOwner(common.Address{})
		return nil
	})
}

func (t *txn) setOwner(next common.Address) {
	previous := t.state.Access.Owner
	t.state.Access.Owner = next
	t.emit(core.EventOwnershipTransferred, core.NewEventData().
		Put(core.EventKeyPrevious, previous).
		Put(core.EventKeyNext, next))
}
