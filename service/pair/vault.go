package pair

import (
	"context"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Deposit lend amount of the asset, receiver gets the minted shares
func (p *Pair) Deposit(ctx context.Context, caller common.Address, amount decimal.Decimal, receiver common.Address) (decimal.Decimal, error) {
	var shares decimal.Decimal
	err := p.transact(ctx, "deposit", func(t *txn) error {
		if err := t.requireExternal(caller, receiver); err != nil {
			return err
		}

		if err := t.gate.RequireNotPaused(); err != nil {
			return err
		}

		if err := t.requireNotPastMaturity(); err != nil {
			return err
		}

		if err := t.gate.RequireApprovedLender(receiver); err != nil {
			return err
		}

		if err := requireAmount(amount, "deposit amount"); err != nil {
			return err
		}

		t.accrue()

		shares = fraxlend.ToShares(t.state.TotalAsset, amount, false)
		if err := fraxlend.Require(shares.IsPositive(), core.ErrZeroAmount, "deposit shares"); err != nil {
			return err
		}

		t.state.TotalAsset.Amount = t.state.TotalAsset.Amount.Add(amount)
		t.state.TotalAsset.Shares = t.state.TotalAsset.Shares.Add(shares)
		t.mint(receiver, shares)

		t.emit(core.EventDeposit, core.NewEventData().
			Put(core.EventKeyCaller, caller).
			Put(core.EventKeyOwner, receiver).
			Put(core.EventKeyAssets, amount).
			Put(core.EventKeyShares, shares))

		return t.pull(t.pair.asset, caller, amount)
	})

	return shares, err
}

// Redeem burn shares of owner and send the asset to receiver
func (p *Pair) Redeem(ctx context.Context, caller common.Address, shares decimal.Decimal, receiver, owner common.Address) (decimal.Decimal, error) {
	var amount decimal.Decimal
	err := p.transact(ctx, "redeem", func(t *txn) error {
		if err := t.requireExternal(caller, receiver, owner); err != nil {
			return err
		}

		if err := requireAmount(shares, "redeem shares"); err != nil {
			return err
		}

		t.accrue()

		if caller != owner {
			if err := t.spendAllowance(owner, caller, shares); err != nil {
				return err
			}
		}

		amount = fraxlend.ToAmount(t.state.TotalAsset, shares, false)
		if err := t.redeem(amount, shares, owner); err != nil {
			return err
		}

		t.emit(core.EventWithdraw, core.NewEventData().
			Put(core.EventKeyCaller, caller).
			Put(core.EventKeyReceiver, receiver).
			Put(core.EventKeyOwner, owner).
			Put(core.EventKeyAssets, amount).
			Put(core.EventKeyShares, shares))

		return t.push(t.pair.asset, receiver, amount)
	})

	return amount, err
}

// WithdrawFees withdraw protocol fee shares held by the pair, zero shares withdraws them all
func (p *Pair) WithdrawFees(ctx context.Context, caller common.Address, shares decimal.Decimal, recipient common.Address) (decimal.Decimal, error) {
	var amount decimal.Decimal
	err := p.transact(ctx, "withdrawFees", func(t *txn) error {
		if err := t.gate.RequireOwner(caller); err != nil {
			return err
		}

		t.accrue()

		if err := requireWhole(shares, "fee shares"); err != nil {
			return err
		}

		if shares.IsZero() {
			shares = t.state.BalanceOf(t.pair.params.Address)
		}

		amount = fraxlend.ToAmount(t.state.TotalAsset, shares, false)
		if err := t.redeem(amount, shares, t.pair.params.Address); err != nil {
			return err
		}

		t.emit(core.EventWithdrawFees, core.NewEventData().
			Put(core.EventKeyShares, shares).
			Put(core.EventKeyRecipient, recipient).
			Put(core.EventKeyAmount, amount))

		return t.push(t.pair.asset, recipient, amount)
	})

	return amount, err
}

// redeem burn shares of owner worth amount
func (t *txn) redeem(amount, shares decimal.Decimal, owner common.Address) error {
	available := fraxlend.Available(t.state.TotalAsset, t.state.TotalBorrow)
	if err := fraxlend.Require(amount.LessThanOrEqual(available), core.ErrInsufficientAssetsInContract, ""); err != nil {
		return err
	}

	if err := t.burn(owner, shares); err != nil {
		return err
	}

	t.state.TotalAsset.Amount = t.state.TotalAsset.Amount.Sub(amount)
	t.state.TotalAsset.Shares = t.state.TotalAsset.Shares.Sub(shares)
	return nil
}
