package pair

import (
	"context"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// BalanceOf lender share balance
func (p *Pair) BalanceOf(owner common.Address) decimal.Decimal {
	var v decimal.Decimal
	p.read(func(s *core.PairState) {
		v = s.BalanceOf(owner)
	})

	return v
}

// TotalSupply lender shares outstanding
func (p *Pair) TotalSupply() decimal.Decimal {
	return p.TotalAsset().Shares
}

func (p *Pair) Allowance(owner, spender common.Address) decimal.Decimal {
	var v decimal.Decimal
	p.read(func(s *core.PairState) {
		v = s.Allowance(owner, spender)
	})

	return v
}

func (p *Pair) Approve(ctx context.Context, owner, spender common.Address, amount decimal.Decimal) error {
	return p.transact(ctx, "approve", func(t *txn) error {
		if err := t.requireExternal(owner); err != nil {
			return err
		}

		if err := requireWhole(amount, "allowance"); err != nil {
			return err
		}

		t.approve(owner, spender, amount)
		return nil
	})
}

func (p *Pair) IncreaseAllowance(ctx context.Context, owner, spender common.Address, added decimal.Decimal) error {
	return p.transact(ctx, "increaseAllowance", func(t *txn) error {
		if err := t.requireExternal(owner); err != nil {
			return err
		}

		if err := requireWhole(added, "allowance"); err != nil {
			return err
		}

		t.approve(owner, spender, t.state.Allowance(owner, spender).Add(added))
		return nil
	})
}

func (p *Pair) DecreaseAllowance(ctx context.Context, owner, spender common.Address, subtracted decimal.Decimal) error {
	return p.transact(ctx, "decreaseAllowance", func(t *txn) error {
		if err := t.requireExternal(owner); err != nil {
			return err
		}

		if err := requireWhole(subtracted, "allowance"); err != nil {
			return err
		}

		current := t.state.Allowance(owner, spender)
		if err := fraxlend.Require(current.GreaterThanOrEqual(subtracted), core.ErrInsufficientAllowance, "decreased allowance below zero"); err != nil {
			return err
		}

		t.approve(owner, spender, current.Sub(subtracted))
		return nil
	})
}

// Transfer move lender shares
func (p *Pair) Transfer(ctx context.Context, from, to common.Address, amount decimal.Decimal) error {
	return p.transact(ctx, "transfer", func(t *txn) error {
		if err := t.requireExternal(from, to); err != nil {
			return err
		}

		return t.transfer(from, to, amount)
	})
}

// TransferFrom move lender shares of from spending the allowance of spender
func (p *Pair) TransferFrom(ctx context.Context, spender, from, to common.Address, amount decimal.Decimal) error {
	return p.transact(ctx, "transferFrom", func(t *txn) error {
		if err := t.requireExternal(spender, from, to); err != nil {
			return err
		}

		if spender != from {
			if err := t.spendAllowance(from, spender, amount); err != nil {
				return err
			}
		}

		return t.transfer(from, to, amount)
	})
}

func (t *txn) approve(owner, spender common.Address, amount decimal.Decimal) {
	t.state.SetAllowance(owner, spender, amount)
	t.emit(core.EventApproval, core.NewEventData().
		Put(core.EventKeyOwner, owner).
		Put(core.EventKeySpender, spender).
		Put(core.EventKeyValue, amount))
}

func (t *txn) spendAllowance(owner, spender common.Address, amount decimal.Decimal) error {
	current := t.state.Allowance(owner, spender)
	if err := fraxlend.Require(current.GreaterThanOrEqual(amount), core.ErrInsufficientAllowance, ""); err != nil {
		return err
	}

	t.state.SetAllowance(owner, spender, current.Sub(amount))
	return nil
}

func (t *txn) transfer(from, to common.Address, amount decimal.Decimal) error {
	if err := requireWhole(amount, "shares"); err != nil {
		return err
	}

	balance := t.state.BalanceOf(from)
	if err := fraxlend.Require(balance.GreaterThanOrEqual(amount), core.ErrInsufficientBalance, ""); err != nil {
		return err
	}

	t.state.SetBalance(from, balance.Sub(amount))
	t.state.SetBalance(to, t.state.BalanceOf(to).Add(amount))
	t.emitTransfer(from, to, amount)
	return nil
}

func (t *txn) mint(to common.Address, shares decimal.Decimal) {
	t.state.SetBalance(to, t.state.BalanceOf(to).Add(shares))
	t.emitTransfer(common.Address{}, to, shares)
}

func (t *txn) burn(from common.Address, shares decimal.Decimal) error {
	balance := t.state.BalanceOf(from)
	if err := fraxlend.Require(balance.GreaterThanOrEqual(shares), core.ErrInsufficientBalance, ""); err != nil {
		return err
	}

	t.state.SetBalance(from, balance.Sub(shares))
	t.emitTransfer(from, common.Address{}, shares)
	return nil
}

func (t *txn) emitTransfer(from, to common.Address, value decimal.Decimal) {
	t.emit(core.EventTransfer, core.NewEventData().
		Put(core.EventKeyFrom, from).
		Put(core.EventKeyTo, to).
		Put(core.EventKeyValue, value))
}
