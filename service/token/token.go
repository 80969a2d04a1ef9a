package token

import (
	"context"
	"fmt"
	"sync"

	"fraxlend/core"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// Hook called after every transfer, outside the token lock. An error undoes the transfer.
type Hook func(ctx context.Context, from, to common.Address, amount decimal.Decimal) error

// Ledger in memory fungible token
type Ledger struct {
	address common.Address
	symbol  string

	mux        sync.Mutex
	supply     decimal.Decimal
	balances   map[common.Address]decimal.Decimal
	allowances map[common.Address]map[common.Address]decimal.Decimal
	hook       Hook
}

// New new token ledger
func New(address common.Address, symbol string) *Ledger {
	return &Ledger{
		address:    address,
		symbol:     symbol,
		supply:     decimal.Zero,
		balances:   make(map[common.Address]decimal.Decimal),
		allowances: make(map[common.Address]map[common.Address]decimal.Decimal),
	}
}

func (l *Ledger) Address() common.Address {
	return l.address
}

// Symbol token symbol
func (l *Ledger) Symbol() string {
	return l.symbol
}

// SetHook install a transfer hook, nil removes it
func (l *Ledger) SetHook(hook Hook) {
	l.mux.Lock()
	l.hook = hook
	l.mux.Unlock()
}

// Mint credit amount to owner
func (l *Ledger) Mint(owner common.Address, amount decimal.Decimal) {
	l.mux.Lock()
	defer l.mux.Unlock()

	l.balances[owner] = l.balanceOf(owner).Add(amount)
	l.supply = l.supply.Add(amount)
}

// TotalSupply minted amount
func (l *Ledger) TotalSupply() decimal.Decimal {
	l.mux.Lock()
	defer l.mux.Unlock()

	return l.supply
}

func (l *Ledger) BalanceOf(ctx context.Context, owner common.Address) (decimal.Decimal, error) {
	l.mux.Lock()
	defer l.mux.Unlock()

	return l.balanceOf(owner), nil
}

func (l *Ledger) Transfer(ctx context.Context, from, to common.Address, amount decimal.Decimal) error {
	l.mux.Lock()
	err := l.move(from, to, amount)
	hook := l.hook
	l.mux.Unlock()

	if err != nil {
		return err
	}

	if err := l.after(ctx, hook, from, to, amount); err != nil {
		l.revert(from, to, amount, common.Address{}, false)
		return err
	}

	return nil
}

func (l *Ledger) TransferFrom(ctx context.Context, spender, from, to common.Address, amount decimal.Decimal) error {
	l.mux.Lock()
	allowance := l.allowance(from, spender)
	if spender != from && allowance.LessThan(amount) {
		l.mux.Unlock()
		return fmt.Errorf("%w: %s allowance of %s is %s, need %s", core.ErrInsufficientAllowance, l.symbol, spender.Hex(), allowance, amount)
	}

	if err := l.move(from, to, amount); err != nil {
		l.mux.Unlock()
		return err
	}

	spent := spender != from
	if spent {
		l.setAllowance(from, spender, allowance.Sub(amount))
	}

	hook := l.hook
	l.mux.Unlock()

	if err := l.after(ctx, hook, from, to, amount); err != nil {
		l.revert(from, to, amount, spender, spent)
		return err
	}

	return nil
}

func (l *Ledger) Approve(ctx context.Context, owner, spender common.Address, amount decimal.Decimal) error {
	l.mux.Lock()
	defer l.mux.Unlock()

	l.setAllowance(owner, spender, amount)
	return nil
}

// Allowance allowance of spender over owner
func (l *Ledger) Allowance(owner, spender common.Address) decimal.Decimal {
	l.mux.Lock()
	defer l.mux.Unlock()

	return l.allowance(owner, spender)
}

func (l *Ledger) after(ctx context.Context, hook Hook, from, to common.Address, amount decimal.Decimal) error {
	logger.FromContext(ctx).WithField("token", l.symbol).Debugf("transfer %s from %s to %s", amount, from.Hex(), to.Hex())

	if hook != nil {
		return hook(ctx, from, to, amount)
	}

	return nil
}

// revert undo a transfer rejected by the hook
func (l *Ledger) revert(from, to common.Address, amount decimal.Decimal, spender common.Address, spent bool) {
	l.mux.Lock()
	defer l.mux.Unlock()

	l.balances[to] = l.balanceOf(to).Sub(amount)
	l.balances[from] = l.balanceOf(from).Add(amount)
	if spent {
		l.setAllowance(from, spender, l.allowance(from, spender).Add(amount))
	}
}

func (l *Ledger) move(from, to common.Address, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: negative transfer", core.ErrZeroAmount)
	}

	balance := l.balanceOf(from)
	if balance.LessThan(amount) {
		return fmt.Errorf("%w: %s balance of %s is %s, need %s", core.ErrInsufficientBalance, l.symbol, from.Hex(), balance, amount)
	}

	l.balances[from] = balance.Sub(amount)
	l.balances[to] = l.balanceOf(to).Add(amount)
	return nil
}

func (l *Ledger) balanceOf(owner common.Address) decimal.Decimal {
	if b, ok := l.balances[owner]; ok {
		return b
	}

	return decimal.Zero
}

func (l *Ledger) allowance(owner, spender common.Address) decimal.Decimal {
	if m, ok := l.allowances[owner]; ok {
		if a, ok := m[spender]; ok {
			return a
		}
	}

	return decimal.Zero
}

func (l *Ledger) setAllowance(owner, spender common.Address, amount decimal.Decimal) {
	m, ok := l.allowances[owner]
	if !ok {
		m = make(map[common.Address]decimal.Decimal)
		l.allowances[owner] = m
	}

	m[spender] = amount
}
