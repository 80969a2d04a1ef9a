package token

import (
	"context"
	"errors"
	"testing"

	"fraxlend/core"
	"fraxlend/pkg/number"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = common.HexToAddress("0xa1")
	bob   = common.HexToAddress("0xb0")
	carol = common.HexToAddress("0xc0")
)

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	l := New(common.HexToAddress("0x10"), "FRAX")
	l.Mint(alice, number.Int(100))
	assert.Equal(t, "100", l.TotalSupply().String())

	require.Nil(t, l.Transfer(ctx, alice, bob, number.Int(40)))
	b, _ := l.BalanceOf(ctx, alice)
	assert.Equal(t, "60", b.String())
	b, _ = l.BalanceOf(ctx, bob)
	assert.Equal(t, "40", b.String())

	err := l.Transfer(ctx, bob, alice, number.Int(41))
	assert.True(t, errors.Is(err, core.ErrInsufficientBalance))
}

func TestTransferFrom(t *testing.T) {
	ctx := context.Background()
	l := New(common.HexToAddress("0x10"), "FRAX")
	l.Mint(alice, number.Int(100))

	err := l.TransferFrom(ctx, bob, alice, carol, number.Int(10))
	assert.True(t, errors.Is(err, core.ErrInsufficientAllowance))

	require.Nil(t, l.Approve(ctx, alice, bob, number.Int(30)))
	require.Nil(t, l.TransferFrom(ctx, bob, alice, carol, number.Int(10)))
	assert.Equal(t, "20", l.Allowance(alice, bob).String())

	b, _ := l.BalanceOf(ctx, carol)
	assert.Equal(t, "10", b.String())

	// spending your own balance needs no allowance
	require.Nil(t, l.TransferFrom(ctx, alice, alice, carol, number.Int(5)))
}

func TestHook(t *testing.T) {
	ctx := context.Background()
	l := New(common.HexToAddress("0x10"), "FRAX")
	l.Mint(alice, number.Int(100))

	var seen decimal.Decimal
	l.SetHook(func(ctx context.Context, from, to common.Address, amount decimal.Decimal) error {
		seen = amount
		// the ledger is unlocked while the hook runs
		_, err := l.BalanceOf(ctx, to)
		return err
	})

	require.Nil(t, l.Transfer(ctx, alice, bob, number.Int(7)))
	assert.Equal(t, "7", seen.String())

	l.SetHook(func(ctx context.Context, from, to common.Address, amount decimal.Decimal) error {
		return errors.New("rejected")
	})
	assert.NotNil(t, l.Transfer(ctx, alice, bob, number.Int(1)))

	b, _ := l.BalanceOf(ctx, alice)
	assert.Equal(t, "93", b.String())

	require.Nil(t, l.Approve(ctx, alice, carol, number.Int(5)))
	assert.NotNil(t, l.TransferFrom(ctx, carol, alice, bob, number.Int(5)))
	assert.Equal(t, "5", l.Allowance(alice, carol).String())
}
