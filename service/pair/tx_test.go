package pair

import (
	"context"
	"errors"
	"sync"
	"testing"

	"fraxlend/core"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReentrancy(t *testing.T) {
	f := newFixture(t)

	var (
		inner error
		seen  decimal.Decimal
	)
	f.asset.SetHook(func(ctx context.Context, from, to common.Address, amount decimal.Decimal) error {
		// views stay readable mid transaction
		seen = f.pair.TotalAsset().Amount
		_, inner = f.pair.Deposit(ctx, from, amount, from)
		return inner
	})

	_, err := f.pair.Deposit(f.ctx, lender, e18(10), lender)
	assert.ErrorIs(t, err, core.ErrReentrant)
	assert.ErrorIs(t, inner, core.ErrReentrant)
	assert.True(t, seen.IsZero())

	assert.True(t, f.pair.TotalAsset().Amount.IsZero())
	assert.True(t, f.pair.BalanceOf(lender).IsZero())
	assert.Equal(t, e18(10_000).String(), f.balance(f.asset, lender).String())
	assert.Zero(t, f.pair.Sequence())

	// a fresh context is a new call
	f.asset.SetHook(nil)
	_, err = f.pair.Deposit(f.ctx, lender, e18(10), lender)
	assert.Nil(t, err)
}

func TestAtomicRevert(t *testing.T) {
	f := newFixture(t)
	_, err := f.pair.Deposit(f.ctx, lender, e18(1000), lender)
	require.Nil(t, err)

	before := f.pair.State()
	f.asset.SetHook(func(ctx context.Context, from, to common.Address, amount decimal.Decimal) error {
		if to == stranger {
			return errors.New("receiver rejects the transfer")
		}

		return nil
	})

	// the collateral is pulled before the failing asset transfer
	_, err = f.pair.BorrowAsset(f.ctx, borrower, e18(10), e18(100), stranger)
	assert.NotNil(t, err)

	assert.Equal(t, before.TotalBorrow, f.pair.TotalBorrow())
	assert.Equal(t, before.TotalCollateral, f.pair.TotalCollateral())
	assert.Equal(t, before.Sequence, f.pair.Sequence())
	assert.Equal(t, e18(1000).String(), f.balance(f.collateral, borrower).String())
	assert.True(t, f.balance(f.collateral, pairAddress).IsZero())
	f.assertBacked(t)
}

func TestConcurrentDeposits(t *testing.T) {
	f := newFixture(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.pair.Deposit(f.ctx, lender, e18(1), lender)
			assert.Nil(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, e18(20).String(), f.pair.TotalAsset().Amount.String())
	assert.EqualValues(t, 40, f.pair.Sequence())
	f.assertBacked(t)
}
