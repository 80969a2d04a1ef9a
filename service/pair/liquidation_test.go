package pair

import (
	"errors"
	"testing"
	"time"

	"fraxlend/core"
	"fraxlend/pkg/number"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiquidate(t *testing.T) {
	deadline := start + 60

	t.Run("solvent borrower", func(t *testing.T) {
		f := newFixture(t)
		f.fund(t)

		_, err := f.pair.Liquidate(f.ctx, liquidator, e18(10), deadline, borrower)
		assert.ErrorIs(t, err, core.ErrBorrowerSolvent)
	})

	t.Run("guards", func(t *testing.T) {
		f := newFixture(t)
		f.fund(t)
		f.setRate(t, e17(5))

		_, err := f.pair.Liquidate(f.ctx, liquidator, e18(10), start-1, borrower)
		assert.ErrorIs(t, err, core.ErrPastDeadline)

		_, err = f.pair.Liquidate(f.ctx, liquidator, decimal.Zero, deadline, borrower)
		assert.ErrorIs(t, err, core.ErrZeroAmount)

		_, err = f.pair.Liquidate(f.ctx, liquidator, e18(76), deadline, borrower)
		assert.ErrorIs(t, err, core.ErrInsufficientBorrowShares)
	})

	t.Run("clean", func(t *testing.T) {
		f := newFixture(t)
		f.fund(t)
		f.setRate(t, e17(8))
		seq := f.pair.Sequence()

		collateral, err := f.pair.Liquidate(f.ctx, liquidator, e18(75), deadline, borrower)
		require.Nil(t, err)
		assert.Equal(t, e18(100).String(), collateral.String())
		assert.True(t, f.pair.UserBorrowShares(borrower).IsZero())
		assert.True(t, f.pair.UserCollateralBalance(borrower).IsZero())
		assert.True(t, f.pair.TotalBorrow().Amount.IsZero())
		assert.Equal(t, e18(1000).String(), f.pair.TotalAsset().Amount.String())
		assert.Equal(t, e18(10_000-75).String(), f.balance(f.asset, liquidator).String())
		assert.Equal(t, e18(1_100).String(), f.balance(f.collateral, liquidator).String())
		assert.Equal(t, []core.EventType{core.EventRepayAsset, core.EventRemoveCollateral, core.EventLiquidate}, eventTypes(f.pair.Events(seq, 0)))
		f.assertBacked(t)
	})

	t.Run("bad debt is written off", func(t *testing.T) {
		f := newFixture(t)
		f.fund(t)
		f.setRate(t, e17(5))
		seq := f.pair.Sequence()

		collateral, err := f.pair.Liquidate(f.ctx, liquidator, e18(60), deadline, borrower)
		require.Nil(t, err)
		assert.Equal(t, e18(100).String(), collateral.String())
		assert.True(t, f.pair.UserBorrowShares(borrower).IsZero())
		assert.True(t, f.pair.TotalBorrow().Shares.IsZero())
		assert.Equal(t, e18(985).String(), f.pair.TotalAsset().Amount.String())
		assert.Equal(t, e18(10_000-60).String(), f.balance(f.asset, liquidator).String())

		var liquidate struct {
			SharesToAdjust decimal.Decimal `json:"shares_to_adjust"`
			AmountToAdjust decimal.Decimal `json:"amount_to_adjust"`
			Repay          decimal.Decimal `json:"amount_to_repay"`
		}
		events := f.pair.Events(seq, 0)
		require.Len(t, events, 3)
		require.Nil(t, events[2].Decode(&liquidate))
		assert.Equal(t, e18(15).String(), liquidate.SharesToAdjust.String())
		assert.Equal(t, e18(15).String(), liquidate.AmountToAdjust.String())
		assert.Equal(t, e18(60).String(), liquidate.Repay.String())
		f.assertBacked(t)
	})

	t.Run("dirty", func(t *testing.T) {
		f := newFixture(t)
		f.fund(t)
		f.setRate(t, e17(9))
		require.False(t, f.pair.IsSolvent(borrower))

		collateral, err := f.pair.Liquidate(f.ctx, liquidator, e18(50), deadline, borrower)
		require.Nil(t, err)
		assert.Equal(t, "60555555555555555554", collateral.String())
		assert.Equal(t, e18(25).String(), f.pair.UserBorrowShares(borrower).String())
		assert.Equal(t, "39444444444444444446", f.pair.UserCollateralBalance(borrower).String())
		assert.True(t, f.pair.IsSolvent(borrower))
		f.assertBacked(t)
	})

	t.Run("insufficient", func(t *testing.T) {
		f := newFixture(t)
		f.fund(t)
		f.setRate(t, e17(8))
		before := f.pair.State()

		_, err := f.pair.Liquidate(f.ctx, liquidator, e18(10), deadline, borrower)
		assert.ErrorIs(t, err, core.ErrLiquidationInsufficient)
		assert.Equal(t, before.Sequence, f.pair.Sequence())
		assert.Equal(t, e18(75).String(), f.pair.UserBorrowShares(borrower).String())
		assert.Equal(t, e18(10_000).String(), f.balance(f.asset, liquidator).String())
	})

	t.Run("lender whitelist", func(t *testing.T) {
		f := newFixture(t, func(cfg *Config) {
			cfg.Access.LenderWhitelistActive = true
			cfg.Access.ApprovedLenders[lender] = true
		})
		f.fund(t)
		f.setRate(t, e17(8))

		_, err := f.pair.Liquidate(f.ctx, liquidator, e18(75), deadline, borrower)
		assert.ErrorIs(t, err, core.ErrOnlyApprovedLenders)

		_, err = f.pair.Liquidate(f.ctx, lender, e18(75), deadline, borrower)
		assert.Nil(t, err)
	})

	t.Run("paused", func(t *testing.T) {
		f := newFixture(t)
		f.fund(t)
		f.setRate(t, e17(8))
		require.Nil(t, f.pair.Pause(f.ctx, timeLock))

		_, err := f.pair.Liquidate(f.ctx, liquidator, number.Int(1), deadline, borrower)
		assert.ErrorIs(t, err, core.ErrPaused)
	})
}

func TestLiquidationLeavesClosedOrSolvent(t *testing.T) {
	rates := []int64{4, 5, 6, 7, 8, 9, 10, 12}
	shares := []decimal.Decimal{
		number.Int(1),
		e18(1),
		e18(10),
		e17(255),
		e18(50),
		e18(60),
		e18(74),
		e18(75),
	}

	var succeeded int
	for _, rate := range rates {
		for _, s := range shares {
			f := newFixture(t)
			f.fund(t)

			f.clock.Add(7 * 24 * time.Hour)
			_, err := f.pair.AddInterest(f.ctx)
			require.Nil(t, err)
			f.setRate(t, e17(rate))

			before := f.pair.State()
			_, err = f.pair.Liquidate(f.ctx, liquidator, s, f.clock.Now().Unix()+60, borrower)
			if err != nil {
				assert.True(t,
					errors.Is(err, core.ErrBorrowerSolvent) || errors.Is(err, core.ErrLiquidationInsufficient),
					"rate %d shares %s: %v", rate, s, err)
				assert.Equal(t, before.Sequence, f.pair.Sequence())
				assert.Equal(t, before.TotalBorrow, f.pair.TotalBorrow())
				f.assertBacked(t)
				continue
			}

			succeeded++
			closed := f.pair.UserBorrowShares(borrower).IsZero()
			assert.True(t, closed || f.pair.IsSolvent(borrower), "rate %d shares %s left insolvent", rate, s)
			f.assertBacked(t)
		}
	}

	assert.Greater(t, succeeded, 0)
}
