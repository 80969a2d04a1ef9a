package pair

import (
	"testing"
	"time"

	"fraxlend/core"
	"fraxlend/service/swapper"

	"github.com/ethereum/go-ethereum/common"
	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var venueAddress = common.HexToAddress("0x0000000000000000000000000000000000000c01")

func (f *fixture) venue(t *testing.T, clk clock.Clock) *swapper.FixedPrice {
	venue := swapper.New(venueAddress, clk.Now)
	venue.Register(f.asset, f.collateral)
	venue.SetPrice(assetAddress, collateralAddress, e18(1))
	venue.SetPrice(collateralAddress, assetAddress, e18(1))

	f.asset.Mint(venueAddress, e18(100_000))
	f.collateral.Mint(venueAddress, e18(100_000))
	return venue
}

func TestLeveragedPosition(t *testing.T) {
	f := newFixture(t)
	venue := f.venue(t, f.clock)
	path := []common.Address{assetAddress, collateralAddress}

	_, err := f.pair.Deposit(f.ctx, lender, e18(1000), lender)
	require.Nil(t, err)

	_, err = f.pair.LeveragedPosition(f.ctx, borrower, venue, e18(150), e18(100), e18(150), path)
	assert.ErrorIs(t, err, core.ErrBadSwapper)

	require.Nil(t, f.pair.SetSwapper(f.ctx, owner, venueAddress, true))
	assert.Equal(t, []common.Address{venueAddress}, f.pair.Swappers())

	_, err = f.pair.LeveragedPosition(f.ctx, borrower, venue, e18(150), e18(100), e18(150), []common.Address{collateralAddress, assetAddress})
	assert.ErrorIs(t, err, core.ErrInvalidPath)

	_, err = f.pair.LeveragedPosition(f.ctx, borrower, venue, e18(150), e18(100), e18(151), path)
	assert.ErrorIs(t, err, core.ErrSlippageTooHigh)
	assert.Equal(t, e18(1000).String(), f.balance(f.collateral, borrower).String(), "initial collateral refunded")

	// 250 collateral against 250 debt is far beyond 75%
	_, err = f.pair.LeveragedPosition(f.ctx, borrower, venue, e18(250), e18(0), e18(250), path)
	assert.ErrorIs(t, err, core.ErrInsolvent)

	total, err := f.pair.LeveragedPosition(f.ctx, borrower, venue, e18(150), e18(100), e18(150), path)
	require.Nil(t, err)
	assert.Equal(t, e18(250).String(), total.String())
	assert.Equal(t, e18(250).String(), f.pair.UserCollateralBalance(borrower).String())
	assert.Equal(t, e18(150).String(), f.pair.UserBorrowShares(borrower).String())
	assert.True(t, f.pair.IsSolvent(borrower))
	assert.Equal(t, e18(900).String(), f.balance(f.collateral, borrower).String())
	f.assertBacked(t)

	t.Run("repay with collateral", func(t *testing.T) {
		back := []common.Address{collateralAddress, assetAddress}

		_, err := f.pair.RepayAssetWithCollateral(f.ctx, borrower, venue, e18(100), e18(100), path)
		assert.ErrorIs(t, err, core.ErrInvalidPath)

		_, err = f.pair.RepayAssetWithCollateral(f.ctx, borrower, venue, e18(300), e18(1), back)
		assert.ErrorIs(t, err, core.ErrInsufficientCollateral)

		out, err := f.pair.RepayAssetWithCollateral(f.ctx, borrower, venue, e18(100), e18(100), back)
		require.Nil(t, err)
		assert.Equal(t, e18(100).String(), out.String())
		assert.Equal(t, e18(50).String(), f.pair.UserBorrowShares(borrower).String())
		assert.Equal(t, e18(150).String(), f.pair.UserCollateralBalance(borrower).String())
		f.assertBacked(t)
	})

	t.Run("output beyond the debt is returned", func(t *testing.T) {
		back := []common.Address{collateralAddress, assetAddress}

		_, err := f.pair.RepayAssetWithCollateral(f.ctx, borrower, venue, e18(100), e18(51), back)
		assert.ErrorIs(t, err, core.ErrInsufficientBorrowShares)

		out, err := f.pair.RepayAssetWithCollateral(f.ctx, borrower, venue, e18(100), e18(50), back)
		require.Nil(t, err)
		assert.Equal(t, e18(100).String(), out.String())
		assert.True(t, f.pair.UserBorrowShares(borrower).IsZero())
		assert.Equal(t, e18(50).String(), f.pair.UserCollateralBalance(borrower).String())
		assert.Equal(t, e18(10_050).String(), f.balance(f.asset, borrower).String())
		f.assertBacked(t)
	})

	t.Run("swapper revoked", func(t *testing.T) {
		require.Nil(t, f.pair.SetSwapper(f.ctx, owner, venueAddress, false))
		assert.Empty(t, f.pair.Swappers())

		_, err := f.pair.RepayAssetWithCollateral(f.ctx, borrower, venue, e18(1), e18(1), []common.Address{collateralAddress, assetAddress})
		assert.ErrorIs(t, err, core.ErrBadSwapper)
	})

	t.Run("past deadline of the venue", func(t *testing.T) {
		require.Nil(t, f.pair.SetSwapper(f.ctx, owner, venueAddress, true))
		late := swapper.New(venueAddress, func() time.Time { return f.clock.Now().Add(time.Minute) })
		late.Register(f.asset, f.collateral)
		late.SetPrice(assetAddress, collateralAddress, e18(1))

		_, err := f.pair.LeveragedPosition(f.ctx, borrower, late, e18(1), e18(1), e18(1), path)
		assert.ErrorIs(t, err, core.ErrPastDeadline)
	})
}
