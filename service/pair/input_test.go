package pair

import (
	"context"
	"testing"

	"fraxlend/core"
	"fraxlend/pkg/number"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairCannotActForItself(t *testing.T) {
	f := newFixture(t)
	f.fund(t)
	venue := f.venue(t, f.clock)
	require.Nil(t, f.pair.SetSwapper(f.ctx, owner, venueAddress, true))

	f.setRate(t, e17(5))
	toCollateral := []common.Address{assetAddress, collateralAddress}
	toAsset := []common.Address{collateralAddress, assetAddress}
	deadline := start + 60

	cases := map[string]func(ctx context.Context) error{
		"deposit": func(ctx context.Context) error {
			_, err := f.pair.Deposit(ctx, pairAddress, e18(500), stranger)
			return err
		},
		"deposit to the pair": func(ctx context.Context) error {
			_, err := f.pair.Deposit(ctx, stranger, e18(500), pairAddress)
			return err
		},
		"redeem fee shares": func(ctx context.Context) error {
			_, err := f.pair.Redeem(ctx, stranger, e18(1), stranger, pairAddress)
			return err
		},
		"redeem to the pair": func(ctx context.Context) error {
			_, err := f.pair.Redeem(ctx, lender, e18(1), pairAddress, lender)
			return err
		},
		"borrow": func(ctx context.Context) error {
			_, err := f.pair.BorrowAsset(ctx, pairAddress, e18(1), e18(10), stranger)
			return err
		},
		"repay": func(ctx context.Context) error {
			_, err := f.pair.RepayAsset(ctx, pairAddress, e18(75), borrower)
			return err
		},
		"add collateral": func(ctx context.Context) error {
			return f.pair.AddCollateral(ctx, pairAddress, e18(100), borrower)
		},
		"remove collateral": func(ctx context.Context) error {
			return f.pair.RemoveCollateral(ctx, pairAddress, e18(1), stranger)
		},
		"liquidate": func(ctx context.Context) error {
			_, err := f.pair.Liquidate(ctx, pairAddress, e18(60), deadline, borrower)
			return err
		},
		"leverage": func(ctx context.Context) error {
			_, err := f.pair.LeveragedPosition(ctx, pairAddress, venue, e18(10), e18(10), e18(10), toCollateral)
			return err
		},
		"repay with collateral": func(ctx context.Context) error {
			_, err := f.pair.RepayAssetWithCollateral(ctx, pairAddress, venue, e18(1), e18(1), toAsset)
			return err
		},
		"transfer": func(ctx context.Context) error {
			return f.pair.Transfer(ctx, pairAddress, stranger, decimal.Zero)
		},
		"transfer to the pair": func(ctx context.Context) error {
			return f.pair.Transfer(ctx, lender, pairAddress, e18(1))
		},
		"transfer from": func(ctx context.Context) error {
			return f.pair.TransferFrom(ctx, pairAddress, lender, stranger, e18(1))
		},
		"approve": func(ctx context.Context) error {
			return f.pair.Approve(ctx, pairAddress, stranger, e18(1))
		},
		"increase allowance": func(ctx context.Context) error {
			return f.pair.IncreaseAllowance(ctx, pairAddress, stranger, e18(1))
		},
		"decrease allowance": func(ctx context.Context) error {
			return f.pair.DecreaseAllowance(ctx, pairAddress, stranger, decimal.Zero)
		},
	}

	for name, call := range cases {
		t.Run(name, func(t *testing.T) {
			before := f.pair.State()

			assert.ErrorIs(t, call(f.ctx), core.ErrInvalidCaller)
			assert.Equal(t, before.Sequence, f.pair.Sequence())
			assert.Equal(t, before.TotalAsset, f.pair.TotalAsset())
			assert.Equal(t, before.TotalBorrow, f.pair.TotalBorrow())
			assert.Equal(t, e18(75).String(), f.pair.UserBorrowShares(borrower).String())
			f.assertBacked(t)
		})
	}
}

func TestFractionalAmounts(t *testing.T) {
	f := newFixture(t)
	f.fund(t)
	venue := f.venue(t, f.clock)
	require.Nil(t, f.pair.SetSwapper(f.ctx, owner, venueAddress, true))

	half := number.Decimal("0.5")
	toCollateral := []common.Address{assetAddress, collateralAddress}
	toAsset := []common.Address{collateralAddress, assetAddress}

	cases := map[string]func(ctx context.Context) error{
		"deposit": func(ctx context.Context) error {
			_, err := f.pair.Deposit(ctx, stranger, number.Decimal("1.5"), stranger)
			return err
		},
		"redeem": func(ctx context.Context) error {
			_, err := f.pair.Redeem(ctx, lender, half, lender, lender)
			return err
		},
		"withdraw fees": func(ctx context.Context) error {
			_, err := f.pair.WithdrawFees(ctx, owner, half, owner)
			return err
		},
		"borrow": func(ctx context.Context) error {
			_, err := f.pair.BorrowAsset(ctx, stranger, number.Decimal("0.75"), e18(1), stranger)
			return err
		},
		"borrow with fractional collateral": func(ctx context.Context) error {
			_, err := f.pair.BorrowAsset(ctx, stranger, e18(1), e18(10).Add(half), stranger)
			return err
		},
		"repay": func(ctx context.Context) error {
			_, err := f.pair.RepayAsset(ctx, borrower, half, borrower)
			return err
		},
		"add collateral": func(ctx context.Context) error {
			return f.pair.AddCollateral(ctx, borrower, number.Decimal("1.5"), borrower)
		},
		"remove collateral": func(ctx context.Context) error {
			return f.pair.RemoveCollateral(ctx, borrower, half, borrower)
		},
		"liquidate": func(ctx context.Context) error {
			_, err := f.pair.Liquidate(ctx, liquidator, half, start+60, borrower)
			return err
		},
		"leverage": func(ctx context.Context) error {
			_, err := f.pair.LeveragedPosition(ctx, stranger, venue, e18(10), half, e18(10), toCollateral)
			return err
		},
		"repay with collateral": func(ctx context.Context) error {
			_, err := f.pair.RepayAssetWithCollateral(ctx, borrower, venue, e18(1), half, toAsset)
			return err
		},
		"transfer": func(ctx context.Context) error {
			return f.pair.Transfer(ctx, lender, stranger, half)
		},
		"approve": func(ctx context.Context) error {
			return f.pair.Approve(ctx, lender, stranger, half)
		},
	}

	for name, call := range cases {
		t.Run(name, func(t *testing.T) {
			before := f.pair.State()

			assert.ErrorIs(t, call(f.ctx), core.ErrInvalidAmount)
			assert.Equal(t, before.Sequence, f.pair.Sequence())
			assert.Equal(t, before.TotalAsset, f.pair.TotalAsset())
			assert.Equal(t, before.TotalBorrow, f.pair.TotalBorrow())
			assert.Equal(t, before.TotalCollateral, f.pair.TotalCollateral())
		})
	}
}

func TestFractionalDepositOnEmptyVault(t *testing.T) {
	f := newFixture(t)

	_, err := f.pair.Deposit(f.ctx, lender, number.Decimal("1.5"), lender)
	assert.ErrorIs(t, err, core.ErrInvalidAmount)
	assert.True(t, f.pair.TotalAsset().Amount.IsZero())
	assert.True(t, f.pair.TotalAsset().Shares.IsZero())
}
