package pair

import (
	"context"
	"fmt"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// LeveragedPosition borrow the asset & swap it into more collateral for caller
func (p *Pair) LeveragedPosition(
	ctx context.Context,
	caller common.Address,
	swapper core.Swapper,
	borrowAmount, initialCollateral, minCollateralOut decimal.Decimal,
	path []common.Address,
) (decimal.Decimal, error) {
	var totalCollateral decimal.Decimal
	err := p.transact(ctx, "leveragedPosition", func(t *txn) error {
		if err := t.requireExternal(caller); err != nil {
			return err
		}

		if err := t.requireCanBorrow(caller); err != nil {
			return err
		}

		if err := t.gate.RequireSwapper(swapper.Address()); err != nil {
			return err
		}

		if err := t.requirePath(path, t.pair.asset, t.pair.collateral); err != nil {
			return err
		}

		if err := requireAmount(borrowAmount, "borrow amount"); err != nil {
			return err
		}

		if err := requireWhole(initialCollateral, "initial collateral"); err != nil {
			return err
		}

		if err := requireWhole(minCollateralOut, "min collateral out"); err != nil {
			return err
		}

		t.accrue()
		rate, err := t.refresh()
		if err != nil {
			return err
		}

		if initialCollateral.IsPositive() {
			t.addCollateral(caller, initialCollateral, caller)
			if err := t.pull(t.pair.collateral, caller, initialCollateral); err != nil {
				return err
			}
		}

		shares, err := t.borrow(caller, borrowAmount, t.pair.params.Address)
		if err != nil {
			return err
		}

		// more collateral only helps, solvent at the minimum output means solvent after the swap
		projected := t.state.PositionOf(caller)
		projected.CollateralBalance = projected.CollateralBalance.Add(minCollateralOut)
		if !fraxlend.IsSolvent(t.state.TotalBorrow, projected, rate, t.pair.params.MaxLTV) {
			return fmt.Errorf("%w: %s at min collateral out", core.ErrInsolvent, caller.Hex())
		}

		collateralOut, err := t.swap(swapper, t.pair.asset, t.pair.collateral, borrowAmount, minCollateralOut, path)
		if err != nil {
			return err
		}

		t.addCollateral(t.pair.params.Address, collateralOut, caller)
		if err := t.requireSolvent(caller, rate); err != nil {
			return err
		}

		totalCollateral = initialCollateral.Add(collateralOut)
		t.emit(core.EventLeveragedPosition, core.NewEventData().
			Put(core.EventKeyBorrower, caller).
			Put(core.EventKeySwapper, swapper.Address()).
			Put(core.EventKeyBorrowAmount, borrowAmount).
			Put(core.EventKeyShares, shares).
			Put(core.EventKeyInitial, initialCollateral).
			Put(core.EventKeyCollateralOut, collateralOut))

		return nil
	})

	return totalCollateral, err
}

// RepayAssetWithCollateral swap collateral of caller into the asset & repay with it
func (p *Pair) RepayAssetWithCollateral(
	ctx context.Context,
	caller common.Address,
	swapper core.Swapper,
	collateralToSwap, minAssetOut decimal.Decimal,
	path []common.Address,
) (decimal.Decimal, error) {
	var assetOut decimal.Decimal
	err := p.transact(ctx, "repayAssetWithCollateral", func(t *txn) error {
		if err := t.requireExternal(caller); err != nil {
			return err
		}

		if err := t.gate.RequireSwapper(swapper.Address()); err != nil {
			return err
		}

		if err := t.requirePath(path, t.pair.collateral, t.pair.asset); err != nil {
			return err
		}

		if err := requireAmount(collateralToSwap, "collateral to swap"); err != nil {
			return err
		}

		if err := requireWhole(minAssetOut, "min asset out"); err != nil {
			return err
		}

		t.accrue()
		rate, err := t.refresh()
		if err != nil {
			return err
		}

		if err := t.removeCollateral(collateralToSwap, t.pair.params.Address, caller); err != nil {
			return err
		}

		position := t.state.PositionOf(caller)
		minShares := fraxlend.ToShares(t.state.TotalBorrow, minAssetOut, false)
		if err := fraxlend.Require(minShares.LessThanOrEqual(position.BorrowShares), core.ErrInsufficientBorrowShares, caller.Hex()); err != nil {
			return err
		}

		// repaying more only helps, solvent at the minimum output means solvent after the swap
		projected := position
		projected.BorrowShares = projected.BorrowShares.Sub(minShares)
		totalBorrow := core.VaultAccount{
			Amount: decimal.Max(t.state.TotalBorrow.Amount.Sub(minAssetOut), decimal.Zero),
			Shares: t.state.TotalBorrow.Shares.Sub(minShares),
		}
		if !fraxlend.IsSolvent(totalBorrow, projected, rate, t.pair.params.MaxLTV) {
			return fmt.Errorf("%w: %s at min asset out", core.ErrInsolvent, caller.Hex())
		}

		if assetOut, err = t.swap(swapper, t.pair.collateral, t.pair.asset, collateralToSwap, minAssetOut, path); err != nil {
			return err
		}

		// output beyond the debt goes back to the caller
		shares := fraxlend.ToShares(t.state.TotalBorrow, assetOut, false)
		repaid, excess := assetOut, decimal.Zero
		if shares.GreaterThan(position.BorrowShares) {
			shares = position.BorrowShares
			repaid = fraxlend.ToAmount(t.state.TotalBorrow, shares, true)
			excess = assetOut.Sub(repaid)
		}

		if err := t.repay(repaid, shares, t.pair.params.Address, caller); err != nil {
			return err
		}

		if err := t.requireSolvent(caller, rate); err != nil {
			return err
		}

		t.emit(core.EventRepayAssetWithCollateral, core.NewEventData().
			Put(core.EventKeyBorrower, caller).
			Put(core.EventKeySwapper, swapper.Address()).
			Put(core.EventKeyCollateral, collateralToSwap).
			Put(core.EventKeyAssetOut, assetOut).
			Put(core.EventKeyShares, shares))

		return t.push(t.pair.asset, caller, excess)
	})

	return assetOut, err
}

func (t *txn) requirePath(path []common.Address, from, to core.Token) error {
	if len(path) < 2 || path[0] != from.Address() || path[len(path)-1] != to.Address() {
		return fmt.Errorf("%w: swap path must go from %s to %s", core.ErrInvalidPath, from.Address().Hex(), to.Address().Hex())
	}

	return nil
}

// swap amountIn of tokenIn held by the pair, returns the measured tokenOut received
func (t *txn) swap(
	swapper core.Swapper,
	tokenIn, tokenOut core.Token,
	amountIn, minOut decimal.Decimal,
	path []common.Address,
) (decimal.Decimal, error) {
	self := t.pair.params.Address
	if err := tokenIn.Approve(t.ctx, self, swapper.Address(), amountIn); err != nil {
		return decimal.Zero, err
	}

	before, err := tokenOut.BalanceOf(t.ctx, self)
	if err != nil {
		return decimal.Zero, err
	}

	if _, err := swapper.SwapExactTokensForTokens(t.ctx, self, amountIn, minOut, path, self, t.now); err != nil {
		return decimal.Zero, err
	}

	after, err := tokenOut.BalanceOf(t.ctx, self)
	if err != nil {
		return decimal.Zero, err
	}

	out := after.Sub(before)
	if err := fraxlend.Require(out.GreaterThanOrEqual(minOut), core.ErrSlippageTooHigh, out.String()); err != nil {
		return decimal.Zero, err
	}

	return out, nil
}
