package simulation

import (
	"context"
	"fmt"
	"time"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"
	"fraxlend/pkg/number"
	"fraxlend/service/feed"
	"fraxlend/service/oracle"
	"fraxlend/service/pair"
	"fraxlend/service/swapper"
	"fraxlend/service/token"

	"github.com/ethereum/go-ethereum/common"
	"github.com/facebookgo/clock"
	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

var (
	PairAddress       = common.HexToAddress("0xfa00000000000000000000000000000000000001")
	AssetAddress      = common.HexToAddress("0x853d955acef822db058eb8505911ed77f175b99e")
	CollateralAddress = common.HexToAddress("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2")
	VenueAddress      = common.HexToAddress("0x0000000000000000000000000000000000000c01")

	Owner      = common.HexToAddress("0x0000000000000000000000000000000000000a01")
	Lender     = common.HexToAddress("0x0000000000000000000000000000000000000b01")
	Borrower   = common.HexToAddress("0x0000000000000000000000000000000000000b02")
	Leverager  = common.HexToAddress("0x0000000000000000000000000000000000000b03")
	Liquidator = common.HexToAddress("0x0000000000000000000000000000000000000b04")
)

// E18 v whole tokens of 18 decimals
func E18(v int64) decimal.Decimal {
	return number.Int(v).Mul(number.Pow10(18))
}

// Options scenario knobs, prices are asset per collateral scaled by 1e18
type Options struct {
	Start      time.Time
	Price      decimal.Decimal
	CrashPrice decimal.Decimal
	Elapsed    time.Duration
}

// DefaultOptions WETH at 2000 FRAX, crashing to 1200 after 30 days
func DefaultOptions() Options {
	return Options{
		Start:      time.Unix(1_700_000_000, 0),
		Price:      E18(2000),
		CrashPrice: E18(1200),
		Elapsed:    30 * 24 * time.Hour,
	}
}

// World in-memory pair with its tokens, feed & swap venue
type World struct {
	Clock      *clock.Mock
	Asset      *token.Ledger
	Collateral *token.Ledger
	Feed       *feed.Static
	Venue      *swapper.FixedPrice
	Pair       *pair.Pair
}

// NewWorld pair with funded & approved actors
func NewWorld(ctx context.Context, opts Options) (*World, error) {
	clk := clock.NewMock()
	clk.Add(time.Duration(opts.Start.Unix()) * time.Second)

	price := feed.NewStatic("WETH/FRAX", opts.Price, 18)
	o, err := oracle.New(price, nil, decimal.Zero)
	if err != nil {
		return nil, err
	}

	policy := core.NewAccessPolicy()
	policy.Owner = Owner
	policy.Swappers[VenueAddress] = true

	asset := token.New(AssetAddress, "FRAX")
	collateral := token.New(CollateralAddress, "WETH")

	p, err := pair.New(pair.Config{
		Params: core.PairParams{
			Name:                "Fraxlend Interest Bearing FRAX (Wrapped Ether)",
			Symbol:              "fFRAX-WETH",
			Address:             PairAddress,
			Asset:               AssetAddress,
			Collateral:          CollateralAddress,
			MaxLTV:              number.Int(75000),
			CleanLiquidationFee: number.Int(10000),
			Genesis:             opts.Start.Unix(),
			SecondsPerBlock:     12,
		},
		Access:      policy,
		ProtocolFee: number.Int(10000),
		Asset:       asset,
		Collateral:  collateral,
		Oracle:      o,
		Calculator:  fraxlend.NewVariableRate(),
	}, pair.WithClock(clk))
	if err != nil {
		return nil, err
	}

	venue := swapper.New(VenueAddress, clk.Now)
	venue.Register(asset, collateral)
	venue.SetPrice(AssetAddress, CollateralAddress, number.MulDiv(fraxlend.ExchangePrecision, E18(1), opts.Price, false))
	venue.SetPrice(CollateralAddress, AssetAddress, opts.Price)
	asset.Mint(VenueAddress, E18(10_000_000))
	collateral.Mint(VenueAddress, E18(10_000))

	w := &World{
		Clock:      clk,
		Asset:      asset,
		Collateral: collateral,
		Feed:       price,
		Venue:      venue,
		Pair:       p,
	}

	for _, addr := range []common.Address{Lender, Borrower, Leverager, Liquidator} {
		asset.Mint(addr, E18(1_000_000))
		collateral.Mint(addr, E18(1_000))
		if err := asset.Approve(ctx, addr, PairAddress, E18(1_000_000)); err != nil {
			return nil, err
		}
		if err := collateral.Approve(ctx, addr, PairAddress, E18(1_000)); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// Step outcome of one scripted action
type Step struct {
	Name   string
	Result decimal.Decimal
}

// Report outcome of a scenario
type Report struct {
	Steps  []Step
	State  *core.PairState
	Events []*core.Event
}

// Run lend, borrow, lever up, accrue, crash the price, liquidate & collect fees
func (w *World) Run(ctx context.Context, opts Options) (*Report, error) {
	log := logger.FromContext(ctx)
	report := &Report{}

	steps := []struct {
		name string
		fn   func() (decimal.Decimal, error)
	}{
		{"deposit", func() (decimal.Decimal, error) {
			return w.Pair.Deposit(ctx, Lender, E18(100_000), Lender)
		}},
		{"borrow", func() (decimal.Decimal, error) {
			return w.Pair.BorrowAsset(ctx, Borrower, E18(10_000), E18(10), Borrower)
		}},
		{"leverage", func() (decimal.Decimal, error) {
			borrow := E18(3000)
			out, err := w.Venue.Quote(borrow, []common.Address{AssetAddress, CollateralAddress})
			if err != nil {
				return decimal.Zero, err
			}

			return w.Pair.LeveragedPosition(ctx, Leverager, w.Venue, borrow, E18(2), out[len(out)-1], []common.Address{AssetAddress, CollateralAddress})
		}},
		{"accrue", func() (decimal.Decimal, error) {
			w.Clock.Add(opts.Elapsed)
			result, err := w.Pair.AddInterest(ctx)
			return result.InterestEarned, err
		}},
		{"crash", func() (decimal.Decimal, error) {
			w.Feed.SetAnswer(opts.CrashPrice)
			w.Venue.SetPrice(CollateralAddress, AssetAddress, opts.CrashPrice)
			return w.Pair.UpdateExchangeRate(ctx)
		}},
		{"liquidate", func() (decimal.Decimal, error) {
			shares := w.Pair.UserBorrowShares(Borrower)
			if w.Pair.IsSolvent(Borrower) {
				return decimal.Zero, fmt.Errorf("borrower still solvent at %s", opts.CrashPrice)
			}

			return w.Pair.Liquidate(ctx, Liquidator, shares, w.Clock.Now().Unix()+60, Borrower)
		}},
		{"withdraw fees", func() (decimal.Decimal, error) {
			return w.Pair.WithdrawFees(ctx, Owner, decimal.Zero, Owner)
		}},
	}

	for _, step := range steps {
		result, err := step.fn()
		if err != nil {
			return report, fmt.Errorf("%s: %w", step.name, err)
		}

		log.WithField("step", step.name).Debugln("done", result)
		report.Steps = append(report.Steps, Step{Name: step.name, Result: result})
	}

	report.State = w.Pair.State()
	report.Events = w.Pair.Events(0, 0)
	return report, nil
}
