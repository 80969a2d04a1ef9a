package pair

import (
	"fmt"
	"sort"
	"sync"

	"fraxlend/core"
	internal "fraxlend/internal/fraxlend"
	"fraxlend/pkg/fraxlend"

	"github.com/ethereum/go-ethereum/common"
	"github.com/facebookgo/clock"
	"github.com/shopspring/decimal"
)

// Config collaborators & parameters of a pair
type Config struct {
	Params      core.PairParams
	Access      core.AccessPolicy
	ProtocolFee decimal.Decimal

	Asset      core.Token
	Collateral core.Token
	Oracle     core.ExchangeRateOracle
	Calculator core.RateCalculator
}

// Option pair option
type Option func(p *Pair)

// WithClock use clk as the time source
func WithClock(clk clock.Clock) Option {
	return func(p *Pair) {
		p.clock = clk
	}
}

// WithState resume from a persisted state
func WithState(state *core.PairState) Option {
	return func(p *Pair) {
		p.restored = state
	}
}

// Pair single asset/collateral lending pair
//
// Every mutator runs as one transaction under mux. Views read the last
// committed state under view, which is never held across external calls.
type Pair struct {
	params     core.PairParams
	asset      core.Token
	collateral core.Token
	oracle     core.ExchangeRateOracle
	calculator core.RateCalculator
	clock      clock.Clock
	blocks     internal.BlockClock
	restored   *core.PairState

	mux sync.Mutex

	view        sync.RWMutex
	state       *core.PairState
	events      []*core.Event
	subscribers []Subscriber
}

// New new pair
func New(cfg Config, opts ...Option) (*Pair, error) {
	if cfg.Asset == nil || cfg.Collateral == nil || cfg.Oracle == nil || cfg.Calculator == nil {
		return nil, fmt.Errorf("%w: pair needs asset, collateral, oracle & rate calculator", core.ErrInvalidConfig)
	}

	if cfg.Params.HasMaturity() && !cfg.Access.BorrowerWhitelistActive {
		return nil, core.ErrBorrowerWhitelistRequired
	}

	if cfg.ProtocolFee.GreaterThan(fraxlend.MaxProtocolFee) || cfg.ProtocolFee.IsNegative() {
		return nil, fmt.Errorf("%w: %s", core.ErrBadProtocolFee, cfg.ProtocolFee)
	}

	params := cfg.Params
	if params.DirtyLiquidationFee.IsZero() {
		params.DirtyLiquidationFee = fraxlend.DirtyLiquidationFee(params.CleanLiquidationFee)
	}

	p := &Pair{
		params:     params,
		asset:      cfg.Asset,
		collateral: cfg.Collateral,
		oracle:     cfg.Oracle,
		calculator: cfg.Calculator,
		clock:      clock.New(),
		blocks: internal.BlockClock{
			Genesis:         params.Genesis,
			SecondsPerBlock: params.SecondsPerBlock,
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.restored != nil {
		p.state = p.restored.Clone()
		p.restored = nil
		return p, nil
	}

	now := p.clock.Now().Unix()
	state := core.NewPairState()
	state.Access = cfg.Access.Clone()
	state.RateInfo = core.RateInfo{
		LastBlock:         p.blocks.Block(now),
		FeeToProtocolRate: cfg.ProtocolFee,
		LastTimestamp:     now,
		RatePerSec:        fraxlend.DefaultInterest,
	}

	p.state = state
	return p, nil
}

func (p *Pair) read(fn func(state *core.PairState)) {
	p.view.RLock()
	defer p.view.RUnlock()

	fn(p.state)
}

// Params immutable parameters
func (p *Pair) Params() core.PairParams {
	return p.params
}

func (p *Pair) Address() common.Address {
	return p.params.Address
}

func (p *Pair) Name() string {
	return p.params.Name
}

func (p *Pair) Symbol() string {
	return p.params.Symbol
}

// Asset borrow asset token address
func (p *Pair) Asset() common.Address {
	return p.asset.Address()
}

// Collateral collateral token address
func (p *Pair) Collateral() common.Address {
	return p.collateral.Address()
}

func (p *Pair) MaxLTV() decimal.Decimal {
	return p.params.MaxLTV
}

func (p *Pair) CleanLiquidationFee() decimal.Decimal {
	return p.params.CleanLiquidationFee
}

func (p *Pair) DirtyLiquidationFee() decimal.Decimal {
	return p.params.DirtyLiquidationFee
}

func (p *Pair) MaturityDate() int64 {
	return p.params.MaturityDate
}

func (p *Pair) PenaltyRate() decimal.Decimal {
	return p.params.PenaltyRate
}

// GetConstants precision constants
func (p *Pair) GetConstants() core.Constants {
	return fraxlend.GetConstants()
}

// State deep copy of the committed state
func (p *Pair) State() *core.PairState {
	var state *core.PairState
	p.read(func(s *core.PairState) {
		state = s.Clone()
	})

	return state
}

// Sequence sequence of the last committed event
func (p *Pair) Sequence() uint64 {
	var seq uint64
	p.read(func(s *core.PairState) {
		seq = s.Sequence
	})

	return seq
}

func (p *Pair) TotalAsset() core.VaultAccount {
	var v core.VaultAccount
	p.read(func(s *core.PairState) {
		v = s.TotalAsset
	})

	return v
}

func (p *Pair) TotalBorrow() core.VaultAccount {
	var v core.VaultAccount
	p.read(func(s *core.PairState) {
		v = s.TotalBorrow
	})

	return v
}

func (p *Pair) TotalCollateral() decimal.Decimal {
	var v decimal.Decimal
	p.read(func(s *core.PairState) {
		v = s.TotalCollateral
	})

	return v
}

// CurrentRateInfo rate info as of the last accrual
func (p *Pair) CurrentRateInfo() core.RateInfo {
	var v core.RateInfo
	p.read(func(s *core.PairState) {
		v = s.RateInfo
	})

	return v
}

// ExchangeRateInfo cached exchange rate
func (p *Pair) ExchangeRateInfo() core.ExchangeRateInfo {
	var v core.ExchangeRateInfo
	p.read(func(s *core.PairState) {
		v = s.ExchangeRate
	})

	return v
}

func (p *Pair) UserBorrowShares(borrower common.Address) decimal.Decimal {
	var v decimal.Decimal
	p.read(func(s *core.PairState) {
		v = s.PositionOf(borrower).BorrowShares
	})

	return v
}

func (p *Pair) UserCollateralBalance(borrower common.Address) decimal.Decimal {
	var v decimal.Decimal
	p.read(func(s *core.PairState) {
		v = s.PositionOf(borrower).CollateralBalance
	})

	return v
}

// ToBorrowAmount borrow shares to asset amount
func (p *Pair) ToBorrowAmount(shares decimal.Decimal, roundUp bool) decimal.Decimal {
	var v decimal.Decimal
	p.read(func(s *core.PairState) {
		v = fraxlend.ToAmount(s.TotalBorrow, shares, roundUp)
	})

	return v
}

// ToBorrowShares asset amount to borrow shares
func (p *Pair) ToBorrowShares(amount decimal.Decimal, roundUp bool) decimal.Decimal {
	var v decimal.Decimal
	p.read(func(s *core.PairState) {
		v = fraxlend.ToShares(s.TotalBorrow, amount, roundUp)
	})

	return v
}

// ToAssetAmount lender shares to asset amount
func (p *Pair) ToAssetAmount(shares decimal.Decimal, roundUp bool) decimal.Decimal {
	var v decimal.Decimal
	p.read(func(s *core.PairState) {
		v = fraxlend.ToAmount(s.TotalAsset, shares, roundUp)
	})

	return v
}

// ToAssetShares asset amount to lender shares
func (p *Pair) ToAssetShares(amount decimal.Decimal, roundUp bool) decimal.Decimal {
	var v decimal.Decimal
	p.read(func(s *core.PairState) {
		v = fraxlend.ToShares(s.TotalAsset, amount, roundUp)
	})

	return v
}

// IsSolvent solvency of the borrower at the cached exchange rate
func (p *Pair) IsSolvent(borrower common.Address) bool {
	var ok bool
	p.read(func(s *core.PairState) {
		ok = fraxlend.IsSolvent(s.TotalBorrow, s.PositionOf(borrower), s.ExchangeRate.ExchangeRate, p.params.MaxLTV)
	})

	return ok
}

// LTV loan to value of the borrower at the cached exchange rate
func (p *Pair) LTV(borrower common.Address) decimal.Decimal {
	var v decimal.Decimal
	p.read(func(s *core.PairState) {
		v = fraxlend.LTV(s.TotalBorrow, s.PositionOf(borrower), s.ExchangeRate.ExchangeRate)
	})

	return v
}

func (p *Pair) Owner() common.Address {
	var v common.Address
	p.read(func(s *core.PairState) {
		v = s.Access.Owner
	})

	return v
}

func (p *Pair) TimeLock() common.Address {
	var v common.Address
	p.read(func(s *core.PairState) {
		v = s.Access.TimeLock
	})

	return v
}

func (p *Pair) Paused() bool {
	var v bool
	p.read(func(s *core.PairState) {
		v = s.Access.Paused
	})

	return v
}

// ApprovedBorrowers sorted approved borrowers
func (p *Pair) ApprovedBorrowers() []common.Address {
	var v []common.Address
	p.read(func(s *core.PairState) {
		v = sorted(core.Addresses(s.Access.ApprovedBorrowers))
	})

	return v
}

// ApprovedLenders sorted approved lenders
func (p *Pair) ApprovedLenders() []common.Address {
	var v []common.Address
	p.read(func(s *core.PairState) {
		v = sorted(core.Addresses(s.Access.ApprovedLenders))
	})

	return v
}

// Swappers sorted approved swappers
func (p *Pair) Swappers() []common.Address {
	var v []common.Address
	p.read(func(s *core.PairState) {
		v = sorted(core.Addresses(s.Access.Swappers))
	})

	return v
}

func sorted(addrs []common.Address) []common.Address {
	sort.Slice(addrs, func(i, j int) bool {
		return addrs[i].Hex() < addrs[j].Hex()
	})

	return addrs
}

// Holdings token balances the pair holds when its books are fully backed
func Holdings(state *core.PairState) (asset, collateral decimal.Decimal) {
	asset = decimal.Max(state.TotalAsset.Amount.Sub(state.TotalBorrow.Amount), decimal.Zero)
	return asset, state.TotalCollateral
}
