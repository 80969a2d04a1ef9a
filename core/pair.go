package core

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// RateInfo current interest rate state of a pair
type RateInfo struct {
	LastBlock         int64           `json:"last_block"`
	FeeToProtocolRate decimal.Decimal `json:"fee_to_protocol_rate"`
	LastTimestamp     int64           `json:"last_timestamp"`
	// interest per second, scaled by RATE_PRECISION
	RatePerSec decimal.Decimal `json:"rate_per_sec"`
}

// ExchangeRateInfo cached oracle answer
type ExchangeRateInfo struct {
	LastTimestamp int64 `json:"last_timestamp"`
	// borrow asset units per collateral unit, scaled by EXCHANGE_PRECISION
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
}

// UserPosition borrower position
type UserPosition struct {
	BorrowShares      decimal.Decimal `json:"borrow_shares"`
	CollateralBalance decimal.Decimal `json:"collateral_balance"`
}

// IsEmpty neither debt nor collateral
func (p *UserPosition) IsEmpty() bool {
	return p.BorrowShares.IsZero() && p.CollateralBalance.IsZero()
}

// PairParams immutable parameters of a pair
type PairParams struct {
	Name       string         `json:"name"`
	Symbol     string         `json:"symbol"`
	Address    common.Address `json:"address"`
	Asset      common.Address `json:"asset"`
	Collateral common.Address `json:"collateral"`
	// scaled by LTV_PRECISION, zero means uncollateralised
	MaxLTV              decimal.Decimal `json:"max_ltv"`
	CleanLiquidationFee decimal.Decimal `json:"clean_liquidation_fee"`
	DirtyLiquidationFee decimal.Decimal `json:"dirty_liquidation_fee"`
	// unix seconds, zero disables maturity
	MaturityDate int64           `json:"maturity_date"`
	PenaltyRate  decimal.Decimal `json:"penalty_rate"`

	Genesis         int64 `json:"genesis"`
	SecondsPerBlock int64 `json:"seconds_per_block"`
}

// HasMaturity maturity date configured
func (p *PairParams) HasMaturity() bool {
	return p.MaturityDate > 0
}

// IsPastMaturity maturity date configured and elapsed at now
func (p *PairParams) IsPastMaturity(now int64) bool {
	return p.HasMaturity() && now > p.MaturityDate
}

// PairState mutable state of a pair, the unit of rollback
type PairState struct {
	TotalAsset      VaultAccount                                          `json:"total_asset"`
	TotalBorrow     VaultAccount                                          `json:"total_borrow"`
	TotalCollateral decimal.Decimal                                       `json:"total_collateral"`
	RateInfo        RateInfo                                              `json:"rate_info"`
	ExchangeRate    ExchangeRateInfo                                      `json:"exchange_rate_info"`
	Positions       map[common.Address]*UserPosition                      `json:"positions"`
	Balances        map[common.Address]decimal.Decimal                    `json:"balances"`
	Allowances      map[common.Address]map[common.Address]decimal.Decimal `json:"allowances"`
	Access          AccessPolicy                                          `json:"access"`
	// sequence of the last emitted event
	Sequence uint64 `json:"sequence"`
}

// NewPairState empty state
func NewPairState() *PairState {
	return &PairState{
		TotalAsset:      NewVaultAccount(),
		TotalBorrow:     NewVaultAccount(),
		TotalCollateral: decimal.Zero,
		RateInfo: RateInfo{
			FeeToProtocolRate: decimal.Zero,
			RatePerSec:        decimal.Zero,
		},
		ExchangeRate: ExchangeRateInfo{
			ExchangeRate: decimal.Zero,
		},
		Positions:  make(map[common.Address]*UserPosition),
		Balances:   make(map[common.Address]decimal.Decimal),
		Allowances: make(map[common.Address]map[common.Address]decimal.Decimal),
		Access:     NewAccessPolicy(),
	}
}

// Position position of the borrower, created on demand
func (s *PairState) Position(borrower common.Address) *UserPosition {
	p, ok := s.Positions[borrower]
	if !ok {
		p = &UserPosition{
			BorrowShares:      decimal.Zero,
			CollateralBalance: decimal.Zero,
		}
		s.Positions[borrower] = p
	}

	return p
}

// PositionOf position copy of the borrower without creating it
func (s *PairState) PositionOf(borrower common.Address) UserPosition {
	if p, ok := s.Positions[borrower]; ok {
		return *p
	}

	return UserPosition{
		BorrowShares:      decimal.Zero,
		CollateralBalance: decimal.Zero,
	}
}

// BalanceOf lender share balance
func (s *PairState) BalanceOf(owner common.Address) decimal.Decimal {
	if b, ok := s.Balances[owner]; ok {
		return b
	}

	return decimal.Zero
}

// SetBalance set lender share balance
func (s *PairState) SetBalance(owner common.Address, amount decimal.Decimal) {
	if amount.IsZero() {
		delete(s.Balances, owner)
		return
	}

	s.Balances[owner] = amount
}

// Allowance share allowance of spender over owner
func (s *PairState) Allowance(owner, spender common.Address) decimal.Decimal {
	if m, ok := s.Allowances[owner]; ok {
		if a, ok := m[spender]; ok {
			return a
		}
	}

	return decimal.Zero
}

// SetAllowance set share allowance of spender over owner
func (s *PairState) SetAllowance(owner, spender common.Address, amount decimal.Decimal) {
	m, ok := s.Allowances[owner]
	if !ok {
		m = make(map[common.Address]decimal.Decimal)
		s.Allowances[owner] = m
	}

	if amount.IsZero() {
		delete(m, spender)
		return
	}

	m[spender] = amount
}

// Clone deep copy
func (s *PairState) Clone() *PairState {
	c := *s
	c.Positions = make(map[common.Address]*UserPosition, len(s.Positions))
	for addr, p := range s.Positions {
		cp := *p
		c.Positions[addr] = &cp
	}

	c.Balances = make(map[common.Address]decimal.Decimal, len(s.Balances))
	for addr, b := range s.Balances {
		c.Balances[addr] = b
	}

	c.Allowances = make(map[common.Address]map[common.Address]decimal.Decimal, len(s.Allowances))
	for owner, m := range s.Allowances {
		cm := make(map[common.Address]decimal.Decimal, len(m))
		for spender, a := range m {
			cm[spender] = a
		}
		c.Allowances[owner] = cm
	}

	c.Access = s.Access.Clone()
	return &c
}

// Constants precision constants of the pair
type Constants struct {
	LTVPrecision       decimal.Decimal `json:"ltv_precision"`
	LiqPrecision       decimal.Decimal `json:"liq_precision"`
	UtilPrecision      decimal.Decimal `json:"util_precision"`
	FeePrecision       decimal.Decimal `json:"fee_precision"`
	ExchangePrecision  decimal.Decimal `json:"exchange_precision"`
	RatePrecision      decimal.Decimal `json:"rate_precision"`
	DefaultInterest    decimal.Decimal `json:"default_interest"`
	DefaultProtocolFee decimal.Decimal `json:"default_protocol_fee"`
	MaxProtocolFee     decimal.Decimal `json:"max_protocol_fee"`
}
