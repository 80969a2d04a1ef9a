package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceFeed external price source
type PriceFeed interface {
	Name() string
	// Decimals decimals of the answer
	Decimals() int32
	// LatestAnswer latest raw integer answer, may be non-positive on a broken feed
	LatestAnswer(ctx context.Context) (decimal.Decimal, error)
}

// ExchangeRateOracle exchange rate source of a pair
type ExchangeRateOracle interface {
	// ExchangeRate borrow asset units per collateral unit, scaled by EXCHANGE_PRECISION
	ExchangeRate(ctx context.Context) (decimal.Decimal, error)
}

// RateCalculator interest rate curve
type RateCalculator interface {
	Name() string
	// NewRate new rate per second from elapsed seconds, utilization (UTIL_PREC) & the old rate
	NewRate(deltaTime int64, utilization, oldRatePerSec decimal.Decimal) decimal.Decimal
}
