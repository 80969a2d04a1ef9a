package oracle

import (
	"context"
	"fmt"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"
	"fraxlend/pkg/number"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// Oracle composes up to two price feeds into the exchange rate of a pair
//
//	rate = 1e36 * multiply / divide / normalization
type Oracle struct {
	multiply      core.PriceFeed
	divide        core.PriceFeed
	normalization decimal.Decimal
}

// New new exchange rate oracle, nil feeds are skipped
func New(multiply, divide core.PriceFeed, normalization decimal.Decimal) (*Oracle, error) {
	if multiply == nil && divide == nil {
		return nil, fmt.Errorf("%w: oracle without feeds", core.ErrInvalidConfig)
	}

	if normalization.IsZero() {
		normalization = DefaultNormalization(multiply, divide)
	}

	if !normalization.IsPositive() || !number.IsInteger(normalization) {
		return nil, fmt.Errorf("%w: oracle normalization %s", core.ErrInvalidConfig, normalization)
	}

	return &Oracle{
		multiply:      multiply,
		divide:        divide,
		normalization: normalization,
	}, nil
}

// DefaultNormalization 10^(18 + multiply decimals - divide decimals)
func DefaultNormalization(multiply, divide core.PriceFeed) decimal.Decimal {
	exp := int32(18)
	if multiply != nil {
		exp += multiply.Decimals()
	}

	if divide != nil {
		exp -= divide.Decimals()
	}

	return number.Pow10(exp)
}

// ExchangeRate borrow asset per collateral, scaled by EXCHANGE_PRECISION
func (o *Oracle) ExchangeRate(ctx context.Context) (decimal.Decimal, error) {
	log := logger.FromContext(ctx).WithField("service", "oracle")

	price := fraxlend.OracleBase()
	if o.multiply != nil {
		answer, err := latestAnswer(ctx, o.multiply)
		if err != nil {
			log.WithError(err).Infoln("multiply feed", o.multiply.Name())
			return decimal.Zero, err
		}

		price = price.Mul(answer)
	}

	if o.divide != nil {
		answer, err := latestAnswer(ctx, o.divide)
		if err != nil {
			log.WithError(err).Infoln("divide feed", o.divide.Name())
			return decimal.Zero, err
		}

		price = number.Div(price, answer, false)
	}

	rate := number.Div(price, o.normalization, false)
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: zero exchange rate", core.ErrOracleInvalid)
	}

	if !number.Fits(rate, 224) {
		return decimal.Zero, fmt.Errorf("%w: price too large %s", core.ErrOracleInvalid, rate)
	}

	return rate, nil
}

func latestAnswer(ctx context.Context, feed core.PriceFeed) (decimal.Decimal, error) {
	answer, err := feed.LatestAnswer(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", core.ErrOracleInvalid, err)
	}

	whole := answer.Truncate(0)
	if !whole.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s answered %s", core.ErrOracleInvalid, feed.Name(), answer)
	}

	return whole, nil
}
