package fraxlend

import (
	"fraxlend/core"
	"fraxlend/pkg/number"

	"github.com/shopspring/decimal"
)

var (
	// LTVPrecision precision of max LTV, 1e5 = 100%
	LTVPrecision = number.Pow10(5)
	// LiqPrecision precision of liquidation fees
	LiqPrecision = number.Pow10(5)
	// UtilPrecision precision of utilization
	UtilPrecision = number.Pow10(5)
	// FeePrecision precision of the protocol fee
	FeePrecision = number.Pow10(5)
	// ExchangePrecision precision of the exchange rate
	ExchangePrecision = number.Pow10(18)
	// RatePrecision precision of the per second rate
	RatePrecision = number.Pow10(18)

	// DefaultInterest ~0.5% per year, per second
	DefaultInterest = number.Int(158049988)
	// DefaultProtocolFee no protocol fee
	DefaultProtocolFee = decimal.Zero
	// MaxProtocolFee 50%
	MaxProtocolFee = number.Int(50000)

	// dirty fee = clean fee * 90%
	dirtyFeeRatio = number.Int(90000)

	// oracle price base, 1e36
	oraclePrecision = number.Pow10(36)

	// Uint128Max bound of totals
	Uint128Max = number.MaxUint(128)
	// Uint224Max bound of exchange rates
	Uint224Max = number.MaxUint(224)
)

// SecondsPerYear 365 days
const SecondsPerYear int64 = 31536000

// GetConstants precision constants of the pair
func GetConstants() core.Constants {
	return core.Constants{
		LTVPrecision:       LTVPrecision,
		LiqPrecision:       LiqPrecision,
		UtilPrecision:      UtilPrecision,
		FeePrecision:       FeePrecision,
		ExchangePrecision:  ExchangePrecision,
		RatePrecision:      RatePrecision,
		DefaultInterest:    DefaultInterest,
		DefaultProtocolFee: DefaultProtocolFee,
		MaxProtocolFee:     MaxProtocolFee,
	}
}

// DirtyLiquidationFee dirty fee derived from the clean fee
func DirtyLiquidationFee(cleanFee decimal.Decimal) decimal.Decimal {
	return number.MulDiv(cleanFee, dirtyFeeRatio, LiqPrecision, false)
}

// OracleBase 1e36 base the oracle composes feed answers on
func OracleBase() decimal.Decimal {
	return oraclePrecision
}
