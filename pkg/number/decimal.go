package number

import (
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Decimal parse decimal from string, zero on failure
func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// Ceil ceil d at the given precision
func Ceil(d decimal.Decimal, precision int32) decimal.Decimal {
	return d.Shift(precision).Ceil().Shift(-precision)
}

// Pow10 10^n as an integer decimal
func Pow10(n int32) decimal.Decimal {
	return decimal.New(1, n)
}

// Int integer decimal
func Int(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// Div integer division a / b, rounded up when roundUp and the remainder is not zero.
//
// Both operands are expected to be integers; the quotient is exact.
// A zero divisor yields zero, callers check their divisors.
func Div(a, b decimal.Decimal, roundUp bool) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}

	q, r := a.QuoRem(b, 0)
	if roundUp && !r.IsZero() {
		q = q.Add(decimal.New(1, 0))
	}

	return q
}

// MulDiv a * b / c with explicit rounding direction
func MulDiv(a, b, c decimal.Decimal, roundUp bool) decimal.Decimal {
	return Div(a.Mul(b), c, roundUp)
}

// Min smaller one of a and b
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}

	return b
}

// IsInteger reports whether d is a non-negative integer
func IsInteger(d decimal.Decimal) bool {
	return !d.IsNegative() && d.Equal(d.Truncate(0))
}

// Fits reports whether the non-negative integer d fits in an unsigned integer of the given bit width
func Fits(d decimal.Decimal, bits uint) bool {
	if d.IsNegative() {
		return false
	}

	v, overflow := uint256.FromBig(d.Truncate(0).BigInt())
	if overflow {
		return false
	}

	return v.BitLen() <= int(bits)
}

// MaxUint max value of an unsigned integer with the given bit width (bits <= 256)
func MaxUint(bits uint) decimal.Decimal {
	one := uint256.NewInt(1)
	max := new(uint256.Int).Lsh(one, bits)
	max.Sub(max, one)

	return decimal.NewFromBigInt(max.ToBig(), 0)
}
