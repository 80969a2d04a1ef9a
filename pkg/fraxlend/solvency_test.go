package fraxlend

import (
	"testing"

	"fraxlend/core"
	"fraxlend/pkg/number"

	"github.com/stretchr/testify/assert"
)

func position(shares, collateral int64) core.UserPosition {
	return core.UserPosition{BorrowShares: number.Int(shares), CollateralBalance: number.Int(collateral)}
}

func TestIsSolvent(t *testing.T) {
	total := vault(1000, 1000)
	rate := ExchangePrecision
	maxLTV := number.Int(75000)

	tests := []struct {
		name     string
		position core.UserPosition
		maxLTV   int64
		solvent  bool
	}{
		{"no debt", position(0, 0), 75000, true},
		{"debt without collateral", position(1, 0), 75000, false},
		{"at max ltv", position(750, 1000), 75000, true},
		{"over max ltv", position(751, 1000), 75000, false},
		{"uncollateralised pair", position(1000, 0), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ltv := maxLTV
			if tt.maxLTV != 75000 {
				ltv = number.Int(tt.maxLTV)
			}

			assert.Equal(t, tt.solvent, IsSolvent(total, tt.position, rate, ltv))
		})
	}
}

func TestIsSolventUsesExchangeRate(t *testing.T) {
	total := vault(1000, 1000)
	p := position(750, 1000)
	maxLTV := number.Int(75000)

	// collateral worth half the asset
	half := number.Pow10(17).Mul(number.Int(5))
	assert.False(t, IsSolvent(total, p, half, maxLTV))
	assert.True(t, IsSolvent(total, position(375, 1000), half, maxLTV))
}

func TestLTV(t *testing.T) {
	total := vault(1000, 1000)
	assert.Equal(t, "0", LTV(total, position(0, 10), ExchangePrecision).String())
	assert.Equal(t, "75000", LTV(total, position(750, 1000), ExchangePrecision).String())
	assert.Equal(t, "-1", LTV(total, position(10, 0), ExchangePrecision).String())
}
