package config

import (
	"testing"

	"fraxlend/core"

	"github.com/stretchr/testify/assert"
)

func validConfig() core.Config {
	return core.Config{
		App: core.App{
			Genesis:         1_700_000_000,
			SecondsPerBlock: 12,
		},
		Pair: core.Pair{
			Name:                "Fraxlend Interest Bearing FRAX (Wrapped Ether)",
			Symbol:              "fFRAX-WETH",
			Address:             "0xfa00000000000000000000000000000000000001",
			Asset:               "0x853d955acef822db058eb8505911ed77f175b99e",
			Collateral:          "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
			MaxLTV:              "75000",
			CleanLiquidationFee: "10000",
			ProtocolFee:         "0",
			Rate:                core.Rate{Name: "variable"},
		},
		Access: core.Access{
			Owner: "0x0000000000000000000000000000000000000a01",
		},
		Oracle: core.Oracle{
			Multiply: core.Feed{Kind: "static", Symbol: "WETH/FRAX", Decimals: 18, Answer: "2000000000000000000000"},
		},
	}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	assert.Nil(t, Validate(&cfg))

	t.Run("protocol fee", func(t *testing.T) {
		cfg := validConfig()
		cfg.Pair.ProtocolFee = "50001"
		assert.ErrorIs(t, Validate(&cfg), core.ErrBadProtocolFee)
	})

	t.Run("max ltv", func(t *testing.T) {
		cfg := validConfig()
		cfg.Pair.MaxLTV = "100001"
		assert.ErrorIs(t, Validate(&cfg), core.ErrInvalidConfig)
	})

	t.Run("maturity needs the borrower whitelist", func(t *testing.T) {
		cfg := validConfig()
		cfg.Pair.MaturityDate = 1_800_000_000
		assert.ErrorIs(t, Validate(&cfg), core.ErrBorrowerWhitelistRequired)

		cfg.Access.BorrowerWhitelist = true
		assert.Nil(t, Validate(&cfg))
	})

	t.Run("addresses", func(t *testing.T) {
		cfg := validConfig()
		cfg.Pair.Asset = "frax"
		assert.ErrorIs(t, Validate(&cfg), core.ErrInvalidConfig)

		cfg = validConfig()
		cfg.Access.ApprovedLenders = []string{"0x01"}
		assert.ErrorIs(t, Validate(&cfg), core.ErrInvalidConfig)
	})

	t.Run("required", func(t *testing.T) {
		cfg := validConfig()
		cfg.Access.Owner = ""
		assert.ErrorIs(t, Validate(&cfg), core.ErrInvalidConfig)
	})
}

func TestDefaultKeeper(t *testing.T) {
	cfg := validConfig()
	defaultKeeper(&cfg)
	assert.Equal(t, defaultKeeperInterval, cfg.Keeper.Interval)
	assert.Equal(t, 100, cfg.Keeper.Batch)
}
