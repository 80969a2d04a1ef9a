package swapper

import (
	"context"
	"errors"
	"testing"
	"time"

	"fraxlend/core"
	"fraxlend/pkg/number"
	"fraxlend/service/token"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapExactTokensForTokens(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1000, 0)

	venue := common.HexToAddress("0x5a")
	trader := common.HexToAddress("0xa1")
	frax := token.New(common.HexToAddress("0x10"), "FRAX")
	weth := token.New(common.HexToAddress("0x20"), "WETH")
	frax.Mint(venue, number.Int(1_000_000))
	weth.Mint(trader, number.Int(10))

	s := New(venue, func() time.Time { return now })
	s.Register(frax, weth)
	// 1 WETH = 2000 FRAX
	s.SetPrice(weth.Address(), frax.Address(), number.Int(2000).Mul(pricePrecision))

	path := []common.Address{weth.Address(), frax.Address()}

	t.Run("needs allowance", func(t *testing.T) {
		_, err := s.SwapExactTokensForTokens(ctx, trader, number.Int(1), number.Int(0), path, trader, 0)
		assert.True(t, errors.Is(err, core.ErrInsufficientAllowance))
	})

	require.Nil(t, weth.Approve(ctx, trader, venue, number.Int(10)))

	t.Run("slippage", func(t *testing.T) {
		_, err := s.SwapExactTokensForTokens(ctx, trader, number.Int(1), number.Int(2001), path, trader, 0)
		assert.True(t, errors.Is(err, core.ErrSlippageTooHigh))
	})

	t.Run("deadline", func(t *testing.T) {
		_, err := s.SwapExactTokensForTokens(ctx, trader, number.Int(1), number.Int(0), path, trader, 999)
		assert.True(t, errors.Is(err, core.ErrPastDeadline))
	})

	t.Run("bad path", func(t *testing.T) {
		_, err := s.SwapExactTokensForTokens(ctx, trader, number.Int(1), number.Int(0), path[:1], trader, 0)
		assert.True(t, errors.Is(err, core.ErrInvalidPath))

		reverse := []common.Address{frax.Address(), weth.Address()}
		_, err = s.SwapExactTokensForTokens(ctx, trader, number.Int(1), number.Int(0), reverse, trader, 0)
		assert.True(t, errors.Is(err, core.ErrInvalidPath))
	})

	t.Run("ok", func(t *testing.T) {
		amounts, err := s.SwapExactTokensForTokens(ctx, trader, number.Int(2), number.Int(4000), path, trader, 1000)
		require.Nil(t, err)
		assert.Equal(t, "4000", amounts[1].String())

		b, _ := frax.BalanceOf(ctx, trader)
		assert.Equal(t, "4000", b.String())
		b, _ = weth.BalanceOf(ctx, venue)
		assert.Equal(t, "2", b.String())
	})
}
