package swapper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fraxlend/core"
	"fraxlend/pkg/number"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

var pricePrecision = number.Pow10(18)

type pairKey struct {
	in, out common.Address
}

// FixedPrice swap venue quoting every route at a configured price
type FixedPrice struct {
	address common.Address
	now     func() time.Time

	mux    sync.RWMutex
	tokens map[common.Address]core.Token
	prices map[pairKey]decimal.Decimal
}

// New new fixed price venue, now defaults to time.Now
func New(address common.Address, now func() time.Time) *FixedPrice {
	if now == nil {
		now = time.Now
	}

	return &FixedPrice{
		address: address,
		now:     now,
		tokens:  make(map[common.Address]core.Token),
		prices:  make(map[pairKey]decimal.Decimal),
	}
}

func (s *FixedPrice) Address() common.Address {
	return s.address
}

// Register make a token tradable
func (s *FixedPrice) Register(tokens ...core.Token) {
	s.mux.Lock()
	defer s.mux.Unlock()

	for _, t := range tokens {
		s.tokens[t.Address()] = t
	}
}

// SetPrice out units per in unit, scaled by 1e18
func (s *FixedPrice) SetPrice(in, out common.Address, price decimal.Decimal) {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.prices[pairKey{in: in, out: out}] = price
}

// Quote amounts along the path
func (s *FixedPrice) Quote(amountIn decimal.Decimal, path []common.Address) ([]decimal.Decimal, error) {
	if len(path) < 2 {
		return nil, fmt.Errorf("%w: path length %d", core.ErrInvalidPath, len(path))
	}

	s.mux.RLock()
	defer s.mux.RUnlock()

	amounts := make([]decimal.Decimal, len(path))
	amounts[0] = amountIn
	for i := 1; i < len(path); i++ {
		price, ok := s.prices[pairKey{in: path[i-1], out: path[i]}]
		if !ok {
			return nil, fmt.Errorf("%w: no route %s -> %s", core.ErrInvalidPath, path[i-1].Hex(), path[i].Hex())
		}

		amounts[i] = number.MulDiv(amounts[i-1], price, pricePrecision, false)
	}

	return amounts, nil
}

func (s *FixedPrice) SwapExactTokensForTokens(
	ctx context.Context,
	caller common.Address,
	amountIn, amountOutMin decimal.Decimal,
	path []common.Address,
	to common.Address,
	deadline int64,
) ([]decimal.Decimal, error) {
	if deadline > 0 && s.now().Unix() > deadline {
		return nil, core.ErrPastDeadline
	}

	amounts, err := s.Quote(amountIn, path)
	if err != nil {
		return nil, err
	}

	out := amounts[len(amounts)-1]
	if out.LessThan(amountOutMin) {
		return nil, fmt.Errorf("%w: got %s, min %s", core.ErrSlippageTooHigh, out, amountOutMin)
	}

	s.mux.RLock()
	tokenIn, okIn := s.tokens[path[0]]
	tokenOut, okOut := s.tokens[path[len(path)-1]]
	s.mux.RUnlock()
	if !okIn || !okOut {
		return nil, fmt.Errorf("%w: unknown token", core.ErrInvalidPath)
	}

	if err := tokenIn.TransferFrom(ctx, s.address, caller, s.address, amountIn); err != nil {
		return nil, err
	}

	if err := tokenOut.Transfer(ctx, s.address, to, out); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).WithField("service", "swapper").Debugf("swap %s -> %s for %s", amountIn, out, to.Hex())
	return amounts, nil
}
