package feed

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// Static fixed answer feed
type Static struct {
	name     string
	decimals int32

	mux    sync.RWMutex
	answer decimal.Decimal
	err    error
}

// NewStatic new static feed
func NewStatic(name string, answer decimal.Decimal, decimals int32) *Static {
	return &Static{
		name:     name,
		decimals: decimals,
		answer:   answer,
	}
}

func (s *Static) Name() string {
	return s.name
}

func (s *Static) Decimals() int32 {
	return s.decimals
}

func (s *Static) LatestAnswer(ctx context.Context) (decimal.Decimal, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	if s.err != nil {
		return decimal.Zero, s.err
	}

	return s.answer, nil
}

// SetAnswer replace the answer
func (s *Static) SetAnswer(answer decimal.Decimal) {
	s.mux.Lock()
	s.answer = answer
	s.err = nil
	s.mux.Unlock()
}

// SetError make the feed fail
func (s *Static) SetError(err error) {
	s.mux.Lock()
	s.err = err
	s.mux.Unlock()
}
