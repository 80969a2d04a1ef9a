package oracle

import (
	"context"
	"errors"
	"testing"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"
	"fraxlend/pkg/number"
	"fraxlend/service/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeRateMultiplyDivide(t *testing.T) {
	ctx := context.Background()

	// collateral ETH at 2000 USD, asset FRAX at 1 USD, both 8 decimals
	eth := feed.NewStatic("eth", number.Int(200000000000), 8)
	frax := feed.NewStatic("frax", number.Int(100000000), 8)

	o, err := New(eth, frax, number.Pow10(18))
	require.Nil(t, err)

	rate, err := o.ExchangeRate(ctx)
	require.Nil(t, err)
	assert.Equal(t, number.Int(2000).Mul(fraxlend.ExchangePrecision).String(), rate.String())
}

func TestExchangeRateDefaultNormalization(t *testing.T) {
	eth := feed.NewStatic("eth", number.Int(200000000000), 8)
	assert.Equal(t, number.Pow10(26).String(), DefaultNormalization(eth, nil).String())

	o, err := New(eth, nil, number.Int(0))
	require.Nil(t, err)

	rate, err := o.ExchangeRate(context.Background())
	require.Nil(t, err)
	assert.Equal(t, number.Int(2000).Mul(fraxlend.ExchangePrecision).String(), rate.String())
}

func TestExchangeRateRejectsBadAnswers(t *testing.T) {
	ctx := context.Background()
	eth := feed.NewStatic("eth", number.Int(0), 8)

	o, err := New(eth, nil, number.Int(0))
	require.Nil(t, err)

	_, err = o.ExchangeRate(ctx)
	assert.True(t, errors.Is(err, core.ErrOracleInvalid), "zero answer")

	eth.SetAnswer(number.Int(-5))
	_, err = o.ExchangeRate(ctx)
	assert.True(t, errors.Is(err, core.ErrOracleInvalid), "negative answer")

	eth.SetAnswer(number.Decimal("0.5"))
	_, err = o.ExchangeRate(ctx)
	assert.True(t, errors.Is(err, core.ErrOracleInvalid), "answer below one unit")

	frax := feed.NewStatic("frax", number.Decimal("0.5"), 8)
	eth.SetAnswer(number.Int(200000000000))
	o2, err := New(eth, frax, number.Pow10(18))
	require.Nil(t, err)
	assert.NotPanics(t, func() {
		_, err = o2.ExchangeRate(ctx)
	})
	assert.True(t, errors.Is(err, core.ErrOracleInvalid), "divide answer below one unit")

	eth.SetError(errors.New("feed down"))
	_, err = o.ExchangeRate(ctx)
	assert.True(t, errors.Is(err, core.ErrOracleInvalid), "feed error")
}

func TestExchangeRateBounds(t *testing.T) {
	ctx := context.Background()

	huge := feed.NewStatic("huge", fraxlend.Uint224Max, 0)
	o, err := New(huge, nil, number.Int(1))
	require.Nil(t, err)
	_, err = o.ExchangeRate(ctx)
	assert.True(t, errors.Is(err, core.ErrOracleInvalid), "price too large")

	tiny := feed.NewStatic("tiny", number.Int(1), 0)
	o, err = New(nil, tiny, number.Pow10(40))
	require.Nil(t, err)
	_, err = o.ExchangeRate(ctx)
	assert.True(t, errors.Is(err, core.ErrOracleInvalid), "rounds to zero")
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, nil, number.Int(1))
	assert.True(t, errors.Is(err, core.ErrInvalidConfig))

	eth := feed.NewStatic("eth", number.Int(1), 0)
	_, err = New(eth, nil, number.Int(-1))
	assert.True(t, errors.Is(err, core.ErrInvalidConfig))
}
