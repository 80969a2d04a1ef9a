package feed

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fraxlend/core"
	"fraxlend/pkg/number"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	ctx := context.Background()
	s := NewStatic("eth", number.Int(2000), 8)
	assert.Equal(t, int32(8), s.Decimals())

	answer, err := s.LatestAnswer(ctx)
	require.Nil(t, err)
	assert.Equal(t, "2000", answer.String())

	s.SetError(errors.New("down"))
	_, err = s.LatestAnswer(ctx)
	assert.NotNil(t, err)

	s.SetAnswer(number.Int(3000))
	answer, err = s.LatestAnswer(ctx)
	require.Nil(t, err)
	assert.Equal(t, "3000", answer.String())
}

func TestHTTPCachesAnswer(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path != "/api/v2/tickers/ETH" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"price":"1850.12345678"}`)
	}))
	defer srv.Close()

	ctx := context.Background()
	f := NewHTTP(srv.URL+"/", "ETH", 8, time.Minute)

	answer, err := f.LatestAnswer(ctx)
	require.Nil(t, err)
	assert.Equal(t, "185012345678", answer.String())

	_, err = f.LatestAnswer(ctx)
	require.Nil(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	missing := NewHTTP(srv.URL, "BTC", 8, time.Minute)
	_, err = missing.LatestAnswer(ctx)
	assert.NotNil(t, err)
}

type fakeCaller struct {
	answer   *big.Int
	decimals uint8
	err      error
}

func (f *fakeCaller) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}

	method, err := aggregator.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}

	switch method.Name {
	case "decimals":
		return method.Outputs.Pack(f.decimals)
	default:
		return method.Outputs.Pack(big.NewInt(7), f.answer, big.NewInt(1), big.NewInt(2), big.NewInt(7))
	}
}

func TestChainlink(t *testing.T) {
	ctx := context.Background()
	caller := &fakeCaller{answer: big.NewInt(200012345678), decimals: 8}

	f, err := New(ctx, core.Feed{Kind: "chainlink", Address: "0x5f4eC3Df9cbd43714FE2740f5E3616155c5b8419"}, caller)
	require.Nil(t, err)
	assert.Equal(t, int32(8), f.Decimals())
	assert.Equal(t, "chainlink:"+common.HexToAddress("0x5f4eC3Df9cbd43714FE2740f5E3616155c5b8419").Hex(), f.Name())

	answer, err := f.LatestAnswer(ctx)
	require.Nil(t, err)
	assert.Equal(t, "200012345678", answer.String())

	caller.answer = big.NewInt(-1)
	answer, err = f.LatestAnswer(ctx)
	require.Nil(t, err)
	assert.Equal(t, "-1", answer.String(), "sign is kept for the oracle to reject")

	caller.err = errors.New("rpc down")
	_, err = f.LatestAnswer(ctx)
	assert.NotNil(t, err)
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	f, err := New(ctx, core.Feed{}, nil)
	require.Nil(t, err)
	assert.Nil(t, f)

	f, err = New(ctx, core.Feed{Kind: "static", Symbol: "x", Answer: "5", Decimals: 2}, nil)
	require.Nil(t, err)
	assert.Equal(t, "x", f.Name())

	_, err = New(ctx, core.Feed{Kind: "chainlink"}, nil)
	assert.True(t, errors.Is(err, core.ErrInvalidConfig))

	_, err = New(ctx, core.Feed{Kind: "pyth"}, nil)
	assert.True(t, errors.Is(err, core.ErrInvalidConfig))
}
