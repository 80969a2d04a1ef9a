package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fraxlend/pkg/resthttp"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const defaultTTL = 10 * time.Second

// HTTP ticker endpoint feed
//
// GET {endpoint}/api/v2/tickers/{symbol} -> {"price": "1.23"}
type HTTP struct {
	endpoint string
	symbol   string
	decimals int32
	ttl      time.Duration

	answers gcache.Cache
	sf      singleflight.Group
}

// NewHTTP new http feed, answers are cached for ttl
func NewHTTP(endpoint, symbol string, decimals int32, ttl time.Duration) *HTTP {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &HTTP{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		symbol:   symbol,
		decimals: decimals,
		ttl:      ttl,
		answers:  gcache.New(8).LRU().Build(),
	}
}

func (h *HTTP) Name() string {
	return "http:" + h.symbol
}

func (h *HTTP) Decimals() int32 {
	return h.decimals
}

func (h *HTTP) LatestAnswer(ctx context.Context) (decimal.Decimal, error) {
	if v, err := h.answers.Get(h.symbol); err == nil {
		return v.(decimal.Decimal), nil
	}

	v, err, _ := h.sf.Do(h.symbol, func() (interface{}, error) {
		price, err := h.pull(ctx)
		if err != nil {
			return nil, err
		}

		answer := price.Shift(h.decimals).Truncate(0)
		_ = h.answers.SetWithExpire(h.symbol, answer, h.ttl)
		return answer, nil
	})

	if err != nil {
		return decimal.Zero, err
	}

	return v.(decimal.Decimal), nil
}

func (h *HTTP) pull(ctx context.Context) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/api/v2/tickers/%s", h.endpoint, h.symbol)
	logger.FromContext(ctx).Debugln("pull price:", url)

	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return decimal.Zero, err
	}

	if resp.StatusCode() == http.StatusNotFound {
		return decimal.Zero, fmt.Errorf("ticker %s not found", h.symbol)
	}

	var ticker struct {
		Price decimal.Decimal `json:"price"`
	}

	if err := resthttp.ParseResponse(resp, &ticker); err != nil {
		return decimal.Zero, err
	}

	return ticker.Price, nil
}
