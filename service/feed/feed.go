package feed

import (
	"context"
	"fmt"

	"fraxlend/core"
	"fraxlend/pkg/number"

	"github.com/ethereum/go-ethereum/common"
)

// New price feed from config, nil when no kind is configured
func New(ctx context.Context, cfg core.Feed, caller ContractCaller) (core.PriceFeed, error) {
	switch cfg.Kind {
	case "":
		return nil, nil
	case "static":
		return NewStatic(cfg.Symbol, number.Decimal(cfg.Answer), cfg.Decimals), nil
	case "http":
		return NewHTTP(cfg.Endpoint, cfg.Symbol, cfg.Decimals, cfg.TTL), nil
	case "chainlink":
		if caller == nil {
			return nil, fmt.Errorf("%w: chainlink feed needs an ethereum rpc", core.ErrInvalidConfig)
		}

		feed := NewChainlink(caller, common.HexToAddress(cfg.Address), cfg.Decimals)
		if cfg.Decimals == 0 {
			if err := feed.LoadDecimals(ctx); err != nil {
				return nil, err
			}
		}

		return feed, nil
	default:
		return nil, fmt.Errorf("%w: unknown feed kind %q", core.ErrInvalidConfig, cfg.Kind)
	}
}
