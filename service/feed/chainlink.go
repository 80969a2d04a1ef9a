package feed

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
)

const aggregatorABI = `[
{"inputs":[],"name":"decimals","outputs":[{"internalType":"uint8","name":"","type":"uint8"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"latestRoundData","outputs":[{"internalType":"uint80","name":"roundId","type":"uint80"},{"internalType":"int256","name":"answer","type":"int256"},{"internalType":"uint256","name":"startedAt","type":"uint256"},{"internalType":"uint256","name":"updatedAt","type":"uint256"},{"internalType":"uint80","name":"answeredInRound","type":"uint80"}],"stateMutability":"view","type":"function"}
]`

var aggregator = mustParseABI(aggregatorABI)

func mustParseABI(s string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(err)
	}

	return parsed
}

// ContractCaller subset of the ethereum rpc the feed reads through
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Dial ethereum json rpc client
func Dial(ctx context.Context, endpoint string) (*ethclient.Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.New("ethereum rpc endpoint required")
	}

	return ethclient.DialContext(ctx, endpoint)
}

// Chainlink aggregator feed
type Chainlink struct {
	caller   ContractCaller
	address  common.Address
	decimals int32
}

// NewChainlink new chainlink feed on the aggregator address
func NewChainlink(caller ContractCaller, address common.Address, decimals int32) *Chainlink {
	return &Chainlink{
		caller:   caller,
		address:  address,
		decimals: decimals,
	}
}

func (c *Chainlink) Name() string {
	return "chainlink:" + c.address.Hex()
}

func (c *Chainlink) Decimals() int32 {
	return c.decimals
}

// LoadDecimals read decimals from the aggregator
func (c *Chainlink) LoadDecimals(ctx context.Context) error {
	values, err := c.call(ctx, "decimals")
	if err != nil {
		return err
	}

	d, ok := values[0].(uint8)
	if !ok {
		return fmt.Errorf("unexpected decimals type %T", values[0])
	}

	c.decimals = int32(d)
	return nil
}

func (c *Chainlink) LatestAnswer(ctx context.Context) (decimal.Decimal, error) {
	values, err := c.call(ctx, "latestRoundData")
	if err != nil {
		return decimal.Zero, err
	}

	answer, ok := values[1].(*big.Int)
	if !ok {
		return decimal.Zero, fmt.Errorf("unexpected answer type %T", values[1])
	}

	return decimal.NewFromBigInt(answer, 0), nil
}

func (c *Chainlink) call(ctx context.Context, method string) ([]interface{}, error) {
	data, err := aggregator.Pack(method)
	if err != nil {
		return nil, err
	}

	to := c.address
	out, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	return aggregator.Unpack(method, out)
}
