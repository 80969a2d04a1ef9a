package cmd

import (
	"context"
	"fmt"
	"time"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"
	"fraxlend/pkg/number"
	"fraxlend/service/feed"
	"fraxlend/service/oracle"
	"fraxlend/service/pair"
	"fraxlend/service/token"
	eventstore "fraxlend/store/event"
	pairstore "fraxlend/store/pair"
	"fraxlend/worker/keeper"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
	"github.com/yiplee/structs"
)

func provideConfig() *core.Config {
	initConfig()
	return &cfg
}

func provideDatabase() *db.DB {
	return db.MustOpen(provideConfig().DB)
}

// ---------------store-----------------------------------------

func providePairStore(db *db.DB) core.PairStore {
	return pairstore.Cache(pairstore.New(db), time.Minute)
}

func provideEventStore(db *db.DB) core.EventStore {
	return eventstore.New(db)
}

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

// ------------------service------------------------------------

func provideContractCaller(ctx context.Context) feed.ContractCaller {
	rpc := provideConfig().Ethereum.RPC
	if rpc == "" {
		return nil
	}

	client, err := feed.Dial(ctx, rpc)
	if err != nil {
		panic(err)
	}

	return client
}

func provideOracle(ctx context.Context) core.ExchangeRateOracle {
	c := provideConfig().Oracle
	caller := provideContractCaller(ctx)

	multiply, err := feed.New(ctx, c.Multiply, caller)
	if err != nil {
		panic(err)
	}

	divide, err := feed.New(ctx, c.Divide, caller)
	if err != nil {
		panic(err)
	}

	o, err := oracle.New(multiply, divide, number.Decimal(c.Normalization))
	if err != nil {
		panic(err)
	}

	return o
}

func provideRateCalculator() core.RateCalculator {
	calculator, err := fraxlend.NewRateCalculator(provideConfig().Pair.Rate)
	if err != nil {
		panic(err)
	}

	return calculator
}

func providePairParams() core.PairParams {
	c := provideConfig()
	return core.PairParams{
		Name:                c.Pair.Name,
		Symbol:              c.Pair.Symbol,
		Address:             common.HexToAddress(c.Pair.Address),
		Asset:               common.HexToAddress(c.Pair.Asset),
		Collateral:          common.HexToAddress(c.Pair.Collateral),
		MaxLTV:              number.Decimal(c.Pair.MaxLTV),
		CleanLiquidationFee: number.Decimal(c.Pair.CleanLiquidationFee),
		MaturityDate:        c.Pair.MaturityDate,
		PenaltyRate:         number.Decimal(c.Pair.PenaltyRate),
		Genesis:             c.App.Genesis,
		SecondsPerBlock:     c.App.SecondsPerBlock,
	}
}

func provideAccessPolicy() core.AccessPolicy {
	c := provideConfig().Access

	policy := core.NewAccessPolicy()
	policy.Owner = common.HexToAddress(c.Owner)
	if c.TimeLock != "" {
		policy.TimeLock = common.HexToAddress(c.TimeLock)
	}

	policy.BorrowerWhitelistActive = c.BorrowerWhitelist
	policy.LenderWhitelistActive = c.LenderWhitelist
	for _, addr := range c.ApprovedBorrowers {
		policy.ApprovedBorrowers[common.HexToAddress(addr)] = true
	}

	for _, addr := range c.ApprovedLenders {
		policy.ApprovedLenders[common.HexToAddress(addr)] = true
	}

	for _, addr := range c.Swappers {
		policy.Swappers[common.HexToAddress(addr)] = true
	}

	return policy
}

// providePair build the pair, resumed from its last snapshot when one exists
//
// Tokens are in-memory ledgers. A resumed pair gets its holdings minted back
// from the snapshot totals so its books stay backed; user balances are not
// part of the snapshot and start empty.
func providePair(ctx context.Context, pairs core.PairStore) *pair.Pair {
	log := logger.FromContext(ctx)
	params := providePairParams()
	asset := token.New(params.Asset, "ASSET")
	collateral := token.New(params.Collateral, "COLLATERAL")

	var opts []pair.Option
	snapshot, err := pairs.Find(ctx, params.Address.Hex())
	switch {
	case store.IsErrNotFound(err):
		log.Infoln("no snapshot found, start a new pair", params.Address.Hex())
	case err != nil:
		panic(err)
	default:
		state, err := snapshot.Restore()
		if err != nil {
			panic(fmt.Errorf("restore snapshot %d: %w", snapshot.Sequence, err))
		}

		assetHeld, collateralHeld := pair.Holdings(state)
		asset.Mint(params.Address, assetHeld)
		collateral.Mint(params.Address, collateralHeld)

		log.Infoln("resume pair at sequence", state.Sequence)
		opts = append(opts, pair.WithState(state))
	}

	p, err := pair.New(pair.Config{
		Params:      params,
		Access:      provideAccessPolicy(),
		ProtocolFee: number.Decimal(provideConfig().Pair.ProtocolFee),
		Asset:       asset,
		Collateral:  collateral,
		Oracle:      provideOracle(ctx),
		Calculator:  provideRateCalculator(),
	}, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

func provideKeeper(ctx context.Context, p *pair.Pair, pairs core.PairStore, events core.EventStore, properties property.Store) *keeper.Keeper {
	c := provideConfig()
	logger.FromContext(ctx).WithFields(structs.Map(c.Keeper)).Infoln("keeper config")

	return keeper.New(keeper.Config{
		Location: c.App.Location,
		Interval: c.Keeper.Interval,
		Batch:    c.Keeper.Batch,
	}, p, pairs, events, keeper.PropertyCheckpoints(properties))
}
