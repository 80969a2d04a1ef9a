package keeper

import (
	"context"
	"fmt"
	"time"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"
	"fraxlend/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Pair the pair operations the keeper drives
type Pair interface {
	Params() core.PairParams
	State() *core.PairState
	AddInterest(ctx context.Context) (fraxlend.AccrueResult, error)
	UpdateExchangeRate(ctx context.Context) (decimal.Decimal, error)
	Events(from uint64, limit int) []*core.Event
	Prune(sequence uint64)
}

// Config keeper config
type Config struct {
	Location string
	Interval time.Duration
	Batch    int
}

// Keeper pokes the pair and persists its snapshot & events
type Keeper struct {
	worker.BaseJob
	pair        Pair
	pairs       core.PairStore
	events      core.EventStore
	checkpoints Checkpoints
	batch       int
	metrics     *metrics
}

// New new keeper worker
func New(
	cfg Config,
	pair Pair,
	pairs core.PairStore,
	events core.EventStore,
	checkpoints Checkpoints,
) *Keeper {
	k := &Keeper{
		pair:        pair,
		pairs:       pairs,
		events:      events,
		checkpoints: checkpoints,
		batch:       cfg.Batch,
		metrics:     pairMetrics(),
	}

	if k.batch <= 0 {
		k.batch = 100
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = 15 * time.Second
	}

	l, err := time.LoadLocation(cfg.Location)
	if err != nil {
		l = time.Local
	}

	k.Cron = cron.New(cron.WithLocation(l))
	k.Spec = fmt.Sprintf("@every %s", interval)
	k.OnWork = k.onWork
	return k
}

func (k *Keeper) checkpointKey() string {
	return "keeper_checkpoint_" + k.pair.Params().Address.Hex()
}

func (k *Keeper) onWork(ctx context.Context) error {
	params := k.pair.Params()
	addr := params.Address.Hex()
	log := logger.FromContext(ctx).WithField("pair", addr)
	ctx = logger.WithContext(ctx, log)

	// a broken oracle leaves the cached rate in place, persistence still runs
	if _, err := k.pair.AddInterest(ctx); err != nil {
		log.WithError(err).Errorln("AddInterest")
		k.metrics.observeFailure(addr, "add_interest")
	}

	if _, err := k.pair.UpdateExchangeRate(ctx); err != nil {
		log.WithError(err).Errorln("UpdateExchangeRate")
		k.metrics.observeFailure(addr, "update_exchange_rate")
	}

	state := k.pair.State()
	if err := k.flush(ctx, addr, state.Sequence); err != nil {
		k.metrics.observeFailure(addr, "flush")
		return err
	}

	snapshot, err := core.NewPairSnapshot(&params, state)
	if err != nil {
		k.metrics.observeFailure(addr, "snapshot")
		return err
	}

	if err := k.pairs.Save(ctx, snapshot); err != nil {
		log.WithError(err).Errorln("pairs.Save")
		k.metrics.observeFailure(addr, "snapshot")
		return err
	}

	k.metrics.observeState(addr, state)
	log.WithFields(logrus.Fields{
		"sequence":    state.Sequence,
		"rate":        state.RateInfo.RatePerSec,
		"total_asset": state.TotalAsset.Amount,
	}).Debugln("keeper round done")
	return nil
}

// flush persist buffered events up to sequence, then drop them from the pair
func (k *Keeper) flush(ctx context.Context, pair string, sequence uint64) error {
	log := logger.FromContext(ctx)

	checkpoint, err := k.checkpoints.Get(ctx, k.checkpointKey())
	if err != nil {
		log.WithError(err).Errorln("checkpoints.Get")
		return err
	}

	last, err := k.events.LastSequence(ctx, pair)
	if err != nil {
		log.WithError(err).Errorln("events.LastSequence")
		return err
	}

	if last > checkpoint {
		checkpoint = last
	}

	for checkpoint < sequence {
		events := k.pair.Events(checkpoint, k.batch)
		batch := make([]*core.Event, 0, len(events))
		for _, e := range events {
			if e.Sequence > sequence {
				break
			}
			batch = append(batch, e)
		}

		if len(batch) == 0 {
			break
		}

		if err := k.events.Create(ctx, batch...); err != nil {
			log.WithError(err).Errorln("events.Create")
			return err
		}

		checkpoint = batch[len(batch)-1].Sequence
		if err := k.checkpoints.Save(ctx, k.checkpointKey(), checkpoint); err != nil {
			log.WithError(err).Errorln("checkpoints.Save")
			return err
		}
	}

	k.pair.Prune(checkpoint)
	k.metrics.observeSequence(pair, checkpoint)
	return nil
}
