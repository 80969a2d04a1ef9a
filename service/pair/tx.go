package pair

import (
	"context"
	"fmt"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"
	"fraxlend/pkg/id"
	"fraxlend/pkg/number"
	"fraxlend/service/access"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fox-one/pkg/logger"
	foxuuid "github.com/fox-one/pkg/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type txKey struct {
	pair *Pair
}

// txn one pair transaction working on a clone of the committed state
type txn struct {
	ctx     context.Context
	pair    *Pair
	op      string
	now     int64
	block   int64
	traceID string
	state   *core.PairState
	gate    access.Gate
	events  []*core.Event
	log     *logrus.Entry
	// refunds of completed pulls, run in reverse when the transaction fails
	undo []func() error
}

// transact run fn as one transaction
//
// The state is committed and the events published only when fn succeeds.
// A call re-entering the same pair from one of its collaborators fails with
// ErrReentrant.
func (p *Pair) transact(ctx context.Context, op string, fn func(t *txn) error) error {
	if ctx.Value(txKey{pair: p}) != nil {
		return core.ErrReentrant
	}

	p.mux.Lock()
	defer p.mux.Unlock()

	ctx = context.WithValue(ctx, txKey{pair: p}, op)
	traceID := id.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = id.GenTraceID()
	} else {
		traceID = foxuuid.Modify(traceID, p.params.Address.Hex()+op)
	}

	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"pair":  p.params.Name,
		"op":    op,
		"trace": traceID,
	})

	p.view.RLock()
	state := p.state.Clone()
	p.view.RUnlock()

	now := p.clock.Now().Unix()
	t := &txn{
		ctx:     logger.WithContext(ctx, log),
		pair:    p,
		op:      op,
		now:     now,
		block:   p.blocks.Block(now),
		traceID: traceID,
		state:   state,
		gate:    access.New(&state.Access),
		log:     log,
	}

	if err := fn(t); err != nil {
		log.WithError(err).Infof("%s reverted", op)
		t.rollback()
		return err
	}

	for _, e := range t.events {
		t.state.Sequence++
		e.Sequence = t.state.Sequence
	}

	p.view.Lock()
	p.state = t.state
	p.events = append(p.events, t.events...)
	subscribers := p.subscribers
	p.view.Unlock()

	log.Debugf("%s committed with %d events", op, len(t.events))

	if len(t.events) > 0 {
		for _, sub := range subscribers {
			sub(t.events)
		}
	}

	return nil
}

func (t *txn) emit(typ core.EventType, data core.EventData) {
	t.events = append(t.events, &core.Event{
		Pair:      t.pair.params.Address.Hex(),
		TraceID:   t.traceID,
		Type:      typ,
		Timestamp: t.now,
		Data:      data.Format(),
	})
}

func (t *txn) requireNotPastMaturity() error {
	if t.pair.params.IsPastMaturity(t.now) {
		return core.ErrPastMaturity
	}

	return nil
}

// requireExternal the pair never acts as caller, payer, receiver or share owner of a public operation
func (t *txn) requireExternal(addrs ...common.Address) error {
	for _, addr := range addrs {
		if addr == t.pair.params.Address {
			return fmt.Errorf("%w: %s", core.ErrInvalidCaller, addr.Hex())
		}
	}

	return nil
}

// requireAmount v must be a positive whole number of base units
func requireAmount(v decimal.Decimal, name string) error {
	if err := fraxlend.Require(v.IsPositive(), core.ErrZeroAmount, name); err != nil {
		return err
	}

	return fraxlend.Require(number.IsInteger(v), core.ErrInvalidAmount, name)
}

// requireWhole v must be a non-negative whole number of base units
func requireWhole(v decimal.Decimal, name string) error {
	return fraxlend.Require(number.IsInteger(v), core.ErrInvalidAmount, name)
}

// pull move amount of token from owner into the pair
func (t *txn) pull(token core.Token, from common.Address, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return nil
	}

	if err := t.requireExternal(from); err != nil {
		return err
	}

	if err := token.TransferFrom(t.ctx, t.pair.params.Address, from, t.pair.params.Address, amount); err != nil {
		return err
	}

	t.undo = append(t.undo, func() error {
		return token.Transfer(t.ctx, t.pair.params.Address, from, amount)
	})

	return nil
}

// push move amount of token from the pair to to
func (t *txn) push(token core.Token, to common.Address, amount decimal.Decimal) error {
	if !amount.IsPositive() || to == t.pair.params.Address {
		return nil
	}

	return token.Transfer(t.ctx, t.pair.params.Address, to, amount)
}

func (t *txn) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		if err := t.undo[i](); err != nil {
			t.log.WithError(err).Errorf("refund failed")
		}
	}
}
