package pair

import (
	"context"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

func (t *txn) accrue() fraxlend.AccrueResult {
	result := fraxlend.Accrue(t.state, &t.pair.params, t.pair.calculator, t.now, t.block)
	if !result.Accrued {
		return result
	}

	t.emit(core.EventAddInterest, core.NewEventData().
		Put(core.EventKeyInterest, result.InterestEarned).
		Put(core.EventKeyRate, result.OldRate).
		Put(core.EventKeyDeltaTime, result.DeltaTime).
		Put(core.EventKeyFeesAmount, result.FeesAmount).
		Put(core.EventKeyFeesShare, result.FeesShare))

	t.emit(core.EventUpdateRate, core.NewEventData().
		Put(core.EventKeyOldRate, result.OldRate).
		Put(core.EventKeyDeltaTime, result.DeltaTime).
		Put(core.EventKeyUtilization, result.Utilization).
		Put(core.EventKeyNewRate, result.NewRate))

	if result.FeesShare.IsPositive() {
		t.emitTransfer(common.Address{}, t.pair.params.Address, result.FeesShare)
	}

	if !result.InterestAdded {
		t.log.Infof("interest skipped, totals would overflow")
	}

	return result
}

// refresh pull the exchange rate, at most once per timestamp
func (t *txn) refresh() (decimal.Decimal, error) {
	info := t.state.ExchangeRate
	if info.LastTimestamp == t.now && info.ExchangeRate.IsPositive() {
		return info.ExchangeRate, nil
	}

	return t.pullRate()
}

// pullRate ask the oracle, failures keep the cached rate
func (t *txn) pullRate() (decimal.Decimal, error) {
	rate, err := t.pair.oracle.ExchangeRate(t.ctx)
	if err != nil {
		return decimal.Zero, err
	}

	if !rate.IsPositive() {
		return decimal.Zero, core.ErrOracleInvalid
	}

	t.state.ExchangeRate = core.ExchangeRateInfo{
		LastTimestamp: t.now,
		ExchangeRate:  rate,
	}

	t.emit(core.EventUpdateExchangeRate, core.NewEventData().
		Put(core.EventKeyRate, rate))

	return rate, nil
}

// AddInterest accrue interest up to now
func (p *Pair) AddInterest(ctx context.Context) (fraxlend.AccrueResult, error) {
	var result fraxlend.AccrueResult
	err := p.transact(ctx, "addInterest", func(t *txn) error {
		result = t.accrue()
		return nil
	})

	return result, err
}

// UpdateExchangeRate pull a fresh exchange rate from the oracle
func (p *Pair) UpdateExchangeRate(ctx context.Context) (decimal.Decimal, error) {
	var rate decimal.Decimal
	err := p.transact(ctx, "updateExchangeRate", func(t *txn) (err error) {
		rate, err = t.pullRate()
		return err
	})

	return rate, err
}
