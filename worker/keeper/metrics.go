package keeper

import (
	"sync"

	"fraxlend/core"
	"fraxlend/pkg/fraxlend"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	totalAsset      *prometheus.GaugeVec
	totalBorrow     *prometheus.GaugeVec
	totalCollateral *prometheus.GaugeVec
	utilization     *prometheus.GaugeVec
	ratePerSec      *prometheus.GaugeVec
	exchangeRate    *prometheus.GaugeVec
	sequence        *prometheus.GaugeVec
	failures        *prometheus.CounterVec
}

var (
	metricsOnce     sync.Once
	metricsRegistry *metrics
)

func pairMetrics() *metrics {
	metricsOnce.Do(func() {
		labels := []string{"pair"}
		metricsRegistry = &metrics{
			totalAsset: prometheus.NewGaugeVec(prometheus.GaugeOpts{
				Name: "fraxlend_total_asset_amount",
				Help: "Asset amount owed to lenders, in asset units.",
			}, labels),
			totalBorrow: prometheus.NewGaugeVec(prometheus.GaugeOpts{
				Name: "fraxlend_total_borrow_amount",
				Help: "Asset amount owed by borrowers, in asset units.",
			}, labels),
			totalCollateral: prometheus.NewGaugeVec(prometheus.GaugeOpts{
				Name: "fraxlend_total_collateral",
				Help: "Collateral held by the pair, in collateral units.",
			}, labels),
			utilization: prometheus.NewGaugeVec(prometheus.GaugeOpts{
				Name: "fraxlend_utilization",
				Help: "Borrowed share of the lent assets, scaled by UTIL_PREC.",
			}, labels),
			ratePerSec: prometheus.NewGaugeVec(prometheus.GaugeOpts{
				Name: "fraxlend_rate_per_sec",
				Help: "Current interest rate per second, scaled by 1e18.",
			}, labels),
			exchangeRate: prometheus.NewGaugeVec(prometheus.GaugeOpts{
				Name: "fraxlend_exchange_rate",
				Help: "Cached exchange rate, scaled by EXCHANGE_PRECISION.",
			}, labels),
			sequence: prometheus.NewGaugeVec(prometheus.GaugeOpts{
				Name: "fraxlend_event_sequence",
				Help: "Sequence of the last persisted event.",
			}, labels),
			failures: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "fraxlend_keeper_failures_total",
				Help: "Failed keeper steps by step.",
			}, []string{"pair", "step"}),
		}
		prometheus.MustRegister(
			metricsRegistry.totalAsset,
			metricsRegistry.totalBorrow,
			metricsRegistry.totalCollateral,
			metricsRegistry.utilization,
			metricsRegistry.ratePerSec,
			metricsRegistry.exchangeRate,
			metricsRegistry.sequence,
			metricsRegistry.failures,
		)
	})
	return metricsRegistry
}

func (m *metrics) observeState(pair string, state *core.PairState) {
	m.totalAsset.WithLabelValues(pair).Set(state.TotalAsset.Amount.InexactFloat64())
	m.totalBorrow.WithLabelValues(pair).Set(state.TotalBorrow.Amount.InexactFloat64())
	m.totalCollateral.WithLabelValues(pair).Set(state.TotalCollateral.InexactFloat64())
	m.utilization.WithLabelValues(pair).Set(fraxlend.Utilization(state.TotalAsset, state.TotalBorrow).InexactFloat64())
	m.ratePerSec.WithLabelValues(pair).Set(state.RateInfo.RatePerSec.InexactFloat64())
	m.exchangeRate.WithLabelValues(pair).Set(state.ExchangeRate.ExchangeRate.InexactFloat64())
}

func (m *metrics) observeSequence(pair string, sequence uint64) {
	m.sequence.WithLabelValues(pair).Set(float64(sequence))
}

func (m *metrics) observeFailure(pair, step string) {
	if step == "" {
		step = "unknown"
	}
	m.failures.WithLabelValues(pair, step).Inc()
}
