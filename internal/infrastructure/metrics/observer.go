// Package metrics exports the outcome of trades and provider calls as
// prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
)

const namespace = "tdex_trader"

// Observer implements ports.TradeObserver by updating prometheus
// collectors.
type Observer struct {
	trades           *prometheus.CounterVec
	tradeDuration    *prometheus.HistogramVec
	completeRetries  *prometheus.CounterVec
	providerFailures *prometheus.CounterVec
}

var _ ports.TradeObserver = (*Observer)(nil)

// NewObserver registers the trade collectors on the given registerer.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		trades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trades_total",
			Help:      "Number of trades by provider, type and outcome.",
		}, []string{"provider", "type", "outcome"}),
		tradeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trade_duration_seconds",
			Help:      "Duration of the completed trades.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"provider", "type"}),
		completeRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "complete_retries_total",
			Help:      "Number of retried swap completions by provider.",
		}, []string{"provider"}),
		providerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_failures_total",
			Help:      "Number of failed provider calls during discovery.",
		}, []string{"provider", "call"}),
	}

	for _, c := range []prometheus.Collector{
		o.trades, o.tradeDuration, o.completeRetries, o.providerFailures,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *Observer) TradeCompleted(
	provider domain.TDEXProvider, tradeType domain.TradeType,
	elapsed time.Duration,
) {
	o.trades.WithLabelValues(provider.Endpoint, tradeType.String(), "completed").Inc()
	o.tradeDuration.WithLabelValues(provider.Endpoint, tradeType.String()).
		Observe(elapsed.Seconds())
}

func (o *Observer) TradeFailed(
	provider domain.TDEXProvider, tradeType domain.TradeType, _ error,
) {
	o.trades.WithLabelValues(provider.Endpoint, tradeType.String(), "failed").Inc()
}

func (o *Observer) CompleteRetried(provider domain.TDEXProvider) {
	o.completeRetries.WithLabelValues(provider.Endpoint).Inc()
}

func (o *Observer) ProviderFailed(provider domain.TDEXProvider, call string) {
	o.providerFailures.WithLabelValues(provider.Endpoint, call).Inc()
}
