package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/infrastructure/metrics"
)

func TestObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	observer, err := metrics.NewObserver(reg)
	require.NoError(t, err)

	provider := domain.TDEXProvider{Name: "test", Endpoint: "http://localhost:9945"}

	observer.TradeCompleted(provider, domain.TradeBuy, 2*time.Second)
	observer.TradeCompleted(provider, domain.TradeBuy, time.Second)
	observer.TradeFailed(provider, domain.TradeSell, errors.New("failure"))
	observer.CompleteRetried(provider)
	observer.ProviderFailed(provider, "PreviewTrade")

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Equal(t, 5, count)

	count, err = testutil.GatherAndCount(reg, "tdex_trader_trades_total")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	// Collectors can't be registered twice.
	_, err = metrics.NewObserver(reg)
	require.Error(t, err)
}
