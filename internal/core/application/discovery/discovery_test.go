package discovery_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/internal/core/application/discovery"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
)

var (
	market = domain.Market{
		BaseAsset:  "5ac9f65c0efcc4775e0baec4ec03abdde22473cd3cf33c0419ca290e0751b225",
		QuoteAsset: "2dcf5a8834645654911964ec3602426fd3b9b4017554d3f9c19403e7fc1411d3",
	}
	errProvider = fmt.Errorf("provider unavailable")
)

func TestBestBalanceDiscovery(t *testing.T) {
	balances := []domain.Balance{
		{BaseAmount: 1, QuoteAmount: 1000},
		{BaseAmount: 10, QuoteAmount: 10},
		{BaseAmount: 50, QuoteAmount: 70},
		{BaseAmount: 100, QuoteAmount: 100},
	}

	tests := []struct {
		name          string
		tradeType     domain.TradeType
		amount        uint64
		expectedIndex int
	}{
		{"sell", domain.TradeSell, 60, 0},
		{"buy", domain.TradeBuy, 12, 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			orders := make([]ports.TradeOrder, 0, len(balances))
			for i, b := range balances {
				orders = append(orders, newBalanceOrder(t, i, tt.tradeType, &b, nil))
			}

			best, err := discovery.BestBalanceDiscovery(
				context.Background(), orders,
				discovery.Request{Asset: market.BaseAsset, Amount: tt.amount},
				discovery.Options{},
			)
			require.NoError(t, err)
			require.Len(t, best, 1)
			require.Equal(t, orders[tt.expectedIndex], best[0])
		})
	}
}

func TestBestBalanceDiscoveryTies(t *testing.T) {
	balances := []*domain.Balance{
		{BaseAmount: 100},
		{BaseAmount: 10},
		{BaseAmount: 100},
		nil,
	}
	orders := make([]ports.TradeOrder, 0, len(balances))
	for i, b := range balances {
		var err error
		if b == nil {
			err = errProvider
		}
		orders = append(orders, newBalanceOrder(t, i, domain.TradeBuy, b, err))
	}

	failures := make([]ports.TradeOrder, 0)
	best, err := discovery.BestBalanceDiscovery(
		context.Background(), orders,
		discovery.Request{Asset: market.BaseAsset, Amount: 1},
		discovery.Options{
			ErrorHandler: func(order ports.TradeOrder, err error) {
				require.ErrorIs(t, err, errProvider)
				failures = append(failures, order)
			},
		},
	)
	require.NoError(t, err)
	require.Equal(t, []ports.TradeOrder{orders[0], orders[2]}, best)
	require.Equal(t, []ports.TradeOrder{orders[3]}, failures)
}

func TestBestBalanceDiscoveryAllFailing(t *testing.T) {
	orders := []ports.TradeOrder{
		newBalanceOrder(t, 0, domain.TradeBuy, nil, errProvider),
		newBalanceOrder(t, 1, domain.TradeBuy, nil, errProvider),
	}

	best, err := discovery.BestBalanceDiscovery(
		context.Background(), orders,
		discovery.Request{Asset: market.BaseAsset, Amount: 1},
		discovery.Options{},
	)
	require.ErrorIs(t, err, domain.ErrLiquidityExhausted)
	require.Empty(t, best)
}

func TestBestPriceDiscovery(t *testing.T) {
	req := discovery.Request{Asset: market.BaseAsset, Amount: 100}

	t.Run("highest quote", func(t *testing.T) {
		orders := newPriceOrders(t, req, []uint64{10, 100, 400, 1000}, nil)

		best, err := discovery.BestPriceDiscovery(
			context.Background(), orders, req, discovery.Options{},
		)
		require.NoError(t, err)
		require.Equal(t, []ports.TradeOrder{orders[3]}, best)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		orders := newPriceOrders(t, req, []uint64{1000, 100, 1000, 10}, nil)

		best, err := discovery.BestPriceDiscovery(
			context.Background(), orders, req, discovery.Options{},
		)
		require.NoError(t, err)
		require.Equal(t, []ports.TradeOrder{orders[0], orders[2]}, best)
	})

	t.Run("failing providers are excluded", func(t *testing.T) {
		orders := newPriceOrders(
			t, req, []uint64{10, 100, 400, 1000}, map[int]bool{3: true},
		)

		var mu sync.Mutex
		failed := 0
		best, err := discovery.BestPriceDiscovery(
			context.Background(), orders, req, discovery.Options{
				ErrorHandler: func(ports.TradeOrder, error) {
					mu.Lock()
					defer mu.Unlock()
					failed++
				},
			},
		)
		require.NoError(t, err)
		require.Equal(t, []ports.TradeOrder{orders[2]}, best)
		require.Equal(t, 1, failed)
	})

	t.Run("liquidity exhausted", func(t *testing.T) {
		orders := newPriceOrders(
			t, req, []uint64{10, 100}, map[int]bool{0: true, 1: true},
		)

		best, err := discovery.BestPriceDiscovery(
			context.Background(), orders, req, discovery.Options{},
		)
		require.ErrorIs(t, err, domain.ErrLiquidityExhausted)
		require.Nil(t, best)
	})

	t.Run("single order", func(t *testing.T) {
		client := newMockTraderClient("single")
		orders := []ports.TradeOrder{newOrder(client, domain.TradeBuy)}

		best, err := discovery.BestPriceDiscovery(
			context.Background(), orders, req, discovery.Options{},
		)
		require.NoError(t, err)
		require.Equal(t, orders, best)
		client.AssertNotCalled(t, "PreviewTrade")
	})

	t.Run("zero amount", func(t *testing.T) {
		clients := []*mockTraderClient{
			newMockTraderClient("a"), newMockTraderClient("b"),
		}
		orders := []ports.TradeOrder{
			newOrder(clients[0], domain.TradeBuy),
			newOrder(clients[1], domain.TradeBuy),
		}

		best, err := discovery.BestPriceDiscovery(
			context.Background(), orders,
			discovery.Request{Asset: market.BaseAsset}, discovery.Options{},
		)
		require.NoError(t, err)
		require.Equal(t, orders, best)
		for _, c := range clients {
			c.AssertNotCalled(t, "PreviewTrade")
		}
	})
}

func TestBestPriceDiscoveryCallTimeout(t *testing.T) {
	req := discovery.Request{Asset: market.BaseAsset, Amount: 100}

	slow := newMockTraderClient("slow")
	slow.On(
		"PreviewTrade", mock.Anything, market, domain.TradeBuy,
		req.Amount, req.Asset, req.Asset,
	).Return(nil, context.DeadlineExceeded).Run(func(args mock.Arguments) {
		<-args.Get(0).(context.Context).Done()
	})
	fast := newPriceClient("fast", req, 10, false)

	orders := []ports.TradeOrder{
		newOrder(slow, domain.TradeBuy), newOrder(fast, domain.TradeBuy),
	}
	best, err := discovery.BestPriceDiscovery(
		context.Background(), orders, req,
		discovery.Options{CallTimeout: 50 * time.Millisecond},
	)
	require.NoError(t, err)
	require.Equal(t, []ports.TradeOrder{orders[1]}, best)
}

func TestCombineDiscovery(t *testing.T) {
	req := discovery.Request{Asset: market.BaseAsset, Amount: 100}

	t.Run("short circuit", func(t *testing.T) {
		orders := newPriceOrders(t, req, []uint64{10, 100, 400, 1000}, nil)

		d := discovery.NewDiscoverer(
			discovery.Options{},
			discovery.BestPriceDiscovery, discovery.BestBalanceDiscovery,
		)
		best, err := d.Discover(context.Background(), orders, req)
		require.NoError(t, err)
		require.Equal(t, []ports.TradeOrder{orders[3]}, best)
		for _, o := range orders {
			o.Client.(*mockTraderClient).AssertNotCalled(t, "GetMarketBalance")
		}
	})

	t.Run("balance breaks price ties", func(t *testing.T) {
		quotes := []uint64{1000, 100, 1000}
		balances := []uint64{5, 50, 500}

		orders := make([]ports.TradeOrder, 0, len(quotes))
		for i := range quotes {
			client := newPriceClient(fmt.Sprintf("p%d", i), req, quotes[i], false)
			client.On("GetMarketBalance", mock.Anything, market).
				Return(&domain.Balance{BaseAmount: balances[i]}, nil).Maybe()
			orders = append(orders, newOrder(client, domain.TradeBuy))
		}

		best, err := discovery.CombineDiscovery(
			discovery.BestPriceDiscovery, discovery.BestBalanceDiscovery,
		)(context.Background(), orders, req, discovery.Options{})
		require.NoError(t, err)
		require.Equal(t, []ports.TradeOrder{orders[2]}, best)
		orders[1].Client.(*mockTraderClient).
			AssertNotCalled(t, "GetMarketBalance", mock.Anything, market)
	})

	t.Run("errors stop the chain", func(t *testing.T) {
		orders := newPriceOrders(
			t, req, []uint64{1, 2}, map[int]bool{0: true, 1: true},
		)

		best, err := discovery.CombineDiscovery(
			discovery.BestPriceDiscovery, discovery.BestBalanceDiscovery,
		)(context.Background(), orders, req, discovery.Options{})
		require.ErrorIs(t, err, domain.ErrLiquidityExhausted)
		require.Nil(t, best)
	})
}

func newOrder(client *mockTraderClient, tradeType domain.TradeType) ports.TradeOrder {
	return ports.TradeOrder{
		Type: tradeType,
		Market: domain.TDEXMarket{
			Market:   market,
			Provider: client.Provider(),
		},
		Client: client,
	}
}

func newBalanceOrder(
	t *testing.T, i int, tradeType domain.TradeType,
	balance *domain.Balance, err error,
) ports.TradeOrder {
	client := newMockTraderClient(fmt.Sprintf("provider-%d", i))
	if err != nil {
		client.On("GetMarketBalance", mock.Anything, market).Return(nil, err)
	} else {
		b := *balance
		client.On("GetMarketBalance", mock.Anything, market).Return(&b, nil)
	}
	t.Cleanup(func() { client.AssertExpectations(t) })
	return newOrder(client, tradeType)
}

func newPriceClient(
	name string, req discovery.Request, quote uint64, fail bool,
) *mockTraderClient {
	client := newMockTraderClient(name)
	call := client.On(
		"PreviewTrade", mock.Anything, market, domain.TradeBuy,
		req.Amount, req.Asset, req.Asset,
	)
	if fail {
		call.Return(nil, errProvider)
	} else {
		call.Return([]domain.PriceQuote{
			{Amount: quote, Asset: market.QuoteAsset},
		}, nil)
	}
	return client
}

func newPriceOrders(
	t *testing.T, req discovery.Request, quotes []uint64, failing map[int]bool,
) []ports.TradeOrder {
	orders := make([]ports.TradeOrder, 0, len(quotes))
	for i, q := range quotes {
		client := newPriceClient(fmt.Sprintf("provider-%d", i), req, q, failing[i])
		t.Cleanup(func() { client.AssertExpectations(t) })
		orders = append(orders, newOrder(client, domain.TradeBuy))
	}
	return orders
}
