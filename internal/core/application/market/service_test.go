package market_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/internal/core/application/market"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"github.com/tdex-network/tdex-trader/internal/infrastructure/storage/db/inmemory"
	"github.com/tdex-network/tdex-trader/pkg/swap"
)

var (
	pair = domain.Market{
		BaseAsset:  "5ac9f65c0efcc4775e0baec4ec03abdde22473cd3cf33c0419ca290e0751b225",
		QuoteAsset: "2dcf5a8834645654911964ec3602426fd3b9b4017554d3f9c19403e7fc1411d3",
	}
	otherPair = domain.Market{
		BaseAsset:  pair.BaseAsset,
		QuoteAsset: "97b74fe5aff4edd10b7eb52e3df3c70201b51719af50c1f16dbe2ce9c4c80be6",
	}
	errUnreachable = fmt.Errorf("provider unreachable")
)

func TestProviders(t *testing.T) {
	svc, factory := newTestService(t)
	ctx := context.Background()

	err := svc.AddProvider(ctx, domain.TDEXProvider{Endpoint: "not an url"})
	require.ErrorIs(t, err, domain.ErrInvalidProviderEndpoint)

	provider := domain.TDEXProvider{Endpoint: "http://127.0.0.1:9945"}
	require.NoError(t, svc.AddProvider(ctx, provider))

	providers, err := svc.ListProviders(ctx)
	require.NoError(t, err)
	require.Len(t, providers, 1)
	require.Equal(t, provider.Endpoint, providers[0].Name)

	client, err := svc.Client(provider)
	require.NoError(t, err)
	sameClient, err := svc.Client(provider)
	require.NoError(t, err)
	require.True(t, client == sameClient)

	require.NoError(t, svc.RemoveProvider(ctx, provider.Endpoint))
	require.True(t, factory.client(provider.Endpoint).closed)

	providers, err = svc.ListProviders(ctx)
	require.NoError(t, err)
	require.Empty(t, providers)

	err = svc.RemoveProvider(ctx, provider.Endpoint)
	require.ErrorIs(t, err, domain.ErrProviderNotFound)
}

func TestListMarkets(t *testing.T) {
	svc, factory := newTestService(t)
	ctx := context.Background()

	endpoints := []string{
		"http://provider-a.com", "http://provider-b.com", "http://provider-c.com",
	}
	for _, e := range endpoints {
		require.NoError(t, svc.AddProvider(ctx, domain.TDEXProvider{Endpoint: e}))
	}
	factory.markets = map[string][]domain.Market{
		endpoints[0]: {pair, otherPair},
		endpoints[2]: {pair},
	}
	factory.failing = map[string]bool{endpoints[1]: true}

	markets, err := svc.ListMarkets(ctx)
	require.NoError(t, err)
	require.Len(t, markets, 3)
	for _, m := range markets {
		require.NotEqual(t, endpoints[1], m.Provider.Endpoint)
	}

	markets = svc.RefreshBalances(ctx, markets)
	for _, m := range markets {
		require.NotNil(t, m.Balance)
		require.Equal(t, uint64(100), m.Balance.BaseAmount)
	}

	orders, err := svc.TradeOrders(markets, pair, domain.TradeSell)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		require.Equal(t, domain.TradeSell, o.Type)
		require.Equal(t, pair, o.Market.Market)
		require.Equal(t, o.Market.Provider, o.Client.Provider())
	}

	_, err = svc.TradeOrders(markets, domain.Market{
		BaseAsset: otherPair.QuoteAsset, QuoteAsset: pair.QuoteAsset,
	}, domain.TradeBuy)
	require.ErrorIs(t, err, market.ErrNoMarketsFound)
}

func newTestService(t *testing.T) (*market.Service, *fakeFactory) {
	factory := &fakeFactory{clients: make(map[string]*fakeClient)}
	svc, err := market.NewService(inmemory.NewProviderRepositoryImpl(), factory, 100)
	require.NoError(t, err)
	return svc, factory
}

type fakeFactory struct {
	lock    sync.Mutex
	clients map[string]*fakeClient
	markets map[string][]domain.Market
	failing map[string]bool
}

func (f *fakeFactory) NewTraderClient(
	provider domain.TDEXProvider,
) (ports.TraderClient, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	c := &fakeClient{
		provider: provider,
		markets:  f.markets[provider.Endpoint],
		fail:     f.failing[provider.Endpoint],
	}
	f.clients[provider.Endpoint] = c
	return c, nil
}

func (f *fakeFactory) client(endpoint string) *fakeClient {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.clients[endpoint]
}

type fakeClient struct {
	provider domain.TDEXProvider
	markets  []domain.Market
	fail     bool
	closed   bool
}

func (c *fakeClient) Provider() domain.TDEXProvider { return c.provider }

func (c *fakeClient) ProtocolVersion() swap.Version { return swap.V2 }

func (c *fakeClient) ListMarkets(context.Context) ([]domain.TDEXMarket, error) {
	if c.fail {
		return nil, errUnreachable
	}
	list := make([]domain.TDEXMarket, 0, len(c.markets))
	for _, m := range c.markets {
		list = append(list, domain.TDEXMarket{Market: m})
	}
	return list, nil
}

func (c *fakeClient) GetMarketBalance(
	context.Context, domain.Market,
) (*domain.Balance, error) {
	if c.fail {
		return nil, errUnreachable
	}
	return &domain.Balance{BaseAmount: 100, QuoteAmount: 1000}, nil
}

func (c *fakeClient) PreviewTrade(
	context.Context, domain.Market, domain.TradeType, uint64, string, string,
) ([]domain.PriceQuote, error) {
	return nil, errUnreachable
}

func (c *fakeClient) ProposeTrade(
	context.Context, domain.Market, domain.TradeType, []byte, string, uint64,
) (*ports.ProposeTradeReply, error) {
	return nil, errUnreachable
}

func (c *fakeClient) CompleteTrade(
	context.Context, []byte,
) (*ports.CompleteTradeReply, error) {
	return nil, errUnreachable
}

func (c *fakeClient) Close() { c.closed = true }
