package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/internal/core/application/discovery"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"github.com/tdex-network/tdex-trader/pkg/swap"
)

var testMarket = domain.Market{BaseAsset: lbtc, QuoteAsset: usdt}

type mockTraderClient struct {
	mock.Mock
	provider domain.TDEXProvider
}

func (m *mockTraderClient) Provider() domain.TDEXProvider {
	return m.provider
}

func (m *mockTraderClient) ProtocolVersion() swap.Version {
	return swap.V1
}

func (m *mockTraderClient) ListMarkets(
	ctx context.Context,
) ([]domain.TDEXMarket, error) {
	return nil, nil
}

func (m *mockTraderClient) GetMarketBalance(
	ctx context.Context, market domain.Market,
) (*domain.Balance, error) {
	args := m.Called(ctx, market)

	var res *domain.Balance
	if a := args.Get(0); a != nil {
		res = a.(*domain.Balance)
	}
	return res, args.Error(1)
}

func (m *mockTraderClient) PreviewTrade(
	ctx context.Context, market domain.Market, tradeType domain.TradeType,
	amount uint64, asset, feeAsset string,
) ([]domain.PriceQuote, error) {
	args := m.Called(ctx, market, tradeType, amount, asset, feeAsset)

	var res []domain.PriceQuote
	if a := args.Get(0); a != nil {
		res = a.([]domain.PriceQuote)
	}
	return res, args.Error(1)
}

func (m *mockTraderClient) ProposeTrade(
	ctx context.Context, market domain.Market, tradeType domain.TradeType,
	swapRequest []byte, feeAsset string, feeAmount uint64,
) (*ports.ProposeTradeReply, error) {
	return nil, nil
}

func (m *mockTraderClient) CompleteTrade(
	ctx context.Context, swapComplete []byte,
) (*ports.CompleteTradeReply, error) {
	return nil, nil
}

func (m *mockTraderClient) Close() {}

func newQuotingOrder(
	t *testing.T, name string, quote, balance uint64,
) ports.TradeOrder {
	client := &mockTraderClient{
		provider: domain.TDEXProvider{Name: name, Endpoint: name},
	}
	client.On(
		"PreviewTrade", mock.Anything, testMarket, domain.TradeSell,
		uint64(1000), lbtc, lbtc,
	).Return([]domain.PriceQuote{{Amount: quote, Asset: usdt}}, nil).Maybe()
	client.On("GetMarketBalance", mock.Anything, testMarket).
		Return(&domain.Balance{BaseAmount: balance, QuoteAmount: balance}, nil).
		Maybe()

	return ports.TradeOrder{
		Type: domain.TradeSell,
		Market: domain.TDEXMarket{
			Market:   testMarket,
			Provider: client.provider,
		},
		Client: client,
	}
}

func TestCombinedStrategy(t *testing.T) {
	orders := []ports.TradeOrder{
		newQuotingOrder(t, "best-balance", 10, 500),
		newQuotingOrder(t, "best-price", 1000, 5),
	}

	strategies, err := parseStrategy(strategyCombined)
	require.NoError(t, err)

	best, err := discovery.NewDiscoverer(discovery.Options{}, strategies...).
		Discover(context.Background(), orders, discovery.Request{
			Asset: lbtc, Amount: 1000,
		})
	require.NoError(t, err)
	require.Len(t, best, 1)
	require.Equal(t, "best-price", best[0].Market.Provider.Name)
}

func TestCombinedStrategyTieBreak(t *testing.T) {
	orders := []ports.TradeOrder{
		newQuotingOrder(t, "low-balance", 1000, 5),
		newQuotingOrder(t, "high-balance", 1000, 500),
		newQuotingOrder(t, "low-price", 10, 5000),
	}

	strategies, err := parseStrategy(strategyCombined)
	require.NoError(t, err)

	best, err := discovery.NewDiscoverer(discovery.Options{}, strategies...).
		Discover(context.Background(), orders, discovery.Request{
			Asset: lbtc, Amount: 1000,
		})
	require.NoError(t, err)
	require.Len(t, best, 1)
	require.Equal(t, "high-balance", best[0].Market.Provider.Name)
}

func TestParseStrategy(t *testing.T) {
	_, err := parseStrategy("fastest")
	require.Error(t, err)

	for _, s := range []string{strategyPrice, strategyBalance, strategyCombined} {
		strategies, err := parseStrategy(s)
		require.NoError(t, err)
		require.NotEmpty(t, strategies)
	}
}
