package discovery_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"github.com/tdex-network/tdex-trader/pkg/swap"
)

type mockTraderClient struct {
	mock.Mock
	provider domain.TDEXProvider
}

func newMockTraderClient(endpoint string) *mockTraderClient {
	return &mockTraderClient{
		provider: domain.TDEXProvider{Name: endpoint, Endpoint: endpoint},
	}
}

func (m *mockTraderClient) Provider() domain.TDEXProvider {
	return m.provider
}

func (m *mockTraderClient) ProtocolVersion() swap.Version {
	return swap.V2
}

func (m *mockTraderClient) ListMarkets(
	ctx context.Context,
) ([]domain.TDEXMarket, error) {
	args := m.Called(ctx)

	var res []domain.TDEXMarket
	if a := args.Get(0); a != nil {
		res = a.([]domain.TDEXMarket)
	}
	return res, args.Error(1)
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
	args := m.Called(ctx, market, tradeType, swapRequest, feeAsset, feeAmount)

	var res *ports.ProposeTradeReply
	if a := args.Get(0); a != nil {
		res = a.(*ports.ProposeTradeReply)
	}
	return res, args.Error(1)
}

func (m *mockTraderClient) CompleteTrade(
	ctx context.Context, swapComplete []byte,
) (*ports.CompleteTradeReply, error) {
	args := m.Called(ctx, swapComplete)

	var res *ports.CompleteTradeReply
	if a := args.Get(0); a != nil {
		res = a.(*ports.CompleteTradeReply)
	}
	return res, args.Error(1)
}

func (m *mockTraderClient) Close() {}
