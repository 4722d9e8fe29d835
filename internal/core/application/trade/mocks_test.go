package trade_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"github.com/tdex-network/tdex-trader/pkg/swap"
)

// **** TraderClient ****

type proposeFn func(
	swapRequest []byte, feeAsset string, feeAmount uint64,
) (*ports.ProposeTradeReply, error)

type mockTraderClient struct {
	mock.Mock
	version swap.Version
}

func (m *mockTraderClient) Provider() domain.TDEXProvider {
	return domain.TDEXProvider{Name: "test", Endpoint: "http://127.0.0.1:9945"}
}

func (m *mockTraderClient) ProtocolVersion() swap.Version {
	return m.version
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

	if fn, ok := args.Get(0).(proposeFn); ok {
		return fn(swapRequest, feeAsset, feeAmount)
	}
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

// **** Wallet ****

type mockWallet struct {
	mock.Mock
}

func (m *mockWallet) CoinSelectionForTrade(
	ctx context.Context, asset string, amount uint64,
) (*domain.CoinSelectionForTrade, error) {
	args := m.Called(ctx, asset, amount)

	var res *domain.CoinSelectionForTrade
	if a := args.Get(0); a != nil {
		res = a.(*domain.CoinSelectionForTrade)
	}
	return res, args.Error(1)
}

func (m *mockWallet) ReceiveScript(ctx context.Context) (*domain.ScriptDetails, error) {
	args := m.Called(ctx)

	var res *domain.ScriptDetails
	if a := args.Get(0); a != nil {
		res = a.(*domain.ScriptDetails)
	}
	return res, args.Error(1)
}

func (m *mockWallet) ChangeScript(ctx context.Context) (*domain.ScriptDetails, error) {
	args := m.Called(ctx)

	var res *domain.ScriptDetails
	if a := args.Get(0); a != nil {
		res = a.(*domain.ScriptDetails)
	}
	return res, args.Error(1)
}

func (m *mockWallet) ScriptDetails(
	ctx context.Context, script []byte,
) (*domain.ScriptDetails, error) {
	args := m.Called(ctx, script)

	var res *domain.ScriptDetails
	if a := args.Get(0); a != nil {
		res = a.(*domain.ScriptDetails)
	}
	return res, args.Error(1)
}

// **** Signer & Blinder ****

// sameTx makes a mocked signer or blinder return the given transaction.
const sameTx = "same-tx"

type mockSigner struct {
	mock.Mock
}

func (m *mockSigner) SignTransaction(ctx context.Context, tx string) (string, error) {
	args := m.Called(ctx, tx)
	return txOrSame(args.String(0), tx), args.Error(1)
}

func (m *mockSigner) FinalizeAndExtract(ctx context.Context, tx string) (string, error) {
	args := m.Called(ctx, tx)
	return args.String(0), args.Error(1)
}

type mockBlinder struct {
	mock.Mock
}

func (m *mockBlinder) BlindTransaction(
	ctx context.Context, tx string, unblindedIns []swap.UnblindedInput,
) (string, error) {
	args := m.Called(ctx, tx, unblindedIns)
	return txOrSame(args.String(0), tx), args.Error(1)
}

func txOrSame(res, tx string) string {
	if res == sameTx {
		return tx
	}
	return res
}

// **** TradeObserver ****

type countingObserver struct {
	mu        sync.Mutex
	completed int
	failed    []error
	retried   int
}

func (o *countingObserver) TradeCompleted(
	domain.TDEXProvider, domain.TradeType, time.Duration,
) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.completed++
}

func (o *countingObserver) TradeFailed(
	_ domain.TDEXProvider, _ domain.TradeType, err error,
) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failed = append(o.failed, err)
}

func (o *countingObserver) CompleteRetried(domain.TDEXProvider) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.retried++
}

func (o *countingObserver) ProviderFailed(domain.TDEXProvider, string) {}
