package trade_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/internal/core/application/trade"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
	"github.com/tdex-network/tdex-trader/pkg/mathutil"
	"github.com/tdex-network/tdex-trader/pkg/swap"
	"github.com/tdex-network/tdex-trader/pkg/swaptx"
	"github.com/vulpemventures/go-elements/transaction"
)

const (
	lbtc = "5ac9f65c0efcc4775e0baec4ec03abdde22473cd3cf33c0419ca290e0751b225"
	usdt = "2dcf5a8834645654911964ec3602426fd3b9b4017554d3f9c19403e7fc1411d3"

	traderTxid   = "b9abc5a5f0224d3f56a2a07f89238cff93b99d19c92a98712fa7430635514571"
	providerTxid = "97b74fe5aff4edd10b7eb52e3df3c70201b51719af50c1f16dbe2ce9c4c80be6"

	traderBalance   = uint64(150000)
	providerBalance = uint64(20000)
	baseAmount      = uint64(5000)
	quoteAmount     = uint64(100000)
	swapTxid        = "0000000000000000000000000000000000000000000000000000000000000001"
)

var (
	market = domain.Market{BaseAsset: lbtc, QuoteAsset: usdt}

	traderScript   = script(0xaa)
	changeScript   = script(0xcc)
	providerScript = script(0xbb)

	errNotFound = fmt.Errorf(
		"%w: rpc error: code = NotFound desc = swap not found",
		domain.ErrTransientNotFound,
	)
	errInvalidSignature = fmt.Errorf("invalid signature")
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name            string
		tradeType       domain.TradeType
		amount          uint64
		asset           string
		quote           domain.PriceQuote
		expectedPreview domain.Preview
	}{
		{
			name:      "buy fixing base amount",
			tradeType: domain.TradeBuy,
			amount:    baseAmount,
			asset:     lbtc,
			quote:     domain.PriceQuote{Amount: quoteAmount, Asset: usdt},
			expectedPreview: domain.Preview{
				AssetToBeSent: usdt, AmountToBeSent: quoteAmount,
				AssetToReceive: lbtc, AmountToReceive: baseAmount,
			},
		},
		{
			name:      "buy fixing quote amount",
			tradeType: domain.TradeBuy,
			amount:    quoteAmount,
			asset:     usdt,
			quote:     domain.PriceQuote{Amount: baseAmount, Asset: lbtc},
			expectedPreview: domain.Preview{
				AssetToBeSent: usdt, AmountToBeSent: quoteAmount,
				AssetToReceive: lbtc, AmountToReceive: baseAmount,
			},
		},
		{
			name:      "sell fixing base amount",
			tradeType: domain.TradeSell,
			amount:    baseAmount,
			asset:     lbtc,
			quote:     domain.PriceQuote{Amount: quoteAmount, Asset: usdt},
			expectedPreview: domain.Preview{
				AssetToBeSent: lbtc, AmountToBeSent: baseAmount,
				AssetToReceive: usdt, AmountToReceive: quoteAmount,
			},
		},
		{
			name:      "sell fixing quote amount",
			tradeType: domain.TradeSell,
			amount:    quoteAmount,
			asset:     usdt,
			quote:     domain.PriceQuote{Amount: baseAmount, Asset: lbtc},
			expectedPreview: domain.Preview{
				AssetToBeSent: lbtc, AmountToBeSent: baseAmount,
				AssetToReceive: usdt, AmountToReceive: quoteAmount,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, swap.V1, nil)
			env.client.On(
				"PreviewTrade", mock.Anything, market, tt.tradeType,
				tt.amount, tt.asset, tt.asset,
			).Return([]domain.PriceQuote{tt.quote}, nil)

			preview, err := env.executor.Preview(
				context.Background(), market, tt.tradeType, tt.amount, tt.asset,
			)
			require.NoError(t, err)
			require.Equal(t, tt.expectedPreview, *preview)
		})
	}
}

func TestPreviewZeroAmount(t *testing.T) {
	env := newTestEnv(t, swap.V1, nil)

	preview, err := env.executor.Preview(
		context.Background(), market, domain.TradeBuy, 0, lbtc,
	)
	require.NoError(t, err)
	require.Equal(t, domain.Preview{
		AssetToBeSent:  usdt,
		AssetToReceive: lbtc,
	}, *preview)
	env.client.AssertNotCalled(t, "PreviewTrade")
}

func TestFailingPreview(t *testing.T) {
	env := newTestEnv(t, swap.V1, nil)
	env.client.On(
		"PreviewTrade", mock.Anything, market, domain.TradeBuy,
		baseAmount, lbtc, lbtc,
	).Return([]domain.PriceQuote{}, nil)

	tests := []struct {
		name   string
		market domain.Market
		amount uint64
		asset  string
		err    error
	}{
		{"invalid amount", market, mathutil.MaxSafeAmount + 1, lbtc, domain.ErrInvalidAmount},
		{"invalid market", domain.Market{BaseAsset: "ab", QuoteAsset: usdt}, 1, usdt, domain.ErrInvalidBaseAsset},
		{"asset not in market", market, 1, providerTxid, domain.ErrInvalidAsset},
		{"empty preview", market, baseAmount, lbtc, domain.ErrEmptyPreview},
	}

	for _, tt := range tests {
		preview, err := env.executor.Preview(
			context.Background(), tt.market, domain.TradeBuy, tt.amount, tt.asset,
		)
		require.ErrorIs(t, err, tt.err, tt.name)
		require.Nil(t, preview)
	}
}

func TestBuy(t *testing.T) {
	tests := []struct {
		name      string
		version   swap.Version
		feeAmount uint64
	}{
		{"v1", swap.V1, 0},
		{"v2", swap.V2, 0},
		{"v2 with fee", swap.V2, 250},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.version, func(cfg *trade.Config) {
				cfg.FeeAsset = usdt
			})
			env.mockPreview(domain.TradeBuy, tt.feeAmount)
			env.mockCoins(quoteAmount + tt.feeAmount)
			env.client.On(
				"ProposeTrade", mock.Anything, market, domain.TradeBuy,
				mock.Anything, mock.Anything, mock.Anything,
			).Return(env.provider(t, acceptOpts{}), nil)
			env.signer.On("SignTransaction", mock.Anything, mock.Anything).
				Return(sameTx, nil)
			env.client.On("CompleteTrade", mock.Anything, mock.Anything).
				Return(&ports.CompleteTradeReply{Txid: swapTxid}, nil)
			if tt.version == swap.V2 {
				env.blinder.On(
					"BlindTransaction", mock.Anything, mock.Anything, mock.Anything,
				).Return(sameTx, nil)
			}

			res, err := env.executor.Buy(
				context.Background(), market, baseAmount, lbtc,
			)
			require.NoError(t, err)
			require.NotNil(t, res)
			require.Equal(t, swapTxid, res.Txid)
			require.Empty(t, res.TxHex)
			require.NotEmpty(t, res.TradeId)
			require.Equal(t, usdt, res.Preview.AssetToBeSent)

			env.client.AssertExpectations(t)
			env.wallet.AssertCalled(
				t, "CoinSelectionForTrade", mock.Anything, usdt,
				quoteAmount+tt.feeAmount,
			)
			if tt.version == swap.V1 {
				env.blinder.AssertNotCalled(
					t, "BlindTransaction", mock.Anything, mock.Anything, mock.Anything,
				)
			}
			require.Equal(t, 1, env.observer.completed)
		})
	}
}

func TestSell(t *testing.T) {
	env := newTestEnv(t, swap.V1, nil)
	env.client.On(
		"PreviewTrade", mock.Anything, market, domain.TradeSell,
		quoteAmount, usdt, usdt,
	).Return([]domain.PriceQuote{{Amount: baseAmount, Asset: lbtc}}, nil)
	env.wallet.On("CoinSelectionForTrade", mock.Anything, lbtc, baseAmount).
		Return(&domain.CoinSelectionForTrade{
			Utxos: []domain.Utxo{explicitUtxo(traderTxid, 0, lbtc, 6000)},
			ChangeOutputs: []domain.ChangeOutput{
				{Asset: lbtc, Amount: 1000},
			},
		}, nil)
	env.client.On(
		"ProposeTrade", mock.Anything, market, domain.TradeSell,
		mock.Anything, mock.Anything, mock.Anything,
	).Return(env.provider(t, acceptOpts{}), nil)
	env.signer.On("SignTransaction", mock.Anything, mock.Anything).
		Return(sameTx, nil)
	env.client.On("CompleteTrade", mock.Anything, mock.Anything).
		Return(&ports.CompleteTradeReply{Txid: swapTxid}, nil)

	res, err := env.executor.Sell(context.Background(), market, quoteAmount, usdt)
	require.NoError(t, err)
	require.Equal(t, swapTxid, res.Txid)
	require.Equal(t, lbtc, res.Preview.AssetToBeSent)
	require.Equal(t, quoteAmount, res.Preview.AmountToReceive)
}

func TestBuyWithoutComplete(t *testing.T) {
	t.Run("self sufficient transaction", func(t *testing.T) {
		env := newTestEnv(t, swap.V1, nil)
		env.mockHappyPathUntilSign(t)

		txHex, txid := rawTx(t)
		env.signer.On("FinalizeAndExtract", mock.Anything, mock.Anything).
			Return(txHex, nil)

		res, err := env.executor.BuyWithoutComplete(
			context.Background(), market, baseAmount, lbtc,
		)
		require.NoError(t, err)
		require.Equal(t, txHex, res.TxHex)
		require.Equal(t, txid, res.Txid)
		env.client.AssertNotCalled(t, "CompleteTrade", mock.Anything, mock.Anything)
	})

	t.Run("fallback to complete", func(t *testing.T) {
		env := newTestEnv(t, swap.V1, nil)
		env.mockHappyPathUntilSign(t)
		env.signer.On("FinalizeAndExtract", mock.Anything, mock.Anything).
			Return("", fmt.Errorf("input 1 is not signed"))
		env.client.On("CompleteTrade", mock.Anything, mock.Anything).
			Return(&ports.CompleteTradeReply{Txid: swapTxid}, nil)

		res, err := env.executor.BuyWithoutComplete(
			context.Background(), market, baseAmount, lbtc,
		)
		require.NoError(t, err)
		require.Equal(t, swapTxid, res.Txid)
		require.Empty(t, res.TxHex)
		env.client.AssertNumberOfCalls(t, "CompleteTrade", 1)
	})
}

func TestCompleteRetry(t *testing.T) {
	t.Run("not found is retried", func(t *testing.T) {
		env := newTestEnv(t, swap.V1, nil)
		env.mockHappyPathUntilSign(t)
		env.client.On("CompleteTrade", mock.Anything, mock.Anything).
			Return(nil, errNotFound).Twice()
		env.client.On("CompleteTrade", mock.Anything, mock.Anything).
			Return(&ports.CompleteTradeReply{Txid: swapTxid}, nil).Once()

		res, err := env.executor.Buy(context.Background(), market, baseAmount, lbtc)
		require.NoError(t, err)
		require.Equal(t, swapTxid, res.Txid)
		env.client.AssertNumberOfCalls(t, "CompleteTrade", 3)
		require.Equal(t, 2, env.observer.retried)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		env := newTestEnv(t, swap.V1, nil)
		env.mockHappyPathUntilSign(t)
		env.client.On("CompleteTrade", mock.Anything, mock.Anything).
			Return(nil, errInvalidSignature)

		res, err := env.executor.Buy(context.Background(), market, baseAmount, lbtc)
		require.ErrorIs(t, err, errInvalidSignature)
		require.Nil(t, res)
		env.client.AssertNumberOfCalls(t, "CompleteTrade", 1)
		require.Zero(t, env.observer.retried)
		require.Len(t, env.observer.failed, 1)
	})

	t.Run("attempts are bounded", func(t *testing.T) {
		env := newTestEnv(t, swap.V1, func(cfg *trade.Config) {
			cfg.Retry.MaxAttempts = 3
		})
		env.mockHappyPathUntilSign(t)
		env.client.On("CompleteTrade", mock.Anything, mock.Anything).
			Return(nil, errNotFound)

		res, err := env.executor.Buy(context.Background(), market, baseAmount, lbtc)
		require.ErrorIs(t, err, domain.ErrTransientNotFound)
		require.Nil(t, res)
		env.client.AssertNumberOfCalls(t, "CompleteTrade", 3)
	})

	t.Run("context cancellation stops retrying", func(t *testing.T) {
		env := newTestEnv(t, swap.V1, func(cfg *trade.Config) {
			cfg.Retry = trade.RetryPolicy{
				MaxAttempts: 1000,
				Backoff:     time.Hour,
				MaxBackoff:  time.Hour,
			}
		})
		env.mockHappyPathUntilSign(t)

		ctx, cancel := context.WithCancel(context.Background())
		env.client.On("CompleteTrade", mock.Anything, mock.Anything).
			Return(nil, errNotFound).
			Run(func(mock.Arguments) { cancel() })

		res, err := env.executor.Buy(ctx, market, baseAmount, lbtc)
		require.ErrorIs(t, err, context.Canceled)
		require.Nil(t, res)
		env.client.AssertNumberOfCalls(t, "CompleteTrade", 1)
	})
}

func TestFailingTrade(t *testing.T) {
	t.Run("invalid amount", func(t *testing.T) {
		env := newTestEnv(t, swap.V1, nil)

		for _, amount := range []uint64{0, mathutil.MaxSafeAmount + 1} {
			res, err := env.executor.Buy(context.Background(), market, amount, lbtc)
			require.ErrorIs(t, err, domain.ErrInvalidAmount)
			require.True(t, domain.IsInputError(err))
			require.Nil(t, res)
		}
		env.client.AssertNotCalled(t, "PreviewTrade")
	})

	t.Run("no utxo available", func(t *testing.T) {
		env := newTestEnv(t, swap.V1, nil)
		env.mockPreview(domain.TradeBuy, 0)
		env.wallet.On("CoinSelectionForTrade", mock.Anything, usdt, quoteAmount).
			Return(&domain.CoinSelectionForTrade{}, nil)

		res, err := env.executor.Buy(context.Background(), market, baseAmount, lbtc)
		require.ErrorIs(t, err, domain.ErrNoUtxoAvailable)
		require.Nil(t, res)
		env.client.AssertNotCalled(
			t, "ProposeTrade", mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything,
		)
	})

	t.Run("swap fail", func(t *testing.T) {
		env := newTestEnv(t, swap.V1, nil)
		env.mockPreview(domain.TradeBuy, 0)
		env.mockCoins(quoteAmount)

		fail, err := swap.Encode(swap.V1, swap.Fail(swap.FailOpts{
			MessageID:  "request-id",
			ErrCode:    swap.ErrCodeRejectedSwapRequest,
			ErrMessage: "market is closed",
		}))
		require.NoError(t, err)
		env.client.On(
			"ProposeTrade", mock.Anything, market, domain.TradeBuy,
			mock.Anything, mock.Anything, mock.Anything,
		).Return(&ports.ProposeTradeReply{SwapFail: fail}, nil)

		res, err := env.executor.Buy(context.Background(), market, baseAmount, lbtc)
		require.Nil(t, res)

		var cerr *domain.CounterpartyFailure
		require.ErrorAs(t, err, &cerr)
		require.Equal(t, uint32(swap.ErrCodeRejectedSwapRequest), cerr.Code)
		require.Equal(t, "market is closed", cerr.Message)
		env.signer.AssertNotCalled(t, "SignTransaction", mock.Anything, mock.Anything)
	})

	tests := []struct {
		name string
		opts acceptOpts
	}{
		{"provider pays less", acceptOpts{payTrader: baseAmount - 1}},
		{"provider receives more", acceptOpts{payProvider: quoteAmount + 1}},
		{"request id mismatch", acceptOpts{requestId: "another-id"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, swap.V1, nil)
			env.mockPreview(domain.TradeBuy, 0)
			env.mockCoins(quoteAmount)
			env.client.On(
				"ProposeTrade", mock.Anything, market, domain.TradeBuy,
				mock.Anything, mock.Anything, mock.Anything,
			).Return(env.provider(t, tt.opts), nil)

			res, err := env.executor.Buy(
				context.Background(), market, baseAmount, lbtc,
			)
			require.Error(t, err)
			require.True(t, domain.IsValidationError(err))
			require.Nil(t, res)
			env.signer.AssertNotCalled(
				t, "SignTransaction", mock.Anything, mock.Anything,
			)
			env.client.AssertNotCalled(
				t, "CompleteTrade", mock.Anything, mock.Anything,
			)
		})
	}
}

func TestNewExecutor(t *testing.T) {
	wallet, signer := &mockWallet{}, &mockSigner{}

	tests := []struct {
		name   string
		cfg    trade.Config
		client ports.TraderClient
		err    error
	}{
		{"missing client", trade.Config{Wallet: wallet, Signer: signer}, nil, trade.ErrMissingClient},
		{"missing wallet", trade.Config{Signer: signer}, &mockTraderClient{version: swap.V1}, trade.ErrMissingWallet},
		{"missing signer", trade.Config{Wallet: wallet}, &mockTraderClient{version: swap.V1}, trade.ErrMissingSigner},
		{"missing blinder", trade.Config{Wallet: wallet, Signer: signer}, &mockTraderClient{version: swap.V2}, trade.ErrMissingBlinder},
		{"unknown version", trade.Config{Wallet: wallet, Signer: signer}, &mockTraderClient{version: 3}, swap.ErrUnknownVersion},
	}

	for _, tt := range tests {
		executor, err := trade.NewExecutor(tt.cfg, tt.client)
		require.ErrorIs(t, err, tt.err, tt.name)
		require.Nil(t, executor)
	}
}

type testEnv struct {
	version  swap.Version
	client   *mockTraderClient
	wallet   *mockWallet
	signer   *mockSigner
	blinder  *mockBlinder
	observer *countingObserver
	executor *trade.Executor
	selected uint64
}

func newTestEnv(t *testing.T, v swap.Version, cfgFn func(*trade.Config)) *testEnv {
	env := &testEnv{
		version:  v,
		client:   &mockTraderClient{version: v},
		wallet:   &mockWallet{},
		signer:   &mockSigner{},
		blinder:  &mockBlinder{},
		observer: &countingObserver{},
	}

	env.wallet.On("ReceiveScript", mock.Anything).
		Return(&domain.ScriptDetails{Script: traderScript}, nil)
	env.wallet.On("ChangeScript", mock.Anything).
		Return(&domain.ScriptDetails{Script: changeScript}, nil)
	env.wallet.On("ScriptDetails", mock.Anything, mock.Anything).
		Return(&domain.ScriptDetails{}, nil)

	cfg := trade.Config{
		Wallet:   env.wallet,
		Signer:   env.signer,
		Blinder:  env.blinder,
		Observer: env.observer,
		Retry: trade.RetryPolicy{
			MaxAttempts: 5,
			Backoff:     time.Millisecond,
			MaxBackoff:  5 * time.Millisecond,
		},
	}
	if cfgFn != nil {
		cfgFn(&cfg)
	}

	executor, err := trade.NewExecutor(cfg, env.client)
	require.NoError(t, err)
	env.executor = executor
	return env
}

func (e *testEnv) mockPreview(tradeType domain.TradeType, feeAmount uint64) {
	e.client.On(
		"PreviewTrade", mock.Anything, market, tradeType,
		baseAmount, lbtc, mock.Anything,
	).Return([]domain.PriceQuote{{
		Amount:    quoteAmount,
		Asset:     usdt,
		FeeAmount: feeAmount,
		FeeAsset:  usdt,
	}}, nil)
}

// mockCoins makes the wallet select a single utxo of the trader balance to
// cover amount.
func (e *testEnv) mockCoins(amount uint64) {
	e.selected = amount
	e.wallet.On("CoinSelectionForTrade", mock.Anything, usdt, amount).
		Return(&domain.CoinSelectionForTrade{
			Utxos: []domain.Utxo{{
				Outpoint: domain.Outpoint{Txid: traderTxid, Index: 0},
				Prevout:  explicitOut(usdt, traderBalance, traderScript),
				Asset:    usdt,
				Value:    traderBalance,
			}},
			ChangeOutputs: []domain.ChangeOutput{
				{Asset: usdt, Amount: traderBalance - amount},
			},
		}, nil)
}

func (e *testEnv) mockHappyPathUntilSign(t *testing.T) {
	e.mockPreview(domain.TradeBuy, 0)
	e.mockCoins(quoteAmount)
	e.client.On(
		"ProposeTrade", mock.Anything, market, domain.TradeBuy,
		mock.Anything, mock.Anything, mock.Anything,
	).Return(e.provider(t, acceptOpts{}), nil)
	e.signer.On("SignTransaction", mock.Anything, mock.Anything).
		Return(sameTx, nil)
}

// acceptOpts makes the mocked provider misbehave.
type acceptOpts struct {
	payTrader   uint64
	payProvider uint64
	requestId   string
}

func (o acceptOpts) honest() bool {
	return o.payTrader == 0 && o.payProvider == 0 && o.requestId == ""
}

// provider returns the reply of a provider to a swap request: it adds an
// input of its own and pays what is requested.
func (e *testEnv) provider(t *testing.T, opts acceptOpts) proposeFn {
	return func(
		buf []byte, feeAsset string, feeAmount uint64,
	) (*ports.ProposeTradeReply, error) {
		req, err := swap.DecodeRequest(e.version, buf)
		require.NoError(t, err)
		req.FeeAsset, req.FeeAmount = feeAsset, feeAmount

		toProvider, toTrader := req.AmountP, req.AmountR
		if req.FeeAmount > 0 {
			if req.FeeAsset == req.AssetP {
				toProvider += req.FeeAmount
			} else {
				toTrader -= req.FeeAmount
			}
		}
		if opts.payTrader > 0 {
			toTrader = opts.payTrader
		}
		if opts.payProvider > 0 {
			toProvider = opts.payProvider
		}

		format, err := swaptx.FormatForVersion(e.version)
		require.NoError(t, err)
		built, err := swaptx.Build(swaptx.BuildOpts{
			Format: format,
			Utxos: []swaptx.Utxo{
				{
					Txid:    traderTxid,
					Prevout: explicitOut(req.AssetP, traderBalance, traderScript),
					Asset:   req.AssetP,
					Value:   traderBalance,
				},
				{
					Txid:    providerTxid,
					Prevout: explicitOut(req.AssetR, providerFunds(req.AssetR), providerScript),
					Asset:   req.AssetR,
					Value:   providerFunds(req.AssetR),
				},
			},
			Outputs: []swaptx.Output{
				{Asset: req.AssetR, Amount: toTrader, Script: traderScript},
				{Asset: req.AssetP, Amount: toProvider, Script: providerScript},
			},
		})
		require.NoError(t, err)

		var accept *swap.SwapAccept
		if opts.honest() {
			accept, err = swap.Accept(swap.AcceptOpts{
				Request:     req,
				Transaction: built.Transaction,
			})
			require.NoError(t, err)
		} else {
			accept = &swap.SwapAccept{
				Id:          "accept-id",
				RequestId:   req.Id,
				Transaction: built.Transaction,
			}
			if opts.requestId != "" {
				accept.RequestId = opts.requestId
			}
		}

		acceptBytes, err := swap.Encode(e.version, accept)
		require.NoError(t, err)
		return &ports.ProposeTradeReply{SwapAccept: acceptBytes}, nil
	}
}

// providerFunds returns the value of the utxo the provider adds to the swap.
func providerFunds(asset string) uint64 {
	if asset == usdt {
		return 10 * quoteAmount
	}
	return providerBalance
}

func explicitUtxo(txid string, index uint32, asset string, value uint64) domain.Utxo {
	return domain.Utxo{
		Outpoint: domain.Outpoint{Txid: txid, Index: index},
		Prevout:  explicitOut(asset, value, traderScript),
		Asset:    asset,
		Value:    value,
	}
}

func explicitOut(asset string, value uint64, script []byte) *transaction.TxOutput {
	assetBytes, _ := bufferutil.AssetHashToBytes(asset)
	valueBytes, _ := bufferutil.ValueToBytes(value)
	return transaction.NewTxOutput(assetBytes, valueBytes, script)
}

func rawTx(t *testing.T) (string, string) {
	hash, err := bufferutil.TxIDToBytes(traderTxid)
	require.NoError(t, err)

	tx := transaction.NewTx(2)
	tx.AddInput(transaction.NewTxInput(hash, 0))
	tx.AddOutput(explicitOut(lbtc, baseAmount, traderScript))

	txHex, err := tx.ToHex()
	require.NoError(t, err)
	return txHex, tx.TxHash().String()
}

func script(b byte) []byte {
	return append([]byte{0x00, 0x14}, bytes.Repeat([]byte{b}, 20)...)
}
