package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/pkg/swap"
)

const (
	lbtc = "5ac9f65c0efcc4775e0baec4ec03abdde22473cd3cf33c0419ca290e0751b225"
	usdt = "2dcf5a8834645654911964ec3602426fd3b9b4017554d3f9c19403e7fc1411d3"
)

var market = domain.Market{BaseAsset: lbtc, QuoteAsset: usdt}

func TestMarket(t *testing.T) {
	require.NoError(t, market.Validate())
	require.True(t, market.HasAsset(lbtc))
	require.True(t, market.HasAsset(usdt))
	require.False(t, market.HasAsset(""))
	require.Equal(t, usdt, market.OtherAsset(lbtc))
	require.Equal(t, lbtc, market.OtherAsset(usdt))
	require.Equal(t, "5ac9f65c/2dcf5a88", market.String())

	err := domain.Market{BaseAsset: "lbtc", QuoteAsset: usdt}.Validate()
	require.ErrorIs(t, err, domain.ErrInvalidBaseAsset)
	require.True(t, domain.IsInputError(err))

	err = domain.Market{BaseAsset: lbtc, QuoteAsset: usdt[:62]}.Validate()
	require.ErrorIs(t, err, domain.ErrInvalidQuoteAsset)
}

func TestTradeType(t *testing.T) {
	for _, str := range []string{"buy", "BUY", "Buy"} {
		tradeType, err := domain.ParseTradeType(str)
		require.NoError(t, err)
		require.True(t, tradeType.IsBuy())
	}
	tradeType, err := domain.ParseTradeType("sell")
	require.NoError(t, err)
	require.True(t, tradeType.IsSell())
	require.Equal(t, "SELL", tradeType.String())

	_, err = domain.ParseTradeType("swap")
	require.ErrorIs(t, err, domain.ErrInvalidTradeType)
	require.ErrorIs(t, domain.TradeType(2).Validate(), domain.ErrInvalidTradeType)
	require.Equal(t, "UNKNOWN(2)", domain.TradeType(2).String())
}

func TestNewPreview(t *testing.T) {
	quote := func(asset string, amount uint64) domain.PriceQuote {
		return domain.PriceQuote{
			Amount: amount, Asset: asset, FeeAmount: 25, FeeAsset: usdt,
		}
	}

	tests := []struct {
		name          string
		tradeType     domain.TradeType
		amount        uint64
		asset         string
		quote         domain.PriceQuote
		wantSendAsset string
		wantSend      uint64
		wantRecvAsset string
		wantRecv      uint64
	}{
		{"buy fixing base", domain.TradeBuy, 100, lbtc, quote(usdt, 2000), usdt, 2000, lbtc, 100},
		{"buy fixing quote", domain.TradeBuy, 2000, usdt, quote(lbtc, 100), usdt, 2000, lbtc, 100},
		{"sell fixing base", domain.TradeSell, 100, lbtc, quote(usdt, 1900), lbtc, 100, usdt, 1900},
		{"sell fixing quote", domain.TradeSell, 1900, usdt, quote(lbtc, 100), lbtc, 100, usdt, 1900},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			preview := domain.NewPreview(market, tt.tradeType, tt.amount, tt.asset, tt.quote)
			require.Equal(t, tt.wantSendAsset, preview.AssetToBeSent)
			require.Equal(t, tt.wantSend, preview.AmountToBeSent)
			require.Equal(t, tt.wantRecvAsset, preview.AssetToReceive)
			require.Equal(t, tt.wantRecv, preview.AmountToReceive)
			require.Equal(t, usdt, preview.FeeAsset)
			require.Equal(t, uint64(25), preview.FeeAmount)
		})
	}

	zero := domain.NewPreview(
		market, domain.TradeBuy, 0, lbtc, domain.ZeroQuote(market, lbtc),
	)
	require.Equal(t, usdt, zero.AssetToBeSent)
	require.Zero(t, zero.AmountToBeSent)
	require.Equal(t, lbtc, zero.AssetToReceive)
	require.Zero(t, zero.AmountToReceive)
}

func TestProvider(t *testing.T) {
	tests := []struct {
		endpoint string
		valid    bool
		onion    bool
	}{
		{"https://provider.io:9945", true, false},
		{"http://localhost:9945", true, false},
		{"http://abcdefghijklmnopqrstuvwxyz234567abcdefghijklmnopqrstuv.onion", true, true},
		{"provider.io:9945", false, false},
		{"grpc://provider.io", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		provider := domain.TDEXProvider{Endpoint: tt.endpoint}
		err := provider.Validate()
		if tt.valid {
			require.NoError(t, err, tt.endpoint)
		} else {
			require.ErrorIs(t, err, domain.ErrInvalidProviderEndpoint, tt.endpoint)
		}
		require.Equal(t, tt.onion, provider.IsOnion(), tt.endpoint)
	}
}

func TestMarketFee(t *testing.T) {
	fee := domain.MarketFee{BasisPoint: 25, FixedBaseFee: 100, FixedQuoteFee: 2000}
	require.Equal(t, uint64(125), fee.Estimate(market, lbtc, 10000))
	require.Equal(t, uint64(4500), fee.Estimate(market, usdt, 1000000))
	require.Equal(t, uint64(100), fee.Estimate(market, lbtc, 0))
}

func TestErrors(t *testing.T) {
	fail := &swap.SwapFail{
		Id:             "fail",
		MessageId:      "request",
		FailureCode:    10,
		FailureMessage: "invalid swap request",
	}
	err := fmt.Errorf("propose: %w", domain.NewCounterpartyFailure(fail))

	var cerr *domain.CounterpartyFailure
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, "request", cerr.MessageId)
	require.Equal(t, uint32(10), cerr.Code)
	require.False(t, domain.IsInputError(err))
	require.False(t, domain.IsValidationError(err))

	require.True(t, domain.IsValidationError(
		fmt.Errorf("accept: %w", &domain.ValidationError{Reason: "bad"}),
	))
	require.True(t, domain.IsInputError(domain.ErrInvalidAmount))
	require.False(t, domain.IsInputError(domain.ErrLiquidityExhausted))
}
