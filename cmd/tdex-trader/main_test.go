package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/internal/config"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/urfave/cli/v2"
)

const (
	lbtc = "5ac9f65c0efcc4775e0baec4ec03abdde22473cd3cf33c0419ca290e0751b225"
	usdt = "2dcf5a8834645654911964ec3602426fd3b9b4017554d3f9c19403e7fc1411d3"
)

func TestState(t *testing.T) {
	cfg = &config.Config{Datadir: t.TempDir()}

	state, err := getState()
	require.NoError(t, err)
	require.Empty(t, state)

	err = setState(map[string]string{baseAssetStateKey: lbtc})
	require.NoError(t, err)
	_, _, err = getMarketFromState()
	require.Error(t, err)

	err = setState(map[string]string{quoteAssetStateKey: usdt})
	require.NoError(t, err)
	base, quote, err := getMarketFromState()
	require.NoError(t, err)
	require.Equal(t, lbtc, base)
	require.Equal(t, usdt, quote)
}

func TestParseTradeRequest(t *testing.T) {
	cfg = &config.Config{Datadir: t.TempDir()}

	t.Run("valid", func(t *testing.T) {
		ctx := newTestContext(t, map[string]string{
			"base_asset":  lbtc,
			"quote_asset": usdt,
			"type":        "sell",
			"amount":      "0.0001",
			"strategy":    strategyCombined,
		})
		req, err := parseTradeRequest(ctx, nil)
		require.NoError(t, err)
		require.Equal(t, domain.Market{BaseAsset: lbtc, QuoteAsset: usdt}, req.market)
		require.Equal(t, domain.TradeSell, req.tradeType)
		require.Equal(t, uint64(10000), req.amount)
		require.Equal(t, lbtc, req.asset)
		require.Len(t, req.strategies, 2)
	})

	t.Run("fixed trade type", func(t *testing.T) {
		ctx := newTestContext(t, map[string]string{
			"base_asset":  lbtc,
			"quote_asset": usdt,
			"amount":      "10",
			"asset":       usdt,
			"strategy":    strategyPrice,
		})
		tradeType := domain.TradeBuy
		req, err := parseTradeRequest(ctx, &tradeType)
		require.NoError(t, err)
		require.Equal(t, domain.TradeBuy, req.tradeType)
		require.Equal(t, uint64(1000000000), req.amount)
		require.Equal(t, usdt, req.asset)
		require.Len(t, req.strategies, 1)
	})

	t.Run("invalid", func(t *testing.T) {
		tests := []struct {
			name  string
			flags map[string]string
		}{
			{"missing market", map[string]string{"type": "buy", "amount": "1", "strategy": strategyPrice}},
			{"invalid type", map[string]string{"base_asset": lbtc, "quote_asset": usdt, "type": "swap", "amount": "1", "strategy": strategyPrice}},
			{"invalid amount", map[string]string{"base_asset": lbtc, "quote_asset": usdt, "type": "buy", "amount": "-1", "strategy": strategyPrice}},
			{"invalid strategy", map[string]string{"base_asset": lbtc, "quote_asset": usdt, "type": "buy", "amount": "1", "strategy": "fastest"}},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				ctx := newTestContext(t, tt.flags)
				_, err := parseTradeRequest(ctx, nil)
				require.Error(t, err)
			})
		}
	})
}

func TestNewPreviewInfo(t *testing.T) {
	info := newPreviewInfo("https://provider.io", &domain.Preview{
		AssetToBeSent:   usdt,
		AmountToBeSent:  2000000000,
		AssetToReceive:  lbtc,
		AmountToReceive: 100000,
		FeeAsset:        usdt,
		FeeAmount:       25000000,
	})
	require.Equal(t, "20", info.AmountToBeSent)
	require.Equal(t, "0.001", info.AmountToReceive)
	require.Equal(t, "0.25", info.FeeAmount)
}

func newTestContext(t *testing.T, flags map[string]string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, name := range []string{
		"base_asset", "quote_asset", "type", "amount", "asset", "strategy",
	} {
		set.String(name, "", "")
	}
	for k, v := range flags {
		require.NoError(t, set.Set(k, v))
	}
	return cli.NewContext(cli.NewApp(), set, nil)
}
