package main

import (
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/pkg/mathutil"
	"github.com/urfave/cli/v2"
)

var marketsCmd = cli.Command{
	Name:  "markets",
	Usage: "list the markets of all the known providers",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "balances",
			Usage: "fetch also the current balance of every market",
		},
	},
	Action: listMarketsAction,
}

type marketInfo struct {
	Provider      string `json:"provider"`
	BaseAsset     string `json:"base_asset"`
	QuoteAsset    string `json:"quote_asset"`
	BasisPoint    uint64 `json:"basis_point"`
	FixedBaseFee  uint64 `json:"fixed_base_fee"`
	FixedQuoteFee uint64 `json:"fixed_quote_fee"`
	BaseBalance   string `json:"base_balance,omitempty"`
	QuoteBalance  string `json:"quote_balance,omitempty"`
}

func newMarketInfo(mkt domain.TDEXMarket) marketInfo {
	info := marketInfo{
		Provider:      mkt.Provider.Endpoint,
		BaseAsset:     mkt.BaseAsset,
		QuoteAsset:    mkt.QuoteAsset,
		BasisPoint:    mkt.Fee.BasisPoint,
		FixedBaseFee:  mkt.Fee.FixedBaseFee,
		FixedQuoteFee: mkt.Fee.FixedQuoteFee,
	}
	if mkt.Balance != nil {
		info.BaseBalance = mathutil.SatsToUnits(mkt.Balance.BaseAmount).String()
		info.QuoteBalance = mathutil.SatsToUnits(mkt.Balance.QuoteAmount).String()
	}
	return info
}

func listMarketsAction(ctx *cli.Context) error {
	t, err := newTrader(ctx, false)
	if err != nil {
		return err
	}
	defer t.close()

	markets, err := t.markets.ListMarkets(ctx.Context)
	if err != nil {
		return err
	}
	if ctx.Bool("balances") {
		markets = t.markets.RefreshBalances(ctx.Context, markets)
	}

	resp := make([]marketInfo, 0, len(markets))
	for _, mkt := range markets {
		resp = append(resp, newMarketInfo(mkt))
	}
	printJSON(resp)

	return nil
}
