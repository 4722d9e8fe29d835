package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-trader/internal/core/application/discovery"
	"github.com/tdex-network/tdex-trader/internal/core/application/trade"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"github.com/tdex-network/tdex-trader/pkg/crawler"
	"github.com/tdex-network/tdex-trader/pkg/mathutil"
	"github.com/urfave/cli/v2"
)

const (
	strategyPrice    = "price"
	strategyBalance  = "balance"
	strategyCombined = "combined"
)

var (
	baseAssetFlag = &cli.StringFlag{
		Name:  "base_asset",
		Usage: "the base asset of the market, defaults to the one in state",
	}
	quoteAssetFlag = &cli.StringFlag{
		Name:  "quote_asset",
		Usage: "the quote asset of the market, defaults to the one in state",
	}
	amountFlag = &cli.StringFlag{
		Name:     "amount",
		Usage:    "the fractional amount to trade, ie. 0.001",
		Required: true,
	}
	assetFlag = &cli.StringFlag{
		Name:  "asset",
		Usage: "the asset of the amount, defaults to the base asset",
	}
	strategyFlag = &cli.StringFlag{
		Name:  "strategy",
		Usage: "the discovery strategy: price, balance or combined",
		Value: strategyPrice,
	}
	tradeTypeFlag = &cli.StringFlag{
		Name:     "type",
		Usage:    "the trade type: buy or sell",
		Required: true,
	}
	noCompleteFlag = &cli.BoolFlag{
		Name:  "no_complete",
		Usage: "broadcast the swap transaction from the trader instead of the provider",
	}
	waitFlag = &cli.DurationFlag{
		Name:  "wait",
		Usage: "wait up to the given time for the swap transaction to be confirmed, ie. 5m",
	}
)

var discoverCmd = cli.Command{
	Name:  "discover",
	Usage: "rank the providers of a market for a trade",
	Flags: []cli.Flag{
		baseAssetFlag, quoteAssetFlag, tradeTypeFlag, amountFlag, assetFlag,
		strategyFlag,
	},
	Action: discoverAction,
}

var previewCmd = cli.Command{
	Name:  "preview",
	Usage: "preview a trade with the best provider of a market",
	Flags: []cli.Flag{
		baseAssetFlag, quoteAssetFlag, tradeTypeFlag, amountFlag, assetFlag,
		strategyFlag,
	},
	Action: previewAction,
}

var buyCmd = cli.Command{
	Name:  "buy",
	Usage: "buy base asset from the best provider of a market",
	Flags: []cli.Flag{
		baseAssetFlag, quoteAssetFlag, amountFlag, assetFlag, strategyFlag,
		noCompleteFlag, waitFlag,
	},
	Action: func(ctx *cli.Context) error {
		return tradeAction(ctx, domain.TradeBuy)
	},
}

var sellCmd = cli.Command{
	Name:  "sell",
	Usage: "sell base asset to the best provider of a market",
	Flags: []cli.Flag{
		baseAssetFlag, quoteAssetFlag, amountFlag, assetFlag, strategyFlag,
		noCompleteFlag, waitFlag,
	},
	Action: func(ctx *cli.Context) error {
		return tradeAction(ctx, domain.TradeSell)
	},
}

type tradeRequest struct {
	market     domain.Market
	tradeType  domain.TradeType
	amount     uint64
	asset      string
	strategies []discovery.Strategy
}

func parseTradeRequest(
	ctx *cli.Context, tradeType *domain.TradeType,
) (*tradeRequest, error) {
	baseAsset, quoteAsset := ctx.String("base_asset"), ctx.String("quote_asset")
	if baseAsset == "" || quoteAsset == "" {
		stateBase, stateQuote, err := getMarketFromState()
		if err != nil {
			return nil, err
		}
		if baseAsset == "" {
			baseAsset = stateBase
		}
		if quoteAsset == "" {
			quoteAsset = stateQuote
		}
	}
	market := domain.Market{BaseAsset: baseAsset, QuoteAsset: quoteAsset}
	if err := market.Validate(); err != nil {
		return nil, err
	}

	if tradeType == nil {
		t, err := domain.ParseTradeType(ctx.String("type"))
		if err != nil {
			return nil, err
		}
		tradeType = &t
	}

	amount, err := mathutil.UnitsToSats(ctx.String("amount"))
	if err != nil {
		return nil, err
	}
	asset := ctx.String("asset")
	if asset == "" {
		asset = market.BaseAsset
	}

	strategies, err := parseStrategy(ctx.String("strategy"))
	if err != nil {
		return nil, err
	}

	return &tradeRequest{market, *tradeType, amount, asset, strategies}, nil
}

func parseStrategy(strategy string) ([]discovery.Strategy, error) {
	switch strategy {
	case strategyPrice:
		return []discovery.Strategy{discovery.BestPriceDiscovery}, nil
	case strategyBalance:
		return []discovery.Strategy{discovery.BestBalanceDiscovery}, nil
	case strategyCombined:
		return []discovery.Strategy{
			discovery.BestPriceDiscovery, discovery.BestBalanceDiscovery,
		}, nil
	default:
		return nil, fmt.Errorf("unknown discovery strategy %q", strategy)
	}
}

// discover returns the best orders for the request among the markets of
// all the known providers.
func (t *trader) discover(
	ctx *cli.Context, req *tradeRequest,
) ([]ports.TradeOrder, error) {
	markets, err := t.markets.ListMarkets(ctx.Context)
	if err != nil {
		return nil, err
	}
	orders, err := t.markets.TradeOrders(markets, req.market, req.tradeType)
	if err != nil {
		return nil, err
	}

	discoverer := discovery.NewDiscoverer(discovery.Options{
		CallTimeout: cfg.RPCTimeout,
		Observer:    t.observer,
	}, req.strategies...)

	return discoverer.Discover(ctx.Context, orders, discovery.Request{
		Asset:  req.asset,
		Amount: req.amount,
	})
}

type orderInfo struct {
	Provider   string `json:"provider"`
	Type       string `json:"type"`
	BaseAsset  string `json:"base_asset"`
	QuoteAsset string `json:"quote_asset"`
}

func discoverAction(ctx *cli.Context) error {
	req, err := parseTradeRequest(ctx, nil)
	if err != nil {
		return err
	}

	t, err := newTrader(ctx, false)
	if err != nil {
		return err
	}
	defer t.close()

	orders, err := t.discover(ctx, req)
	if err != nil {
		return err
	}

	resp := make([]orderInfo, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, orderInfo{
			Provider:   o.Market.Provider.Endpoint,
			Type:       o.Type.String(),
			BaseAsset:  o.Market.BaseAsset,
			QuoteAsset: o.Market.QuoteAsset,
		})
	}
	printJSON(resp)

	return nil
}

type previewInfo struct {
	Provider        string `json:"provider"`
	AssetToBeSent   string `json:"asset_to_be_sent"`
	AmountToBeSent  string `json:"amount_to_be_sent"`
	AssetToReceive  string `json:"asset_to_receive"`
	AmountToReceive string `json:"amount_to_receive"`
	FeeAsset        string `json:"fee_asset"`
	FeeAmount       string `json:"fee_amount"`
}

func newPreviewInfo(provider string, preview *domain.Preview) previewInfo {
	return previewInfo{
		Provider:        provider,
		AssetToBeSent:   preview.AssetToBeSent,
		AmountToBeSent:  mathutil.SatsToUnits(preview.AmountToBeSent).String(),
		AssetToReceive:  preview.AssetToReceive,
		AmountToReceive: mathutil.SatsToUnits(preview.AmountToReceive).String(),
		FeeAsset:        preview.FeeAsset,
		FeeAmount:       mathutil.SatsToUnits(preview.FeeAmount).String(),
	}
}

func previewAction(ctx *cli.Context) error {
	req, err := parseTradeRequest(ctx, nil)
	if err != nil {
		return err
	}

	t, err := newTrader(ctx, true)
	if err != nil {
		return err
	}
	defer t.close()

	orders, err := t.discover(ctx, req)
	if err != nil {
		return err
	}
	best := orders[0]

	executor, err := t.executor(best.Client)
	if err != nil {
		return err
	}
	preview, err := executor.Preview(
		ctx.Context, req.market, req.tradeType, req.amount, req.asset,
	)
	if err != nil {
		return err
	}

	printJSON(newPreviewInfo(best.Market.Provider.Endpoint, preview))
	return nil
}

type tradeInfo struct {
	previewInfo
	TradeId   string `json:"trade_id"`
	Txid      string `json:"txid"`
	Confirmed bool   `json:"confirmed"`
}

func tradeAction(ctx *cli.Context, tradeType domain.TradeType) error {
	req, err := parseTradeRequest(ctx, &tradeType)
	if err != nil {
		return err
	}

	t, err := newTrader(ctx, true)
	if err != nil {
		return err
	}
	defer t.close()

	orders, err := t.discover(ctx, req)
	if err != nil {
		return err
	}
	best := orders[0]

	executor, err := t.executor(best.Client)
	if err != nil {
		return err
	}

	res, err := execute(ctx, executor, req, !ctx.Bool("no_complete"))
	if err != nil {
		return err
	}
	if res.TxHex != "" {
		txid, err := t.wallet.BroadcastTransaction(ctx.Context, res.TxHex)
		if err != nil {
			return fmt.Errorf("failed to broadcast trade %s: %w", res.TradeId, err)
		}
		res.Txid = txid
	}

	info := tradeInfo{
		previewInfo: newPreviewInfo(best.Market.Provider.Endpoint, res.Preview),
		TradeId:     res.TradeId,
		Txid:        res.Txid,
	}
	if timeout := ctx.Duration(waitFlag.Name); timeout > 0 {
		confirmed, err := waitForConfirmation(ctx, res.Txid, timeout)
		if err != nil {
			return err
		}
		info.Confirmed = confirmed
	}

	printJSON(info)
	return nil
}

// waitForConfirmation returns whether the transaction got confirmed within
// the given timeout.
func waitForConfirmation(
	ctx *cli.Context, txid string, timeout time.Duration,
) (bool, error) {
	explorerSvc, err := newExplorer()
	if err != nil {
		return false, err
	}
	crawlerSvc, err := crawler.NewService(crawler.Opts{ExplorerSvc: explorerSvc})
	if err != nil {
		return false, err
	}

	waitCtx, cancel := context.WithTimeout(ctx.Context, timeout)
	defer cancel()

	log.WithField("txid", txid).Info("waiting for swap transaction to confirm")
	if err := crawlerSvc.WaitForConfirmation(waitCtx, txid); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func execute(
	ctx *cli.Context, executor *trade.Executor, req *tradeRequest,
	mustComplete bool,
) (*trade.Result, error) {
	switch {
	case req.tradeType.IsBuy() && mustComplete:
		return executor.Buy(ctx.Context, req.market, req.amount, req.asset)
	case req.tradeType.IsBuy():
		return executor.BuyWithoutComplete(
			ctx.Context, req.market, req.amount, req.asset,
		)
	case mustComplete:
		return executor.Sell(ctx.Context, req.market, req.amount, req.asset)
	default:
		return executor.SellWithoutComplete(
			ctx.Context, req.market, req.amount, req.asset,
		)
	}
}
