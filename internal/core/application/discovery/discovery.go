// Package discovery ranks the candidate TradeOrders of a trade to pick the
// provider(s) to route it through.
package discovery

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Request is the side of the trade fixed by the caller.
type Request struct {
	Asset  string
	Amount uint64
}

// ErrorHandler receives every single provider failure of a strategy.
type ErrorHandler func(order ports.TradeOrder, err error)

// Options tunes how strategies call providers.
type Options struct {
	// ErrorHandler, if defined, is called with each provider failure, in
	// the order of the candidates. Failures are logged otherwise.
	ErrorHandler ErrorHandler
	// CallTimeout bounds every provider call. Zero means that calls are
	// bound only by the caller's context.
	CallTimeout time.Duration
	Observer    ports.TradeObserver
}

// Strategy narrows the given orders to the best ones. Strategies must
// return the orders as they are if they are at most one.
type Strategy func(
	ctx context.Context, orders []ports.TradeOrder, req Request, opts Options,
) ([]ports.TradeOrder, error)

// Result is the outcome of a provider call for a single candidate.
type Result struct {
	Order ports.TradeOrder
	Value uint64
	Err   error
}

func (r Result) Ok() bool {
	return r.Err == nil
}

// Discoverer applies a strategy with fixed options.
type Discoverer struct {
	strategy Strategy
	opts     Options
}

// NewDiscoverer returns a discoverer combining the given strategies from
// left to right. With no strategies, the best price one is used.
func NewDiscoverer(opts Options, strategies ...Strategy) *Discoverer {
	if len(strategies) <= 0 {
		strategies = []Strategy{BestPriceDiscovery}
	}
	if opts.Observer == nil {
		opts.Observer = ports.NopTradeObserver{}
	}
	return &Discoverer{CombineDiscovery(strategies...), opts}
}

func (d *Discoverer) Discover(
	ctx context.Context, orders []ports.TradeOrder, req Request,
) ([]ports.TradeOrder, error) {
	return d.strategy(ctx, orders, req, d.opts)
}

// CombineDiscovery applies strategies from left to right and stops as soon
// as at most one order is left.
func CombineDiscovery(strategies ...Strategy) Strategy {
	return func(
		ctx context.Context, orders []ports.TradeOrder, req Request, opts Options,
	) ([]ports.TradeOrder, error) {
		var err error
		for _, strategy := range strategies {
			if len(orders) <= 1 {
				break
			}
			if orders, err = strategy(ctx, orders, req, opts); err != nil {
				return nil, err
			}
		}
		return orders, nil
	}
}

// BestBalanceDiscovery keeps the orders whose market has the highest
// balance of the asset paid out by the provider: base asset for BUY, quote
// asset for SELL. Providers failing to return their balance are excluded,
// it fails with domain.ErrLiquidityExhausted if none of them does.
func BestBalanceDiscovery(
	ctx context.Context, orders []ports.TradeOrder, req Request, opts Options,
) ([]ports.TradeOrder, error) {
	if len(orders) <= 1 {
		return orders, nil
	}

	results := settleAll(ctx, orders, opts, balanceOf)
	handleFailures(results, opts, "GetMarketBalance")

	best := bestResults(results)
	if len(best) <= 0 {
		return nil, domain.ErrLiquidityExhausted
	}
	return best, nil
}

// BestPriceDiscovery keeps the orders quoting the highest amount for the
// request. It fails with domain.ErrLiquidityExhausted if no provider
// returns a price. A zero amount can't be quoted, the orders are returned
// as they are without calling any provider.
func BestPriceDiscovery(
	ctx context.Context, orders []ports.TradeOrder, req Request, opts Options,
) ([]ports.TradeOrder, error) {
	if len(orders) <= 1 || req.Amount == 0 {
		return orders, nil
	}

	results := settleAll(
		ctx, orders, opts,
		func(ctx context.Context, order ports.TradeOrder) (uint64, error) {
			return priceOf(ctx, order, req)
		},
	)
	handleFailures(results, opts, "PreviewTrade")

	best := bestResults(results)
	if len(best) <= 0 {
		return nil, domain.ErrLiquidityExhausted
	}
	return best, nil
}

func balanceOf(ctx context.Context, order ports.TradeOrder) (uint64, error) {
	balance, err := order.Client.GetMarketBalance(ctx, order.Market.Market)
	if err != nil {
		return 0, err
	}
	if order.Type.IsBuy() {
		return balance.BaseAmount, nil
	}
	return balance.QuoteAmount, nil
}

func priceOf(
	ctx context.Context, order ports.TradeOrder, req Request,
) (uint64, error) {
	quotes, err := order.Client.PreviewTrade(
		ctx, order.Market.Market, order.Type, req.Amount, req.Asset, req.Asset,
	)
	if err != nil {
		return 0, err
	}
	if len(quotes) <= 0 {
		return 0, domain.ErrEmptyPreview
	}
	return quotes[0].Amount, nil
}

// settleAll calls fn for every order concurrently and waits for all of them
// to return. A failure never cancels the other calls.
func settleAll(
	ctx context.Context, orders []ports.TradeOrder, opts Options,
	fn func(context.Context, ports.TradeOrder) (uint64, error),
) []Result {
	results := make([]Result, len(orders))

	eg := &errgroup.Group{}
	for i := range orders {
		i := i
		eg.Go(func() error {
			callCtx, cancel := withTimeout(ctx, opts.CallTimeout)
			defer cancel()

			value, err := fn(callCtx, orders[i])
			results[i] = Result{orders[i], value, err}
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

func withTimeout(
	ctx context.Context, timeout time.Duration,
) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func handleFailures(results []Result, opts Options, call string) {
	for _, r := range results {
		if r.Ok() {
			continue
		}
		if opts.Observer != nil {
			opts.Observer.ProviderFailed(r.Order.Market.Provider, call)
		}
		if opts.ErrorHandler != nil {
			opts.ErrorHandler(r.Order, r.Err)
			continue
		}
		log.WithFields(log.Fields{
			"provider": r.Order.Market.Provider.Endpoint,
			"market":   r.Order.Market.Market.String(),
			"call":     call,
		}).WithError(r.Err).Debug("discovery: provider excluded from ranking")
	}
}

// bestResults returns the orders of the successful results with the
// highest value, in their original order.
func bestResults(results []Result) []ports.TradeOrder {
	var (
		max   uint64
		found bool
	)
	for _, r := range results {
		if r.Ok() && (!found || r.Value > max) {
			max, found = r.Value, true
		}
	}
	if !found {
		return nil
	}

	best := make([]ports.TradeOrder, 0)
	for _, r := range results {
		if r.Ok() && r.Value == max {
			best = append(best, r.Order)
		}
	}
	return best
}
