// Package traderclient implements ports.TraderClient for the TDEX trade
// service, over gRPC or over grpc-web.
package traderclient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	tdexv1 "github.com/tdex-network/tdex-trader/api-spec/protobuf/gen/tdex/v1"
	tdexv2 "github.com/tdex-network/tdex-trader/api-spec/protobuf/gen/tdex/v2"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"github.com/tdex-network/tdex-trader/pkg/swap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

// tradeService maps the generated client of a protocol version to domain
// types. Swap messages cross it serialized.
type tradeService interface {
	listMarkets(ctx context.Context) ([]domain.TDEXMarket, error)
	getMarketBalance(
		ctx context.Context, market domain.Market,
	) (*domain.Balance, error)
	previewTrade(
		ctx context.Context, market domain.Market, tradeType domain.TradeType,
		amount uint64, asset, feeAsset string,
	) ([]domain.PriceQuote, error)
	proposeTrade(
		ctx context.Context, market domain.Market, tradeType domain.TradeType,
		swapRequest []byte, feeAsset string, feeAmount uint64,
	) (*ports.ProposeTradeReply, error)
	completeTrade(
		ctx context.Context, swapComplete []byte,
	) (*ports.CompleteTradeReply, error)
}

func newTradeService(v swap.Version, cc conn) tradeService {
	if v == swap.V1 {
		return tradeServiceV1{tdexv1.NewTradeServiceClient(cc)}
	}
	return tradeServiceV2{tdexv2.NewTradeServiceClient(cc)}
}

type client struct {
	provider domain.TDEXProvider
	version  swap.Version
	conn     conn
	service  tradeService
	cb       *gobreaker.CircuitBreaker
	timeout  time.Duration
}

func (c *client) Provider() domain.TDEXProvider {
	return c.provider
}

func (c *client) ProtocolVersion() swap.Version {
	return c.version
}

func (c *client) ListMarkets(ctx context.Context) ([]domain.TDEXMarket, error) {
	var markets []domain.TDEXMarket
	if err := c.call(ctx, "ListMarkets", func(ctx context.Context) (err error) {
		markets, err = c.service.listMarkets(ctx)
		return
	}); err != nil {
		return nil, err
	}

	for i := range markets {
		markets[i].Provider = c.provider
	}
	return markets, nil
}

func (c *client) GetMarketBalance(
	ctx context.Context, market domain.Market,
) (*domain.Balance, error) {
	var balance *domain.Balance
	if err := c.call(ctx, "GetMarketBalance", func(ctx context.Context) (err error) {
		balance, err = c.service.getMarketBalance(ctx, market)
		return
	}); err != nil {
		return nil, err
	}
	return balance, nil
}

func (c *client) PreviewTrade(
	ctx context.Context, market domain.Market, tradeType domain.TradeType,
	amount uint64, asset, feeAsset string,
) ([]domain.PriceQuote, error) {
	var quotes []domain.PriceQuote
	if err := c.call(ctx, "PreviewTrade", func(ctx context.Context) (err error) {
		quotes, err = c.service.previewTrade(
			ctx, market, tradeType, amount, asset, feeAsset,
		)
		return
	}); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (c *client) ProposeTrade(
	ctx context.Context, market domain.Market, tradeType domain.TradeType,
	swapRequest []byte, feeAsset string, feeAmount uint64,
) (*ports.ProposeTradeReply, error) {
	var reply *ports.ProposeTradeReply
	if err := c.call(ctx, "ProposeTrade", func(ctx context.Context) (err error) {
		reply, err = c.service.proposeTrade(
			ctx, market, tradeType, swapRequest, feeAsset, feeAmount,
		)
		return
	}); err != nil {
		return nil, err
	}
	return reply, nil
}

// CompleteTrade wraps with domain.ErrTransientNotFound both NotFound errors
// and SwapFail replies about an unknown swap.
func (c *client) CompleteTrade(
	ctx context.Context, swapComplete []byte,
) (*ports.CompleteTradeReply, error) {
	var reply *ports.CompleteTradeReply
	if err := c.call(ctx, "CompleteTrade", func(ctx context.Context) (err error) {
		reply, err = c.service.completeTrade(ctx, swapComplete)
		return
	}); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTransientNotFound, err)
		}
		return nil, err
	}

	if len(reply.SwapFail) > 0 {
		fail, err := swap.DecodeFail(reply.SwapFail)
		if err != nil {
			return nil, err
		}
		if isNotFoundMessage(fail.FailureMessage) {
			return nil, fmt.Errorf(
				"%w: %s", domain.ErrTransientNotFound, fail.FailureMessage,
			)
		}
	}
	return reply, nil
}

func (c *client) Close() {
	// nolint
	c.conn.Close()
}

// call runs the given rpc through the circuit breaker. A NotFound reply is a
// healthy round trip and does not count as a breaker failure.
func (c *client) call(
	ctx context.Context, method string, rpc func(context.Context) error,
) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var callErr error
	if _, err := c.cb.Execute(func() (interface{}, error) {
		callErr = rpc(ctx)
		if isNotFound(callErr) {
			return nil, nil
		}
		return nil, callErr
	}); err != nil {
		return fmt.Errorf("%s %s: %w", c.provider.Endpoint, method, err)
	}
	if callErr != nil {
		return fmt.Errorf("%s %s: %w", c.provider.Endpoint, method, callErr)
	}
	return nil
}

// isNotFound tells whether the provider replied it does not know the swap,
// either with a NotFound status or with an Unknown one, used by providers
// that forward their internal error as is. Transport failures are never
// classified as not found, whatever their message.
func isNotFound(err error) bool {
	var grpcErr interface{ GRPCStatus() *status.Status }
	if err == nil || !errors.As(err, &grpcErr) {
		return false
	}

	st := grpcErr.GRPCStatus()
	switch st.Code() {
	case codes.NotFound:
		return true
	case codes.Unknown:
		return isNotFoundMessage(st.Message())
	default:
		return false
	}
}

func isNotFoundMessage(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "not found")
}

func formatPrice(price float64) string {
	if price <= 0 {
		return ""
	}
	return decimal.NewFromFloat(price).String()
}

func nonNegative(v int64) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}

func marshalIfSet(m proto.Message) ([]byte, error) {
	if m == nil || !m.ProtoReflect().IsValid() {
		return nil, nil
	}
	return proto.Marshal(m)
}
