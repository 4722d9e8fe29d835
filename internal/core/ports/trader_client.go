package ports

import (
	"context"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/pkg/swap"
)

// TraderClient is the connection to a single liquidity provider. Swap
// messages cross this boundary already serialized with the wire schema of
// ProtocolVersion.
//
// Implementations must wrap with domain.ErrTransientNotFound the errors
// returned by CompleteTrade when the provider does not know about the swap
// yet, this is the only error that makes the completion to be retried.
type TraderClient interface {
	Provider() domain.TDEXProvider
	ProtocolVersion() swap.Version
	ListMarkets(ctx context.Context) ([]domain.TDEXMarket, error)
	GetMarketBalance(
		ctx context.Context, market domain.Market,
	) (*domain.Balance, error)
	PreviewTrade(
		ctx context.Context, market domain.Market, tradeType domain.TradeType,
		amount uint64, asset, feeAsset string,
	) ([]domain.PriceQuote, error)
	ProposeTrade(
		ctx context.Context, market domain.Market, tradeType domain.TradeType,
		swapRequest []byte, feeAsset string, feeAmount uint64,
	) (*ProposeTradeReply, error)
	CompleteTrade(
		ctx context.Context, swapComplete []byte,
	) (*CompleteTradeReply, error)
	Close()
}

// ProposeTradeReply contains either a serialized SwapAccept or SwapFail.
type ProposeTradeReply struct {
	SwapAccept []byte
	SwapFail   []byte
}

// CompleteTradeReply contains either the txid of the broadcasted swap or a
// serialized SwapFail.
type CompleteTradeReply struct {
	Txid     string
	SwapFail []byte
}

// TraderClientFactory opens a TraderClient for a provider.
type TraderClientFactory interface {
	NewTraderClient(provider domain.TDEXProvider) (TraderClient, error)
}

// TradeOrder is a candidate execution path for a trade: a market of a
// provider together with the client to reach it.
type TradeOrder struct {
	Type   domain.TradeType
	Market domain.TDEXMarket
	Client TraderClient
}

func (o TradeOrder) String() string {
	return o.Type.String() + " " + o.Market.String()
}
