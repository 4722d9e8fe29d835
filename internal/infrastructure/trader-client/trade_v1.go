package traderclient

import (
	"context"

	tdexv1 "github.com/tdex-network/tdex-trader/api-spec/protobuf/gen/tdex/v1"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"google.golang.org/protobuf/proto"
)

// tradeServiceV1 speaks tdex.v1: fees are included in the previewed amounts
// and swap messages carry blinding keys.
type tradeServiceV1 struct {
	client tdexv1.TradeServiceClient
}

func (s tradeServiceV1) listMarkets(
	ctx context.Context,
) ([]domain.TDEXMarket, error) {
	reply, err := s.client.ListMarkets(ctx, &tdexv1.ListMarketsRequest{})
	if err != nil {
		return nil, err
	}

	markets := make([]domain.TDEXMarket, 0, len(reply.GetMarkets()))
	for _, m := range reply.GetMarkets() {
		markets = append(markets, domain.TDEXMarket{
			Market: domain.Market{
				BaseAsset:  m.GetMarket().GetBaseAsset(),
				QuoteAsset: m.GetMarket().GetQuoteAsset(),
			},
			Fee: feeFromV1(m.GetFee()),
		})
	}
	return markets, nil
}

func (s tradeServiceV1) getMarketBalance(
	ctx context.Context, market domain.Market,
) (*domain.Balance, error) {
	reply, err := s.client.GetMarketBalance(ctx, &tdexv1.GetMarketBalanceRequest{
		Market: marketToV1(market),
	})
	if err != nil {
		return nil, err
	}
	balance := reply.GetBalance().GetBalance()
	return &domain.Balance{
		BaseAmount:  balance.GetBaseAmount(),
		QuoteAmount: balance.GetQuoteAmount(),
	}, nil
}

func (s tradeServiceV1) previewTrade(
	ctx context.Context, market domain.Market, tradeType domain.TradeType,
	amount uint64, asset, _ string,
) ([]domain.PriceQuote, error) {
	reply, err := s.client.PreviewTrade(ctx, &tdexv1.PreviewTradeRequest{
		Market: marketToV1(market),
		Type:   tdexv1.TradeType(tradeType),
		Amount: amount,
		Asset:  asset,
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]domain.PriceQuote, 0, len(reply.GetPreviews()))
	for _, p := range reply.GetPreviews() {
		quotes = append(quotes, domain.PriceQuote{
			Amount:    p.GetAmount(),
			Asset:     p.GetAsset(),
			BasePrice: formatPrice(p.GetPrice().GetBasePrice()),
		})
	}
	return quotes, nil
}

func (s tradeServiceV1) proposeTrade(
	ctx context.Context, market domain.Market, tradeType domain.TradeType,
	swapRequest []byte, _ string, _ uint64,
) (*ports.ProposeTradeReply, error) {
	request := &tdexv1.SwapRequest{}
	if err := proto.Unmarshal(swapRequest, request); err != nil {
		return nil, err
	}

	reply, err := s.client.ProposeTrade(ctx, &tdexv1.ProposeTradeRequest{
		Market:      marketToV1(market),
		Type:        tdexv1.TradeType(tradeType),
		SwapRequest: request,
	})
	if err != nil {
		return nil, err
	}

	accept, err := marshalIfSet(reply.GetSwapAccept())
	if err != nil {
		return nil, err
	}
	fail, err := marshalIfSet(reply.GetSwapFail())
	if err != nil {
		return nil, err
	}
	return &ports.ProposeTradeReply{SwapAccept: accept, SwapFail: fail}, nil
}

func (s tradeServiceV1) completeTrade(
	ctx context.Context, swapComplete []byte,
) (*ports.CompleteTradeReply, error) {
	complete := &tdexv1.SwapComplete{}
	if err := proto.Unmarshal(swapComplete, complete); err != nil {
		return nil, err
	}

	reply, err := s.client.CompleteTrade(ctx, &tdexv1.CompleteTradeRequest{
		SwapComplete: complete,
	})
	if err != nil {
		return nil, err
	}

	fail, err := marshalIfSet(reply.GetSwapFail())
	if err != nil {
		return nil, err
	}
	return &ports.CompleteTradeReply{Txid: reply.GetTxid(), SwapFail: fail}, nil
}

func marketToV1(market domain.Market) *tdexv1.Market {
	return &tdexv1.Market{
		BaseAsset:  market.BaseAsset,
		QuoteAsset: market.QuoteAsset,
	}
}

func feeFromV1(fee *tdexv1.Fee) domain.MarketFee {
	return domain.MarketFee{
		BasisPoint:    nonNegative(fee.GetBasisPoint()),
		FixedBaseFee:  nonNegative(fee.GetFixed().GetBaseFee()),
		FixedQuoteFee: nonNegative(fee.GetFixed().GetQuoteFee()),
	}
}
