package traderclient

import (
	"context"

	tdexv2 "github.com/tdex-network/tdex-trader/api-spec/protobuf/gen/tdex/v2"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"google.golang.org/protobuf/proto"
)

// tradeServiceV2 speaks tdex.v2: the fee can be charged in either asset of
// the market and swap messages carry unblinded inputs.
type tradeServiceV2 struct {
	client tdexv2.TradeServiceClient
}

func (s tradeServiceV2) listMarkets(
	ctx context.Context,
) ([]domain.TDEXMarket, error) {
	reply, err := s.client.ListMarkets(ctx, &tdexv2.ListMarketsRequest{})
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
			Fee: feeFromV2(m.GetFee()),
		})
	}
	return markets, nil
}

func (s tradeServiceV2) getMarketBalance(
	ctx context.Context, market domain.Market,
) (*domain.Balance, error) {
	reply, err := s.client.GetMarketBalance(ctx, &tdexv2.GetMarketBalanceRequest{
		Market: marketToV2(market),
	})
	if err != nil {
		return nil, err
	}
	return &domain.Balance{
		BaseAmount:  reply.GetBalance().GetBaseAmount(),
		QuoteAmount: reply.GetBalance().GetQuoteAmount(),
	}, nil
}

func (s tradeServiceV2) previewTrade(
	ctx context.Context, market domain.Market, tradeType domain.TradeType,
	amount uint64, asset, feeAsset string,
) ([]domain.PriceQuote, error) {
	reply, err := s.client.PreviewTrade(ctx, &tdexv2.PreviewTradeRequest{
		Market:   marketToV2(market),
		Type:     tdexv2.TradeType(tradeType),
		Amount:   amount,
		Asset:    asset,
		FeeAsset: feeAsset,
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]domain.PriceQuote, 0, len(reply.GetPreviews()))
	for _, p := range reply.GetPreviews() {
		quotes = append(quotes, domain.PriceQuote{
			Amount:    p.GetAmount(),
			Asset:     p.GetAsset(),
			FeeAmount: p.GetFeeAmount(),
			FeeAsset:  p.GetFeeAsset(),
			BasePrice: formatPrice(p.GetPrice().GetBasePrice()),
		})
	}
	return quotes, nil
}

func (s tradeServiceV2) proposeTrade(
	ctx context.Context, market domain.Market, tradeType domain.TradeType,
	swapRequest []byte, feeAsset string, feeAmount uint64,
) (*ports.ProposeTradeReply, error) {
	request := &tdexv2.SwapRequest{}
	if err := proto.Unmarshal(swapRequest, request); err != nil {
		return nil, err
	}

	reply, err := s.client.ProposeTrade(ctx, &tdexv2.ProposeTradeRequest{
		Market:      marketToV2(market),
		Type:        tdexv2.TradeType(tradeType),
		SwapRequest: request,
		FeeAmount:   feeAmount,
		FeeAsset:    feeAsset,
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

func (s tradeServiceV2) completeTrade(
	ctx context.Context, swapComplete []byte,
) (*ports.CompleteTradeReply, error) {
	complete := &tdexv2.SwapComplete{}
	if err := proto.Unmarshal(swapComplete, complete); err != nil {
		return nil, err
	}

	reply, err := s.client.CompleteTrade(ctx, &tdexv2.CompleteTradeRequest{
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

func marketToV2(market domain.Market) *tdexv2.Market {
	return &tdexv2.Market{
		BaseAsset:  market.BaseAsset,
		QuoteAsset: market.QuoteAsset,
	}
}

// feeFromV2 keeps the percentage fee of the base asset, v2 providers charge
// the same basis points on both sides of a market.
func feeFromV2(fee *tdexv2.Fee) domain.MarketFee {
	return domain.MarketFee{
		BasisPoint:    nonNegative(fee.GetPercentageFee().GetBaseAsset()),
		FixedBaseFee:  nonNegative(fee.GetFixedFee().GetBaseAsset()),
		FixedQuoteFee: nonNegative(fee.GetFixedFee().GetQuoteAsset()),
	}
}
