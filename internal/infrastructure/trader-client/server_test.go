package traderclient

import (
	"context"
	"net"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/improbable-eng/grpc-web/go/grpcweb"
	"github.com/stretchr/testify/require"
	tdexv1 "github.com/tdex-network/tdex-trader/api-spec/protobuf/gen/tdex/v1"
	tdexv2 "github.com/tdex-network/tdex-trader/api-spec/protobuf/gen/tdex/v2"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"github.com/tdex-network/tdex-trader/pkg/swap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
)

type fakePreview struct {
	basePrice float64
	amount    uint64
	asset     string
	feeAmount uint64
	feeAsset  string
}

type previewCall struct {
	market    domain.Market
	tradeType domain.TradeType
	amount    uint64
	asset     string
	feeAsset  string
}

type proposeCall struct {
	market      domain.Market
	tradeType   domain.TradeType
	swapRequest *swap.SwapRequest
	feeAsset    string
	feeAmount   uint64
}

// fakeTradeService is an in-process provider serving the trade service of
// its protocol version with canned replies. Swap messages are canned
// serialized, like they cross ports.TraderClient.
type fakeTradeService struct {
	version swap.Version

	lock         sync.Mutex
	markets      []domain.TDEXMarket
	balance      domain.Balance
	fee          domain.MarketFee
	previews     []fakePreview
	lastPreview  *previewCall
	lastPropose  *proposeCall
	lastComplete *swap.SwapComplete
	proposeReply *ports.ProposeTradeReply
	completeFn   func() (*ports.CompleteTradeReply, error)
}

func (s *fakeTradeService) recordPreview(c previewCall) []fakePreview {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.lastPreview = &c
	return s.previews
}

func (s *fakeTradeService) recordPropose(
	c proposeCall, request proto.Message,
) (*ports.ProposeTradeReply, error) {
	msg, err := swap.FromProto(request)
	if err != nil {
		return nil, err
	}
	c.swapRequest = msg.(*swap.SwapRequest)

	s.lock.Lock()
	defer s.lock.Unlock()
	s.lastPropose = &c
	return s.proposeReply, nil
}

func (s *fakeTradeService) recordComplete(
	complete proto.Message,
) (*ports.CompleteTradeReply, error) {
	msg, err := swap.FromProto(complete)
	if err != nil {
		return nil, err
	}

	s.lock.Lock()
	s.lastComplete = msg.(*swap.SwapComplete)
	s.lock.Unlock()
	return s.completeFn()
}

// unmarshalIfSet decodes buf into m, it returns nil for an empty buffer.
func unmarshalIfSet[T proto.Message](buf []byte, m T) (T, error) {
	var zero T
	if len(buf) <= 0 {
		return zero, nil
	}
	if err := proto.Unmarshal(buf, m); err != nil {
		return zero, err
	}
	return m, nil
}

type tradeServerV1 struct {
	tdexv1.UnimplementedTradeServiceServer
	svc *fakeTradeService
}

func (s tradeServerV1) ListMarkets(
	context.Context, *tdexv1.ListMarketsRequest,
) (*tdexv1.ListMarketsResponse, error) {
	s.svc.lock.Lock()
	defer s.svc.lock.Unlock()

	markets := make([]*tdexv1.MarketWithFee, 0, len(s.svc.markets))
	for _, m := range s.svc.markets {
		markets = append(markets, &tdexv1.MarketWithFee{
			Market: marketToV1(m.Market),
			Fee:    feeToV1(m.Fee),
		})
	}
	return &tdexv1.ListMarketsResponse{Markets: markets}, nil
}

func (s tradeServerV1) GetMarketBalance(
	context.Context, *tdexv1.GetMarketBalanceRequest,
) (*tdexv1.GetMarketBalanceResponse, error) {
	s.svc.lock.Lock()
	defer s.svc.lock.Unlock()

	return &tdexv1.GetMarketBalanceResponse{
		Balance: &tdexv1.BalanceWithFee{
			Balance: &tdexv1.Balance{
				BaseAmount:  s.svc.balance.BaseAmount,
				QuoteAmount: s.svc.balance.QuoteAmount,
			},
			Fee: feeToV1(s.svc.fee),
		},
	}, nil
}

func (s tradeServerV1) PreviewTrade(
	_ context.Context, req *tdexv1.PreviewTradeRequest,
) (*tdexv1.PreviewTradeResponse, error) {
	previews := s.svc.recordPreview(previewCall{
		market:    marketFromV1(req.GetMarket()),
		tradeType: domain.TradeType(req.GetType()),
		amount:    req.GetAmount(),
		asset:     req.GetAsset(),
	})

	list := make([]*tdexv1.Preview, 0, len(previews))
	for _, p := range previews {
		list = append(list, &tdexv1.Preview{
			Price:  &tdexv1.Price{BasePrice: p.basePrice},
			Amount: p.amount,
			Asset:  p.asset,
		})
	}
	return &tdexv1.PreviewTradeResponse{Previews: list}, nil
}

func (s tradeServerV1) ProposeTrade(
	_ context.Context, req *tdexv1.ProposeTradeRequest,
) (*tdexv1.ProposeTradeResponse, error) {
	reply, err := s.svc.recordPropose(proposeCall{
		market:    marketFromV1(req.GetMarket()),
		tradeType: domain.TradeType(req.GetType()),
	}, req.GetSwapRequest())
	if err != nil {
		return nil, err
	}

	accept, err := unmarshalIfSet(reply.SwapAccept, &tdexv1.SwapAccept{})
	if err != nil {
		return nil, err
	}
	fail, err := unmarshalIfSet(reply.SwapFail, &tdexv1.SwapFail{})
	if err != nil {
		return nil, err
	}
	return &tdexv1.ProposeTradeResponse{SwapAccept: accept, SwapFail: fail}, nil
}

func (s tradeServerV1) CompleteTrade(
	_ context.Context, req *tdexv1.CompleteTradeRequest,
) (*tdexv1.CompleteTradeResponse, error) {
	reply, err := s.svc.recordComplete(req.GetSwapComplete())
	if err != nil {
		return nil, err
	}

	fail, err := unmarshalIfSet(reply.SwapFail, &tdexv1.SwapFail{})
	if err != nil {
		return nil, err
	}
	return &tdexv1.CompleteTradeResponse{Txid: reply.Txid, SwapFail: fail}, nil
}

type tradeServerV2 struct {
	tdexv2.UnimplementedTradeServiceServer
	svc *fakeTradeService
}

func (s tradeServerV2) ListMarkets(
	context.Context, *tdexv2.ListMarketsRequest,
) (*tdexv2.ListMarketsResponse, error) {
	s.svc.lock.Lock()
	defer s.svc.lock.Unlock()

	markets := make([]*tdexv2.MarketWithFee, 0, len(s.svc.markets))
	for _, m := range s.svc.markets {
		markets = append(markets, &tdexv2.MarketWithFee{
			Market: marketToV2(m.Market),
			Fee:    feeToV2(m.Fee),
		})
	}
	return &tdexv2.ListMarketsResponse{Markets: markets}, nil
}

func (s tradeServerV2) GetMarketBalance(
	context.Context, *tdexv2.GetMarketBalanceRequest,
) (*tdexv2.GetMarketBalanceResponse, error) {
	s.svc.lock.Lock()
	defer s.svc.lock.Unlock()

	return &tdexv2.GetMarketBalanceResponse{
		Balance: &tdexv2.Balance{
			BaseAmount:  s.svc.balance.BaseAmount,
			QuoteAmount: s.svc.balance.QuoteAmount,
		},
		Fee: feeToV2(s.svc.fee),
	}, nil
}

func (s tradeServerV2) PreviewTrade(
	_ context.Context, req *tdexv2.PreviewTradeRequest,
) (*tdexv2.PreviewTradeResponse, error) {
	previews := s.svc.recordPreview(previewCall{
		market:    marketFromV2(req.GetMarket()),
		tradeType: domain.TradeType(req.GetType()),
		amount:    req.GetAmount(),
		asset:     req.GetAsset(),
		feeAsset:  req.GetFeeAsset(),
	})

	list := make([]*tdexv2.Preview, 0, len(previews))
	for _, p := range previews {
		list = append(list, &tdexv2.Preview{
			Price:     &tdexv2.Price{BasePrice: p.basePrice},
			Amount:    p.amount,
			Asset:     p.asset,
			FeeAmount: p.feeAmount,
			FeeAsset:  p.feeAsset,
		})
	}
	return &tdexv2.PreviewTradeResponse{Previews: list}, nil
}

func (s tradeServerV2) ProposeTrade(
	_ context.Context, req *tdexv2.ProposeTradeRequest,
) (*tdexv2.ProposeTradeResponse, error) {
	reply, err := s.svc.recordPropose(proposeCall{
		market:    marketFromV2(req.GetMarket()),
		tradeType: domain.TradeType(req.GetType()),
		feeAsset:  req.GetFeeAsset(),
		feeAmount: req.GetFeeAmount(),
	}, req.GetSwapRequest())
	if err != nil {
		return nil, err
	}

	accept, err := unmarshalIfSet(reply.SwapAccept, &tdexv2.SwapAccept{})
	if err != nil {
		return nil, err
	}
	fail, err := unmarshalIfSet(reply.SwapFail, &tdexv2.SwapFail{})
	if err != nil {
		return nil, err
	}
	return &tdexv2.ProposeTradeResponse{SwapAccept: accept, SwapFail: fail}, nil
}

func (s tradeServerV2) CompleteTrade(
	_ context.Context, req *tdexv2.CompleteTradeRequest,
) (*tdexv2.CompleteTradeResponse, error) {
	reply, err := s.svc.recordComplete(req.GetSwapComplete())
	if err != nil {
		return nil, err
	}

	fail, err := unmarshalIfSet(reply.SwapFail, &tdexv2.SwapFail{})
	if err != nil {
		return nil, err
	}
	return &tdexv2.CompleteTradeResponse{Txid: reply.Txid, SwapFail: fail}, nil
}

func marketFromV1(m *tdexv1.Market) domain.Market {
	return domain.Market{BaseAsset: m.GetBaseAsset(), QuoteAsset: m.GetQuoteAsset()}
}

func marketFromV2(m *tdexv2.Market) domain.Market {
	return domain.Market{BaseAsset: m.GetBaseAsset(), QuoteAsset: m.GetQuoteAsset()}
}

func feeToV1(fee domain.MarketFee) *tdexv1.Fee {
	return &tdexv1.Fee{
		BasisPoint: int64(fee.BasisPoint),
		Fixed: &tdexv1.Fixed{
			BaseFee:  int64(fee.FixedBaseFee),
			QuoteFee: int64(fee.FixedQuoteFee),
		},
	}
}

func feeToV2(fee domain.MarketFee) *tdexv2.Fee {
	return &tdexv2.Fee{
		PercentageFee: &tdexv2.MarketFee{
			BaseAsset:  int64(fee.BasisPoint),
			QuoteAsset: int64(fee.BasisPoint),
		},
		FixedFee: &tdexv2.MarketFee{
			BaseAsset:  int64(fee.FixedBaseFee),
			QuoteAsset: int64(fee.FixedQuoteFee),
		},
	}
}

// serve starts the service and returns the endpoint to reach it, either
// with native gRPC or with grpc-web over HTTP/1.1.
func serve(t *testing.T, svc *fakeTradeService, web bool) string {
	t.Helper()

	srv := grpc.NewServer()
	if svc.version == swap.V1 {
		tdexv1.RegisterTradeServiceServer(srv, tradeServerV1{svc: svc})
	} else {
		tdexv2.RegisterTradeServiceServer(srv, tradeServerV2{svc: svc})
	}

	if web {
		httpSrv := httptest.NewServer(grpcweb.WrapServer(srv))
		t.Cleanup(httpSrv.Close)
		return httpSrv.URL
	}

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		// nolint
		srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)
	return "http://" + lis.Addr().String()
}
