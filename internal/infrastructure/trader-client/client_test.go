package traderclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"github.com/tdex-network/tdex-trader/pkg/swap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	lbtc   = strings.Repeat("a", 64)
	usdt   = strings.Repeat("b", 64)
	market = domain.Market{BaseAsset: lbtc, QuoteAsset: usdt}
	fee    = domain.MarketFee{BasisPoint: 25, FixedBaseFee: 100, FixedQuoteFee: 2000}
)

type testCase struct {
	name    string
	version swap.Version
	web     bool
}

var testCases = []testCase{
	{"v1 grpc", swap.V1, false},
	{"v2 grpc", swap.V2, false},
	{"v1 grpc-web", swap.V1, true},
	{"v2 grpc-web", swap.V2, true},
}

func newTestClient(
	t *testing.T, tc testCase, svc *fakeTradeService,
) ports.TraderClient {
	t.Helper()

	svc.version = tc.version
	endpoint := serve(t, svc, tc.web)

	factory, err := NewFactory(FactoryOpts{
		ProtocolVersion: tc.version,
		RPCTimeout:      5 * time.Second,
		UseGrpcWeb:      tc.web,
	})
	require.NoError(t, err)

	client, err := factory.NewTraderClient(domain.TDEXProvider{
		Name: "test", Endpoint: endpoint,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func TestListMarkets(t *testing.T) {
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeTradeService{
				markets: []domain.TDEXMarket{{Market: market, Fee: fee}},
			}
			client := newTestClient(t, tc, svc)

			markets, err := client.ListMarkets(context.Background())
			require.NoError(t, err)
			require.Len(t, markets, 1)
			require.Equal(t, market, markets[0].Market)
			require.Equal(t, fee, markets[0].Fee)
			require.Equal(t, client.Provider(), markets[0].Provider)
			require.Nil(t, markets[0].Balance)
		})
	}
}

func TestGetMarketBalance(t *testing.T) {
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeTradeService{
				balance: domain.Balance{
					BaseAmount: 100000000, QuoteAmount: 4000000000000,
				},
				fee: fee,
			}
			client := newTestClient(t, tc, svc)

			balance, err := client.GetMarketBalance(context.Background(), market)
			require.NoError(t, err)
			require.Equal(t, &domain.Balance{
				BaseAmount:  100000000,
				QuoteAmount: 4000000000000,
			}, balance)
		})
	}
}

func TestPreviewTrade(t *testing.T) {
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeTradeService{
				previews: []fakePreview{{
					basePrice: 0.000025,
					amount:    4000000000,
					asset:     usdt,
					feeAmount: 10000000,
					feeAsset:  usdt,
				}},
			}
			client := newTestClient(t, tc, svc)

			quotes, err := client.PreviewTrade(
				context.Background(), market, domain.TradeBuy, 100000, lbtc, usdt,
			)
			require.NoError(t, err)
			require.Len(t, quotes, 1)
			require.Equal(t, uint64(4000000000), quotes[0].Amount)
			require.Equal(t, usdt, quotes[0].Asset)
			require.Equal(t, "0.000025", quotes[0].BasePrice)

			req := svc.lastPreview
			require.NotNil(t, req)
			require.Equal(t, market, req.market)
			require.Equal(t, domain.TradeBuy, req.tradeType)
			require.Equal(t, uint64(100000), req.amount)
			require.Equal(t, lbtc, req.asset)

			if tc.version == swap.V1 {
				require.Zero(t, quotes[0].FeeAmount)
				require.Empty(t, quotes[0].FeeAsset)
				require.Empty(t, req.feeAsset)
				return
			}
			require.Equal(t, uint64(10000000), quotes[0].FeeAmount)
			require.Equal(t, usdt, quotes[0].FeeAsset)
			require.Equal(t, usdt, req.feeAsset)
		})
	}
}

func TestProposeTrade(t *testing.T) {
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			request := &swap.SwapRequest{
				Id:          "request",
				AmountP:     100000,
				AssetP:      lbtc,
				AmountR:     4000000000,
				AssetR:      usdt,
				Transaction: "cHNldP8=",
			}
			accept := &swap.SwapAccept{
				Id:          "accept",
				RequestId:   "request",
				Transaction: "cHNldP8=",
			}
			swapRequest, err := swap.Encode(tc.version, request)
			require.NoError(t, err)
			swapAccept, err := swap.Encode(tc.version, accept)
			require.NoError(t, err)

			svc := &fakeTradeService{
				proposeReply: &ports.ProposeTradeReply{SwapAccept: swapAccept},
			}
			client := newTestClient(t, tc, svc)

			reply, err := client.ProposeTrade(
				context.Background(), market, domain.TradeSell, swapRequest,
				lbtc, 1500,
			)
			require.NoError(t, err)
			require.Empty(t, reply.SwapFail)
			gotAccept, err := swap.DecodeAccept(tc.version, reply.SwapAccept)
			require.NoError(t, err)
			require.Equal(t, accept, gotAccept)

			req := svc.lastPropose
			require.NotNil(t, req)
			require.Equal(t, request, req.swapRequest)
			require.Equal(t, market, req.market)
			require.Equal(t, domain.TradeSell, req.tradeType)
			if tc.version == swap.V2 {
				require.Equal(t, lbtc, req.feeAsset)
				require.Equal(t, uint64(1500), req.feeAmount)
				return
			}
			require.Empty(t, req.feeAsset)
			require.Zero(t, req.feeAmount)
		})
	}
}

func TestProposeTradeInvalidRequest(t *testing.T) {
	svc := &fakeTradeService{}
	client := newTestClient(t, testCases[0], svc)

	_, err := client.ProposeTrade(
		context.Background(), market, domain.TradeSell, []byte{0x0a, 0x10},
		"", 0,
	)
	require.Error(t, err)
	require.Nil(t, svc.lastPropose)
}

func TestCompleteTrade(t *testing.T) {
	txid := strings.Repeat("c", 64)
	complete := &swap.SwapComplete{
		Id: "complete", AcceptId: "accept", Transaction: "cHNldP8=",
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			swapComplete, err := swap.Encode(tc.version, complete)
			require.NoError(t, err)

			svc := &fakeTradeService{
				completeFn: func() (*ports.CompleteTradeReply, error) {
					return &ports.CompleteTradeReply{Txid: txid}, nil
				},
			}
			client := newTestClient(t, tc, svc)

			reply, err := client.CompleteTrade(context.Background(), swapComplete)
			require.NoError(t, err)
			require.Equal(t, txid, reply.Txid)
			require.Empty(t, reply.SwapFail)
			require.Equal(t, complete, svc.lastComplete)
		})
	}
}

func TestFailingCompleteTrade(t *testing.T) {
	swapComplete, err := swap.Encode(swap.V1, &swap.SwapComplete{
		Id: "complete", AcceptId: "accept", Transaction: "cHNldP8=",
	})
	require.NoError(t, err)
	notFoundFail, err := swap.Encode(swap.V1, &swap.SwapFail{
		Id:             "fail",
		MessageId:      "complete",
		FailureCode:    uint32(swap.ErrCodeFailedToComplete),
		FailureMessage: "swap abcd not found",
	})
	require.NoError(t, err)
	rejectFail, err := swap.Encode(swap.V1, &swap.SwapFail{
		Id:             "fail",
		MessageId:      "complete",
		FailureCode:    uint32(swap.ErrCodeFailedToBroadcast),
		FailureMessage: "bad-txns-inputs-missingorspent",
	})
	require.NoError(t, err)

	cases := []struct {
		name          string
		completeFn    func() (*ports.CompleteTradeReply, error)
		wantTransient bool
		wantFail      []byte
	}{
		{
			name: "not found status",
			completeFn: func() (*ports.CompleteTradeReply, error) {
				return nil, status.Error(codes.NotFound, "unknown trade")
			},
			wantTransient: true,
		},
		{
			name: "unknown status about a missing swap",
			completeFn: func() (*ports.CompleteTradeReply, error) {
				return nil, status.Error(codes.Unknown, "swap not found")
			},
			wantTransient: true,
		},
		{
			name: "unknown status about an invalid swap",
			completeFn: func() (*ports.CompleteTradeReply, error) {
				return nil, status.Error(codes.Unknown, "invalid signature")
			},
		},
		{
			name: "internal status mentioning not found",
			completeFn: func() (*ports.CompleteTradeReply, error) {
				return nil, status.Error(codes.Internal, "utxo not found")
			},
		},
		{
			name: "not found swap fail",
			completeFn: func() (*ports.CompleteTradeReply, error) {
				return &ports.CompleteTradeReply{SwapFail: notFoundFail}, nil
			},
			wantTransient: true,
		},
		{
			name: "internal error",
			completeFn: func() (*ports.CompleteTradeReply, error) {
				return nil, status.Error(codes.Internal, "boom")
			},
		},
		{
			name: "swap fail",
			completeFn: func() (*ports.CompleteTradeReply, error) {
				return &ports.CompleteTradeReply{SwapFail: rejectFail}, nil
			},
			wantFail: rejectFail,
		},
	}

	for _, tc := range testCases {
		tc := tc
		for _, c := range cases {
			c := c
			t.Run(fmt.Sprintf("%s/%s", tc.name, c.name), func(t *testing.T) {
				svc := &fakeTradeService{completeFn: c.completeFn}
				client := newTestClient(t, tc, svc)

				reply, err := client.CompleteTrade(context.Background(), swapComplete)
				if c.wantFail != nil {
					require.NoError(t, err)
					require.Equal(t, c.wantFail, reply.SwapFail)
					return
				}
				require.Error(t, err)
				require.Nil(t, reply)
				require.Equal(
					t, c.wantTransient, errors.Is(err, domain.ErrTransientNotFound),
				)
			})
		}
	}
}

// A provider behind a proxy answering 404 Not Found is misconfigured, it
// doesn't mean the swap is unknown.
func TestCompleteTradeHTTPNotFound(t *testing.T) {
	httpSrv := httptest.NewServer(http.NotFoundHandler())
	defer httpSrv.Close()

	factory, err := NewFactory(FactoryOpts{
		ProtocolVersion: swap.V1,
		RPCTimeout:      5 * time.Second,
		UseGrpcWeb:      true,
	})
	require.NoError(t, err)
	client, err := factory.NewTraderClient(domain.TDEXProvider{
		Name: "test", Endpoint: httpSrv.URL,
	})
	require.NoError(t, err)
	defer client.Close()

	swapComplete, err := swap.Encode(swap.V1, &swap.SwapComplete{Id: "complete"})
	require.NoError(t, err)

	reply, err := client.CompleteTrade(context.Background(), swapComplete)
	require.Error(t, err)
	require.Nil(t, reply)
	require.False(t, errors.Is(err, domain.ErrTransientNotFound))
	require.Equal(t, codes.Unimplemented, status.Code(errors.Unwrap(err)))
}

func TestUnreachableProvider(t *testing.T) {
	factory, err := NewFactory(FactoryOpts{
		RPCTimeout: 500 * time.Millisecond,
		UseGrpcWeb: true,
	})
	require.NoError(t, err)

	client, err := factory.NewTraderClient(domain.TDEXProvider{
		Endpoint: "http://127.0.0.1:1",
	})
	require.NoError(t, err)
	defer client.Close()

	_, err = client.ListMarkets(context.Background())
	require.Error(t, err)
	require.Equal(t, codes.Unavailable, status.Code(errors.Unwrap(err)))
}

func TestNewTraderClient(t *testing.T) {
	_, err := NewFactory(FactoryOpts{ProtocolVersion: swap.Version(3)})
	require.ErrorIs(t, err, swap.ErrUnknownVersion)

	factory, err := NewFactory(FactoryOpts{})
	require.NoError(t, err)

	cases := []struct {
		name     string
		provider domain.TDEXProvider
		err      error
	}{
		{
			name:     "invalid endpoint",
			provider: domain.TDEXProvider{Endpoint: "localhost:9945"},
			err:      domain.ErrInvalidProviderEndpoint,
		},
		{
			name: "onion without tor proxy",
			provider: domain.TDEXProvider{
				Endpoint: "http://abcdefghijklmnop.onion:80",
			},
			err: ErrMissingTorProxy,
		},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			client, err := factory.NewTraderClient(c.provider)
			require.ErrorIs(t, err, c.err)
			require.Nil(t, client)
		})
	}

	client, err := factory.NewTraderClient(domain.TDEXProvider{
		Endpoint: "https://provider.tdex.network",
	})
	require.NoError(t, err)
	require.Equal(t, swap.V2, client.ProtocolVersion())
	client.Close()
}

func TestTorClient(t *testing.T) {
	factory, err := NewFactory(FactoryOpts{TorProxy: "127.0.0.1:9050"})
	require.NoError(t, err)

	torClient, err := factory.NewTraderClient(domain.TDEXProvider{
		Endpoint: "http://abcdefghijklmnop.onion",
	})
	require.NoError(t, err)
	defer torClient.Close()

	_, ok := torClient.(*client).conn.(*webConn)
	require.True(t, ok)
}
