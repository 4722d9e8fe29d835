package traderclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	tdexv2 "github.com/tdex-network/tdex-trader/api-spec/protobuf/gen/tdex/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestDecodeFrames(t *testing.T) {
	message := []byte{0x0a, 0x02, 0x68, 0x69}
	trailers := []byte("grpc-status: 0\r\ngrpc-message: \r\n")

	body := append(encodeFrame(0, message), encodeFrame(trailerFlag, trailers)...)
	gotMessage, gotTrailers, err := decodeFrames(body)
	require.NoError(t, err)
	require.Equal(t, message, gotMessage)
	require.Equal(t, "0", gotTrailers.Get("Grpc-Status"))
	require.NoError(t, statusFromTrailers(gotTrailers))

	t.Run("trailers only", func(t *testing.T) {
		gotMessage, gotTrailers, err := decodeFrames(
			encodeFrame(trailerFlag, []byte("grpc-status: 5\r\ngrpc-message: swap%20not%20found\r\n")),
		)
		require.NoError(t, err)
		require.Nil(t, gotMessage)

		err = statusFromTrailers(gotTrailers)
		require.Equal(t, codes.NotFound, status.Code(err))
		require.Equal(t, "swap not found", status.Convert(err).Message())
	})

	t.Run("malformed", func(t *testing.T) {
		cases := map[string][]byte{
			"short header":    {0x00, 0x00, 0x00},
			"short payload":   {0x00, 0x00, 0x00, 0x00, 0x05, 0x01},
			"compressed flag": encodeFrame(compressedFlag, message),
		}
		for name, body := range cases {
			_, _, err := decodeFrames(body)
			require.Error(t, err, name)
		}
	})
}

func TestStatusFromTrailers(t *testing.T) {
	cases := []struct {
		name     string
		trailers http.Header
		code     codes.Code
	}{
		{"ok", http.Header{"Grpc-Status": {"0"}}, codes.OK},
		{"missing status", http.Header{}, codes.Internal},
		{"invalid status", http.Header{"Grpc-Status": {"abc"}}, codes.Internal},
		{"unavailable", http.Header{"Grpc-Status": {"14"}}, codes.Unavailable},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			err := statusFromTrailers(c.trailers)
			require.Equal(t, c.code, status.Code(err))
		})
	}
}

func TestWebConnOversizedResponse(t *testing.T) {
	httpSrv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", grpcWebContentType)
			// nolint
			w.Write(encodeFrame(0, make([]byte, maxMessageSize)))
		},
	))
	defer httpSrv.Close()

	endpoint, err := url.Parse(httpSrv.URL)
	require.NoError(t, err)
	conn := newWebConn(endpoint, nil)
	defer conn.Close()

	err = conn.Invoke(
		context.Background(), "/tdex.v2.TradeService/ListMarkets",
		&tdexv2.ListMarketsRequest{}, &tdexv2.ListMarketsResponse{},
	)
	require.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestWebConnHTTPStatus(t *testing.T) {
	httpSrv := httptest.NewServer(http.NotFoundHandler())
	defer httpSrv.Close()

	endpoint, err := url.Parse(httpSrv.URL)
	require.NoError(t, err)
	conn := newWebConn(endpoint, nil)
	defer conn.Close()

	err = conn.Invoke(
		context.Background(), "/tdex.v2.TradeService/CompleteTrade",
		&tdexv2.CompleteTradeRequest{}, &tdexv2.CompleteTradeResponse{},
	)
	require.Equal(t, codes.Unimplemented, status.Code(err))
	require.NotContains(t, status.Convert(err).Message(), "Not Found")
	require.False(t, isNotFound(err))

	_, err = conn.NewStream(context.Background(), nil, "/tdex.v2.TransportService/Stream")
	require.Equal(t, codes.Unimplemented, status.Code(err))
}
