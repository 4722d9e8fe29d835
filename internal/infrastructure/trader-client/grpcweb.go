package traderclient

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/proxy"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

const (
	grpcWebContentType = "application/grpc-web+proto"

	frameHeaderLen      = 5
	trailerFlag    byte = 0x80
	compressedFlag byte = 0x01
)

var errMalformedFrame = errors.New("grpc-web: malformed response frame")

// webConn speaks grpc-web over HTTP/1.1. It's used for providers that
// can't be reached with HTTP/2, like onion services without TLS. Only unary
// calls are supported.
type webConn struct {
	baseURL    string
	httpClient *http.Client
}

func newWebConn(endpoint *url.URL, dialer proxy.ContextDialer) *webConn {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	if dialer != nil {
		tr.Proxy = nil
		tr.DialContext = dialer.DialContext
	}
	baseURL := fmt.Sprintf("%s://%s", endpoint.Scheme, endpoint.Host)
	return &webConn{baseURL, &http.Client{Transport: tr}}
}

func (c *webConn) Invoke(
	ctx context.Context, method string, args, reply interface{},
	_ ...grpc.CallOption,
) error {
	log.Debug(method)

	req, ok := args.(proto.Message)
	if !ok {
		return status.Errorf(codes.Internal, "grpc-web: %T is not a proto message", args)
	}
	out, ok := reply.(proto.Message)
	if !ok {
		return status.Errorf(codes.Internal, "grpc-web: %T is not a proto message", reply)
	}
	payload, err := proto.Marshal(req)
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+method,
		bytes.NewReader(encodeFrame(0, payload)),
	)
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}
	httpReq.Header.Set("Content-Type", grpcWebContentType)
	httpReq.Header.Set("Accept", grpcWebContentType)
	httpReq.Header.Set("X-Grpc-Web", "1")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return status.FromContextError(ctxErr).Err()
		}
		return status.Error(codes.Unavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return status.Errorf(
			codeFromHTTPStatus(resp.StatusCode),
			"grpc-web: unexpected http status %d", resp.StatusCode,
		)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxMessageSize+1))
	if err != nil {
		return status.Error(codes.Unavailable, err.Error())
	}
	if len(raw) > maxMessageSize {
		return status.Errorf(
			codes.ResourceExhausted,
			"grpc-web: response larger than %d bytes", maxMessageSize,
		)
	}
	message, trailers, err := decodeFrames(raw)
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}
	// Trailers-only responses carry the status in the http headers.
	if trailers.Get("Grpc-Status") == "" {
		trailers = resp.Header
	}
	if err := statusFromTrailers(trailers); err != nil {
		return err
	}
	if message == nil {
		return status.Error(codes.Internal, "grpc-web: missing response message")
	}
	if err := proto.Unmarshal(message, out); err != nil {
		return status.Error(codes.Internal, err.Error())
	}
	return nil
}

func (c *webConn) NewStream(
	context.Context, *grpc.StreamDesc, string, ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return nil, status.Error(codes.Unimplemented, "grpc-web: streams not supported")
}

func (c *webConn) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func encodeFrame(flag byte, payload []byte) []byte {
	frame := make([]byte, frameHeaderLen+len(payload))
	frame[0] = flag
	binary.BigEndian.PutUint32(frame[1:frameHeaderLen], uint32(len(payload)))
	copy(frame[frameHeaderLen:], payload)
	return frame
}

// decodeFrames splits a grpc-web response body into the (last) message and
// the trailers.
func decodeFrames(buf []byte) ([]byte, http.Header, error) {
	var message []byte
	trailers := http.Header{}

	for len(buf) > 0 {
		if len(buf) < frameHeaderLen {
			return nil, nil, errMalformedFrame
		}
		flag := buf[0]
		size := binary.BigEndian.Uint32(buf[1:frameHeaderLen])
		buf = buf[frameHeaderLen:]
		if uint64(len(buf)) < uint64(size) {
			return nil, nil, errMalformedFrame
		}
		data := buf[:size]
		buf = buf[size:]

		if flag&trailerFlag != 0 {
			parseTrailers(data, trailers)
			continue
		}
		if flag&compressedFlag != 0 {
			return nil, nil, fmt.Errorf("grpc-web: compressed frames not supported")
		}
		message = data
	}
	return message, trailers, nil
}

func parseTrailers(data []byte, trailers http.Header) {
	for _, line := range strings.Split(string(data), "\r\n") {
		kv := strings.SplitN(line, ":", 2)
		if len(kv) != 2 {
			continue
		}
		trailers.Add(strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1]))
	}
}

func statusFromTrailers(trailers http.Header) error {
	rawCode := trailers.Get("Grpc-Status")
	if rawCode == "" {
		return status.Error(codes.Internal, "grpc-web: missing grpc-status")
	}
	code, err := strconv.Atoi(rawCode)
	if err != nil {
		return status.Errorf(codes.Internal, "grpc-web: invalid grpc-status %q", rawCode)
	}
	if codes.Code(code) == codes.OK {
		return nil
	}
	msg := trailers.Get("Grpc-Message")
	if unescaped, err := url.PathUnescape(msg); err == nil {
		msg = unescaped
	}
	return status.Error(codes.Code(code), msg)
}

func codeFromHTTPStatus(httpStatus int) codes.Code {
	switch httpStatus {
	case http.StatusBadRequest:
		return codes.Internal
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.Unimplemented
	case http.StatusTooManyRequests, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return codes.Unavailable
	default:
		return codes.Unknown
	}
}
