package traderclient

import (
	"context"
	"crypto/tls"
	"net"
	"net/url"

	middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_logrus "github.com/grpc-ecosystem/go-grpc-middleware/logging/logrus"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/proxy"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// maxMessageSize bounds the replies read from a provider, over both
// transports.
const maxMessageSize = 4 << 20

// conn is a client connection to a provider, either a *grpc.ClientConn or a
// grpc-web one.
type conn interface {
	grpc.ClientConnInterface
	Close() error
}

func newGrpcConn(
	endpoint *url.URL, dialer proxy.ContextDialer,
) (*grpc.ClientConn, error) {
	opts := []grpc.DialOption{
		grpc.WithUnaryInterceptor(middleware.ChainUnaryClient(
			grpc_logrus.UnaryClientInterceptor(
				log.WithField("endpoint", endpoint.Host),
			),
		)),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(maxMessageSize)),
	}
	if endpoint.Scheme == "https" {
		opts = append(opts, grpc.WithTransportCredentials(
			credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12}),
		))
	} else {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}
	if dialer != nil {
		opts = append(opts, grpc.WithContextDialer(
			func(ctx context.Context, addr string) (net.Conn, error) {
				return dialer.DialContext(ctx, "tcp", addr)
			},
		))
	}

	return grpc.Dial(hostPort(endpoint), opts...)
}

func hostPort(endpoint *url.URL) string {
	if endpoint.Port() != "" {
		return endpoint.Host
	}
	port := "80"
	if endpoint.Scheme == "https" {
		port = "443"
	}
	return net.JoinHostPort(endpoint.Hostname(), port)
}
