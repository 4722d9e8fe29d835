package traderclient

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"github.com/tdex-network/tdex-trader/pkg/circuitbreaker"
	"github.com/tdex-network/tdex-trader/pkg/swap"
	"golang.org/x/net/proxy"
)

var (
	// ErrMissingTorProxy is returned when dialing an onion provider without
	// a configured Tor proxy.
	ErrMissingTorProxy = errors.New("tor proxy is required to reach onion providers")
)

type FactoryOpts struct {
	ProtocolVersion swap.Version
	// TorProxy is the host:port of the SOCKS5 proxy of a Tor daemon.
	TorProxy string
	// RPCTimeout bounds every single call, 0 means no bound.
	RPCTimeout time.Duration
	// UseGrpcWeb forces grpc-web for every provider.
	UseGrpcWeb bool
}

func (o FactoryOpts) validate() error {
	if o.ProtocolVersion == 0 {
		return nil
	}
	return o.ProtocolVersion.Validate()
}

// Factory opens TraderClients. Onion providers are dialed through the Tor
// proxy; those not serving TLS are reached with grpc-web over HTTP/1.1.
type Factory struct {
	opts FactoryOpts
}

func NewFactory(opts FactoryOpts) (*Factory, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.ProtocolVersion == 0 {
		opts.ProtocolVersion = swap.V2
	}
	return &Factory{opts}, nil
}

func (f *Factory) NewTraderClient(
	provider domain.TDEXProvider,
) (ports.TraderClient, error) {
	if err := provider.Validate(); err != nil {
		return nil, err
	}
	endpoint, _ := url.Parse(provider.Endpoint)

	var dialer proxy.ContextDialer
	useGrpcWeb := f.opts.UseGrpcWeb
	if provider.IsOnion() {
		if f.opts.TorProxy == "" {
			return nil, ErrMissingTorProxy
		}
		d, err := torDialer(f.opts.TorProxy)
		if err != nil {
			return nil, err
		}
		dialer = d
		useGrpcWeb = useGrpcWeb || endpoint.Scheme == "http"
	}

	var cc conn
	if useGrpcWeb {
		cc = newWebConn(endpoint, dialer)
	} else {
		gc, err := newGrpcConn(endpoint, dialer)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", provider.Endpoint, err)
		}
		cc = gc
	}

	return &client{
		provider: provider,
		version:  f.opts.ProtocolVersion,
		conn:     cc,
		service:  newTradeService(f.opts.ProtocolVersion, cc),
		cb:       circuitbreaker.NewCircuitBreaker(provider.Endpoint),
		timeout:  f.opts.RPCTimeout,
	}, nil
}

func torDialer(addr string) (proxy.ContextDialer, error) {
	d, err := proxy.SOCKS5("tcp", addr, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("invalid tor proxy %s: %w", addr, err)
	}
	ctxDialer, ok := d.(proxy.ContextDialer)
	if !ok {
		return nil, fmt.Errorf("tor proxy dialer does not support contexts")
	}
	return ctxDialer, nil
}
