// Package esplora implements explorer.Service on top of the REST API of an
// esplora instance (Blockstream's blockstream.info/liquid/api, or the one
// shipped by Nigiri for regtest).
package esplora

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"github.com/tdex-network/tdex-trader/pkg/circuitbreaker"
	"github.com/tdex-network/tdex-trader/pkg/explorer"
	"go.uber.org/ratelimit"
)

const (
	// DefaultRequestTimeout is used if none is given to NewService.
	DefaultRequestTimeout = 15 * time.Second
	// DefaultRateLimit is the max number of requests per second sent to the
	// explorer.
	DefaultRateLimit = 20
	// MaxConcurrentRequests caps the number of requests in flight while
	// fetching the details of many utxos.
	MaxConcurrentRequests = 10
)

type esplora struct {
	apiURL  string
	client  *http.Client
	cb      *gobreaker.CircuitBreaker
	limiter ratelimit.Limiter
}

// NewService returns a new esplora service as an explorer.Service interface.
// A zero requestTimeout is replaced by DefaultRequestTimeout.
func NewService(
	apiURL string, requestTimeout time.Duration,
) (explorer.Service, error) {
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	service := &esplora{
		apiURL:  strings.TrimSuffix(apiURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
		cb:      circuitbreaker.NewCircuitBreaker("esplora"),
		limiter: ratelimit.New(DefaultRateLimit),
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err := service.healthCheck(ctx); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}

	return service, nil
}

func (e *esplora) healthCheck(ctx context.Context) error {
	_, err := e.get(ctx, "/blocks/tip/height")
	return err
}

func (e *esplora) get(ctx context.Context, path string) (string, error) {
	return e.do(ctx, http.MethodGet, path, "")
}

func (e *esplora) post(ctx context.Context, path, body string) (string, error) {
	return e.do(ctx, http.MethodPost, path, body)
}

// do sends the request through the circuit breaker. Responses with status
// 404 are returned as explorer.ErrNotFound and do not count as failures of
// the explorer.
func (e *esplora) do(ctx context.Context, method, path, body string) (string, error) {
	var notFound error
	resp, err := e.cb.Execute(func() (interface{}, error) {
		e.limiter.Take()

		status, resp, err := e.request(ctx, method, path, body)
		if err != nil {
			return nil, err
		}
		if status == http.StatusNotFound {
			notFound = fmt.Errorf("%w: %s", explorer.ErrNotFound, path)
			return "", nil
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("%s %s: %d %s", method, path, status, resp)
		}
		return resp, nil
	})
	if err != nil {
		return "", err
	}
	if notFound != nil {
		return "", notFound
	}
	return resp.(string), nil
}

func (e *esplora) request(
	ctx context.Context, method, path, body string,
) (int, string, error) {
	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, e.apiURL+path, reqBody)
	if err != nil {
		return 0, "", err
	}
	if body != "" {
		req.Header.Set("Content-Type", "text/plain")
	}

	res, err := e.client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer res.Body.Close()

	buf, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, "", err
	}
	return res.StatusCode, strings.TrimSpace(string(buf)), nil
}
