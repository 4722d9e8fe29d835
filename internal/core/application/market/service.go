// Package market keeps the registry of the liquidity providers and crawls
// their markets to build the candidates of a trade.
package market

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"go.uber.org/ratelimit"
	"golang.org/x/sync/errgroup"
)

const defaultRequestsPerSecond = 10

var (
	ErrMissingRepository = errors.New("missing provider repository")
	ErrMissingFactory    = errors.New("missing trader client factory")
	ErrNoMarketsFound    = errors.New("no market found for the given pair")
)

type Service struct {
	repo    ports.ProviderRepository
	factory ports.TraderClientFactory
	limiter ratelimit.Limiter

	lock    *sync.Mutex
	clients map[string]ports.TraderClient
}

// NewService returns a market service calling providers at most
// requestsPerSecond times per second overall.
func NewService(
	repo ports.ProviderRepository, factory ports.TraderClientFactory,
	requestsPerSecond int,
) (*Service, error) {
	if repo == nil {
		return nil, ErrMissingRepository
	}
	if factory == nil {
		return nil, ErrMissingFactory
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = defaultRequestsPerSecond
	}
	return &Service{
		repo:    repo,
		factory: factory,
		limiter: ratelimit.New(requestsPerSecond),
		lock:    &sync.Mutex{},
		clients: make(map[string]ports.TraderClient),
	}, nil
}

func (s *Service) AddProvider(
	ctx context.Context, provider domain.TDEXProvider,
) error {
	if err := provider.Validate(); err != nil {
		return err
	}
	if provider.Name == "" {
		provider.Name = provider.Endpoint
	}
	return s.repo.AddProvider(ctx, provider)
}

func (s *Service) RemoveProvider(ctx context.Context, endpoint string) error {
	if err := s.repo.DeleteProvider(ctx, endpoint); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	if client, ok := s.clients[endpoint]; ok {
		client.Close()
		delete(s.clients, endpoint)
	}
	return nil
}

func (s *Service) ListProviders(ctx context.Context) ([]domain.TDEXProvider, error) {
	return s.repo.ListProviders(ctx)
}

// Client returns the client of the given provider, opening it on first
// use.
func (s *Service) Client(provider domain.TDEXProvider) (ports.TraderClient, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if client, ok := s.clients[provider.Endpoint]; ok {
		return client, nil
	}
	client, err := s.factory.NewTraderClient(provider)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to connect to provider %s: %w", provider.Endpoint, err,
		)
	}
	s.clients[provider.Endpoint] = client
	return client, nil
}

// ListMarkets returns the markets of all the known providers. Providers
// that can't be reached are skipped.
func (s *Service) ListMarkets(ctx context.Context) ([]domain.TDEXMarket, error) {
	providers, err := s.repo.ListProviders(ctx)
	if err != nil {
		return nil, err
	}

	marketsByProvider := make([][]domain.TDEXMarket, len(providers))
	eg := &errgroup.Group{}
	for i := range providers {
		i := i
		eg.Go(func() error {
			provider := providers[i]
			client, err := s.Client(provider)
			if err != nil {
				log.WithError(err).Warn("market crawler: skipping provider")
				return nil
			}

			s.limiter.Take()
			markets, err := client.ListMarkets(ctx)
			if err != nil {
				log.WithError(err).WithField("provider", provider.Endpoint).
					Warn("market crawler: failed to list markets")
				return nil
			}
			for j := range markets {
				markets[j].Provider = provider
			}
			marketsByProvider[i] = markets
			return nil
		})
	}
	_ = eg.Wait()

	markets := make([]domain.TDEXMarket, 0)
	for _, list := range marketsByProvider {
		markets = append(markets, list...)
	}
	return markets, nil
}

// RefreshBalances returns a copy of the given markets with the balances
// updated. Markets whose balance can't be fetched keep the previous one.
func (s *Service) RefreshBalances(
	ctx context.Context, markets []domain.TDEXMarket,
) []domain.TDEXMarket {
	refreshed := make([]domain.TDEXMarket, len(markets))
	copy(refreshed, markets)

	eg := &errgroup.Group{}
	for i := range refreshed {
		i := i
		eg.Go(func() error {
			mkt := refreshed[i]
			client, err := s.Client(mkt.Provider)
			if err != nil {
				return nil
			}

			s.limiter.Take()
			balance, err := client.GetMarketBalance(ctx, mkt.Market)
			if err != nil {
				log.WithError(err).WithFields(log.Fields{
					"provider": mkt.Provider.Endpoint,
					"market":   mkt.Market.String(),
				}).Debug("market crawler: failed to get balance")
				return nil
			}
			refreshed[i].Balance = balance
			return nil
		})
	}
	_ = eg.Wait()

	return refreshed
}

// TradeOrders returns a candidate order for every given market matching
// the pair.
func (s *Service) TradeOrders(
	markets []domain.TDEXMarket, market domain.Market, tradeType domain.TradeType,
) ([]ports.TradeOrder, error) {
	if err := market.Validate(); err != nil {
		return nil, err
	}
	if err := tradeType.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ports.TradeOrder, 0)
	for _, mkt := range markets {
		if mkt.Market != market {
			continue
		}
		client, err := s.Client(mkt.Provider)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ports.TradeOrder{
			Type:   tradeType,
			Market: mkt,
			Client: client,
		})
	}
	if len(orders) <= 0 {
		return nil, ErrNoMarketsFound
	}
	return orders, nil
}

// Close closes all the open clients and the repository.
func (s *Service) Close() {
	s.lock.Lock()
	defer s.lock.Unlock()

	for endpoint, client := range s.clients {
		client.Close()
		delete(s.clients, endpoint)
	}
	s.repo.Close()
}
