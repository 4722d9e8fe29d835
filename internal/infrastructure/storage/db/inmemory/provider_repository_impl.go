package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
)

// ProviderRepositoryImpl keeps the providers in memory, identified by
// endpoint.
type ProviderRepositoryImpl struct {
	providers map[string]domain.TDEXProvider

	lock *sync.RWMutex
}

// NewProviderRepositoryImpl returns a new empty ProviderRepositoryImpl.
func NewProviderRepositoryImpl() ports.ProviderRepository {
	return &ProviderRepositoryImpl{
		providers: map[string]domain.TDEXProvider{},
		lock:      &sync.RWMutex{},
	}
}

// AddProvider inserts the provider or updates the name of an existing one.
func (r *ProviderRepositoryImpl) AddProvider(
	_ context.Context, provider domain.TDEXProvider,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.providers[provider.Endpoint] = provider
	return nil
}

func (r *ProviderRepositoryImpl) GetProvider(
	_ context.Context, endpoint string,
) (*domain.TDEXProvider, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	provider, ok := r.providers[endpoint]
	if !ok {
		return nil, domain.ErrProviderNotFound
	}
	return &provider, nil
}

// ListProviders returns the providers sorted by endpoint.
func (r *ProviderRepositoryImpl) ListProviders(
	_ context.Context,
) ([]domain.TDEXProvider, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	providers := make([]domain.TDEXProvider, 0, len(r.providers))
	for _, p := range r.providers {
		providers = append(providers, p)
	}
	sort.Slice(providers, func(i, j int) bool {
		return providers[i].Endpoint < providers[j].Endpoint
	})
	return providers, nil
}

func (r *ProviderRepositoryImpl) DeleteProvider(
	_ context.Context, endpoint string,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.providers[endpoint]; !ok {
		return domain.ErrProviderNotFound
	}
	delete(r.providers, endpoint)
	return nil
}

func (r *ProviderRepositoryImpl) Close() {}
