package dbbadger

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"github.com/timshannon/badgerhold/v4"
)

const providersDir = "providers"

// providerDTO is the stored representation of a provider, keyed by
// endpoint.
type providerDTO struct {
	Name     string
	Endpoint string
}

type providerRepositoryImpl struct {
	store *badgerhold.Store
}

// NewProviderRepositoryImpl opens (or creates if not exists) the provider
// store under baseDbDir. An empty baseDbDir opens an in-memory store.
func NewProviderRepositoryImpl(
	baseDbDir string, logger badger.Logger,
) (ports.ProviderRepository, error) {
	dbDir := ""
	if baseDbDir != "" {
		dbDir = filepath.Join(baseDbDir, providersDir)
	}
	store, err := createDb(dbDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening providers db: %w", err)
	}
	return &providerRepositoryImpl{store}, nil
}

func (r *providerRepositoryImpl) AddProvider(
	_ context.Context, provider domain.TDEXProvider,
) error {
	return r.store.Upsert(provider.Endpoint, providerDTO{
		Name:     provider.Name,
		Endpoint: provider.Endpoint,
	})
}

func (r *providerRepositoryImpl) GetProvider(
	_ context.Context, endpoint string,
) (*domain.TDEXProvider, error) {
	var dto providerDTO
	if err := r.store.Get(endpoint, &dto); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, domain.ErrProviderNotFound
		}
		return nil, err
	}
	return dto.toDomain(), nil
}

func (r *providerRepositoryImpl) ListProviders(
	_ context.Context,
) ([]domain.TDEXProvider, error) {
	var dtos []providerDTO
	if err := r.store.Find(&dtos, nil); err != nil {
		return nil, err
	}

	providers := make([]domain.TDEXProvider, 0, len(dtos))
	for _, dto := range dtos {
		providers = append(providers, *dto.toDomain())
	}
	sort.Slice(providers, func(i, j int) bool {
		return providers[i].Endpoint < providers[j].Endpoint
	})
	return providers, nil
}

func (r *providerRepositoryImpl) DeleteProvider(
	_ context.Context, endpoint string,
) error {
	if err := r.store.Delete(endpoint, providerDTO{}); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return domain.ErrProviderNotFound
		}
		return err
	}
	return nil
}

func (r *providerRepositoryImpl) Close() {
	// nolint
	r.store.Close()
}

func (d providerDTO) toDomain() *domain.TDEXProvider {
	return &domain.TDEXProvider{
		Name:     d.Name,
		Endpoint: d.Endpoint,
	}
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger
	if dbDir == "" {
		opts = opts.WithInMemory(true)
	} else {
		opts.Compression = options.ZSTD
	}

	return badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}
