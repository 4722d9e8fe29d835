package ports

import (
	"context"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
)

// ProviderRepository persists the providers known by the trader.
type ProviderRepository interface {
	AddProvider(ctx context.Context, provider domain.TDEXProvider) error
	GetProvider(ctx context.Context, endpoint string) (*domain.TDEXProvider, error)
	ListProviders(ctx context.Context) ([]domain.TDEXProvider, error)
	DeleteProvider(ctx context.Context, endpoint string) error
	Close()
}
