package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
)

func TestProviderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProviderRepositoryImpl()
	defer repo.Close()

	a := domain.TDEXProvider{Name: "a", Endpoint: "https://provider-a.com"}
	b := domain.TDEXProvider{Name: "b", Endpoint: "http://provider-b.onion"}
	require.NoError(t, repo.AddProvider(ctx, b))
	require.NoError(t, repo.AddProvider(ctx, a))

	providers, err := repo.ListProviders(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.TDEXProvider{b, a}, providers)

	got, err := repo.GetProvider(ctx, a.Endpoint)
	require.NoError(t, err)
	require.Equal(t, a, *got)

	require.NoError(t, repo.DeleteProvider(ctx, a.Endpoint))
	require.ErrorIs(t, repo.DeleteProvider(ctx, a.Endpoint), domain.ErrProviderNotFound)

	_, err = repo.GetProvider(ctx, a.Endpoint)
	require.ErrorIs(t, err, domain.ErrProviderNotFound)
}
