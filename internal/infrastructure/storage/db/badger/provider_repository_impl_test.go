package dbbadger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	dbbadger "github.com/tdex-network/tdex-trader/internal/infrastructure/storage/db/badger"
)

var ctx = context.Background()

func TestProviderRepository(t *testing.T) {
	for _, dir := range []string{"", t.TempDir()} {
		repo, err := dbbadger.NewProviderRepositoryImpl(dir, nil)
		require.NoError(t, err)

		providers, err := repo.ListProviders(ctx)
		require.NoError(t, err)
		require.Empty(t, providers)

		a := domain.TDEXProvider{Name: "a", Endpoint: "https://provider-a.com"}
		b := domain.TDEXProvider{Name: "b", Endpoint: "http://provider-b.onion"}
		require.NoError(t, repo.AddProvider(ctx, b))
		require.NoError(t, repo.AddProvider(ctx, a))

		renamed := a
		renamed.Name = "renamed"
		require.NoError(t, repo.AddProvider(ctx, renamed))

		got, err := repo.GetProvider(ctx, a.Endpoint)
		require.NoError(t, err)
		require.Equal(t, renamed, *got)

		providers, err = repo.ListProviders(ctx)
		require.NoError(t, err)
		require.Equal(t, []domain.TDEXProvider{b, renamed}, providers)

		require.NoError(t, repo.DeleteProvider(ctx, b.Endpoint))
		err = repo.DeleteProvider(ctx, b.Endpoint)
		require.ErrorIs(t, err, domain.ErrProviderNotFound)

		got, err = repo.GetProvider(ctx, b.Endpoint)
		require.ErrorIs(t, err, domain.ErrProviderNotFound)
		require.Nil(t, got)

		repo.Close()
	}
}

func TestProviderRepositoryPersistence(t *testing.T) {
	dir := t.TempDir()
	provider := domain.TDEXProvider{Name: "a", Endpoint: "https://provider-a.com"}

	repo, err := dbbadger.NewProviderRepositoryImpl(dir, nil)
	require.NoError(t, err)
	require.NoError(t, repo.AddProvider(ctx, provider))
	repo.Close()

	repo, err = dbbadger.NewProviderRepositoryImpl(dir, nil)
	require.NoError(t, err)
	defer repo.Close()

	providers, err := repo.ListProviders(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.TDEXProvider{provider}, providers)
}
