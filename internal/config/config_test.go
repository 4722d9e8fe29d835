package config

import (
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/pkg/swap"
	"github.com/vulpemventures/go-elements/network"
)

func TestLoadConfig(t *testing.T) {
	datadir := t.TempDir()
	t.Setenv("TDEX_TRADER_DATADIR", datadir)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, datadir, cfg.Datadir)
		require.Equal(t, log.InfoLevel, cfg.LogLevel)
		require.Equal(t, network.Liquid.Name, cfg.Network.Name)
		require.Equal(t, explorerURLByNetwork[network.Liquid.Name], cfg.ExplorerURL)
		require.Equal(t, 15*time.Second, cfg.ExplorerRequestTimeout)
		require.Equal(t, WalletTypeSingleKey, cfg.WalletType)
		require.Equal(t, swap.V1, cfg.ProtocolVersion)
		require.Equal(t, 10, cfg.CompleteMaxAttempts)
		require.Equal(t, 500*time.Millisecond, cfg.CompleteRetryBackoff)
		require.Equal(t, 15*time.Second, cfg.RPCTimeout)
		require.False(t, cfg.UseGrpcWeb)
		require.DirExists(t, filepath.Join(datadir, DbLocation))
		require.Equal(t, filepath.Join(datadir, WalletFilename), cfg.WalletFile())
	})

	t.Run("ocean", func(t *testing.T) {
		t.Setenv("TDEX_TRADER_WALLET_TYPE", "ocean")
		t.Setenv("TDEX_TRADER_OCEAN_ACCOUNT", "trader")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, WalletTypeOcean, cfg.WalletType)
		require.Equal(t, swap.V2, cfg.ProtocolVersion)
		require.Equal(t, "localhost:18000", cfg.OceanAddr)
		require.Equal(t, "trader", cfg.OceanAccount)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("TDEX_TRADER_NETWORK", "regtest")
		t.Setenv("TDEX_TRADER_EXPLORER_URL", "http://explorer:3001")
		t.Setenv("TDEX_TRADER_PROTOCOL_VERSION", "1")
		t.Setenv("TDEX_TRADER_COMPLETE_RETRY_BACKOFF_MS", "100")
		t.Setenv("TDEX_TRADER_WALLET_PASSWORD", "secret")
		t.Setenv("TDEX_TRADER_METRICS_FILE", filepath.Join(datadir, "stats", "metrics"))

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, network.Regtest.Name, cfg.Network.Name)
		require.Equal(t, "http://explorer:3001", cfg.ExplorerURL)
		require.Equal(t, swap.V1, cfg.ProtocolVersion)
		require.Equal(t, 100*time.Millisecond, cfg.CompleteRetryBackoff)
		require.DirExists(t, filepath.Join(datadir, "stats"))

		m := cfg.Map()
		require.Equal(t, "********", m[WalletPasswordKey])
		require.Equal(t, "v1", m[ProtocolVersionKey])
	})
}

func TestFailingLoadConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "unknown network",
			env:  map[string]string{"TDEX_TRADER_NETWORK": "mainnet"},
		},
		{
			name: "unknown wallet type",
			env:  map[string]string{"TDEX_TRADER_WALLET_TYPE": "hd"},
		},
		{
			name: "unknown protocol version",
			env:  map[string]string{"TDEX_TRADER_PROTOCOL_VERSION": "3"},
		},
		{
			name: "ocean wallet with protocol v1",
			env: map[string]string{
				"TDEX_TRADER_WALLET_TYPE":      "ocean",
				"TDEX_TRADER_PROTOCOL_VERSION": "1",
			},
		},
		{
			name: "single-key wallet with protocol v2",
			env:  map[string]string{"TDEX_TRADER_PROTOCOL_VERSION": "2"},
		},
		{
			name: "zero complete attempts",
			env:  map[string]string{"TDEX_TRADER_COMPLETE_MAX_ATTEMPTS": "0"},
		},
		{
			name: "invalid log level",
			env:  map[string]string{"TDEX_TRADER_LOG_LEVEL": "9"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TDEX_TRADER_DATADIR", t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := LoadConfig()
			require.Error(t, err)
			require.Nil(t, cfg)
		})
	}
}
