package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-trader/internal/config"
	"github.com/tdex-network/tdex-trader/internal/core/application/market"
	"github.com/tdex-network/tdex-trader/internal/core/application/trade"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"github.com/tdex-network/tdex-trader/internal/infrastructure/metrics"
	oceanwallet "github.com/tdex-network/tdex-trader/internal/infrastructure/ocean-wallet"
	singlekeywallet "github.com/tdex-network/tdex-trader/internal/infrastructure/singlekey-wallet"
	dbbadger "github.com/tdex-network/tdex-trader/internal/infrastructure/storage/db/badger"
	traderclient "github.com/tdex-network/tdex-trader/internal/infrastructure/trader-client"
	"github.com/tdex-network/tdex-trader/pkg/explorer"
	"github.com/tdex-network/tdex-trader/pkg/explorer/esplora"
	"github.com/tdex-network/tdex-trader/pkg/stats"
	"github.com/tdex-network/tdex-trader/pkg/wallet"
	"github.com/urfave/cli/v2"
)

const marketRequestsPerSecond = 10

var errWalletNotFound = errors.New(
	"wallet not found, create one with `wallet init`",
)

// walletService is what the trader needs from either wallet backend.
type walletService interface {
	ports.Wallet
	ports.Signer
	BroadcastTransaction(ctx context.Context, txHex string) (string, error)
}

// trader holds the services shared by the trading commands.
type trader struct {
	markets  *market.Service
	registry *prometheus.Registry
	observer *metrics.Observer

	wallet  walletService
	blinder ports.Blinder

	closers []func()
}

func newTrader(ctx *cli.Context, withWallet bool) (*trader, error) {
	t := &trader{registry: prometheus.NewRegistry()}

	observer, err := metrics.NewObserver(t.registry)
	if err != nil {
		return nil, err
	}
	t.observer = observer

	repo, err := dbbadger.NewProviderRepositoryImpl(cfg.DbDir(), nil)
	if err != nil {
		return nil, err
	}
	factory, err := traderclient.NewFactory(traderclient.FactoryOpts{
		ProtocolVersion: cfg.ProtocolVersion,
		TorProxy:        cfg.TorProxy,
		RPCTimeout:      cfg.RPCTimeout,
		UseGrpcWeb:      cfg.UseGrpcWeb,
	})
	if err != nil {
		repo.Close()
		return nil, err
	}
	markets, err := market.NewService(repo, factory, marketRequestsPerSecond)
	if err != nil {
		repo.Close()
		return nil, err
	}
	t.markets = markets
	t.closers = append(t.closers, markets.Close)

	if withWallet {
		if err := t.openWallet(ctx); err != nil {
			t.close()
			return nil, err
		}
	}

	return t, nil
}

func (t *trader) openWallet(ctx *cli.Context) error {
	if cfg.WalletType == config.WalletTypeOcean {
		svc, err := oceanwallet.NewService(cfg.OceanAddr, cfg.OceanAccount)
		if err != nil {
			return fmt.Errorf("failed to connect to ocean wallet: %w", err)
		}
		t.wallet = svc
		t.blinder = svc
		t.closers = append(t.closers, svc.Close)
		return nil
	}

	svc, err := openSingleKeyWallet(ctx)
	if err != nil {
		return err
	}
	t.wallet = svc
	return nil
}

func (t *trader) executor(client ports.TraderClient) (*trade.Executor, error) {
	retry := trade.DefaultRetryPolicy()
	retry.MaxAttempts = cfg.CompleteMaxAttempts
	retry.Backoff = cfg.CompleteRetryBackoff

	return trade.NewExecutor(trade.Config{
		Wallet:   t.wallet,
		Signer:   t.wallet,
		Blinder:  t.blinder,
		Retry:    retry,
		Observer: t.observer,
	}, client)
}

// close releases all the open connections and dumps the metrics collected
// during the command, if enabled.
func (t *trader) close() {
	for i := len(t.closers) - 1; i >= 0; i-- {
		t.closers[i]()
	}
	if cfg.MetricsFile == "" {
		return
	}
	if err := stats.DumpMetrics(t.registry, cfg.MetricsFile); err != nil {
		log.WithError(err).Warn("failed to dump metrics")
	}
}

func openSingleKeyWallet(ctx *cli.Context) (*singlekeywallet.Service, error) {
	w, err := loadWallet(ctx)
	if err != nil {
		return nil, err
	}
	explorerSvc, err := newExplorer()
	if err != nil {
		return nil, err
	}
	return singlekeywallet.NewService(w, explorerSvc, cfg.Network)
}

func newExplorer() (explorer.Service, error) {
	explorerSvc, err := esplora.NewService(
		cfg.ExplorerURL, cfg.ExplorerRequestTimeout,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to explorer: %w", err)
	}
	return explorerSvc, nil
}

func loadWallet(ctx *cli.Context) (*wallet.Wallet, error) {
	cypherText, err := os.ReadFile(cfg.WalletFile())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errWalletNotFound
		}
		return nil, err
	}
	return wallet.Decrypt(string(cypherText), walletPassword(ctx))
}

func walletPassword(ctx *cli.Context) string {
	if password := ctx.String(passwordFlag.Name); password != "" {
		return password
	}
	return cfg.WalletPassword
}
