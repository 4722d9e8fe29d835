// Package singlekeywallet implements the wallet ports with a single-key
// wallet whose coins are tracked by an explorer.
package singlekeywallet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"github.com/tdex-network/tdex-trader/pkg/explorer"
	"github.com/tdex-network/tdex-trader/pkg/wallet"
	"github.com/vulpemventures/go-elements/network"
)

// UtxoLockTime is how long utxos selected for a trade are excluded from
// the following selections, unless they get spent before.
var UtxoLockTime = 2 * time.Minute

var (
	ErrNullWallet    = errors.New("missing wallet")
	ErrNullExplorer  = errors.New("missing explorer")
	ErrUnknownScript = errors.New("script not owned by wallet")
)

type Service struct {
	wallet   *wallet.Wallet
	explorer explorer.Service
	network  *network.Network
	address  string

	lock        sync.Mutex
	lockedUtxos map[string]time.Time
}

var (
	_ ports.Wallet = (*Service)(nil)
	_ ports.Signer = (*Service)(nil)
)

func NewService(
	w *wallet.Wallet, explorerSvc explorer.Service, net *network.Network,
) (*Service, error) {
	if w == nil {
		return nil, ErrNullWallet
	}
	if explorerSvc == nil {
		return nil, ErrNullExplorer
	}
	addr, err := w.ConfidentialAddress(net)
	if err != nil {
		return nil, err
	}

	return &Service{
		wallet:      w,
		explorer:    explorerSvc,
		network:     net,
		address:     addr,
		lockedUtxos: make(map[string]time.Time),
	}, nil
}

// Address returns the confidential address to fund the wallet.
func (s *Service) Address() string {
	return s.address
}

type Balance struct {
	Confirmed   uint64 `json:"confirmed"`
	Unconfirmed uint64 `json:"unconfirmed"`
}

// Balance returns the confirmed and unconfirmed amounts of every asset
// owned by the wallet.
func (s *Service) Balance(ctx context.Context) (map[string]Balance, error) {
	utxos, err := s.listUtxos(ctx)
	if err != nil {
		return nil, err
	}

	balance := make(map[string]Balance)
	for _, u := range utxos {
		b := balance[u.Asset]
		if u.Confirmed {
			b.Confirmed += u.Value
		} else {
			b.Unconfirmed += u.Value
		}
		balance[u.Asset] = b
	}
	return balance, nil
}

// CoinSelectionForTrade selects among the unlocked utxos of the wallet.
// The selected ones stay locked for UtxoLockTime.
func (s *Service) CoinSelectionForTrade(
	ctx context.Context, asset string, amount uint64,
) (*domain.CoinSelectionForTrade, error) {
	utxos, err := s.listUtxos(ctx)
	if err != nil {
		return nil, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	now := time.Now()
	unlocked := make([]explorer.Utxo, 0, len(utxos))
	for _, u := range utxos {
		if expiry, ok := s.lockedUtxos[u.Key()]; ok && now.Before(expiry) {
			continue
		}
		unlocked = append(unlocked, u)
	}

	coins, change, err := explorer.SelectUnspents(unlocked, amount, asset)
	if err != nil {
		if errors.Is(err, explorer.ErrInsufficientFunds) {
			log.WithFields(log.Fields{
				"asset":  asset,
				"amount": amount,
			}).Debug("not enough funds for trade")
			return &domain.CoinSelectionForTrade{}, nil
		}
		return nil, err
	}

	selection := &domain.CoinSelectionForTrade{
		Utxos: make([]domain.Utxo, 0, len(coins)),
	}
	for _, u := range coins {
		s.lockedUtxos[u.Key()] = now.Add(UtxoLockTime)
		selection.Utxos = append(selection.Utxos, domain.Utxo{
			Outpoint:     domain.Outpoint{Txid: u.Txid, Index: u.Index},
			Prevout:      u.Prevout,
			Asset:        u.Asset,
			Value:        u.Value,
			AssetBlinder: u.AssetBlinder,
			ValueBlinder: u.ValueBlinder,
		})
	}
	if change > 0 {
		selection.ChangeOutputs = []domain.ChangeOutput{
			{Asset: asset, Amount: change},
		}
	}
	return selection, nil
}

func (s *Service) ReceiveScript(ctx context.Context) (*domain.ScriptDetails, error) {
	return s.ScriptDetails(ctx, s.wallet.Script())
}

// ChangeScript is the same as the receive one, the wallet has a single
// script.
func (s *Service) ChangeScript(ctx context.Context) (*domain.ScriptDetails, error) {
	return s.ScriptDetails(ctx, s.wallet.Script())
}

func (s *Service) ScriptDetails(
	_ context.Context, script []byte,
) (*domain.ScriptDetails, error) {
	if !bytes.Equal(script, s.wallet.Script()) {
		return nil, fmt.Errorf("%w: %x", ErrUnknownScript, script)
	}
	prvkey, pubkey, err := s.wallet.BlindingKeyPair(script)
	if err != nil {
		return nil, err
	}
	return &domain.ScriptDetails{
		Script:             script,
		BlindingPrivateKey: prvkey,
		BlindingPublicKey:  pubkey,
	}, nil
}

func (s *Service) SignTransaction(_ context.Context, tx string) (string, error) {
	return s.wallet.SignTransaction(tx)
}

func (s *Service) FinalizeAndExtract(_ context.Context, tx string) (string, error) {
	return wallet.FinalizeAndExtract(tx)
}

func (s *Service) BroadcastTransaction(
	ctx context.Context, txHex string,
) (string, error) {
	return s.explorer.BroadcastTransaction(ctx, txHex)
}

// listUtxos fetches the wallet utxos and drops the expired locks.
func (s *Service) listUtxos(ctx context.Context) ([]explorer.Utxo, error) {
	blindingKey, _, err := s.wallet.BlindingKeyPair(s.wallet.Script())
	if err != nil {
		return nil, err
	}
	utxos, err := s.explorer.GetUnspents(ctx, s.address, [][]byte{blindingKey})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch utxos: %w", err)
	}

	s.lock.Lock()
	now := time.Now()
	for key, expiry := range s.lockedUtxos {
		if now.After(expiry) {
			delete(s.lockedUtxos, key)
		}
	}
	s.lock.Unlock()

	return utxos, nil
}
