package oceanwallet

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	pb "github.com/tdex-network/tdex-trader/api-spec/protobuf/gen/ocean/v1"
	"google.golang.org/grpc"
)

var (
	ErrWalletNotInitialized = errors.New("ocean wallet is not initialized")
	ErrWalletLocked         = errors.New("ocean wallet is locked")
)

type walletManager struct {
	client pb.WalletServiceClient
}

func newWalletManager(conn *grpc.ClientConn) *walletManager {
	return &walletManager{pb.NewWalletServiceClient(conn)}
}

// ready fails if the wallet can't sign yet. A wallet still syncing is
// usable but might not see its latest coins.
func (m *walletManager) ready(ctx context.Context) error {
	status, err := m.client.Status(ctx, &pb.StatusRequest{})
	if err != nil {
		return err
	}
	if !status.GetInitialized() {
		return ErrWalletNotInitialized
	}
	if !status.GetUnlocked() {
		return ErrWalletLocked
	}
	if !status.GetSynced() {
		log.Warn("ocean wallet is not synced yet, utxo set might be outdated")
	}
	return nil
}
