// Package oceanwallet funds, blinds and signs trades with an account of an
// Ocean wallet daemon.
package oceanwallet

import (
	"context"

	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const DefaultAccount = "default"

var (
	_ ports.Wallet  = (*Service)(nil)
	_ ports.Signer  = (*Service)(nil)
	_ ports.Blinder = (*Service)(nil)
)

// Service implements the wallet ports on top of an ocean daemon. Blinding
// keys never leave the daemon, therefore it can only serve v2 trades.
type Service struct {
	addr        string
	accountName string
	conn        *grpc.ClientConn

	walletManager  *walletManager
	accountManager *accountManager
	txManager      *txManager
}

func NewService(addr, accountName string) (*Service, error) {
	conn, err := grpc.Dial(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, err
	}
	if accountName == "" {
		accountName = DefaultAccount
	}

	svc := &Service{
		addr:           addr,
		accountName:    accountName,
		conn:           conn,
		walletManager:  newWalletManager(conn),
		accountManager: newAccountManager(conn),
		txManager:      newTxManager(conn),
	}
	if err := svc.walletManager.ready(context.Background()); err != nil {
		// nolint
		conn.Close()
		return nil, err
	}
	return svc, nil
}

func (s *Service) Close() {
	// nolint
	s.conn.Close()
}
