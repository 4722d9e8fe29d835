package oceanwallet

import (
	"context"
	"fmt"

	pb "github.com/tdex-network/tdex-trader/api-spec/protobuf/gen/ocean/v1"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/vulpemventures/go-elements/address"
	"google.golang.org/grpc"
)

type accountManager struct {
	client pb.AccountServiceClient
}

func newAccountManager(conn *grpc.ClientConn) *accountManager {
	return &accountManager{pb.NewAccountServiceClient(conn)}
}

func (m *accountManager) deriveAddresses(
	ctx context.Context, accountName string, num int,
) ([]string, error) {
	res, err := m.client.DeriveAddresses(ctx, &pb.DeriveAddressesRequest{
		AccountName:    accountName,
		NumOfAddresses: uint64(num),
	})
	if err != nil {
		return nil, err
	}
	return checkDerived(res.GetAddresses(), num)
}

func (m *accountManager) deriveChangeAddresses(
	ctx context.Context, accountName string, num int,
) ([]string, error) {
	res, err := m.client.DeriveChangeAddresses(
		ctx, &pb.DeriveChangeAddressesRequest{
			AccountName:    accountName,
			NumOfAddresses: uint64(num),
		},
	)
	if err != nil {
		return nil, err
	}
	return checkDerived(res.GetAddresses(), num)
}

func checkDerived(addresses []string, num int) ([]string, error) {
	if len(addresses) < num {
		return nil, fmt.Errorf(
			"ocean derived %d addresses, expected %d", len(addresses), num,
		)
	}
	return addresses, nil
}

// ReceiveScript derives a new address of the account.
func (s *Service) ReceiveScript(ctx context.Context) (*domain.ScriptDetails, error) {
	addrs, err := s.accountManager.deriveAddresses(ctx, s.accountName, 1)
	if err != nil {
		return nil, err
	}
	return scriptDetailsFromAddress(addrs[0])
}

// ChangeScript derives a new change address of the account.
func (s *Service) ChangeScript(ctx context.Context) (*domain.ScriptDetails, error) {
	addrs, err := s.accountManager.deriveChangeAddresses(ctx, s.accountName, 1)
	if err != nil {
		return nil, err
	}
	return scriptDetailsFromAddress(addrs[0])
}

// ScriptDetails returns only the script, the blinding private keys are owned
// by the daemon.
func (s *Service) ScriptDetails(
	_ context.Context, script []byte,
) (*domain.ScriptDetails, error) {
	return &domain.ScriptDetails{Script: script}, nil
}

func scriptDetailsFromAddress(addr string) (*domain.ScriptDetails, error) {
	script, err := address.ToOutputScript(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address %s: %w", addr, err)
	}

	info := &domain.ScriptDetails{Script: script}
	// Unconfidential addresses have no blinding key.
	if ctAddr, err := address.FromConfidential(addr); err == nil {
		info.BlindingPublicKey = ctAddr.BlindingKey
	}
	return info, nil
}
