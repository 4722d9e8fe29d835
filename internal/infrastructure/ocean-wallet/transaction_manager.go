package oceanwallet

import (
	"context"
	"fmt"
	"strings"

	pb "github.com/tdex-network/tdex-trader/api-spec/protobuf/gen/ocean/v1"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
	"github.com/tdex-network/tdex-trader/pkg/swap"
	"github.com/vulpemventures/go-elements/psetv2"
	"github.com/vulpemventures/go-elements/transaction"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type txManager struct {
	client pb.TransactionServiceClient
}

func newTxManager(conn *grpc.ClientConn) *txManager {
	return &txManager{pb.NewTransactionServiceClient(conn)}
}

func (m *txManager) getTransaction(ctx context.Context, txid string) (string, error) {
	res, err := m.client.GetTransaction(ctx, &pb.GetTransactionRequest{
		Txid: txid,
	})
	if err != nil {
		return "", err
	}
	return res.GetTxHex(), nil
}

func (m *txManager) selectUtxos(
	ctx context.Context, accountName, asset string, amount uint64,
) ([]*pb.Utxo, uint64, error) {
	res, err := m.client.SelectUtxos(ctx, &pb.SelectUtxosRequest{
		AccountName:  accountName,
		TargetAsset:  asset,
		TargetAmount: amount,
	})
	if err != nil {
		return nil, 0, err
	}
	return res.GetUtxos(), res.GetChange(), nil
}

func (m *txManager) blindPset(
	ctx context.Context, pset string, extraUnblindedIns []swap.UnblindedInput,
) (string, error) {
	res, err := m.client.BlindPset(ctx, &pb.BlindPsetRequest{
		Pset:                 pset,
		LastBlinder:          true,
		ExtraUnblindedInputs: unblindedInputsToProto(extraUnblindedIns),
	})
	if err != nil {
		return "", err
	}
	return res.GetPset(), nil
}

func (m *txManager) signPset(ctx context.Context, pset string) (string, error) {
	res, err := m.client.SignPset(ctx, &pb.SignPsetRequest{Pset: pset})
	if err != nil {
		return "", err
	}
	return res.GetPset(), nil
}

func (m *txManager) broadcastTransaction(
	ctx context.Context, txHex string,
) (string, error) {
	res, err := m.client.BroadcastTransaction(
		ctx, &pb.BroadcastTransactionRequest{TxHex: txHex},
	)
	if err != nil {
		return "", err
	}
	return res.GetTxid(), nil
}

// CoinSelectionForTrade locks coins of the account covering amount. The
// prevouts are fetched from the daemon as required by the swap transaction.
func (s *Service) CoinSelectionForTrade(
	ctx context.Context, asset string, amount uint64,
) (*domain.CoinSelectionForTrade, error) {
	selected, change, err := s.txManager.selectUtxos(
		ctx, s.accountName, asset, amount,
	)
	if err != nil {
		if isInsufficientFunds(err) {
			return &domain.CoinSelectionForTrade{}, nil
		}
		return nil, err
	}

	txs := make(map[string]*transaction.Transaction)
	utxos := make([]domain.Utxo, 0, len(selected))
	for _, u := range selected {
		txid, index := u.GetTxid(), u.GetIndex()
		tx, ok := txs[txid]
		if !ok {
			txHex, err := s.txManager.getTransaction(ctx, txid)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch tx %s: %w", txid, err)
			}
			if tx, err = transaction.NewTxFromHex(txHex); err != nil {
				return nil, fmt.Errorf("invalid tx %s: %w", txid, err)
			}
			txs[txid] = tx
		}
		if int(index) >= len(tx.Outputs) {
			return nil, fmt.Errorf("utxo %s:%d not found in tx", txid, index)
		}

		utxo, err := utxoToDomain(u, tx.Outputs[index])
		if err != nil {
			return nil, err
		}
		utxos = append(utxos, *utxo)
	}

	var changes []domain.ChangeOutput
	if change > 0 {
		changes = append(changes, domain.ChangeOutput{
			Asset:  asset,
			Amount: change,
		})
	}
	return &domain.CoinSelectionForTrade{
		Utxos:         utxos,
		ChangeOutputs: changes,
	}, nil
}

// BlindTransaction blinds the account outputs of the pset as last blinder.
func (s *Service) BlindTransaction(
	ctx context.Context, tx string, unblindedIns []swap.UnblindedInput,
) (string, error) {
	return s.txManager.blindPset(ctx, tx, unblindedIns)
}

// SignTransaction signs the inputs of the pset owned by the account.
func (s *Service) SignTransaction(ctx context.Context, tx string) (string, error) {
	return s.txManager.signPset(ctx, tx)
}

func (s *Service) FinalizeAndExtract(_ context.Context, tx string) (string, error) {
	ptx, err := psetv2.NewPsetFromBase64(tx)
	if err != nil {
		return "", fmt.Errorf("invalid pset: %w", err)
	}
	if err := psetv2.FinalizeAll(ptx); err != nil {
		return "", fmt.Errorf("failed to finalize signed pset: %s", err)
	}
	rawTx, err := psetv2.Extract(ptx)
	if err != nil {
		return "", fmt.Errorf(
			"failed to extract final tx from finalized pset: %s", err,
		)
	}
	return rawTx.ToHex()
}

func (s *Service) BroadcastTransaction(
	ctx context.Context, txHex string,
) (string, error) {
	return s.txManager.broadcastTransaction(ctx, txHex)
}

func utxoToDomain(u *pb.Utxo, prevout *transaction.TxOutput) (*domain.Utxo, error) {
	txid, index := u.GetTxid(), u.GetIndex()
	assetBlinder, err := blinderFromHex(u.GetAssetBlinder())
	if err != nil {
		return nil, fmt.Errorf("invalid asset blinder for %s:%d", txid, index)
	}
	valueBlinder, err := blinderFromHex(u.GetValueBlinder())
	if err != nil {
		return nil, fmt.Errorf("invalid value blinder for %s:%d", txid, index)
	}
	return &domain.Utxo{
		Outpoint:     domain.Outpoint{Txid: txid, Index: index},
		Prevout:      prevout,
		Asset:        u.GetAsset(),
		Value:        u.GetValue(),
		AssetBlinder: assetBlinder,
		ValueBlinder: valueBlinder,
	}, nil
}

func unblindedInputsToProto(ins []swap.UnblindedInput) []*pb.UnblindedInput {
	list := make([]*pb.UnblindedInput, 0, len(ins))
	for _, in := range ins {
		list = append(list, &pb.UnblindedInput{
			Index:         in.Index,
			Asset:         in.Asset,
			Amount:        in.Amount,
			AssetBlinder:  in.AssetBlinder,
			AmountBlinder: in.AmountBlinder,
		})
	}
	return list
}

func blinderFromHex(str string) ([]byte, error) {
	if str == "" {
		return nil, nil
	}
	return bufferutil.BlinderToBytes(str)
}

func isInsufficientFunds(err error) bool {
	if status.Code(err) == codes.FailedPrecondition {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "insufficient") || strings.Contains(msg, "not enough")
}
