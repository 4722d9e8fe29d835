package esplora

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tdex-network/tdex-trader/pkg/explorer"
	"github.com/vulpemventures/go-elements/transaction"
	"golang.org/x/sync/errgroup"
)

type witnessUtxo struct {
	Txid   string `json:"txid"`
	Vout   uint32 `json:"vout"`
	Status status `json:"status"`
}

type status struct {
	Confirmed bool `json:"confirmed"`
}

func (e *esplora) GetUnspents(
	ctx context.Context, addr string, blindKeys [][]byte,
) ([]explorer.Utxo, error) {
	return e.GetUnspentsForAddresses(ctx, []string{addr}, blindKeys)
}

// GetUnspentsForAddresses returns the utxos of all addresses, in the order
// the explorer lists them address by address.
func (e *esplora) GetUnspentsForAddresses(
	ctx context.Context, addresses []string, blindKeys [][]byte,
) ([]explorer.Utxo, error) {
	witnessOuts := make([]witnessUtxo, 0)
	for _, addr := range addresses {
		outs, err := e.listUnspents(ctx, addr)
		if err != nil {
			return nil, err
		}
		witnessOuts = append(witnessOuts, outs...)
	}

	txs, err := e.getTransactions(ctx, witnessOuts)
	if err != nil {
		return nil, fmt.Errorf("error on retrieving utxos: %w", err)
	}

	unspents := make([]explorer.Utxo, 0, len(witnessOuts))
	for _, out := range witnessOuts {
		tx := txs[out.Txid]
		if int(out.Vout) >= len(tx.Outputs) {
			return nil, fmt.Errorf("output %s:%d not found", out.Txid, out.Vout)
		}

		u := explorer.NewUtxo(out.Txid, out.Vout, tx.Outputs[out.Vout])
		u.Confirmed = out.Status.Confirmed
		if u.IsConfidential() && len(blindKeys) > 0 {
			if err := u.Unblind(blindKeys); err != nil {
				return nil, fmt.Errorf("error on unblinding utxos: %w", err)
			}
		}
		unspents = append(unspents, u)
	}

	return unspents, nil
}

func (e *esplora) listUnspents(
	ctx context.Context, addr string,
) ([]witnessUtxo, error) {
	resp, err := e.get(ctx, fmt.Sprintf("/address/%s/utxo", addr))
	if err != nil {
		return nil, fmt.Errorf("error on retrieving utxos: %w", err)
	}

	var outs []witnessUtxo
	if err := json.Unmarshal([]byte(resp), &outs); err != nil {
		return nil, fmt.Errorf("error on retrieving utxos: %w", err)
	}
	return outs, nil
}

// getTransactions fetches concurrently the transactions the given utxos
// belong to. Every tx is fetched once even if many utxos spend from it.
func (e *esplora) getTransactions(
	ctx context.Context, outs []witnessUtxo,
) (map[string]*transaction.Transaction, error) {
	txids := make([]string, 0, len(outs))
	seen := make(map[string]bool)
	for _, out := range outs {
		if !seen[out.Txid] {
			seen[out.Txid] = true
			txids = append(txids, out.Txid)
		}
	}

	txs := make(map[string]*transaction.Transaction, len(txids))

	lock := &sync.Mutex{}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(MaxConcurrentRequests)
	for _, txid := range txids {
		txid := txid
		eg.Go(func() error {
			txhex, err := e.GetTransactionHex(ctx, txid)
			if err != nil {
				return err
			}
			tx, err := transaction.NewTxFromHex(txhex)
			if err != nil {
				return fmt.Errorf("invalid tx %s: %w", txid, err)
			}

			lock.Lock()
			txs[txid] = tx
			lock.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return txs, nil
}
