package esplora

import (
	"context"
	"encoding/json"
	"fmt"
)

func (e *esplora) GetTransactionHex(
	ctx context.Context, txid string,
) (string, error) {
	return e.get(ctx, fmt.Sprintf("/tx/%s/hex", txid))
}

func (e *esplora) IsTransactionConfirmed(
	ctx context.Context, txid string,
) (bool, error) {
	resp, err := e.get(ctx, fmt.Sprintf("/tx/%s/status", txid))
	if err != nil {
		return false, err
	}

	var s status
	if err := json.Unmarshal([]byte(resp), &s); err != nil {
		return false, fmt.Errorf("invalid tx status: %w", err)
	}
	return s.Confirmed, nil
}

func (e *esplora) BroadcastTransaction(
	ctx context.Context, txhex string,
) (string, error) {
	return e.post(ctx, "/tx", txhex)
}
