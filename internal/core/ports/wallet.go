package ports

import (
	"context"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/pkg/swap"
)

// Wallet is the source of the coins and of the scripts used in a trade.
type Wallet interface {
	// CoinSelectionForTrade returns unblinded utxos of asset covering amount
	// and the eventual change. An empty selection is not an error.
	CoinSelectionForTrade(
		ctx context.Context, asset string, amount uint64,
	) (*domain.CoinSelectionForTrade, error)
	ReceiveScript(ctx context.Context) (*domain.ScriptDetails, error)
	ChangeScript(ctx context.Context) (*domain.ScriptDetails, error)
	ScriptDetails(ctx context.Context, script []byte) (*domain.ScriptDetails, error)
}

// Signer signs the wallet inputs of a swap transaction and turns it into a
// broadcastable raw transaction.
type Signer interface {
	SignTransaction(ctx context.Context, tx string) (string, error)
	// FinalizeAndExtract returns the hex of the raw transaction. It fails if
	// any input is not signed yet.
	FinalizeAndExtract(ctx context.Context, tx string) (string, error)
}

// Blinder blinds the outputs of a PSETv2 owned by the wallet. The inputs
// not owned by the wallet are revealed by unblindedIns.
type Blinder interface {
	BlindTransaction(
		ctx context.Context, tx string, unblindedIns []swap.UnblindedInput,
	) (string, error)
}
