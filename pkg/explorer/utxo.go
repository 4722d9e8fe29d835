package explorer

import (
	"fmt"

	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
	"github.com/vulpemventures/go-elements/confidential"
	"github.com/vulpemventures/go-elements/transaction"
)

// Utxo represents an unspent transaction output in the elements chain.
// Asset and Value are defined for explicit outputs, or after a successful
// Unblind for confidential ones.
type Utxo struct {
	Txid         string
	Index        uint32
	Asset        string
	Value        uint64
	AssetBlinder []byte
	ValueBlinder []byte
	Prevout      *transaction.TxOutput
	Confirmed    bool
}

func (u Utxo) Key() string {
	return fmt.Sprintf("%s:%d", u.Txid, u.Index)
}

func (u Utxo) IsConfidential() bool {
	return u.Prevout != nil && u.Prevout.IsConfidential()
}

func (u Utxo) IsRevealed() bool {
	return len(u.Asset) > 0
}

// Unblind reveals asset, value and blinders of a confidential utxo by
// trying every given key. Explicit utxos are left untouched.
func (u *Utxo) Unblind(blindKeys [][]byte) error {
	if !u.IsConfidential() {
		return nil
	}

	for _, key := range blindKeys {
		revealed, err := confidential.UnblindOutputWithKey(u.Prevout, key)
		if err != nil {
			continue
		}

		u.Asset = bufferutil.TxIDFromBytes(revealed.Asset)
		u.Value = revealed.Value
		u.AssetBlinder = revealed.AssetBlindingFactor
		u.ValueBlinder = revealed.ValueBlindingFactor
		return nil
	}

	return fmt.Errorf("%w %s", ErrUnblind, u.Key())
}

// NewUtxo returns the utxo spending the given output. Explicit outputs are
// revealed right away.
func NewUtxo(txid string, index uint32, prevout *transaction.TxOutput) Utxo {
	u := Utxo{Txid: txid, Index: index, Prevout: prevout}
	if prevout != nil && !prevout.IsConfidential() {
		u.Asset = bufferutil.AssetHashFromBytes(prevout.Asset)
		u.Value = bufferutil.ValueFromBytes(prevout.Value)
	}
	return u
}
