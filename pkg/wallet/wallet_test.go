package wallet

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
	"github.com/tdex-network/tdex-trader/pkg/swaptx"
	"github.com/vulpemventures/go-elements/address"
	"github.com/vulpemventures/go-elements/network"
	"github.com/vulpemventures/go-elements/transaction"
)

var lbtc = network.Regtest.AssetID

func TestNewWallet(t *testing.T) {
	w, err := NewWallet()
	require.NoError(t, err)
	require.Len(t, w.SigningKey(), 32)
	require.NotEmpty(t, w.BlindingMasterKey())

	restored, err := NewWalletFromKeys(w.SigningKey(), w.BlindingMasterKey())
	require.NoError(t, err)
	require.Equal(t, w.Script(), restored.Script())

	script := w.Script()
	require.Len(t, script, 22)
	require.Equal(t, byte(0x00), script[0])

	prvkey, pubkey, err := w.BlindingKeyPair(script)
	require.NoError(t, err)
	restoredPrvkey, restoredPubkey, err := restored.BlindingKeyPair(script)
	require.NoError(t, err)
	require.Equal(t, prvkey, restoredPrvkey)
	require.Equal(t, pubkey, restoredPubkey)

	addr, err := w.ConfidentialAddress(&network.Regtest)
	require.NoError(t, err)
	ctAddr, err := address.FromConfidential(addr)
	require.NoError(t, err)
	require.Equal(t, pubkey, ctAddr.BlindingKey)
	outScript, err := address.ToOutputScript(addr)
	require.NoError(t, err)
	require.Equal(t, script, outScript)

	_, err = w.ConfidentialAddress(nil)
	require.ErrorIs(t, err, ErrNullNetwork)
}

func TestFailingNewWalletFromKeys(t *testing.T) {
	w, err := NewWallet()
	require.NoError(t, err)

	tests := []struct {
		name              string
		signingKey        []byte
		blindingMasterKey []byte
		err               error
	}{
		{"null signing key", nil, w.BlindingMasterKey(), ErrNullSigningKey},
		{"invalid signing key", []byte{1, 2, 3}, w.BlindingMasterKey(), ErrInvalidSigningKey},
		{"null blinding key", w.SigningKey(), nil, ErrNullBlindingMasterKey},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWalletFromKeys(tt.signingKey, tt.blindingMasterKey)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestEncryptWallet(t *testing.T) {
	w, err := NewWallet()
	require.NoError(t, err)

	cypher, err := w.Encrypt("password")
	require.NoError(t, err)

	restored, err := Decrypt(cypher, "password")
	require.NoError(t, err)
	require.Equal(t, w.SigningKey(), restored.SigningKey())
	require.Equal(t, w.BlindingMasterKey(), restored.BlindingMasterKey())

	_, err = Decrypt(cypher, "wrong")
	require.ErrorIs(t, err, ErrInvalidPassphrase)
}

func TestSignTransaction(t *testing.T) {
	w, err := NewWallet()
	require.NoError(t, err)
	other, err := NewWallet()
	require.NoError(t, err)

	for _, format := range []swaptx.Format{swaptx.FormatV0, swaptx.FormatV2} {
		format := format
		t.Run(format.String(), func(t *testing.T) {
			res, err := swaptx.Build(swaptx.BuildOpts{
				Format: format,
				Utxos: []swaptx.Utxo{
					explicitUtxo(t, 0, w.Script(), 10000),
					explicitUtxo(t, 1, other.Script(), 5000),
				},
				Outputs: []swaptx.Output{
					{Asset: lbtc, Amount: 14000, Script: other.Script()},
				},
			})
			require.NoError(t, err)

			signedTx, err := w.SignTransaction(res.Transaction)
			require.NoError(t, err)

			// The input of the other wallet is still unsigned.
			_, err = FinalizeAndExtract(signedTx)
			require.Error(t, err)

			signedTx, err = other.SignTransaction(signedTx)
			require.NoError(t, err)

			txHex, err := FinalizeAndExtract(signedTx)
			require.NoError(t, err)
			tx, err := transaction.NewTxFromHex(txHex)
			require.NoError(t, err)
			require.Len(t, tx.Inputs, 2)
			for _, in := range tx.Inputs {
				require.Len(t, in.Witness, 2)
			}
			require.True(t, bytes.Equal(
				w.SigningPublicKey().SerializeCompressed(), tx.Inputs[0].Witness[1],
			))
		})
	}
}

func TestFailingSignTransaction(t *testing.T) {
	w, err := NewWallet()
	require.NoError(t, err)
	other, err := NewWallet()
	require.NoError(t, err)

	_, err = w.SignTransaction("")
	require.ErrorIs(t, err, ErrNullPset)

	_, err = w.SignTransaction("not a pset")
	require.ErrorIs(t, err, ErrInvalidPset)

	res, err := swaptx.Build(swaptx.BuildOpts{
		Format: swaptx.FormatV2,
		Utxos:  []swaptx.Utxo{explicitUtxo(t, 0, other.Script(), 10000)},
		Outputs: []swaptx.Output{
			{Asset: lbtc, Amount: 10000, Script: w.Script()},
		},
	})
	require.NoError(t, err)

	_, err = w.SignTransaction(res.Transaction)
	require.ErrorIs(t, err, ErrNothingToSign)

	_, err = FinalizeAndExtract("")
	require.ErrorIs(t, err, ErrNullPset)
}

func explicitUtxo(t *testing.T, index uint32, script []byte, value uint64) swaptx.Utxo {
	asset, err := bufferutil.AssetHashToBytes(lbtc)
	require.NoError(t, err)
	val, err := bufferutil.ValueToBytes(value)
	require.NoError(t, err)
	return swaptx.Utxo{
		Txid:    hex.EncodeToString(bytes.Repeat([]byte{byte(index + 1)}, 32)),
		Index:   index,
		Prevout: transaction.NewTxOutput(asset, val, script),
		Asset:   lbtc,
		Value:   value,
	}
}
