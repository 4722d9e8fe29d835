package explorer

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
	"github.com/vulpemventures/go-elements/confidential"
	"github.com/vulpemventures/go-elements/transaction"
)

func TestUtxoUnblind(t *testing.T) {
	blindKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	otherKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	out := blindedOut(t, blindKey.PubKey(), lbtc, 21000)
	u := NewUtxo(fakeTxid(7), 1, out)
	require.True(t, u.IsConfidential())
	require.False(t, u.IsRevealed())

	err = u.Unblind([][]byte{otherKey.Serialize()})
	require.ErrorIs(t, err, ErrUnblind)
	require.False(t, u.IsRevealed())

	err = u.Unblind([][]byte{otherKey.Serialize(), blindKey.Serialize()})
	require.NoError(t, err)
	require.True(t, u.IsRevealed())
	require.Equal(t, lbtc, u.Asset)
	require.Equal(t, uint64(21000), u.Value)
	require.Equal(t, bytes.Repeat([]byte{0x11}, 32), u.AssetBlinder)
	require.Equal(t, bytes.Repeat([]byte{0x22}, 32), u.ValueBlinder)
}

// blindedOut returns an output of the given asset and value blinded to the
// given public key.
func blindedOut(
	t *testing.T, blindPubkey *btcec.PublicKey, asset string, value uint64,
) *transaction.TxOutput {
	script := append([]byte{0x00, 0x14}, bytes.Repeat([]byte{0x01}, 20)...)

	assetBytes, err := bufferutil.AssetHashToBytes(asset)
	require.NoError(t, err)
	rawAsset := assetBytes[1:]
	assetBlinder := bytes.Repeat([]byte{0x11}, 32)
	var valueBlinder [32]byte
	copy(valueBlinder[:], bytes.Repeat([]byte{0x22}, 32))

	assetCommitment, err := confidential.AssetCommitment(rawAsset, assetBlinder)
	require.NoError(t, err)
	valueCommitment, err := confidential.ValueCommitment(
		value, assetCommitment, valueBlinder[:],
	)
	require.NoError(t, err)

	ephemeralKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	nonce, err := confidential.NonceHash(
		blindPubkey.SerializeCompressed(), ephemeralKey.Serialize(),
	)
	require.NoError(t, err)

	rangeProof, err := confidential.RangeProof(confidential.RangeProofArgs{
		Value:               value,
		Nonce:               nonce,
		Asset:               rawAsset,
		AssetBlindingFactor: assetBlinder,
		ValueBlindFactor:    valueBlinder,
		ValueCommit:         valueCommitment,
		ScriptPubkey:        script,
		MinBits:             36,
	})
	require.NoError(t, err)

	out := transaction.NewTxOutput(assetCommitment, valueCommitment, script)
	out.Nonce = ephemeralKey.PubKey().SerializeCompressed()
	out.RangeProof = rangeProof
	return out
}
