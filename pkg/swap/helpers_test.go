package swap

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
	"github.com/vulpemventures/go-elements/pset"
	"github.com/vulpemventures/go-elements/psetv2"
	"github.com/vulpemventures/go-elements/transaction"
)

const (
	USDT = "2dcf5a8834645654911964ec3602426fd3b9b4017554d3f9c19403e7fc1411d3"
	LBTC = "5ac9f65c0efcc4775e0baec4ec03abdde22473cd3cf33c0419ca290e0751b225"

	aliceTxid = "b9abc5a5f0224d3f56a2a07f89238cff93b99d19c92a98712fa7430635514571"
	bobTxid   = "97b74fe5aff4edd10b7eb52e3df3c70201b51719af50c1f16dbe2ce9c4c80be6"
)

var (
	aliceScript = append([]byte{0x00, 0x14}, bytes.Repeat([]byte{0xaa}, 20)...)
	bobScript   = append([]byte{0x00, 0x14}, bytes.Repeat([]byte{0xbb}, 20)...)
)

type testInput struct {
	txid    string
	index   uint32
	prevout *transaction.TxOutput
}

type testOutput struct {
	asset  string
	amount uint64
	script []byte
}

func explicitOut(t *testing.T, asset string, amount uint64, script []byte) *transaction.TxOutput {
	assetBytes, err := bufferutil.AssetHashToBytes(asset)
	require.NoError(t, err)
	value, err := bufferutil.ValueToBytes(amount)
	require.NoError(t, err)
	return transaction.NewTxOutput(assetBytes, value, script)
}

// confidentialOut returns an output that looks blinded. Its commitments are
// not valid, so it can't be unblinded.
func confidentialOut(script []byte) *transaction.TxOutput {
	return &transaction.TxOutput{
		Asset:           append([]byte{0x0a}, bytes.Repeat([]byte{0x11}, 32)...),
		Value:           append([]byte{0x08}, bytes.Repeat([]byte{0x22}, 32)...),
		Nonce:           append([]byte{0x02}, bytes.Repeat([]byte{0x33}, 32)...),
		Script:          script,
		RangeProof:      bytes.Repeat([]byte{0x44}, 64),
		SurjectionProof: bytes.Repeat([]byte{0x55}, 64),
	}
}

func newPsetV0(t *testing.T, ins []testInput, outs []*transaction.TxOutput) string {
	ptx, err := pset.New([]*transaction.TxInput{}, []*transaction.TxOutput{}, 2, 0)
	require.NoError(t, err)
	updater, err := pset.NewUpdater(ptx)
	require.NoError(t, err)

	for _, in := range ins {
		hash, err := bufferutil.TxIDToBytes(in.txid)
		require.NoError(t, err)
		updater.AddInput(transaction.NewTxInput(hash, in.index))
		require.NoError(t, updater.AddInWitnessUtxo(in.prevout, len(ptx.Inputs)-1))
	}
	for _, out := range outs {
		updater.AddOutput(out)
	}

	psetBase64, err := ptx.ToBase64()
	require.NoError(t, err)
	return psetBase64
}

func newPsetV2(t *testing.T, ins []testInput, outs []testOutput) string {
	insArgs := make([]psetv2.InputArgs, 0, len(ins))
	for _, in := range ins {
		insArgs = append(insArgs, psetv2.InputArgs{Txid: in.txid, TxIndex: in.index})
	}
	outsArgs := make([]psetv2.OutputArgs, 0, len(outs))
	for _, out := range outs {
		outsArgs = append(outsArgs, psetv2.OutputArgs{
			Asset:  out.asset,
			Amount: out.amount,
			Script: out.script,
		})
	}

	ptx, err := psetv2.New(insArgs, outsArgs, nil)
	require.NoError(t, err)
	updater, err := psetv2.NewUpdater(ptx)
	require.NoError(t, err)
	for i, in := range ins {
		require.NoError(t, updater.AddInWitnessUtxo(i, in.prevout))
	}

	psetBase64, err := ptx.ToBase64()
	require.NoError(t, err)
	return psetBase64
}

func scriptHex(script []byte) string {
	return hex.EncodeToString(script)
}
