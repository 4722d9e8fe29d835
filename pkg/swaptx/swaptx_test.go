package swaptx_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
	"github.com/tdex-network/tdex-trader/pkg/swap"
	"github.com/tdex-network/tdex-trader/pkg/swaptx"
	"github.com/vulpemventures/go-elements/transaction"
)

const (
	usdt = "2dcf5a8834645654911964ec3602426fd3b9b4017554d3f9c19403e7fc1411d3"
	lbtc = "5ac9f65c0efcc4775e0baec4ec03abdde22473cd3cf33c0419ca290e0751b225"
	txid = "b9abc5a5f0224d3f56a2a07f89238cff93b99d19c92a98712fa7430635514571"
)

var (
	walletScript = append([]byte{0x00, 0x14}, bytes.Repeat([]byte{0xaa}, 20)...)
	masterKey    = bytes.Repeat([]byte{0x07}, 32)
)

func newUtxo(t *testing.T, index uint32, asset string, value uint64) swaptx.Utxo {
	assetBytes, err := bufferutil.AssetHashToBytes(asset)
	require.NoError(t, err)
	valueBytes, err := bufferutil.ValueToBytes(value)
	require.NoError(t, err)
	return swaptx.Utxo{
		Txid:         txid,
		Index:        index,
		Prevout:      transaction.NewTxOutput(assetBytes, valueBytes, walletScript),
		Asset:        asset,
		Value:        value,
		AssetBlinder: make([]byte, 32),
		ValueBlinder: make([]byte, 32),
	}
}

func TestBuild(t *testing.T) {
	keys, err := swaptx.NewSlip77FromMasterKey(masterKey)
	require.NoError(t, err)

	utxos := []swaptx.Utxo{
		newUtxo(t, 0, usdt, 20000),
		newUtxo(t, 1, usdt, 20000),
	}
	outputs := []swaptx.Output{
		{Asset: lbtc, Amount: 5000, Script: walletScript},
		{Asset: usdt, Amount: 10000, Script: walletScript},
	}

	tests := []struct {
		format  swaptx.Format
		version swap.Version
	}{
		{swaptx.FormatV0, swap.V1},
		{swaptx.FormatV2, swap.V2},
	}

	for _, tt := range tests {
		res, err := swaptx.Build(swaptx.BuildOpts{
			Format:       tt.format,
			Utxos:        utxos,
			Outputs:      outputs,
			BlindingKeys: keys,
		})
		require.NoError(t, err)
		require.Equal(t, tt.format, res.Format)

		v, err := swap.TxVersion(res.Transaction)
		require.NoError(t, err)
		require.Equal(t, tt.version, v)

		script := hex.EncodeToString(walletScript)
		privkey, _, err := keys.BlindingKeyPair(walletScript)
		require.NoError(t, err)
		require.Equal(t, privkey, res.InputBlindingKeys[script])
		require.Equal(t, privkey, res.OutputBlindingKeys[script])

		// Explicit inputs need no disclosure.
		require.Empty(t, res.UnblindedInputs)

		// The built transaction must justify the request made on it.
		_, err = swap.Request(swap.RequestOpts{
			AssetToSend:        usdt,
			AmountToSend:       30000,
			AssetToReceive:     lbtc,
			AmountToReceive:    5000,
			Transaction:        res.Transaction,
			InputBlindingKeys:  res.InputBlindingKeys,
			OutputBlindingKeys: res.OutputBlindingKeys,
			UnblindedInputs:    res.UnblindedInputs,
		})
		require.NoError(t, err)
	}
}

func TestBuildDisclosesConfidentialInputs(t *testing.T) {
	keys, err := swaptx.NewSlip77FromMasterKey(masterKey)
	require.NoError(t, err)

	blinded := newUtxo(t, 1, usdt, 20000)
	blinded.Prevout = &transaction.TxOutput{
		Asset:  append([]byte{0x0a}, bytes.Repeat([]byte{0x11}, 32)...),
		Value:  append([]byte{0x08}, bytes.Repeat([]byte{0x22}, 32)...),
		Nonce:  append([]byte{0x02}, bytes.Repeat([]byte{0x33}, 32)...),
		Script: walletScript,
	}
	blinded.AssetBlinder = bytes.Repeat([]byte{0x01}, 32)
	blinded.ValueBlinder = bytes.Repeat([]byte{0x02}, 32)

	res, err := swaptx.Build(swaptx.BuildOpts{
		Format:       swaptx.FormatV2,
		Utxos:        []swaptx.Utxo{newUtxo(t, 0, usdt, 20000), blinded},
		Outputs:      []swaptx.Output{{Asset: lbtc, Amount: 5000, Script: walletScript}},
		BlindingKeys: keys,
	})
	require.NoError(t, err)
	require.Len(t, res.UnblindedInputs, 1)

	in := res.UnblindedInputs[0]
	require.Equal(t, uint32(1), in.Index)
	require.Equal(t, usdt, in.Asset)
	require.Equal(t, uint64(20000), in.Amount)
	require.Equal(t, bufferutil.BlinderFromBytes(blinded.AssetBlinder), in.AssetBlinder)
	require.Equal(t, bufferutil.BlinderFromBytes(blinded.ValueBlinder), in.AmountBlinder)
}

func TestBuildWithoutBlindingKeys(t *testing.T) {
	res, err := swaptx.Build(swaptx.BuildOpts{
		Format:  swaptx.FormatV0,
		Utxos:   []swaptx.Utxo{newUtxo(t, 0, usdt, 20000)},
		Outputs: []swaptx.Output{{Asset: lbtc, Amount: 5000, Script: walletScript}},
	})
	require.NoError(t, err)
	require.Nil(t, res.InputBlindingKeys)
	require.Nil(t, res.OutputBlindingKeys)
}

func TestBuildFailing(t *testing.T) {
	utxo := newUtxo(t, 0, usdt, 20000)
	out := swaptx.Output{Asset: lbtc, Amount: 5000, Script: walletScript}
	noPrevout := utxo
	noPrevout.Prevout = nil

	tests := []struct {
		name string
		opts swaptx.BuildOpts
		err  error
	}{
		{"no utxos", swaptx.BuildOpts{Outputs: []swaptx.Output{out}}, swaptx.ErrNoUtxos},
		{"no outputs", swaptx.BuildOpts{Utxos: []swaptx.Utxo{utxo}}, swaptx.ErrNoOutputs},
		{"unknown format", swaptx.BuildOpts{
			Format: swaptx.Format(5), Utxos: []swaptx.Utxo{utxo}, Outputs: []swaptx.Output{out},
		}, swaptx.ErrUnknownFormat},
		{"missing prevout", swaptx.BuildOpts{
			Utxos: []swaptx.Utxo{noPrevout}, Outputs: []swaptx.Output{out},
		}, swaptx.ErrMissingPrevout},
		{"zero amount output", swaptx.BuildOpts{
			Utxos:   []swaptx.Utxo{utxo},
			Outputs: []swaptx.Output{{Asset: lbtc, Script: walletScript}},
		}, swaptx.ErrInvalidOutAmount},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := swaptx.Build(tt.opts)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFormatForVersion(t *testing.T) {
	f, err := swaptx.FormatForVersion(swap.V1)
	require.NoError(t, err)
	require.Equal(t, swaptx.FormatV0, f)

	f, err = swaptx.FormatForVersion(swap.V2)
	require.NoError(t, err)
	require.Equal(t, swaptx.FormatV2, f)

	_, err = swaptx.FormatForVersion(swap.Version(0))
	require.ErrorIs(t, err, swaptx.ErrUnknownFormat)
}
