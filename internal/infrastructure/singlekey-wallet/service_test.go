package singlekeywallet_test

import (
	"bytes"
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	singlekeywallet "github.com/tdex-network/tdex-trader/internal/infrastructure/singlekey-wallet"
	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
	"github.com/tdex-network/tdex-trader/pkg/explorer"
	"github.com/tdex-network/tdex-trader/pkg/swaptx"
	"github.com/tdex-network/tdex-trader/pkg/wallet"
	"github.com/vulpemventures/go-elements/network"
	"github.com/vulpemventures/go-elements/transaction"
)

var (
	ctx  = context.Background()
	lbtc = network.Regtest.AssetID
	usdt = "2dcf5a8834645654911964ec3602426fd3b9b4017554d3f9c19403e7fc1411d3"
)

func TestCoinSelectionForTrade(t *testing.T) {
	svc, w, explorerSvc := newTestService(t)
	explorerSvc.mockUnspents(svc.Address(),
		utxo(t, 1, w.Script(), lbtc, 5000, true),
		utxo(t, 2, w.Script(), lbtc, 3000, false),
		utxo(t, 3, w.Script(), usdt, 100000, true),
	)

	coins, err := svc.CoinSelectionForTrade(ctx, lbtc, 4000)
	require.NoError(t, err)
	require.Len(t, coins.Utxos, 1)
	require.Equal(t, uint64(5000), coins.Utxos[0].Value)
	require.Equal(t, lbtc, coins.Utxos[0].Asset)
	require.NotNil(t, coins.Utxos[0].Prevout)
	require.Len(t, coins.ChangeOutputs, 1)
	require.Equal(t, lbtc, coins.ChangeOutputs[0].Asset)
	require.Equal(t, uint64(1000), coins.ChangeOutputs[0].Amount)

	// The utxo selected before is locked.
	coins, err = svc.CoinSelectionForTrade(ctx, lbtc, 3000)
	require.NoError(t, err)
	require.Len(t, coins.Utxos, 1)
	require.Equal(t, uint64(3000), coins.Utxos[0].Value)
	require.Empty(t, coins.ChangeOutputs)

	coins, err = svc.CoinSelectionForTrade(ctx, lbtc, 1000)
	require.NoError(t, err)
	require.Empty(t, coins.Utxos)

	coins, err = svc.CoinSelectionForTrade(ctx, usdt, 200000)
	require.NoError(t, err)
	require.Empty(t, coins.Utxos)

	balance, err := svc.Balance(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(5000), balance[lbtc].Confirmed)
	require.Equal(t, uint64(3000), balance[lbtc].Unconfirmed)
	require.Equal(t, uint64(100000), balance[usdt].Confirmed)
}

func TestScriptDetails(t *testing.T) {
	svc, w, _ := newTestService(t)

	receive, err := svc.ReceiveScript(ctx)
	require.NoError(t, err)
	change, err := svc.ChangeScript(ctx)
	require.NoError(t, err)
	require.Equal(t, receive, change)
	require.Equal(t, w.Script(), receive.Script)

	prvkey, pubkey, err := w.BlindingKeyPair(w.Script())
	require.NoError(t, err)
	require.Equal(t, prvkey, receive.BlindingPrivateKey)
	require.Equal(t, pubkey, receive.BlindingPublicKey)

	_, err = svc.ScriptDetails(ctx, []byte{0x00, 0x14})
	require.ErrorIs(t, err, singlekeywallet.ErrUnknownScript)
}

func TestSignAndBroadcast(t *testing.T) {
	svc, w, explorerSvc := newTestService(t)

	res, err := swaptx.Build(swaptx.BuildOpts{
		Format: swaptx.FormatV2,
		Utxos: []swaptx.Utxo{{
			Txid:    hex.EncodeToString(bytes.Repeat([]byte{1}, 32)),
			Prevout: explicitOut(t, w.Script(), lbtc, 1000),
			Asset:   lbtc,
			Value:   1000,
		}},
		Outputs: []swaptx.Output{{Asset: lbtc, Amount: 1000, Script: w.Script()}},
	})
	require.NoError(t, err)

	_, err = svc.FinalizeAndExtract(ctx, res.Transaction)
	require.Error(t, err)

	signedTx, err := svc.SignTransaction(ctx, res.Transaction)
	require.NoError(t, err)
	txHex, err := svc.FinalizeAndExtract(ctx, signedTx)
	require.NoError(t, err)

	tx, err := transaction.NewTxFromHex(txHex)
	require.NoError(t, err)
	explorerSvc.On("BroadcastTransaction", mock.Anything, txHex).
		Return(tx.TxHash().String(), nil)

	txid, err := svc.BroadcastTransaction(ctx, txHex)
	require.NoError(t, err)
	require.Equal(t, tx.TxHash().String(), txid)
}

func TestNewService(t *testing.T) {
	w, err := wallet.NewWallet()
	require.NoError(t, err)

	_, err = singlekeywallet.NewService(nil, &mockExplorer{}, &network.Regtest)
	require.ErrorIs(t, err, singlekeywallet.ErrNullWallet)
	_, err = singlekeywallet.NewService(w, nil, &network.Regtest)
	require.ErrorIs(t, err, singlekeywallet.ErrNullExplorer)
	_, err = singlekeywallet.NewService(w, &mockExplorer{}, nil)
	require.ErrorIs(t, err, wallet.ErrNullNetwork)
}

func newTestService(
	t *testing.T,
) (*singlekeywallet.Service, *wallet.Wallet, *mockExplorer) {
	w, err := wallet.NewWallet()
	require.NoError(t, err)
	explorerSvc := &mockExplorer{}
	svc, err := singlekeywallet.NewService(w, explorerSvc, &network.Regtest)
	require.NoError(t, err)
	require.NotEmpty(t, svc.Address())
	return svc, w, explorerSvc
}

func utxo(
	t *testing.T, index byte, script []byte, asset string, value uint64,
	confirmed bool,
) explorer.Utxo {
	u := explorer.NewUtxo(
		hex.EncodeToString(bytes.Repeat([]byte{index}, 32)), uint32(index),
		explicitOut(t, script, asset, value),
	)
	u.Confirmed = confirmed
	return u
}

func explicitOut(
	t *testing.T, script []byte, asset string, value uint64,
) *transaction.TxOutput {
	assetBytes, err := bufferutil.AssetHashToBytes(asset)
	require.NoError(t, err)
	valueBytes, err := bufferutil.ValueToBytes(value)
	require.NoError(t, err)
	return transaction.NewTxOutput(assetBytes, valueBytes, script)
}

type mockExplorer struct {
	mock.Mock
}

func (m *mockExplorer) mockUnspents(addr string, utxos ...explorer.Utxo) {
	m.On("GetUnspents", mock.Anything, addr, mock.Anything).Return(utxos, nil)
}

func (m *mockExplorer) GetUnspents(
	ctx context.Context, addr string, blindKeys [][]byte,
) ([]explorer.Utxo, error) {
	args := m.Called(ctx, addr, blindKeys)
	var res []explorer.Utxo
	if a := args.Get(0); a != nil {
		res = a.([]explorer.Utxo)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetUnspentsForAddresses(
	ctx context.Context, addresses []string, blindKeys [][]byte,
) ([]explorer.Utxo, error) {
	args := m.Called(ctx, addresses, blindKeys)
	var res []explorer.Utxo
	if a := args.Get(0); a != nil {
		res = a.([]explorer.Utxo)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetTransactionHex(
	ctx context.Context, txid string,
) (string, error) {
	args := m.Called(ctx, txid)
	return args.String(0), args.Error(1)
}

func (m *mockExplorer) IsTransactionConfirmed(
	ctx context.Context, txid string,
) (bool, error) {
	args := m.Called(ctx, txid)
	return args.Bool(0), args.Error(1)
}

func (m *mockExplorer) BroadcastTransaction(
	ctx context.Context, txhex string,
) (string, error) {
	args := m.Called(ctx, txhex)
	return args.String(0), args.Error(1)
}
