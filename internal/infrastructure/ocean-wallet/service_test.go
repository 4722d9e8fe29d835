package oceanwallet

import (
	"context"
	"encoding/hex"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"
	pb "github.com/tdex-network/tdex-trader/api-spec/protobuf/gen/ocean/v1"
	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
	"github.com/tdex-network/tdex-trader/pkg/swap"
	"github.com/vulpemventures/go-elements/network"
	"github.com/vulpemventures/go-elements/payment"
	"github.com/vulpemventures/go-elements/transaction"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var lbtc = network.Regtest.AssetID

// fakeOcean serves the subset of the ocean api used by the service.
type fakeOcean struct {
	lock      sync.Mutex
	status    *pb.StatusResponse
	addresses []string
	selection *pb.SelectUtxosResponse
	selectErr error
	txs       map[string]string

	lastSelect *pb.SelectUtxosRequest
	lastBlind  *pb.BlindPsetRequest
	lastSign   *pb.SignPsetRequest
	lastDerive string
}

type walletServer struct {
	pb.UnimplementedWalletServiceServer
	o *fakeOcean
}

func (s walletServer) Status(
	context.Context, *pb.StatusRequest,
) (*pb.StatusResponse, error) {
	s.o.lock.Lock()
	defer s.o.lock.Unlock()
	return s.o.status, nil
}

type accountServer struct {
	pb.UnimplementedAccountServiceServer
	o *fakeOcean
}

func (s accountServer) derived(method string) []string {
	s.o.lock.Lock()
	defer s.o.lock.Unlock()
	s.o.lastDerive = method
	return s.o.addresses
}

func (s accountServer) DeriveAddresses(
	context.Context, *pb.DeriveAddressesRequest,
) (*pb.DeriveAddressesResponse, error) {
	return &pb.DeriveAddressesResponse{
		Addresses: s.derived("DeriveAddresses"),
	}, nil
}

func (s accountServer) DeriveChangeAddresses(
	context.Context, *pb.DeriveChangeAddressesRequest,
) (*pb.DeriveChangeAddressesResponse, error) {
	return &pb.DeriveChangeAddressesResponse{
		Addresses: s.derived("DeriveChangeAddresses"),
	}, nil
}

type txServer struct {
	pb.UnimplementedTransactionServiceServer
	o *fakeOcean
}

func (s txServer) SelectUtxos(
	_ context.Context, req *pb.SelectUtxosRequest,
) (*pb.SelectUtxosResponse, error) {
	s.o.lock.Lock()
	defer s.o.lock.Unlock()
	s.o.lastSelect = req
	if s.o.selectErr != nil {
		return nil, s.o.selectErr
	}
	return s.o.selection, nil
}

func (s txServer) GetTransaction(
	_ context.Context, req *pb.GetTransactionRequest,
) (*pb.GetTransactionResponse, error) {
	s.o.lock.Lock()
	defer s.o.lock.Unlock()
	txHex, ok := s.o.txs[req.GetTxid()]
	if !ok {
		return nil, status.Error(codes.NotFound, "tx not found")
	}
	return &pb.GetTransactionResponse{TxHex: txHex}, nil
}

func (s txServer) BlindPset(
	_ context.Context, req *pb.BlindPsetRequest,
) (*pb.BlindPsetResponse, error) {
	s.o.lock.Lock()
	defer s.o.lock.Unlock()
	s.o.lastBlind = req
	return &pb.BlindPsetResponse{Pset: "blinded:" + req.GetPset()}, nil
}

func (s txServer) SignPset(
	_ context.Context, req *pb.SignPsetRequest,
) (*pb.SignPsetResponse, error) {
	s.o.lock.Lock()
	defer s.o.lock.Unlock()
	s.o.lastSign = req
	return &pb.SignPsetResponse{Pset: "signed:" + req.GetPset()}, nil
}

func (s txServer) BroadcastTransaction(
	context.Context, *pb.BroadcastTransactionRequest,
) (*pb.BroadcastTransactionResponse, error) {
	return &pb.BroadcastTransactionResponse{Txid: strings.Repeat("f", 64)}, nil
}

// serve starts the fake daemon and returns its address.
func (o *fakeOcean) serve(t *testing.T) string {
	t.Helper()

	srv := grpc.NewServer()
	pb.RegisterWalletServiceServer(srv, walletServer{o: o})
	pb.RegisterAccountServiceServer(srv, accountServer{o: o})
	pb.RegisterTransactionServiceServer(srv, txServer{o: o})

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		// nolint
		srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)
	return lis.Addr().String()
}

func newTestService(t *testing.T, ocean *fakeOcean) *Service {
	t.Helper()

	svc, err := NewService(ocean.serve(t), "")
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc
}

func readyOcean() *fakeOcean {
	return &fakeOcean{
		status: &pb.StatusResponse{Initialized: true, Unlocked: true, Synced: true},
		txs:    make(map[string]string),
	}
}

func TestNewService(t *testing.T) {
	cases := []struct {
		name   string
		status *pb.StatusResponse
		err    error
	}{
		{"not initialized", &pb.StatusResponse{}, ErrWalletNotInitialized},
		{"locked", &pb.StatusResponse{Initialized: true}, ErrWalletLocked},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			ocean := &fakeOcean{status: c.status}

			svc, err := NewService(ocean.serve(t), "")
			require.ErrorIs(t, err, c.err)
			require.Nil(t, svc)
		})
	}

	t.Run("not synced", func(t *testing.T) {
		ocean := readyOcean()
		ocean.status.Synced = false
		svc := newTestService(t, ocean)
		require.Equal(t, DefaultAccount, svc.accountName)
	})
}

func TestCoinSelectionForTrade(t *testing.T) {
	script := []byte{0x00, 0x14, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14}
	tx := transaction.NewTx(2)
	asset, err := bufferutil.AssetHashToBytes(lbtc)
	require.NoError(t, err)
	for _, amount := range []uint64{50000, 70000} {
		value, err := bufferutil.ValueToBytes(amount)
		require.NoError(t, err)
		tx.AddOutput(transaction.NewTxOutput(asset, value, script))
	}
	txHex, err := tx.ToHex()
	require.NoError(t, err)
	txid := tx.TxHash().String()

	assetBlinder := strings.Repeat("01", 32)
	ocean := readyOcean()
	ocean.txs[txid] = txHex
	scriptHex := hex.EncodeToString(script)
	ocean.selection = &pb.SelectUtxosResponse{
		Utxos: []*pb.Utxo{
			{Txid: txid, Index: 0, Asset: lbtc, Value: 50000, Script: scriptHex},
			{
				Txid: txid, Index: 1, Asset: lbtc, Value: 70000, Script: scriptHex,
				AssetBlinder: assetBlinder, ValueBlinder: assetBlinder,
			},
		},
		Change: 20000,
	}
	svc := newTestService(t, ocean)

	coins, err := svc.CoinSelectionForTrade(context.Background(), lbtc, 100000)
	require.NoError(t, err)
	require.Len(t, coins.Utxos, 2)
	require.Equal(t, txid, coins.Utxos[0].Txid)
	require.Equal(t, uint32(1), coins.Utxos[1].Index)
	require.Equal(t, tx.Outputs[1].Value, coins.Utxos[1].Prevout.Value)
	require.Nil(t, coins.Utxos[0].AssetBlinder)
	blinder, err := bufferutil.BlinderToBytes(assetBlinder)
	require.NoError(t, err)
	require.Equal(t, blinder, coins.Utxos[1].AssetBlinder)
	require.Len(t, coins.ChangeOutputs, 1)
	require.Equal(t, uint64(20000), coins.ChangeOutputs[0].Amount)
	require.Equal(t, lbtc, coins.ChangeOutputs[0].Asset)

	require.Equal(t, DefaultAccount, ocean.lastSelect.GetAccountName())
	require.Equal(t, lbtc, ocean.lastSelect.GetTargetAsset())
	require.Equal(t, uint64(100000), ocean.lastSelect.GetTargetAmount())

	t.Run("insufficient funds", func(t *testing.T) {
		ocean := readyOcean()
		ocean.selectErr = status.Error(
			codes.FailedPrecondition, "not enough funds to cover target amount",
		)
		svc := newTestService(t, ocean)

		coins, err := svc.CoinSelectionForTrade(context.Background(), lbtc, 100000)
		require.NoError(t, err)
		require.Empty(t, coins.Utxos)
	})

	t.Run("unknown prevout", func(t *testing.T) {
		ocean := readyOcean()
		ocean.selection = &pb.SelectUtxosResponse{
			Utxos: []*pb.Utxo{{Txid: txid, Index: 0, Asset: lbtc, Value: 50000}},
		}
		svc := newTestService(t, ocean)

		coins, err := svc.CoinSelectionForTrade(context.Background(), lbtc, 100000)
		require.Error(t, err)
		require.Nil(t, coins)
	})
}

func TestScripts(t *testing.T) {
	key, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	blindKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	p2wpkh := payment.FromPublicKey(key.PubKey(), &network.Regtest, blindKey.PubKey())
	addr, err := p2wpkh.ConfidentialWitnessPubKeyHash()
	require.NoError(t, err)

	ocean := readyOcean()
	ocean.addresses = []string{addr}
	svc := newTestService(t, ocean)

	receive, err := svc.ReceiveScript(context.Background())
	require.NoError(t, err)
	require.Equal(t, p2wpkh.WitnessScript, receive.Script)
	require.Equal(t, blindKey.PubKey().SerializeCompressed(), receive.BlindingPublicKey)
	require.Equal(t, "DeriveAddresses", ocean.lastDerive)

	change, err := svc.ChangeScript(context.Background())
	require.NoError(t, err)
	require.Equal(t, receive.Script, change.Script)
	require.Equal(t, "DeriveChangeAddresses", ocean.lastDerive)

	details, err := svc.ScriptDetails(context.Background(), receive.Script)
	require.NoError(t, err)
	require.Empty(t, details.BlindingPrivateKey)

	t.Run("no address derived", func(t *testing.T) {
		svc := newTestService(t, readyOcean())
		_, err := svc.ReceiveScript(context.Background())
		require.Error(t, err)
	})
}

func TestBlindAndSign(t *testing.T) {
	ocean := readyOcean()
	svc := newTestService(t, ocean)

	unblindedIns := []swap.UnblindedInput{{
		Index:         1,
		Asset:         lbtc,
		Amount:        100000,
		AssetBlinder:  strings.Repeat("02", 32),
		AmountBlinder: strings.Repeat("03", 32),
	}}
	blinded, err := svc.BlindTransaction(context.Background(), "pset", unblindedIns)
	require.NoError(t, err)
	require.Equal(t, "blinded:pset", blinded)
	require.True(t, ocean.lastBlind.GetLastBlinder())
	require.Len(t, ocean.lastBlind.GetExtraUnblindedInputs(), 1)
	in := ocean.lastBlind.GetExtraUnblindedInputs()[0]
	require.Equal(t, unblindedIns[0], swap.UnblindedInput{
		Index:         in.GetIndex(),
		Asset:         in.GetAsset(),
		Amount:        in.GetAmount(),
		AssetBlinder:  in.GetAssetBlinder(),
		AmountBlinder: in.GetAmountBlinder(),
	})

	signed, err := svc.SignTransaction(context.Background(), blinded)
	require.NoError(t, err)
	require.Equal(t, "blinded:pset", ocean.lastSign.GetPset())
	require.Equal(t, "signed:blinded:pset", signed)

	_, err = svc.FinalizeAndExtract(context.Background(), signed)
	require.Error(t, err)

	txid, err := svc.BroadcastTransaction(context.Background(), "00")
	require.NoError(t, err)
	require.Len(t, txid, 64)
}
