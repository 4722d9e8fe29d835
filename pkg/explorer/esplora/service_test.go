package esplora_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
	"github.com/tdex-network/tdex-trader/pkg/explorer"
	"github.com/tdex-network/tdex-trader/pkg/explorer/esplora"
	"github.com/vulpemventures/go-elements/network"
	"github.com/vulpemventures/go-elements/transaction"
)

const (
	address = "ert1qz5ed0lc9c6pryhjlxqjgsj4vkxdcttmwyy4xr2"
	usdt    = "2dcf5a8834645654911964ec3602426fd3b9b4017554d3f9c19403e7fc1411d3"
)

var lbtc = network.Regtest.AssetID

func TestGetUnspents(t *testing.T) {
	srv := newFakeEsplora(t)
	svc := newService(t, srv)

	tx := srv.addTx(t,
		output{lbtc, 100000}, output{usdt, 2000}, output{lbtc, 300},
	)
	srv.addUnspent(address, tx.TxHash().String(), 0, true)
	srv.addUnspent(address, tx.TxHash().String(), 2, false)

	utxos, err := svc.GetUnspents(context.Background(), address, nil)
	require.NoError(t, err)
	require.Len(t, utxos, 2)

	require.Equal(t, tx.TxHash().String(), utxos[0].Txid)
	require.Equal(t, uint32(0), utxos[0].Index)
	require.Equal(t, lbtc, utxos[0].Asset)
	require.Equal(t, uint64(100000), utxos[0].Value)
	require.True(t, utxos[0].Confirmed)
	require.Equal(t, tx.Outputs[0].Script, utxos[0].Prevout.Script)

	require.Equal(t, uint32(2), utxos[1].Index)
	require.Equal(t, uint64(300), utxos[1].Value)
	require.False(t, utxos[1].Confirmed)

	// The prevout tx is fetched only once.
	require.Equal(t, 1, srv.txHexCalls(tx.TxHash().String()))

	coins, change, err := explorer.SelectUnspents(utxos, 50000, lbtc)
	require.NoError(t, err)
	require.Len(t, coins, 1)
	require.Equal(t, uint64(50000), change)
}

func TestGetUnspentsForAddresses(t *testing.T) {
	srv := newFakeEsplora(t)
	svc := newService(t, srv)

	tx1 := srv.addTx(t, output{lbtc, 1000})
	tx2 := srv.addTx(t, output{usdt, 5000}, output{usdt, 7000})
	srv.addUnspent("addr1", tx1.TxHash().String(), 0, true)
	srv.addUnspent("addr2", tx2.TxHash().String(), 1, true)

	utxos, err := svc.GetUnspentsForAddresses(
		context.Background(), []string{"addr1", "addr2", "addr3"}, nil,
	)
	require.NoError(t, err)
	require.Len(t, utxos, 2)
	require.Equal(t, lbtc, utxos[0].Asset)
	require.Equal(t, usdt, utxos[1].Asset)
	require.Equal(t, uint64(7000), utxos[1].Value)
}

func TestFailingGetUnspents(t *testing.T) {
	srv := newFakeEsplora(t)
	svc := newService(t, srv)

	srv.addUnspent(address, strings.Repeat("ab", 32), 0, true)

	_, err := svc.GetUnspents(context.Background(), address, nil)
	require.ErrorIs(t, err, explorer.ErrNotFound)
}

func TestTransactions(t *testing.T) {
	srv := newFakeEsplora(t)
	svc := newService(t, srv)
	ctx := context.Background()

	tx := srv.addTx(t, output{lbtc, 1000})
	txid := tx.TxHash().String()

	txhex, err := svc.GetTransactionHex(ctx, txid)
	require.NoError(t, err)
	expectedHex, err := tx.ToHex()
	require.NoError(t, err)
	require.Equal(t, expectedHex, txhex)

	confirmed, err := svc.IsTransactionConfirmed(ctx, txid)
	require.NoError(t, err)
	require.False(t, confirmed)

	srv.confirm(txid)
	confirmed, err = svc.IsTransactionConfirmed(ctx, txid)
	require.NoError(t, err)
	require.True(t, confirmed)

	_, err = svc.GetTransactionHex(ctx, strings.Repeat("00", 32))
	require.ErrorIs(t, err, explorer.ErrNotFound)

	newTx := transaction.NewTx(2)
	newTx.AddOutput(newOutput(t, output{usdt, 10}))
	newTxHex, err := newTx.ToHex()
	require.NoError(t, err)

	broadcastedTxid, err := svc.BroadcastTransaction(ctx, newTxHex)
	require.NoError(t, err)
	require.Equal(t, newTx.TxHash().String(), broadcastedTxid)

	_, err = svc.BroadcastTransaction(ctx, "not a tx")
	require.Error(t, err)
	require.NotErrorIs(t, err, explorer.ErrNotFound)
}

func TestNewService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	))
	defer srv.Close()

	svc, err := esplora.NewService(srv.URL, time.Second)
	require.Error(t, err)
	require.Nil(t, svc)
}

func newService(t *testing.T, srv *fakeEsplora) explorer.Service {
	svc, err := esplora.NewService(srv.URL+"/", time.Second)
	require.NoError(t, err)
	return svc
}

type output struct {
	asset string
	value uint64
}

func newOutput(t *testing.T, o output) *transaction.TxOutput {
	asset, err := bufferutil.AssetHashToBytes(o.asset)
	require.NoError(t, err)
	value, err := bufferutil.ValueToBytes(o.value)
	require.NoError(t, err)
	return transaction.NewTxOutput(asset, value, []byte{0x00, 0x14, 0x01})
}

type fakeEsplora struct {
	*httptest.Server

	lock      sync.Mutex
	txs       map[string]string
	confirmed map[string]bool
	unspents  map[string][]map[string]interface{}
	calls     map[string]int
}

func newFakeEsplora(t *testing.T) *fakeEsplora {
	f := &fakeEsplora{
		txs:       make(map[string]string),
		confirmed: make(map[string]bool),
		unspents:  make(map[string][]map[string]interface{}),
		calls:     make(map[string]int),
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeEsplora) addTx(t *testing.T, outs ...output) *transaction.Transaction {
	tx := transaction.NewTx(2)
	for _, o := range outs {
		tx.AddOutput(newOutput(t, o))
	}
	txhex, err := tx.ToHex()
	require.NoError(t, err)

	f.lock.Lock()
	defer f.lock.Unlock()
	f.txs[tx.TxHash().String()] = txhex
	return tx
}

func (f *fakeEsplora) addUnspent(addr, txid string, vout uint32, confirmed bool) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.unspents[addr] = append(f.unspents[addr], map[string]interface{}{
		"txid":   txid,
		"vout":   vout,
		"status": map[string]interface{}{"confirmed": confirmed},
	})
}

func (f *fakeEsplora) confirm(txid string) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.confirmed[txid] = true
}

func (f *fakeEsplora) txHexCalls(txid string) int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.calls[txid]
}

func (f *fakeEsplora) handle(w http.ResponseWriter, r *http.Request) {
	f.lock.Lock()
	defer f.lock.Unlock()

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/blocks/tip/height":
		fmt.Fprint(w, "100")
	case r.Method == http.MethodGet && len(parts) == 3 && parts[0] == "address":
		unspents := f.unspents[parts[1]]
		if unspents == nil {
			unspents = []map[string]interface{}{}
		}
		json.NewEncoder(w).Encode(unspents)
	case r.Method == http.MethodGet && len(parts) == 3 && parts[2] == "hex":
		txhex, ok := f.txs[parts[1]]
		if !ok {
			http.Error(w, "Transaction not found", http.StatusNotFound)
			return
		}
		f.calls[parts[1]]++
		fmt.Fprint(w, txhex)
	case r.Method == http.MethodGet && len(parts) == 3 && parts[2] == "status":
		if _, ok := f.txs[parts[1]]; !ok {
			http.Error(w, "Transaction not found", http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]bool{
			"confirmed": f.confirmed[parts[1]],
		})
	case r.Method == http.MethodPost && r.URL.Path == "/tx":
		body, _ := io.ReadAll(r.Body)
		tx, err := transaction.NewTxFromHex(string(body))
		if err != nil {
			http.Error(w, "sendrawtransaction RPC error: TX decode failed", http.StatusBadRequest)
			return
		}
		f.txs[tx.TxHash().String()] = string(body)
		fmt.Fprint(w, tx.TxHash().String())
	default:
		http.NotFound(w, r)
	}
}
