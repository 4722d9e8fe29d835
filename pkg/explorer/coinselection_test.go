package explorer

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
	"github.com/vulpemventures/go-elements/transaction"
)

const (
	lbtc = "5ac9f65c0efcc4775e0baec4ec03abdde22473cd3cf33c0419ca290e0751b225"
	usdt = "2dcf5a8834645654911964ec3602426fd3b9b4017554d3f9c19403e7fc1411d3"
)

func TestBestCombination(t *testing.T) {
	tests := []struct {
		name   string
		items  []uint64
		target uint64
		want   []uint64
	}{
		{
			name:   "single item within ratio",
			items:  []uint64{61, 61, 61, 61, 61, 61, 38, 3, 1, 1, 1},
			target: 6,
			want:   []uint64{38},
		},
		{
			name:   "many small items",
			items:  []uint64{61, 61, 61, 61, 61, 61, 3, 1, 1, 1},
			target: 6,
			want:   []uint64{3, 1, 1, 1},
		},
		{
			name:   "fallback to first greater item",
			items:  []uint64{61, 61},
			target: 6,
			want:   []uint64{61},
		},
		{
			name:   "not enough",
			items:  []uint64{2, 2},
			target: 6,
			want:   []uint64{},
		},
		{
			name:   "exact",
			items:  []uint64{61, 56, 3, 1, 1, 1},
			target: 6,
			want:   []uint64{56},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := make([]uint64, 0)
			for _, i := range bestCombination(tt.items, tt.target) {
				got = append(got, tt.items[i])
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSelectUnspents(t *testing.T) {
	utxos := []Utxo{
		explicitUtxo(t, 0, lbtc, 1000),
		explicitUtxo(t, 1, usdt, 50000),
		explicitUtxo(t, 2, lbtc, 4000),
		explicitUtxo(t, 3, lbtc, 2500),
	}

	t.Run("single coin", func(t *testing.T) {
		coins, change, err := SelectUnspents(utxos, 3000, lbtc)
		require.NoError(t, err)
		require.Len(t, coins, 1)
		require.Equal(t, uint64(4000), coins[0].Value)
		require.Equal(t, uint64(1000), change)
	})

	t.Run("many coins", func(t *testing.T) {
		coins, change, err := SelectUnspents(utxos, 7000, lbtc)
		require.NoError(t, err)
		require.Len(t, coins, 3)
		require.Equal(t, uint64(500), change)
	})

	t.Run("other asset ignored", func(t *testing.T) {
		coins, change, err := SelectUnspents(utxos, 50000, usdt)
		require.NoError(t, err)
		require.Len(t, coins, 1)
		require.Zero(t, change)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		_, _, err := SelectUnspents(utxos, 8000, lbtc)
		require.ErrorIs(t, err, ErrInsufficientFunds)
	})

	t.Run("unrevealed utxo", func(t *testing.T) {
		blinded := NewUtxo(fakeTxid(9), 0, confidentialOut())
		_, _, err := SelectUnspents(append(utxos, blinded), 1000, lbtc)
		require.ErrorIs(t, err, ErrUnrevealedUtxo)
	})
}

func TestUtxo(t *testing.T) {
	u := explicitUtxo(t, 1, lbtc, 1000)
	require.False(t, u.IsConfidential())
	require.True(t, u.IsRevealed())
	require.Equal(t, lbtc, u.Asset)
	require.Equal(t, uint64(1000), u.Value)
	require.NoError(t, u.Unblind(nil))
	require.Equal(t, fmt.Sprintf("%s:1", fakeTxid(1)), u.Key())

	blinded := NewUtxo(fakeTxid(2), 0, confidentialOut())
	require.True(t, blinded.IsConfidential())
	require.False(t, blinded.IsRevealed())
}

func explicitUtxo(t *testing.T, index uint32, asset string, value uint64) Utxo {
	assetBytes, err := bufferutil.AssetHashToBytes(asset)
	require.NoError(t, err)
	valueBytes, err := bufferutil.ValueToBytes(value)
	require.NoError(t, err)
	out := transaction.NewTxOutput(assetBytes, valueBytes, []byte{0x00, 0x14})
	return NewUtxo(fakeTxid(byte(index)), index, out)
}

func confidentialOut() *transaction.TxOutput {
	asset := append([]byte{0x0a}, bytes.Repeat([]byte{2}, 32)...)
	value := append([]byte{0x08}, bytes.Repeat([]byte{3}, 32)...)
	out := transaction.NewTxOutput(asset, value, []byte{0x00, 0x14})
	out.Nonce = append([]byte{0x02}, bytes.Repeat([]byte{4}, 32)...)
	return out
}

func fakeTxid(b byte) string {
	return fmt.Sprintf("%064d", b)
}
