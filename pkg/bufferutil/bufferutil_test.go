package bufferutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
)

const lbtc = "5ac9f65c0efcc4775e0baec4ec03abdde22473cd3cf33c0419ca290e0751b225"

func TestAssetHash(t *testing.T) {
	buf, err := bufferutil.AssetHashToBytes(lbtc)
	require.NoError(t, err)
	require.Len(t, buf, 33)
	require.Equal(t, byte(0x01), buf[0])
	require.Equal(t, byte(0x25), buf[1])
	require.Equal(t, lbtc, bufferutil.AssetHashFromBytes(buf))

	require.Empty(t, bufferutil.AssetHashFromBytes(nil))

	_, err = bufferutil.AssetHashToBytes("0011")
	require.ErrorIs(t, err, bufferutil.ErrInvalidHashLength)
	_, err = bufferutil.AssetHashToBytes("zz")
	require.Error(t, err)
}

func TestValue(t *testing.T) {
	buf, err := bufferutil.ValueToBytes(100000)
	require.NoError(t, err)
	require.Len(t, buf, 9)
	require.Equal(t, uint64(100000), bufferutil.ValueFromBytes(buf))
}

func TestTxIDAndBlinder(t *testing.T) {
	buf, err := bufferutil.TxIDToBytes(lbtc)
	require.NoError(t, err)
	require.Len(t, buf, 32)
	require.Equal(t, lbtc, bufferutil.TxIDFromBytes(buf))

	blinder, err := bufferutil.BlinderToBytes(lbtc)
	require.NoError(t, err)
	require.Equal(t, buf, blinder)
	require.Equal(t, lbtc, bufferutil.BlinderFromBytes(blinder))

	_, err = bufferutil.TxIDToBytes("")
	require.ErrorIs(t, err, bufferutil.ErrInvalidHashLength)
	_, err = bufferutil.BlinderToBytes("00")
	require.ErrorIs(t, err, bufferutil.ErrInvalidHashLength)
}
