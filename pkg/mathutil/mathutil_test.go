package mathutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/pkg/mathutil"
)

func TestFees(t *testing.T) {
	withFee, fee := mathutil.PlusFee(100000, 25)
	require.Equal(t, uint64(100250), withFee)
	require.Equal(t, uint64(250), fee)

	withFee, fee = mathutil.LessFee(100000, 25)
	require.Equal(t, uint64(99750), withFee)
	require.Equal(t, uint64(250), fee)

	withFee, _ = mathutil.LessFee(10, 20000)
	require.Zero(t, withFee)

	require.Equal(t, uint64(350), mathutil.TotalFee(100000, 25, 100))
}

func TestUnits(t *testing.T) {
	sats, err := mathutil.UnitsToSats("0.0001")
	require.NoError(t, err)
	require.Equal(t, uint64(10000), sats)

	require.Equal(t, "0.0001", mathutil.SatsToUnits(10000).String())

	_, err = mathutil.UnitsToSats("0.000000001")
	require.Error(t, err)
	_, err = mathutil.UnitsToSats("-1")
	require.Error(t, err)
	_, err = mathutil.UnitsToSats("abc")
	require.Error(t, err)
}
