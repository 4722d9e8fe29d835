package trade

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/pkg/swap"
)

const (
	lbtc = "5ac9f65c0efcc4775e0baec4ec03abdde22473cd3cf33c0419ca290e0751b225"
	usdt = "2dcf5a8834645654911964ec3602426fd3b9b4017554d3f9c19403e7fc1411d3"
)

func TestFeeModel(t *testing.T) {
	preview := func(feeAsset string, feeAmount uint64) *domain.Preview {
		return &domain.Preview{
			AssetToBeSent:   usdt,
			AmountToBeSent:  100000,
			AssetToReceive:  lbtc,
			AmountToReceive: 5000,
			FeeAsset:        feeAsset,
			FeeAmount:       feeAmount,
		}
	}

	tests := []struct {
		name     string
		version  swap.Version
		preview  *domain.Preview
		expected FeeModel
	}{
		{
			name:     "v1 ignores fee",
			version:  swap.V1,
			preview:  preview(usdt, 250),
			expected: FeeModel{AmountToSelect: 100000, AmountToReceive: 5000},
		},
		{
			name:    "v2 fee in sent asset",
			version: swap.V2,
			preview: preview(usdt, 250),
			expected: FeeModel{
				AmountToSelect: 100250, AmountToReceive: 5000,
				FeeAsset: usdt, FeeAmount: 250,
			},
		},
		{
			name:    "v2 fee in received asset",
			version: swap.V2,
			preview: preview(lbtc, 10),
			expected: FeeModel{
				AmountToSelect: 100000, AmountToReceive: 4990,
				FeeAsset: lbtc, FeeAmount: 10,
			},
		},
		{
			name:    "v2 without fee",
			version: swap.V2,
			preview: preview("", 0),
			expected: FeeModel{
				AmountToSelect: 100000, AmountToReceive: 5000,
			},
		},
	}

	for _, tt := range tests {
		p, err := NewProtocolVersion(tt.version)
		require.NoError(t, err)
		require.Equal(t, tt.version, p.Version())

		fees, err := p.FeeModel(tt.preview)
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.expected, *fees, tt.name)
	}
}

func TestFailingFeeModel(t *testing.T) {
	p, err := NewProtocolVersion(swap.V2)
	require.NoError(t, err)

	_, err = p.FeeModel(&domain.Preview{
		AssetToBeSent: usdt, AmountToBeSent: 100000,
		AssetToReceive: lbtc, AmountToReceive: 5000,
		FeeAsset: lbtc, FeeAmount: 5000,
	})
	require.ErrorIs(t, err, swap.ErrUnexpectedFeeAmount)

	_, err = p.FeeModel(&domain.Preview{
		AssetToBeSent: usdt, AmountToBeSent: 100000,
		AssetToReceive: lbtc, AmountToReceive: 5000,
		FeeAsset: "unknown", FeeAmount: 1,
	})
	require.Error(t, err)
}

func TestProtocolBlinding(t *testing.T) {
	p1, err := NewProtocolVersion(swap.V1)
	require.NoError(t, err)
	require.False(t, p1.NeedsBlinding())

	p2, err := NewProtocolVersion(swap.V2)
	require.NoError(t, err)
	require.True(t, p2.NeedsBlinding())
}

func TestRetryPolicyWait(t *testing.T) {
	p := RetryPolicy{
		MaxAttempts: 10,
		Backoff:     100 * time.Millisecond,
		MaxBackoff:  time.Second,
	}.withDefaults()

	require.Equal(t, 100*time.Millisecond, p.wait(1))
	require.Equal(t, 200*time.Millisecond, p.wait(2))
	require.Equal(t, 800*time.Millisecond, p.wait(4))
	require.Equal(t, time.Second, p.wait(5))
	require.Equal(t, time.Second, p.wait(9))

	require.Equal(t, DefaultRetryPolicy().MaxAttempts, RetryPolicy{}.withDefaults().MaxAttempts)
}
