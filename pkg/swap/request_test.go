package swap

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/go-elements/transaction"
)

func aliceRequestTxV1(t *testing.T, receiveAmount uint64) string {
	return newPsetV0(t,
		[]testInput{{aliceTxid, 1, explicitOut(t, USDT, 40000, aliceScript)}},
		[]*transaction.TxOutput{
			explicitOut(t, LBTC, receiveAmount, aliceScript),
			explicitOut(t, USDT, 10000, aliceScript),
		},
	)
}

func TestRequest(t *testing.T) {
	t.Run("v1", func(t *testing.T) {
		msg, err := Request(RequestOpts{
			AssetToSend:     USDT,
			AmountToSend:    30000,
			AssetToReceive:  LBTC,
			AmountToReceive: 5000,
			Transaction:     aliceRequestTxV1(t, 5000),
		})
		require.NoError(t, err)
		require.NotEmpty(t, msg.Id)
		require.Equal(t, USDT, msg.AssetP)
		require.Equal(t, LBTC, msg.AssetR)
		require.Empty(t, msg.UnblindedInputs)
	})

	t.Run("v2 with fee paid in asset_p", func(t *testing.T) {
		tx := newPsetV2(t,
			[]testInput{{aliceTxid, 1, explicitOut(t, USDT, 40000, aliceScript)}},
			[]testOutput{
				{LBTC, 5000, aliceScript},
				{USDT, 9900, aliceScript},
			},
		)
		msg, err := Request(RequestOpts{
			Id:              "abcd",
			AssetToSend:     USDT,
			AmountToSend:    30000,
			AssetToReceive:  LBTC,
			AmountToReceive: 5000,
			Transaction:     tx,
			FeeAsset:        USDT,
			FeeAmount:       100,
		})
		require.NoError(t, err)
		require.Equal(t, "abcd", msg.Id)
		require.Equal(t, uint64(100), msg.FeeAmount)
	})

	t.Run("v2 with fee paid in asset_r", func(t *testing.T) {
		tx := newPsetV2(t,
			[]testInput{{aliceTxid, 1, explicitOut(t, USDT, 40000, aliceScript)}},
			[]testOutput{
				{LBTC, 4900, aliceScript},
				{USDT, 10000, aliceScript},
			},
		)
		_, err := Request(RequestOpts{
			AssetToSend:     USDT,
			AmountToSend:    30000,
			AssetToReceive:  LBTC,
			AmountToReceive: 5000,
			Transaction:     tx,
			FeeAsset:        LBTC,
			FeeAmount:       100,
		})
		require.NoError(t, err)
	})
}

func TestRequestSolvency(t *testing.T) {
	amounts := []uint64{40001, 50000, 1 << 40}
	for _, amount := range amounts {
		_, err := Request(RequestOpts{
			AssetToSend:     USDT,
			AmountToSend:    amount,
			AssetToReceive:  LBTC,
			AmountToReceive: 5000,
			Transaction:     aliceRequestTxV1(t, 5000),
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "not enough to cover")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	}

	t.Run("v2 fee is part of what must be covered", func(t *testing.T) {
		tx := newPsetV2(t,
			[]testInput{{aliceTxid, 1, explicitOut(t, USDT, 30000, aliceScript)}},
			[]testOutput{{LBTC, 5000, aliceScript}},
		)
		_, err := Request(RequestOpts{
			AssetToSend:     USDT,
			AmountToSend:    30000,
			AssetToReceive:  LBTC,
			AmountToReceive: 5000,
			Transaction:     tx,
			FeeAsset:        USDT,
			FeeAmount:       100,
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "not enough to cover")
	})
}

func TestRequestDelivery(t *testing.T) {
	t.Run("wrong amount", func(t *testing.T) {
		_, err := Request(RequestOpts{
			AssetToSend:     USDT,
			AmountToSend:    30000,
			AssetToReceive:  LBTC,
			AmountToReceive: 5000,
			Transaction:     aliceRequestTxV1(t, 4999),
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "SwapRequest.amount_r or SwapRequest.asset_r")
	})

	t.Run("confidential outputs without blinding keys", func(t *testing.T) {
		tx := newPsetV0(t,
			[]testInput{{aliceTxid, 1, explicitOut(t, USDT, 40000, aliceScript)}},
			[]*transaction.TxOutput{
				confidentialOut(aliceScript),
				confidentialOut(bobScript),
			},
		)
		err := compareMessagesAndTransaction(&SwapRequest{
			AssetP:      USDT,
			AmountP:     30000,
			AssetR:      LBTC,
			AmountR:     5000,
			Transaction: tx,
		}, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "no blinding private key for script")
	})

	t.Run("fee larger than amount to receive", func(t *testing.T) {
		tx := newPsetV2(t,
			[]testInput{{aliceTxid, 1, explicitOut(t, USDT, 40000, aliceScript)}},
			[]testOutput{{LBTC, 5000, aliceScript}},
		)
		_, err := Request(RequestOpts{
			AssetToSend:     USDT,
			AmountToSend:    30000,
			AssetToReceive:  LBTC,
			AmountToReceive: 5000,
			Transaction:     tx,
			FeeAsset:        LBTC,
			FeeAmount:       6000,
		})
		require.ErrorIs(t, err, ErrUnexpectedFeeAmount)
	})
}

func TestRequestInvalidOpts(t *testing.T) {
	tx := aliceRequestTxV1(t, 5000)
	tests := []struct {
		name string
		opts RequestOpts
	}{
		{"zero amount", RequestOpts{
			AssetToSend: USDT, AssetToReceive: LBTC, AmountToReceive: 1, Transaction: tx,
		}},
		{"same assets", RequestOpts{
			AssetToSend: USDT, AmountToSend: 1, AssetToReceive: USDT, AmountToReceive: 1,
			Transaction: tx,
		}},
		{"bad transaction", RequestOpts{
			AssetToSend: USDT, AmountToSend: 1, AssetToReceive: LBTC, AmountToReceive: 1,
			Transaction: "bm90IGEgcHNldA==",
		}},
		{"missing input blinding key", RequestOpts{
			AssetToSend: USDT, AmountToSend: 1, AssetToReceive: LBTC, AmountToReceive: 1,
			Transaction:       tx,
			InputBlindingKeys: map[string][]byte{},
		}},
		{"missing output blinding key", RequestOpts{
			AssetToSend: USDT, AmountToSend: 1, AssetToReceive: LBTC, AmountToReceive: 1,
			Transaction:        tx,
			OutputBlindingKeys: map[string][]byte{scriptHex(bobScript): {0x01}},
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := Request(tt.opts)
			require.Error(t, err)
		})
	}

	t.Run("v2 confidential input not disclosed", func(t *testing.T) {
		tx := newPsetV2(t,
			[]testInput{{aliceTxid, 1, confidentialOut(aliceScript)}},
			[]testOutput{{LBTC, 5000, aliceScript}},
		)
		_, err := Request(RequestOpts{
			AssetToSend: USDT, AmountToSend: 30000,
			AssetToReceive: LBTC, AmountToReceive: 5000,
			Transaction: tx,
		})
		require.EqualError(t, err, "missing unblinded input for confidential input 0")
	})

	t.Run("v2 confidential input disclosed", func(t *testing.T) {
		tx := newPsetV2(t,
			[]testInput{{aliceTxid, 1, confidentialOut(aliceScript)}},
			[]testOutput{{LBTC, 5000, aliceScript}},
		)
		_, err := Request(RequestOpts{
			AssetToSend: USDT, AmountToSend: 30000,
			AssetToReceive: LBTC, AmountToReceive: 5000,
			Transaction: tx,
			UnblindedInputs: []UnblindedInput{
				{Index: 0, Asset: USDT, Amount: 30000},
			},
		})
		require.NoError(t, err)
	})
}
