package swap

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/go-elements/transaction"
)

func aliceRequestV1(t *testing.T) *SwapRequest {
	request, err := Request(RequestOpts{
		AssetToSend:     USDT,
		AmountToSend:    30000,
		AssetToReceive:  LBTC,
		AmountToReceive: 5000,
		Transaction:     aliceRequestTxV1(t, 5000),
	})
	require.NoError(t, err)
	return request
}

func bobAcceptTxV1(
	t *testing.T, bobInput, bobReceive, aliceReceive uint64,
) string {
	return newPsetV0(t,
		[]testInput{
			{aliceTxid, 1, explicitOut(t, USDT, 40000, aliceScript)},
			{bobTxid, 0, explicitOut(t, LBTC, bobInput, bobScript)},
		},
		[]*transaction.TxOutput{
			explicitOut(t, LBTC, aliceReceive, aliceScript),
			explicitOut(t, USDT, 10000, aliceScript),
			explicitOut(t, USDT, bobReceive, bobScript),
			explicitOut(t, LBTC, 3000, bobScript),
		},
	)
}

func TestAccept(t *testing.T) {
	request := aliceRequestV1(t)

	accept, err := Accept(AcceptOpts{
		Request:     request,
		Transaction: bobAcceptTxV1(t, 8000, 30000, 5000),
	})
	require.NoError(t, err)
	require.Equal(t, request.Id, accept.RequestId)
	require.NotEmpty(t, accept.Id)

	require.NoError(t, ValidateAccept(request, accept))
}

func TestAcceptFailures(t *testing.T) {
	request := aliceRequestV1(t)

	tests := []struct {
		name   string
		tx     string
		errMsg string
	}{
		{
			"responder can't cover amount_r",
			bobAcceptTxV1(t, 4000, 30000, 5000),
			"not enough to cover SwapRequest.amount_r",
		},
		{
			"responder does not deliver amount_p",
			bobAcceptTxV1(t, 8000, 29000, 5000),
			"SwapRequest.amount_p or SwapRequest.asset_p",
		},
		{
			"responder tampered proposer output",
			bobAcceptTxV1(t, 8000, 30000, 4000),
			"does not pay SwapRequest.amount_r",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := Accept(AcceptOpts{Request: request, Transaction: tt.tx})
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errMsg)

			err = ValidateAccept(request, &SwapAccept{
				Id:          "accept",
				RequestId:   request.Id,
				Transaction: tt.tx,
			})
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestAcceptPairing(t *testing.T) {
	request := aliceRequestV1(t)
	tx := bobAcceptTxV1(t, 8000, 30000, 5000)

	for _, requestId := range []string{"", "00000000", request.Id + "0"} {
		err := ValidateAccept(request, &SwapAccept{
			Id:          "accept",
			RequestId:   requestId,
			Transaction: tx,
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "id mismatch")
	}
}

func TestAcceptVersionMismatch(t *testing.T) {
	request := aliceRequestV1(t)
	tx := newPsetV2(t,
		[]testInput{{bobTxid, 0, explicitOut(t, LBTC, 8000, bobScript)}},
		[]testOutput{{USDT, 30000, bobScript}},
	)
	err := ValidateAccept(request, &SwapAccept{
		Id: "accept", RequestId: request.Id, Transaction: tx,
	})
	require.ErrorIs(t, err, ErrVersionMismatch)
}

func TestAcceptV2(t *testing.T) {
	requestTx := newPsetV2(t,
		[]testInput{{aliceTxid, 1, confidentialOut(aliceScript)}},
		[]testOutput{
			{LBTC, 4900, aliceScript},
			{USDT, 10000, aliceScript},
		},
	)
	request, err := Request(RequestOpts{
		AssetToSend:     USDT,
		AmountToSend:    30000,
		AssetToReceive:  LBTC,
		AmountToReceive: 5000,
		Transaction:     requestTx,
		UnblindedInputs: []UnblindedInput{{Index: 0, Asset: USDT, Amount: 40000}},
		FeeAsset:        LBTC,
		FeeAmount:       100,
	})
	require.NoError(t, err)

	acceptTx := newPsetV2(t,
		[]testInput{
			{aliceTxid, 1, confidentialOut(aliceScript)},
			{bobTxid, 0, confidentialOut(bobScript)},
		},
		[]testOutput{
			{LBTC, 4900, aliceScript},
			{USDT, 10000, aliceScript},
			{USDT, 30000, bobScript},
			{LBTC, 3100, bobScript},
		},
	)

	t.Run("valid", func(t *testing.T) {
		err := ValidateAccept(request, &SwapAccept{
			Id:              "accept",
			RequestId:       request.Id,
			Transaction:     acceptTx,
			UnblindedInputs: []UnblindedInput{{Index: 1, Asset: LBTC, Amount: 8000}},
		})
		require.NoError(t, err)
	})

	t.Run("responder inputs not disclosed", func(t *testing.T) {
		err := ValidateAccept(request, &SwapAccept{
			Id:          "accept",
			RequestId:   request.Id,
			Transaction: acceptTx,
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "not enough to cover SwapRequest.amount_r")
	})

	t.Run("disclosed index out of range", func(t *testing.T) {
		err := ValidateAccept(request, &SwapAccept{
			Id:              "accept",
			RequestId:       request.Id,
			Transaction:     acceptTx,
			UnblindedInputs: []UnblindedInput{{Index: 2, Asset: LBTC, Amount: 8000}},
		})
		require.EqualError(t, err, "unblinded input index 2 out of range")
	})
}

func TestComplete(t *testing.T) {
	request := aliceRequestV1(t)
	accept, err := Accept(AcceptOpts{
		Request:     request,
		Transaction: bobAcceptTxV1(t, 8000, 30000, 5000),
	})
	require.NoError(t, err)

	complete, err := Complete(CompleteOpts{
		Accept:      accept,
		Transaction: accept.Transaction,
	})
	require.NoError(t, err)
	require.Equal(t, accept.Id, complete.AcceptId)

	_, err = Complete(CompleteOpts{Accept: accept, Transaction: "invalid"})
	require.Error(t, err)
	_, err = Complete(CompleteOpts{Transaction: accept.Transaction})
	require.ErrorIs(t, err, ErrNilAccept)
}

func TestFail(t *testing.T) {
	msg := Fail(FailOpts{MessageID: "a546bb0c", ErrCode: ErrCodeRejectedSwapRequest})
	require.Equal(t, "a546bb0c", msg.MessageId)
	require.Equal(t, uint32(ErrCodeRejectedSwapRequest), msg.FailureCode)
	require.Equal(t, "swap request not accepted", msg.FailureMessage)

	msg = Fail(FailOpts{
		MessageID:  "a546bb0c",
		ErrCode:    ErrCodeInvalidSwapRequest,
		ErrMessage: "cumulative utxos count is not enough to cover SwapRequest.amount_p",
	})
	require.Equal(t,
		"cumulative utxos count is not enough to cover SwapRequest.amount_p",
		msg.FailureMessage,
	)
}
