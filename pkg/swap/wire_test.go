package swap

import (
	"testing"

	"github.com/stretchr/testify/require"
	tdexv2 "github.com/tdex-network/tdex-trader/api-spec/protobuf/gen/tdex/v2"
	"google.golang.org/protobuf/proto"
)

func TestEncodeDecode(t *testing.T) {
	requestV1 := &SwapRequest{
		Id:          "a546bb0c",
		AmountP:     30000,
		AssetP:      USDT,
		AmountR:     5000,
		AssetR:      LBTC,
		Transaction: "cHNldP8=",
		InputBlindingKeys: map[string][]byte{
			scriptHex(aliceScript): {0x01, 0x02},
		},
		OutputBlindingKeys: map[string][]byte{
			scriptHex(aliceScript): {0x03},
			scriptHex(bobScript):   {0x04},
		},
	}
	requestV2 := &SwapRequest{
		Id:          "a546bb0c",
		AmountP:     30000,
		AssetP:      USDT,
		AmountR:     5000,
		AssetR:      LBTC,
		Transaction: "cHNldP8=",
		UnblindedInputs: []UnblindedInput{
			{Index: 0, Asset: USDT, Amount: 20000, AssetBlinder: "aa", AmountBlinder: "bb"},
			{Index: 3, Asset: USDT, Amount: 10000},
		},
	}
	acceptV1 := &SwapAccept{
		Id:                 "b1",
		RequestId:          "a546bb0c",
		Transaction:        "cHNldP8=",
		InputBlindingKeys:  map[string][]byte{scriptHex(bobScript): {0x05}},
		OutputBlindingKeys: map[string][]byte{scriptHex(bobScript): {0x06}},
	}
	acceptV2 := &SwapAccept{
		Id:              "b1",
		RequestId:       "a546bb0c",
		Transaction:     "cHNldP8=",
		UnblindedInputs: []UnblindedInput{{Index: 1, Asset: LBTC, Amount: 8000}},
	}
	complete := &SwapComplete{Id: "c1", AcceptId: "b1", Transaction: "cHNldP8="}
	fail := &SwapFail{Id: "f1", MessageId: "b1", FailureCode: 2, FailureMessage: "swap not completed"}

	tests := []struct {
		version Version
		msg     Message
	}{
		{V1, requestV1},
		{V2, requestV2},
		{V1, acceptV1},
		{V2, acceptV2},
		{V1, complete},
		{V2, complete},
		{V1, fail},
		{V2, fail},
	}

	for _, tt := range tests {
		buf, err := Encode(tt.version, tt.msg)
		require.NoError(t, err)
		got, err := Decode(tt.version, tt.msg.Kind(), buf)
		require.NoError(t, err)
		require.Equal(t, tt.msg, got)
		require.Equal(t, tt.msg.MessageID(), got.MessageID())
	}
}

func TestEncodeVersionFields(t *testing.T) {
	request := &SwapRequest{
		Id:                "a546bb0c",
		InputBlindingKeys: map[string][]byte{"00": {0x01}},
		FeeAsset:          LBTC,
		FeeAmount:         100,
	}

	buf, err := Encode(V2, request)
	require.NoError(t, err)
	got, err := DecodeRequest(V2, buf)
	require.NoError(t, err)
	require.Nil(t, got.InputBlindingKeys)
	require.Empty(t, got.FeeAsset)
	require.Zero(t, got.FeeAmount)

	// The fee travels in the ProposeTrade request.
	pb := &tdexv2.SwapRequest{}
	require.NoError(t, proto.Unmarshal(buf, pb))
	require.Empty(t, pb.ProtoReflect().GetUnknown())
	require.Equal(t, request.Id, pb.GetId())

	buf, err = Encode(V1, request)
	require.NoError(t, err)
	got, err = DecodeRequest(V1, buf)
	require.NoError(t, err)
	require.Empty(t, got.FeeAsset)
	require.Zero(t, got.FeeAmount)
	require.Equal(t, request.InputBlindingKeys, got.InputBlindingKeys)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Encode(Version(3), &SwapFail{})
	require.ErrorIs(t, err, ErrUnknownVersion)

	_, err = Decode(V1, Kind(9), nil)
	require.ErrorIs(t, err, ErrUnknownMessageKind)

	_, err = DecodeFail([]byte{0x0a, 0x10})
	require.Error(t, err)
}
