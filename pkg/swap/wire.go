package swap

import (
	"fmt"

	tdexv1 "github.com/tdex-network/tdex-trader/api-spec/protobuf/gen/tdex/v1"
	tdexv2 "github.com/tdex-network/tdex-trader/api-spec/protobuf/gen/tdex/v2"
	"google.golang.org/protobuf/proto"
)

// Encode serializes the given message with the protobuf schema of the given
// protocol version. The fee of a V2 request travels in the ProposeTrade
// request, not in the swap message.
func Encode(v Version, msg Message) ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	pb, err := ToProto(v, msg)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(pb)
}

// Decode deserializes a message of the given kind.
func Decode(v Version, kind Kind, buf []byte) (Message, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	pb, err := newProto(v, kind)
	if err != nil {
		return nil, err
	}
	if err := proto.Unmarshal(buf, pb); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", kind, err)
	}
	return FromProto(pb)
}

func DecodeRequest(v Version, buf []byte) (*SwapRequest, error) {
	msg, err := Decode(v, KindRequest, buf)
	if err != nil {
		return nil, err
	}
	return msg.(*SwapRequest), nil
}

func DecodeAccept(v Version, buf []byte) (*SwapAccept, error) {
	msg, err := Decode(v, KindAccept, buf)
	if err != nil {
		return nil, err
	}
	return msg.(*SwapAccept), nil
}

func DecodeComplete(buf []byte) (*SwapComplete, error) {
	msg, err := Decode(V1, KindComplete, buf)
	if err != nil {
		return nil, err
	}
	return msg.(*SwapComplete), nil
}

func DecodeFail(buf []byte) (*SwapFail, error) {
	msg, err := Decode(V1, KindFail, buf)
	if err != nil {
		return nil, err
	}
	return msg.(*SwapFail), nil
}

func newProto(v Version, kind Kind) (proto.Message, error) {
	switch kind {
	case KindRequest:
		if v == V1 {
			return &tdexv1.SwapRequest{}, nil
		}
		return &tdexv2.SwapRequest{}, nil
	case KindAccept:
		if v == V1 {
			return &tdexv1.SwapAccept{}, nil
		}
		return &tdexv2.SwapAccept{}, nil
	case KindComplete:
		return &tdexv1.SwapComplete{}, nil
	case KindFail:
		return &tdexv1.SwapFail{}, nil
	default:
		return nil, ErrUnknownMessageKind
	}
}

// ToProto converts the given message into the generated type of the given
// protocol version.
func ToProto(v Version, msg Message) (proto.Message, error) {
	switch m := msg.(type) {
	case *SwapRequest:
		if v == V1 {
			return &tdexv1.SwapRequest{
				Id:                m.Id,
				AmountP:           m.AmountP,
				AssetP:            m.AssetP,
				AmountR:           m.AmountR,
				AssetR:            m.AssetR,
				Transaction:       m.Transaction,
				InputBlindingKey:  m.InputBlindingKeys,
				OutputBlindingKey: m.OutputBlindingKeys,
			}, nil
		}
		return &tdexv2.SwapRequest{
			Id:              m.Id,
			AmountP:         m.AmountP,
			AssetP:          m.AssetP,
			AmountR:         m.AmountR,
			AssetR:          m.AssetR,
			Transaction:     m.Transaction,
			UnblindedInputs: unblindedInputsToProto(m.UnblindedInputs),
		}, nil
	case *SwapAccept:
		if v == V1 {
			return &tdexv1.SwapAccept{
				Id:                m.Id,
				RequestId:         m.RequestId,
				Transaction:       m.Transaction,
				InputBlindingKey:  m.InputBlindingKeys,
				OutputBlindingKey: m.OutputBlindingKeys,
			}, nil
		}
		return &tdexv2.SwapAccept{
			Id:              m.Id,
			RequestId:       m.RequestId,
			Transaction:     m.Transaction,
			UnblindedInputs: unblindedInputsToProto(m.UnblindedInputs),
		}, nil
	case *SwapComplete:
		if v == V1 {
			return &tdexv1.SwapComplete{
				Id: m.Id, AcceptId: m.AcceptId, Transaction: m.Transaction,
			}, nil
		}
		return &tdexv2.SwapComplete{
			Id: m.Id, AcceptId: m.AcceptId, Transaction: m.Transaction,
		}, nil
	case *SwapFail:
		if v == V1 {
			return &tdexv1.SwapFail{
				Id:             m.Id,
				MessageId:      m.MessageId,
				FailureCode:    m.FailureCode,
				FailureMessage: m.FailureMessage,
			}, nil
		}
		return &tdexv2.SwapFail{
			Id:             m.Id,
			MessageId:      m.MessageId,
			FailureCode:    m.FailureCode,
			FailureMessage: m.FailureMessage,
		}, nil
	default:
		return nil, ErrUnknownMessageKind
	}
}

// FromProto converts a generated swap message of either protocol version.
func FromProto(pb proto.Message) (Message, error) {
	switch m := pb.(type) {
	case *tdexv1.SwapRequest:
		return &SwapRequest{
			Id:                 m.GetId(),
			AmountP:            m.GetAmountP(),
			AssetP:             m.GetAssetP(),
			AmountR:            m.GetAmountR(),
			AssetR:             m.GetAssetR(),
			Transaction:        m.GetTransaction(),
			InputBlindingKeys:  nilIfEmpty(m.GetInputBlindingKey()),
			OutputBlindingKeys: nilIfEmpty(m.GetOutputBlindingKey()),
		}, nil
	case *tdexv2.SwapRequest:
		return &SwapRequest{
			Id:              m.GetId(),
			AmountP:         m.GetAmountP(),
			AssetP:          m.GetAssetP(),
			AmountR:         m.GetAmountR(),
			AssetR:          m.GetAssetR(),
			Transaction:     m.GetTransaction(),
			UnblindedInputs: unblindedInputsFromProto(m.GetUnblindedInputs()),
		}, nil
	case *tdexv1.SwapAccept:
		return &SwapAccept{
			Id:                 m.GetId(),
			RequestId:          m.GetRequestId(),
			Transaction:        m.GetTransaction(),
			InputBlindingKeys:  nilIfEmpty(m.GetInputBlindingKey()),
			OutputBlindingKeys: nilIfEmpty(m.GetOutputBlindingKey()),
		}, nil
	case *tdexv2.SwapAccept:
		return &SwapAccept{
			Id:              m.GetId(),
			RequestId:       m.GetRequestId(),
			Transaction:     m.GetTransaction(),
			UnblindedInputs: unblindedInputsFromProto(m.GetUnblindedInputs()),
		}, nil
	case *tdexv1.SwapComplete:
		return &SwapComplete{
			Id: m.GetId(), AcceptId: m.GetAcceptId(), Transaction: m.GetTransaction(),
		}, nil
	case *tdexv2.SwapComplete:
		return &SwapComplete{
			Id: m.GetId(), AcceptId: m.GetAcceptId(), Transaction: m.GetTransaction(),
		}, nil
	case *tdexv1.SwapFail:
		return &SwapFail{
			Id:             m.GetId(),
			MessageId:      m.GetMessageId(),
			FailureCode:    m.GetFailureCode(),
			FailureMessage: m.GetFailureMessage(),
		}, nil
	case *tdexv2.SwapFail:
		return &SwapFail{
			Id:             m.GetId(),
			MessageId:      m.GetMessageId(),
			FailureCode:    m.GetFailureCode(),
			FailureMessage: m.GetFailureMessage(),
		}, nil
	default:
		return nil, ErrUnknownMessageKind
	}
}

func unblindedInputsToProto(ins []UnblindedInput) []*tdexv2.UnblindedInput {
	if len(ins) <= 0 {
		return nil
	}
	list := make([]*tdexv2.UnblindedInput, 0, len(ins))
	for _, in := range ins {
		list = append(list, &tdexv2.UnblindedInput{
			Index:         in.Index,
			Asset:         in.Asset,
			Amount:        in.Amount,
			AssetBlinder:  in.AssetBlinder,
			AmountBlinder: in.AmountBlinder,
		})
	}
	return list
}

func unblindedInputsFromProto(ins []*tdexv2.UnblindedInput) []UnblindedInput {
	if len(ins) <= 0 {
		return nil
	}
	list := make([]UnblindedInput, 0, len(ins))
	for _, in := range ins {
		list = append(list, UnblindedInput{
			Index:         in.GetIndex(),
			Asset:         in.GetAsset(),
			Amount:        in.GetAmount(),
			AssetBlinder:  in.GetAssetBlinder(),
			AmountBlinder: in.GetAmountBlinder(),
		})
	}
	return list
}

func nilIfEmpty(m map[string][]byte) map[string][]byte {
	if len(m) <= 0 {
		return nil
	}
	return m
}
