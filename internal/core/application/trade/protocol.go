package trade

import (
	"fmt"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/pkg/swap"
	"github.com/tdex-network/tdex-trader/pkg/swaptx"
)

// ProtocolVersion is what differs between the versions of the TDEX swap
// protocol. The state machine of a trade is the same for all of them.
type ProtocolVersion interface {
	Version() swap.Version
	// BuildTransaction returns the proposer side of the swap transaction.
	BuildTransaction(
		utxos []swaptx.Utxo, outputs []swaptx.Output,
		keys swaptx.BlindingKeySource,
	) (*swaptx.Result, error)
	EncodeMessage(msg swap.Message) ([]byte, error)
	DecodeAccept(buf []byte) (*swap.SwapAccept, error)
	DecodeFail(buf []byte) (*swap.SwapFail, error)
	// FeeModel returns how the fee of a preview affects the amounts of the
	// swap transaction.
	FeeModel(preview *domain.Preview) (*FeeModel, error)
	// NeedsBlinding is true if the proposer blinds the transaction before
	// signing it.
	NeedsBlinding() bool
}

// FeeModel contains the amounts to use when building a swap transaction.
// FeeAsset and FeeAmount are empty if the fee is already included in the
// previewed amounts.
type FeeModel struct {
	AmountToSelect  uint64
	AmountToReceive uint64
	FeeAsset        string
	FeeAmount       uint64
}

// NewProtocolVersion returns the implementation of the given version.
func NewProtocolVersion(v swap.Version) (ProtocolVersion, error) {
	switch v {
	case swap.V1:
		return protocolV1{protocol{swap.V1, swaptx.FormatV0}}, nil
	case swap.V2:
		return protocolV2{protocol{swap.V2, swaptx.FormatV2}}, nil
	default:
		return nil, fmt.Errorf("%w: %d", swap.ErrUnknownVersion, int(v))
	}
}

type protocol struct {
	version swap.Version
	format  swaptx.Format
}

func (p protocol) Version() swap.Version {
	return p.version
}

func (p protocol) BuildTransaction(
	utxos []swaptx.Utxo, outputs []swaptx.Output,
	keys swaptx.BlindingKeySource,
) (*swaptx.Result, error) {
	return swaptx.Build(swaptx.BuildOpts{
		Format:       p.format,
		Utxos:        utxos,
		Outputs:      outputs,
		BlindingKeys: keys,
	})
}

func (p protocol) EncodeMessage(msg swap.Message) ([]byte, error) {
	return swap.Encode(p.version, msg)
}

func (p protocol) DecodeAccept(buf []byte) (*swap.SwapAccept, error) {
	return swap.DecodeAccept(p.version, buf)
}

func (p protocol) DecodeFail(buf []byte) (*swap.SwapFail, error) {
	return swap.DecodeFail(buf)
}

// protocolV1 swaps PSET v0 transactions blinded by the provider. Previewed
// amounts already include the fee.
type protocolV1 struct {
	protocol
}

func (protocolV1) FeeModel(preview *domain.Preview) (*FeeModel, error) {
	return &FeeModel{
		AmountToSelect:  preview.AmountToBeSent,
		AmountToReceive: preview.AmountToReceive,
	}, nil
}

func (protocolV1) NeedsBlinding() bool { return false }

// protocolV2 swaps PSETv2 transactions that every party blinds for its own
// outputs. The fee is declared apart: paid on top of the amount sent if in
// the sent asset, subtracted from the amount received otherwise.
type protocolV2 struct {
	protocol
}

func (protocolV2) FeeModel(preview *domain.Preview) (*FeeModel, error) {
	fees := &FeeModel{
		AmountToSelect:  preview.AmountToBeSent,
		AmountToReceive: preview.AmountToReceive,
		FeeAsset:        preview.FeeAsset,
		FeeAmount:       preview.FeeAmount,
	}
	if preview.FeeAmount == 0 {
		return fees, nil
	}

	switch preview.FeeAsset {
	case preview.AssetToBeSent:
		fees.AmountToSelect += preview.FeeAmount
	case preview.AssetToReceive:
		if preview.FeeAmount >= preview.AmountToReceive {
			return nil, swap.ErrUnexpectedFeeAmount
		}
		fees.AmountToReceive -= preview.FeeAmount
	default:
		return nil, fmt.Errorf(
			"fee asset %s is not one of the traded assets", preview.FeeAsset,
		)
	}
	return fees, nil
}

func (protocolV2) NeedsBlinding() bool { return true }
