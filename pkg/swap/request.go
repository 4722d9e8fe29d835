package swap

import (
	"encoding/hex"
	"fmt"

	"github.com/thanhpk/randstr"
	"github.com/vulpemventures/go-elements/pset"
	"github.com/vulpemventures/go-elements/psetv2"
)

// RequestOpts is the struct to be given to the Request method
type RequestOpts struct {
	Id                 string
	AssetToSend        string
	AmountToSend       uint64
	AssetToReceive     string
	AmountToReceive    uint64
	Transaction        string
	InputBlindingKeys  map[string][]byte
	OutputBlindingKeys map[string][]byte
	UnblindedInputs    []UnblindedInput
	FeeAsset           string
	FeeAmount          uint64
}

func (o RequestOpts) validate() (Version, error) {
	if o.AmountToSend == 0 || o.AmountToReceive == 0 {
		return 0, fmt.Errorf("amounts to send and receive must be positive")
	}
	if o.AssetToSend == "" || o.AssetToReceive == "" {
		return 0, fmt.Errorf("assets to send and receive must be defined")
	}
	if o.AssetToSend == o.AssetToReceive {
		return 0, fmt.Errorf("assets to send and receive must be different")
	}

	v, err := TxVersion(o.Transaction)
	if err != nil {
		return 0, err
	}

	switch v {
	case V1:
		err = checkTxAndBlindKeys(
			o.Transaction, o.InputBlindingKeys, o.OutputBlindingKeys,
		)
	case V2:
		if o.FeeAmount > 0 && o.FeeAsset != o.AssetToSend &&
			o.FeeAsset != o.AssetToReceive {
			return 0, fmt.Errorf("fee asset must be one of the swapped assets")
		}
		err = checkTxAndUnblindedIns(o.Transaction, o.UnblindedInputs)
	}
	return v, err
}

func (o RequestOpts) id() string {
	if o.Id != "" {
		return o.Id
	}
	return randstr.Hex(8)
}

// Request builds a SwapRequest and refuses to return it if its own
// transaction does not satisfy the amounts it declares.
func Request(opts RequestOpts) (*SwapRequest, error) {
	v, err := opts.validate()
	if err != nil {
		return nil, err
	}

	msg := &SwapRequest{
		Id: opts.id(),
		// Proposer
		AssetP:  opts.AssetToSend,
		AmountP: opts.AmountToSend,
		// Receiver
		AssetR:  opts.AssetToReceive,
		AmountR: opts.AmountToReceive,

		Transaction: opts.Transaction,
	}
	if v == V1 {
		msg.InputBlindingKeys = opts.InputBlindingKeys
		msg.OutputBlindingKeys = opts.OutputBlindingKeys
	} else {
		msg.UnblindedInputs = opts.UnblindedInputs
		msg.FeeAsset = opts.FeeAsset
		msg.FeeAmount = opts.FeeAmount
	}

	if err := compareMessagesAndTransaction(msg, nil); err != nil {
		return nil, err
	}
	return msg, nil
}

func checkTxAndBlindKeys(
	psetBase64 string, inBlindKeys, outBlindKeys map[string][]byte,
) error {
	ptx, err := pset.NewPsetFromBase64(psetBase64)
	if err != nil {
		return ErrInvalidTransaction
	}

	checkInputKeys := inBlindKeys != nil
	for i, in := range ptx.Inputs {
		if !in.IsSane() {
			return fmt.Errorf("partial input %d is not sane", i)
		}
		if in.WitnessUtxo == nil || !checkInputKeys {
			continue
		}
		script := hex.EncodeToString(in.WitnessUtxo.Script)
		if _, ok := inBlindKeys[script]; !ok {
			return fmt.Errorf("missing blinding key for input %d", i)
		}
	}

	checkOutputKeys := outBlindKeys != nil
	for i, out := range ptx.UnsignedTx.Outputs {
		if len(out.Script) <= 0 || !checkOutputKeys {
			continue
		}
		script := hex.EncodeToString(out.Script)
		if _, ok := outBlindKeys[script]; !ok {
			return fmt.Errorf("missing blinding key for output %d", i)
		}
	}

	return nil
}

func checkTxAndUnblindedIns(
	psetBase64 string, unblindedIns []UnblindedInput,
) error {
	ptx, err := psetv2.NewPsetFromBase64(psetBase64)
	if err != nil {
		return ErrInvalidTransaction
	}

	disclosed := make(map[uint32]struct{})
	for _, in := range unblindedIns {
		if uint64(in.Index) >= ptx.Global.InputCount {
			return fmt.Errorf("unblinded input index %d out of range", in.Index)
		}
		disclosed[in.Index] = struct{}{}
	}

	for i, in := range ptx.Inputs {
		if in.WitnessUtxo == nil || !in.WitnessUtxo.IsConfidential() {
			continue
		}
		if _, ok := disclosed[uint32(i)]; !ok {
			return fmt.Errorf("missing unblinded input for confidential input %d", i)
		}
	}

	return nil
}
