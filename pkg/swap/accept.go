package swap

import (
	"fmt"

	"github.com/thanhpk/randstr"
	"github.com/vulpemventures/go-elements/psetv2"
)

// AcceptOpts is the struct given to the Accept method
type AcceptOpts struct {
	Request            *SwapRequest
	Transaction        string
	InputBlindingKeys  map[string][]byte
	OutputBlindingKeys map[string][]byte
	UnblindedInputs    []UnblindedInput
}

func (o AcceptOpts) validate() (Version, error) {
	if o.Request == nil {
		return 0, ErrNilRequest
	}
	v, err := TxVersion(o.Transaction)
	if err != nil {
		return 0, err
	}
	if v == V2 {
		if err := checkUnblindedInsRange(o.Transaction, o.UnblindedInputs); err != nil {
			return 0, err
		}
	}
	return v, nil
}

// Accept builds the SwapAccept for the given request and validates it
// against both the request and the accepted transaction.
func Accept(opts AcceptOpts) (*SwapAccept, error) {
	v, err := opts.validate()
	if err != nil {
		return nil, err
	}

	msg := &SwapAccept{
		Id:          randstr.Hex(8),
		RequestId:   opts.Request.Id,
		Transaction: opts.Transaction,
	}
	if v == V1 {
		msg.InputBlindingKeys = opts.InputBlindingKeys
		msg.OutputBlindingKeys = opts.OutputBlindingKeys
	} else {
		msg.UnblindedInputs = opts.UnblindedInputs
	}

	if err := compareMessagesAndTransaction(opts.Request, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ValidateAccept is used by the proposer to cross-validate a received
// SwapAccept against the SwapRequest it sent, before signing.
func ValidateAccept(request *SwapRequest, accept *SwapAccept) error {
	if accept == nil {
		return ErrNilAccept
	}
	if v, err := TxVersion(accept.Transaction); err == nil && v == V2 {
		if err := checkUnblindedInsRange(
			accept.Transaction, accept.UnblindedInputs,
		); err != nil {
			return err
		}
	}
	return compareMessagesAndTransaction(request, accept)
}

func checkUnblindedInsRange(tx string, ins []UnblindedInput) error {
	ptx, err := psetv2.NewPsetFromBase64(tx)
	if err != nil {
		return ErrInvalidTransaction
	}
	for _, in := range ins {
		if uint64(in.Index) >= ptx.Global.InputCount {
			return fmt.Errorf("unblinded input index %d out of range", in.Index)
		}
	}
	return nil
}
