package swap

import (
	"encoding/hex"

	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
	"github.com/vulpemventures/go-elements/confidential"
	"github.com/vulpemventures/go-elements/elementsutil"
	"github.com/vulpemventures/go-elements/pset"
	"github.com/vulpemventures/go-elements/psetv2"
	"github.com/vulpemventures/go-elements/transaction"
)

// swapTx is a format independent view of a swap transaction, exposing only
// what validation needs.
type swapTx struct {
	version Version
	// witness prevouts by input index, nil if the input has none.
	prevouts []*transaction.TxOutput
	outputs  []swapOutput
}

type swapOutput struct {
	out *transaction.TxOutput
	// revealed is true if the cleartext asset and value are known without
	// unblinding.
	revealed bool
	asset    string
	value    uint64
}

func (o swapOutput) script() string {
	return hex.EncodeToString(o.out.Script)
}

func parseSwapTx(tx string) (*swapTx, error) {
	if tx == "" {
		return nil, ErrMissingTransaction
	}
	if ptx, err := pset.NewPsetFromBase64(tx); err == nil {
		return parsePsetV0(ptx), nil
	}
	if ptx, err := psetv2.NewPsetFromBase64(tx); err == nil {
		return parsePsetV2(ptx)
	}
	return nil, ErrInvalidTransaction
}

func parsePsetV0(ptx *pset.Pset) *swapTx {
	prevouts := make([]*transaction.TxOutput, 0, len(ptx.Inputs))
	for _, in := range ptx.Inputs {
		prevouts = append(prevouts, in.WitnessUtxo)
	}

	outputs := make([]swapOutput, 0, len(ptx.UnsignedTx.Outputs))
	for _, out := range ptx.UnsignedTx.Outputs {
		outputs = append(outputs, explicitOrBlinded(out))
	}

	return &swapTx{V1, prevouts, outputs}
}

func parsePsetV2(ptx *psetv2.Pset) (*swapTx, error) {
	utx, err := ptx.UnsignedTx()
	if err != nil {
		return nil, ErrInvalidTransaction
	}

	prevouts := make([]*transaction.TxOutput, 0, len(ptx.Inputs))
	for _, in := range ptx.Inputs {
		prevouts = append(prevouts, in.WitnessUtxo)
	}

	outputs := make([]swapOutput, 0, len(ptx.Outputs))
	for i, out := range ptx.Outputs {
		txOut := utx.Outputs[i]
		// PSETv2 outputs keep explicit asset and amount until they get
		// stripped by the last blinder.
		if len(out.Asset) == 32 {
			outputs = append(outputs, swapOutput{
				out:      txOut,
				revealed: true,
				asset:    elementsutil.TxIDFromBytes(out.Asset),
				value:    out.Value,
			})
			continue
		}
		outputs = append(outputs, explicitOrBlinded(txOut))
	}

	return &swapTx{V2, prevouts, outputs}, nil
}

func explicitOrBlinded(out *transaction.TxOutput) swapOutput {
	if out.IsConfidential() {
		return swapOutput{out: out}
	}
	return swapOutput{
		out:      out,
		revealed: true,
		asset:    bufferutil.AssetHashFromBytes(out.Asset),
		value:    bufferutil.ValueFromBytes(out.Value),
	}
}

type unblindedResult struct {
	asset string
	value uint64
}

func unblindOutput(
	out *transaction.TxOutput, blindKey []byte,
) (*unblindedResult, bool) {
	revealed, err := confidential.UnblindOutputWithKey(out, blindKey)
	if err != nil {
		return nil, false
	}
	return &unblindedResult{
		asset: bufferutil.TxIDFromBytes(revealed.Asset),
		value: revealed.Value,
	}, true
}
