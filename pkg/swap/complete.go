package swap

import (
	"github.com/thanhpk/randstr"
)

// CompleteOpts is the struct given to the Complete method
type CompleteOpts struct {
	Accept      *SwapAccept
	Transaction string
}

// Complete returns a SwapComplete message linked to the given accept. The
// transaction is expected to be already signed, only its format is checked.
func Complete(opts CompleteOpts) (*SwapComplete, error) {
	if opts.Accept == nil {
		return nil, ErrNilAccept
	}
	if _, err := TxVersion(opts.Transaction); err != nil {
		return nil, err
	}

	return &SwapComplete{
		Id:          randstr.Hex(8),
		AcceptId:    opts.Accept.Id,
		Transaction: opts.Transaction,
	}, nil
}
