package wallet

import (
	"fmt"

	"github.com/vulpemventures/go-elements/pset"
	"github.com/vulpemventures/go-elements/psetv2"
	"github.com/vulpemventures/go-elements/transaction"
)

// FinalizeAndExtract finalizes every input of the given pset, of any
// version, and returns the hex of the extracted raw transaction.
func FinalizeAndExtract(psetBase64 string) (string, error) {
	if len(psetBase64) <= 0 {
		return "", ErrNullPset
	}

	var (
		tx  *transaction.Transaction
		err error
	)
	if ptx, perr := pset.NewPsetFromBase64(psetBase64); perr == nil {
		if err := pset.FinalizeAll(ptx); err != nil {
			return "", fmt.Errorf("failed to finalize signed pset: %w", err)
		}
		tx, err = pset.Extract(ptx)
	} else {
		ptx, perr := psetv2.NewPsetFromBase64(psetBase64)
		if perr != nil {
			return "", ErrInvalidPset
		}
		if err := psetv2.FinalizeAll(ptx); err != nil {
			return "", fmt.Errorf("failed to finalize signed pset: %w", err)
		}
		tx, err = psetv2.Extract(ptx)
	}
	if err != nil {
		return "", fmt.Errorf(
			"failed to extract final tx from finalized pset: %w", err,
		)
	}
	return tx.ToHex()
}
