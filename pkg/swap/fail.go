package swap

import (
	"github.com/thanhpk/randstr"
)

const (
	ErrCodeInvalidSwapRequest = iota
	ErrCodeRejectedSwapRequest
	ErrCodeFailedToComplete
	ErrCodeInvalidTransaction
	ErrCodeBadPricingSwapRequest
	ErrCodeAborted
	ErrCodeFailedToBroadcast
)

var errMsg = map[int]string{
	ErrCodeInvalidSwapRequest:    "invalid swap request",
	ErrCodeRejectedSwapRequest:   "swap request not accepted",
	ErrCodeFailedToComplete:      "swap not completed",
	ErrCodeInvalidTransaction:    "invalid transaction format",
	ErrCodeBadPricingSwapRequest: "swap request price not accepted",
	ErrCodeAborted:               "aborted by counter-party",
	ErrCodeFailedToBroadcast:     "swap completed but didn't get included in blockchain",
}

// FailureMessage returns the default message for the given failure code.
func FailureMessage(code int) string {
	return errMsg[code]
}

type FailOpts struct {
	MessageID  string
	ErrCode    int
	ErrMessage string
}

func (o FailOpts) message() string {
	if o.ErrMessage != "" {
		return o.ErrMessage
	}
	return errMsg[o.ErrCode]
}

// Fail returns a SwapFail message referring to the given message id.
func Fail(opts FailOpts) *SwapFail {
	return &SwapFail{
		Id:             randstr.Hex(8),
		MessageId:      opts.MessageID,
		FailureCode:    uint32(opts.ErrCode),
		FailureMessage: opts.message(),
	}
}
