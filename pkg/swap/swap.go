// Package swap implements the messages of the TDEX swap protocol, their wire
// encoding and the validation of the transactions they carry.
package swap

import (
	"errors"
	"fmt"

	"github.com/vulpemventures/go-elements/pset"
	"github.com/vulpemventures/go-elements/psetv2"
)

// Version identifies the TDEX protocol version. Messages of both versions
// share the same state machine, they differ only in the transaction format
// and in how confidential inputs are disclosed.
type Version int

const (
	// V1 swaps carry PSET v0 transactions and disclose blinding private keys.
	V1 Version = iota + 1
	// V2 swaps carry PSETv2 transactions and disclose unblinded inputs.
	V2
)

func (v Version) String() string {
	switch v {
	case V1:
		return "v1"
	case V2:
		return "v2"
	default:
		return fmt.Sprintf("unknown(%d)", int(v))
	}
}

func (v Version) Validate() error {
	if v != V1 && v != V2 {
		return ErrUnknownVersion
	}
	return nil
}

var (
	ErrUnknownVersion      = errors.New("unknown protocol version")
	ErrInvalidTransaction  = errors.New("invalid swap transaction format")
	ErrUnknownMessageKind  = errors.New("unknown swap message kind")
	ErrVersionMismatch     = errors.New("swap transactions use different formats")
	ErrMissingTransaction  = errors.New("missing swap transaction")
	ErrNilRequest          = errors.New("missing swap request")
	ErrNilAccept           = errors.New("missing swap accept")
	ErrUnexpectedFeeAmount = errors.New("fee amount exceeds the amount to receive")
)

// ValidationError is returned whenever a swap transaction does not satisfy
// an invariant of the protocol.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErr(format string, a ...interface{}) error {
	return &ValidationError{fmt.Sprintf(format, a...)}
}

// TxVersion returns the protocol version matching the format of the given
// base64 encoded transaction.
func TxVersion(tx string) (Version, error) {
	if tx == "" {
		return 0, ErrMissingTransaction
	}
	if _, err := pset.NewPsetFromBase64(tx); err == nil {
		return V1, nil
	}
	if _, err := psetv2.NewPsetFromBase64(tx); err == nil {
		return V2, nil
	}
	return 0, ErrInvalidTransaction
}

// Kind discriminates the four swap messages.
type Kind int

const (
	KindRequest Kind = iota + 1
	KindAccept
	KindComplete
	KindFail
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "SwapRequest"
	case KindAccept:
		return "SwapAccept"
	case KindComplete:
		return "SwapComplete"
	case KindFail:
		return "SwapFail"
	default:
		return "Unknown"
	}
}

// Message is the tagged union of the swap messages.
type Message interface {
	Kind() Kind
	MessageID() string
}

// UnblindedInput discloses the secrets of a confidential input.
// Blinders are hex encoded in reverse byte order.
type UnblindedInput struct {
	Index         uint32
	Asset         string
	Amount        uint64
	AssetBlinder  string
	AmountBlinder string
}

// SwapRequest is sent by the proposer. P fields are the proposer side, R
// fields the responder side.
type SwapRequest struct {
	Id          string
	AmountP     uint64
	AssetP      string
	AmountR     uint64
	AssetR      string
	Transaction string
	// V1 only, script hex => blinding private key.
	InputBlindingKeys  map[string][]byte
	OutputBlindingKeys map[string][]byte
	// V2 only.
	UnblindedInputs []UnblindedInput
	FeeAsset        string
	FeeAmount       uint64
}

func (*SwapRequest) Kind() Kind          { return KindRequest }
func (m *SwapRequest) MessageID() string { return m.Id }

type SwapAccept struct {
	Id          string
	RequestId   string
	Transaction string
	// V1 only.
	InputBlindingKeys  map[string][]byte
	OutputBlindingKeys map[string][]byte
	// V2 only.
	UnblindedInputs []UnblindedInput
}

func (*SwapAccept) Kind() Kind          { return KindAccept }
func (m *SwapAccept) MessageID() string { return m.Id }

type SwapComplete struct {
	Id          string
	AcceptId    string
	Transaction string
}

func (*SwapComplete) Kind() Kind          { return KindComplete }
func (m *SwapComplete) MessageID() string { return m.Id }

type SwapFail struct {
	Id             string
	MessageId      string
	FailureCode    uint32
	FailureMessage string
}

func (*SwapFail) Kind() Kind          { return KindFail }
func (m *SwapFail) MessageID() string { return m.Id }
