package domain

import (
	"errors"
	"fmt"

	"github.com/tdex-network/tdex-trader/pkg/swap"
)

var (
	// ErrInput is the parent of every error caused by an invalid argument
	// given by the caller. These are always returned before any network call.
	ErrInput = errors.New("invalid input")
	// ErrInvalidAmount ...
	ErrInvalidAmount = fmt.Errorf("%w: amount must be a positive satoshi amount", ErrInput)
	// ErrNoUtxoAvailable ...
	ErrNoUtxoAvailable = fmt.Errorf("%w: no utxo available for the trade", ErrInput)
	// ErrInvalidBaseAsset ...
	ErrInvalidBaseAsset = fmt.Errorf(
		"%w: base asset must be a 32-byte array in hex format", ErrInput,
	)
	// ErrInvalidQuoteAsset ...
	ErrInvalidQuoteAsset = fmt.Errorf(
		"%w: quote asset must be a 32-byte array in hex format", ErrInput,
	)
	// ErrInvalidAsset ...
	ErrInvalidAsset = fmt.Errorf("%w: asset must be one of the market assets", ErrInput)
	// ErrInvalidTradeType ...
	ErrInvalidTradeType = fmt.Errorf("%w: trade type must be either BUY or SELL", ErrInput)
	// ErrInvalidProviderEndpoint ...
	ErrInvalidProviderEndpoint = fmt.Errorf(
		"%w: provider endpoint must be a valid url", ErrInput,
	)

	// ErrTransientNotFound is returned by trader clients when the provider
	// does not know yet about a swap it has just accepted. It's the only
	// error that makes the completion of a trade to be retried.
	ErrTransientNotFound = errors.New("swap not found by provider")
	// ErrLiquidityExhausted is returned when every provider failed to quote
	// a price for a trade.
	ErrLiquidityExhausted = errors.New("no provider has liquidity for the trade")
	// ErrEmptyPreview is returned when a provider replies with no price.
	ErrEmptyPreview = errors.New("provider returned an empty preview")
	// ErrProviderNotFound is returned by repositories for unknown endpoints.
	ErrProviderNotFound = errors.New("provider not found")
)

// ValidationError is returned when a swap transaction does not respect the
// amounts and assets declared in the swap messages.
type ValidationError = swap.ValidationError

// CounterpartyFailure is an explicit rejection of the counterparty, carried
// by a SwapFail message.
type CounterpartyFailure struct {
	MessageId string
	Code      uint32
	Message   string
}

func NewCounterpartyFailure(fail *swap.SwapFail) *CounterpartyFailure {
	return &CounterpartyFailure{
		MessageId: fail.MessageId,
		Code:      fail.FailureCode,
		Message:   fail.FailureMessage,
	}
}

func (e *CounterpartyFailure) Error() string {
	return fmt.Sprintf("swap failed with code %d: %s", e.Code, e.Message)
}

// IsInputError returns whether err was caused by an invalid argument.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInput)
}

// IsValidationError returns whether err is a violation of a swap invariant.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
