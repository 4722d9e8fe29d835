// Package explorer defines the view of the Liquid chain needed by a trader
// wallet: fetching and unblinding the utxos of its addresses, fetching
// transactions and broadcasting new ones.
package explorer

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when the requested resource is unknown to the
	// explorer.
	ErrNotFound = errors.New("explorer: resource not found")
	// ErrUnblind is returned if a confidential utxo can't be revealed with
	// any of the given blinding keys.
	ErrUnblind = errors.New("unable to unblind utxo with provided keys")
	// ErrUnrevealedUtxo is returned by the coin selection when it is given a
	// confidential utxo that was not unblinded before.
	ErrUnrevealedUtxo = errors.New(
		"all confidential utxos must be already unblinded",
	)
	// ErrInsufficientFunds is returned when the utxos do not cover the target
	// amount.
	ErrInsufficientFunds = errors.New(
		"total utxo amount does not cover target amount",
	)
)

// Service is the representation of an explorer that allows to fetch data
// from the blockchain and to broadcast transactions.
type Service interface {
	// GetUnspents fetches and optionally unblinds utxos for the given address.
	GetUnspents(
		ctx context.Context, addr string, blindKeys [][]byte,
	) ([]Utxo, error)
	// GetUnspentsForAddresses fetches and optionally unblinds utxos of the
	// given list of addresses.
	GetUnspentsForAddresses(
		ctx context.Context, addresses []string, blindKeys [][]byte,
	) ([]Utxo, error)
	// GetTransactionHex fetches the transaction in hex format given its hash.
	GetTransactionHex(ctx context.Context, txid string) (string, error)
	// IsTransactionConfirmed returns whether the tx identified by its hash has
	// been included in the blockchain.
	IsTransactionConfirmed(ctx context.Context, txid string) (bool, error)
	// BroadcastTransaction attempts to add the given tx in hex format to the
	// mempool and returns its tx hash.
	BroadcastTransaction(ctx context.Context, txhex string) (string, error)
}
