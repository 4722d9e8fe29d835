// Package wallet implements a single-key Liquid wallet: one segwit v0
// script locked by a secp256k1 key, whose outputs are blinded with keys
// derived from a SLIP-77 master blinding key.
package wallet

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/vulpemventures/go-elements/slip77"
)

var (
	// ErrNullSigningKey ...
	ErrNullSigningKey = errors.New("signing key must not be null")
	// ErrNullBlindingMasterKey ...
	ErrNullBlindingMasterKey = errors.New("blinding master key must not be null")
	// ErrInvalidSigningKey ...
	ErrInvalidSigningKey = errors.New("signing key must be a 32 byte array")
	// ErrNullNetwork ...
	ErrNullNetwork = errors.New("network params are null")
	// ErrNullPset ...
	ErrNullPset = errors.New("pset base64 must not be null")
	// ErrInvalidPset ...
	ErrInvalidPset = errors.New("invalid pset format")
	// ErrNullPassphrase ...
	ErrNullPassphrase = errors.New("passphrase must not be null")
	// ErrNullPlainText ...
	ErrNullPlainText = errors.New("text to encrypt must not be null")
	// ErrNullCypherText ...
	ErrNullCypherText = errors.New("cypher to decrypt must not be null")
	// ErrInvalidCypherText ...
	ErrInvalidCypherText = errors.New("cypher must be in base64 format")
	// ErrInvalidPassphrase ...
	ErrInvalidPassphrase = errors.New("invalid passphrase")
	// ErrNothingToSign is returned if no input of the pset is locked by the
	// wallet script.
	ErrNothingToSign = errors.New("pset has no inputs owned by the wallet")
)

// Wallet holds the signing key and the SLIP-77 master blinding key.
type Wallet struct {
	signingKey        *btcec.PrivateKey
	blindingMasterKey []byte
	blindingKeys      *slip77.Slip77
}

// NewWallet generates a new wallet with random keys.
func NewWallet() (*Wallet, error) {
	signingKey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	seed, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	blindingKeys, err := slip77.FromSeed(seed.Serialize())
	if err != nil {
		return nil, err
	}

	return &Wallet{signingKey, blindingKeys.MasterKey, blindingKeys}, nil
}

// NewWalletFromKeys restores a wallet from its signing key and SLIP-77
// master blinding key.
func NewWalletFromKeys(signingKey, blindingMasterKey []byte) (*Wallet, error) {
	if len(signingKey) <= 0 {
		return nil, ErrNullSigningKey
	}
	if len(signingKey) != btcec.PrivKeyBytesLen {
		return nil, ErrInvalidSigningKey
	}
	if len(blindingMasterKey) <= 0 {
		return nil, ErrNullBlindingMasterKey
	}

	blindingKeys, err := slip77.FromMasterKey(blindingMasterKey)
	if err != nil {
		return nil, fmt.Errorf("invalid blinding master key: %w", err)
	}
	prvkey, _ := btcec.PrivKeyFromBytes(signingKey)

	return &Wallet{prvkey, blindingMasterKey, blindingKeys}, nil
}

func (w *Wallet) SigningKey() []byte {
	return w.signingKey.Serialize()
}

func (w *Wallet) BlindingMasterKey() []byte {
	return append([]byte{}, w.blindingMasterKey...)
}

type walletJSON struct {
	SigningKey        string `json:"signing_key"`
	BlindingMasterKey string `json:"blinding_master_key"`
}

// Encrypt serializes the wallet keys and encrypts them with the given
// passphrase.
func (w *Wallet) Encrypt(passphrase string) (string, error) {
	buf, _ := json.Marshal(walletJSON{
		SigningKey:        hex.EncodeToString(w.SigningKey()),
		BlindingMasterKey: hex.EncodeToString(w.blindingMasterKey),
	})
	return encrypt(string(buf), passphrase)
}

// Decrypt restores a wallet encrypted with Encrypt.
func Decrypt(cypherText, passphrase string) (*Wallet, error) {
	plainText, err := decrypt(cypherText, passphrase)
	if err != nil {
		return nil, err
	}

	var keys walletJSON
	if err := json.Unmarshal([]byte(plainText), &keys); err != nil {
		return nil, fmt.Errorf("invalid wallet format: %w", err)
	}
	signingKey, err := hex.DecodeString(keys.SigningKey)
	if err != nil {
		return nil, ErrInvalidSigningKey
	}
	blindingMasterKey, err := hex.DecodeString(keys.BlindingMasterKey)
	if err != nil {
		return nil, fmt.Errorf("invalid blinding master key: %w", err)
	}
	return NewWalletFromKeys(signingKey, blindingMasterKey)
}
