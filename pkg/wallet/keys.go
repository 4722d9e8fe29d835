package wallet

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/vulpemventures/go-elements/network"
	"github.com/vulpemventures/go-elements/payment"
)

func (w *Wallet) SigningPublicKey() *btcec.PublicKey {
	return w.signingKey.PubKey()
}

// Script returns the P2WPKH output script of the wallet.
func (w *Wallet) Script() []byte {
	return w.payment(nil).WitnessScript
}

// BlindingKeyPair returns the SLIP-77 blinding key pair of the given script.
func (w *Wallet) BlindingKeyPair(script []byte) ([]byte, []byte, error) {
	prvkey, pubkey, err := w.blindingKeys.DeriveKey(script)
	if err != nil {
		return nil, nil, err
	}
	return prvkey.Serialize(), pubkey.SerializeCompressed(), nil
}

// ConfidentialAddress returns the blech32 address of the wallet script for
// the given network.
func (w *Wallet) ConfidentialAddress(net *network.Network) (string, error) {
	if net == nil {
		return "", ErrNullNetwork
	}
	_, blindingPubkey, err := w.blindingKeys.DeriveKey(w.Script())
	if err != nil {
		return "", err
	}
	return payment.FromPublicKey(
		w.signingKey.PubKey(), net, blindingPubkey,
	).ConfidentialWitnessPubKeyHash()
}

// payment returns the P2WPKH payment of the signing key. The network only
// affects the encoding of addresses.
func (w *Wallet) payment(net *network.Network) *payment.Payment {
	if net == nil {
		net = &network.Liquid
	}
	return payment.FromPublicKey(w.signingKey.PubKey(), net, nil)
}
