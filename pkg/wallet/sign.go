package wallet

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/txscript"
	"github.com/vulpemventures/go-elements/pset"
	"github.com/vulpemventures/go-elements/psetv2"
)

// SignTransaction adds the wallet signature to every input of the pset
// locked by the wallet script. Both PSET v0 and PSETv2 are supported, the
// pset is returned in the same format it's given.
func (w *Wallet) SignTransaction(psetBase64 string) (string, error) {
	if len(psetBase64) <= 0 {
		return "", ErrNullPset
	}

	if ptx, err := pset.NewPsetFromBase64(psetBase64); err == nil {
		if err := w.signPsetV0(ptx); err != nil {
			return "", err
		}
		return ptx.ToBase64()
	}

	ptx, err := psetv2.NewPsetFromBase64(psetBase64)
	if err != nil {
		return "", ErrInvalidPset
	}
	if err := w.signPsetV2(ptx); err != nil {
		return "", err
	}
	return ptx.ToBase64()
}

func (w *Wallet) signPsetV0(ptx *pset.Pset) error {
	updater, err := pset.NewUpdater(ptx)
	if err != nil {
		return err
	}

	pay := w.payment(nil)
	signed := 0
	for i, in := range ptx.Inputs {
		if in.WitnessUtxo == nil || !bytes.Equal(in.WitnessUtxo.Script, pay.WitnessScript) {
			continue
		}

		hashForSignature := ptx.UnsignedTx.HashForWitnessV0(
			i, pay.Script, in.WitnessUtxo.Value, txscript.SigHashAll,
		)
		sig, err := w.sign(i, hashForSignature[:], txscript.SigHashAll)
		if err != nil {
			return err
		}

		if _, err := updater.Sign(
			i, sig, w.signingKey.PubKey().SerializeCompressed(), nil, nil,
		); err != nil {
			return err
		}
		signed++
	}

	if signed == 0 {
		return ErrNothingToSign
	}
	return nil
}

func (w *Wallet) signPsetV2(ptx *psetv2.Pset) error {
	signer, err := psetv2.NewSigner(ptx)
	if err != nil {
		return err
	}
	utx, err := ptx.UnsignedTx()
	if err != nil {
		return err
	}

	pay := w.payment(nil)
	signed := 0
	for i, in := range ptx.Inputs {
		prevout := in.GetUtxo()
		if prevout == nil || !bytes.Equal(prevout.Script, pay.WitnessScript) {
			continue
		}

		sighashType := in.SigHashType
		if sighashType == 0 {
			sighashType = txscript.SigHashAll
		}
		hashForSignature := utx.HashForWitnessV0(
			i, pay.Script, prevout.Value, sighashType,
		)
		sig, err := w.sign(i, hashForSignature[:], sighashType)
		if err != nil {
			return err
		}

		if err := signer.SignInput(
			i, sig, w.signingKey.PubKey().SerializeCompressed(), nil, nil,
		); err != nil {
			return err
		}
		signed++
	}

	if signed == 0 {
		return ErrNothingToSign
	}
	return nil
}

// sign returns the DER signature of hash, with the sighash type appended.
func (w *Wallet) sign(
	inIndex int, hash []byte, sighashType txscript.SigHashType,
) ([]byte, error) {
	signature := ecdsa.Sign(w.signingKey, hash)
	if !signature.Verify(hash, w.signingKey.PubKey()) {
		return nil, fmt.Errorf(
			"signature verification failed for input %d", inIndex,
		)
	}
	return append(signature.Serialize(), byte(sighashType)), nil
}
