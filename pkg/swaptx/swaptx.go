// Package swaptx builds the proposer side of a swap transaction, either as a
// PSET v0 (protocol v1) or as a PSETv2 (protocol v2).
package swaptx

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/tdex-network/tdex-trader/pkg/bufferutil"
	"github.com/tdex-network/tdex-trader/pkg/swap"
	"github.com/vulpemventures/go-elements/pset"
	"github.com/vulpemventures/go-elements/psetv2"
	"github.com/vulpemventures/go-elements/slip77"
	"github.com/vulpemventures/go-elements/transaction"
)

var (
	ErrNoUtxos          = errors.New("no utxos to spend")
	ErrNoOutputs        = errors.New("no outputs to add")
	ErrUnknownFormat    = errors.New("unknown transaction format")
	ErrMissingPrevout   = errors.New("missing utxo prevout")
	ErrInvalidOutAmount = errors.New("output amount must be positive")
)

// Format is the partial transaction container used for a swap.
type Format int

const (
	FormatV0 Format = iota
	FormatV2
)

func (f Format) String() string {
	switch f {
	case FormatV0:
		return "pset"
	case FormatV2:
		return "psetv2"
	default:
		return "unknown"
	}
}

// FormatForVersion returns the transaction format of a protocol version.
func FormatForVersion(v swap.Version) (Format, error) {
	switch v {
	case swap.V1:
		return FormatV0, nil
	case swap.V2:
		return FormatV2, nil
	default:
		return 0, ErrUnknownFormat
	}
}

// Utxo is a spendable output already revealed by the wallet.
type Utxo struct {
	Txid         string
	Index        uint32
	Prevout      *transaction.TxOutput
	Asset        string
	Value        uint64
	AssetBlinder []byte
	ValueBlinder []byte
}

// Output is an output to be added to the swap transaction. If BlindingKey
// is set the output is marked for blinding with it, otherwise the key is
// derived from the script.
type Output struct {
	Asset       string
	Amount      uint64
	Script      []byte
	BlindingKey []byte
}

// BlindingKeySource derives the blinding key pair of a script.
type BlindingKeySource interface {
	BlindingKeyPair(script []byte) (privkey, pubkey []byte, err error)
}

// Slip77 derives blinding keys from a SLIP-77 master blinding key, so that
// the same script always gets the same key.
type Slip77 struct {
	master *slip77.Slip77
}

func NewSlip77FromMasterKey(masterKey []byte) (*Slip77, error) {
	master, err := slip77.FromMasterKey(masterKey)
	if err != nil {
		return nil, err
	}
	return &Slip77{master}, nil
}

func NewSlip77FromSeed(seed []byte) (*Slip77, error) {
	master, err := slip77.FromSeed(seed)
	if err != nil {
		return nil, err
	}
	return &Slip77{master}, nil
}

func (s *Slip77) BlindingKeyPair(script []byte) ([]byte, []byte, error) {
	privkey, pubkey, err := s.master.DeriveKey(script)
	if err != nil {
		return nil, nil, err
	}
	return privkey.Serialize(), pubkey.SerializeCompressed(), nil
}

// BuildOpts is the struct given to the Build method.
type BuildOpts struct {
	Format       Format
	Utxos        []Utxo
	Outputs      []Output
	BlindingKeys BlindingKeySource
}

func (o BuildOpts) validate() error {
	if o.Format != FormatV0 && o.Format != FormatV2 {
		return ErrUnknownFormat
	}
	if len(o.Utxos) <= 0 {
		return ErrNoUtxos
	}
	if len(o.Outputs) <= 0 {
		return ErrNoOutputs
	}
	for i, u := range o.Utxos {
		if u.Prevout == nil {
			return fmt.Errorf("utxo %d: %w", i, ErrMissingPrevout)
		}
	}
	for i, out := range o.Outputs {
		if out.Amount == 0 {
			return fmt.Errorf("output %d: %w", i, ErrInvalidOutAmount)
		}
	}
	return nil
}

// Result is the partial transaction together with the data the
// counterparty needs to validate it.
type Result struct {
	Format             Format
	Transaction        string
	InputBlindingKeys  map[string][]byte
	OutputBlindingKeys map[string][]byte
	UnblindedInputs    []swap.UnblindedInput
}

// Build returns a partial transaction spending the given utxos and paying
// the given outputs. Blinding keys of all input and output scripts are
// collected as a byproduct.
func Build(opts BuildOpts) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	b := &builder{
		opts:       opts,
		inKeys:     make(map[string][]byte),
		outKeys:    make(map[string][]byte),
		outPubkeys: make([][]byte, len(opts.Outputs)),
	}
	if err := b.deriveKeys(); err != nil {
		return nil, err
	}

	var (
		tx  string
		err error
	)
	if opts.Format == FormatV0 {
		tx, err = b.buildV0()
	} else {
		tx, err = b.buildV2()
	}
	if err != nil {
		return nil, err
	}

	res := &Result{
		Format:      opts.Format,
		Transaction: tx,
	}
	if len(b.inKeys) > 0 {
		res.InputBlindingKeys = b.inKeys
	}
	if len(b.outKeys) > 0 {
		res.OutputBlindingKeys = b.outKeys
	}
	if opts.Format == FormatV2 {
		res.UnblindedInputs = b.unblindedInputs()
	}
	return res, nil
}

type builder struct {
	opts       BuildOpts
	inKeys     map[string][]byte
	outKeys    map[string][]byte
	outPubkeys [][]byte
}

func (b *builder) deriveKeys() error {
	source := b.opts.BlindingKeys
	for _, u := range b.opts.Utxos {
		if source == nil {
			continue
		}
		script := hex.EncodeToString(u.Prevout.Script)
		if _, ok := b.inKeys[script]; ok {
			continue
		}
		privkey, _, err := source.BlindingKeyPair(u.Prevout.Script)
		if err != nil {
			return fmt.Errorf("failed to derive blinding key for input: %w", err)
		}
		if len(privkey) > 0 {
			b.inKeys[script] = privkey
		}
	}

	for i, out := range b.opts.Outputs {
		b.outPubkeys[i] = out.BlindingKey
		if source == nil || len(out.Script) <= 0 {
			continue
		}
		privkey, pubkey, err := source.BlindingKeyPair(out.Script)
		if err != nil {
			return fmt.Errorf("failed to derive blinding key for output: %w", err)
		}
		if len(privkey) > 0 {
			b.outKeys[hex.EncodeToString(out.Script)] = privkey
		}
		if len(b.outPubkeys[i]) <= 0 {
			b.outPubkeys[i] = pubkey
		}
	}
	return nil
}

func (b *builder) buildV0() (string, error) {
	ptx, err := pset.New([]*transaction.TxInput{}, []*transaction.TxOutput{}, 2, 0)
	if err != nil {
		return "", err
	}
	updater, err := pset.NewUpdater(ptx)
	if err != nil {
		return "", err
	}

	for _, u := range b.opts.Utxos {
		hash, err := bufferutil.TxIDToBytes(u.Txid)
		if err != nil {
			return "", fmt.Errorf("invalid utxo txid %s: %w", u.Txid, err)
		}
		updater.AddInput(transaction.NewTxInput(hash, u.Index))
		if err := updater.AddInWitnessUtxo(u.Prevout, len(ptx.Inputs)-1); err != nil {
			return "", err
		}
	}

	for _, out := range b.opts.Outputs {
		asset, err := bufferutil.AssetHashToBytes(out.Asset)
		if err != nil {
			return "", fmt.Errorf("invalid output asset %s: %w", out.Asset, err)
		}
		value, err := bufferutil.ValueToBytes(out.Amount)
		if err != nil {
			return "", err
		}
		updater.AddOutput(transaction.NewTxOutput(asset, value, out.Script))
	}

	return ptx.ToBase64()
}

func (b *builder) buildV2() (string, error) {
	ins := make([]psetv2.InputArgs, 0, len(b.opts.Utxos))
	for _, u := range b.opts.Utxos {
		ins = append(ins, psetv2.InputArgs{
			Txid:    u.Txid,
			TxIndex: u.Index,
		})
	}

	outs := make([]psetv2.OutputArgs, 0, len(b.opts.Outputs))
	for i, out := range b.opts.Outputs {
		outs = append(outs, psetv2.OutputArgs{
			Asset:        out.Asset,
			Amount:       out.Amount,
			Script:       out.Script,
			BlindingKey:  b.outPubkeys[i],
			BlinderIndex: 0,
		})
	}

	ptx, err := psetv2.New(ins, outs, nil)
	if err != nil {
		return "", err
	}
	updater, err := psetv2.NewUpdater(ptx)
	if err != nil {
		return "", err
	}

	for i, u := range b.opts.Utxos {
		if err := updater.AddInWitnessUtxo(i, u.Prevout); err != nil {
			return "", err
		}
		if len(u.Prevout.RangeProof) > 0 {
			if err := updater.AddInUtxoRangeProof(i, u.Prevout.RangeProof); err != nil {
				return "", err
			}
		}
		if err := updater.AddInSighashType(i, txscript.SigHashAll); err != nil {
			return "", err
		}
	}

	return ptx.ToBase64()
}

func (b *builder) unblindedInputs() []swap.UnblindedInput {
	list := make([]swap.UnblindedInput, 0, len(b.opts.Utxos))
	for i, u := range b.opts.Utxos {
		if !u.Prevout.IsConfidential() {
			continue
		}
		list = append(list, swap.UnblindedInput{
			Index:         uint32(i),
			Asset:         u.Asset,
			Amount:        u.Value,
			AssetBlinder:  bufferutil.BlinderFromBytes(u.AssetBlinder),
			AmountBlinder: bufferutil.BlinderFromBytes(u.ValueBlinder),
		})
	}
	return list
}
