package domain

import (
	"fmt"

	"github.com/vulpemventures/go-elements/transaction"
)

const (
	// TradeBuy means the trader receives the base asset.
	TradeBuy TradeType = iota
	// TradeSell means the trader sends the base asset.
	TradeSell
)

type TradeType int

// Validate makes sure that the current trade type is either BUY or SELL
func (t TradeType) Validate() error {
	if t != TradeBuy && t != TradeSell {
		return ErrInvalidTradeType
	}
	return nil
}

func (t TradeType) IsBuy() bool {
	return t == TradeBuy
}

func (t TradeType) IsSell() bool {
	return t == TradeSell
}

func (t TradeType) String() string {
	switch t {
	case TradeBuy:
		return "BUY"
	case TradeSell:
		return "SELL"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(t))
	}
}

// ParseTradeType accepts "buy" or "sell", case insensitive.
func ParseTradeType(str string) (TradeType, error) {
	switch str {
	case "buy", "BUY", "Buy":
		return TradeBuy, nil
	case "sell", "SELL", "Sell":
		return TradeSell, nil
	default:
		return 0, ErrInvalidTradeType
	}
}

// PriceQuote is a single price returned by a provider for a trade preview.
// Amount of Asset is the counter amount of the previewed one.
type PriceQuote struct {
	Amount    uint64
	Asset     string
	FeeAmount uint64
	FeeAsset  string
	BasePrice string
}

// Preview is the outcome of a trade preview from the trader perspective.
type Preview struct {
	AssetToBeSent   string
	AmountToBeSent  uint64
	AssetToReceive  string
	AmountToReceive uint64
	FeeAsset        string
	FeeAmount       uint64
}

// NewPreview resolves which side of the quote the trader sends and which
// one it receives: when buying the trader receives base asset, when selling
// it sends base asset.
func NewPreview(
	market Market, tradeType TradeType, amount uint64, asset string,
	quote PriceQuote,
) *Preview {
	assetToBeSent, amountToBeSent := quote.Asset, quote.Amount
	assetToReceive, amountToReceive := asset, amount

	swapSides := (tradeType.IsBuy() && asset == market.QuoteAsset) ||
		(tradeType.IsSell() && asset == market.BaseAsset)
	if swapSides {
		assetToBeSent, assetToReceive = assetToReceive, assetToBeSent
		amountToBeSent, amountToReceive = amountToReceive, amountToBeSent
	}

	return &Preview{
		AssetToBeSent:   assetToBeSent,
		AmountToBeSent:  amountToBeSent,
		AssetToReceive:  assetToReceive,
		AmountToReceive: amountToReceive,
		FeeAsset:        quote.FeeAsset,
		FeeAmount:       quote.FeeAmount,
	}
}

// ZeroQuote is the quote returned for a zero amount without asking any
// provider: the counter asset with a zero amount.
func ZeroQuote(market Market, asset string) PriceQuote {
	return PriceQuote{Asset: market.OtherAsset(asset)}
}

// Outpoint identifies a transaction output.
type Outpoint struct {
	Txid  string
	Index uint32
}

func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.Txid, o.Index)
}

// Utxo is a wallet output selected for a trade, already unblinded.
type Utxo struct {
	Outpoint
	Prevout      *transaction.TxOutput
	Asset        string
	Value        uint64
	AssetBlinder []byte
	ValueBlinder []byte
}

// ChangeOutput is a leftover amount to be returned to the wallet. Script
// and BlindingKey are optional, the wallet change script is used if empty.
type ChangeOutput struct {
	Asset       string
	Amount      uint64
	Script      []byte
	BlindingKey []byte
}

// CoinSelectionForTrade is owned by the caller and never modified during a
// trade.
type CoinSelectionForTrade struct {
	Utxos         []Utxo
	ChangeOutputs []ChangeOutput
}

// ScriptDetails describes a wallet script and the keys to blind/unblind
// outputs locked by it.
type ScriptDetails struct {
	Script             []byte
	BlindingPrivateKey []byte
	BlindingPublicKey  []byte
	DerivationPath     string
}
