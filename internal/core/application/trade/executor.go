// Package trade executes trades against a liquidity provider through the
// TDEX swap protocol.
package trade

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/tdex-network/tdex-trader/internal/core/ports"
	"github.com/tdex-network/tdex-trader/pkg/mathutil"
	"github.com/tdex-network/tdex-trader/pkg/swap"
	"github.com/tdex-network/tdex-trader/pkg/swaptx"
	"github.com/vulpemventures/go-elements/transaction"
)

var (
	ErrMissingClient  = errors.New("missing trader client")
	ErrMissingWallet  = errors.New("missing wallet")
	ErrMissingSigner  = errors.New("missing signer")
	ErrMissingBlinder = errors.New("missing blinder, required by protocol v2")
	ErrEmptyReply     = errors.New("provider returned an empty reply")
)

// Config contains the collaborators of an Executor. Blinder is required
// only for providers speaking protocol v2.
type Config struct {
	Wallet   ports.Wallet
	Signer   ports.Signer
	Blinder  ports.Blinder
	Retry    RetryPolicy
	Observer ports.TradeObserver
	// FeeAsset is the asset preferred to pay fees with, if it's one of the
	// traded ones. Defaults to the asset whose amount is fixed by the caller.
	FeeAsset string
}

func (c Config) validate() error {
	if c.Wallet == nil {
		return ErrMissingWallet
	}
	if c.Signer == nil {
		return ErrMissingSigner
	}
	return nil
}

// Executor carries out trades with a single provider.
type Executor struct {
	client   ports.TraderClient
	protocol ProtocolVersion
	cfg      Config
}

func NewExecutor(cfg Config, client ports.TraderClient) (*Executor, error) {
	if client == nil {
		return nil, ErrMissingClient
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	protocol, err := NewProtocolVersion(client.ProtocolVersion())
	if err != nil {
		return nil, err
	}
	if protocol.NeedsBlinding() && cfg.Blinder == nil {
		return nil, ErrMissingBlinder
	}
	cfg.Retry = cfg.Retry.withDefaults()
	if cfg.Observer == nil {
		cfg.Observer = ports.NopTradeObserver{}
	}
	return &Executor{client, protocol, cfg}, nil
}

// Result is the outcome of a trade. TxHex is defined only if the trade did
// not go through the completion step.
type Result struct {
	TradeId string
	Txid    string
	TxHex   string
	Preview *domain.Preview
}

// Preview returns the amounts of a trade without executing it. A zero
// amount is answered without calling the provider.
func (e *Executor) Preview(
	ctx context.Context, market domain.Market, tradeType domain.TradeType,
	amount uint64, asset string,
) (*domain.Preview, error) {
	if err := validateTrade(market, tradeType, asset); err != nil {
		return nil, err
	}
	if amount == 0 {
		return domain.NewPreview(
			market, tradeType, 0, asset, domain.ZeroQuote(market, asset),
		), nil
	}
	if amount > mathutil.MaxSafeAmount {
		return nil, domain.ErrInvalidAmount
	}

	quotes, err := e.client.PreviewTrade(
		ctx, market, tradeType, amount, asset, e.feeAsset(market, asset),
	)
	if err != nil {
		return nil, err
	}
	if len(quotes) <= 0 {
		return nil, domain.ErrEmptyPreview
	}
	return domain.NewPreview(market, tradeType, amount, asset, quotes[0]), nil
}

// Buy receives base asset. The caller fixes the amount of either the base
// or the quote asset of the market.
func (e *Executor) Buy(
	ctx context.Context, market domain.Market, amount uint64, asset string,
) (*Result, error) {
	return e.trade(ctx, market, domain.TradeBuy, amount, asset, true)
}

// Sell sends base asset.
func (e *Executor) Sell(
	ctx context.Context, market domain.Market, amount uint64, asset string,
) (*Result, error) {
	return e.trade(ctx, market, domain.TradeSell, amount, asset, true)
}

// BuyWithoutComplete is like Buy, but it returns the raw transaction if it
// is already fully signed after the wallet signature. The caller is in
// charge of broadcasting it.
func (e *Executor) BuyWithoutComplete(
	ctx context.Context, market domain.Market, amount uint64, asset string,
) (*Result, error) {
	return e.trade(ctx, market, domain.TradeBuy, amount, asset, false)
}

// SellWithoutComplete is like Sell, see BuyWithoutComplete.
func (e *Executor) SellWithoutComplete(
	ctx context.Context, market domain.Market, amount uint64, asset string,
) (*Result, error) {
	return e.trade(ctx, market, domain.TradeSell, amount, asset, false)
}

func (e *Executor) trade(
	ctx context.Context, market domain.Market, tradeType domain.TradeType,
	amount uint64, asset string, mustComplete bool,
) (*Result, error) {
	if err := validateTrade(market, tradeType, asset); err != nil {
		return nil, err
	}
	if amount == 0 || amount > mathutil.MaxSafeAmount {
		return nil, domain.ErrInvalidAmount
	}

	t := &tradeSession{
		Executor:     e,
		id:           uuid.New().String(),
		market:       market,
		tradeType:    tradeType,
		mustComplete: mustComplete,
		startedAt:    time.Now(),
	}
	t.log = log.WithFields(log.Fields{
		"trade_id": t.id,
		"provider": e.client.Provider().Endpoint,
		"market":   market.String(),
		"type":     tradeType.String(),
		"protocol": e.protocol.Version().String(),
	})

	res, err := t.run(ctx, amount, asset)
	if err != nil {
		t.log.WithError(err).Warn("trade failed")
		e.cfg.Observer.TradeFailed(e.client.Provider(), tradeType, err)
		return nil, err
	}

	t.log.WithField("txid", res.Txid).Info("trade completed")
	e.cfg.Observer.TradeCompleted(
		e.client.Provider(), tradeType, time.Since(t.startedAt),
	)
	return res, nil
}

func (e *Executor) feeAsset(market domain.Market, asset string) string {
	if market.HasAsset(e.cfg.FeeAsset) {
		return e.cfg.FeeAsset
	}
	return asset
}

func validateTrade(
	market domain.Market, tradeType domain.TradeType, asset string,
) error {
	if err := market.Validate(); err != nil {
		return err
	}
	if err := tradeType.Validate(); err != nil {
		return err
	}
	if !market.HasAsset(asset) {
		return domain.ErrInvalidAsset
	}
	return nil
}

// tradeSession goes through the steps of a single trade in order.
type tradeSession struct {
	*Executor
	id           string
	market       domain.Market
	tradeType    domain.TradeType
	mustComplete bool
	startedAt    time.Time
	log          *log.Entry
}

func (t *tradeSession) run(
	ctx context.Context, amount uint64, asset string,
) (*Result, error) {
	preview, err := t.Preview(ctx, t.market, t.tradeType, amount, asset)
	if err != nil {
		return nil, fmt.Errorf("failed to preview trade: %w", err)
	}
	fees, err := t.protocol.FeeModel(preview)
	if err != nil {
		return nil, err
	}
	t.log.WithFields(log.Fields{
		"send":    fmt.Sprintf("%d %s", preview.AmountToBeSent, preview.AssetToBeSent),
		"receive": fmt.Sprintf("%d %s", preview.AmountToReceive, preview.AssetToReceive),
		"fee":     fmt.Sprintf("%d %s", preview.FeeAmount, preview.FeeAsset),
	}).Debug("trade previewed")

	request, err := t.propose(ctx, preview, fees)
	if err != nil {
		return nil, err
	}

	accept, err := t.sendRequest(ctx, request, fees)
	if err != nil {
		return nil, err
	}
	// The accept must be verified before the wallet signs anything.
	if err := swap.ValidateAccept(request, accept); err != nil {
		return nil, err
	}
	t.log.WithField("accept_id", accept.Id).Debug("swap accept verified")

	tx := accept.Transaction
	if t.protocol.NeedsBlinding() {
		tx, err = t.cfg.Blinder.BlindTransaction(ctx, tx, accept.UnblindedInputs)
		if err != nil {
			return nil, fmt.Errorf("failed to blind transaction: %w", err)
		}
	}
	signedTx, err := t.cfg.Signer.SignTransaction(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	res := &Result{TradeId: t.id, Preview: preview}

	if !t.mustComplete {
		if txHex, err := t.cfg.Signer.FinalizeAndExtract(ctx, signedTx); err == nil {
			txid, err := txidFromHex(txHex)
			if err != nil {
				return nil, err
			}
			res.Txid, res.TxHex = txid, txHex
			return res, nil
		}
		t.log.Debug("transaction not fully signed, completing with provider")
	}

	complete, err := swap.Complete(swap.CompleteOpts{
		Accept:      accept,
		Transaction: signedTx,
	})
	if err != nil {
		return nil, err
	}
	txid, err := t.complete(ctx, complete)
	if err != nil {
		return nil, err
	}
	res.Txid = txid
	return res, nil
}

// propose builds the swap transaction from the wallet coins and returns
// the request for it. The request is self validated against the
// transaction before being returned.
func (t *tradeSession) propose(
	ctx context.Context, preview *domain.Preview, fees *FeeModel,
) (*swap.SwapRequest, error) {
	coins, err := t.cfg.Wallet.CoinSelectionForTrade(
		ctx, preview.AssetToBeSent, fees.AmountToSelect,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to select coins: %w", err)
	}
	if coins == nil || len(coins.Utxos) <= 0 {
		return nil, domain.ErrNoUtxoAvailable
	}

	outputs, err := t.outputs(ctx, preview, fees, coins.ChangeOutputs)
	if err != nil {
		return nil, err
	}

	built, err := t.protocol.BuildTransaction(
		toSwapTxUtxos(coins.Utxos), outputs, walletKeys{ctx, t.cfg.Wallet},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build swap transaction: %w", err)
	}

	return swap.Request(swap.RequestOpts{
		AssetToSend:        preview.AssetToBeSent,
		AmountToSend:       preview.AmountToBeSent,
		AssetToReceive:     preview.AssetToReceive,
		AmountToReceive:    preview.AmountToReceive,
		Transaction:        built.Transaction,
		InputBlindingKeys:  built.InputBlindingKeys,
		OutputBlindingKeys: built.OutputBlindingKeys,
		UnblindedInputs:    built.UnblindedInputs,
		FeeAsset:           fees.FeeAsset,
		FeeAmount:          fees.FeeAmount,
	})
}

// outputs returns the receive output followed by the change ones.
func (t *tradeSession) outputs(
	ctx context.Context, preview *domain.Preview, fees *FeeModel,
	changes []domain.ChangeOutput,
) ([]swaptx.Output, error) {
	receive, err := t.cfg.Wallet.ReceiveScript(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get receive script: %w", err)
	}

	outputs := []swaptx.Output{{
		Asset:       preview.AssetToReceive,
		Amount:      fees.AmountToReceive,
		Script:      receive.Script,
		BlindingKey: receive.BlindingPublicKey,
	}}
	for _, change := range changes {
		if change.Amount == 0 {
			continue
		}
		out := swaptx.Output{
			Asset:       change.Asset,
			Amount:      change.Amount,
			Script:      change.Script,
			BlindingKey: change.BlindingKey,
		}
		if len(out.Script) <= 0 {
			info, err := t.cfg.Wallet.ChangeScript(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to get change script: %w", err)
			}
			out.Script, out.BlindingKey = info.Script, info.BlindingPublicKey
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

func (t *tradeSession) sendRequest(
	ctx context.Context, request *swap.SwapRequest, fees *FeeModel,
) (*swap.SwapAccept, error) {
	buf, err := t.protocol.EncodeMessage(request)
	if err != nil {
		return nil, err
	}

	reply, err := t.client.ProposeTrade(
		ctx, t.market, t.tradeType, buf, fees.FeeAsset, fees.FeeAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to propose trade: %w", err)
	}
	t.log.WithField("request_id", request.Id).Debug("swap request sent")

	if reply == nil {
		return nil, ErrEmptyReply
	}
	if len(reply.SwapFail) > 0 {
		return nil, t.counterpartyFailure(reply.SwapFail)
	}
	if len(reply.SwapAccept) <= 0 {
		return nil, ErrEmptyReply
	}

	accept, err := t.protocol.DecodeAccept(reply.SwapAccept)
	if err != nil {
		return nil, err
	}
	return accept, nil
}

// complete sends the complete message to the provider, retrying as long
// as the provider does not know about the swap, within the bounds of the
// retry policy and of the context.
func (t *tradeSession) complete(
	ctx context.Context, complete *swap.SwapComplete,
) (string, error) {
	buf, err := t.protocol.EncodeMessage(complete)
	if err != nil {
		return "", err
	}

	policy := t.cfg.Retry
	for attempt := 1; ; attempt++ {
		reply, err := t.client.CompleteTrade(ctx, buf)
		if err == nil {
			if reply == nil {
				return "", ErrEmptyReply
			}
			if len(reply.SwapFail) > 0 {
				return "", t.counterpartyFailure(reply.SwapFail)
			}
			return reply.Txid, nil
		}

		if !errors.Is(err, domain.ErrTransientNotFound) {
			return "", fmt.Errorf("failed to complete trade: %w", err)
		}
		if attempt >= policy.MaxAttempts {
			return "", fmt.Errorf(
				"failed to complete trade after %d attempts: %w", attempt, err,
			)
		}

		wait := policy.wait(attempt)
		t.log.WithError(err).WithField("attempt", attempt).
			Debugf("swap not found by provider, retrying in %s", wait)
		t.cfg.Observer.CompleteRetried(t.client.Provider())

		if err := sleep(ctx, wait); err != nil {
			return "", fmt.Errorf("failed to complete trade: %w", err)
		}
	}
}

func (t *tradeSession) counterpartyFailure(buf []byte) error {
	fail, err := t.protocol.DecodeFail(buf)
	if err != nil {
		return err
	}
	return domain.NewCounterpartyFailure(fail)
}

// walletKeys serves the blinding keys of the wallet scripts.
type walletKeys struct {
	ctx    context.Context
	wallet ports.Wallet
}

func (k walletKeys) BlindingKeyPair(script []byte) ([]byte, []byte, error) {
	info, err := k.wallet.ScriptDetails(k.ctx, script)
	if err != nil {
		return nil, nil, err
	}
	return info.BlindingPrivateKey, info.BlindingPublicKey, nil
}

func toSwapTxUtxos(utxos []domain.Utxo) []swaptx.Utxo {
	list := make([]swaptx.Utxo, 0, len(utxos))
	for _, u := range utxos {
		list = append(list, swaptx.Utxo{
			Txid:         u.Txid,
			Index:        u.Index,
			Prevout:      u.Prevout,
			Asset:        u.Asset,
			Value:        u.Value,
			AssetBlinder: u.AssetBlinder,
			ValueBlinder: u.ValueBlinder,
		})
	}
	return list
}

func txidFromHex(txHex string) (string, error) {
	tx, err := transaction.NewTxFromHex(txHex)
	if err != nil {
		return "", fmt.Errorf("invalid raw transaction: %w", err)
	}
	return tx.TxHash().String(), nil
}
