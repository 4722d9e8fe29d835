package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/tdex-network/tdex-trader/internal/config"
	"github.com/tdex-network/tdex-trader/pkg/mathutil"
	"github.com/tdex-network/tdex-trader/pkg/wallet"
	"github.com/urfave/cli/v2"
)

var walletCmd = cli.Command{
	Name:  "wallet",
	Usage: "manage the single-key wallet funding the trades",
	Subcommands: []*cli.Command{
		&walletInitCmd,
		&walletAddressCmd,
		&walletBalanceCmd,
	},
}

var walletInitCmd = cli.Command{
	Name:  "init",
	Usage: "create a new encrypted wallet, or restore one from its keys",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "signing_key",
			Usage: "hex encoded private key to restore",
		},
		&cli.StringFlag{
			Name:  "blinding_key",
			Usage: "hex encoded SLIP-77 master blinding key to restore",
		},
	},
	Action: walletInitAction,
}

var walletAddressCmd = cli.Command{
	Name:   "address",
	Usage:  "print the confidential address of the wallet",
	Action: walletAddressAction,
}

var walletBalanceCmd = cli.Command{
	Name:   "balance",
	Usage:  "print the balance of the wallet for every asset",
	Action: walletBalanceAction,
}

func walletInitAction(ctx *cli.Context) error {
	if cfg.WalletType != config.WalletTypeSingleKey {
		return fmt.Errorf("wallet is managed by %s", cfg.WalletType)
	}
	if _, err := os.Stat(cfg.WalletFile()); err == nil {
		return fmt.Errorf("wallet already exists at %s", cfg.WalletFile())
	}

	password := walletPassword(ctx)
	if password == "" {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	w, err := newWallet(ctx.String("signing_key"), ctx.String("blinding_key"))
	if err != nil {
		return err
	}
	cypherText, err := w.Encrypt(password)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.WalletFile(), []byte(cypherText), 0600); err != nil {
		return fmt.Errorf("writing wallet file: %w", err)
	}

	addr, err := w.ConfidentialAddress(cfg.Network)
	if err != nil {
		return err
	}
	printJSON(map[string]string{"address": addr})

	return nil
}

func newWallet(signingKey, blindingKey string) (*wallet.Wallet, error) {
	if signingKey == "" && blindingKey == "" {
		return wallet.NewWallet()
	}

	prvkey, err := hex.DecodeString(signingKey)
	if err != nil {
		return nil, fmt.Errorf("invalid signing key: %w", err)
	}
	masterKey, err := hex.DecodeString(blindingKey)
	if err != nil {
		return nil, fmt.Errorf("invalid blinding key: %w", err)
	}
	return wallet.NewWalletFromKeys(prvkey, masterKey)
}

func walletAddressAction(ctx *cli.Context) error {
	if cfg.WalletType != config.WalletTypeSingleKey {
		return fmt.Errorf("wallet is managed by %s", cfg.WalletType)
	}

	w, err := loadWallet(ctx)
	if err != nil {
		return err
	}
	addr, err := w.ConfidentialAddress(cfg.Network)
	if err != nil {
		return err
	}
	printJSON(map[string]string{"address": addr})

	return nil
}

type assetBalance struct {
	Confirmed   string `json:"confirmed"`
	Unconfirmed string `json:"unconfirmed"`
}

func walletBalanceAction(ctx *cli.Context) error {
	if cfg.WalletType != config.WalletTypeSingleKey {
		return fmt.Errorf("wallet is managed by %s", cfg.WalletType)
	}

	svc, err := openSingleKeyWallet(ctx)
	if err != nil {
		return err
	}

	balance, err := svc.Balance(ctx.Context)
	if err != nil {
		return err
	}

	resp := make(map[string]assetBalance, len(balance))
	for asset, b := range balance {
		resp[asset] = assetBalance{
			Confirmed:   mathutil.SatsToUnits(b.Confirmed).String(),
			Unconfirmed: mathutil.SatsToUnits(b.Unconfirmed).String(),
		}
	}
	printJSON(resp)

	return nil
}
