package main

import (
	"fmt"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
	"github.com/urfave/cli/v2"
)

var providerCmd = cli.Command{
	Name:  "provider",
	Usage: "manage the known liquidity providers",
	Subcommands: []*cli.Command{
		{
			Name:  "add",
			Usage: "add or update a provider",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "endpoint",
					Usage:    "the url of the provider, ie. https://provider.com:9945",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "name",
					Usage: "a human readable name, defaults to the endpoint",
				},
			},
			Action: addProviderAction,
		},
		{
			Name:   "list",
			Usage:  "list the known providers",
			Action: listProvidersAction,
		},
		{
			Name:      "remove",
			Usage:     "remove a provider",
			ArgsUsage: "<endpoint>",
			Action:    removeProviderAction,
		},
	},
}

func addProviderAction(ctx *cli.Context) error {
	t, err := newTrader(ctx, false)
	if err != nil {
		return err
	}
	defer t.close()

	provider := domain.TDEXProvider{
		Name:     ctx.String("name"),
		Endpoint: ctx.String("endpoint"),
	}
	if err := t.markets.AddProvider(ctx.Context, provider); err != nil {
		return err
	}

	fmt.Printf("provider %s has been added\n", provider.Endpoint)
	return nil
}

type providerInfo struct {
	Name     string `json:"name"`
	Endpoint string `json:"endpoint"`
}

func listProvidersAction(ctx *cli.Context) error {
	t, err := newTrader(ctx, false)
	if err != nil {
		return err
	}
	defer t.close()

	providers, err := t.markets.ListProviders(ctx.Context)
	if err != nil {
		return err
	}

	resp := make([]providerInfo, 0, len(providers))
	for _, p := range providers {
		resp = append(resp, providerInfo{p.Name, p.Endpoint})
	}
	printJSON(resp)

	return nil
}

func removeProviderAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}
	endpoint := ctx.Args().First()

	t, err := newTrader(ctx, false)
	if err != nil {
		return err
	}
	defer t.close()

	if err := t.markets.RemoveProvider(ctx.Context, endpoint); err != nil {
		return err
	}

	fmt.Printf("provider %s has been removed\n", endpoint)
	return nil
}
