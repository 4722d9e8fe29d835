package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"
)

const (
	baseAssetStateKey  = "base_asset"
	quoteAssetStateKey = "quote_asset"
)

var configCmd = cli.Command{
	Name:   "config",
	Usage:  "Print the configuration and the local state of the trader",
	Action: configAction,
	Subcommands: []*cli.Command{
		{
			Name:      "set",
			Usage:     "set a <key> <value> in the local state",
			ArgsUsage: "<key> <value>",
			Action:    configSetAction,
		},
	},
}

func configAction(ctx *cli.Context) error {
	state, err := getState()
	if err != nil {
		return err
	}

	all := merge(cfg.Map(), state)
	keys := make([]string, 0, len(all))
	for key := range all {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Println(key + ": " + all[key])
	}

	return nil
}

func configSetAction(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("key and value are missing")
	}

	key := c.Args().Get(0)
	value := c.Args().Get(1)

	err := setState(map[string]string{key: value})
	if err != nil {
		return err
	}

	fmt.Printf("%s %s has been set\n", key, value)

	return nil
}

func getMarketFromState() (string, string, error) {
	state, err := getState()
	if err != nil {
		return "", "", err
	}
	baseAsset, ok := state[baseAssetStateKey]
	if !ok {
		return "", "", errors.New(
			"set base asset with `config set base_asset` or --base_asset",
		)
	}
	quoteAsset, ok := state[quoteAssetStateKey]
	if !ok {
		return "", "", errors.New(
			"set quote asset with `config set quote_asset` or --quote_asset",
		)
	}

	return baseAsset, quoteAsset, nil
}
