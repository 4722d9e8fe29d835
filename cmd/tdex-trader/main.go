package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-trader/internal/config"
	"github.com/urfave/cli/v2"
)

const stateFilename = "state.json"

var (
	version = "dev"

	cfg *config.Config

	passwordFlag = &cli.StringFlag{
		Name:  "password",
		Usage: "the password to decrypt the wallet, overrides WALLET_PASSWORD",
	}
)

func main() {
	app := cli.NewApp()

	app.Version = version
	app.Name = "tdex-trader"
	app.Usage = "Command line interface to trade with TDEX liquidity providers"
	app.Flags = []cli.Flag{passwordFlag}
	app.Before = loadConfig
	app.Commands = append(
		app.Commands,
		&configCmd,
		&walletCmd,
		&providerCmd,
		&marketsCmd,
		&discoverCmd,
		&previewCmd,
		&buyCmd,
		&sellCmd,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func loadConfig(_ *cli.Context) error {
	c, err := config.LoadConfig()
	if err != nil {
		return err
	}
	log.SetLevel(c.LogLevel)
	cfg = c
	return nil
}

func statePath() string {
	return filepath.Join(cfg.Datadir, stateFilename)
}

func getState() (map[string]string, error) {
	data := map[string]string{}

	file, err := os.ReadFile(statePath())
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}
	if err := json.Unmarshal(file, &data); err != nil {
		return nil, fmt.Errorf("decoding state file: %w", err)
	}

	return data, nil
}

func setState(data map[string]string) error {
	currentData, err := getState()
	if err != nil {
		return err
	}

	mergedData := merge(currentData, data)

	jsonString, err := json.Marshal(mergedData)
	if err != nil {
		return err
	}
	if err := os.WriteFile(statePath(), jsonString, 0644); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	return nil
}

func merge(maps ...map[string]string) map[string]string {
	merge := make(map[string]string, 0)
	for _, m := range maps {
		for k, v := range m {
			merge[k] = v
		}
	}
	return merge
}

func printJSON(resp interface{}) {
	jsonBytes, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}

	fmt.Println(string(jsonBytes))
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[tdex-trader] %v\n", err)
	}
	os.Exit(1)
}
