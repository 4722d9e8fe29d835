package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tdex-network/tdex-trader/pkg/swap"
	"github.com/vulpemventures/go-elements/network"
)

const (
	// DatadirKey is the local data directory to store the internal state of
	// the trader
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// NetworkKey is the Liquid network to trade on: liquid, testnet or regtest
	NetworkKey = "NETWORK"
	// ExplorerURLKey is the base url of the esplora REST API used by the
	// single-key wallet. Defaults to the blockstream one of the network
	ExplorerURLKey = "EXPLORER_URL"
	// ExplorerRequestTimeoutKey is the timeout in seconds of every explorer
	// request
	ExplorerRequestTimeoutKey = "EXPLORER_REQUEST_TIMEOUT"
	// WalletTypeKey selects the wallet funding trades: singlekey or ocean
	WalletTypeKey = "WALLET_TYPE"
	// WalletPasswordKey is the password to decrypt the single-key wallet
	// without being prompted for it
	WalletPasswordKey = "WALLET_PASSWORD"
	// OceanAddrKey is the address <host:port> of the ocean wallet daemon
	OceanAddrKey = "OCEAN_ADDR"
	// OceanAccountKey is the account of the ocean wallet used for trading
	OceanAccountKey = "OCEAN_ACCOUNT"
	// TorProxyKey is the <host:port> of the SOCKS5 proxy of a Tor daemon,
	// required to reach onion providers
	TorProxyKey = "TOR_PROXY"
	// ProtocolVersionKey is the version of the TDEX swap protocol, 1 or 2
	ProtocolVersionKey = "PROTOCOL_VERSION"
	// CompleteMaxAttemptsKey bounds the attempts to complete a trade
	CompleteMaxAttemptsKey = "COMPLETE_MAX_ATTEMPTS"
	// CompleteRetryBackoffKey is the wait in milliseconds before the first
	// retry of a trade completion, doubled at every attempt
	CompleteRetryBackoffKey = "COMPLETE_RETRY_BACKOFF_MS"
	// RPCTimeoutKey is the timeout in seconds of every call to a provider
	RPCTimeoutKey = "RPC_TIMEOUT_SEC"
	// MetricsFileKey is the path of the file where trade metrics are
	// appended after every command. Metrics are not dumped if not set
	MetricsFileKey = "METRICS_FILE"
	// UseGrpcWebKey forces grpc-web for every provider
	UseGrpcWebKey = "USE_GRPC_WEB"

	DbLocation     = "db"
	WalletFilename = "wallet.json"

	WalletTypeSingleKey = "singlekey"
	WalletTypeOcean     = "ocean"
)

var (
	defaultDatadir = btcutil.AppDataDir("tdex-trader", false)

	explorerURLByNetwork = map[string]string{
		network.Liquid.Name:  "https://blockstream.info/liquid/api",
		network.Testnet.Name: "https://blockstream.info/liquidtestnet/api",
		network.Regtest.Name: "http://localhost:3001",
	}
	networkByName = map[string]*network.Network{
		network.Liquid.Name:  &network.Liquid,
		network.Testnet.Name: &network.Testnet,
		network.Regtest.Name: &network.Regtest,
	}
)

// Config is the resolved configuration of the trader.
type Config struct {
	Datadir                string
	LogLevel               log.Level
	Network                *network.Network
	ExplorerURL            string
	ExplorerRequestTimeout time.Duration
	WalletType             string
	WalletPassword         string
	OceanAddr              string
	OceanAccount           string
	TorProxy               string
	ProtocolVersion        swap.Version
	CompleteMaxAttempts    int
	CompleteRetryBackoff   time.Duration
	RPCTimeout             time.Duration
	MetricsFile            string
	UseGrpcWeb             bool
}

func (c *Config) DbDir() string {
	return filepath.Join(c.Datadir, DbLocation)
}

func (c *Config) WalletFile() string {
	return filepath.Join(c.Datadir, WalletFilename)
}

// Map returns the configuration as key/value pairs, with the wallet
// password masked.
func (c *Config) Map() map[string]string {
	password := ""
	if c.WalletPassword != "" {
		password = "********"
	}
	return map[string]string{
		DatadirKey:                c.Datadir,
		LogLevelKey:               c.LogLevel.String(),
		NetworkKey:                c.Network.Name,
		ExplorerURLKey:            c.ExplorerURL,
		ExplorerRequestTimeoutKey: c.ExplorerRequestTimeout.String(),
		WalletTypeKey:             c.WalletType,
		WalletPasswordKey:         password,
		OceanAddrKey:              c.OceanAddr,
		OceanAccountKey:           c.OceanAccount,
		TorProxyKey:               c.TorProxy,
		ProtocolVersionKey:        c.ProtocolVersion.String(),
		CompleteMaxAttemptsKey:    fmt.Sprintf("%d", c.CompleteMaxAttempts),
		CompleteRetryBackoffKey:   c.CompleteRetryBackoff.String(),
		RPCTimeoutKey:             c.RPCTimeout.String(),
		MetricsFileKey:            c.MetricsFile,
		UseGrpcWebKey:             fmt.Sprintf("%t", c.UseGrpcWeb),
	}
}

// LoadConfig reads the configuration from the TDEX_TRADER_* environment
// variables, validates it and creates the datadir if missing.
func LoadConfig() (*Config, error) {
	vip := viper.New()
	vip.SetEnvPrefix("TDEX_TRADER")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, int(log.InfoLevel))
	vip.SetDefault(NetworkKey, network.Liquid.Name)
	vip.SetDefault(ExplorerRequestTimeoutKey, 15)
	vip.SetDefault(WalletTypeKey, WalletTypeSingleKey)
	vip.SetDefault(OceanAddrKey, "localhost:18000")
	vip.SetDefault(CompleteMaxAttemptsKey, 10)
	vip.SetDefault(CompleteRetryBackoffKey, 500)
	vip.SetDefault(RPCTimeoutKey, 15)
	vip.SetDefault(UseGrpcWebKey, false)

	if !vip.IsSet(ProtocolVersionKey) {
		vip.Set(ProtocolVersionKey, int(defaultProtocolVersion(vip)))
	}

	if err := validate(vip); err != nil {
		return nil, fmt.Errorf("error while validating config: %s", err)
	}

	netName := strings.ToLower(vip.GetString(NetworkKey))
	explorerURL := vip.GetString(ExplorerURLKey)
	if explorerURL == "" {
		explorerURL = explorerURLByNetwork[netName]
	}

	explorerTimeout := vip.GetInt(ExplorerRequestTimeoutKey)
	retryBackoff := vip.GetInt(CompleteRetryBackoffKey)
	rpcTimeout := vip.GetInt(RPCTimeoutKey)

	cfg := &Config{
		Datadir:                cleanAndExpandPath(vip.GetString(DatadirKey)),
		LogLevel:               log.Level(vip.GetUint32(LogLevelKey)),
		Network:                networkByName[netName],
		ExplorerURL:            explorerURL,
		ExplorerRequestTimeout: time.Duration(explorerTimeout) * time.Second,
		WalletType:             strings.ToLower(vip.GetString(WalletTypeKey)),
		WalletPassword:         vip.GetString(WalletPasswordKey),
		OceanAddr:              vip.GetString(OceanAddrKey),
		OceanAccount:           vip.GetString(OceanAccountKey),
		TorProxy:               vip.GetString(TorProxyKey),
		ProtocolVersion:        swap.Version(vip.GetInt(ProtocolVersionKey)),
		CompleteMaxAttempts:    vip.GetInt(CompleteMaxAttemptsKey),
		CompleteRetryBackoff:   time.Duration(retryBackoff) * time.Millisecond,
		RPCTimeout:             time.Duration(rpcTimeout) * time.Second,
		MetricsFile:            vip.GetString(MetricsFileKey),
		UseGrpcWeb:             vip.GetBool(UseGrpcWebKey),
	}

	if err := initDatadir(cfg); err != nil {
		return nil, fmt.Errorf("error while creating datadir: %s", err)
	}

	return cfg, nil
}

func validate(vip *viper.Viper) error {
	datadir := vip.GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	if lvl := vip.GetInt(LogLevelKey); lvl < 0 || lvl > int(log.TraceLevel) {
		return fmt.Errorf("%s must be in range [0, %d]", LogLevelKey, log.TraceLevel)
	}

	netName := strings.ToLower(vip.GetString(NetworkKey))
	if _, ok := networkByName[netName]; !ok {
		return fmt.Errorf(
			"%s must be one of liquid, testnet or regtest, got %s",
			NetworkKey, netName,
		)
	}

	walletType := strings.ToLower(vip.GetString(WalletTypeKey))
	switch walletType {
	case WalletTypeSingleKey:
	case WalletTypeOcean:
		if vip.GetString(OceanAddrKey) == "" {
			return fmt.Errorf("missing ocean wallet address")
		}
	default:
		return fmt.Errorf(
			"%s must be either %s or %s", WalletTypeKey,
			WalletTypeSingleKey, WalletTypeOcean,
		)
	}

	version := swap.Version(vip.GetInt(ProtocolVersionKey))
	if err := version.Validate(); err != nil {
		return fmt.Errorf("%s: %s", ProtocolVersionKey, err)
	}
	// Blinding keys never leave the ocean daemon, therefore it can only
	// blind PSETv2. The single-key wallet can't blind at all and relies on
	// the provider doing it, as in v1 swaps.
	if walletType == WalletTypeOcean && version != swap.V2 {
		return fmt.Errorf("ocean wallet supports only protocol v2")
	}
	if walletType == WalletTypeSingleKey && version != swap.V1 {
		return fmt.Errorf("single-key wallet supports only protocol v1")
	}

	if vip.GetInt(CompleteMaxAttemptsKey) <= 0 {
		return fmt.Errorf("%s must be greater than zero", CompleteMaxAttemptsKey)
	}
	if vip.GetInt(CompleteRetryBackoffKey) < 0 {
		return fmt.Errorf("%s must not be negative", CompleteRetryBackoffKey)
	}
	if vip.GetInt(RPCTimeoutKey) < 0 {
		return fmt.Errorf("%s must not be negative", RPCTimeoutKey)
	}
	if vip.GetInt(ExplorerRequestTimeoutKey) <= 0 {
		return fmt.Errorf("%s must be greater than zero", ExplorerRequestTimeoutKey)
	}

	return nil
}

// defaultProtocolVersion is the protocol version supported by the
// configured wallet type.
func defaultProtocolVersion(vip *viper.Viper) swap.Version {
	if strings.ToLower(vip.GetString(WalletTypeKey)) == WalletTypeOcean {
		return swap.V2
	}
	return swap.V1
}

func initDatadir(cfg *Config) error {
	if err := makeDirectoryIfNotExists(cfg.DbDir()); err != nil {
		return err
	}
	if cfg.MetricsFile != "" {
		return makeDirectoryIfNotExists(filepath.Dir(cfg.MetricsFile))
	}
	return nil
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}

// cleanAndExpandPath expands a leading ~ to the home directory of the
// current user.
func cleanAndExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return filepath.Clean(path)
}
