package domain

import (
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"github.com/tdex-network/tdex-trader/pkg/mathutil"
)

// Market is a pair of assets identified by their 32-byte hex ids.
type Market struct {
	BaseAsset  string
	QuoteAsset string
}

// Validate checks whether the current market is well-formed
func (m Market) Validate() error {
	if !isValidAsset(m.BaseAsset) {
		return ErrInvalidBaseAsset
	}
	if !isValidAsset(m.QuoteAsset) {
		return ErrInvalidQuoteAsset
	}
	return nil
}

func (m Market) HasAsset(asset string) bool {
	return asset == m.BaseAsset || asset == m.QuoteAsset
}

// OtherAsset returns the asset of the pair that is not the given one.
func (m Market) OtherAsset(asset string) string {
	if asset == m.BaseAsset {
		return m.QuoteAsset
	}
	return m.BaseAsset
}

func (m Market) String() string {
	return fmt.Sprintf("%s/%s", shortAsset(m.BaseAsset), shortAsset(m.QuoteAsset))
}

// TDEXProvider is a liquidity provider identified by its endpoint.
type TDEXProvider struct {
	Name     string
	Endpoint string
}

// Validate checks that the endpoint is an url with a host. Both clearnet
// (http/https) and onion endpoints are accepted.
func (p TDEXProvider) Validate() error {
	u, err := url.Parse(p.Endpoint)
	if err != nil || u.Host == "" {
		return ErrInvalidProviderEndpoint
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidProviderEndpoint
	}
	return nil
}

// IsOnion returns whether the provider is reachable only through Tor.
func (p TDEXProvider) IsOnion() bool {
	u, err := url.Parse(p.Endpoint)
	if err != nil {
		return false
	}
	return strings.HasSuffix(u.Hostname(), ".onion")
}

// MarketFee is the fee schedule of a market.
type MarketFee struct {
	// Percentage fee expressed in basis points.
	BasisPoint    uint64
	FixedBaseFee  uint64
	FixedQuoteFee uint64
}

// Estimate returns the fee charged by the market for an amount of the
// given asset.
func (f MarketFee) Estimate(m Market, asset string, amount uint64) uint64 {
	fixedFee := f.FixedQuoteFee
	if asset == m.BaseAsset {
		fixedFee = f.FixedBaseFee
	}
	return mathutil.TotalFee(amount, f.BasisPoint, fixedFee)
}

// Balance is the liquidity of a market as observed by the trader.
type Balance struct {
	BaseAmount  uint64
	QuoteAmount uint64
}

// TDEXMarket is a market offered by a provider. Balance is a best effort
// snapshot, it's not authoritative.
type TDEXMarket struct {
	Market
	Provider TDEXProvider
	Balance  *Balance
	Fee      MarketFee
}

func (m TDEXMarket) String() string {
	return fmt.Sprintf("%s@%s", m.Market, m.Provider.Endpoint)
}

func isValidAsset(asset string) bool {
	buf, err := hex.DecodeString(asset)
	return err == nil && len(buf) == 32
}

func shortAsset(asset string) string {
	if len(asset) > 8 {
		return asset[:8]
	}
	return asset
}
