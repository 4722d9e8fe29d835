package mathutil

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	// BigOne represents a single unit of an asset with precision 8.
	BigOne = uint64(math.Pow10(8))
	// BigOneDecimal is BigOne as decimal.Decimal.
	BigOneDecimal = decimal.NewFromInt(int64(BigOne))
)

// MaxSafeAmount is the largest amount in satoshis accepted by the trade
// engine (2^53 - 1).
const MaxSafeAmount = uint64(1<<53 - 1)

func init() {
	decimal.DivisionPrecision = 8
}

// SatsToUnits converts an amount of satoshis into a fractional amount of an
// asset with precision 8.
func SatsToUnits(amount uint64) decimal.Decimal {
	return toDecimal(amount).Div(BigOneDecimal)
}

// UnitsToSats parses a fractional amount (ie. "0.0001") into satoshis.
func UnitsToSats(amount string) (uint64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("invalid amount %q: must not be negative", amount)
	}
	sats := d.Mul(BigOneDecimal)
	if !sats.Equal(sats.Truncate(0)) {
		return 0, fmt.Errorf("invalid amount %q: too many decimals", amount)
	}
	return sats.BigInt().Uint64(), nil
}
