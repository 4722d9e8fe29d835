package mathutil

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// TenThousands is the basis point denominator.
var TenThousands = uint64(10000)

// PlusFee calculates an amount with a fee added given an amount and a fee
// expressed in basis point (ie. 0.25% = 25).
func PlusFee(amount, feeAsBasisPoint uint64) (withFee, calculatedFee uint64) {
	fee := percentageFee(amount, feeAsBasisPoint)
	withFeeDecimal := toDecimal(amount).Add(fee)
	return withFeeDecimal.BigInt().Uint64(), fee.BigInt().Uint64()
}

// LessFee calculates an amount with a fee subtracted given an amount and a
// fee expressed in basis point. The result is floored at zero.
func LessFee(amount, feeAsBasisPoint uint64) (withFee, calculatedFee uint64) {
	fee := percentageFee(amount, feeAsBasisPoint)
	withFeeDecimal := toDecimal(amount).Sub(fee)
	if withFeeDecimal.IsNegative() {
		return 0, fee.BigInt().Uint64()
	}
	return withFeeDecimal.BigInt().Uint64(), fee.BigInt().Uint64()
}

// TotalFee returns the overall fee charged on amount for a market applying
// both a percentage fee and a fixed one.
func TotalFee(amount, feeAsBasisPoint, fixedFee uint64) uint64 {
	return percentageFee(amount, feeAsBasisPoint).BigInt().Uint64() + fixedFee
}

func percentageFee(amount, feeAsBasisPoint uint64) decimal.Decimal {
	return toDecimal(amount).
		Div(toDecimal(TenThousands)).
		Mul(toDecimal(feeAsBasisPoint))
}

func toDecimal(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}
