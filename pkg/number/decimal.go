package number

import (
	"errors"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Decimals of collateral tokens, the stable token and usd values
const Decimals = 18

var errNegative = errors.New("number: negative value")

// Decimal parse decimal string, zero on error
func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// Ceil round up to precision
func Ceil(d decimal.Decimal, precision int32) decimal.Decimal {
	return d.Shift(precision).Ceil().Shift(-precision)
}

// ToInt scales a human amount to an integer with the given decimals,
// digits beyond the precision are truncated
func ToInt(d decimal.Decimal, decimals int32) (*uint256.Int, error) {
	if d.IsNegative() {
		return nil, errNegative
	}

	v, overflow := uint256.FromBig(d.Shift(decimals).Truncate(0).BigInt())
	if overflow {
		return nil, uint256.ErrBig256Range
	}

	return v, nil
}

// ToWei scales a human amount to 18 decimals
func ToWei(d decimal.Decimal) (*uint256.Int, error) {
	return ToInt(d, Decimals)
}

// ParseWei parse a human amount string and scale it to 18 decimals
func ParseWei(s string) (*uint256.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}

	return ToWei(d)
}

// FromInt integer with decimals to a human amount
func FromInt(v *uint256.Int, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(v.ToBig(), -decimals)
}

// FromWei 18 decimals integer to a human amount
func FromWei(v *uint256.Int) decimal.Decimal {
	return FromInt(v, Decimals)
}
