package dsc

import (
	"dsc/core"

	"github.com/holiman/uint256"
)

// UsdValue usd value (18 decimals) of amount, price in feed precision
//
// value = price * AdditionalFeedPrecision * amount / Precision
func UsdValue(price, amount *uint256.Int) (*uint256.Int, error) {
	scaled, overflow := new(uint256.Int).MulOverflow(price, AdditionalFeedPrecision)
	if overflow {
		return nil, core.ErrArithmetic
	}

	return mulDiv(scaled, amount, Precision)
}

// TokenAmountFromUsd collateral amount worth usd, price in feed precision
//
// amount = usd * Precision / (price * AdditionalFeedPrecision)
func TokenAmountFromUsd(price, usd *uint256.Int) (*uint256.Int, error) {
	scaled, overflow := new(uint256.Int).MulOverflow(price, AdditionalFeedPrecision)
	if overflow {
		return nil, core.ErrArithmetic
	}

	if scaled.IsZero() {
		return nil, core.ErrInvalidPrice
	}

	return mulDiv(usd, Precision, scaled)
}

// CalculateHealthFactor MaxHealthFactor without debt, otherwise
//
// hf = collateralUsd * threshold / liquidationPrecision * Precision / debt
func (p Params) CalculateHealthFactor(debt, collateralUsd *uint256.Int) (*uint256.Int, error) {
	if debt.IsZero() {
		return MaxHealthFactor.Clone(), nil
	}

	adjusted, err := mulDiv(collateralUsd, uint256.NewInt(p.LiquidationThreshold), uint256.NewInt(p.LiquidationPrecision))
	if err != nil {
		return nil, err
	}

	return mulDiv(adjusted, Precision, debt)
}

// IsHealthy health factor at or above the minimum
func (p Params) IsHealthy(healthFactor *uint256.Int) bool {
	return !healthFactor.Lt(p.MinHealthFactor)
}

// Bonus liquidation bonus on top of the seized amount
func (p Params) Bonus(seized *uint256.Int) (*uint256.Int, error) {
	return mulDiv(seized, uint256.NewInt(p.LiquidationBonus), uint256.NewInt(p.LiquidationPrecision))
}

// Add checked add
func Add(x, y *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).AddOverflow(x, y)
	if overflow {
		return nil, core.ErrArithmetic
	}

	return z, nil
}

// Sub checked sub, underflow is an insufficient balance
func Sub(x, y *uint256.Int) (*uint256.Int, error) {
	z, underflow := new(uint256.Int).SubOverflow(x, y)
	if underflow {
		return nil, core.ErrInsufficientBalance
	}

	return z, nil
}

// mulDiv floor(x * y / d) with a 512 bit intermediate
func mulDiv(x, y, d *uint256.Int) (*uint256.Int, error) {
	if d.IsZero() {
		return nil, core.ErrArithmetic
	}

	z, overflow := new(uint256.Int).MulDivOverflow(x, y, d)
	if overflow {
		return nil, core.ErrArithmetic
	}

	return z, nil
}
