package dsc

import (
	"dsc/core"

	"github.com/holiman/uint256"
)

const (
	// FeedDecimals decimals of usd price feeds
	FeedDecimals = 8
	// LiquidationThreshold collateral counts for 50%, i.e. 200% overcollateralized
	LiquidationThreshold = 50
	// LiquidationPrecision denominator of threshold and bonus
	LiquidationPrecision = 100
	// LiquidationBonus liquidators get a 10% bonus
	LiquidationBonus = 10
)

var (
	// Precision 1e18
	Precision = uint256.NewInt(1e18)
	// AdditionalFeedPrecision scales 8 decimal feed prices to 18 decimals
	AdditionalFeedPrecision = uint256.NewInt(1e10)
	// MinHealthFactor 1.0
	MinHealthFactor = uint256.NewInt(1e18)
	// MaxHealthFactor health factor of an account without debt
	MaxHealthFactor = new(uint256.Int).SetAllOne()
)

// Params risk parameters
type Params struct {
	LiquidationThreshold uint64
	LiquidationPrecision uint64
	LiquidationBonus     uint64
	MinHealthFactor      *uint256.Int
}

// DefaultParams the protocol reference parameters
func DefaultParams() Params {
	return Params{
		LiquidationThreshold: LiquidationThreshold,
		LiquidationPrecision: LiquidationPrecision,
		LiquidationBonus:     LiquidationBonus,
		MinHealthFactor:      MinHealthFactor.Clone(),
	}
}

// Validate threshold and bonus must be fractions of the precision
func (p Params) Validate() error {
	if p.LiquidationPrecision == 0 ||
		p.LiquidationThreshold == 0 ||
		p.LiquidationThreshold > p.LiquidationPrecision ||
		p.LiquidationBonus > p.LiquidationPrecision ||
		p.MinHealthFactor == nil || p.MinHealthFactor.IsZero() {
		return core.ErrConfigMismatch
	}

	return nil
}
