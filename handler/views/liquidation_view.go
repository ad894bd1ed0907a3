package views

import (
	"dsc/core"
	"dsc/pkg/dsc"
	"dsc/pkg/number"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Liquidation liquidation receipt view
type Liquidation struct {
	Liquidator         string          `json:"liquidator"`
	UserID             string          `json:"user_id"`
	Symbol             string          `json:"symbol"`
	DebtCovered        decimal.Decimal `json:"debt_covered"`
	CollateralSeized   decimal.Decimal `json:"collateral_seized"`
	Bonus              decimal.Decimal `json:"bonus"`
	StartHealthFactor  string          `json:"start_health_factor"`
	EndingHealthFactor string          `json:"ending_health_factor"`
}

// LiquidationView render a liquidation receipt
func LiquidationView(l *core.Liquidation) *Liquidation {
	return &Liquidation{
		Liquidator:         l.Liquidator,
		UserID:             l.UserID,
		Symbol:             l.Symbol,
		DebtCovered:        number.FromWei(l.DebtCovered),
		CollateralSeized:   number.FromWei(l.CollateralSeized),
		Bonus:              number.FromWei(l.Bonus),
		StartHealthFactor:  healthFactor(l.StartHealthFactor),
		EndingHealthFactor: healthFactor(l.EndingHealthFactor),
	}
}

func healthFactor(hf *uint256.Int) string {
	if hf.Eq(dsc.MaxHealthFactor) {
		return ""
	}

	return number.FromWei(hf).String()
}
