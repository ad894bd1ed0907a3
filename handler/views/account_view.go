package views

import (
	"dsc/core"
	"dsc/pkg/number"

	"github.com/shopspring/decimal"
)

// Account account view, amounts in token units
type Account struct {
	UserID             string          `json:"user_id"`
	DebtMinted         decimal.Decimal `json:"debt_minted"`
	CollateralValueUsd decimal.Decimal `json:"collateral_value_usd"`
	// empty when the account has no debt
	HealthFactor string              `json:"health_factor"`
	Healthy      bool                `json:"healthy"`
	Collaterals  []*CollateralAmount `json:"collaterals,omitempty"`
}

// CollateralAmount deposited collateral
type CollateralAmount struct {
	Symbol string          `json:"symbol"`
	Amount decimal.Decimal `json:"amount"`
}

// AccountView render account information
func AccountView(info *core.AccountInformation, minHealthFactor decimal.Decimal) *Account {
	view := &Account{
		UserID:             info.UserID,
		DebtMinted:         number.FromWei(info.DebtMinted),
		CollateralValueUsd: number.FromWei(info.CollateralValueUsd),
		Healthy:            true,
	}

	if view.HealthFactor = healthFactor(info.HealthFactor); view.HealthFactor != "" {
		view.Healthy = !number.FromWei(info.HealthFactor).LessThan(minHealthFactor)
	}

	return view
}
