package views

import "github.com/shopspring/decimal"

// Collateral supported collateral view
type Collateral struct {
	Symbol    string          `json:"symbol"`
	PriceFeed string          `json:"price_feed"`
	Price     decimal.Decimal `json:"price,omitempty"`
	Error     string          `json:"error,omitempty"`
}
