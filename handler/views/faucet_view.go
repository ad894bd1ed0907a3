package views

import "github.com/shopspring/decimal"

// FaucetMint collateral minted by the faucet
type FaucetMint struct {
	Symbol string          `json:"symbol"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}
