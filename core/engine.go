package core

import (
	"context"

	"github.com/holiman/uint256"
)

// IEngine the collateralized debt engine. Every mutating call is atomic and
// non re-entrant; the acting account is passed explicitly.
type IEngine interface {
	DepositCollateral(ctx context.Context, account, symbol string, amount *uint256.Int) error
	DepositCollateralAndMintDsc(ctx context.Context, account, symbol string, collateral, debt *uint256.Int) error
	MintDsc(ctx context.Context, account string, amount *uint256.Int) error
	BurnDsc(ctx context.Context, account string, amount *uint256.Int) error
	RedeemCollateral(ctx context.Context, account, symbol string, amount *uint256.Int) error
	RedeemCollateralForDsc(ctx context.Context, account, symbol string, collateral, debt *uint256.Int) error
	Liquidate(ctx context.Context, caller, symbol, target string, debtToCover *uint256.Int) (*Liquidation, error)

	GetHealthFactor(ctx context.Context, account string) (*uint256.Int, error)
	GetAccountInformation(ctx context.Context, account string) (debtMinted, collateralValueUsd *uint256.Int, err error)
	GetUsdValue(ctx context.Context, symbol string, amount *uint256.Int) (*uint256.Int, error)
	GetTokenAmountFromUsd(ctx context.Context, symbol string, usd *uint256.Int) (*uint256.Int, error)
	GetAccountCollateralValueInUsd(ctx context.Context, account string) (*uint256.Int, error)
	GetCollateralTokens() []string
	GetCollateralBalanceOfUser(ctx context.Context, account, symbol string) *uint256.Int
	GetCollateralTokenPriceFeed(symbol string) PriceFeed
	GetMinHealthFactor() *uint256.Int
	// Account overview including the health factor
	Account(ctx context.Context, account string) (*AccountInformation, error)
	// Accounts every account known to the ledger
	Accounts(ctx context.Context) []string
}
