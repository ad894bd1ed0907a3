package engine

import (
	"context"

	"dsc/core"
	"dsc/pkg/dsc"

	"github.com/holiman/uint256"
)

// GetHealthFactor current health factor of account
func (e *Engine) GetHealthFactor(ctx context.Context, account string) (*uint256.Int, error) {
	defer e.guard.view(ctx)()
	return e.healthFactor(ctx, account)
}

// GetAccountInformation minted debt and total collateral value in usd
func (e *Engine) GetAccountInformation(ctx context.Context, account string) (debtMinted, collateralValueUsd *uint256.Int, err error) {
	defer e.guard.view(ctx)()
	return e.accountInformation(ctx, account)
}

// Account overview of account
func (e *Engine) Account(ctx context.Context, account string) (*core.AccountInformation, error) {
	defer e.guard.view(ctx)()

	debt, usd, err := e.accountInformation(ctx, account)
	if err != nil {
		return nil, err
	}

	hf, err := e.params.CalculateHealthFactor(debt, usd)
	if err != nil {
		return nil, err
	}

	return &core.AccountInformation{
		UserID:             account,
		DebtMinted:         debt,
		CollateralValueUsd: usd,
		HealthFactor:       hf,
	}, nil
}

// GetUsdValue usd value of amount of symbol
func (e *Engine) GetUsdValue(ctx context.Context, symbol string, amount *uint256.Int) (*uint256.Int, error) {
	return e.usdValue(ctx, symbol, amount)
}

// GetTokenAmountFromUsd amount of symbol worth usd
func (e *Engine) GetTokenAmountFromUsd(ctx context.Context, symbol string, usd *uint256.Int) (*uint256.Int, error) {
	return e.tokenAmountFromUsd(ctx, symbol, usd)
}

// GetAccountCollateralValueInUsd total collateral value of account
func (e *Engine) GetAccountCollateralValueInUsd(ctx context.Context, account string) (*uint256.Int, error) {
	defer e.guard.view(ctx)()
	return e.collateralValueUsd(ctx, account)
}

// GetCollateralTokens supported collateral symbols in registration order
func (e *Engine) GetCollateralTokens() []string {
	return append([]string(nil), e.symbols...)
}

// GetCollateralBalanceOfUser deposited amount of symbol
func (e *Engine) GetCollateralBalanceOfUser(ctx context.Context, account, symbol string) *uint256.Int {
	defer e.guard.view(ctx)()
	return e.ledger.Collateral(account, symbol)
}

// GetDscMinted debt of account, never priced
func (e *Engine) GetDscMinted(ctx context.Context, account string) *uint256.Int {
	defer e.guard.view(ctx)()
	return e.ledger.Debt(account)
}

// GetCollateralTokenPriceFeed price feed of symbol, nil if not supported
func (e *Engine) GetCollateralTokenPriceFeed(symbol string) core.PriceFeed {
	return e.feeds[symbol]
}

// Accounts every account known to the ledger, sorted
func (e *Engine) Accounts(ctx context.Context) []string {
	defer e.guard.view(ctx)()
	return e.ledger.Accounts()
}

// CalculateHealthFactor health factor of debt against collateralUsd
func (e *Engine) CalculateHealthFactor(debt, collateralUsd *uint256.Int) (*uint256.Int, error) {
	return e.params.CalculateHealthFactor(debt, collateralUsd)
}

// GetPrecision 1e18
func (e *Engine) GetPrecision() *uint256.Int {
	return dsc.Precision.Clone()
}

// GetAdditionalFeedPrecision 1e10
func (e *Engine) GetAdditionalFeedPrecision() *uint256.Int {
	return dsc.AdditionalFeedPrecision.Clone()
}

func (e *Engine) GetLiquidationThreshold() uint64 {
	return e.params.LiquidationThreshold
}

func (e *Engine) GetLiquidationBonus() uint64 {
	return e.params.LiquidationBonus
}

func (e *Engine) GetLiquidationPrecision() uint64 {
	return e.params.LiquidationPrecision
}

func (e *Engine) GetMinHealthFactor() *uint256.Int {
	return e.params.MinHealthFactor.Clone()
}

// GetDsc the stable token
func (e *Engine) GetDsc() core.StableToken {
	return e.stable
}
