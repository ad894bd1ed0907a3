package engine

import (
	"context"
	"fmt"

	"dsc/core"
	"dsc/pkg/dsc"

	"github.com/holiman/uint256"
)

// price validated feed price of symbol
func (e *Engine) price(ctx context.Context, symbol string) (*uint256.Int, error) {
	feed, ok := e.feeds[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedCollateral, symbol)
	}

	return e.oracles.LatestPrice(ctx, feed)
}

func (e *Engine) usdValue(ctx context.Context, symbol string, amount *uint256.Int) (*uint256.Int, error) {
	price, err := e.price(ctx, symbol)
	if err != nil {
		return nil, err
	}

	return dsc.UsdValue(price, amount)
}

func (e *Engine) tokenAmountFromUsd(ctx context.Context, symbol string, usd *uint256.Int) (*uint256.Int, error) {
	price, err := e.price(ctx, symbol)
	if err != nil {
		return nil, err
	}

	return dsc.TokenAmountFromUsd(price, usd)
}

// collateralValueUsd sum of every collateral position in registration order.
// Empty positions are worth zero whatever the price and are not priced.
func (e *Engine) collateralValueUsd(ctx context.Context, account string) (*uint256.Int, error) {
	total := new(uint256.Int)
	for _, symbol := range e.symbols {
		amount := e.ledger.Collateral(account, symbol)
		if amount.IsZero() {
			continue
		}

		value, err := e.usdValue(ctx, symbol, amount)
		if err != nil {
			return nil, err
		}

		if total, err = dsc.Add(total, value); err != nil {
			return nil, err
		}
	}

	return total, nil
}

func (e *Engine) accountInformation(ctx context.Context, account string) (debt, usd *uint256.Int, err error) {
	usd, err = e.collateralValueUsd(ctx, account)
	if err != nil {
		return nil, nil, err
	}

	return e.ledger.Debt(account), usd, nil
}

// healthFactor an account without debt is never priced
func (e *Engine) healthFactor(ctx context.Context, account string) (*uint256.Int, error) {
	if e.ledger.Debt(account).IsZero() {
		return dsc.MaxHealthFactor.Clone(), nil
	}

	debt, usd, err := e.accountInformation(ctx, account)
	if err != nil {
		return nil, err
	}

	return e.params.CalculateHealthFactor(debt, usd)
}

// assertHealthy fails with ErrBrokenHealthFactor below the minimum health factor
func (e *Engine) assertHealthy(ctx context.Context, account string) error {
	hf, err := e.healthFactor(ctx, account)
	if err != nil {
		return err
	}

	if !e.params.IsHealthy(hf) {
		return fmt.Errorf("%w: %s", core.ErrBrokenHealthFactor, hf.Dec())
	}

	return nil
}
