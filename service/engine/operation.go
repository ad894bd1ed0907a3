package engine

import (
	"context"
	"fmt"

	"dsc/core"

	"github.com/fox-one/pkg/logger"
	"github.com/holiman/uint256"
)

// DepositCollateral move amount of symbol from account into the engine
func (e *Engine) DepositCollateral(ctx context.Context, account, symbol string, amount *uint256.Int) error {
	return e.execute(ctx, "deposit", func(ctx context.Context, u *unit) error {
		return e.depositCollateral(ctx, u, account, symbol, amount)
	})
}

// DepositCollateralAndMintDsc deposit then mint in one operation
func (e *Engine) DepositCollateralAndMintDsc(ctx context.Context, account, symbol string, collateral, debt *uint256.Int) error {
	return e.execute(ctx, "deposit_and_mint", func(ctx context.Context, u *unit) error {
		if err := e.depositCollateral(ctx, u, account, symbol, collateral); err != nil {
			return err
		}

		return e.mintDsc(ctx, account, debt)
	})
}

// MintDsc mint stable tokens against the account's collateral
func (e *Engine) MintDsc(ctx context.Context, account string, amount *uint256.Int) error {
	return e.execute(ctx, "mint", func(ctx context.Context, u *unit) error {
		return e.mintDsc(ctx, account, amount)
	})
}

// BurnDsc repay debt with the account's own stable tokens
func (e *Engine) BurnDsc(ctx context.Context, account string, amount *uint256.Int) error {
	return e.execute(ctx, "burn", func(ctx context.Context, u *unit) error {
		if err := requireAmount(amount); err != nil {
			return err
		}

		return e.burnDsc(ctx, account, account, amount)
	})
}

// RedeemCollateral withdraw collateral back to the account
func (e *Engine) RedeemCollateral(ctx context.Context, account, symbol string, amount *uint256.Int) error {
	return e.execute(ctx, "redeem", func(ctx context.Context, u *unit) error {
		if err := requireAmount(amount); err != nil {
			return err
		}

		if err := e.redeemCollateral(ctx, u, symbol, amount, account, account); err != nil {
			return err
		}

		return e.assertHealthy(ctx, account)
	})
}

// RedeemCollateralForDsc burn debt then redeem collateral in one operation
func (e *Engine) RedeemCollateralForDsc(ctx context.Context, account, symbol string, collateral, debt *uint256.Int) error {
	return e.execute(ctx, "redeem_for_dsc", func(ctx context.Context, u *unit) error {
		if err := requireAmount(collateral); err != nil {
			return err
		}

		if err := requireAmount(debt); err != nil {
			return err
		}

		if err := e.burnDsc(ctx, account, account, debt); err != nil {
			return err
		}

		if err := e.redeemCollateral(ctx, u, symbol, collateral, account, account); err != nil {
			return err
		}

		return e.assertHealthy(ctx, account)
	})
}

func (e *Engine) depositCollateral(ctx context.Context, u *unit, account, symbol string, amount *uint256.Int) error {
	if err := requireAmount(amount); err != nil {
		return err
	}

	token, err := e.collateral(symbol)
	if err != nil {
		return err
	}

	if err := e.ledger.Deposit(account, symbol, amount); err != nil {
		return err
	}

	u.emit(core.CollateralDeposited(account, symbol, amount))

	ok, err := token.TransferFrom(ctx, account, e.address, amount)
	if err != nil || !ok {
		return transferFailed(ctx, "deposit", symbol, err)
	}

	return nil
}

func (e *Engine) mintDsc(ctx context.Context, account string, amount *uint256.Int) error {
	if err := requireAmount(amount); err != nil {
		return err
	}

	if err := e.ledger.Mint(account, amount); err != nil {
		return err
	}

	if err := e.assertHealthy(ctx, account); err != nil {
		return err
	}

	ok, err := e.stable.Mint(ctx, e.address, account, amount)
	if err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("stable.Mint")
		return fmt.Errorf("%w: %v", core.ErrMintFailed, err)
	}

	if !ok {
		return core.ErrMintFailed
	}

	return nil
}

// redeemCollateral move amount of symbol from the position of from to the token account to,
// a zero amount moves nothing
func (e *Engine) redeemCollateral(ctx context.Context, u *unit, symbol string, amount *uint256.Int, from, to string) error {
	token, err := e.collateral(symbol)
	if err != nil {
		return err
	}

	if amount.IsZero() {
		return nil
	}

	if err := e.ledger.Withdraw(from, symbol, amount); err != nil {
		return err
	}

	u.emit(core.CollateralRedeemed(from, to, symbol, amount))

	ok, err := token.Transfer(ctx, e.address, to, amount)
	if err != nil || !ok {
		return transferFailed(ctx, "redeem", symbol, err)
	}

	return nil
}

// burnDsc reduce the debt of onBehalfOf, paid with stable tokens of payer
func (e *Engine) burnDsc(ctx context.Context, onBehalfOf, payer string, amount *uint256.Int) error {
	if err := e.ledger.Burn(onBehalfOf, amount); err != nil {
		return err
	}

	ok, err := e.stable.TransferFrom(ctx, payer, e.address, amount)
	if err != nil || !ok {
		return transferFailed(ctx, "burn", e.stable.Symbol(), err)
	}

	if err := e.stable.Burn(ctx, e.address, amount); err != nil {
		return transferFailed(ctx, "burn", e.stable.Symbol(), err)
	}

	return nil
}

func transferFailed(ctx context.Context, action, symbol string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s %s", core.ErrExternalTransferFailed, action, symbol)
	}

	logger.FromContext(ctx).WithError(err).WithField("symbol", symbol).Errorln(action, "transfer")
	return fmt.Errorf("%w: %s %s: %v", core.ErrExternalTransferFailed, action, symbol, err)
}
