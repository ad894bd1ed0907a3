package engine

import (
	"context"
	"fmt"

	"dsc/core"
	"dsc/pkg/dsc"

	"github.com/fox-one/pkg/logger"
	"github.com/holiman/uint256"
	"github.com/sirupsen/logrus"
)

// Liquidate cover debtToCover of an unhealthy target's debt with the caller's
// stable tokens and seize the equivalent collateral plus the liquidation bonus.
//
// The target is not checked between seizing and burning; only the final
// health factor has to improve, and the caller has to stay healthy.
func (e *Engine) Liquidate(ctx context.Context, caller, symbol, target string, debtToCover *uint256.Int) (*core.Liquidation, error) {
	var receipt *core.Liquidation
	err := e.execute(ctx, "liquidate", func(ctx context.Context, u *unit) error {
		r, err := e.liquidate(ctx, u, caller, symbol, target, debtToCover)
		receipt = r
		return err
	})
	if err != nil {
		return nil, err
	}

	return receipt, nil
}

func (e *Engine) liquidate(ctx context.Context, u *unit, caller, symbol, target string, debtToCover *uint256.Int) (*core.Liquidation, error) {
	if err := requireAmount(debtToCover); err != nil {
		return nil, err
	}

	if _, err := e.collateral(symbol); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"liquidator": caller,
		"user":       target,
		"symbol":     symbol,
	})

	startHF, err := e.healthFactor(ctx, target)
	if err != nil {
		return nil, err
	}

	if e.params.IsHealthy(startHF) {
		return nil, fmt.Errorf("%w: %s", core.ErrTargetHealthy, startHF.Dec())
	}

	seized, err := e.tokenAmountFromUsd(ctx, symbol, debtToCover)
	if err != nil {
		return nil, err
	}

	bonus, err := e.params.Bonus(seized)
	if err != nil {
		return nil, err
	}

	total, err := dsc.Add(seized, bonus)
	if err != nil {
		return nil, err
	}

	if err := e.redeemCollateral(ctx, u, symbol, total, target, caller); err != nil {
		return nil, err
	}

	if err := e.burnDsc(ctx, target, caller, debtToCover); err != nil {
		return nil, err
	}

	endHF, err := e.healthFactor(ctx, target)
	if err != nil {
		return nil, err
	}

	if !endHF.Gt(startHF) {
		log.Infof("health factor %s -> %s not improved", startHF.Dec(), endHF.Dec())
		return nil, fmt.Errorf("%w: %s -> %s", core.ErrLiquidationNotImproved, startHF.Dec(), endHF.Dec())
	}

	if err := e.assertHealthy(ctx, caller); err != nil {
		return nil, err
	}

	log.Infof("covered %s, seized %s + %s", debtToCover.Dec(), seized.Dec(), bonus.Dec())

	return &core.Liquidation{
		Liquidator:         caller,
		UserID:             target,
		Symbol:             symbol,
		DebtCovered:        debtToCover.Clone(),
		CollateralSeized:   seized,
		Bonus:              bonus,
		StartHealthFactor:  startHF,
		EndingHealthFactor: endHF,
	}, nil
}
