package core

import (
	"context"
	"time"

	"github.com/holiman/uint256"
)

// PositionKindDebt marks the debt row of an account; collateral rows use the collateral symbol
const PositionKindDebt = ""

// Position one ledger entry: a collateral balance (Kind = symbol) or the
// minted debt (Kind = PositionKindDebt) of an account.
type Position struct {
	ID        int64        `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"-"`
	UserID    string       `sql:"size:64;unique_index:idx_positions_user_kind" json:"user_id"`
	Kind      string       `sql:"size:20;unique_index:idx_positions_user_kind" json:"kind"`
	Amount    *uint256.Int `sql:"type:varchar(80)" json:"amount"`
	Version   int64        `sql:"default:0" json:"version"`
	CreatedAt time.Time    `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IsDebt is the debt row
func (p *Position) IsDebt() bool {
	return p.Kind == PositionKindDebt
}

// PositionStore persists ledger positions
type PositionStore interface {
	// Save upserts positions and returns only after they are durable
	Save(ctx context.Context, positions []*Position) error
	All(ctx context.Context) ([]*Position, error)
	FindByUser(ctx context.Context, userID string) ([]*Position, error)
}

// AccountInformation account overview
type AccountInformation struct {
	UserID             string       `json:"user_id"`
	DebtMinted         *uint256.Int `json:"debt_minted"`
	CollateralValueUsd *uint256.Int `json:"collateral_value_usd"`
	HealthFactor       *uint256.Int `json:"health_factor"`
}

// Liquidation result of a successful liquidation
type Liquidation struct {
	Liquidator         string       `json:"liquidator"`
	UserID             string       `json:"user_id"`
	Symbol             string       `json:"symbol"`
	DebtCovered        *uint256.Int `json:"debt_covered"`
	CollateralSeized   *uint256.Int `json:"collateral_seized"`
	Bonus              *uint256.Int `json:"bonus"`
	StartHealthFactor  *uint256.Int `json:"start_health_factor"`
	EndingHealthFactor *uint256.Int `json:"ending_health_factor"`
}
