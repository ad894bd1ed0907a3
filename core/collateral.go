package core

import (
	"context"
	"time"

	"github.com/holiman/uint256"
)

// CollateralToken an approved collateral asset, identified by its symbol.
// The engine holds deposited tokens on its own account and moves them with
// TransferFrom on deposit and Transfer on redemption.
//
// Collaborators get the context of the running operation. A call back into
// the engine must pass that context on: it is refused with ErrReentrant,
// while a context not derived from it blocks until the operation ends.
type CollateralToken interface {
	Symbol() string
	TransferFrom(ctx context.Context, from, to string, amount *uint256.Int) (bool, error)
	Transfer(ctx context.Context, from, to string, amount *uint256.Int) (bool, error)
	BalanceOf(ctx context.Context, account string) *uint256.Int
}

// Collateral persisted entry of the supported collateral list
type Collateral struct {
	ID        int64     `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"-"`
	Symbol    string    `sql:"size:20;unique_index:idx_collaterals_symbol" json:"symbol"`
	PriceFeed string    `sql:"size:64" json:"price_feed"`
	Position  int       `sql:"default:0" json:"position"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// CollateralStore stores the ordered list of supported collaterals
type CollateralStore interface {
	Save(ctx context.Context, collaterals []*Collateral) error
	All(ctx context.Context) ([]*Collateral, error)
}
