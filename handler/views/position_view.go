package views

import (
	"time"

	"dsc/core"
	"dsc/pkg/number"

	"github.com/shopspring/decimal"
)

// Position persisted ledger row
type Position struct {
	// collateral symbol, "debt" for the minted debt
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Version   int64           `json:"version"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PositionsView render persisted positions
func PositionsView(positions []*core.Position) []*Position {
	views := make([]*Position, 0, len(positions))
	for _, p := range positions {
		kind := p.Kind
		if p.IsDebt() {
			kind = "debt"
		}

		views = append(views, &Position{
			Kind:      kind,
			Amount:    number.FromWei(p.Amount),
			Version:   p.Version,
			UpdatedAt: p.UpdatedAt,
		})
	}

	return views
}
