package core

import (
	"context"

	"github.com/holiman/uint256"
)

// EventType event type
type EventType string

const (
	// EventCollateralDeposited collateral deposited
	EventCollateralDeposited EventType = "CollateralDeposited"
	// EventCollateralRedeemed collateral redeemed, from and to differ on liquidation
	EventCollateralRedeemed EventType = "CollateralRedeemed"
)

// Event notification emitted by a committed operation
type Event struct {
	Type    EventType    `json:"type"`
	TraceID string       `json:"trace_id"`
	From    string       `json:"from"`
	To      string       `json:"to,omitempty"`
	Symbol  string       `json:"symbol"`
	Amount  *uint256.Int `json:"amount"`
}

// CollateralDeposited new deposit event
func CollateralDeposited(user, symbol string, amount *uint256.Int) *Event {
	return &Event{
		Type:   EventCollateralDeposited,
		From:   user,
		Symbol: symbol,
		Amount: amount.Clone(),
	}
}

// CollateralRedeemed new redemption event
func CollateralRedeemed(from, to, symbol string, amount *uint256.Int) *Event {
	return &Event{
		Type:   EventCollateralRedeemed,
		From:   from,
		To:     to,
		Symbol: symbol,
		Amount: amount.Clone(),
	}
}

// Notifier receives events after the operation emitting them is committed
type Notifier interface {
	Notify(ctx context.Context, event *Event)
}
