package core

import (
	"context"
	"time"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// PriceRound a price feed round. Answer is an integer in the feed's own
// precision (8 decimals for usd pairs).
type PriceRound struct {
	RoundID         uint64          `json:"round_id"`
	Answer          decimal.Decimal `json:"answer"`
	StartedAt       time.Time       `json:"started_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	AnsweredInRound uint64          `json:"answered_in_round"`
}

// PriceFeed price feed handle
type PriceFeed interface {
	Name() string
	Decimals() int32
	LatestRound(ctx context.Context) (*PriceRound, error)
}

// PriceTicker price ticker pulled from the price endpoint
type PriceTicker struct {
	Provider string          `json:"provider,omitempty"`
	Symbol   string          `json:"symbol,omitempty"`
	Price    decimal.Decimal `json:"price,omitempty"`
	Time     time.Time       `json:"time,omitempty"`
}

// IPriceOracleService returns validated feed prices
type IPriceOracleService interface {
	// LatestPrice price of the feed in feed precision, rejects stale or non positive answers
	LatestPrice(ctx context.Context, feed PriceFeed) (*uint256.Int, error)
}

// ITickerService pulls prices from the price endpoint
type ITickerService interface {
	PullPriceTicker(ctx context.Context, symbol string, t time.Time) (*PriceTicker, error)
}
