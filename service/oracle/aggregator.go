package oracle

import (
	"context"
	"sync"
	"time"

	"dsc/core"

	"github.com/shopspring/decimal"
)

// Aggregator in-process price feed, rounds are pushed with UpdateAnswer
type Aggregator struct {
	name     string
	decimals int32

	mu    sync.RWMutex
	round core.PriceRound
}

// NewAggregator new feed with an optional initial answer
func NewAggregator(name string, decimals int32, answer decimal.Decimal, at time.Time) *Aggregator {
	a := &Aggregator{
		name:     name,
		decimals: decimals,
	}

	if !answer.IsZero() {
		a.UpdateAnswer(answer, at)
	}

	return a
}

// Name feed name
func (a *Aggregator) Name() string {
	return a.name
}

// Decimals answer decimals
func (a *Aggregator) Decimals() int32 {
	return a.decimals
}

// UpdateAnswer start and answer a new round
func (a *Aggregator) UpdateAnswer(answer decimal.Decimal, at time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.round.RoundID++
	a.round.Answer = answer
	a.round.StartedAt = at
	a.round.UpdatedAt = at
	a.round.AnsweredInRound = a.round.RoundID
}

// LatestRound the last pushed round
func (a *Aggregator) LatestRound(ctx context.Context) (*core.PriceRound, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	round := a.round
	return &round, nil
}
