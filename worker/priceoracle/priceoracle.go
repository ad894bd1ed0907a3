package priceoracle

import (
	"context"
	"time"

	"dsc/core"
	"dsc/pkg/concurrency"
	"dsc/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// Feed a price feed accepting new answers
type Feed interface {
	Name() string
	Decimals() int32
	UpdateAnswer(answer decimal.Decimal, at time.Time)
}

// Worker pulls tickers and pushes them into the collateral price feeds
type Worker struct {
	*worker.BaseJob
	Tickers core.ITickerService
	// collateral symbol to its feed
	Feeds map[string]Feed
	// max parallel pulls
	Concurrency int
	Now         func() time.Time
}

// New new price oracle worker
func New(ctx context.Context, spec string, tickers core.ITickerService, feeds map[string]Feed) (*Worker, error) {
	w := &Worker{
		Tickers:     tickers,
		Feeds:       feeds,
		Concurrency: concurrency.DefaultMax,
		Now:         time.Now,
	}

	job, err := worker.NewBaseJob(ctx, "priceoracle", spec, w.onWork)
	if err != nil {
		return nil, err
	}

	w.BaseJob = job
	return w, nil
}

// Refresh pull every feed once
func (w *Worker) Refresh(ctx context.Context) error {
	return w.onWork(ctx)
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if len(w.Feeds) == 0 {
		log.Infoln("no feed found")
		return nil
	}

	now := w.Now()
	limit := concurrency.NewGoLimit(w.Concurrency)
	for symbol, feed := range w.Feeds {
		symbol, feed := symbol, feed
		limit.Go(func() {
			w.pull(ctx, symbol, feed, now)
		})
	}

	limit.Wait()
	return nil
}

func (w *Worker) pull(ctx context.Context, symbol string, feed Feed, now time.Time) {
	log := logger.FromContext(ctx).WithField("symbol", symbol)

	ticker, err := w.Tickers.PullPriceTicker(ctx, symbol, now)
	if err != nil {
		log.WithError(err).Errorln("pull price ticker")
		return
	}

	if !ticker.Price.IsPositive() {
		log.Errorln("invalid ticker price:", ticker.Price)
		return
	}

	at := ticker.Time
	if at.IsZero() || at.After(now) {
		at = now
	}

	answer := ticker.Price.Shift(feed.Decimals()).Truncate(0)
	feed.UpdateAnswer(answer, at)
	log.Debugf("feed %s answered %s", feed.Name(), answer)
}
