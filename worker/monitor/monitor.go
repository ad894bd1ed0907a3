package monitor

import (
	"context"
	"sync"

	"dsc/core"
	"dsc/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
)

// Worker scans every account and keeps the ones eligible for liquidation
type Worker struct {
	*worker.BaseJob
	Engine core.IEngine
	Gauge  prometheus.Gauge

	mu        sync.RWMutex
	unhealthy []*core.AccountInformation
}

// New new monitor worker, gauge may be nil
func New(ctx context.Context, spec string, engine core.IEngine, gauge prometheus.Gauge) (*Worker, error) {
	w := &Worker{
		Engine: engine,
		Gauge:  gauge,
	}

	job, err := worker.NewBaseJob(ctx, "monitor", spec, w.onWork)
	if err != nil {
		return nil, err
	}

	w.BaseJob = job
	return w, nil
}

// Unhealthy accounts found by the last scan
func (w *Worker) Unhealthy() []*core.AccountInformation {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return append([]*core.AccountInformation(nil), w.unhealthy...)
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx)
	min := w.Engine.GetMinHealthFactor()

	var unhealthy []*core.AccountInformation
	for _, account := range w.Engine.Accounts(ctx) {
		info, err := w.Engine.Account(ctx, account)
		if err != nil {
			log.WithError(err).WithField("user", account).Errorln("engine.Account")
			continue
		}

		if info.HealthFactor.Lt(min) {
			log.WithField("user", account).Infoln("health factor", info.HealthFactor.Dec())
			unhealthy = append(unhealthy, info)
		}
	}

	w.mu.Lock()
	w.unhealthy = unhealthy
	w.mu.Unlock()

	if w.Gauge != nil {
		w.Gauge.Set(float64(len(unhealthy)))
	}

	return nil
}
