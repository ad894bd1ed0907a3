package notifier

import (
	"context"

	"dsc/core"
	"dsc/pkg/number"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics engine counters, also a notifier counting committed events
type Metrics struct {
	Events            *prometheus.CounterVec
	Volume            *prometheus.CounterVec
	Liquidations      *prometheus.CounterVec
	UnhealthyAccounts prometheus.Gauge
}

// NewMetrics new metrics registered on registry
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		Events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dsc_events_total",
				Help: "Committed engine events.",
			},
			[]string{"type", "symbol"},
		),
		Volume: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dsc_collateral_volume",
				Help: "Collateral moved by committed events, in token units.",
			},
			[]string{"type", "symbol"},
		),
		Liquidations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dsc_liquidations_total",
				Help: "Liquidation attempts by result.",
			},
			[]string{"symbol", "result"},
		),
		UnhealthyAccounts: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "dsc_unhealthy_accounts",
				Help: "Accounts below the minimum health factor at the last scan.",
			},
		),
	}

	registry.MustRegister(m.Events, m.Volume, m.Liquidations, m.UnhealthyAccounts)
	return m
}

func (m *Metrics) Notify(ctx context.Context, event *core.Event) {
	labels := prometheus.Labels{"type": string(event.Type), "symbol": event.Symbol}
	m.Events.With(labels).Inc()

	if event.Amount != nil {
		v, _ := number.FromWei(event.Amount).Float64()
		m.Volume.With(labels).Add(v)
	}
}

// ObserveLiquidation count a liquidation attempt
func (m *Metrics) ObserveLiquidation(symbol string, err error) {
	result := "ok"
	if err != nil {
		result = "failed"
		if code, ok := core.CodeOf(err); ok {
			result = code.String()
		}
	}

	m.Liquidations.WithLabelValues(symbol, result).Inc()
}
