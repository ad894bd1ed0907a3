package notifier

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"dsc/core"

	"github.com/fox-one/pkg/logger"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yiplee/structs"
)

func TestLogNotifier(t *testing.T) {
	structs.DefaultTagName = "json"

	log, hook := test.NewNullLogger()
	ctx := logger.WithContext(context.Background(), logrus.NewEntry(log))

	event := core.CollateralDeposited("alice", "WETH", uint256.NewInt(1e18))
	event.TraceID = "trace"
	Log().Notify(ctx, event)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "alice", entry.Data["from"])
	assert.Equal(t, "WETH", entry.Data["symbol"])
	assert.Equal(t, "1000000000000000000", entry.Data["amount"])
	assert.Equal(t, "trace", entry.Data["trace_id"])
}

func TestMetrics(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	ctx := context.Background()

	m.Notify(ctx, core.CollateralDeposited("alice", "WETH", uint256.NewInt(2e18)))
	m.Notify(ctx, core.CollateralDeposited("bob", "WETH", uint256.NewInt(1e18)))
	m.Notify(ctx, core.CollateralRedeemed("bob", "alice", "WETH", uint256.NewInt(1e18)))

	deposited := m.Events.WithLabelValues(string(core.EventCollateralDeposited), "WETH")
	assert.Equal(t, float64(2), testutil.ToFloat64(deposited))
	volume := m.Volume.WithLabelValues(string(core.EventCollateralDeposited), "WETH")
	assert.Equal(t, float64(3), testutil.ToFloat64(volume))

	m.ObserveLiquidation("WETH", nil)
	m.ObserveLiquidation("WETH", fmt.Errorf("%w: 1", core.ErrTargetHealthy))
	m.ObserveLiquidation("WETH", errors.New("boom"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Liquidations.WithLabelValues("WETH", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Liquidations.WithLabelValues("WETH", core.ErrTargetHealthy.String())))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Liquidations.WithLabelValues("WETH", "failed")))
}
