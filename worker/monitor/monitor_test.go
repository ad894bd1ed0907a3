package monitor

import (
	"context"
	"testing"
	"time"

	"dsc/core"
	"dsc/service/engine"
	"dsc/service/oracle"
	"dsc/service/token"

	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ether(n uint64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(n), uint256.NewInt(1e18))
}

func TestScan(t *testing.T) {
	ctx := context.Background()
	weth := token.New("WETH", "faucet")
	feed := oracle.NewAggregator("ETH / USD", 8, decimal.NewFromInt(2000e8), time.Now())

	e, err := engine.New(
		[]core.CollateralToken{weth},
		[]core.PriceFeed{feed},
		token.New("DSC", engine.DefaultAddress),
	)
	require.Nil(t, err)

	for user, debt := range map[string]uint64{"alice": 100, "bob": 1000, "carol": 0} {
		_, err := weth.Mint(ctx, "faucet", user, ether(10))
		require.Nil(t, err)
		require.Nil(t, e.DepositCollateral(ctx, user, "WETH", ether(10)))
		if debt > 0 {
			require.Nil(t, e.MintDsc(ctx, user, ether(debt)))
		}
	}

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "unhealthy"})
	w, err := New(ctx, "@every 30s", e, gauge)
	require.Nil(t, err)

	require.Nil(t, w.onWork(ctx))
	assert.Empty(t, w.Unhealthy())
	assert.Equal(t, float64(0), testutil.ToFloat64(gauge))

	// 10 eth at 180 backs 900: enough for alice, not for bob
	feed.UpdateAnswer(decimal.NewFromInt(180e8), time.Now())
	require.Nil(t, w.onWork(ctx))

	unhealthy := w.Unhealthy()
	require.Len(t, unhealthy, 1)
	assert.Equal(t, "bob", unhealthy[0].UserID)
	assert.Equal(t, float64(1), testutil.ToFloat64(gauge))
}
