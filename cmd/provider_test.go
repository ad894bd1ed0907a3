package cmd

import (
	"context"
	"testing"

	"dsc/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCollaterals []*core.Collateral

func (m *memoryCollaterals) Save(ctx context.Context, collaterals []*core.Collateral) error {
	*m = collaterals
	return nil
}

func (m *memoryCollaterals) All(ctx context.Context) ([]*core.Collateral, error) {
	return *m, nil
}

func TestProvideParams(t *testing.T) {
	cfg = core.Config{}

	params, err := provideParams()
	require.Nil(t, err)
	assert.Equal(t, uint64(50), params.LiquidationThreshold)
	assert.Equal(t, "1000000000000000000", params.MinHealthFactor.Dec())

	cfg.Engine.LiquidationThreshold = 80
	cfg.Engine.MinHealthFactor = "1.5"
	params, err = provideParams()
	require.Nil(t, err)
	assert.Equal(t, uint64(80), params.LiquidationThreshold)
	assert.Equal(t, "1500000000000000000", params.MinHealthFactor.Dec())

	cfg.Engine.MinHealthFactor = "high"
	_, err = provideParams()
	assert.ErrorIs(t, err, core.ErrConfigMismatch)

	cfg.Engine.MinHealthFactor = ""
	cfg.Engine.LiquidationThreshold = 150
	_, err = provideParams()
	assert.ErrorIs(t, err, core.ErrConfigMismatch)
}

func TestSyncCollaterals(t *testing.T) {
	ctx := context.Background()
	cfg = core.Config{
		Collaterals: []core.CollateralConfig{
			{Symbol: "WETH", PriceFeed: "ETH / USD", Price: decimal.NewFromInt(2000)},
			{Symbol: "WBTC", PriceFeed: "BTC / USD"},
		},
	}

	store := &memoryCollaterals{}
	require.Nil(t, syncCollaterals(ctx, store))
	require.Len(t, *store, 2)
	assert.Equal(t, "WBTC", (*store)[1].Symbol)
	assert.Equal(t, 1, (*store)[1].Position)

	cfg.Collaterals = cfg.Collaterals[:1]
	assert.ErrorIs(t, syncCollaterals(ctx, store), core.ErrConfigMismatch)
}
