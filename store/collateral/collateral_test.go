package collateral

import (
	"context"
	"testing"

	"dsc/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollateralStore(t *testing.T) {
	ctx := context.Background()
	database := db.MustOpen(db.SqliteInMemory())
	require.Nil(t, db.Migrate(database))
	collaterals := New(database)

	require.Nil(t, collaterals.Save(ctx, []*core.Collateral{
		{Symbol: "WBTC", PriceFeed: "BTC / USD", Position: 1},
		{Symbol: "WETH", PriceFeed: "ETH / USD", Position: 0},
	}))

	require.Nil(t, collaterals.Save(ctx, []*core.Collateral{
		{Symbol: "WBTC", PriceFeed: "WBTC / USD", Position: 1},
	}))

	all, err := collaterals.All(ctx)
	require.Nil(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "WETH", all[0].Symbol)
	assert.Equal(t, "WBTC", all[1].Symbol)
	assert.Equal(t, "WBTC / USD", all[1].PriceFeed)
}
