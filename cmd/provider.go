package cmd

import (
	"context"
	"fmt"
	"time"

	"dsc/core"
	"dsc/pkg/dsc"
	"dsc/pkg/number"
	"dsc/service/engine"
	"dsc/service/notifier"
	"dsc/service/oracle"
	"dsc/service/token"
	"dsc/store/collateral"
	"dsc/store/position"
	"dsc/worker/priceoracle"

	"github.com/fox-one/pkg/store/db"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cast"

	_ "github.com/jinzhu/gorm/dialects/mysql"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

// faucetOwner owner of the in-process collateral tokens
const faucetOwner = "faucet"

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

// ---------------store-----------------------------------------

func providePositionStore(database *db.DB) core.PositionStore {
	return position.New(database)
}

func provideCollateralStore(database *db.DB) core.CollateralStore {
	return collateral.New(database)
}

// ------------------service------------------------------------

func provideOracle() core.IPriceOracleService {
	return oracle.New(cast.ToDuration(cfg.PriceOracle.Timeout))
}

func provideTickerService() core.ITickerService {
	tickers := oracle.NewTickerService(cfg.PriceOracle.EndPoint)
	return oracle.CacheTickers(tickers, cast.ToDuration(cfg.PriceOracle.CacheTTL))
}

func provideParams() (dsc.Params, error) {
	params := dsc.DefaultParams()
	if v := cfg.Engine.LiquidationThreshold; v > 0 {
		params.LiquidationThreshold = v
	}

	if v := cfg.Engine.LiquidationBonus; v > 0 {
		params.LiquidationBonus = v
	}

	if v := cfg.Engine.MinHealthFactor; v != "" {
		min, err := number.ParseWei(v)
		if err != nil {
			return params, fmt.Errorf("%w: min_health_factor %q", core.ErrConfigMismatch, v)
		}

		params.MinHealthFactor = min
	}

	return params, params.Validate()
}

// app the engine with its in-process tokens and feeds
type app struct {
	engine  *engine.Engine
	tokens  []*token.Token
	stable  *token.Token
	feeds   map[string]*oracle.Aggregator
	metrics *notifier.Metrics
}

func provideApp(ctx context.Context, database *db.DB, registry prometheus.Registerer) (*app, error) {
	params, err := provideParams()
	if err != nil {
		return nil, err
	}

	a := &app{
		stable:  token.New(cfg.Engine.StableSymbol, cfg.Engine.Address),
		feeds:   make(map[string]*oracle.Aggregator, len(cfg.Collaterals)),
		metrics: notifier.NewMetrics(registry),
	}

	var (
		kinds []core.CollateralToken
		feeds []core.PriceFeed
		now   = time.Now()
	)

	for _, c := range cfg.Collaterals {
		t := token.New(c.Symbol, faucetOwner)
		feed := oracle.NewAggregator(c.PriceFeed, dsc.FeedDecimals, c.Price.Shift(dsc.FeedDecimals).Truncate(0), now)

		a.tokens = append(a.tokens, t)
		a.feeds[c.Symbol] = feed
		kinds = append(kinds, t)
		feeds = append(feeds, feed)
	}

	if err := syncCollaterals(ctx, provideCollateralStore(database)); err != nil {
		return nil, err
	}

	a.engine, err = engine.New(kinds, feeds, a.stable,
		engine.WithParams(params),
		engine.WithOracle(provideOracle()),
		engine.WithStore(providePositionStore(database)),
		engine.WithNotifiers(notifier.Log(), a.metrics),
		engine.WithAddress(cfg.Engine.Address),
	)
	if err != nil {
		return nil, err
	}

	if err := a.engine.Restore(ctx); err != nil {
		return nil, err
	}

	if err := a.restoreTokens(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

// syncCollaterals refuse to drop a collateral that has been listed before, then save the list
func syncCollaterals(ctx context.Context, store core.CollateralStore) error {
	listed, err := store.All(ctx)
	if err != nil {
		return err
	}

	configured := make(map[string]bool, len(cfg.Collaterals))
	collaterals := make([]*core.Collateral, 0, len(cfg.Collaterals))
	for idx, c := range cfg.Collaterals {
		configured[c.Symbol] = true
		collaterals = append(collaterals, &core.Collateral{
			Symbol:    c.Symbol,
			PriceFeed: c.PriceFeed,
			Position:  idx,
		})
	}

	for _, c := range listed {
		if !configured[c.Symbol] {
			return fmt.Errorf("%w: collateral %s is no longer configured", core.ErrConfigMismatch, c.Symbol)
		}
	}

	return store.Save(ctx, collaterals)
}

// restoreTokens in-process token balances are not persisted: the engine gets
// back the collateral it holds and every debtor the stable tokens it owes.
// Stable tokens moved between accounts before a restart land back on the
// debtor; wallet collateral outside the engine starts from zero.
func (a *app) restoreTokens(ctx context.Context) error {
	for _, account := range a.engine.Accounts(ctx) {
		for _, t := range a.tokens {
			amount := a.engine.GetCollateralBalanceOfUser(ctx, account, t.Symbol())
			if amount.IsZero() {
				continue
			}

			if _, err := t.Mint(ctx, faucetOwner, a.engine.Address(), amount); err != nil {
				return err
			}
		}

		debt := a.engine.GetDscMinted(ctx, account)
		if debt.IsZero() {
			continue
		}

		if _, err := a.stable.Mint(ctx, a.engine.Address(), account, debt); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) faucet() *token.Faucet {
	return token.NewFaucet(faucetOwner, cfg.Admins, a.engine, a.tokens...)
}

func (a *app) priceFeeds() map[string]priceoracle.Feed {
	feeds := make(map[string]priceoracle.Feed, len(a.feeds))
	for symbol, feed := range a.feeds {
		feeds[symbol] = feed
	}

	return feeds
}
