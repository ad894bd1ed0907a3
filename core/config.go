package core

import (
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Config dsc config
type Config struct {
	App         App                `json:"app"`
	DB          db.Config          `json:"db"`
	Engine      EngineConfig       `json:"engine"`
	PriceOracle PriceOracle        `json:"price_oracle"`
	Monitor     Monitor            `json:"monitor"`
	Collaterals []CollateralConfig `json:"collaterals"`
	// Admins accounts allowed to use the collateral faucet
	Admins []string `json:"admins"`
}

// App app config
type App struct {
	Location string `json:"location"`
	// LogFormat text or json
	LogFormat string `json:"log_format"`
}

// EngineConfig engine parameters, zero values fall back to the protocol defaults
type EngineConfig struct {
	// Address account holding deposited collateral and burning stable tokens
	Address              string `json:"address"`
	StableSymbol         string `json:"stable_symbol"`
	LiquidationThreshold uint64 `json:"liquidation_threshold"`
	LiquidationBonus     uint64 `json:"liquidation_bonus"`
	// MinHealthFactor human decimal, e.g. "1"
	MinHealthFactor string `json:"min_health_factor"`
}

// PriceOracle price oracle config
type PriceOracle struct {
	EndPoint string `json:"end_point"`
	// Timeout max age of a feed round, e.g. "3h"
	Timeout string `json:"timeout"`
	// CacheTTL ticker cache ttl, e.g. "10s"
	CacheTTL string `json:"cache_ttl"`
	// Refresh cron spec of the price worker
	Refresh string `json:"refresh"`
}

// Monitor unhealthy account monitor config
type Monitor struct {
	Spec string `json:"spec"`
}

// CollateralConfig an approved collateral and its feed
type CollateralConfig struct {
	Symbol    string          `json:"symbol"`
	PriceFeed string          `json:"price_feed"`
	Price     decimal.Decimal `json:"price"`
}
