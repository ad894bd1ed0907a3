package config

import "dsc/core"

const (
	defaultEngineAddress = "dsc-engine"
	defaultStableSymbol  = "DSC"
	defaultOracleTimeout = "3h"
	defaultCacheTTL      = "10s"
	defaultRefresh       = "@every 1m"
	defaultMonitorSpec   = "@every 30s"
)

func defaultEngine(cfg *core.Config) {
	if cfg.Engine.Address == "" {
		cfg.Engine.Address = defaultEngineAddress
	}

	if cfg.Engine.StableSymbol == "" {
		cfg.Engine.StableSymbol = defaultStableSymbol
	}

	if cfg.PriceOracle.Timeout == "" {
		cfg.PriceOracle.Timeout = defaultOracleTimeout
	}

	if cfg.PriceOracle.CacheTTL == "" {
		cfg.PriceOracle.CacheTTL = defaultCacheTTL
	}

	if cfg.PriceOracle.Refresh == "" {
		cfg.PriceOracle.Refresh = defaultRefresh
	}

	if cfg.Monitor.Spec == "" {
		cfg.Monitor.Spec = defaultMonitorSpec
	}

	if cfg.App.Location == "" {
		cfg.App.Location = "UTC"
	}
}
