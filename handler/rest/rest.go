package rest

import (
	"context"
	"errors"
	"net/http"

	"dsc/core"
	"dsc/handler/auth"
	"dsc/handler/render"
	"dsc/pkg/number"

	"github.com/go-chi/chi"
	"github.com/holiman/uint256"
)

// UnhealthyLister lists accounts eligible for liquidation
type UnhealthyLister interface {
	Unhealthy() []*core.AccountInformation
}

// LiquidationObserver counts liquidation attempts
type LiquidationObserver interface {
	ObserveLiquidation(symbol string, err error)
}

// Faucet mints test collateral, restricted to admins
type Faucet interface {
	Mint(ctx context.Context, caller, symbol, to string, amount *uint256.Int) error
}

// Handle handle rest api request, monitor, observer and faucet may be nil
func Handle(engine core.IEngine, monitor UnhealthyLister, observer LiquidationObserver, faucet Faucet) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/collaterals", collateralsHandler(engine))
	router.Get("/usd-value", usdValueHandler(engine))
	router.Get("/token-amount", tokenAmountHandler(engine))
	router.Get("/accounts/unhealthy", unhealthyHandler(engine, monitor))
	router.Get("/accounts/{user}", accountHandler(engine))
	router.Get("/accounts/{user}/health-factor", healthFactorHandler(engine))

	router.Group(func(r chi.Router) {
		r.Use(auth.LoginRequired)
		r.Post("/deposits", depositHandler(engine))
		r.Post("/mints", mintHandler(engine))
		r.Post("/burns", burnHandler(engine))
		r.Post("/redemptions", redeemHandler(engine))
		r.Post("/liquidations", liquidateHandler(engine, observer))
		if faucet != nil {
			r.Post("/faucet", faucetHandler(faucet))
		}
	})

	return router
}

// parseAmount human amount to 18 decimals, empty is zero
func parseAmount(s string) (*uint256.Int, error) {
	if s == "" {
		return new(uint256.Int), nil
	}

	return number.ParseWei(s)
}
