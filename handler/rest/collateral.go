package rest

import (
	"net/http"

	"dsc/core"
	"dsc/handler/render"
	"dsc/handler/views"
	"dsc/pkg/dsc"
	"dsc/pkg/number"
)

func collateralsHandler(engine core.IEngine) http.HandlerFunc {
	one := dsc.Precision.Clone()

	return func(w http.ResponseWriter, r *http.Request) {
		var collaterals []*views.Collateral
		for _, symbol := range engine.GetCollateralTokens() {
			view := &views.Collateral{Symbol: symbol}
			if feed := engine.GetCollateralTokenPriceFeed(symbol); feed != nil {
				view.PriceFeed = feed.Name()
			}

			if price, err := engine.GetUsdValue(r.Context(), symbol, one); err == nil {
				view.Price = number.FromWei(price)
			} else {
				view.Error = err.Error()
			}

			collaterals = append(collaterals, view)
		}

		render.JSON(w, collaterals)
	}
}
