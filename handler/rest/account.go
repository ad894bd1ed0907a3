package rest

import (
	"net/http"

	"dsc/core"
	"dsc/handler/param"
	"dsc/handler/render"
	"dsc/handler/views"
	"dsc/pkg/number"

	"github.com/go-chi/chi"
)

func accountHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user := chi.URLParam(r, "user")

		info, err := engine.Account(ctx, user)
		if err != nil {
			render.Error(w, err)
			return
		}

		view := views.AccountView(info, number.FromWei(engine.GetMinHealthFactor()))
		for _, symbol := range engine.GetCollateralTokens() {
			amount := engine.GetCollateralBalanceOfUser(ctx, user, symbol)
			if amount.IsZero() {
				continue
			}

			view.Collaterals = append(view.Collaterals, &views.CollateralAmount{
				Symbol: symbol,
				Amount: number.FromWei(amount),
			})
		}

		render.JSON(w, view)
	}
}

func healthFactorHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hf, err := engine.GetHealthFactor(r.Context(), chi.URLParam(r, "user"))
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{"health_factor": hf.Dec()})
	}
}

func unhealthyHandler(engine core.IEngine, monitor UnhealthyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		min := number.FromWei(engine.GetMinHealthFactor())

		accounts := make([]*views.Account, 0)
		if monitor != nil {
			for _, info := range monitor.Unhealthy() {
				accounts = append(accounts, views.AccountView(info, min))
			}
		}

		render.JSON(w, render.H{"accounts": accounts})
	}
}

func usdValueHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Symbol string `json:"symbol" valid:"required"`
			Amount string `json:"amount" valid:"required,float"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := number.ParseWei(params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		usd, err := engine.GetUsdValue(r.Context(), params.Symbol, amount)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{"usd": number.FromWei(usd)})
	}
}

func tokenAmountHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Symbol string `json:"symbol" valid:"required"`
			Usd    string `json:"usd" valid:"required,float"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		usd, err := number.ParseWei(params.Usd)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := engine.GetTokenAmountFromUsd(r.Context(), params.Symbol, usd)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{"amount": number.FromWei(amount)})
	}
}
