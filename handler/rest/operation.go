package rest

import (
	"context"
	"net/http"

	"dsc/core"
	"dsc/handler/param"
	"dsc/handler/render"
	"dsc/handler/request"
	"dsc/handler/views"
	"dsc/pkg/number"

	"github.com/holiman/uint256"
	"github.com/twitchtv/twirp"
)

type collateralParams struct {
	Symbol string `json:"symbol" valid:"required"`
	Amount string `json:"amount" valid:"required,float"`
	// optional stable amount minted with a deposit or burned with a redemption
	Debt string `json:"debt" valid:"float"`
}

func (p *collateralParams) amounts() (amount, debt *uint256.Int, err error) {
	if amount, err = parseAmount(p.Amount); err != nil {
		return nil, nil, err
	}

	if debt, err = parseAmount(p.Debt); err != nil {
		return nil, nil, err
	}

	return amount, debt, nil
}

type debtParams struct {
	Amount string `json:"amount" valid:"required,float"`
}

func actingAccount(r *http.Request) string {
	account, _ := request.AccountFrom(r.Context())
	return account
}

func depositHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params collateralParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, debt, err := params.amounts()
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		ctx, account := r.Context(), actingAccount(r)
		if debt.IsZero() {
			err = engine.DepositCollateral(ctx, account, params.Symbol, amount)
		} else {
			err = engine.DepositCollateralAndMintDsc(ctx, account, params.Symbol, amount, debt)
		}

		if err != nil {
			render.Error(w, err)
			return
		}

		renderAccount(w, r, engine, account)
	}
}

func redeemHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params collateralParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, debt, err := params.amounts()
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		ctx, account := r.Context(), actingAccount(r)
		if debt.IsZero() {
			err = engine.RedeemCollateral(ctx, account, params.Symbol, amount)
		} else {
			err = engine.RedeemCollateralForDsc(ctx, account, params.Symbol, amount, debt)
		}

		if err != nil {
			render.Error(w, err)
			return
		}

		renderAccount(w, r, engine, account)
	}
}

func mintHandler(engine core.IEngine) http.HandlerFunc {
	return debtHandler(engine, engine.MintDsc)
}

func burnHandler(engine core.IEngine) http.HandlerFunc {
	return debtHandler(engine, engine.BurnDsc)
}

func debtHandler(engine core.IEngine, op func(ctx context.Context, account string, amount *uint256.Int) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params debtParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := parseAmount(params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		account := actingAccount(r)
		if err := op(r.Context(), account, amount); err != nil {
			render.Error(w, err)
			return
		}

		renderAccount(w, r, engine, account)
	}
}

func liquidateHandler(engine core.IEngine, observer LiquidationObserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Symbol string `json:"symbol" valid:"required"`
			UserID string `json:"user_id" valid:"required"`
			Debt   string `json:"debt" valid:"required,float"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		debt, err := parseAmount(params.Debt)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		receipt, err := engine.Liquidate(r.Context(), actingAccount(r), params.Symbol, params.UserID, debt)
		if observer != nil {
			observer.ObserveLiquidation(params.Symbol, err)
		}

		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.LiquidationView(receipt))
	}
}

func renderAccount(w http.ResponseWriter, r *http.Request, engine core.IEngine, account string) {
	info, err := engine.Account(r.Context(), account)
	if err != nil {
		render.Error(w, err)
		return
	}

	render.JSON(w, views.AccountView(info, number.FromWei(engine.GetMinHealthFactor())))
}

func faucetHandler(faucet Faucet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Symbol string `json:"symbol" valid:"required"`
			To     string `json:"to" valid:"required"`
			Amount string `json:"amount" valid:"required,float"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := parseAmount(params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := faucet.Mint(r.Context(), actingAccount(r), params.Symbol, params.To, amount); err != nil {
			render.Error(w, twirp.NewError(twirp.PermissionDenied, err.Error()))
			return
		}

		render.JSON(w, views.FaucetMint{
			Symbol: params.Symbol,
			To:     params.To,
			Amount: number.FromWei(amount),
		})
	}
}
