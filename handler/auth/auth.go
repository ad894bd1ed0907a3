package auth

import (
	"errors"
	"net/http"
	"strings"

	"dsc/handler/render"
	"dsc/handler/request"

	"github.com/asaskevich/govalidator"
	"github.com/fox-one/pkg/logger"
	"github.com/twitchtv/twirp"
)

// AccountHeader header carrying the acting account, set by the gateway in front of the api
const AccountHeader = "X-Account-Id"

// HandleAuthentication put the acting account into the request context
func HandleAuthentication() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			account := strings.TrimSpace(r.Header.Get(AccountHeader))
			if account == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !govalidator.IsPrintableASCII(account) || len(account) > 64 {
				logger.FromContext(ctx).Debugln("invalid account header:", account)
				render.BadRequest(w, errors.New("invalid account"))
				return
			}

			ctx = logger.WithContext(ctx, logger.FromContext(ctx).WithField("account", account))
			next.ServeHTTP(w, r.WithContext(request.WithAccount(ctx, account)))
		}

		return http.HandlerFunc(fn)
	}
}

// LoginRequired reject requests without an acting account
func LoginRequired(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if _, ok := request.AccountFrom(r.Context()); !ok {
			render.Error(w, twirp.NewError(twirp.Unauthenticated, "account required"))
			return
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
