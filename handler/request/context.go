package request

import (
	"context"
)

type accountKey struct{}

// WithAccount context carrying the acting account
func WithAccount(ctx context.Context, account string) context.Context {
	return context.WithValue(ctx, accountKey{}, account)
}

// AccountFrom the acting account, false for anonymous requests
func AccountFrom(ctx context.Context) (string, bool) {
	account, ok := ctx.Value(accountKey{}).(string)
	return account, ok && account != ""
}
