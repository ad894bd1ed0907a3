package token

import (
	"context"
	"fmt"

	"dsc/core"

	"github.com/asaskevich/govalidator"
	"github.com/holiman/uint256"
)

// Faucet mints collateral tokens to accounts on behalf of the admins
type Faucet struct {
	owner  string
	tokens map[string]*Token
	admins []string
	serial core.Serializer
}

// NewFaucet faucet over tokens owned by owner. Mints run through serial so
// they never land inside a running engine operation; nil mints directly.
func NewFaucet(owner string, admins []string, serial core.Serializer, tokens ...*Token) *Faucet {
	f := &Faucet{
		owner:  owner,
		tokens: make(map[string]*Token, len(tokens)),
		admins: admins,
		serial: serial,
	}

	for _, t := range tokens {
		f.tokens[t.Symbol()] = t
	}

	return f
}

// Mint mint amount of symbol to account, caller must be an admin
func (f *Faucet) Mint(ctx context.Context, caller, symbol, to string, amount *uint256.Int) error {
	if !govalidator.IsIn(caller, f.admins...) {
		return ErrNotOwner
	}

	t, ok := f.tokens[symbol]
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrUnsupportedCollateral, symbol)
	}

	mint := func(ctx context.Context) error {
		_, err := t.Mint(ctx, f.owner, to, amount)
		return err
	}

	if f.serial == nil {
		return mint(ctx)
	}

	return f.serial.Serialize(ctx, mint)
}
