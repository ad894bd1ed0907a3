package core

import (
	"context"

	"github.com/holiman/uint256"
)

// StableToken the synthetic token minted against collateral.
// Mint and Burn are restricted to the token owner, which is the engine.
type StableToken interface {
	Symbol() string
	Mint(ctx context.Context, caller, to string, amount *uint256.Int) (bool, error)
	// Burn destroys amount from the caller's own balance
	Burn(ctx context.Context, caller string, amount *uint256.Int) error
	TransferFrom(ctx context.Context, from, to string, amount *uint256.Int) (bool, error)
	BalanceOf(ctx context.Context, account string) *uint256.Int
	TotalSupply(ctx context.Context) *uint256.Int
}

// Checkpointer is implemented by collaborators whose state can be rolled
// back together with the engine ledger. While a checkpoint is open every
// write is journaled, so writes from outside the engine must go through a
// Serializer.
type Checkpointer interface {
	Checkpoint() int
	Revert(checkpoint int)
	Commit(checkpoint int)
}

// Serializer runs fn exclusively with the engine's mutating operations.
// A nested call with the context handed to fn fails with ErrReentrant.
type Serializer interface {
	Serialize(ctx context.Context, fn func(ctx context.Context) error) error
}
