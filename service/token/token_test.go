package token

import (
	"context"
	"testing"

	"dsc/core"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintAndBurn(t *testing.T) {
	ctx := context.Background()
	dsc := New("DSC", "engine")

	_, err := dsc.Mint(ctx, "alice", "alice", uint256.NewInt(1))
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = dsc.Mint(ctx, "engine", "", uint256.NewInt(1))
	assert.ErrorIs(t, err, ErrZeroAddress)

	_, err = dsc.Mint(ctx, "engine", "alice", new(uint256.Int))
	assert.ErrorIs(t, err, core.ErrInvalidAmount)

	ok, err := dsc.Mint(ctx, "engine", "engine", uint256.NewInt(10))
	require.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(10), dsc.TotalSupply(ctx).Uint64())

	assert.ErrorIs(t, dsc.Burn(ctx, "engine", uint256.NewInt(11)), ErrBurnExceedsBalance)
	assert.ErrorIs(t, dsc.Burn(ctx, "alice", uint256.NewInt(1)), ErrNotOwner)

	require.Nil(t, dsc.Burn(ctx, "engine", uint256.NewInt(4)))
	assert.Equal(t, uint64(6), dsc.BalanceOf(ctx, "engine").Uint64())
	assert.Equal(t, uint64(6), dsc.TotalSupply(ctx).Uint64())
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	weth := New("WETH", "admin")

	_, err := weth.Mint(ctx, "admin", "alice", uint256.NewInt(10))
	require.Nil(t, err)

	ok, err := weth.TransferFrom(ctx, "alice", "bob", uint256.NewInt(11))
	require.Nil(t, err)
	assert.False(t, ok)

	ok, err = weth.Transfer(ctx, "alice", "bob", uint256.NewInt(4))
	require.Nil(t, err)
	assert.True(t, ok)

	assert.Equal(t, uint64(6), weth.BalanceOf(ctx, "alice").Uint64())
	assert.Equal(t, uint64(4), weth.BalanceOf(ctx, "bob").Uint64())
	assert.Equal(t, uint64(10), weth.TotalSupply(ctx).Uint64())
}

func TestCheckpoint(t *testing.T) {
	ctx := context.Background()
	weth := New("WETH", "admin")

	_, err := weth.Mint(ctx, "admin", "alice", uint256.NewInt(10))
	require.Nil(t, err)
	assert.Empty(t, weth.journal)

	cp := weth.Checkpoint()
	_, err = weth.TransferFrom(ctx, "alice", "bob", uint256.NewInt(3))
	require.Nil(t, err)
	_, err = weth.Mint(ctx, "admin", "carol", uint256.NewInt(5))
	require.Nil(t, err)
	weth.Revert(cp)

	assert.Equal(t, uint64(10), weth.BalanceOf(ctx, "alice").Uint64())
	assert.True(t, weth.BalanceOf(ctx, "bob").IsZero())
	assert.True(t, weth.BalanceOf(ctx, "carol").IsZero())
	assert.Equal(t, uint64(10), weth.TotalSupply(ctx).Uint64())

	cp = weth.Checkpoint()
	_, err = weth.TransferFrom(ctx, "alice", "bob", uint256.NewInt(3))
	require.Nil(t, err)
	weth.Commit(cp)

	assert.Equal(t, uint64(3), weth.BalanceOf(ctx, "bob").Uint64())
	assert.Empty(t, weth.journal)
	assert.Equal(t, 0, weth.open)
}

func TestTransferOwnership(t *testing.T) {
	dsc := New("DSC", "deployer")

	assert.ErrorIs(t, dsc.TransferOwnership("alice", "alice"), ErrNotOwner)
	require.Nil(t, dsc.TransferOwnership("deployer", "engine"))
	assert.Equal(t, "engine", dsc.Owner())
}

func TestFaucet(t *testing.T) {
	ctx := context.Background()
	weth := New("WETH", "faucet")
	f := NewFaucet("faucet", []string{"admin"}, nil, weth)

	require.Nil(t, f.Mint(ctx, "admin", "WETH", "alice", uint256.NewInt(5)))
	assert.Equal(t, uint64(5), weth.BalanceOf(ctx, "alice").Uint64())

	assert.ErrorIs(t, f.Mint(ctx, "alice", "WETH", "alice", uint256.NewInt(5)), ErrNotOwner)
	assert.ErrorIs(t, f.Mint(ctx, "admin", "DOGE", "alice", uint256.NewInt(5)), core.ErrUnsupportedCollateral)
	assert.Equal(t, uint64(5), weth.TotalSupply(ctx).Uint64())
}
