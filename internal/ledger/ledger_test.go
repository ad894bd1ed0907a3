package ledger

import (
	"testing"

	"dsc/core"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerDefaultsToZero(t *testing.T) {
	l := New("WETH", "WBTC")

	assert.True(t, l.Collateral("alice", "WETH").IsZero())
	assert.True(t, l.Debt("alice").IsZero())
	assert.Empty(t, l.Accounts())
}

func TestLedgerMutations(t *testing.T) {
	l := New("WETH")

	require.Nil(t, l.Deposit("alice", "WETH", uint256.NewInt(10)))
	require.Nil(t, l.Mint("alice", uint256.NewInt(4)))
	require.Nil(t, l.Withdraw("alice", "WETH", uint256.NewInt(10)))
	require.Nil(t, l.Burn("alice", uint256.NewInt(4)))

	// zero is a valid terminal value, the account is still known
	assert.True(t, l.Collateral("alice", "WETH").IsZero())
	assert.True(t, l.Debt("alice").IsZero())
	assert.Equal(t, []string{"alice"}, l.Accounts())
}

func TestLedgerUnderflow(t *testing.T) {
	l := New("WETH")
	require.Nil(t, l.Deposit("alice", "WETH", uint256.NewInt(10)))

	err := l.Withdraw("alice", "WETH", uint256.NewInt(11))
	assert.ErrorIs(t, err, core.ErrInsufficientBalance)
	assert.Equal(t, uint64(10), l.Collateral("alice", "WETH").Uint64())

	err = l.Burn("alice", uint256.NewInt(1))
	assert.ErrorIs(t, err, core.ErrInsufficientBalance)
	assert.True(t, l.Debt("alice").IsZero())
}

func TestLedgerUnsupported(t *testing.T) {
	l := New("WETH")

	assert.ErrorIs(t, l.Deposit("alice", "DOGE", uint256.NewInt(1)), core.ErrUnsupportedCollateral)
	assert.ErrorIs(t, l.Withdraw("alice", "DOGE", uint256.NewInt(1)), core.ErrUnsupportedCollateral)
	assert.Empty(t, l.Accounts())
}

func TestLedgerRevert(t *testing.T) {
	l := New("WETH", "WBTC")
	require.Nil(t, l.Deposit("alice", "WETH", uint256.NewInt(10)))
	l.Commit(0)

	cp := l.Checkpoint()
	require.Nil(t, l.Deposit("alice", "WETH", uint256.NewInt(5)))
	require.Nil(t, l.Deposit("bob", "WBTC", uint256.NewInt(7)))
	require.Nil(t, l.Mint("alice", uint256.NewInt(3)))
	require.Len(t, l.Changes(cp), 3)

	l.Revert(cp)

	assert.Equal(t, uint64(10), l.Collateral("alice", "WETH").Uint64())
	assert.True(t, l.Collateral("bob", "WBTC").IsZero())
	assert.True(t, l.Debt("alice").IsZero())
	assert.Equal(t, []string{"alice"}, l.Accounts())
	assert.Empty(t, l.Changes(l.Checkpoint()))
}

func TestLedgerChanges(t *testing.T) {
	l := New("WETH")

	cp := l.Checkpoint()
	require.Nil(t, l.Deposit("alice", "WETH", uint256.NewInt(10)))
	require.Nil(t, l.Withdraw("alice", "WETH", uint256.NewInt(4)))
	require.Nil(t, l.Mint("alice", uint256.NewInt(2)))

	changes := l.Changes(cp)
	require.Len(t, changes, 2)
	assert.Equal(t, "WETH", changes[0].Kind)
	assert.Equal(t, uint64(6), changes[0].Amount.Uint64())
	assert.True(t, changes[1].IsDebt())
	assert.Equal(t, uint64(2), changes[1].Amount.Uint64())

	l.Commit(cp)
	assert.Equal(t, 0, l.Checkpoint())
}

func TestLedgerReturnsCopies(t *testing.T) {
	l := New("WETH")
	require.Nil(t, l.Deposit("alice", "WETH", uint256.NewInt(10)))

	v := l.Collateral("alice", "WETH")
	v.SetUint64(1000)

	assert.Equal(t, uint64(10), l.Collateral("alice", "WETH").Uint64())
}

func TestLedgerRestore(t *testing.T) {
	l := New("WETH")

	err := l.Restore([]*core.Position{
		{UserID: "alice", Kind: "WETH", Amount: uint256.NewInt(10)},
		{UserID: "alice", Kind: core.PositionKindDebt, Amount: uint256.NewInt(3)},
	})
	require.Nil(t, err)
	assert.Equal(t, uint64(10), l.Collateral("alice", "WETH").Uint64())
	assert.Equal(t, uint64(3), l.Debt("alice").Uint64())
	assert.Equal(t, 0, l.Checkpoint())

	err = l.Restore([]*core.Position{{UserID: "bob", Kind: "DOGE", Amount: uint256.NewInt(1)}})
	assert.ErrorIs(t, err, core.ErrUnsupportedCollateral)
}
