package token

import (
	"context"
	"errors"
	"sync"

	"dsc/core"
	"dsc/pkg/dsc"

	"github.com/holiman/uint256"
)

var (
	// ErrNotOwner caller may not mint or burn
	ErrNotOwner = errors.New("token: caller is not the owner")
	// ErrZeroAddress mint to an empty account
	ErrZeroAddress = errors.New("token: empty account")
	// ErrBurnExceedsBalance burn amount exceeds balance
	ErrBurnExceedsBalance = errors.New("token: burn amount exceeds balance")
)

type change struct {
	account string
	prev    *uint256.Int
	existed bool
	supply  *uint256.Int
}

// Token in-process fungible token ledger. It serves both as the stable token
// (owner = engine) and as a collateral token, and can be checkpointed so an
// aborted engine operation also rolls back its token movements.
type Token struct {
	symbol string
	owner  string

	mu       sync.Mutex
	balances map[string]*uint256.Int
	supply   *uint256.Int
	journal  []change
	// open checkpoints, changes are only journaled while one is open
	open int
}

// New new token, only owner may mint and burn
func New(symbol, owner string) *Token {
	return &Token{
		symbol:   symbol,
		owner:    owner,
		balances: make(map[string]*uint256.Int),
		supply:   new(uint256.Int),
	}
}

// Symbol token symbol
func (t *Token) Symbol() string {
	return t.symbol
}

// Owner token owner
func (t *Token) Owner() string {
	return t.owner
}

// TransferOwnership hand mint and burn rights over to owner
func (t *Token) TransferOwnership(caller, owner string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if caller != t.owner {
		return ErrNotOwner
	}

	t.owner = owner
	return nil
}

// BalanceOf balance of account
func (t *Token) BalanceOf(ctx context.Context, account string) *uint256.Int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.balanceOf(account)
}

// TotalSupply total minted minus burned
func (t *Token) TotalSupply(ctx context.Context) *uint256.Int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.supply.Clone()
}

// Mint mint amount to account
func (t *Token) Mint(ctx context.Context, caller, to string, amount *uint256.Int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if caller != t.owner {
		return false, ErrNotOwner
	}

	if to == "" {
		return false, ErrZeroAddress
	}

	if amount.IsZero() {
		return false, core.ErrInvalidAmount
	}

	supply, err := dsc.Add(t.supply, amount)
	if err != nil {
		return false, err
	}

	balance, err := dsc.Add(t.balanceOf(to), amount)
	if err != nil {
		return false, err
	}

	t.write(to, balance, supply)
	return true, nil
}

// Burn burn amount from the caller's balance
func (t *Token) Burn(ctx context.Context, caller string, amount *uint256.Int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if caller != t.owner {
		return ErrNotOwner
	}

	if amount.IsZero() {
		return core.ErrInvalidAmount
	}

	balance, err := dsc.Sub(t.balanceOf(caller), amount)
	if err != nil {
		return ErrBurnExceedsBalance
	}

	supply, err := dsc.Sub(t.supply, amount)
	if err != nil {
		return err
	}

	t.write(caller, balance, supply)
	return nil
}

// Transfer move amount from one account to another, false when the balance is short
func (t *Token) Transfer(ctx context.Context, from, to string, amount *uint256.Int) (bool, error) {
	return t.TransferFrom(ctx, from, to, amount)
}

// TransferFrom move amount from one account to another, false when the balance is short
func (t *Token) TransferFrom(ctx context.Context, from, to string, amount *uint256.Int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if to == "" {
		return false, ErrZeroAddress
	}

	fromBalance, err := dsc.Sub(t.balanceOf(from), amount)
	if err != nil {
		return false, nil
	}

	if from == to {
		return true, nil
	}

	toBalance, err := dsc.Add(t.balanceOf(to), amount)
	if err != nil {
		return false, err
	}

	t.write(from, fromBalance, nil)
	t.write(to, toBalance, nil)
	return true, nil
}

// Checkpoint marks the journal position
func (t *Token) Checkpoint() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.open++
	return len(t.journal)
}

// Revert undo every balance change after checkpoint
func (t *Token) Revert(checkpoint int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := len(t.journal) - 1; i >= checkpoint; i-- {
		c := t.journal[i]
		if c.existed {
			t.balances[c.account] = c.prev
		} else {
			delete(t.balances, c.account)
		}

		if c.supply != nil {
			t.supply = c.supply
		}
	}

	t.journal = t.journal[:checkpoint]
	t.close()
}

// Commit keep the changes, the journal is dropped with the outermost checkpoint
func (t *Token) Commit(checkpoint int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if checkpoint == 0 {
		t.journal = t.journal[:0]
	}

	t.close()
}

func (t *Token) close() {
	if t.open > 0 {
		t.open--
	}
}

func (t *Token) balanceOf(account string) *uint256.Int {
	if v, ok := t.balances[account]; ok {
		return v.Clone()
	}

	return new(uint256.Int)
}

// write records the previous balance and supply, supply nil keeps it unchanged
func (t *Token) write(account string, balance, supply *uint256.Int) {
	prev, existed := t.balances[account]
	c := change{account: account, prev: prev, existed: existed}
	if supply != nil {
		c.supply = t.supply
		t.supply = supply
	}

	if t.open > 0 {
		t.journal = append(t.journal, c)
	}

	t.balances[account] = balance
}
