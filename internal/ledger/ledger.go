package ledger

import (
	"sort"

	"dsc/core"
	"dsc/pkg/dsc"

	"github.com/holiman/uint256"
)

type key struct {
	user string
	kind string
}

type entry struct {
	key     key
	prev    *uint256.Int
	existed bool
}

// Ledger per account collateral balances and minted debt.
//
// Missing entries read as zero and entries are never deleted by a mutation,
// only by rolling back the mutation that created them. Every write is
// journaled so a caller can Revert everything after a Checkpoint.
// Ledger is not safe for concurrent use.
type Ledger struct {
	kinds   map[string]bool
	values  map[key]*uint256.Int
	journal []entry
}

// New ledger with the supported collateral symbols
func New(kinds ...string) *Ledger {
	l := &Ledger{
		kinds:  make(map[string]bool, len(kinds)),
		values: make(map[key]*uint256.Int),
	}

	for _, k := range kinds {
		l.kinds[k] = true
	}

	return l
}

// Supports kind is a registered collateral
func (l *Ledger) Supports(kind string) bool {
	return l.kinds[kind]
}

// Collateral deposited amount of kind
func (l *Ledger) Collateral(user, kind string) *uint256.Int {
	return l.get(key{user, kind})
}

// Debt minted amount
func (l *Ledger) Debt(user string) *uint256.Int {
	return l.get(key{user, core.PositionKindDebt})
}

// Deposit increase the collateral position
func (l *Ledger) Deposit(user, kind string, amount *uint256.Int) error {
	if !l.Supports(kind) {
		return core.ErrUnsupportedCollateral
	}

	return l.add(key{user, kind}, amount)
}

// Withdraw decrease the collateral position
func (l *Ledger) Withdraw(user, kind string, amount *uint256.Int) error {
	if !l.Supports(kind) {
		return core.ErrUnsupportedCollateral
	}

	return l.sub(key{user, kind}, amount)
}

// Mint increase the debt position
func (l *Ledger) Mint(user string, amount *uint256.Int) error {
	return l.add(key{user, core.PositionKindDebt}, amount)
}

// Burn decrease the debt position
func (l *Ledger) Burn(user string, amount *uint256.Int) error {
	return l.sub(key{user, core.PositionKindDebt}, amount)
}

// Accounts every account with at least one entry, sorted
func (l *Ledger) Accounts() []string {
	seen := make(map[string]bool)
	users := make([]string, 0)
	for k := range l.values {
		if !seen[k.user] {
			seen[k.user] = true
			users = append(users, k.user)
		}
	}

	sort.Strings(users)
	return users
}

// Checkpoint marks the journal position
func (l *Ledger) Checkpoint() int {
	return len(l.journal)
}

// Revert undo every write after checkpoint
func (l *Ledger) Revert(checkpoint int) {
	for i := len(l.journal) - 1; i >= checkpoint; i-- {
		e := l.journal[i]
		if e.existed {
			l.values[e.key] = e.prev
		} else {
			delete(l.values, e.key)
		}
	}

	l.journal = l.journal[:checkpoint]
}

// Commit keep the writes after checkpoint, the journal is dropped once the outermost checkpoint commits
func (l *Ledger) Commit(checkpoint int) {
	if checkpoint == 0 {
		l.journal = l.journal[:0]
	}
}

// Changes current value of every entry written after checkpoint, in write order
func (l *Ledger) Changes(checkpoint int) []*core.Position {
	seen := make(map[key]bool)
	positions := make([]*core.Position, 0)
	for _, e := range l.journal[checkpoint:] {
		if seen[e.key] {
			continue
		}

		seen[e.key] = true
		positions = append(positions, &core.Position{
			UserID: e.key.user,
			Kind:   e.key.kind,
			Amount: l.get(e.key),
		})
	}

	return positions
}

// Restore load persisted positions, bypassing the journal
func (l *Ledger) Restore(positions []*core.Position) error {
	for _, p := range positions {
		if !p.IsDebt() && !l.Supports(p.Kind) {
			return core.ErrUnsupportedCollateral
		}

		amount := new(uint256.Int)
		if p.Amount != nil {
			amount.Set(p.Amount)
		}

		l.values[key{p.UserID, p.Kind}] = amount
	}

	return nil
}

func (l *Ledger) get(k key) *uint256.Int {
	if v, ok := l.values[k]; ok {
		return v.Clone()
	}

	return new(uint256.Int)
}

func (l *Ledger) add(k key, amount *uint256.Int) error {
	v, err := dsc.Add(l.get(k), amount)
	if err != nil {
		return err
	}

	l.set(k, v)
	return nil
}

func (l *Ledger) sub(k key, amount *uint256.Int) error {
	v, err := dsc.Sub(l.get(k), amount)
	if err != nil {
		return err
	}

	l.set(k, v)
	return nil
}

func (l *Ledger) set(k key, v *uint256.Int) {
	prev, existed := l.values[k]
	l.journal = append(l.journal, entry{key: k, prev: prev, existed: existed})
	l.values[k] = v
}
