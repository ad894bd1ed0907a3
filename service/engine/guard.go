package engine

import (
	"context"
	"sync"

	"dsc/core"
)

type guardKey struct{}

// guard is the engine wide re-entry lock. A mutating operation holds it for
// its whole duration. Re-entry is recognised only through the context handed
// to collaborators; a call back with an unrelated context waits on mu.
type guard struct {
	mu sync.RWMutex
}

func (g *guard) active(ctx context.Context) bool {
	v, _ := ctx.Value(guardKey{}).(*guard)
	return v == g
}

// enter acquire the guard for a mutating operation, release must be deferred
func (g *guard) enter(ctx context.Context) (context.Context, func(), error) {
	if g.active(ctx) {
		return ctx, nil, core.ErrReentrant
	}

	g.mu.Lock()
	return context.WithValue(ctx, guardKey{}, g), g.mu.Unlock, nil
}

// view acquire the read side, a no-op inside the running operation
func (g *guard) view(ctx context.Context) func() {
	if g.active(ctx) {
		return func() {}
	}

	g.mu.RLock()
	return g.mu.RUnlock
}
