package engine

import (
	"context"
	"fmt"

	"dsc/core"
	"dsc/pkg/id"

	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"
)

// unit one atomic engine operation
type unit struct {
	traceID string
	events  []*core.Event
}

func (u *unit) emit(event *core.Event) {
	event.TraceID = u.traceID
	u.events = append(u.events, event)
}

type checkpoint struct {
	target core.Checkpointer
	at     int
}

// checkpointers the token collaborators that can be rolled back with the ledger
func (e *Engine) checkpointers() []core.Checkpointer {
	var (
		seen = make(map[core.Checkpointer]bool)
		list []core.Checkpointer
	)

	add := func(v interface{}) {
		if c, ok := v.(core.Checkpointer); ok && !seen[c] {
			seen[c] = true
			list = append(list, c)
		}
	}

	add(e.stable)
	for _, symbol := range e.symbols {
		add(e.tokens[symbol])
	}

	return list
}

// Serialize run fn exclusively with the engine operations, without a
// checkpoint. Used for collaborator writes from outside the engine.
func (e *Engine) Serialize(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, release, err := e.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer release()

	return fn(ctx)
}

// execute run fn as one guarded, all or nothing operation. On any failure,
// panics included, the ledger and every checkpointed collaborator are rolled
// back and no event is published.
func (e *Engine) execute(ctx context.Context, op string, fn func(ctx context.Context, u *unit) error) (err error) {
	ctx, release, err := e.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer release()

	u := &unit{traceID: id.GenTraceID()}
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"op":       op,
		"trace_id": u.traceID,
	})
	ctx = logger.WithContext(ctx, log)

	ledgerAt := e.ledger.Checkpoint()
	points := make([]checkpoint, 0, 4)
	for _, c := range e.checkpointers() {
		points = append(points, checkpoint{target: c, at: c.Checkpoint()})
	}

	committed := false
	defer func() {
		if committed {
			return
		}

		for idx := len(points) - 1; idx >= 0; idx-- {
			points[idx].target.Revert(points[idx].at)
		}
		e.ledger.Revert(ledgerAt)
		if err != nil {
			log.WithError(err).Debugln("reverted")
		}
	}()

	if err = fn(ctx, u); err != nil {
		return err
	}

	if e.positions != nil {
		if changes := e.ledger.Changes(ledgerAt); len(changes) > 0 {
			if err = e.positions.Save(ctx, changes); err != nil {
				log.WithError(err).Errorln("positions.Save")
				return fmt.Errorf("save positions: %w", err)
			}
		}
	}

	for _, p := range points {
		p.target.Commit(p.at)
	}
	e.ledger.Commit(ledgerAt)
	committed = true

	for _, event := range u.events {
		for _, n := range e.notifiers {
			n.Notify(ctx, event)
		}
	}

	return nil
}
