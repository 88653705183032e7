package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	engine "github.com/edcenter/mocktest/internal/exam"
	"github.com/edcenter/mocktest/internal/screens/exam"
)

// bridge carries controller notifications into the Bubble Tea program.
// The controller must never block on the UI, so only the newest
// snapshot is kept and a separate goroutine delivers it.
type bridge struct {
	p      *tea.Program
	latest chan engine.Snapshot
}

func newBridge() *bridge {
	return &bridge{latest: make(chan engine.Snapshot, 1)}
}

// observe is called from the controller goroutine only.
func (b *bridge) observe(s engine.Snapshot) {
	select {
	case <-b.latest:
	default:
	}
	select {
	case b.latest <- s:
	default:
	}
}

func (b *bridge) pump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-b.latest:
			b.p.Send(exam.SnapshotMsg{Snapshot: s})
		}
	}
}

// confirm asks the user whether the question bank may be used. A
// cancelled context counts as a refusal.
func (b *bridge) confirm(ctx context.Context, cause error) bool {
	reply := make(chan bool, 1)
	b.p.Send(exam.FallbackPromptMsg{Cause: cause, Reply: reply})
	select {
	case ok := <-reply:
		return ok
	case <-ctx.Done():
		return false
	}
}
