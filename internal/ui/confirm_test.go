package ui

import (
	"testing"

	"github.com/tbracken/liftlog/internal/workout"
)

func TestConfirmModal_DenyCloses(t *testing.T) {
	m := newConfirmModal(nil, nil, workout.Workout{Date: "2026-08-28", Type: "Push"})
	keys := DefaultKeyMap()

	_, cmd, closed := m.Update(keyPress("n"), keys)
	if !closed || cmd != nil {
		t.Fatal("deny did not close cleanly")
	}
}

func TestConfirmModal_ConfirmIssuesDeleteOnce(t *testing.T) {
	m := newConfirmModal(nil, nil, workout.Workout{Date: "2026-08-28T00:00:00Z", Type: "Push"})
	keys := DefaultKeyMap()

	next, cmd, closed := m.Update(keyPress("y"), keys)
	m = next.(*confirmModal)
	if closed {
		t.Fatal("modal closed before the result arrived")
	}
	if cmd == nil {
		t.Fatal("no delete issued")
	}
	if !m.busy {
		t.Fatal("busy guard not set")
	}

	// A second confirm while in flight is ignored.
	next, cmd, closed = m.Update(keyPress("y"), keys)
	m = next.(*confirmModal)
	if cmd != nil || closed {
		t.Fatal("duplicate delete accepted while in flight")
	}
}
