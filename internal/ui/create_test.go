package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCreateModal_DefaultsToToday(t *testing.T) {
	m := newCreateModal(nil, nil)
	if got := m.date.Value(); got != time.Now().Format(time.DateOnly) {
		t.Fatalf("date default = %q, want today", got)
	}
	if m.step != createStepDate {
		t.Fatalf("step = %d, want the date prompt", m.step)
	}
}

func TestCreateModal_BadDateBlocksTypePrompt(t *testing.T) {
	m := newCreateModal(nil, nil)
	keys := DefaultKeyMap()

	m.date.SetValue("28-08-2026")

	next, cmd, closed := m.Update(keyPress("enter"), keys)
	m = next.(*createModal)
	if closed {
		t.Fatal("modal closed on invalid date")
	}
	if cmd != nil {
		t.Fatal("request issued for invalid date")
	}
	if m.step != createStepDate {
		t.Fatal("type prompt shown despite invalid date")
	}
	if m.errText == "" {
		t.Fatal("no validation error surfaced")
	}
}

func TestCreateModal_ValidDateAdvancesToType(t *testing.T) {
	m := newCreateModal(nil, nil)
	keys := DefaultKeyMap()

	m.date.SetValue("2026-08-28")
	next, _, _ := m.Update(keyPress("enter"), keys)
	m = next.(*createModal)

	if m.step != createStepType {
		t.Fatalf("step = %d after valid date, want the type prompt", m.step)
	}
	if m.errText != "" {
		t.Fatalf("errText = %q, want empty", m.errText)
	}

	for _, r := range "Pull" {
		next, _, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, keys)
		m = next.(*createModal)
	}
	if got := m.wtype.Value(); got != "Pull" {
		t.Fatalf("type value = %q, want Pull", got)
	}
}

func TestCreateModal_RequiresType(t *testing.T) {
	m := newCreateModal(nil, nil)
	keys := DefaultKeyMap()

	m.date.SetValue("2026-08-28")
	next, _, _ := m.Update(keyPress("enter"), keys)
	m = next.(*createModal)
	m.wtype.SetValue("  ")

	next, cmd, _ := m.Update(keyPress("enter"), keys)
	m = next.(*createModal)
	if cmd != nil || m.errText == "" {
		t.Fatalf("empty type accepted: cmd=%v errText=%q", cmd, m.errText)
	}
	if m.submitting {
		t.Fatal("submitting guard set for invalid input")
	}
}

func TestCreateModal_SubmitIssuesRequestAndGuards(t *testing.T) {
	m := newCreateModal(nil, nil)
	keys := DefaultKeyMap()

	m.date.SetValue("2026-08-28")
	next, _, _ := m.Update(keyPress("enter"), keys)
	m = next.(*createModal)
	m.wtype.SetValue("Push")

	next, cmd, closed := m.Update(keyPress("enter"), keys)
	m = next.(*createModal)
	if closed {
		t.Fatal("modal closed before the result arrived")
	}
	if cmd == nil {
		t.Fatal("no request issued for valid input")
	}
	if !m.submitting {
		t.Fatal("submitting guard not set")
	}

	// Further input is frozen while the request is in flight.
	next, cmd, closed = m.Update(keyPress("enter"), keys)
	m = next.(*createModal)
	if cmd != nil || closed {
		t.Fatal("duplicate submit accepted while in flight")
	}
}

func TestCreateModal_BackReturnsToDatePrompt(t *testing.T) {
	m := newCreateModal(nil, nil)
	keys := DefaultKeyMap()

	m.date.SetValue("2026-08-28")
	next, _, _ := m.Update(keyPress("enter"), keys)
	m = next.(*createModal)

	next, _, _ = m.Update(keyPress("shift+tab"), keys)
	m = next.(*createModal)
	if m.step != createStepDate {
		t.Fatalf("step = %d after back, want the date prompt", m.step)
	}
}

func TestCreateModal_EscapeCancels(t *testing.T) {
	m := newCreateModal(nil, nil)
	keys := DefaultKeyMap()

	_, cmd, closed := m.Update(keyPress("esc"), keys)
	if !closed || cmd != nil {
		t.Fatal("escape did not cancel cleanly")
	}
}
