package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbracken/liftlog/internal/state"
	"github.com/tbracken/liftlog/internal/workout"
)

func testEditor(t *testing.T, exercises []workout.Exercise) *editorModal {
	t.Helper()
	w := workout.Workout{Date: "2026-08-28", Type: "Push"}
	return newEditorModal(nil, nil, w, exercises)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEditorModal_StagesFetchedExercises(t *testing.T) {
	m := testEditor(t, []workout.Exercise{
		{Name: "Bench", Sets: 3, Reps: 8, Weight: 60},
		{Name: "Row", Sets: 4, Reps: 10, Weight: 40},
	})

	if m.editor.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.editor.Len())
	}
	if m.focusRow != 0 || m.focusCol != state.FieldName {
		t.Fatalf("focus = (%d, %d), want (0, FieldName)", m.focusRow, m.focusCol)
	}
	if got := m.input.Value(); got != "Bench" {
		t.Fatalf("focused input = %q, want Bench", got)
	}
}

func TestEditorModal_TabMovesFocusAndCommits(t *testing.T) {
	m := testEditor(t, []workout.Exercise{{Name: "Bench", Sets: 3, Reps: 8, Weight: 60}})
	keys := DefaultKeyMap()

	m.input.SetValue("Incline Bench")
	next, _, closed := m.Update(keyPress("tab"), keys)
	if closed {
		t.Fatal("tab closed the modal")
	}
	m = next.(*editorModal)

	rows := m.editor.Rows()
	if rows[0].Fields[state.FieldName] != "Incline Bench" {
		t.Fatalf("staged name = %q, want the committed edit", rows[0].Fields[state.FieldName])
	}
	if m.focusCol != state.FieldSets {
		t.Fatalf("focusCol = %d, want FieldSets", m.focusCol)
	}
	if got := m.input.Value(); got != "3" {
		t.Fatalf("focused input = %q, want 3", got)
	}
}

func TestEditorModal_FocusWrapsAround(t *testing.T) {
	m := testEditor(t, []workout.Exercise{{Name: "Bench"}})
	keys := DefaultKeyMap()

	// Backwards from the first cell lands on the last cell of the last row.
	next, _, _ := m.Update(keyPress("shift+tab"), keys)
	m = next.(*editorModal)
	if m.focusCol != state.FieldNotes || m.focusRow != 0 {
		t.Fatalf("focus = (%d, %d), want (0, FieldNotes)", m.focusRow, m.focusCol)
	}

	next, _, _ = m.Update(keyPress("tab"), keys)
	m = next.(*editorModal)
	if m.focusCol != state.FieldName || m.focusRow != 0 {
		t.Fatalf("focus = (%d, %d), want wrap to (0, FieldName)", m.focusRow, m.focusCol)
	}
}

func TestEditorModal_AddAndRemoveRows(t *testing.T) {
	m := testEditor(t, nil)
	keys := DefaultKeyMap()

	next, _, _ := m.Update(keyPress("ctrl+n"), keys)
	m = next.(*editorModal)
	if m.editor.Len() != 1 {
		t.Fatalf("Len after add = %d, want 1", m.editor.Len())
	}
	if got := m.input.Value(); got != "New Exercise" {
		t.Fatalf("focused input = %q, want default name", got)
	}

	next, _, _ = m.Update(keyPress("ctrl+r"), keys)
	m = next.(*editorModal)
	if m.editor.Len() != 0 {
		t.Fatalf("Len after remove = %d, want 0", m.editor.Len())
	}

	// Removing from an empty editor is a no-op.
	next, _, closed := m.Update(keyPress("ctrl+r"), keys)
	m = next.(*editorModal)
	if closed || m.editor.Len() != 0 {
		t.Fatal("remove on empty editor misbehaved")
	}
}

func TestEditorModal_EscapeDiscardsEdits(t *testing.T) {
	m := testEditor(t, []workout.Exercise{{Name: "Bench"}})
	keys := DefaultKeyMap()

	m.input.SetValue("Changed")
	_, _, closed := m.Update(keyPress("esc"), keys)
	if !closed {
		t.Fatal("escape did not close the modal")
	}
	if m.editor.IsOpen() {
		t.Fatal("editor still open after escape")
	}
}

func TestEditorModal_SaveIssuesRequestAndGuards(t *testing.T) {
	m := testEditor(t, []workout.Exercise{{Name: "Bench", Sets: 3, Reps: 8, Weight: 60}})
	keys := DefaultKeyMap()

	next, _, closed := m.Update(keyPress("ctrl+s"), keys)
	m = next.(*editorModal)
	if closed {
		t.Fatal("save closed the modal before the result arrived")
	}
	if !m.saving {
		t.Fatal("saving guard not set")
	}

	// Keys are frozen while the save is in flight.
	before := m.editor.Rows()
	next, _, closed = m.Update(keyPress("ctrl+n"), keys)
	m = next.(*editorModal)
	if closed || m.editor.Len() != len(before) {
		t.Fatal("input accepted while saving")
	}
}

func TestEditorModal_SaveFailureKeepsStagedEdits(t *testing.T) {
	m := testEditor(t, []workout.Exercise{{Name: "Bench", Sets: 3, Reps: 8, Weight: 60}})
	keys := DefaultKeyMap()

	next, _, _ := m.Update(keyPress("ctrl+s"), keys)
	m = next.(*editorModal)

	next, _, closed := m.Update(saveResultMsg{err: errors.New("boom")}, keys)
	m = next.(*editorModal)
	if closed {
		t.Fatal("modal closed on save failure")
	}
	if m.saving {
		t.Fatal("saving guard still set after failure")
	}
	if m.errText == "" {
		t.Fatal("no error surfaced after save failure")
	}
	if m.editor.Len() != 1 {
		t.Fatalf("staged rows = %d after failure, want 1", m.editor.Len())
	}
}

func TestEditorModal_SaveSuccessClosesAndNotifies(t *testing.T) {
	m := testEditor(t, []workout.Exercise{{Name: "Bench", Sets: 3, Reps: 8, Weight: 60}})
	keys := DefaultKeyMap()

	next, _, _ := m.Update(keyPress("ctrl+s"), keys)
	m = next.(*editorModal)

	updated := workout.Workout{
		Date: "2026-08-28",
		Data: `{"exercise_0":{"ex_name":"Bench","sets":3,"reps":8,"weight":60,"notes":""}}`,
	}
	_, cmd, closed := m.Update(saveResultMsg{updated: updated}, keys)
	if !closed {
		t.Fatal("modal stayed open after successful save")
	}
	if cmd == nil {
		t.Fatal("expected a saved notification command")
	}
	msg := cmd()
	saved, ok := msg.(editorSavedMsg)
	if !ok {
		t.Fatalf("cmd message = %T, want editorSavedMsg", msg)
	}
	if saved.date != "2026-08-28" {
		t.Fatalf("saved date = %q, want 2026-08-28", saved.date)
	}
}

func TestEditorModal_TypingStagesText(t *testing.T) {
	m := testEditor(t, []workout.Exercise{{Name: ""}})
	keys := DefaultKeyMap()

	for _, r := range "Squat" {
		next, _, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, keys)
		m = next.(*editorModal)
	}

	rows := m.editor.Rows()
	if rows[0].Fields[state.FieldName] != "Squat" {
		t.Fatalf("staged name = %q, want Squat", rows[0].Fields[state.FieldName])
	}
}
