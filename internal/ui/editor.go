package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/tbracken/liftlog/internal/api"
	"github.com/tbracken/liftlog/internal/state"
	"github.com/tbracken/liftlog/internal/workout"
)

// fieldLabels indexes display labels by state.Field.
var fieldLabels = [state.FieldCount]string{"Exercise", "Sets", "Reps", "Weight", "Notes"}

// fieldWidths indexes cell display widths by state.Field.
var fieldWidths = [state.FieldCount]int{22, 6, 6, 8, 24}

// editorModal is the exercise editor for one workout. Edits are staged in a
// state.Editor and only reach the server on an explicit save; closing the
// modal discards anything staged.
type editorModal struct {
	ctx    context.Context
	client *api.Client

	editor      state.Editor
	workoutType string

	focusRow int
	focusCol state.Field
	input    textinput.Model

	saving  bool
	errText string
}

func newEditorModal(ctx context.Context, client *api.Client, w workout.Workout, exercises []workout.Exercise) *editorModal {
	m := &editorModal{
		ctx:         ctx,
		client:      client,
		workoutType: w.Type,
	}
	m.editor.Open(w.Date, exercises)
	m.input = newCellInput()
	m.loadFocusedCell()
	return m
}

// Update implements Modal.
func (m *editorModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case saveResultMsg:
		return m.handleSaveResult(msg)

	case tea.KeyMsg:
		if m.saving {
			// One save at a time; input is frozen until the result lands.
			return m, nil, false
		}
		return m.handleKey(msg, keys)
	}

	return m, nil, false
}

func (m *editorModal) handleKey(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.editor.Close()
		return m, nil, true

	case key.Matches(msg, keys.Save):
		return m.beginSave()

	case key.Matches(msg, keys.AddRow):
		m.commitFocusedCell()
		m.editor.AddRow()
		m.focusRow = m.editor.Len() - 1
		m.focusCol = state.FieldName
		m.loadFocusedCell()
		return m, nil, false

	case key.Matches(msg, keys.RemoveRow):
		m.commitFocusedCell()
		if m.editor.RemoveLastRow() {
			if m.focusRow >= m.editor.Len() {
				m.focusRow = m.editor.Len() - 1
			}
			if m.focusRow < 0 {
				m.focusRow = 0
			}
			m.loadFocusedCell()
		}
		return m, nil, false

	case key.Matches(msg, keys.NextField):
		m.moveFocus(1)
		return m, nil, false

	case key.Matches(msg, keys.PrevField):
		m.moveFocus(-1)
		return m, nil, false
	}

	if m.editor.Len() == 0 {
		return m, nil, false
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.editor.SetField(m.focusRow, m.focusCol, m.input.Value())
	return m, cmd, false
}

func (m *editorModal) beginSave() (Modal, tea.Cmd, bool) {
	m.commitFocusedCell()

	date, ok := m.editor.Date()
	if !ok {
		return m, nil, true
	}

	data, err := workout.EncodeExercises(m.editor.Exercises())
	if err != nil {
		logrus.WithError(err).WithField("date", date).Error("workout encode failed")
		m.errText = "Cannot encode exercises"
		return m, nil, false
	}

	m.saving = true
	m.errText = ""
	return m, saveWorkoutCmd(m.ctx, m.client, date, data), false
}

// handleSaveResult keeps the modal open with staged edits intact on failure.
// On success the staged rows are replaced by the server's authoritative copy
// before the modal closes, so a reopened editor never shows drifted data.
func (m *editorModal) handleSaveResult(msg saveResultMsg) (Modal, tea.Cmd, bool) {
	m.saving = false

	date, _ := m.editor.Date()
	if msg.err != nil {
		logrus.WithError(msg.err).WithField("date", date).Error("workout save failed")
		m.errText = userMessage(msg.err)
		return m, nil, false
	}

	if exercises, err := workout.DecodeExercises(msg.updated.Data); err != nil {
		logrus.WithError(err).WithField("date", date).Warn("saved workout came back malformed")
	} else {
		m.editor.Replace(exercises)
	}
	m.editor.Close()

	saved := func() tea.Msg { return editorSavedMsg{date: date} }
	return m, saved, true
}

// moveFocus commits the focused cell, then advances focus by delta columns,
// wrapping across rows.
func (m *editorModal) moveFocus(delta int) {
	if m.editor.Len() == 0 {
		return
	}
	m.commitFocusedCell()

	total := m.editor.Len() * int(state.FieldCount)
	pos := m.focusRow*int(state.FieldCount) + int(m.focusCol) + delta
	pos = ((pos % total) + total) % total

	m.focusRow = pos / int(state.FieldCount)
	m.focusCol = state.Field(pos % int(state.FieldCount))
	m.loadFocusedCell()
}

func (m *editorModal) commitFocusedCell() {
	if m.editor.Len() == 0 {
		return
	}
	m.editor.SetField(m.focusRow, m.focusCol, m.input.Value())
}

func (m *editorModal) loadFocusedCell() {
	rows := m.editor.Rows()
	if m.focusRow < 0 || m.focusRow >= len(rows) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(rows[m.focusRow].Fields[m.focusCol])
	m.input.CursorEnd()
}

// View implements Modal.
func (m *editorModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	date, _ := m.editor.Date()
	title := fmt.Sprintf("%s  %s", date, m.workoutType)

	var b strings.Builder

	header := " "
	for f := state.Field(0); f < state.FieldCount; f++ {
		header += padRight(fieldLabels[f], fieldWidths[f]) + " "
	}
	b.WriteString(styles.MutedText.Bold(true).Render(header))
	b.WriteString("\n")

	rows := m.editor.Rows()
	if len(rows) == 0 {
		b.WriteString(styles.FaintText.Render(" No exercises. Press ctrl+n to add one."))
		b.WriteString("\n")
	}

	for i, row := range rows {
		line := " "
		for f := state.Field(0); f < state.FieldCount; f++ {
			cell := row.Fields[f]
			if i == m.focusRow && f == m.focusCol {
				// The live input value, not the staged copy; the selection
				// background stands in for a cursor.
				line += styles.Selected.Render(padRight(m.input.Value(), fieldWidths[f])) + " "
				continue
			}
			line += padRight(cell, fieldWidths[f]) + " "
		}
		if i == m.focusRow {
			b.WriteString(styles.Text.Render(line))
		} else {
			b.WriteString(styles.MutedText.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.saving:
		b.WriteString(styles.WarningText.Render("Saving..."))
	case m.errText != "":
		b.WriteString(styles.DangerText.Render(m.errText))
	default:
		b.WriteString(styles.FaintText.Render("tab next  ctrl+n add  ctrl+r remove  ctrl+s save  esc close"))
	}

	boxWidth := sumFieldWidths() + 8
	if boxWidth > width-4 {
		boxWidth = width - 4
	}

	box := renderModalBox(theme, title, b.String(), boxWidth)
	return placeOverlay(theme, box, width, height)
}

func sumFieldWidths() int {
	total := 0
	for _, w := range fieldWidths {
		total += w + 1
	}
	return total
}

func newCellInput() textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 64
	input.Focus()
	return input
}
