package ui

import (
	"fmt"
	"strings"
)

const (
	colIndexWidth = 5
	colDateWidth  = 14
)

// renderTable renders the workout listing. The table is a pure projection of
// the list state; it is rebuilt from scratch every frame.
func (m Model) renderTable(height int) string {
	styles := m.theme.Styles()

	typeWidth := m.width - colIndexWidth - colDateWidth - 4
	if typeWidth < 10 {
		typeWidth = 10
	}

	var b strings.Builder

	header := fmt.Sprintf(" %s %s %s",
		padRight("#", colIndexWidth),
		padRight("Date", colDateWidth),
		padRight("Type", typeWidth),
	)
	b.WriteString(styles.AccentText.Bold(true).Render(header))
	b.WriteString("\n")

	workouts := m.list.Workouts()
	if len(workouts) == 0 {
		if m.loading {
			b.WriteString(styles.MutedText.Render(" " + m.spin.View() + " Loading workouts..."))
		} else {
			b.WriteString(styles.MutedText.Render(" No workouts yet. Press 'a' to add one."))
		}
		return b.String()
	}

	// Keep the selected row on screen.
	visible := height - 1
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.selectedRow >= visible {
		start = m.selectedRow - visible + 1
	}
	end := start + visible
	if end > len(workouts) {
		end = len(workouts)
	}

	for i := start; i < end; i++ {
		w := workouts[i]
		line := fmt.Sprintf(" %s %s %s",
			padRight(fmt.Sprintf("%d", i+1), colIndexWidth),
			padRight(w.DisplayDate(), colDateWidth),
			padRight(w.Type, typeWidth),
		)
		if i == m.selectedRow {
			b.WriteString(styles.Selected.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
