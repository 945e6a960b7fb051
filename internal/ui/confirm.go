package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbracken/liftlog/internal/api"
	"github.com/tbracken/liftlog/internal/workout"
)

// confirmModal asks before a delete. The request resolves at the root model.
type confirmModal struct {
	ctx    context.Context
	client *api.Client

	target workout.Workout
	busy   bool
}

func newConfirmModal(ctx context.Context, client *api.Client, target workout.Workout) *confirmModal {
	return &confirmModal{
		ctx:    ctx,
		client: client,
		target: target,
	}
}

// Update implements Modal.
func (m *confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	if m.busy {
		return m, nil, false
	}

	switch {
	case key.Matches(keyMsg, keys.Deny):
		return m, nil, true

	case key.Matches(keyMsg, keys.Confirm):
		m.busy = true
		date := workout.DateOnly(m.target.Date)
		return m, deleteWorkoutCmd(m.ctx, m.client, date), false
	}

	return m, nil, false
}

// View implements Modal.
func (m *confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Render(fmt.Sprintf("Delete workout %s (%s)?", m.target.DisplayDate(), m.target.Type)))
	b.WriteString("\n\n")
	if m.busy {
		b.WriteString(styles.WarningText.Render("Deleting..."))
	} else {
		b.WriteString(styles.DangerText.Render("y delete") + "  " + styles.FaintText.Render("n cancel"))
	}

	box := renderModalBox(theme, "Confirm Delete", b.String(), 46)
	return placeOverlay(theme, box, width, height)
}
