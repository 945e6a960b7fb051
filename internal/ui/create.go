package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbracken/liftlog/internal/api"
	"github.com/tbracken/liftlog/internal/workout"
)

const (
	createStepDate = iota
	createStepType
)

// createModal is the add-workout flow: two sequenced prompts, date then
// type. The date is validated before the type prompt appears, so a bad date
// never reaches the server. The request itself resolves at the root model,
// which closes the modal on either outcome.
type createModal struct {
	ctx    context.Context
	client *api.Client

	step  int
	date  textinput.Model
	wtype textinput.Model

	submitting bool
	errText    string
}

func newCreateModal(ctx context.Context, client *api.Client) *createModal {
	date := textinput.New()
	date.Prompt = ""
	date.CharLimit = 10
	date.Placeholder = "YYYY-MM-DD"
	date.SetValue(time.Now().Format(time.DateOnly))
	date.Focus()

	wtype := textinput.New()
	wtype.Prompt = ""
	wtype.CharLimit = 40
	wtype.Placeholder = "Push / Pull / Legs..."

	return &createModal{
		ctx:    ctx,
		client: client,
		step:   createStepDate,
		date:   date,
		wtype:  wtype,
	}
}

// Update implements Modal.
func (m *createModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	if m.submitting {
		return m, nil, false
	}

	switch {
	case key.Matches(keyMsg, keys.Escape):
		return m, nil, true

	case key.Matches(keyMsg, keys.PrevField):
		if m.step == createStepType {
			m.backToDate()
		}
		return m, nil, false

	case keyMsg.String() == "enter":
		if m.step == createStepDate {
			m.advanceToType()
			return m, nil, false
		}
		return m.submit()
	}

	var cmd tea.Cmd
	if m.step == createStepDate {
		m.date, cmd = m.date.Update(msg)
	} else {
		m.wtype, cmd = m.wtype.Update(msg)
	}
	return m, cmd, false
}

// advanceToType validates the date before the type prompt is shown.
func (m *createModal) advanceToType() {
	date := strings.TrimSpace(m.date.Value())
	if !workout.ValidDate(date) {
		m.errText = "Date must be YYYY-MM-DD"
		return
	}
	m.errText = ""
	m.step = createStepType
	m.date.Blur()
	m.wtype.Focus()
}

func (m *createModal) backToDate() {
	m.errText = ""
	m.step = createStepDate
	m.wtype.Blur()
	m.date.Focus()
}

func (m *createModal) submit() (Modal, tea.Cmd, bool) {
	date := strings.TrimSpace(m.date.Value())
	wtype := strings.TrimSpace(m.wtype.Value())

	// The date was checked on the way in, but it is re-checked here so the
	// invariant does not depend on the step order.
	if !workout.ValidDate(date) {
		m.errText = "Date must be YYYY-MM-DD"
		return m, nil, false
	}
	if wtype == "" {
		m.errText = "Workout type is required"
		return m, nil, false
	}

	m.submitting = true
	m.errText = ""

	w := workout.Workout{Date: date, Type: wtype, Data: workout.EmptyData}
	return m, createWorkoutCmd(m.ctx, m.client, w), false
}

// View implements Modal.
func (m *createModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder

	b.WriteString(styles.MutedText.Render("Date"))
	b.WriteString("\n")
	b.WriteString(m.renderField(theme, m.date, m.step == createStepDate))
	b.WriteString("\n\n")

	if m.step == createStepType {
		b.WriteString(styles.MutedText.Render("Type"))
		b.WriteString("\n")
		b.WriteString(m.renderField(theme, m.wtype, true))
		b.WriteString("\n\n")
	}

	switch {
	case m.submitting:
		b.WriteString(styles.WarningText.Render("Adding..."))
	case m.errText != "":
		b.WriteString(styles.DangerText.Render(m.errText))
	case m.step == createStepDate:
		b.WriteString(styles.FaintText.Render("enter next  esc cancel"))
	default:
		b.WriteString(styles.FaintText.Render("enter add  shift+tab back  esc cancel"))
	}

	box := renderModalBox(theme, "Add Workout", b.String(), 42)
	return placeOverlay(theme, box, width, height)
}

func (m *createModal) renderField(theme Theme, input textinput.Model, focused bool) string {
	styles := theme.Styles()
	value := input.Value()
	if value == "" && !focused {
		return styles.FaintText.Render(padRight(input.Placeholder, 34))
	}
	if focused {
		return styles.Selected.Render(padRight(value, 34))
	}
	return styles.Text.Render(padRight(value, 34))
}
