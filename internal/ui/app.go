package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/tbracken/liftlog/internal/api"
	"github.com/tbracken/liftlog/internal/config"
	"github.com/tbracken/liftlog/internal/prefs"
	"github.com/tbracken/liftlog/internal/state"
	"github.com/tbracken/liftlog/internal/workout"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *api.Client
	Config    *config.Config
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea. The workout list is
// the only client-side record of truth between fetches; the rendered table
// is a projection of it, regenerated every frame.
type Model struct {
	ctx       context.Context
	client    *api.Client
	config    *config.Config
	prefsPath string

	theme Theme
	keys  keyMap

	width  int
	height int
	ready  bool

	list        state.List
	selectedRow int

	spin    spinner.Model
	loading bool // list fetch in flight
	opening bool // view fetch in flight

	modal    Modal
	showHelp bool

	notice  string
	errText string
}

// New creates the root Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Iron"
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	return Model{
		ctx:       ctx,
		client:    opts.Client,
		config:    opts.Config,
		prefsPath: prefsPath,
		theme:     theme,
		keys:      DefaultKeyMap(),
		spin:      spin,
		loading:   true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spin.Tick,
		loadWorkoutsCmd(m.ctx, m.client),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case workoutsLoadedMsg:
		m.loading = false
		m.errText = ""
		m.list.Replace(msg)
		m.clampSelection()
		return m, nil

	case listErrorMsg:
		// No partial render: the previous table state stays untouched.
		m.loading = false
		logrus.WithError(msg.err).Error("workout list fetch failed")
		m.errText = userMessage(msg.err)
		return m, nil

	case workoutFetchedMsg:
		return m.handleWorkoutFetched(workout.Workout(msg))

	case fetchErrorMsg:
		m.opening = false
		logrus.WithError(msg.err).WithField("date", msg.date).Error("workout fetch failed")
		m.errText = userMessage(msg.err)
		return m, nil

	case createResultMsg:
		return m.handleCreateResult(msg)

	case deleteResultMsg:
		return m.handleDeleteResult(msg)

	case editorSavedMsg:
		m.notice = "Workout saved"
		m.loading = true
		return m, loadWorkoutsCmd(m.ctx, m.client)
	}

	if m.modal != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		var closed bool
		m.modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	if m.showHelp {
		if _, ok := msg.(tea.KeyMsg); ok {
			// Any key closes help.
			m.showHelp = false
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleListKey(keyMsg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTable(m.height - 2))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleListKey processes keyboard input for the list view.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.clearStatus()
		return m, loadWorkoutsCmd(m.ctx, m.client)

	case key.Matches(msg, m.keys.Add):
		m.clearStatus()
		m.modal = newCreateModal(m.ctx, m.client)
		return m, nil

	case key.Matches(msg, m.keys.View):
		w, ok := m.list.Get(m.selectedRow)
		if !ok || m.opening {
			return m, nil
		}
		m.opening = true
		m.clearStatus()
		return m, fetchWorkoutCmd(m.ctx, m.client, w.Date)

	case key.Matches(msg, m.keys.Delete):
		w, ok := m.list.Get(m.selectedRow)
		if !ok {
			return m, nil
		}
		m.clearStatus()
		m.modal = newConfirmModal(m.ctx, m.client, w)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < m.list.Len()-1 {
			m.selectedRow++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if m.list.Len() > 0 {
			m.selectedRow = m.list.Len() - 1
		}
		return m, nil
	}

	return m, nil
}

// handleWorkoutFetched opens the editor for a freshly fetched record. A
// malformed blob aborts the transition: nothing visible changes, the detail
// goes to the log.
func (m Model) handleWorkoutFetched(w workout.Workout) (tea.Model, tea.Cmd) {
	m.opening = false

	exercises, err := workout.DecodeExercises(w.Data)
	if err != nil {
		logrus.WithError(err).WithField("date", w.Date).Error("cannot open workout: malformed exercise data")
		return m, nil
	}

	m.modal = newEditorModal(m.ctx, m.client, w, exercises)
	return m, nil
}

func (m Model) handleCreateResult(msg createResultMsg) (tea.Model, tea.Cmd) {
	m.modal = nil
	if msg.err != nil {
		logrus.WithError(msg.err).WithField("date", msg.created.Date).Error("workout create failed")
		m.errText = userMessage(msg.err)
		return m, nil
	}
	// Optimistic append: one new row, no refetch.
	m.list.Append(msg.created)
	m.selectedRow = m.list.Len() - 1
	m.notice = "Workout added"
	return m, nil
}

func (m Model) handleDeleteResult(msg deleteResultMsg) (tea.Model, tea.Cmd) {
	m.modal = nil
	if msg.err != nil {
		logrus.WithError(msg.err).WithField("date", msg.date).Error("workout delete failed")
		m.errText = userMessage(msg.err)
		return m, nil
	}
	m.list.Remove(msg.date)
	m.clampSelection()
	m.notice = "Workout deleted"
	return m, nil
}

func (m *Model) clampSelection() {
	if m.list.Len() == 0 {
		m.selectedRow = 0
		return
	}
	if m.selectedRow >= m.list.Len() {
		m.selectedRow = m.list.Len() - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

func (m *Model) clearStatus() {
	m.notice = ""
	m.errText = ""
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
