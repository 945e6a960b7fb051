package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style

	Selected lipgloss.Style
}

// themes lists the built-in palettes in cycle order.
var themes = []Theme{
	{
		Name:          "Iron",
		Background:    "#16161e",
		Surface:       "#1f1f2b",
		SelectionBg:   "#3d59a1",
		SelectionText: "#e6e6f0",
		Border:        "#3b3b52",
		BorderFocus:   "#7aa2f7",
		Text:          "#c8c8d8",
		Muted:         "#8787a0",
		Faint:         "#55556d",
		Accent:        "#7aa2f7",
		Success:       "#9ece6a",
		Warning:       "#e0af68",
		Danger:        "#f7768e",
	},
	{
		Name:          "Slate",
		Background:    "#20262c",
		Surface:       "#2a3138",
		SelectionBg:   "#47555f",
		SelectionText: "#f2f5f7",
		Border:        "#3c4750",
		BorderFocus:   "#8fb4c8",
		Text:          "#d5dde2",
		Muted:         "#93a3ad",
		Faint:         "#5d6c75",
		Accent:        "#8fb4c8",
		Success:       "#a3c9a0",
		Warning:       "#d8b06e",
		Danger:        "#d78787",
	},
	{
		Name:          "Paper",
		Background:    "#f4f0e8",
		Surface:       "#e9e3d6",
		SelectionBg:   "#c9bfa8",
		SelectionText: "#2b2620",
		Border:        "#b5ab94",
		BorderFocus:   "#8a6d3b",
		Text:          "#3d3731",
		Muted:         "#70675c",
		Faint:         "#a39a8c",
		Accent:        "#8a6d3b",
		Success:       "#5d7a4a",
		Warning:       "#a4762a",
		Danger:        "#a4403a",
	},
}

// GetTheme returns the theme with the given name, defaulting to the first
// built-in when unknown.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one in cycle order.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
