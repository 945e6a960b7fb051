package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.Logo.Render("liftlog")}

	parts = append(parts, styles.MutedText.Render(fmt.Sprintf("Workouts: %d", m.list.Len())))

	if m.loading {
		parts = append(parts, styles.AccentText.Render(m.spin.View()+" refreshing"))
	} else if m.opening {
		parts = append(parts, styles.AccentText.Render(m.spin.View()+" opening"))
	}

	if m.errText != "" {
		parts = append(parts, styles.DangerText.Render(truncate(m.errText, m.width/2)))
	} else if m.notice != "" {
		parts = append(parts, styles.SuccessText.Render(m.notice))
	}

	content := parts[0]
	for _, p := range parts[1:] {
		content += "  " + p
	}

	return styles.Header.Width(m.width).Render(content)
}

// renderFooter renders the bottom key hint bar.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	hints := "a add  enter view  d delete  r refresh  h help  q quit"
	theme := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Faint)).
		Render("  " + m.theme.Name)

	return styles.Footer.Width(m.width).Render(hints + theme)
}
