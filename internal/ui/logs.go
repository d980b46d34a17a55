package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/herderapp/herder/internal/logsink"
)

// logPaneHeight sizes the bottom log pane: roughly a third of the
// terminal, clamped so it never dominates or disappears.
func (m Model) logPaneHeight() int {
	h := m.height / 3
	if h < 6 {
		h = 6
	}
	if h > 14 {
		h = 14
	}
	return h
}

// contentHeight is what remains for the models area after the header,
// command bar, and log pane.
func (m Model) contentHeight() int {
	h := m.height - 2 - m.logPaneHeight()
	if h < 4 {
		h = 4
	}
	return h
}

// updateLogViewport re-renders the log content and keeps the scroll
// position pinned to the bottom while following.
func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}
	m.logViewport.Width = m.width - 4
	m.logViewport.Height = m.logPaneHeight() - 2

	bgColor := m.theme.SurfaceAlt
	if m.focusedPane == 1 {
		bgColor = m.theme.FocusBg
	}
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(bgColor))
	m.logViewport.SetContent(m.renderLogContent(m.logViewport.Width, bgColor))

	if m.follow {
		m.logViewport.GotoBottom()
	}
}

// renderLogContent formats the buffered log lines with severity colors.
func (m Model) renderLogContent(width int, bgColor string) string {
	lines := m.sink.Snapshot()
	if len(lines) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Faint)).
			Background(lipgloss.Color(bgColor)).
			Render("Nothing logged yet")
	}

	styles := m.theme.Styles().WithBackground(bgColor)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		style := styles.Text
		switch line.Severity {
		case logsink.Error:
			style = styles.DangerText
		case logsink.Warn:
			style = styles.WarningText
		case logsink.Debug:
			style = styles.FaintText
		}
		out = append(out, lipgloss.NewStyle().
			Background(lipgloss.Color(bgColor)).
			Width(width).
			Render(style.Render(truncate(line.String(), width))))
	}
	return strings.Join(out, "\n")
}

// renderLogPane renders the bordered log pane below the models area.
func (m Model) renderLogPane() string {
	focused := m.focusedPane == 1

	title := "Log"
	if !m.follow {
		title = "Log (paused)"
	}

	return m.renderTitledBox(title, m.logViewport.View(), m.width, m.logPaneHeight(), focused)
}
