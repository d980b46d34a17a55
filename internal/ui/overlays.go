package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderModal centers boxed content over a blank backdrop.
func (m Model) renderModal(content string, width int) string {
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(width)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// renderInstallPrompt renders the model-name prompt for installs.
func (m Model) renderInstallPrompt() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Install model"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Recommended:"))
	b.WriteString("\n")
	for i, name := range recommendedModels {
		style := styles.FaintText
		marker := "  "
		if i == m.recommendedIdx {
			style = styles.AccentText
			marker = "> "
		}
		b.WriteString(style.Render(marker + name))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("up/down cycle  ·  enter install  ·  esc cancel"))

	return m.renderModal(b.String(), 44)
}

// renderFolderPrompt renders the models-directory prompt.
func (m Model) renderFolderPrompt() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Models folder"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Stored models move only if you move them yourself;"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("new installs land in the new folder."))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter save  ·  esc cancel"))

	return m.renderModal(b.String(), 56)
}

// renderConfirm renders a yes/no question.
func (m Model) renderConfirm(title, question string) string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(question))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("y confirm  ·  n cancel"))

	return m.renderModal(b.String(), 44)
}

// renderDetails renders the full model card from `show`.
func (m Model) renderDetails() string {
	styles := m.theme.Styles()

	width := m.width * 70 / 100
	if width > 90 {
		width = 90
	}
	if width < 40 {
		width = 40
	}

	maxLines := m.height - 8
	if maxLines < 5 {
		maxLines = 5
	}

	lines := strings.Split(strings.TrimRight(m.detailBody, "\n"), "\n")
	clipped := false
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		clipped = true
	}
	for i, line := range lines {
		lines[i] = styles.Text.Render(truncate(line, width-6))
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(m.detailName))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	if clipped {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("..."))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("any key to close"))

	return m.renderModal(b.String(), width)
}

// renderHelp renders the keyboard shortcut overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Models",
			items: []helpItem{
				{"i", "Install model"},
				{"d", "Delete model"},
				{"x", "Cancel install"},
				{"enter", "Model details"},
				{"r", "Refresh list"},
			},
		},
		{
			title: "Setup",
			items: []helpItem{
				{"o", "Models folder"},
				{"c", "Check ollama"},
			},
		},
		{
			title: "Log",
			items: []helpItem{
				{"Space", "Toggle follow"},
				{"j/k", "Scroll"},
				{"C", "Clear"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"tab", "Switch pane"},
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	return m.renderModal(b.String(), 40)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
