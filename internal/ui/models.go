package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/herderapp/herder/internal/catalog"
)

// selectedEntry returns the highlighted catalog entry, if any.
func (m Model) selectedEntry() (catalog.Entry, bool) {
	entries := m.catalogSnap.Entries
	if m.selectedRow < 0 || m.selectedRow >= len(entries) {
		return catalog.Entry{}, false
	}
	return entries[m.selectedRow], true
}

// renderModels renders the split content area: models table on the left,
// detail pane on the right.
func (m Model) renderModels() string {
	contentHeight := m.contentHeight()

	// Extra wide terminals give the detail pane more room.
	var tableWidth int
	if m.width >= 160 {
		tableWidth = m.width * 40 / 100
	} else {
		tableWidth = m.width * 50 / 100
	}
	detailWidth := m.width - tableWidth

	tableFocused := m.focusedPane == 0
	tableTitle := fmt.Sprintf("Models (%d)", len(m.catalogSnap.Entries))
	tableBg := m.theme.SurfaceAlt
	if tableFocused {
		tableBg = m.theme.FocusBg
	}
	tableContent := m.renderModelRows(tableWidth-2, tableBg)
	tablePane := m.renderTitledBox(tableTitle, tableContent, tableWidth, contentHeight, tableFocused)

	var detailContent string
	if entry, ok := m.selectedEntry(); ok {
		detailContent = m.renderEntryDetail(entry, detailWidth-4, m.theme.SurfaceAlt)
	} else {
		detailContent = lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Muted)).
			Background(lipgloss.Color(m.theme.SurfaceAlt)).
			Render(m.emptyCatalogMessage())
	}
	detailPane := m.renderTitledBox("Details", detailContent, detailWidth, contentHeight, false)

	return lipgloss.JoinHorizontal(lipgloss.Top, tablePane, detailPane)
}

func (m Model) emptyCatalogMessage() string {
	if !m.catalogSnap.HasLoaded {
		return "Loading models..."
	}
	if m.catalogSnap.LastError != nil {
		return "Model list unavailable"
	}
	return "No models installed"
}

// renderModelRows renders the table body: a header row plus one row per
// model, the selected one highlighted.
func (m Model) renderModelRows(width int, bgColor string) string {
	entries := m.catalogSnap.Entries
	if len(entries) == 0 {
		return ""
	}

	nameWidth, sizeWidth := columnWidths(width)

	header := padRight("NAME", nameWidth) + padRight("SIZE", sizeWidth) + "MODIFIED"
	headerLine := lipgloss.NewStyle().
		Background(lipgloss.Color(bgColor)).
		Foreground(lipgloss.Color(m.theme.Faint)).
		Bold(true).
		Width(width).
		Render(truncate(header, width))

	lines := []string{headerLine}
	for i, entry := range entries {
		row := padRight(truncate(entry.Name, nameWidth-1), nameWidth) +
			padRight(catalog.FormatSize(entry.SizeBytes), sizeWidth) +
			entry.Modified
		row = truncate(row, width)

		rowBg := bgColor
		fg := m.theme.Text
		if i == m.selectedRow {
			rowBg = m.theme.SelectionBg
			fg = m.theme.SelectionText
		}
		lines = append(lines, lipgloss.NewStyle().
			Background(lipgloss.Color(rowBg)).
			Foreground(lipgloss.Color(fg)).
			Width(width).
			Render(row))
	}

	return strings.Join(lines, "\n")
}

// columnWidths sizes the NAME and SIZE columns for the given table width.
func columnWidths(width int) (name, size int) {
	name = width * 45 / 100
	if name < 12 {
		name = 12
	}
	size = 10
	return name, size
}

// renderEntryDetail renders the right-hand pane for one model.
func (m Model) renderEntryDetail(entry catalog.Entry, width int, bgColor string) string {
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)

	row := func(label, value string) string {
		return bg.Render(padRight(label, 10), styles.MutedText) +
			bg.Render(truncate(value, width-10), styles.Text)
	}

	lines := []string{
		bg.Render(truncate(entry.Name, width), styles.AccentText.Bold(true)),
		"",
		row("ID", entry.ID),
		row("Size", catalog.FormatSize(entry.SizeBytes)),
		row("Modified", entry.Modified),
		row("Path", truncateMiddle(entry.InstallPath, width-10)),
	}

	if loaded, ok := m.loadedState(entry.Name); ok {
		lines = append(lines, "", bg.Render("Loaded", styles.SuccessText)+bg.Space()+
			bg.Render(loaded, styles.MutedText))
	}

	lines = append(lines, "",
		bg.Render("Press Enter for the full model card", styles.FaintText))

	return strings.Join(lines, "\n")
}

// loadedState reports whether the model is currently loaded on the
// server, with a short VRAM summary.
func (m Model) loadedState(name string) (string, bool) {
	for _, p := range m.serverSnap.Running {
		if p.Name == name || p.Model == name {
			return catalog.FormatSize(p.SizeVRAM) + " VRAM", true
		}
	}
	return "", false
}

// renderTitledBox draws a bordered box with an embedded centered title.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := width - 2
	titleLen := len(title)
	leftPad := (innerWidth - titleLen - 2) / 2
	if leftPad < 0 {
		leftPad = 0
	}
	rightPad := innerWidth - titleLen - 2 - leftPad
	if rightPad < 0 {
		rightPad = 0
	}

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2

	var paddedLines []string
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
