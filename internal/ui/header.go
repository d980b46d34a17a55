package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/herderapp/herder/internal/control"
)

// renderHeader renders the one-line status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	compact := m.width < 100
	sep := bg.Spaces(2)

	var parts []string
	parts = append(parts, bg.Render("herder", styles.Logo))
	parts = append(parts, m.renderServerBadge(styles, bg))

	// Current activity badge
	if label := m.activityLabel(); label != "" {
		badge := m.theme.Styles().StatusStyle(label).Render(strings.ToUpper(label))
		if m.installing {
			badge = m.spin.View() + badge
		}
		parts = append(parts, badge)
	}

	// Model count
	parts = append(parts,
		bg.Render("Models:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.catalogSnap.Entries)), styles.Text))

	// Loaded (running) models on the server
	if n := len(m.serverSnap.Running); n > 0 && !compact {
		parts = append(parts,
			bg.Render("Loaded:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", n), styles.SuccessText))
	}

	// Models directory
	dirLimit := 50
	if compact {
		dirLimit = 25
	}
	dir := truncateMiddle(m.ctl.Config().EffectiveModelsDir(), dirLimit)
	parts = append(parts,
		bg.Render("dir", styles.FaintText)+bg.Space()+bg.Render(dir, styles.MutedText))

	// Last refresh timestamp
	if ts := m.formatTimestamp(); ts != "" {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	content := bg.Join(parts, sep)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(content)
}

// renderServerBadge shows server reachability and version.
func (m Model) renderServerBadge(styles Styles, bg BgStyle) string {
	if m.serverSnap.IsOffline() {
		return bg.Render("● OFF", styles.DangerText)
	}
	if !m.serverSnap.Reachable {
		return bg.Render("● ...", styles.WarningText)
	}
	badge := bg.Render("● ON", styles.SuccessText)
	if v := m.serverSnap.ServerVersion; v != "" {
		badge += bg.Space() + bg.Render("v"+v, styles.FaintText)
	}
	return badge
}

// activityLabel names what herder is doing right now, for the status
// badge. Empty means idle with nothing worth flagging.
func (m Model) activityLabel() string {
	switch {
	case m.cancelling:
		return "cancelling"
	case m.installing:
		return "pulling"
	default:
		if _, busy := m.ctl.Busy(control.OpDelete); busy {
			return "deleting"
		}
		return ""
	}
}

func (m Model) formatTimestamp() string {
	last := m.catalogSnap.LastRefresh
	if last.IsZero() {
		return ""
	}
	ts := last.Format("15:04:05")
	since := time.Since(last)
	switch {
	case since < time.Minute:
		ts += " (now)"
	case since < time.Hour:
		ts += fmt.Sprintf(" (%dm ago)", int(since.Minutes()))
	}
	return ts
}

// renderCommandBar renders the context-sensitive key hints.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	if m.focusedPane == 1 {
		followLabel := "Follow"
		if m.follow {
			followLabel = "Pause"
		}
		commands = []cmd{
			{"Space", followLabel},
			{"j/k", "Scroll"},
			{"C", "Clear"},
			{"Tab", "Models"},
			{"?", "More"},
		}
	} else {
		commands = []cmd{
			{"i", "Install"},
			{"d", "Delete"},
			{"Enter", "Details"},
			{"r", "Refresh"},
			{"o", "Folder"},
			{"Tab", "Log"},
			{"?", "More"},
		}
		if m.installing {
			commands = append([]cmd{{"x", "Cancel"}}, commands...)
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
