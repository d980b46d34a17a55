package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/herderapp/herder/internal/logsink"
	"github.com/herderapp/herder/internal/prefs"
)

// handleKey processes keyboard input. Overlays get first claim on keys;
// the main view routes by focused pane after the global bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayHelp, overlayDetails:
		// Any key closes the passive overlays.
		m.overlay = overlayNone
		return m, nil
	case overlayInstall:
		return m.handleInstallKey(msg)
	case overlayFolder:
		return m.handleFolderKey(msg)
	case overlayConfirmDelete:
		return m.handleConfirmKey(msg, func(m Model) (tea.Model, tea.Cmd) {
			m.logLine(logsink.Info, "deleting "+m.pendingName+"...")
			return m, removeCmd(m.ctx, m.ctl, m.pendingName)
		})
	case overlayConfirmCleanup:
		return m.handleConfirmKey(msg, func(m Model) (tea.Model, tea.Cmd) {
			return m, cleanupCmd(m.ctx, m.ctl, m.pendingName)
		})
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.overlay = overlayHelp
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.focusedPane = 1 - m.focusedPane
		return m, nil

	case key.Matches(msg, m.keys.Install):
		return m.openInstallPrompt()

	case key.Matches(msg, m.keys.Folder):
		return m.openFolderPrompt()

	case key.Matches(msg, m.keys.Refresh):
		return m, refreshCmd(m.ctx, m.ctl)

	case key.Matches(msg, m.keys.CheckTool):
		return m, checkVersionCmd(m.ctx, m.ctl)

	case key.Matches(msg, m.keys.Cancel):
		if !m.installing {
			return m, nil
		}
		if m.ctl.CancelPull() {
			m.cancelling = true
			m.logLine(logsink.Warn, "cancelling install of "+m.installName+"...")
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearLog):
		m.sink.Clear()
		m.updateLogViewport()
		return m, nil
	}

	if m.focusedPane == 1 {
		return m.handleLogKey(msg)
	}
	return m.handleModelsKey(msg)
}

// handleModelsKey processes keys while the models table has focus.
func (m Model) handleModelsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.catalogSnap.Entries)

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		if count > 0 {
			m.selectedRow = count - 1
		}
	case key.Matches(msg, m.keys.Delete):
		if entry, ok := m.selectedEntry(); ok {
			m.pendingName = entry.Name
			m.overlay = overlayConfirmDelete
		}
	case key.Matches(msg, m.keys.Details):
		if entry, ok := m.selectedEntry(); ok {
			return m, showCmd(m.ctx, m.ctl, entry.Name)
		}
	}

	return m, nil
}

// handleLogKey processes keys while the log pane has focus.
func (m Model) handleLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleFollow):
		m.follow = !m.follow
		m.savePrefs()
		m.updateLogViewport()
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.follow = false
		m.logViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		return m, nil
	}

	// Scrolling detaches follow so the position sticks.
	switch msg.String() {
	case "j", "down", "k", "up", "pgup", "pgdown", "ctrl+u", "ctrl+d":
		m.follow = false
	}
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

func (m Model) openInstallPrompt() (tea.Model, tea.Cmd) {
	if m.installing {
		m.logLine(logsink.Error, "an install is already running: "+m.installName)
		return m, nil
	}
	m.overlay = overlayInstall
	m.recommendedIdx = -1
	m.input.SetValue("")
	m.input.Placeholder = recommendedModels[0]
	m.input.Focus()
	return m, nil
}

func (m Model) openFolderPrompt() (tea.Model, tea.Cmd) {
	m.overlay = overlayFolder
	m.input.SetValue(m.ctl.Config().EffectiveModelsDir())
	m.input.Placeholder = ""
	m.input.CursorEnd()
	m.input.Focus()
	return m, nil
}

// handleInstallKey drives the install prompt. Up and down cycle through
// the recommended models; enter starts the pull.
func (m Model) handleInstallKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.overlay = overlayNone
		m.input.Blur()
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		m.overlay = overlayNone
		m.input.Blur()
		if name == "" {
			return m, nil
		}
		return m, startPullCmd(m.ctl, name)
	case "down":
		m.recommendedIdx = (m.recommendedIdx + 1) % len(recommendedModels)
		m.input.SetValue(recommendedModels[m.recommendedIdx])
		m.input.CursorEnd()
		return m, nil
	case "up":
		if m.recommendedIdx < 0 {
			m.recommendedIdx = 0
		}
		m.recommendedIdx = (m.recommendedIdx + len(recommendedModels) - 1) % len(recommendedModels)
		m.input.SetValue(recommendedModels[m.recommendedIdx])
		m.input.CursorEnd()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleFolderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.overlay = overlayNone
		m.input.Blur()
		return m, nil
	case "enter":
		dir := strings.TrimSpace(m.input.Value())
		m.overlay = overlayNone
		m.input.Blur()
		if dir == "" {
			return m, nil
		}
		return m, saveFolderCmd(m.ctl, dir)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleConfirmKey resolves a yes/no overlay. confirm runs on y or enter.
func (m Model) handleConfirmKey(msg tea.KeyMsg, confirm func(Model) (tea.Model, tea.Cmd)) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "y", "Y", "enter":
		m.overlay = overlayNone
		return confirm(m)
	case "n", "N", "esc":
		m.overlay = overlayNone
		return m, nil
	}
	return m, nil
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, FollowLogs: m.follow})
}
