package ui

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/herderapp/herder/internal/catalog"
	"github.com/herderapp/herder/internal/control"
	"github.com/herderapp/herder/internal/logsink"
	"github.com/herderapp/herder/internal/prefs"
	"github.com/herderapp/herder/internal/runner"
	"github.com/herderapp/herder/internal/state"
)

// overlay identifies which modal, if any, is on top of the main view.
type overlay int

const (
	overlayNone overlay = iota
	overlayInstall
	overlayFolder
	overlayConfirmDelete
	overlayConfirmCleanup
	overlayDetails
	overlayHelp
)

// recommendedModels are small models worth suggesting in the install
// prompt. Cycled with up/down while the prompt is open.
var recommendedModels = []string{
	"phi3:3.8b",
	"codegemma:2b",
	"qwen2.5-coder:3b",
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *control.Controller
	Server     *state.Store
	PollTick   time.Duration
	ThemeName  string
	FollowLogs bool
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	ctl       *control.Controller
	server    *state.Store
	prefsPath string
	pollTick  time.Duration

	// UI state
	theme       Theme
	keys        keyMap
	width       int
	height      int
	ready       bool
	focusedPane int // 0 = models table, 1 = log pane

	// Data state
	serverSnap  state.Snapshot
	catalogSnap catalog.Snapshot
	selectedRow int

	// Log pane
	sink        *logsink.Sink
	logViewport viewport.Model
	follow      bool

	// In-flight install
	installing  bool
	installName string
	cancelling  bool
	spin        spinner.Model

	// Overlays
	overlay        overlay
	input          textinput.Model
	recommendedIdx int
	pendingName    string // model awaiting delete/cleanup confirmation
	detailName     string
	detailBody     string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = 3 * time.Second
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.ThemeName)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	ti := textinput.New()
	ti.CharLimit = 200

	return Model{
		ctx:            ctx,
		ctl:            opts.Controller,
		server:         opts.Server,
		prefsPath:      prefsPath,
		pollTick:       pollTick,
		theme:          theme,
		keys:           DefaultKeyMap(),
		sink:           logsink.New(0),
		follow:         opts.FollowLogs,
		spin:           sp,
		input:          ti,
		recommendedIdx: -1,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	m.sink.Appendf(logsink.Info, "models directory: %s", m.ctl.Config().EffectiveModelsDir())
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
		serverStatusCmd(m.server),
		refreshCmd(m.ctx, m.ctl),
		checkVersionCmd(m.ctx, m.ctl),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.logViewport = viewport.New(m.width-4, m.logPaneHeight()-2)
		}
		m.ready = true
		m.updateLogViewport()
		return m, nil

	case tickMsg:
		return m, tea.Batch(tickCmd(m.pollTick), serverStatusCmd(m.server))

	case spinner.TickMsg:
		if !m.installing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case serverStatusMsg:
		m.serverSnap = state.Snapshot(msg)
		return m, nil

	case versionResultMsg:
		if msg.err != nil {
			m.logLine(logsink.Error, "ollama check failed: "+msg.err.Error())
			return m, nil
		}
		m.logLine(logsink.Info, "ollama ready: "+msg.version)
		return m, nil

	case pullStartedMsg:
		m.installing = true
		m.installName = msg.name
		m.cancelling = false
		m.logLine(logsink.Info, "installing "+msg.name+"...")
		return m, tea.Batch(waitPullEventCmd(msg.name, msg.events), m.spin.Tick)

	case pullStartFailedMsg:
		m.logLine(logsink.Error, "install "+msg.name+" failed: "+msg.err.Error())
		return m, nil

	case pullEventMsg:
		return m.handlePullEvent(msg)

	case removeResultMsg:
		if msg.err != nil {
			m.logLine(logsink.Error, "delete "+msg.name+" failed: "+firstErrorLine(msg.err, msg.output))
			return m, nil
		}
		m.logLine(logsink.Info, "deleted "+msg.name)
		return m, refreshCmd(m.ctx, m.ctl)

	case refreshResultMsg:
		return m.handleRefreshResult(msg)

	case showResultMsg:
		if msg.err != nil {
			m.logLine(logsink.Error, "show "+msg.name+" failed: "+msg.err.Error())
			return m, nil
		}
		m.detailName = msg.name
		m.detailBody = msg.output
		m.overlay = overlayDetails
		return m, nil

	case cleanupResultMsg:
		if msg.err != nil {
			m.logLine(logsink.Error, "cleanup of "+msg.name+" failed: "+firstErrorLine(msg.err, msg.output))
			return m, nil
		}
		m.logLine(logsink.Info, "cleaned up "+msg.name+": "+msg.output)
		return m, refreshCmd(m.ctx, m.ctl)

	case folderSavedMsg:
		if msg.err != nil {
			m.logLine(logsink.Error, "saving models folder failed: "+msg.err.Error())
			return m, nil
		}
		m.logLine(logsink.Info, "models directory: "+m.ctl.Config().EffectiveModelsDir())
		return m, refreshCmd(m.ctx, m.ctl)
	}

	return m, nil
}

// handlePullEvent appends streamed output and finishes the install when
// Done arrives. Events are drained one at a time, so lines land in the
// log in the order the process produced them.
func (m Model) handlePullEvent(msg pullEventMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		return m, nil
	}

	switch ev := msg.event.(type) {
	case runner.Line:
		m.logLine(logsink.Info, ev.Text)
		return m, waitPullEventCmd(msg.name, msg.events)

	case runner.Done:
		m.ctl.FinishPull()
		m.installing = false
		wasCancelling := m.cancelling
		m.cancelling = false

		if ev.Err != nil || ev.ExitCode != 0 {
			if wasCancelling {
				m.logLine(logsink.Warn, "install of "+msg.name+" cancelled")
				m.pendingName = msg.name
				m.overlay = overlayConfirmCleanup
				return m, nil
			}
			m.logLine(logsink.Error, "install "+msg.name+" failed: "+doneReason(ev))
			return m, nil
		}

		m.logLine(logsink.Info, "installed "+msg.name)
		return m, refreshCmd(m.ctx, m.ctl)
	}

	return m, waitPullEventCmd(msg.name, msg.events)
}

func (m Model) handleRefreshResult(msg refreshResultMsg) (tea.Model, tea.Cmd) {
	m.catalogSnap = msg.snapshot
	if m.selectedRow >= len(m.catalogSnap.Entries) {
		m.selectedRow = len(m.catalogSnap.Entries) - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}

	for _, w := range msg.warnings {
		m.logLine(logsink.Warn, w)
	}
	if msg.err != nil {
		m.logLine(logsink.Error, "listing models failed: "+msg.err.Error())
		return m, nil
	}
	m.logLine(logsink.Info, modelCountLabel(len(m.catalogSnap.Entries)))
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.overlay {
	case overlayHelp:
		return m.renderHelp()
	case overlayInstall:
		return m.renderInstallPrompt()
	case overlayFolder:
		return m.renderFolderPrompt()
	case overlayConfirmDelete:
		return m.renderConfirm("Delete model", "Delete "+m.pendingName+"?")
	case overlayConfirmCleanup:
		return m.renderConfirm("Clean up", "Remove partial download of "+m.pendingName+"?")
	case overlayDetails:
		return m.renderDetails()
	}

	return m.renderMain()
}

func (m Model) renderMain() string {
	var parts []string
	parts = append(parts, m.renderHeader())
	parts = append(parts, m.renderCommandBar())
	parts = append(parts, m.renderModels())
	parts = append(parts, m.renderLogPane())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// logLine appends to the sink and keeps the viewport in sync.
func (m *Model) logLine(sev logsink.Severity, message string) {
	m.sink.Append(sev, message)
	m.updateLogViewport()
}

func doneReason(ev runner.Done) string {
	if ev.Err != nil {
		if errors.Is(ev.Err, context.Canceled) {
			return "cancelled"
		}
		return ev.Err.Error()
	}
	return "exit code " + strconv.Itoa(ev.ExitCode)
}

func firstErrorLine(err error, output string) string {
	if output != "" {
		return output
	}
	return err.Error()
}

func modelCountLabel(n int) string {
	switch n {
	case 0:
		return "no models installed"
	case 1:
		return "1 model installed"
	default:
		return strconv.Itoa(n) + " models installed"
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
