package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/herderapp/herder/internal/control"
	"github.com/herderapp/herder/internal/runner"
	"github.com/herderapp/herder/internal/state"
)

func tickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func serverStatusCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return serverStatusMsg(store.Snapshot())
	}
}

func checkVersionCmd(ctx context.Context, ctl *control.Controller) tea.Cmd {
	return func() tea.Msg {
		v, err := ctl.Version(ctx)
		return versionResultMsg{version: v, err: err}
	}
}

func startPullCmd(ctl *control.Controller, name string) tea.Cmd {
	return func() tea.Msg {
		events, err := ctl.StartPull(name)
		if err != nil {
			return pullStartFailedMsg{name: name, err: err}
		}
		return pullStartedMsg{name: name, events: events}
	}
}

// waitPullEventCmd blocks on the pull's event channel and hands exactly
// one event to Update. Update re-arms it until Done arrives, so lines
// reach the log in the order the process produced them.
func waitPullEventCmd(name string, events <-chan runner.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		return pullEventMsg{name: name, events: events, event: ev, ok: ok}
	}
}

func removeCmd(ctx context.Context, ctl *control.Controller, name string) tea.Cmd {
	return func() tea.Msg {
		out, err := ctl.Remove(ctx, name)
		return removeResultMsg{name: name, output: out, err: err}
	}
}

func refreshCmd(ctx context.Context, ctl *control.Controller) tea.Cmd {
	return func() tea.Msg {
		snap, warnings, err := ctl.Refresh(ctx)
		return refreshResultMsg{snapshot: snap, warnings: warnings, err: err}
	}
}

func showCmd(ctx context.Context, ctl *control.Controller, name string) tea.Cmd {
	return func() tea.Msg {
		out, err := ctl.Show(ctx, name)
		return showResultMsg{name: name, output: out, err: err}
	}
}

func cleanupCmd(ctx context.Context, ctl *control.Controller, name string) tea.Cmd {
	return func() tea.Msg {
		out, err := ctl.CleanPartialPull(ctx, name)
		return cleanupResultMsg{name: name, output: out, err: err}
	}
}

func saveFolderCmd(ctl *control.Controller, dir string) tea.Cmd {
	return func() tea.Msg {
		err := ctl.SetModelsDir(dir)
		return folderSavedMsg{dir: dir, err: err}
	}
}
