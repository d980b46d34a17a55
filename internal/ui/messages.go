package ui

import (
	"time"

	"github.com/herderapp/herder/internal/catalog"
	"github.com/herderapp/herder/internal/runner"
	"github.com/herderapp/herder/internal/state"
)

// Typed messages delivered to Update. Workers never touch model state
// directly; everything they learn arrives here, on the interactive loop,
// in the order it was produced.

// tickMsg drives the periodic status refresh.
type tickMsg time.Time

// serverStatusMsg carries the poller's latest server snapshot.
type serverStatusMsg state.Snapshot

// versionResultMsg reports a `--version` check.
type versionResultMsg struct {
	version string
	err     error
}

// pullStartedMsg means the streaming pull is running and its events can
// be drained.
type pullStartedMsg struct {
	name   string
	events <-chan runner.Event
}

// pullStartFailedMsg means the pull never spawned a process.
type pullStartFailedMsg struct {
	name string
	err  error
}

// pullEventMsg carries one event from the running pull. ok is false once
// the channel is closed and drained.
type pullEventMsg struct {
	name   string
	events <-chan runner.Event
	event  runner.Event
	ok     bool
}

// removeResultMsg reports a completed `rm`.
type removeResultMsg struct {
	name   string
	output string
	err    error
}

// refreshResultMsg reports a completed catalog refresh.
type refreshResultMsg struct {
	snapshot catalog.Snapshot
	warnings []string
	err      error
}

// showResultMsg carries `show <name>` output for the details overlay.
type showResultMsg struct {
	name   string
	output string
	err    error
}

// cleanupResultMsg reports the removal of a cancelled pull's leftovers.
type cleanupResultMsg struct {
	name   string
	output string
	err    error
}

// folderSavedMsg reports persisting a new models directory.
type folderSavedMsg struct {
	dir string
	err error
}
