// Package app is the composition root for the herder application.
//
// # Overview
//
// Run wires together configuration, preferences, the command runner, the
// orchestration controller, the server status poller, and the UI. All
// mutable state is owned explicitly — by the controller or by the status
// store — and handed down; no ambient singletons exist anywhere in the
// program.
//
// # Architecture
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()          Read models-dir config (soft)
//	       ├─────> prefs.Load()           Read theme preferences (soft)
//	       ├─────> ollama.NewClient()     HTTP client for server status
//	       ├─────> StartPoller()          Background status updates
//	       ├─────> control.NewController() Operation gates + catalog store
//	       └─────> ui.Run()               Start TUI (blocks)
//
// # Polling Behavior
//
// The poller refreshes the server status store at a fixed cadence
// (default: 3 seconds): /api/version to prove the server is up, /api/ps
// for the loaded models. Failures are recorded in the store and polling
// continues; the UI decides how long a failure streak counts as offline.
//
// # Error Handling
//
// Nothing past startup is fatal. Tool failures, unreachable servers, and
// malformed listings all degrade to logged messages with previous state
// intact. The only fatal path is client construction on a malformed
// -host flag.
//
// # Debug Logging
//
// With -debug-log, a zerolog logger writes structured lines to the given
// file; without it, logging is a no-op. The TUI owns the terminal, so
// stderr is never an option.
package app
