// Package ollama is the boundary to the model manager, in both of its
// forms: the CLI that herder shells out to for every mutating operation,
// and the local server's read-only HTTP API used for status.
//
// # CLI
//
// Tool wraps the short-lived invocations (`--version`, `list`, `rm`,
// `show`) with per-command timeouts and classified errors; a missing
// binary surfaces as ErrNotInstalled everywhere. The one long-running
// command, `pull`, is not executed here: PullSpec builds the invocation
// and the runner package streams it so the interactive loop never blocks.
//
// When the user has picked a custom models directory, every invocation
// carries an OLLAMA_MODELS environment override.
//
// # HTTP API
//
// Client covers /api/version, /api/tags and /api/ps against the local
// server (default 127.0.0.1:11434). The status poller uses it to tell
// "server running" apart from "binary installed", and to show which
// models are currently loaded. Mutations never go through the API; the
// CLI stays the single write path.
package ollama
