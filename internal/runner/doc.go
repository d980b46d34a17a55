// Package runner executes external commands off the interactive loop and
// streams their output back as typed events.
//
// # Contract
//
// Start spawns one OS process and returns a channel that delivers:
//
//   - zero or more Line events, one per line of combined stdout/stderr,
//     in the order the process produced them
//   - exactly one Done event carrying the exit code, after which the
//     channel closes
//
// Stdout and stderr are merged through a single pipe, so interleaving
// matches what a terminal would have shown. Lines are cleaned of ANSI
// escapes and control characters before delivery.
//
// # Failure Modes
//
// An empty command fails immediately with ErrInvalidInvocation; a missing
// executable with ErrToolNotFound. Both are returned from Start, before
// any process exists. A process that starts and exits non-zero is not an
// error: the exit code rides in Done and the caller decides what is
// user-visible.
//
// Cancelling the context kills the process; Done still arrives with the
// context's error attached, so the caller can tell an abort from a
// failure.
//
// # Concurrency
//
// Start returns immediately. Two goroutines serve each command: one scans
// the pipe, one waits on the process. Both exit once Done is delivered.
// The caller owns the draining; nothing here touches shared state.
package runner
