// Package logsink buffers the timestamped progress and error lines shown
// in the log pane.
//
// # Behavior
//
// The sink is append-only from the caller's point of view: lines are never
// mutated or reordered, and Snapshot returns them in the order they were
// appended. To keep long sessions from growing without bound, the buffer
// is a fixed-capacity ring and appending past capacity drops the oldest
// line.
//
// All methods are safe for concurrent use, though in practice only the
// interactive loop writes; background workers hand their output to the
// loop as messages rather than touching the sink directly.
package logsink
