// Package state holds the server status snapshot shared between the
// background poller and the UI.
//
// The poller writes through Update; the UI reads through Snapshot. Both
// sides get value copies, so neither can corrupt the other. A failed poll
// keeps the previous data visible and counts consecutive failures;
// IsOffline trips after two, which keeps a single dropped request from
// flashing the header red.
package state
