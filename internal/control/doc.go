// Package control implements the orchestration controller: the single
// owner of the active configuration, the catalog store, and the per-kind
// operation gates.
//
// Each user action maps to one method: Version, StartPull / CancelPull /
// FinishPull, Remove, Refresh, Details, Show, SetModelsDir. The UI calls
// them from Bubble Tea command goroutines, so every method is safe for
// concurrent use.
//
// Per operation kind the controller runs a small state machine: idle,
// running, finished. A second install (or delete) while one is running is
// rejected with ErrOperationInProgress rather than queued. A successful
// mutation is followed by a catalog refresh driven by the caller; a
// failed one leaves the prior catalog untouched.
package control
