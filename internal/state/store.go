package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/herderapp/herder/internal/ollama"
)

// Snapshot represents the latest server status available to the UI.
type Snapshot struct {
	Reachable           bool
	ServerVersion       string
	Running             []ollama.ProcessModel
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the server has been unreachable for
// multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous
// data is kept but the error is recorded for visibility.
func (s *Store) Update(version string, running []ollama.ProcessModel, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		if s.snapshot.IsOffline() {
			s.snapshot.Reachable = false
		}
		return
	}

	s.snapshot.Reachable = true
	s.snapshot.ServerVersion = version
	s.snapshot.Running = cloneRunning(running)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Running = cloneRunning(s.snapshot.Running)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneRunning(models []ollama.ProcessModel) []ollama.ProcessModel {
	if len(models) == 0 {
		return nil
	}
	dup := make([]ollama.ProcessModel, len(models))
	copy(dup, models)
	return dup
}
