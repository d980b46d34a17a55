package catalog

import (
	"sync"
	"time"
)

// Snapshot is the catalog state the UI renders from.
type Snapshot struct {
	Entries     []Entry
	LastRefresh time.Time
	LastError   error
	HasLoaded   bool
}

// Store coordinates catalog updates between refreshes and the UI. The
// collection is discarded and rebuilt wholesale on every refresh; there
// is no incremental diffing.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Replace swaps in a freshly parsed catalog. When err is non-nil the
// previous entries are kept untouched and only the error is recorded.
func (s *Store) Replace(entries []Entry, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		return
	}

	s.snapshot.Entries = cloneEntries(entries)
	s.snapshot.LastRefresh = time.Now()
	s.snapshot.LastError = nil
	s.snapshot.HasLoaded = true
}

// Snapshot returns a copy of the current catalog state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Entries = cloneEntries(s.snapshot.Entries)
	return snap
}

// Lookup finds an entry by name against the last successful refresh.
// Before any refresh it reports not found, never an error.
func (s *Store) Lookup(name string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range s.snapshot.Entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return Entry{}, false
}

// Len reports how many entries the last refresh produced.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshot.Entries)
}

func cloneEntries(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
