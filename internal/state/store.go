package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/tessera/internal/layout"
)

// Snapshot represents the latest layout available to the UI.
type Snapshot struct {
	Layout              layout.Definition
	HasLayout           bool
	Generation          uint64 // bumped on every successful update
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive failed reloads
}

// IsStale returns true when the last reload failed and the UI is still
// showing an older definition.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures > 0 && s.HasLayout
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored layout. When err is non-nil the previous layout
// is kept but the error is recorded for visibility.
func (s *Store) Update(def layout.Definition, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	def.Entries = cloneEntries(def.Entries)
	s.snapshot.Layout = def
	s.snapshot.HasLayout = true
	s.snapshot.Generation++
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Layout.Entries = cloneEntries(s.snapshot.Layout.Entries)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneEntries(entries []layout.Entry) []layout.Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]layout.Entry, len(entries))
	copy(dup, entries)
	return dup
}
