// Package snapshot holds the latest fleet load reduction and the single-slot
// store that hands it from the refresh loop to concurrent query handlers.
package snapshot

import (
	"sync"
	"time"
)

// Snapshot is one complete load reduction across the fleet. Values are
// immutable once published; a reader either sees a whole snapshot or none.
type Snapshot struct {
	// LoadAvg is the aggregate load signal, 0.0 and up.
	LoadAvg float64 `json:"loadAvg"`
	// LoadStd is the dispersion across members. Informational only.
	LoadStd float64 `json:"loadStd"`
	// Endpoints is the number of members that contributed reports.
	Endpoints int `json:"endpoints"`
	// CollectedAt is when the reduction completed.
	CollectedAt time.Time `json:"collectedAt"`
}

// Store caches at most one Snapshot. One writer (the refresh loop), any
// number of readers (query handlers). The critical section is a pointer swap,
// so readers never wait on a collection in progress.
type Store struct {
	mu      sync.RWMutex
	current *Snapshot
}

func NewStore() *Store {
	return &Store{}
}

// Publish replaces the stored snapshot. Never fails.
func (s *Store) Publish(snap Snapshot) {
	s.mu.Lock()
	s.current = &snap
	s.mu.Unlock()
}

// Read returns the latest snapshot, or ok=false if no refresh has succeeded yet.
func (s *Store) Read() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Snapshot{}, false
	}
	return *s.current, true
}
