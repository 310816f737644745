package state

import (
	"sync"
	"time"

	"github.com/five82/taqvim/internal/calendar"
)

// Snapshot is the latest "today" computed by the poller.
type Snapshot struct {
	Today       calendar.Triple
	HasToday    bool
	Now         time.Time
	LastUpdated time.Time
	Rollovers   int // Number of day changes seen since start
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records today as of now and reports whether the civil day changed
// since the previous update.
func (s *Store) Update(now time.Time) bool {
	today := calendar.FromTime(now)

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := s.snapshot.HasToday && s.snapshot.Today.Gregorian != today.Gregorian
	if changed {
		s.snapshot.Rollovers++
	}
	s.snapshot.Today = today
	s.snapshot.HasToday = true
	s.snapshot.Now = now
	s.snapshot.LastUpdated = time.Now()
	return changed
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
