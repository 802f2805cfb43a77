package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/coverflow/internal/deck"
)

// Snapshot represents the latest deck available to the UI.
type Snapshot struct {
	Cards []deck.Card
	// Revision increases every time Cards changes; the UI compares it to
	// decide whether to notify the carousel.
	Revision            uint64
	Loaded              bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the deck has failed to load for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a load result. When err is non-nil the previous cards are
// kept and the failure is counted. It reports whether the cards changed.
func (s *Store) Update(cards []deck.Card, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return false
	}

	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	first := !s.snapshot.Loaded
	s.snapshot.Loaded = true
	if !first && deck.Equal(s.snapshot.Cards, cards) {
		return false
	}
	s.snapshot.Cards = deck.Clone(cards)
	s.snapshot.Revision++
	return true
}

// Revision returns the current revision without copying the cards.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Revision
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Cards = deck.Clone(s.snapshot.Cards)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
