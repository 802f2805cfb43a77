package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/coverflow/internal/deck"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	cards := []deck.Card{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}}

	before := time.Now()
	if changed := s.Update(cards, nil); !changed {
		t.Fatalf("first Update changed = false, want true")
	}

	snap := s.Snapshot()
	if !snap.Loaded || snap.Revision != 1 {
		t.Fatalf("snapshot Loaded=%v Revision=%d, want true/1", snap.Loaded, snap.Revision)
	}
	if len(snap.Cards) != 2 || snap.Cards[0].ID != "1" {
		t.Fatalf("snapshot cards = %#v, want 2 cards", snap.Cards)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}

	// Neither the caller's slice nor a returned snapshot aliases the store.
	cards[0].Title = "mutated"
	snap.Cards[1].Title = "mutated"
	snap2 := s.Snapshot()
	if snap2.Cards[0].Title != "a" || snap2.Cards[1].Title != "b" {
		t.Fatalf("store cards were aliased: %#v", snap2.Cards)
	}
}

func TestStore_RevisionOnlyMovesOnChange(t *testing.T) {
	var s Store

	if s.Revision() != 0 {
		t.Fatalf("Revision = %d, want 0", s.Revision())
	}

	tests := []struct {
		name    string
		cards   []deck.Card
		changed bool
		rev     uint64
	}{
		{"first load empty", nil, true, 1},
		{"still empty", nil, false, 1},
		{"one card", []deck.Card{{ID: "1", Title: "a"}}, true, 2},
		{"same card", []deck.Card{{ID: "1", Title: "a"}}, false, 2},
		{"edited card", []deck.Card{{ID: "1", Title: "b"}}, true, 3},
	}
	for _, tt := range tests {
		if got := s.Update(tt.cards, nil); got != tt.changed {
			t.Fatalf("%s: Update changed = %v, want %v", tt.name, got, tt.changed)
		}
		if got := s.Revision(); got != tt.rev {
			t.Fatalf("%s: Revision = %d, want %d", tt.name, got, tt.rev)
		}
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update([]deck.Card{{ID: "1"}}, nil)
	prev := s.Snapshot()

	origErr := errors.New("boom")
	if s.Update(nil, origErr) {
		t.Fatalf("Update with error reported a change")
	}

	snap := s.Snapshot()
	if snap.Revision != prev.Revision {
		t.Fatalf("Revision changed on error: %d -> %d", prev.Revision, snap.Revision)
	}
	if len(snap.Cards) != 1 || snap.Cards[0].ID != "1" {
		t.Fatalf("cards changed on error: got %#v want %#v", snap.Cards, prev.Cards)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError should wrap the original error")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("zero store = %d failures offline=%v, want 0/false", snap.ConsecutiveFailures, snap.IsOffline())
	}

	for i, wantOffline := range []bool{false, true, true} {
		s.Update(nil, errors.New("fail"))
		snap := s.Snapshot()
		if snap.ConsecutiveFailures != i+1 {
			t.Fatalf("ConsecutiveFailures = %d, want %d", snap.ConsecutiveFailures, i+1)
		}
		if snap.IsOffline() != wantOffline {
			t.Fatalf("IsOffline() after %d failures = %v, want %v", i+1, snap.IsOffline(), wantOffline)
		}
	}

	s.Update(nil, nil)
	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("after success failures=%d offline=%v, want 0/false", snap.ConsecutiveFailures, snap.IsOffline())
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil after success", snap.LastError)
	}
}
