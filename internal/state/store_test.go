package state

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/five82/tessera/internal/grid"
	"github.com/five82/tessera/internal/layout"
)

func testLayout(names ...string) layout.Definition {
	def := layout.Definition{Title: "test"}
	for _, n := range names {
		def.Entries = append(def.Entries, layout.Entry{Name: n, Item: grid.MustItem(2, 1)})
	}
	return def
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update(testLayout("a", "b"), nil)

	snap := s.Snapshot()
	if !snap.HasLayout || len(snap.Layout.Entries) != 2 {
		t.Fatalf("snapshot layout = %#v, want 2 entries", snap.Layout)
	}
	if snap.Generation != 1 {
		t.Fatalf("Generation = %d, want 1", snap.Generation)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Layout.Entries[0].Name = "changed"
	snap2 := s.Snapshot()
	if snap2.Layout.Entries[0].Name != "a" {
		t.Fatalf("Snapshot should clone entries; got %q want a", snap2.Layout.Entries[0].Name)
	}
}

func TestStore_UpdateErrorKeepsPreviousLayout(t *testing.T) {
	var s Store

	s.Update(testLayout("a"), nil)
	origErr := errors.New("boom")
	s.Update(layout.Definition{}, origErr)
	s.Update(layout.Definition{}, origErr)

	snap := s.Snapshot()
	if len(snap.Layout.Entries) != 1 || snap.Layout.Entries[0].Name != "a" {
		t.Fatalf("layout changed on error: got %#v", snap.Layout)
	}
	if snap.Generation != 1 {
		t.Fatalf("Generation = %d, want 1", snap.Generation)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError = %v, want wrapped %v", snap.LastError, origErr)
	}
	if snap.ConsecutiveFailures != 2 || !snap.IsStale() {
		t.Fatalf("ConsecutiveFailures = %d stale=%v, want 2 and stale", snap.ConsecutiveFailures, snap.IsStale())
	}

	s.Update(testLayout("b"), nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.LastError != nil || snap.IsStale() {
		t.Fatalf("success did not reset failures: %#v", snap)
	}
	if snap.Generation != 2 {
		t.Fatalf("Generation = %d, want 2", snap.Generation)
	}
}

func TestStore_ErrorBeforeAnyLayoutIsNotStale(t *testing.T) {
	var s Store
	s.Update(layout.Definition{}, errors.New("boom"))
	if snap := s.Snapshot(); snap.HasLayout || snap.IsStale() {
		t.Fatalf("snapshot = %#v, want no layout and not stale", snap)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	var s Store
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Update(testLayout("x"), nil)
		}()
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()
	if got := s.Snapshot().Generation; got != 8 {
		t.Fatalf("Generation = %d, want 8", got)
	}
}
