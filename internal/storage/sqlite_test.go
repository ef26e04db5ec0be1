package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveSession(Record{Outcome: OutcomeWin, Seconds: 30, BlocksDestroyed: 48}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	recent, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 1 {
		t.Errorf("Expected 1 session after reopen, got %d", len(recent))
	}
}

func TestStoreSaveSessionAssignsIDs(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.SaveSession(Record{Outcome: OutcomeLose, Seconds: 4, BlocksDestroyed: 3})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if rec.ID == 0 {
		t.Error("Expected a row ID")
	}
	if _, err := uuid.Parse(rec.SessionID); err != nil {
		t.Errorf("SessionID %q is not a UUID: %v", rec.SessionID, err)
	}

	fixed := uuid.NewString()
	rec, err = store.SaveSession(Record{SessionID: fixed, Outcome: OutcomeWin, Seconds: 50, BlocksDestroyed: 48})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if rec.SessionID != fixed {
		t.Errorf("SessionID = %q, expected %q", rec.SessionID, fixed)
	}

	if _, err := store.SaveSession(Record{SessionID: fixed, Outcome: OutcomeWin}); err == nil {
		t.Error("Expected duplicate session ID to fail")
	}
}

func TestStoreSaveSessionValidation(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		rec  Record
	}{
		{"empty outcome", Record{Seconds: 1}},
		{"unknown outcome", Record{Outcome: "draw"}},
		{"negative seconds", Record{Outcome: OutcomeWin, Seconds: -1}},
		{"negative blocks", Record{Outcome: OutcomeLose, BlocksDestroyed: -2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.SaveSession(tc.rec)
			if !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("err = %v, expected ErrInvalidRecord", err)
			}
		})
	}
}

func TestStoreBestClears(t *testing.T) {
	store := openTestStore(t)

	for _, rec := range []Record{
		{Outcome: OutcomeWin, Seconds: 90, BlocksDestroyed: 48},
		{Outcome: OutcomeLose, Seconds: 5, BlocksDestroyed: 2},
		{Outcome: OutcomeWin, Seconds: 42, BlocksDestroyed: 48},
		{Outcome: OutcomeWin, Seconds: 61, BlocksDestroyed: 48},
		{Outcome: OutcomeLose, Seconds: 1, BlocksDestroyed: 0},
	} {
		if _, err := store.SaveSession(rec); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	clears, err := store.BestClears(2)
	if err != nil {
		t.Fatalf("BestClears() failed: %v", err)
	}
	if len(clears) != 2 {
		t.Fatalf("Expected 2 clears with limit, got %d", len(clears))
	}
	if clears[0].Seconds != 42 || clears[1].Seconds != 61 {
		t.Errorf("Clears not fastest first: %+v", clears)
	}
	for _, c := range clears {
		if c.Outcome != OutcomeWin {
			t.Errorf("Loss in best clears: %+v", c)
		}
	}

	all, err := store.BestClears(0)
	if err != nil {
		t.Fatalf("BestClears(0) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 clears with default limit, got %d", len(all))
	}
}

func TestStoreRecentSessions(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveSession(Record{Outcome: OutcomeLose, Seconds: i}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(recent))
	}
	if recent[0].Seconds != 4 || recent[2].Seconds != 2 {
		t.Errorf("Sessions not newest first: %+v", recent)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if empty != (Stats{}) {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	for _, rec := range []Record{
		{Outcome: OutcomeWin, Seconds: 40, BlocksDestroyed: 48},
		{Outcome: OutcomeWin, Seconds: 60, BlocksDestroyed: 48},
		{Outcome: OutcomeLose, Seconds: 10, BlocksDestroyed: 7},
	} {
		if _, err := store.SaveSession(rec); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Sessions != 3 || st.Wins != 2 || st.Losses != 1 {
		t.Errorf("Counts = %d/%d/%d, expected 3/2/1", st.Sessions, st.Wins, st.Losses)
	}
	if st.BestClear != 40 || st.AvgClear != 50 {
		t.Errorf("BestClear/AvgClear = %d/%g, expected 40/50", st.BestClear, st.AvgClear)
	}
	if st.TotalBlocks != 103 {
		t.Errorf("TotalBlocks = %d, expected 103", st.TotalBlocks)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Record{Outcome: OutcomeWin, Seconds: 10, BlocksDestroyed: 48})
	store.SaveSession(Record{Outcome: OutcomeLose})

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	recent, _ := store.RecentSessions(10)
	if len(recent) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(recent))
	}
}
