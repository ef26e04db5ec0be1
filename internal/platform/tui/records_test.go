package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockbreaker/internal/storage"
)

func TestRecordRows(t *testing.T) {
	created := time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC)
	rows := RecordRows([]storage.Record{
		{Outcome: storage.OutcomeWin, Seconds: 42, BlocksDestroyed: 48, CreatedAt: created},
		{Outcome: storage.OutcomeLose, Seconds: 7, BlocksDestroyed: 3, CreatedAt: created},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(rows))
	}
	want := []string{"1", "win", "42s", "48", "Mar 09 18:30"}
	for i, cell := range rows[0] {
		if cell != want[i] {
			t.Errorf("row 0 col %d = %q, expected %q", i, cell, want[i])
		}
	}
	if rows[1][0] != "2" || rows[1][1] != "lose" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestFormatStats(t *testing.T) {
	if got := FormatStats(storage.Stats{}); !strings.Contains(got, "best -") {
		t.Errorf("empty stats = %q, expected no best time", got)
	}

	got := FormatStats(storage.Stats{Sessions: 3, Wins: 2, Losses: 1, BestClear: 40, TotalBlocks: 103})
	for _, part := range []string{"sessions 3", "wins 2", "losses 1", "best 40s", "blocks 103"} {
		if !strings.Contains(got, part) {
			t.Errorf("stats %q missing %q", got, part)
		}
	}
}

func TestRecordsModelWithoutStore(t *testing.T) {
	m := NewRecordsModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No records database") {
		t.Error("expected the missing database message")
	}
}

func TestRecordsModelSwitchesViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveSession(storage.Record{Outcome: storage.OutcomeLose, Seconds: 3, BlocksDestroyed: 1})

	m := NewRecordsModel(store, 100, 30)
	if !strings.Contains(m.View(), "No clears recorded yet") {
		t.Error("best clears should be empty with only a loss stored")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(RecordsModel)
	if m.view != ViewRecent || len(m.records) != 1 {
		t.Errorf("view=%v records=%d after tab", m.view, len(m.records))
	}
	if !strings.Contains(m.View(), "Recent sessions") {
		t.Error("title did not switch to recent sessions")
	}

	next, cmd := m.Update(runeKey("q"))
	if !next.(RecordsModel).quitting || cmd == nil {
		t.Error("q should quit the records screen")
	}
}
