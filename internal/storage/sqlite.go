// Package storage provides SQLite-based persistence for finished sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome is how a session ended.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
)

// Valid reports whether o is a known outcome.
func (o Outcome) Valid() bool {
	return o == OutcomeWin || o == OutcomeLose
}

// ErrInvalidRecord is returned by SaveSession for malformed records.
var ErrInvalidRecord = errors.New("storage: invalid record")

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// Record is one finished session.
type Record struct {
	ID              int64
	SessionID       string // UUID, generated on save when empty
	Outcome         Outcome
	Seconds         int // Clear time for wins, time survived for losses
	BlocksDestroyed int
	CreatedAt       time.Time
}

// Stats contains aggregated statistics over all sessions.
type Stats struct {
	Sessions    int
	Wins        int
	Losses      int
	BestClear   int // Seconds; 0 when there are no wins
	AvgClear    float64
	TotalBlocks int64
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			outcome TEXT NOT NULL CHECK (outcome IN ('win', 'lose')),
			seconds INTEGER NOT NULL DEFAULT 0,
			blocks_destroyed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_clear ON sessions(outcome, seconds);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session and returns the stored record with
// its ID and session ID filled in.
func (s *Store) SaveSession(rec Record) (Record, error) {
	if !rec.Outcome.Valid() {
		return rec, fmt.Errorf("%w: outcome %q", ErrInvalidRecord, rec.Outcome)
	}
	if rec.Seconds < 0 || rec.BlocksDestroyed < 0 {
		return rec, fmt.Errorf("%w: negative seconds or blocks", ErrInvalidRecord)
	}
	if rec.SessionID == "" {
		rec.SessionID = uuid.NewString()
	}

	result, err := s.db.Exec(
		"INSERT INTO sessions (session_id, outcome, seconds, blocks_destroyed) VALUES (?, ?, ?, ?)",
		rec.SessionID, string(rec.Outcome), rec.Seconds, rec.BlocksDestroyed,
	)
	if err != nil {
		return rec, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return rec, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	rec.ID = id
	return rec, nil
}

// BestClears returns the fastest wins, quickest first.
func (s *Store) BestClears(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, session_id, outcome, seconds, blocks_destroyed, created_at
		 FROM sessions
		 WHERE outcome = 'win'
		 ORDER BY seconds ASC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentSessions returns the latest sessions of any outcome, newest first.
func (s *Store) RecentSessions(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(
		`SELECT id, session_id, outcome, seconds, blocks_destroyed, created_at
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) query(q string, args ...any) ([]Record, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var outcome string
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.SessionID, &outcome, &rec.Seconds, &rec.BlocksDestroyed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Outcome = Outcome(outcome)
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats returns aggregated statistics. An empty database yields zero Stats.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var best sql.NullInt64
	var avg sql.NullFloat64
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'lose' THEN 1 ELSE 0 END), 0),
		        MIN(CASE WHEN outcome = 'win' THEN seconds END),
		        AVG(CASE WHEN outcome = 'win' THEN seconds END),
		        COALESCE(SUM(blocks_destroyed), 0),
		        MAX(created_at)
		 FROM sessions`,
	).Scan(&st.Sessions, &st.Wins, &st.Losses, &best, &avg, &st.TotalBlocks, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if best.Valid {
		st.BestClear = int(best.Int64)
	}
	if avg.Valid {
		st.AvgClear = avg.Float64
	}
	st.LastPlayed = parseTime(lastPlayed)
	return st, nil
}

// ClearSessions deletes every stored session.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
