// Package storage provides SQLite-based persistence for match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only finished match outcomes are stored, never simulation state.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// Match is the recorded outcome of one finished game.
type Match struct {
	ID             int64
	Result         string // "VICTORY" or "DEFEAT"
	Seed           int64
	Round          int
	DurationMs     int64
	FleetsLaunched int
	ShipsLaunched  int
	Captures       int
	PlanetsHeld    int
	CreatedAt      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			result TEXT NOT NULL,
			seed INTEGER NOT NULL,
			round INTEGER NOT NULL DEFAULT 1,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			fleets_launched INTEGER NOT NULL DEFAULT 0,
			ships_launched INTEGER NOT NULL DEFAULT 0,
			captures INTEGER NOT NULL DEFAULT 0,
			planets_held INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_result ON matches(result);
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

// SaveMatch records a finished match and returns its ID.
func (s *Store) SaveMatch(m Match) (int64, error) {
	if m.Result == "" {
		return 0, errors.New("storage: cannot save a match without a result")
	}

	res, err := s.db.Exec(
		`INSERT INTO matches
		 (result, seed, round, duration_ms, fleets_launched, ships_launched, captures, planets_held)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Result, m.Seed, m.Round, m.DurationMs,
		m.FleetsLaunched, m.ShipsLaunched, m.Captures, m.PlanetsHeld,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentMatches returns the newest matches first.
func (s *Store) RecentMatches(limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, result, seed, round, duration_ms, fleets_launched,
		        ships_launched, captures, planets_held, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		var createdAt any
		if err := rows.Scan(
			&m.ID, &m.Result, &m.Seed, &m.Round, &m.DurationMs, &m.FleetsLaunched,
			&m.ShipsLaunched, &m.Captures, &m.PlanetsHeld, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.CreatedAt = parseTime(createdAt)
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return matches, nil
}

// Stats contains aggregated match history.
type Stats struct {
	Games       int
	Wins        int
	Losses      int
	FastestWin  time.Duration // Zero when there are no wins
	AvgCaptures float64
	LastPlayed  time.Time
}

// WinRate returns the share of games won, or 0 with no games.
func (st Stats) WinRate() float64 {
	if st.Games == 0 {
		return 0
	}
	return float64(st.Wins) / float64(st.Games)
}

// Stats aggregates the whole match history.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var fastest sql.NullInt64
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN result = 'VICTORY' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN result = 'DEFEAT' THEN 1 ELSE 0 END), 0),
		        MIN(CASE WHEN result = 'VICTORY' THEN duration_ms END),
		        COALESCE(AVG(captures), 0),
		        MAX(created_at)
		 FROM matches`,
	).Scan(&stats.Games, &stats.Wins, &stats.Losses, &fastest, &stats.AvgCaptures, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if fastest.Valid {
		stats.FastestWin = time.Duration(fastest.Int64) * time.Millisecond
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearMatches deletes the whole match history.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and the string form SQLite returns for
// DATETIME columns.
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
