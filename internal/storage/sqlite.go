// Package storage keeps the history of finished Sky Fight sessions in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished (or abandoned) session.
type SessionRecord struct {
	ID          int64
	Player      string
	Score       int
	TimeBonus   int // Bonus credited to Score; zero for losses
	Won         bool
	Ticks       int
	LivesLeft   int
	EnemyHealth int
	Difficulty  string
	CreatedAt   time.Time
}

// Stats aggregates the whole history.
type Stats struct {
	Games      int
	Wins       int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// DefaultPath returns ~/.skyfight/history.db.
func DefaultPath() string {
	return filepath.Join("~", ".skyfight", "history.db")
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
	// SQLite allows one writer; SSH sessions share this store
	db.SetMaxOpenConns(1)

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
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			time_bonus INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			lives_left INTEGER NOT NULL DEFAULT 0,
			enemy_health INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_score ON sessions(score DESC);
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

// SaveSession records a session. Returns the ID of the inserted record.
func (s *Store) SaveSession(r SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (player, score, time_bonus, won, ticks, lives_left, enemy_health, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Player, r.Score, r.TimeBonus, r.Won, r.Ticks, r.LivesLeft, r.EnemyHealth, r.Difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const selectSessions = `SELECT id, player, score, time_bonus, won, ticks, lives_left, enemy_health, difficulty, created_at
	FROM sessions`

// RecentSessions retrieves the latest sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(selectSessions+` ORDER BY id DESC LIMIT ?`, limit)
}

// TopSessions retrieves the highest scoring sessions.
func (s *Store) TopSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(selectSessions+` ORDER BY score DESC, id ASC LIMIT ?`, limit)
}

func (s *Store) query(q string, args ...any) ([]SessionRecord, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Player,
			&r.Score,
			&r.TimeBonus,
			&r.Won,
			&r.Ticks,
			&r.LivesLeft,
			&r.EnemyHealth,
			&r.Difficulty,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats returns aggregated statistics over every recorded session.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM sessions`,
	).Scan(&stats.Games, &stats.Wins, &stats.BestScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM sessions ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearSessions deletes the whole history.
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
