// Package storage provides SQLite-based persistence for the painting session log.
// Canvas contents are never stored; only per-session statistics are.
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

// Store manages the SQLite database connection for the session log.
type Store struct {
	db *sql.DB
}

// Session is one painting session record.
type Session struct {
	ID        string // UUID, generated by SaveSession when empty
	Preset    string
	Host      string // "tui", "window" or "ssh"
	User      string // SSH user or local login, may be empty
	Ticks     uint64
	Strokes   int
	Pixels    int
	Duration  time.Duration
	CreatedAt time.Time
}

// PresetStats contains aggregated statistics for a preset.
type PresetStats struct {
	Preset        string
	Sessions      int
	TotalStrokes  int64
	TotalPixels   int64
	TotalDuration time.Duration
	LastPainted   time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
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
			id TEXT PRIMARY KEY,
			preset TEXT NOT NULL,
			host TEXT NOT NULL,
			username TEXT NOT NULL DEFAULT '',
			ticks INTEGER NOT NULL DEFAULT 0,
			strokes INTEGER NOT NULL DEFAULT 0,
			pixels INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_preset ON sessions(preset);
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

// SaveSession records a finished session and returns its ID.
func (s *Store) SaveSession(session Session) (string, error) {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions (id, preset, host, username, ticks, strokes, pixels, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.Preset,
		session.Host,
		session.User,
		int64(session.Ticks),
		session.Strokes,
		session.Pixels,
		session.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}

	return session.ID, nil
}

const sessionColumns = `id, preset, host, username, ticks, strokes, pixels, duration_ms, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (Session, error) {
	var (
		session    Session
		ticks      int64
		durationMS int64
		createdAt  any
	)
	if err := row.Scan(
		&session.ID,
		&session.Preset,
		&session.Host,
		&session.User,
		&ticks,
		&session.Strokes,
		&session.Pixels,
		&durationMS,
		&createdAt,
	); err != nil {
		return Session{}, err
	}

	session.Ticks = uint64(ticks)
	session.Duration = time.Duration(durationMS) * time.Millisecond
	session.CreatedAt = parseTime(createdAt)
	return session, nil
}

// parseTime handles both time.Time and string DATETIME values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SessionByID retrieves a session by its ID. Returns nil if it does not exist.
func (s *Store) SessionByID(id string) (*Session, error) {
	row := s.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)

	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return &session, nil
}

// RecentSessions retrieves the most recent sessions, optionally filtered by
// preset (empty means all presets).
func (s *Store) RecentSessions(preset string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + sessionColumns + ` FROM sessions`
	args := []any{}
	if preset != "" {
		query += ` WHERE preset = ?`
		args = append(args, preset)
	}
	query += ` ORDER BY created_at DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// ClearSessions deletes all sessions for the given preset, or every session
// when preset is empty. Returns the number of deleted rows.
func (s *Store) ClearSessions(preset string) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if preset == "" {
		res, err = s.db.Exec("DELETE FROM sessions")
	} else {
		res, err = s.db.Exec("DELETE FROM sessions WHERE preset = ?", preset)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear sessions: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n, nil
}

// GetAllPresetStats retrieves statistics for every preset that has sessions.
func (s *Store) GetAllPresetStats() (map[string]*PresetStats, error) {
	rows, err := s.db.Query(
		`SELECT preset, COUNT(*), SUM(strokes), SUM(pixels), SUM(duration_ms), MAX(created_at)
		 FROM sessions
		 GROUP BY preset`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get preset stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PresetStats)
	for rows.Next() {
		var (
			ps         PresetStats
			durationMS int64
			last       any
		)
		if err := rows.Scan(&ps.Preset, &ps.Sessions, &ps.TotalStrokes, &ps.TotalPixels, &durationMS, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.TotalDuration = time.Duration(durationMS) * time.Millisecond
		ps.LastPainted = parseTime(last)
		stats[ps.Preset] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
