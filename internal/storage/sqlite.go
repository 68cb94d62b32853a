// Package storage provides SQLite-based persistence for the salvo log.
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

	"github.com/vovakirdan/gt4500/internal/bridge"
	"github.com/vovakirdan/gt4500/internal/core"
)

// Store manages the SQLite database connection for the salvo log.
type Store struct {
	db *sql.DB
}

// SalvoEntry represents a single recorded fire order.
type SalvoEntry struct {
	ID             int64
	SessionID      string
	Class          string
	Mode           core.FiringMode
	PrimaryFired   bool
	SecondaryFired bool
	Success        bool
	PrimaryLeft    int
	SecondaryLeft  int
	FiredAt        time.Time
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
		CREATE TABLE IF NOT EXISTS salvos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			class TEXT NOT NULL,
			mode TEXT NOT NULL,
			primary_fired INTEGER NOT NULL DEFAULT 0,
			secondary_fired INTEGER NOT NULL DEFAULT 0,
			success INTEGER NOT NULL DEFAULT 0,
			primary_left INTEGER NOT NULL DEFAULT 0,
			secondary_left INTEGER NOT NULL DEFAULT 0,
			fired_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_salvos_session ON salvos(session_id);
		CREATE INDEX IF NOT EXISTS idx_salvos_class ON salvos(class);
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

// SaveSalvo records a fire order.
// Returns the ID of the inserted record.
func (s *Store) SaveSalvo(e SalvoEntry) (int64, error) {
	firedAt := e.FiredAt
	if firedAt.IsZero() {
		firedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO salvos
		 (session_id, class, mode, primary_fired, secondary_fired, success, primary_left, secondary_left, fired_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.SessionID,
		e.Class,
		e.Mode.String(),
		e.PrimaryFired,
		e.SecondaryFired,
		e.Success,
		e.PrimaryLeft,
		e.SecondaryLeft,
		firedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save salvo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSalvos retrieves the most recent salvos across all sessions, newest first.
func (s *Store) RecentSalvos(limit int) ([]SalvoEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, class, mode, primary_fired, secondary_fired,
		        success, primary_left, secondary_left, fired_at
		 FROM salvos
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query salvos: %w", err)
	}
	defer rows.Close()

	return scanSalvos(rows)
}

// SessionSalvos retrieves every salvo of one session, oldest first.
func (s *Store) SessionSalvos(sessionID string) ([]SalvoEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, class, mode, primary_fired, secondary_fired,
		        success, primary_left, secondary_left, fired_at
		 FROM salvos
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session salvos: %w", err)
	}
	defer rows.Close()

	return scanSalvos(rows)
}

func scanSalvos(rows *sql.Rows) ([]SalvoEntry, error) {
	var entries []SalvoEntry
	for rows.Next() {
		var e SalvoEntry
		var mode string
		var firedAt any
		if err := rows.Scan(
			&e.ID,
			&e.SessionID,
			&e.Class,
			&mode,
			&e.PrimaryFired,
			&e.SecondaryFired,
			&e.Success,
			&e.PrimaryLeft,
			&e.SecondaryLeft,
			&firedAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		if m, err := core.ParseFiringMode(mode); err == nil {
			e.Mode = m
		}
		e.FiredAt = parseTime(firedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearSalvos deletes all salvos of the given ship class.
func (s *Store) ClearSalvos(class string) error {
	_, err := s.db.Exec("DELETE FROM salvos WHERE class = ?", class)
	if err != nil {
		return fmt.Errorf("storage: cannot clear salvos: %w", err)
	}
	return nil
}

// RecordSalvo implements bridge.SalvoRecorder.
// This adapter lets a bridge persist salvos without a direct storage dependency.
func (s *Store) RecordSalvo(rec bridge.SalvoRecord) error {
	_, err := s.SaveSalvo(SalvoEntry{
		SessionID:      rec.SessionID,
		Class:          rec.Class,
		Mode:           rec.Salvo.Mode,
		PrimaryFired:   rec.Salvo.PrimaryFired,
		SecondaryFired: rec.Salvo.SecondaryFired,
		Success:        rec.Salvo.Success,
		PrimaryLeft:    rec.Salvo.PrimaryLeft,
		SecondaryLeft:  rec.Salvo.SecondaryLeft,
		FiredAt:        rec.Salvo.FiredAt,
	})
	return err
}

// Ensure Store implements SalvoRecorder
var _ bridge.SalvoRecorder = (*Store)(nil)

// ClassStats contains aggregated statistics for a ship class.
type ClassStats struct {
	Class             string
	Salvos            int
	Hits              int
	Misses            int
	PrimaryLaunches   int
	SecondaryLaunches int
	Sessions          int
	LastFired         time.Time
}

// GetClassStats retrieves aggregated statistics for a ship class.
func (s *Store) GetClassStats(class string) (*ClassStats, error) {
	stats := &ClassStats{Class: class}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(success), 0),
		        COALESCE(SUM(primary_fired), 0),
		        COALESCE(SUM(secondary_fired), 0),
		        COUNT(DISTINCT session_id)
		 FROM salvos WHERE class = ?`,
		class,
	).Scan(&stats.Salvos, &stats.Hits, &stats.PrimaryLaunches, &stats.SecondaryLaunches, &stats.Sessions)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get class stats: %w", err)
	}
	stats.Misses = stats.Salvos - stats.Hits

	var lastFired any
	err = s.db.QueryRow(
		`SELECT fired_at FROM salvos WHERE class = ? ORDER BY id DESC LIMIT 1`,
		class,
	).Scan(&lastFired)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last fired: %w", err)
	}
	if err == nil {
		stats.LastFired = parseTime(lastFired)
	}

	return stats, nil
}

const timeLayout = "2006-01-02 15:04:05"

// parseTime handles the forms the driver returns for DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{timeLayout, time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}
