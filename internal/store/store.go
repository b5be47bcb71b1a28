package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/perfily/perfily-cli/internal/funnel"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store persists the funnel session and install metadata in SQLite.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadSession returns the persisted funnel session. A missing row or a
// payload that no longer parses yields a fresh session rather than an
// error, so a damaged database never blocks startup.
func (s *Store) LoadSession(ctx context.Context) funnel.Session {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM session_state WHERE id = 1`,
	).Scan(&payload)
	if err != nil {
		return funnel.NewSession()
	}

	var sess funnel.Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		return funnel.NewSession()
	}
	sess.Normalize()
	return sess
}

// SaveSession writes the session as a single JSON payload, replacing any
// previous state.
func (s *Store) SaveSession(ctx context.Context, sess funnel.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO session_state (id, payload, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			payload    = excluded.payload,
			updated_at = excluded.updated_at
	`, string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ResetSession deletes the persisted session so the next launch starts
// from a clean funnel.
func (s *Store) ResetSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session_state WHERE id = 1`); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	return nil
}

// InstallID returns a stable identifier for this installation, creating
// one on first call.
func (s *Store) InstallID(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT install_id FROM install_info WHERE id = 1`,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("read install id: %w", err)
	}

	id = uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO install_info (id, install_id, created_at)
		VALUES (1, ?, ?)
	`, id, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("write install id: %w", err)
	}
	return id, nil
}

// migrate creates the schema. Both tables are single-row by construction.
func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS session_state (
			id         INTEGER PRIMARY KEY CHECK (id = 1),
			payload    TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS install_info (
			id         INTEGER PRIMARY KEY CHECK (id = 1),
			install_id TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PERFILY_DB environment variable
// 2. $XDG_DATA_HOME/perfily/perfily.db
// 3. ~/.local/share/perfily/perfily.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PERFILY_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "perfily", "perfily.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
