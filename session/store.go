package session

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	game_id    TEXT PRIMARY KEY,
	pin        TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	last_saved TIMESTAMP NOT NULL,
	state      TEXT NOT NULL,
	completed  INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_sessions_pin ON sessions(pin);
CREATE INDEX IF NOT EXISTS idx_sessions_last_saved ON sessions(last_saved);
`

// Store keeps saved solo games in a local sqlite file.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if missing) the sqlite database at dsn and
// ensures the schema exists.
func OpenStore(dsn string) (*Store, error) {
	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts or overwrites a session, refreshing its last-saved time.
func (s *Store) Save(sess Session) error {
	sess.LastSaved = time.Now()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = sess.LastSaved
	}
	_, err := s.db.Exec(`
		INSERT INTO sessions (game_id, pin, created_at, last_saved, state, completed)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(game_id) DO UPDATE SET
			pin = excluded.pin,
			last_saved = excluded.last_saved,
			state = excluded.state,
			completed = excluded.completed`,
		sess.GameID, sess.Pin, sess.CreatedAt, sess.LastSaved, sess.State, sess.Completed)
	return err
}

// Get returns the session with gameID, or ErrNotFound.
func (s *Store) Get(gameID string) (Session, error) {
	return s.queryOne(`SELECT game_id, pin, created_at, last_saved, state, completed
		FROM sessions WHERE game_id = ?`, gameID)
}

// GetByPin returns the most recently saved session with pin, or ErrNotFound.
func (s *Store) GetByPin(pin string) (Session, error) {
	return s.queryOne(`SELECT game_id, pin, created_at, last_saved, state, completed
		FROM sessions WHERE pin = ? ORDER BY last_saved DESC LIMIT 1`, pin)
}

func (s *Store) queryOne(query string, arg any) (Session, error) {
	var sess Session
	var completed int
	err := s.db.QueryRow(query, arg).Scan(
		&sess.GameID, &sess.Pin, &sess.CreatedAt, &sess.LastSaved, &sess.State, &completed)
	if err == sql.ErrNoRows {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, err
	}
	sess.Completed = completed != 0
	return sess, nil
}

// Recent lists up to limit sessions, newest first.
func (s *Store) Recent(limit int) ([]Session, error) {
	rows, err := s.db.Query(`SELECT game_id, pin, created_at, last_saved, state, completed
		FROM sessions ORDER BY last_saved DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var completed int
		if err := rows.Scan(&sess.GameID, &sess.Pin, &sess.CreatedAt, &sess.LastSaved, &sess.State, &completed); err != nil {
			return nil, err
		}
		sess.Completed = completed != 0
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// Delete removes one session; deleting a missing session is not an error.
func (s *Store) Delete(gameID string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE game_id = ?`, gameID)
	return err
}

// Clear removes every saved session.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM sessions`)
	return err
}
