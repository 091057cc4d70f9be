// Package history persists the CLI's query history in a local sqlite
// database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/9triver/conceptdb/internal/util"
)

// Entry is one executed query.
type Entry struct {
	ID             string
	Database       string
	Query          string
	ExecutedAt     time.Time
	DurationMillis int64
	Error          string
}

// Store is the query history persistence interface.
type Store interface {
	Append(e *Entry) error
	Recent(limit int) ([]*Entry, error)
	Close() error
}

type store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the history database at dbPath.
func NewStore(dbPath string) (Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	s := &store{db: db}
	if err := s.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}
	return s, nil
}

func (s *store) initTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS query_history (
		id TEXT PRIMARY KEY,
		db_name TEXT NOT NULL,
		query TEXT NOT NULL,
		executed_at INTEGER NOT NULL,
		duration_millis INTEGER NOT NULL,
		error TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_history_executed_at ON query_history(executed_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append stores one entry, assigning an id when unset.
func (s *store) Append(e *Entry) error {
	if e.ID == "" {
		e.ID = util.GenIDWith("qry-")
	}
	if e.ExecutedAt.IsZero() {
		e.ExecutedAt = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO query_history (id, db_name, query, executed_at, duration_millis, error)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Database, e.Query, e.ExecutedAt.Unix(), e.DurationMillis, e.Error,
	)
	return err
}

// Recent returns the latest entries, newest first.
func (s *store) Recent(limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, db_name, query, executed_at, duration_millis, error
		FROM query_history ORDER BY executed_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		var executedAt int64
		if err := rows.Scan(&e.ID, &e.Database, &e.Query, &executedAt, &e.DurationMillis, &e.Error); err != nil {
			return nil, err
		}
		e.ExecutedAt = time.Unix(executedAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *store) Close() error {
	return s.db.Close()
}
