package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"iapstore/internal/domain"
)

const cachesSchema = `
CREATE TABLE IF NOT EXISTS caches (
	name TEXT PRIMARY KEY,
	data BLOB NOT NULL
)`

// SQLiteStorage keeps each cache as a row in a SQLite database.
type SQLiteStorage struct {
	db *sql.DB
	mu sync.Mutex
}

// OpenSQLiteStorage creates or opens a SQLite database at path.
//
// The database is configured with:
//   - WAL mode so readers never see a half-written row
//   - FULL synchronous mode, since each write is a whole cache snapshot
//   - 5-second busy timeout for lock contention
func OpenSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = FULL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(cachesSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStorage) Read(name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var data []byte
	err := s.db.QueryRow(`SELECT data FROM caches WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache %q: %w", name, err)
	}
	return data, nil
}

// Write upserts the cache row in a single statement, which SQLite applies
// atomically.
func (s *SQLiteStorage) Write(name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	if data == nil {
		data = []byte{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO caches (name, data) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data`,
		name, data,
	)
	if err != nil {
		return fmt.Errorf("write cache %q: %w", name, err)
	}
	return nil
}

func (s *SQLiteStorage) Remove(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM caches WHERE name = ?`, name); err != nil {
		return fmt.Errorf("remove cache %q: %w", name, err)
	}
	return nil
}

var _ domain.Storage = (*SQLiteStorage)(nil)
