package store

import (
	"os"
	"path/filepath"
	"sync"

	"iapstore/internal/domain"
)

// FileStorage keeps each cache as a file named after it inside dir.
type FileStorage struct {
	dir string
	mu  sync.Mutex
}

// NewFileStorage returns a FileStorage rooted at dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// Dir returns the storage root.
func (s *FileStorage) Dir() string { return s.dir }

// Read returns the cache contents, or nil if the cache does not exist.
func (s *FileStorage) Read(name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return readFile(filepath.Join(s.dir, name))
}

// Write replaces the cache contents atomically.
func (s *FileStorage) Write(name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, name), data, 0o600)
}

// Remove deletes the cache. Removing a missing cache is not an error.
func (s *FileStorage) Remove(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return removeFile(filepath.Join(s.dir, name))
}

// Compile-time assertion that FileStorage implements domain.Storage.
var _ domain.Storage = (*FileStorage)(nil)
