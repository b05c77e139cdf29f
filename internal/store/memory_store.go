package store

import (
	"sync"

	"iapstore/internal/domain"
)

// MemoryStorage keeps caches in process memory. Contents are copied on the
// way in and out so callers cannot alias stored bytes.
type MemoryStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: make(map[string][]byte)}
}

func (s *MemoryStorage) Read(name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.blobs[name]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), b...), nil
}

func (s *MemoryStorage) Write(name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[name] = append([]byte(nil), data...)
	return nil
}

func (s *MemoryStorage) Remove(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, name)
	return nil
}

var _ domain.Storage = (*MemoryStorage)(nil)
