package interfaces

import domaintypes "iapstore/internal/domain/types"

// Storage reads and writes named byte blobs. Read of a missing name returns
// (nil, nil). Write must replace the previous contents atomically.
type Storage interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
	Remove(name string) error
}

// Persister loads and saves a complete purchase state snapshot.
type Persister interface {
	Load() (domaintypes.State, error)
	Save(state domaintypes.State) error
}
