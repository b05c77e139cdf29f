package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"iapstore/internal/config"
	"iapstore/internal/crypto"
	"iapstore/internal/datastore"
	"iapstore/internal/domain"
	"iapstore/internal/store"
	"iapstore/internal/vault"
)

const sqliteFilename = "caches.db"

// Wire bundles the storage, persister and data store for the CLI.
type Wire struct {
	Config  config.Config
	Storage domain.Storage
	Vault   *vault.Persister
	Store   *datastore.DataStore
	Logger  *slog.Logger

	closer io.Closer
}

// NewWire constructs the dependency graph from cfg. The data store is loaded
// eagerly, so a broken cache shows up as a warning before any command runs.
func NewWire(cfg config.Config, logger *slog.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	storage, closer, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}
	cipher, err := crypto.CipherByName(cfg.Cipher)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}

	logger = logger.With("backend", cfg.Backend)
	cache := datastore.Config{
		CacheID:    cfg.CacheID,
		PrivateKey: cfg.PrivateKey,
		DeviceID:   cfg.DeviceID,
		AccountID:  cfg.AccountID,
	}
	ds := datastore.Open(cache,
		datastore.WithStorage(storage),
		datastore.WithCipher(cipher),
		datastore.WithLogger(logger),
	)
	return &Wire{
		Config:  cfg,
		Storage: storage,
		Vault:   ds.Vault(),
		Store:   ds,
		Logger:  logger.With("cache", cfg.CacheID),
		closer:  closer,
	}, nil
}

// Close releases the storage backend.
func (w *Wire) Close() error {
	if w == nil || w.closer == nil {
		return nil
	}
	return w.closer.Close()
}

func openStorage(cfg config.Config) (domain.Storage, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return store.NewMemoryStorage(), nil, nil
	case config.BackendFile:
		return store.NewFileStorage(cfg.Home), nil, nil
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
			return nil, nil, err
		}
		s, err := store.OpenSQLiteStorage(filepath.Join(cfg.Home, sqliteFilename))
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	}
	return nil, nil, fmt.Errorf("%w %q", config.ErrUnknownBackend, cfg.Backend)
}
