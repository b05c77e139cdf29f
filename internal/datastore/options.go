package datastore

import (
	"log/slog"

	"iapstore/internal/domain"
	"iapstore/internal/store"
	"iapstore/internal/vault"
)

// Config identifies a cache and the secrets its key is derived from.
type Config struct {
	CacheID    string
	PrivateKey string
	DeviceID   string
	AccountID  string
}

// Option customises Open.
type Option func(*openConfig)

type openConfig struct {
	storage domain.Storage
	cipher  domain.Cipher
	logger  *slog.Logger
}

// WithStorage selects the storage backend. Defaults to in-memory storage.
func WithStorage(s domain.Storage) Option {
	return func(cfg *openConfig) {
		if s != nil {
			cfg.storage = s
		}
	}
}

// WithCipher selects the cipher. Defaults to AES-256-GCM.
func WithCipher(c domain.Cipher) Option {
	return func(cfg *openConfig) {
		if c != nil {
			cfg.cipher = c
		}
	}
}

// WithLogger attaches a logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(cfg *openConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// Open builds an encrypted persister for cfg and loads the store from it.
func Open(cfg Config, opts ...Option) *DataStore {
	oc := openConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&oc)
	}
	if oc.storage == nil {
		oc.storage = store.NewMemoryStorage()
	}
	p := vault.New(cfg.CacheID, vault.Secrets{
		PrivateKey: cfg.PrivateKey,
		DeviceID:   cfg.DeviceID,
		AccountID:  cfg.AccountID,
	}, oc.storage, oc.cipher)
	return New(p, oc.logger.With("cache", cfg.CacheID))
}

// Vault returns the encrypted persister behind a store built by Open, or nil
// when the store was built with New over some other Persister.
func (s *DataStore) Vault() *vault.Persister {
	v, _ := s.persister.(*vault.Persister)
	return v
}
