// Package config resolves iapstore settings from a YAML file, .env files and
// IAPSTORE_* environment variables, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	CipherAESGCM   = "aes-gcm"
	CipherChaCha20 = "chacha20poly1305"

	DefaultCacheID = "purchases.cache"

	envPrefix = "IAPSTORE_"
)

var (
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrUnknownCipher  = errors.New("unknown cipher")
	ErrMissingCacheID = errors.New("cache id required")
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string `yaml:"home"`        // data directory, e.g. $HOME/.iapstore
	Backend    string `yaml:"backend"`     // file | sqlite | memory
	Cipher     string `yaml:"cipher"`      // aes-gcm | chacha20poly1305
	CacheID    string `yaml:"cache_id"`    // cache name within the backend
	PrivateKey string `yaml:"private_key"` // application private key
	DeviceID   string `yaml:"device_id"`   // key salt
	AccountID  string `yaml:"account_id"`  // key salt
}

// Default returns the built-in defaults. Home is left empty and resolved by
// ResolveHome.
func Default() Config {
	return Config{
		Backend: BackendFile,
		Cipher:  CipherAESGCM,
		CacheID: DefaultCacheID,
	}
}

// Load starts from Default, overlays the YAML file at path (if path is not
// empty), loads .env.local and .env from the working directory without
// overriding variables that are already set, and finally overlays IAPSTORE_*
// environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := loadDotEnv(".env.local", ".env"); err != nil {
		return Config{}, err
	}
	cfg.mergeEnv(os.LookupEnv)
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(b, &fileCfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	c.overlay(fileCfg)
	return nil
}

func loadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func (c *Config) mergeEnv(lookup func(string) (string, bool)) {
	var env Config
	get := func(name string) string {
		v, _ := lookup(envPrefix + name)
		return strings.TrimSpace(v)
	}
	env.Home = get("HOME")
	env.Backend = get("BACKEND")
	env.Cipher = get("CIPHER")
	env.CacheID = get("CACHE_ID")
	env.PrivateKey = get("PRIVATE_KEY")
	env.DeviceID = get("DEVICE_ID")
	env.AccountID = get("ACCOUNT_ID")
	c.overlay(env)
}

// overlay copies every non-empty field of o onto c.
func (c *Config) overlay(o Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.Home, o.Home)
	set(&c.Backend, o.Backend)
	set(&c.Cipher, o.Cipher)
	set(&c.CacheID, o.CacheID)
	set(&c.PrivateKey, o.PrivateKey)
	set(&c.DeviceID, o.DeviceID)
	set(&c.AccountID, o.AccountID)
}

// Overlay applies non-empty fields of o, typically CLI flag values.
func (c *Config) Overlay(o Config) { c.overlay(o) }

// ResolveHome fills Home with ~/.iapstore when unset.
func (c *Config) ResolveHome() error {
	if c.Home != "" {
		return nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	c.Home = filepath.Join(dir, ".iapstore")
	return nil
}

// Validate checks enumerated settings and the cache id.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("%w %q", ErrUnknownBackend, c.Backend)
	}
	switch c.Cipher {
	case CipherAESGCM, CipherChaCha20:
	default:
		return fmt.Errorf("%w %q", ErrUnknownCipher, c.Cipher)
	}
	if strings.TrimSpace(c.CacheID) == "" {
		return ErrMissingCacheID
	}
	return nil
}
