package vault

import (
	"errors"
	"fmt"

	"iapstore/internal/codec"
	"iapstore/internal/crypto"
	"iapstore/internal/domain"
	"iapstore/internal/util/memzero"
)

var (
	// ErrNoState is returned by Load when nothing has been persisted yet.
	ErrNoState = errors.New("no persisted state")
	// ErrDecrypt is returned by Load when the blob cannot be opened.
	ErrDecrypt = errors.New("decrypt cache")
)

// Secrets are combined to derive the cache key.
type Secrets struct {
	PrivateKey string
	DeviceID   string
	AccountID  string
}

// Persister saves and loads one named cache.
type Persister struct {
	name    string
	secrets Secrets
	storage domain.Storage
	cipher  domain.Cipher
}

// New returns a Persister for the cache called name. A nil cipher selects
// AES-256-GCM.
func New(name string, secrets Secrets, storage domain.Storage, cipher domain.Cipher) *Persister {
	if cipher == nil {
		cipher = crypto.AESGCM{}
	}
	return &Persister{name: name, secrets: secrets, storage: storage, cipher: cipher}
}

// Name returns the cache name.
func (p *Persister) Name() string { return p.name }

// Load reads, decrypts and decodes the cache.
func (p *Persister) Load() (domain.State, error) {
	plaintext, err := p.Plaintext()
	if err != nil {
		return domain.State{}, err
	}
	defer memzero.Zero(plaintext)

	state, err := codec.Decode(plaintext)
	if err != nil {
		return domain.State{}, fmt.Errorf("decode cache %q: %w", p.name, err)
	}
	return state, nil
}

// Save encodes, encrypts and writes state. If encoding or encryption fails
// nothing is written.
func (p *Persister) Save(state domain.State) error {
	plaintext, err := codec.Encode(state)
	if err != nil {
		return fmt.Errorf("encode cache %q: %w", p.name, err)
	}
	defer memzero.Zero(plaintext)

	key := p.key()
	defer memzero.ZeroKey(&key)

	blob, err := p.cipher.Seal(key[:], plaintext)
	if err != nil {
		return fmt.Errorf("encrypt cache %q: %w", p.name, err)
	}
	if err := p.storage.Write(p.name, blob); err != nil {
		return fmt.Errorf("write cache %q: %w", p.name, err)
	}
	return nil
}

// Plaintext returns the decrypted document without decoding it.
func (p *Persister) Plaintext() ([]byte, error) {
	blob, err := p.storage.Read(p.name)
	if err != nil {
		return nil, fmt.Errorf("read cache %q: %w", p.name, err)
	}
	if len(blob) == 0 {
		return nil, ErrNoState
	}
	key := p.key()
	defer memzero.ZeroKey(&key)

	plaintext, err := p.cipher.Open(key[:], blob)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrDecrypt, p.name, err)
	}
	return plaintext, nil
}

// Fingerprint returns a short fingerprint of the derived key.
func (p *Persister) Fingerprint() string {
	key := p.key()
	defer memzero.ZeroKey(&key)
	return crypto.Fingerprint(key[:])
}

// Remove deletes the persisted cache.
func (p *Persister) Remove() error {
	return p.storage.Remove(p.name)
}

func (p *Persister) key() [crypto.KeyBytes]byte {
	return crypto.DeriveKey(p.secrets.PrivateKey, p.secrets.DeviceID, p.secrets.AccountID)
}

// Compile-time assertion that Persister implements domain.Persister.
var _ domain.Persister = (*Persister)(nil)
